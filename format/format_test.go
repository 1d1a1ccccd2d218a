package format_test

import (
	"bytes"
	"testing"

	"github.com/larynjahor/lists/container"
	"github.com/larynjahor/lists/format"
	"github.com/stretchr/testify/require"
)

func TestLine(t *testing.T) {
	tests := []struct {
		name  string
		items []int
		want  string
	}{
		{name: "empty", items: nil, want: ""},
		{name: "single", items: []int{7}, want: "7\n"},
		{name: "many", items: []int{5, 3, 8, 1}, want: "5, 3, 8, 1\n"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			al := container.NewArrayList[int](len(tt.items))
			ll := container.NewLinkedList[int]()

			for _, v := range tt.items {
				al.InsertBack(v)
				ll.InsertBack(v)
			}

			require.Equal(t, tt.want, format.Line[int](al, ", "))
			require.Equal(t, tt.want, format.Line[int](ll, ", "))
		})
	}
}

func TestHooks(t *testing.T) {
	var buf bytes.Buffer

	first, middle, last := format.Hooks[string](&buf, " | ")
	first("a")
	middle("b")
	last("c")

	require.Equal(t, "a | b | c\n", buf.String())
}
