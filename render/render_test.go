package render_test

import (
	"testing"

	"github.com/larynjahor/lists/container"
	"github.com/larynjahor/lists/render"
	"github.com/stretchr/testify/require"
)

func TestArrayListTree(t *testing.T) {
	l := container.NewArrayList[int](4)
	l.InsertBack(5)
	l.InsertBack(8)

	tree := render.ArrayListTree("nums", l)

	require.Equal(t, "nums (array list)", tree.Label)
	require.Equal(t, []string{"len: 2", "cap: 4", "increment: 2"}, tree.Props)
	require.Equal(t, []render.Node{{Label: "[0] 5"}, {Label: "[1] 8"}}, tree.Children)

	out := render.ArrayList("nums", l)
	require.Contains(t, out, "nums (array list)")
	require.Contains(t, out, "[1] 8")
}

func TestLinkedListTree(t *testing.T) {
	l := container.NewLinkedList[int]()
	l.InsertBack(10)
	l.InsertBack(20)
	l.InsertFront(5)

	tree := render.LinkedListTree("chain", l)

	require.Equal(t, []string{"len: 3", "head: slot 2", "tail: slot 1"}, tree.Props)
	require.Equal(t, []render.Node{
		{Label: "slot 2: 5"},
		{Label: "slot 0: 10"},
		{Label: "slot 1: 20"},
	}, tree.Children)

	empty := render.LinkedListTree("none", container.NewLinkedList[int]())
	require.Equal(t, []string{"len: 0"}, empty.Props)
	require.Empty(t, empty.Children)

	require.Contains(t, render.LinkedList("chain", l), "slot 0: 10")
}

func TestStackTree(t *testing.T) {
	s := container.NewStack(1, 2)

	tree := render.StackTree("ops", s)

	require.Equal(t, []render.Node{{Label: "2"}, {Label: "1"}}, tree.Children)
	require.Contains(t, render.Stack("ops", s), "ops (stack)")
}
