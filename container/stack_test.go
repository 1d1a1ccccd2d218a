package container_test

import (
	"slices"
	"testing"

	"github.com/larynjahor/lists/container"
	"github.com/stretchr/testify/require"
)

func TestStack(t *testing.T) {
	s := container.NewStack[int]()
	require.True(t, s.Empty())

	_, err := s.Pop()
	require.ErrorIs(t, err, container.ErrEmptyContainer)

	_, err = s.Peek()
	require.ErrorIs(t, err, container.ErrEmptyContainer)

	s.Push(1)
	s.Push(2)
	s.Push(3)
	require.Equal(t, 3, s.Len())

	top, err := s.Peek()
	require.NoError(t, err)
	require.Equal(t, 3, top)
	require.Equal(t, 3, s.Len())

	for _, want := range []int{3, 2, 1} {
		got, err := s.Pop()
		require.NoError(t, err)
		require.Equal(t, want, got)
	}

	require.True(t, s.Empty())
}

func TestNewStack(t *testing.T) {
	s := container.NewStack("a", "b", "c")

	require.Equal(t, []string{"c", "b", "a"}, slices.Collect(s.All()))

	s.Clear()
	require.True(t, s.Empty())
	require.Empty(t, slices.Collect(s.All()))
}

func TestSet(t *testing.T) {
	s := container.NewSet[string](4)

	require.True(t, s.Add("b"))
	require.True(t, s.Add("a"))
	require.False(t, s.Add("b"))
	require.True(t, s.Contains("a"))
	require.Equal(t, 2, s.Len())
	require.Equal(t, []string{"a", "b"}, container.Sorted(s))

	s.Delete("a")
	require.False(t, s.Contains("a"))
	require.Equal(t, []string{"b"}, container.Sorted(s))
}
