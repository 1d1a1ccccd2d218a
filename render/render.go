// Package render draws the internal layout of containers as ASCII trees.
package render

import (
	"fmt"

	asciitree "github.com/thediveo/go-asciitree"

	"github.com/larynjahor/lists/container"
)

type Node struct {
	Label    string   `asciitree:"label"`
	Props    []string `asciitree:"properties"`
	Children []Node   `asciitree:"children"`
}

func ArrayList[T any](name string, l *container.ArrayList[T]) string {
	return asciitree.RenderFancy(ArrayListTree(name, l))
}

func LinkedList[T any](name string, l *container.LinkedList[T]) string {
	return asciitree.RenderFancy(LinkedListTree(name, l))
}

func Stack[T any](name string, s *container.Stack[T]) string {
	return asciitree.RenderFancy(StackTree(name, s))
}

// ArrayListTree lists the used slots of the buffer in index order.
func ArrayListTree[T any](name string, l *container.ArrayList[T]) Node {
	n := Node{
		Label: fmt.Sprintf("%s (array list)", name),
		Props: []string{
			fmt.Sprintf("len: %d", l.Len()),
			fmt.Sprintf("cap: %d", l.Cap()),
			fmt.Sprintf("increment: %d", l.Increment()),
		},
	}

	i := 0
	for v := range l.All() {
		n.Children = append(n.Children, Node{Label: fmt.Sprintf("[%d] %v", i, v)})
		i++
	}

	return n
}

// LinkedListTree lists nodes from head to tail together with their slab slots.
func LinkedListTree[T any](name string, l *container.LinkedList[T]) Node {
	slots := l.Nodes()

	n := Node{
		Label: fmt.Sprintf("%s (linked list)", name),
		Props: []string{fmt.Sprintf("len: %d", l.Len())},
	}

	if len(slots) > 0 {
		n.Props = append(n.Props,
			fmt.Sprintf("head: slot %d", slots[0]),
			fmt.Sprintf("tail: slot %d", slots[len(slots)-1]),
		)
	}

	i := 0
	for v := range l.All() {
		n.Children = append(n.Children, Node{Label: fmt.Sprintf("slot %d: %v", slots[i], v)})
		i++
	}

	return n
}

// StackTree lists items from top to bottom.
func StackTree[T any](name string, s *container.Stack[T]) Node {
	n := Node{
		Label: fmt.Sprintf("%s (stack)", name),
		Props: []string{fmt.Sprintf("len: %d", s.Len())},
	}

	for v := range s.All() {
		n.Children = append(n.Children, Node{Label: fmt.Sprint(v)})
	}

	return n
}
