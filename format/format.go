// Package format builds the first/middle/last print hooks the containers
// expect and renders containers as a single line of text.
package format

import (
	"fmt"
	"io"
	"strings"
)

type Printer[T any] interface {
	Print(first, middle, last func(T))
}

// Hooks returns print hooks that write every item followed by sep, except the
// last one, which is followed by a newline.
func Hooks[T any](w io.Writer, sep string) (first, middle, last func(T)) {
	item := func(v T) {
		fmt.Fprint(w, v, sep)
	}

	last = func(v T) {
		fmt.Fprintln(w, v)
	}

	return item, item, last
}

// Line renders p with Hooks. An empty container renders as "".
func Line[T any](p Printer[T], sep string) string {
	var sb strings.Builder

	p.Print(Hooks[T](&sb, sep))

	return sb.String()
}
