package container

import "iter"

// Index reports the position of the first item equal to v, or -1.
func Index[T comparable](items iter.Seq[T], v T) int {
	i := 0
	for item := range items {
		if item == v {
			return i
		}

		i++
	}

	return -1
}

func Contains[T comparable](items iter.Seq[T], v T) bool {
	return Index(items, v) >= 0
}
