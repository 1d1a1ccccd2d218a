package container

import "golang.org/x/exp/constraints"

// Ascending is a should-swap predicate that orders items from low to high.
func Ascending[T constraints.Ordered](a, b T) bool {
	return a > b
}

// Descending is a should-swap predicate that orders items from high to low.
func Descending[T constraints.Ordered](a, b T) bool {
	return a < b
}
