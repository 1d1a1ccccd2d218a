package container

// NewBuffer allocates a buffer with size slots.
func NewBuffer[T any](size int) *Buffer[T] {
	return &Buffer[T]{
		slots: make([]T, size),
	}
}

// Buffer is a contiguous run of item slots. It knows nothing about how many
// of its slots are in use; that is the owner's business.
type Buffer[T any] struct {
	slots    []T
	reallocs int
}

func (b *Buffer[T]) Cap() int {
	return len(b.slots)
}

// Reallocs reports how many times the buffer has been resized.
func (b *Buffer[T]) Reallocs() int {
	return b.reallocs
}

// Realloc resizes the buffer to exactly size slots, keeping the common prefix.
func (b *Buffer[T]) Realloc(size int) {
	slots := make([]T, size)
	copy(slots, b.slots)

	b.slots = slots
	b.reallocs++
}

// Move shifts the closed range [first, last] by `by` slots. Positive values
// move toward the tail, negative toward the head. The caller guarantees the
// destination fits. The pass runs from the leading edge of the move so no
// slot is overwritten before it is read.
func (b *Buffer[T]) Move(first, last, by int) {
	switch {
	case by > 0:
		for i := last; i >= first; i-- {
			b.slots[i+by] = b.slots[i]
		}
	case by < 0:
		for i := first; i <= last; i++ {
			b.slots[i+by] = b.slots[i]
		}
	}
}

func (b *Buffer[T]) Swap(i, j int) {
	b.slots[i], b.slots[j] = b.slots[j], b.slots[i]
}

// Release zeroes the slots in [from, to) so the buffer stops holding the items.
func (b *Buffer[T]) Release(from, to int) {
	clear(b.slots[from:to])
}
