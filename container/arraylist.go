package container

import "iter"

const minArrayCap = 2

// NewArrayList creates an empty list with room for size items. The growth
// increment is fixed at half of the initial capacity.
func NewArrayList[T any](size int) *ArrayList[T] {
	size = max(size, minArrayCap)

	return &ArrayList[T]{
		buf:       NewBuffer[T](size),
		increment: size / 2,
		initial:   size,
	}
}

// ArrayList is a dynamic array that grows and shrinks by a fixed increment.
// The zero value behaves like NewArrayList(2).
type ArrayList[T any] struct {
	buf       *Buffer[T]
	len       int
	increment int
	initial   int
}

func (l *ArrayList[T]) lazyInit() {
	if l.buf == nil {
		*l = *NewArrayList[T](minArrayCap)
	}
}

func (l *ArrayList[T]) Len() int {
	return l.len
}

func (l *ArrayList[T]) Cap() int {
	l.lazyInit()

	return l.buf.Cap()
}

func (l *ArrayList[T]) Increment() int {
	l.lazyInit()

	return l.increment
}

// Reallocs reports how many times the backing buffer has been resized.
func (l *ArrayList[T]) Reallocs() int {
	l.lazyInit()

	return l.buf.Reallocs()
}

func (l *ArrayList[T]) Insert(pos int, item T) error {
	if pos < 0 || pos > l.len {
		return ErrInvalidPosition
	}

	l.grow()
	l.buf.Move(pos, l.len-1, 1)
	l.buf.slots[pos] = item
	l.len++

	return nil
}

// grow makes room for one more item.
func (l *ArrayList[T]) grow() {
	l.lazyInit()

	if l.len+1 > l.buf.Cap() {
		l.buf.Realloc(l.buf.Cap() + l.increment)
	}
}

func (l *ArrayList[T]) InsertFront(item T) {
	l.grow()
	l.buf.Move(0, l.len-1, 1)
	l.buf.slots[0] = item
	l.len++
}

func (l *ArrayList[T]) InsertBack(item T) {
	l.grow()
	l.buf.slots[l.len] = item
	l.len++
}

func (l *ArrayList[T]) Remove(pos int) (zero T, _ error) {
	if l.len == 0 {
		return zero, ErrEmptyContainer
	}

	if pos < 0 || pos >= l.len {
		return zero, ErrInvalidPosition
	}

	item := l.buf.slots[pos]

	l.buf.Move(pos+1, l.len-1, -1)
	l.len--
	l.buf.Release(l.len, l.len+1)
	l.shrink()

	return item, nil
}

func (l *ArrayList[T]) RemoveFront() (T, error) {
	return l.Remove(0)
}

func (l *ArrayList[T]) RemoveBack() (zero T, _ error) {
	if l.len == 0 {
		return zero, ErrEmptyContainer
	}

	l.len--
	item := l.buf.slots[l.len]
	l.buf.Release(l.len, l.len+1)
	l.shrink()

	return item, nil
}

// shrink drops one increment once the buffer holds more than two spare
// increments, so a single insert/remove pair at the edge never reallocates twice.
func (l *ArrayList[T]) shrink() {
	capacity := l.buf.Cap()

	if capacity/l.increment > l.len/l.increment+2 && capacity-l.increment >= minArrayCap {
		l.buf.Realloc(capacity - l.increment)
	}
}

func (l *ArrayList[T]) Get(pos int) (zero T, _ error) {
	if pos < 0 || pos >= l.len {
		return zero, ErrInvalidPosition
	}

	return l.buf.slots[pos], nil
}

// Set overwrites the item at pos and hands back the one it replaced.
func (l *ArrayList[T]) Set(pos int, item T) (zero T, _ error) {
	if pos < 0 || pos >= l.len {
		return zero, ErrInvalidPosition
	}

	prev := l.buf.slots[pos]
	l.buf.slots[pos] = item

	return prev, nil
}

func (l *ArrayList[T]) Front() (zero T, _ error) {
	if l.len == 0 {
		return zero, ErrEmptyContainer
	}

	return l.buf.slots[0], nil
}

func (l *ArrayList[T]) Back() (zero T, _ error) {
	if l.len == 0 {
		return zero, ErrEmptyContainer
	}

	return l.buf.slots[l.len-1], nil
}

func (l *ArrayList[T]) SetFront(item T) (zero T, _ error) {
	if l.len == 0 {
		return zero, ErrEmptyContainer
	}

	return l.Set(0, item)
}

func (l *ArrayList[T]) SetBack(item T) (zero T, _ error) {
	if l.len == 0 {
		return zero, ErrEmptyContainer
	}

	return l.Set(l.len-1, item)
}

func (l *ArrayList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for i := range l.len {
			if !yield(l.buf.slots[i]) {
				return
			}
		}
	}
}

// Range yields the items at positions [start, stop).
func (l *ArrayList[T]) Range(start, stop int) (iter.Seq[T], error) {
	if start < 0 || start > stop || stop > l.len {
		return nil, ErrInvalidPosition
	}

	return func(yield func(T) bool) {
		for i := start; i < stop; i++ {
			if !yield(l.buf.slots[i]) {
				return
			}
		}
	}, nil
}

// SubList copies the items at positions [start, stop) into a new list.
func (l *ArrayList[T]) SubList(start, stop int) (*ArrayList[T], error) {
	if start < 0 || start > stop || stop > l.len {
		return nil, ErrInvalidPosition
	}

	ret := NewArrayList[T](max(stop-start, l.Increment()*2))
	copy(ret.buf.slots, l.buf.slots[start:stop])
	ret.len = stop - start

	return ret, nil
}

func (l *ArrayList[T]) Slice() []T {
	ret := make([]T, l.len)
	if l.len > 0 {
		copy(ret, l.buf.slots[:l.len])
	}

	return ret
}

// Print walks the list left to right. A single item only gets last.
func (l *ArrayList[T]) Print(first, middle, last func(T)) {
	if l.len == 0 {
		return
	}

	if l.len == 1 {
		last(l.buf.slots[0])
		return
	}

	first(l.buf.slots[0])

	for i := 1; i < l.len-1; i++ {
		middle(l.buf.slots[i])
	}

	last(l.buf.slots[l.len-1])
}

// Sort is an in-place exchange sort. Neighbours are swapped whenever
// shouldSwap(left, right) reports true.
func (l *ArrayList[T]) Sort(shouldSwap func(a, b T) bool) {
	for i := 0; i < l.len; i++ {
		for j := 0; j < l.len-i-1; j++ {
			if shouldSwap(l.buf.slots[j], l.buf.slots[j+1]) {
				l.buf.Swap(j, j+1)
			}
		}
	}
}

// Clear drops every item and returns the buffer to its initial capacity.
func (l *ArrayList[T]) Clear() {
	if l.buf == nil {
		return
	}

	l.buf.Release(0, l.len)
	l.len = 0

	if l.buf.Cap() != l.initial {
		l.buf.Realloc(l.initial)
	}
}
