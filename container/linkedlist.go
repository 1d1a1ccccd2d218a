package container

import (
	"iter"
	"sync/atomic"
)

// none is the null node reference. References are slot+1, so a zero
// LinkedList is a valid empty list.
const none = 0

var listIDs atomic.Uint64

type node[T any] struct {
	item T
	next int
	gen  uint32
	used bool
}

// Position refers to one node of a LinkedList. It stays valid until that node
// is removed; after that every lookup through it fails with
// ErrInvalidPosition. A Position only works with the list it came from. The
// zero Position is never valid.
type Position struct {
	list uint64
	ref  int
	gen  uint32
}

// NewLinkedList creates an empty list. The zero value is ready to use as well.
func NewLinkedList[T any]() *LinkedList[T] {
	return &LinkedList[T]{}
}

// LinkedList is a singly linked list. Nodes live in a slab and link to each
// other by slot reference; freed slots are recycled with a new generation.
type LinkedList[T any] struct {
	id    uint64
	nodes []node[T]
	free  []int
	head  int
	tail  int
	len   int
}

func (l *LinkedList[T]) Len() int {
	return l.len
}

func (l *LinkedList[T]) at(ref int) *node[T] {
	return &l.nodes[ref-1]
}

func (l *LinkedList[T]) identity() uint64 {
	if l.id == 0 {
		l.id = listIDs.Add(1)
	}

	return l.id
}

func (l *LinkedList[T]) alloc(item T, next int) int {
	if n := len(l.free); n > 0 {
		ref := l.free[n-1]
		l.free = l.free[:n-1]

		nd := l.at(ref)
		nd.item = item
		nd.next = next
		nd.used = true

		return ref
	}

	l.nodes = append(l.nodes, node[T]{
		item: item,
		next: next,
		gen:  1,
		used: true,
	})

	return len(l.nodes)
}

func (l *LinkedList[T]) release(ref int) T {
	nd := l.at(ref)
	item := nd.item

	var zero T
	nd.item = zero
	nd.next = none
	nd.used = false

	nd.gen++
	if nd.gen == 0 {
		nd.gen = 1
	}

	l.free = append(l.free, ref)

	return item
}

func (l *LinkedList[T]) nodeAt(pos int) int {
	ref := l.head
	for ; pos > 0; pos-- {
		ref = l.at(ref).next
	}

	return ref
}

func (l *LinkedList[T]) position(ref int) Position {
	return Position{
		list: l.identity(),
		ref:  ref,
		gen:  l.at(ref).gen,
	}
}

func (l *LinkedList[T]) valid(p Position) bool {
	if p.list == 0 || p.list != l.id || p.ref < 1 || p.ref > len(l.nodes) {
		return false
	}

	nd := l.at(p.ref)

	return nd.used && nd.gen == p.gen
}

func (l *LinkedList[T]) PositionAt(pos int) (Position, error) {
	if pos < 0 || pos >= l.len {
		return Position{}, ErrInvalidPosition
	}

	return l.position(l.nodeAt(pos)), nil
}

func (l *LinkedList[T]) First() (Position, error) {
	if l.len == 0 {
		return Position{}, ErrEmptyContainer
	}

	return l.position(l.head), nil
}

func (l *LinkedList[T]) Last() (Position, error) {
	if l.len == 0 {
		return Position{}, ErrEmptyContainer
	}

	return l.position(l.tail), nil
}

// Next steps to the successor of p. Stepping past the tail yields ErrEndOfList.
func (l *LinkedList[T]) Next(p Position) (Position, error) {
	if !l.valid(p) {
		return Position{}, ErrInvalidPosition
	}

	next := l.at(p.ref).next
	if next == none {
		return Position{}, ErrEndOfList
	}

	return l.position(next), nil
}

func (l *LinkedList[T]) Item(p Position) (zero T, _ error) {
	if !l.valid(p) {
		return zero, ErrInvalidPosition
	}

	return l.at(p.ref).item, nil
}

// SetItem substitutes the item at p and hands back the one it replaced.
func (l *LinkedList[T]) SetItem(p Position, item T) (zero T, _ error) {
	if !l.valid(p) {
		return zero, ErrInvalidPosition
	}

	nd := l.at(p.ref)
	prev := nd.item
	nd.item = item

	return prev, nil
}

func (l *LinkedList[T]) Insert(pos int, item T) error {
	if pos < 0 || pos > l.len {
		return ErrInvalidPosition
	}

	if pos == 0 {
		l.InsertFront(item)
		return nil
	}

	l.linkAfter(l.nodeAt(pos-1), item)

	return nil
}

func (l *LinkedList[T]) linkAfter(prev int, item T) int {
	next := l.at(prev).next

	ref := l.alloc(item, next)
	l.at(prev).next = ref

	if next == none {
		l.tail = ref
	}

	l.len++

	return ref
}

// InsertAfter links item right behind p in O(1) and returns its position.
func (l *LinkedList[T]) InsertAfter(p Position, item T) (Position, error) {
	if !l.valid(p) {
		return Position{}, ErrInvalidPosition
	}

	return l.position(l.linkAfter(p.ref, item)), nil
}

func (l *LinkedList[T]) InsertFront(item T) {
	ref := l.alloc(item, l.head)

	if l.len == 0 {
		l.tail = ref
	}

	l.head = ref
	l.len++
}

func (l *LinkedList[T]) InsertBack(item T) {
	ref := l.alloc(item, none)

	if l.len == 0 {
		l.head = ref
	} else {
		l.at(l.tail).next = ref
	}

	l.tail = ref
	l.len++
}

func (l *LinkedList[T]) unlinkAfter(prev int) T {
	target := l.at(prev).next
	l.at(prev).next = l.at(target).next

	if target == l.tail {
		l.tail = prev
	}

	l.len--

	return l.release(target)
}

func (l *LinkedList[T]) Remove(pos int) (zero T, _ error) {
	if pos == 0 {
		return l.RemoveFront()
	}

	if pos < 0 || pos >= l.len {
		if l.len == 0 {
			return zero, ErrEmptyContainer
		}

		return zero, ErrInvalidPosition
	}

	return l.unlinkAfter(l.nodeAt(pos - 1)), nil
}

// RemoveAfter unlinks the successor of p in O(1). p itself stays valid.
func (l *LinkedList[T]) RemoveAfter(p Position) (zero T, _ error) {
	if !l.valid(p) {
		return zero, ErrInvalidPosition
	}

	if l.at(p.ref).next == none {
		return zero, ErrEndOfList
	}

	return l.unlinkAfter(p.ref), nil
}

func (l *LinkedList[T]) RemoveFront() (zero T, _ error) {
	if l.len == 0 {
		return zero, ErrEmptyContainer
	}

	ref := l.head
	l.head = l.at(ref).next
	l.len--

	if l.len == 0 {
		l.tail = none
	}

	return l.release(ref), nil
}

// RemoveBack walks to the predecessor of the tail, so it costs O(n) even
// though the tail itself is cached.
func (l *LinkedList[T]) RemoveBack() (zero T, _ error) {
	if l.len == 0 {
		return zero, ErrEmptyContainer
	}

	return l.Remove(l.len - 1)
}

func (l *LinkedList[T]) Get(pos int) (zero T, _ error) {
	if pos < 0 || pos >= l.len {
		return zero, ErrInvalidPosition
	}

	return l.at(l.nodeAt(pos)).item, nil
}

// Set substitutes the item at pos and hands back the one it replaced.
func (l *LinkedList[T]) Set(pos int, item T) (zero T, _ error) {
	if pos < 0 || pos >= l.len {
		return zero, ErrInvalidPosition
	}

	nd := l.at(l.nodeAt(pos))
	prev := nd.item
	nd.item = item

	return prev, nil
}

func (l *LinkedList[T]) Front() (zero T, _ error) {
	if l.len == 0 {
		return zero, ErrEmptyContainer
	}

	return l.at(l.head).item, nil
}

func (l *LinkedList[T]) Back() (zero T, _ error) {
	if l.len == 0 {
		return zero, ErrEmptyContainer
	}

	return l.at(l.tail).item, nil
}

func (l *LinkedList[T]) SetFront(item T) (zero T, _ error) {
	if l.len == 0 {
		return zero, ErrEmptyContainer
	}

	nd := l.at(l.head)
	prev := nd.item
	nd.item = item

	return prev, nil
}

// SetBack is O(1) through the cached tail.
func (l *LinkedList[T]) SetBack(item T) (zero T, _ error) {
	if l.len == 0 {
		return zero, ErrEmptyContainer
	}

	nd := l.at(l.tail)
	prev := nd.item
	nd.item = item

	return prev, nil
}

func (l *LinkedList[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		for ref := l.head; ref != none; ref = l.at(ref).next {
			if !yield(l.at(ref).item) {
				return
			}
		}
	}
}

// Range yields the items at positions [start, stop).
func (l *LinkedList[T]) Range(start, stop int) (iter.Seq[T], error) {
	if start < 0 || start > stop || stop > l.len {
		return nil, ErrInvalidPosition
	}

	return func(yield func(T) bool) {
		if start == stop {
			return
		}

		ref := l.nodeAt(start)
		for i := start; i < stop && ref != none; i++ {
			if !yield(l.at(ref).item) {
				return
			}

			ref = l.at(ref).next
		}
	}, nil
}

// SubList copies the items at positions [start, stop) into a new list.
func (l *LinkedList[T]) SubList(start, stop int) (*LinkedList[T], error) {
	items, err := l.Range(start, stop)
	if err != nil {
		return nil, err
	}

	ret := NewLinkedList[T]()
	for v := range items {
		ret.InsertBack(v)
	}

	return ret, nil
}

func (l *LinkedList[T]) Slice() []T {
	ret := make([]T, 0, l.len)

	for item := range l.All() {
		ret = append(ret, item)
	}

	return ret
}

// Print walks the node chain. A single item only gets last.
func (l *LinkedList[T]) Print(first, middle, last func(T)) {
	ref := l.head
	if ref == none {
		return
	}

	if l.at(ref).next == none {
		last(l.at(ref).item)
		return
	}

	first(l.at(ref).item)

	for ref = l.at(ref).next; l.at(ref).next != none; ref = l.at(ref).next {
		middle(l.at(ref).item)
	}

	last(l.at(ref).item)
}

// Clear removes every node. Slots are kept for reuse but their generations
// move on, so positions taken before Clear stay invalid.
func (l *LinkedList[T]) Clear() {
	for ref := l.head; ref != none; {
		next := l.at(ref).next
		l.release(ref)
		ref = next
	}

	l.head = none
	l.tail = none
	l.len = 0
}

// Nodes reports the slab slot of every node from head to tail.
func (l *LinkedList[T]) Nodes() []int {
	ret := make([]int, 0, l.len)

	for ref := l.head; ref != none; ref = l.at(ref).next {
		ret = append(ret, ref-1)
	}

	return ret
}
