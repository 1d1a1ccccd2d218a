package script

import (
	"fmt"
	"iter"
	"strings"

	"github.com/larynjahor/lists/container"
	"github.com/larynjahor/lists/format"
	"github.com/larynjahor/lists/render"
)

// sequence is the part of the list API shared by both list kinds.
type sequence interface {
	Insert(pos int, item int) error
	InsertFront(item int)
	InsertBack(item int)
	Remove(pos int) (int, error)
	RemoveFront() (int, error)
	RemoveBack() (int, error)
	Get(pos int) (int, error)
	Set(pos int, item int) (int, error)
	Front() (int, error)
	Back() (int, error)
	SetFront(item int) (int, error)
	SetBack(item int) (int, error)
	Range(start, stop int) (iter.Seq[int], error)
	All() iter.Seq[int]
	Len() int
	Print(first, middle, last func(int))
	Clear()
}

type target interface {
	apply(op Op, res *Result) error
}

func newTarget(d Decl, defaultSize int, sep string) (target, error) {
	switch d.Kind {
	case KindArray:
		size := d.Size
		if size == 0 {
			size = defaultSize
		}

		return &arrayTarget{name: d.Name, sep: sep, list: container.NewArrayList[int](size)}, nil
	case KindLinked:
		return &linkedTarget{name: d.Name, sep: sep, list: container.NewLinkedList[int]()}, nil
	case KindStack:
		return &stackTarget{name: d.Name, stack: container.NewStack[int]()}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownKind, d.Kind)
	}
}

func setValue(res *Result, v int, err error) {
	if err != nil {
		res.Error = err.Error()
		return
	}

	res.Value = &v
}

func join(items iter.Seq[int], sep string) string {
	var parts []string

	for v := range items {
		parts = append(parts, fmt.Sprint(v))
	}

	return strings.Join(parts, sep)
}

func setErr(res *Result, err error) {
	if err != nil {
		res.Error = err.Error()
	}
}

// applySequence handles the ops common to both lists. It reports false when
// op is not one of them.
func applySequence(seq sequence, sep string, op Op, res *Result) bool {
	switch op.Op {
	case "insert":
		setErr(res, seq.Insert(op.Pos, op.Value))
	case "insert_front":
		seq.InsertFront(op.Value)
	case "insert_back":
		seq.InsertBack(op.Value)
	case "remove":
		v, err := seq.Remove(op.Pos)
		setValue(res, v, err)
	case "remove_front":
		v, err := seq.RemoveFront()
		setValue(res, v, err)
	case "remove_back":
		v, err := seq.RemoveBack()
		setValue(res, v, err)
	case "get":
		v, err := seq.Get(op.Pos)
		setValue(res, v, err)
	case "set":
		v, err := seq.Set(op.Pos, op.Value)
		setValue(res, v, err)
	case "front":
		v, err := seq.Front()
		setValue(res, v, err)
	case "back":
		v, err := seq.Back()
		setValue(res, v, err)
	case "set_front":
		v, err := seq.SetFront(op.Value)
		setValue(res, v, err)
	case "set_back":
		v, err := seq.SetBack(op.Value)
		setValue(res, v, err)
	case "range":
		items, err := seq.Range(op.Pos, op.Stop)
		if err != nil {
			setErr(res, err)
		} else {
			res.Output = join(items, sep)
		}
	case "contains":
		found := container.Contains(seq.All(), op.Value)
		res.Found = &found
	case "index":
		v := container.Index(seq.All(), op.Value)
		res.Value = &v
	case "len":
	case "print":
		res.Output = format.Line[int](seq, sep)
	case "clear":
		seq.Clear()
	default:
		return false
	}

	res.Len = seq.Len()

	return true
}

type arrayTarget struct {
	name string
	sep  string
	list *container.ArrayList[int]
}

func (t *arrayTarget) apply(op Op, res *Result) error {
	if applySequence(t.list, t.sep, op, res) {
		return nil
	}

	switch op.Op {
	case "sort":
		switch op.Order {
		case "", "asc":
			t.list.Sort(container.Ascending[int])
		case "desc":
			t.list.Sort(container.Descending[int])
		default:
			res.Error = fmt.Sprintf("unknown order %q", op.Order)
		}
	case "sublist":
		sub, err := t.list.SubList(op.Pos, op.Stop)
		if err != nil {
			setErr(res, err)
		} else {
			res.Output = format.Line[int](sub, t.sep)
		}
	case "dump":
		res.Output = render.ArrayList(t.name, t.list)
	default:
		return fmt.Errorf("%w %q for %s", ErrUnknownOp, op.Op, KindArray)
	}

	res.Len = t.list.Len()

	return nil
}

type linkedTarget struct {
	name string
	sep  string
	list *container.LinkedList[int]
}

func (t *linkedTarget) apply(op Op, res *Result) error {
	if applySequence(t.list, t.sep, op, res) {
		return nil
	}

	switch op.Op {
	case "first":
		p, err := t.list.First()
		if err == nil {
			v, err := t.list.Item(p)
			setValue(res, v, err)
		} else {
			setErr(res, err)
		}
	case "last":
		p, err := t.list.Last()
		if err == nil {
			v, err := t.list.Item(p)
			setValue(res, v, err)
		} else {
			setErr(res, err)
		}
	case "insert_after":
		p, err := t.list.PositionAt(op.Pos)
		if err == nil {
			_, err = t.list.InsertAfter(p, op.Value)
		}

		setErr(res, err)
	case "remove_after":
		p, err := t.list.PositionAt(op.Pos)
		if err == nil {
			v, err := t.list.RemoveAfter(p)
			setValue(res, v, err)
		} else {
			setErr(res, err)
		}
	case "sublist":
		sub, err := t.list.SubList(op.Pos, op.Stop)
		if err != nil {
			setErr(res, err)
		} else {
			res.Output = format.Line[int](sub, t.sep)
		}
	case "walk":
		res.Output = t.walk()
	case "dump":
		res.Output = render.LinkedList(t.name, t.list)
	default:
		return fmt.Errorf("%w %q for %s", ErrUnknownOp, op.Op, KindLinked)
	}

	res.Len = t.list.Len()

	return nil
}

// walk steps through the list by position handles rather than by index.
func (t *linkedTarget) walk() string {
	return join(func(yield func(int) bool) {
		p, err := t.list.First()
		for ; err == nil; p, err = t.list.Next(p) {
			v, itemErr := t.list.Item(p)
			if itemErr != nil || !yield(v) {
				return
			}
		}
	}, t.sep)
}

type stackTarget struct {
	name  string
	stack *container.Stack[int]
}

func (t *stackTarget) apply(op Op, res *Result) error {
	switch op.Op {
	case "push":
		t.stack.Push(op.Value)
	case "pop":
		v, err := t.stack.Pop()
		setValue(res, v, err)
	case "peek":
		v, err := t.stack.Peek()
		setValue(res, v, err)
	case "empty":
		empty := t.stack.Empty()
		res.Empty = &empty
	case "len":
	case "clear":
		t.stack.Clear()
	case "dump":
		res.Output = render.Stack(t.name, t.stack)
	default:
		return fmt.Errorf("%w %q for %s", ErrUnknownOp, op.Op, KindStack)
	}

	res.Len = t.stack.Len()

	return nil
}
