package main

import (
	"errors"
	"fmt"
	"log"
	"log/slog"
	"os"

	"github.com/larynjahor/lists/container"
	"github.com/larynjahor/lists/format"
	"github.com/larynjahor/lists/internal/config"
	"github.com/larynjahor/lists/logging"
	"github.com/larynjahor/lists/render"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalln(err)
	}

	c := logging.Auto(cfg.LogFile)
	defer c.Close()

	if err := run(cfg.Separator); err != nil {
		log.Fatalln(err)
	}
}

func run(sep string) error {
	first, middle, last := format.Hooks[int](os.Stdout, sep)

	nums := container.NewArrayList[int](4)
	for pos, v := range []int{5, 3, 8, 1} {
		if err := nums.Insert(pos, v); err != nil {
			return err
		}
	}

	nums.Print(first, middle, last)

	removed, err := nums.Remove(1)
	if err != nil {
		return err
	}

	slog.Info("removed from array list", slog.Int("item", removed), slog.Int("len", nums.Len()))
	nums.Print(first, middle, last)

	nums.Sort(container.Ascending[int])
	fmt.Println(render.ArrayList("nums", nums))

	chain := container.NewLinkedList[int]()

	if _, err := chain.RemoveFront(); !errors.Is(err, container.ErrEmptyContainer) {
		return fmt.Errorf("remove from empty list: got %v", err)
	}

	chain.InsertBack(10)
	chain.InsertBack(20)
	chain.InsertBack(30)
	chain.Print(first, middle, last)

	removed, err = chain.Remove(2)
	if err != nil {
		return err
	}

	tail, err := chain.Last()
	if err != nil {
		return err
	}

	item, err := chain.Item(tail)
	if err != nil {
		return err
	}

	slog.Info("removed tail of linked list", slog.Int("item", removed), slog.Int("new_tail", item))
	fmt.Println(render.LinkedList("chain", chain))

	undo := container.NewStack[int]()
	for v := range chain.All() {
		undo.Push(v)
	}

	fmt.Println(render.Stack("undo", undo))

	return nil
}
