package container

import "errors"

var (
	ErrInvalidPosition = errors.New("invalid position")
	ErrEmptyContainer  = errors.New("empty container")
	ErrEndOfList       = errors.New("end of list")
)
