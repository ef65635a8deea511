package model

import "errors"

var (
	// ErrInvalidLine is returned when a line number below 1 is inserted into a coverage set.
	ErrInvalidLine = errors.New("invalid line number")
	// ErrAlreadyAttached is returned when a frame or step is attached to a second parent.
	ErrAlreadyAttached = errors.New("node already attached to a parent")
)
