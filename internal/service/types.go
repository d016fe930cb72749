package service

import "errors"

// ErrNotFound is returned when an id names no live task.
var ErrNotFound = errors.New("task not found")

// ErrInternal is returned when an operation failed unexpectedly.
// The underlying fault is logged, not returned.
var ErrInternal = errors.New("internal error")

// TaskView is a task together with its confirmation flag.
type TaskView struct {
	ID          int
	Title       string
	Description string
	Confirmed   bool
}
