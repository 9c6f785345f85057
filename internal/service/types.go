// Package service defines the backend-agnostic interface for task operations.
package service

import "errors"

// ErrOutOfRange is returned when a task index is outside the bounds of the store.
var ErrOutOfRange = errors.New("task index out of range")

// Task represents a single to-do entry.
type Task struct {
	Description string
	Completed   bool
}
