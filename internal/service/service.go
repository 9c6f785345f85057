// Package service defines the backend-agnostic interface for task operations.
package service

// Service defines the interface for task store operations.
// Commands only talk to the store through this interface.
type Service interface {
	// AddTask appends a new open task with the given description.
	// Any description is accepted, including the empty string.
	AddTask(description string)

	// MarkTaskCompleted marks the task at the 0-based index as completed.
	// Returns an error wrapping ErrOutOfRange if index is outside [0, Len()).
	// Marking an already completed task is a no-op.
	MarkTaskCompleted(index int) error

	// Tasks returns all tasks in insertion order.
	// The returned slice is a copy; changing it does not affect the store.
	Tasks() []Task

	// Len returns the number of tasks.
	Len() int
}
