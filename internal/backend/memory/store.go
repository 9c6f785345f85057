// Package memory implements the service.Service interface as an in-memory task list.
package memory

import (
	"fmt"

	"go.uber.org/zap"

	"todo/internal/service"
)

// Store implements service.Service over a growable slice.
// Indices are assigned on add and never change, since tasks are never removed.
// Store is not safe for concurrent use.
type Store struct {
	tasks  []service.Task
	logger *zap.Logger
}

// Option configures a Store.
type Option func(*Store)

// WithLogger sets the logger used for debug output.
func WithLogger(logger *zap.Logger) Option {
	return func(s *Store) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New creates an empty Store.
func New(opts ...Option) *Store {
	s := &Store{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// SetLogger replaces the debug logger and returns the previous one.
// A nil logger disables logging.
func (s *Store) SetLogger(logger *zap.Logger) *zap.Logger {
	prev := s.logger
	if logger == nil {
		logger = zap.NewNop()
	}
	s.logger = logger
	return prev
}

// AddTask implements service.Service.
func (s *Store) AddTask(description string) {
	s.tasks = append(s.tasks, service.Task{Description: description})
	s.logger.Debug("task added",
		zap.Int("index", len(s.tasks)-1),
		zap.String("description", description))
}

// MarkTaskCompleted implements service.Service.
func (s *Store) MarkTaskCompleted(index int) error {
	if index < 0 || index >= len(s.tasks) {
		s.logger.Debug("task index out of range",
			zap.Int("index", index),
			zap.Int("length", len(s.tasks)))
		return fmt.Errorf("%w: index %d, length %d", service.ErrOutOfRange, index, len(s.tasks))
	}

	if s.tasks[index].Completed {
		return nil
	}
	s.tasks[index].Completed = true
	s.logger.Debug("task completed", zap.Int("index", index))
	return nil
}

// Tasks implements service.Service.
func (s *Store) Tasks() []service.Task {
	result := make([]service.Task, len(s.tasks))
	copy(result, s.tasks)
	return result
}

// Len implements service.Service.
func (s *Store) Len() int {
	return len(s.tasks)
}

var _ service.Service = (*Store)(nil)
