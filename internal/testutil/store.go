// Package testutil provides testing utilities.
package testutil

import (
	"testing"

	"go.uber.org/zap/zaptest"

	"todo/internal/backend/memory"
)

// NewStore creates a memory store holding one open task per description.
// Store debug logs go to the test log.
func NewStore(t testing.TB, descriptions ...string) *memory.Store {
	t.Helper()
	s := memory.New(memory.WithLogger(zaptest.NewLogger(t)))
	for _, d := range descriptions {
		s.AddTask(d)
	}
	return s
}

// FaultyService wraps a memory store and injects errors for testing.
type FaultyService struct {
	*memory.Store

	// MarkErr, when set, is returned by MarkTaskCompleted without touching the store.
	MarkErr error
}

// NewFaultyService creates a FaultyService over a seeded store.
func NewFaultyService(t testing.TB, descriptions ...string) *FaultyService {
	t.Helper()
	return &FaultyService{Store: NewStore(t, descriptions...)}
}

// MarkTaskCompleted implements service.Service.
func (f *FaultyService) MarkTaskCompleted(index int) error {
	if f.MarkErr != nil {
		return f.MarkErr
	}
	return f.Store.MarkTaskCompleted(index)
}
