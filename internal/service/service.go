// Package service defines the backend-agnostic interface for task operations.
package service

import (
	"context"
	"errors"
)

// ErrRequestFailed is the single failure kind of a backend call: connectivity
// loss, a non-2xx response and a malformed body all wrap it.
var ErrRequestFailed = errors.New("request failed")

// Service defines the interface for task backend operations.
// Commands and the interactive client never talk HTTP directly.
type Service interface {
	// ListTasks returns every task in server order.
	// An empty result is a non-nil empty slice or nil; callers treat both alike.
	ListTasks(ctx context.Context) ([]Task, error)

	// CreateTask creates a task with the given text.
	CreateTask(ctx context.Context, text string) error

	// CompleteTask marks a task as done.
	CompleteTask(ctx context.Context, id string) error

	// UndoTask marks a task as not done.
	UndoTask(ctx context.Context, id string) error

	// DeleteTask deletes a task.
	DeleteTask(ctx context.Context, id string) error
}
