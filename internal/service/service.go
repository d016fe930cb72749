// Package service defines the session-facing interface for task operations.
package service

import (
	"context"

	"taskzord/internal/store"
)

// Service defines the interface for task operations.
// Commands and the screen never touch the store directly.
type Service interface {
	// CreateTask appends a task. Returns an error matching
	// store.ErrValidation when title or description is empty.
	CreateTask(ctx context.Context, title, description string) (TaskView, error)

	// ConfirmTask marks a live task confirmed.
	// Returns ErrNotFound if no task has that id.
	ConfirmTask(ctx context.Context, id int) error

	// DeleteTask removes a task. Unknown ids are accepted silently.
	DeleteTask(ctx context.Context, id int) error

	// ListTasks returns live tasks in creation order.
	ListTasks(ctx context.Context) ([]TaskView, error)

	// Subscribe registers a listener for store events.
	Subscribe(fn store.Listener) (unsubscribe func())
}
