// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"fmt"

	"taskzord/internal/service"
	"taskzord/internal/store"
)

// FakeService is a service.Service backed by a real store, with error
// injection and a call log for testing.
type FakeService struct {
	Store *store.Store

	// Error injection for testing
	CreateTaskErr  error
	ConfirmTaskErr error
	DeleteTaskErr  error
	ListTasksErr   error

	// Calls records operation names in call order.
	Calls []string
}

// NewFakeService creates a FakeService over an empty store.
func NewFakeService() *FakeService {
	return &FakeService{Store: store.New()}
}

// AddTask seeds a task, failing loudly on invalid input.
func (f *FakeService) AddTask(title, description string) store.Task {
	t, err := f.Store.Create(title, description)
	if err != nil {
		panic(fmt.Sprintf("testutil: seed task: %v", err))
	}
	return t
}

// CreateTask implements service.Service.
func (f *FakeService) CreateTask(ctx context.Context, title, description string) (service.TaskView, error) {
	f.Calls = append(f.Calls, "create")
	if f.CreateTaskErr != nil {
		return service.TaskView{}, f.CreateTaskErr
	}
	t, err := f.Store.Create(title, description)
	if err != nil {
		return service.TaskView{}, err
	}
	return service.TaskView{ID: t.ID, Title: t.Title, Description: t.Description}, nil
}

// ConfirmTask implements service.Service.
func (f *FakeService) ConfirmTask(ctx context.Context, id int) error {
	f.Calls = append(f.Calls, fmt.Sprintf("confirm %d", id))
	if f.ConfirmTaskErr != nil {
		return f.ConfirmTaskErr
	}
	if !f.Store.Confirm(id) {
		return fmt.Errorf("%w: %d", service.ErrNotFound, id)
	}
	return nil
}

// DeleteTask implements service.Service.
func (f *FakeService) DeleteTask(ctx context.Context, id int) error {
	f.Calls = append(f.Calls, fmt.Sprintf("delete %d", id))
	if f.DeleteTaskErr != nil {
		return f.DeleteTaskErr
	}
	f.Store.Delete(id)
	return nil
}

// ListTasks implements service.Service.
func (f *FakeService) ListTasks(ctx context.Context) ([]service.TaskView, error) {
	f.Calls = append(f.Calls, "list")
	if f.ListTasksErr != nil {
		return nil, f.ListTasksErr
	}
	var out []service.TaskView
	for _, t := range f.Store.Tasks() {
		out = append(out, service.TaskView{
			ID:          t.ID,
			Title:       t.Title,
			Description: t.Description,
			Confirmed:   f.Store.IsConfirmed(t.ID),
		})
	}
	return out, nil
}

// Subscribe implements service.Service.
func (f *FakeService) Subscribe(fn store.Listener) (unsubscribe func()) {
	return f.Store.Subscribe(fn)
}
