package service

import (
	"context"
	"fmt"

	"github.com/go-logr/logr"

	"taskzord/internal/logging"
	"taskzord/internal/store"
)

// Local implements Service over an in-memory store owned by the caller.
type Local struct {
	st  *store.Store
	log logr.Logger
}

// NewLocal wraps st. The logger is used for per-call trace lines and for
// faults recovered at the boundary.
func NewLocal(st *store.Store, log logr.Logger) *Local {
	return &Local{st: st, log: log}
}

// CreateTask implements Service.
func (l *Local) CreateTask(ctx context.Context, title, description string) (view TaskView, err error) {
	defer func() {
		if r := recover(); r != nil {
			l.log.Error(fmt.Errorf("%v", r), "create task panicked")
			view, err = TaskView{}, ErrInternal
		}
	}()

	t, err := l.st.Create(title, description)
	if err != nil {
		l.log.V(logging.DebugLevel).Info("create rejected", "reason", err.Error())
		return TaskView{}, err
	}
	l.log.V(logging.DebugLevel).Info("task created", "id", t.ID)
	return toView(t, false), nil
}

// ConfirmTask implements Service.
func (l *Local) ConfirmTask(ctx context.Context, id int) error {
	if !l.st.Confirm(id) {
		l.log.V(logging.DebugLevel).Info("confirm ignored", "id", id)
		return fmt.Errorf("%w: %d", ErrNotFound, id)
	}
	l.log.V(logging.DebugLevel).Info("task confirmed", "id", id)
	return nil
}

// DeleteTask implements Service.
func (l *Local) DeleteTask(ctx context.Context, id int) error {
	removed := l.st.Delete(id)
	l.log.V(logging.DebugLevel).Info("delete", "id", id, "removed", removed)
	return nil
}

// ListTasks implements Service.
func (l *Local) ListTasks(ctx context.Context) ([]TaskView, error) {
	tasks := l.st.Tasks()
	out := make([]TaskView, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, toView(t, l.st.IsConfirmed(t.ID)))
	}
	return out, nil
}

// Subscribe implements Service.
func (l *Local) Subscribe(fn store.Listener) (unsubscribe func()) {
	return l.st.Subscribe(fn)
}

func toView(t store.Task, confirmed bool) TaskView {
	return TaskView{
		ID:          t.ID,
		Title:       t.Title,
		Description: t.Description,
		Confirmed:   confirmed,
	}
}
