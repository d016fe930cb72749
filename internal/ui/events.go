package ui

import "taskzord/internal/store"

// eventQueue collects store events raised while the model calls into the
// service. The store notifies synchronously, so the queue is drained at
// the end of the same Update.
type eventQueue struct {
	pending []store.Event
}

func (q *eventQueue) push(e store.Event) {
	q.pending = append(q.pending, e)
}

func (q *eventQueue) drain() []store.Event {
	out := q.pending
	q.pending = nil
	return out
}
