package store

// EventKind identifies what changed in the store.
type EventKind int

const (
	// TaskCreated follows a successful Create.
	TaskCreated EventKind = iota + 1

	// FormReset follows TaskCreated. Presentations clear their input
	// fields and drop text-input focus when they see it.
	FormReset

	// TaskConfirmed follows a Confirm that flipped a task to confirmed.
	TaskConfirmed

	// TaskDeleted follows a Delete that removed a task.
	TaskDeleted
)

func (k EventKind) String() string {
	switch k {
	case TaskCreated:
		return "task-created"
	case FormReset:
		return "form-reset"
	case TaskConfirmed:
		return "task-confirmed"
	case TaskDeleted:
		return "task-deleted"
	default:
		return "unknown"
	}
}

// Event describes one state change. Task is the zero value for FormReset.
type Event struct {
	Kind EventKind
	Task Task
}

// Listener receives events synchronously after the change is applied.
type Listener func(Event)

type subscription struct {
	id int
	fn Listener
}

func (s *Store) emit(e Event) {
	// Copy so a listener may unsubscribe while being notified.
	subs := append([]subscription(nil), s.subs...)
	for _, sub := range subs {
		sub.fn(e)
	}
}

// Subscribe registers fn and returns a function that removes it.
// Listeners run in subscription order.
func (s *Store) Subscribe(fn Listener) (unsubscribe func()) {
	s.lastSub++
	id := s.lastSub
	s.subs = append(s.subs, subscription{id: id, fn: fn})
	return func() {
		for i, sub := range s.subs {
			if sub.id == id {
				s.subs = append(s.subs[:i], s.subs[i+1:]...)
				return
			}
		}
	}
}
