package store

// Store is the task list of one application session: the ordered tasks,
// their confirmation flags and the id counter.
//
// Every id in the confirmation map belongs to exactly one live task and
// vice versa. Ids are never reused, even after deletion.
//
// A Store is not safe for concurrent use. It is owned by a single
// goroutine (the screen's update loop or the command loop).
type Store struct {
	tasks     []Task
	confirmed map[int]bool
	nextID    int

	subs    []subscription
	lastSub int
}

// New returns an empty store whose first task will get id 1.
func New() *Store {
	return &Store{
		confirmed: make(map[int]bool),
		nextID:    1,
	}
}

// Create appends a new unconfirmed task. Both title and description must
// be non-empty; on failure it returns a *ValidationError and leaves the
// store untouched.
func (s *Store) Create(title, description string) (Task, error) {
	if err := validate(title, description); err != nil {
		return Task{}, err
	}

	t := Task{ID: s.nextID, Title: title, Description: description}
	s.tasks = append(s.tasks, t)
	s.confirmed[t.ID] = false
	s.nextID++

	s.emit(Event{Kind: TaskCreated, Task: t})
	s.emit(Event{Kind: FormReset})
	return t, nil
}

// Delete removes the task with the given id and its confirmation flag.
// Unknown ids are ignored. Reports whether a task was removed.
func (s *Store) Delete(id int) bool {
	idx := s.indexOf(id)
	if idx < 0 {
		return false
	}
	t := s.tasks[idx]
	s.tasks = append(s.tasks[:idx], s.tasks[idx+1:]...)
	delete(s.confirmed, id)

	s.emit(Event{Kind: TaskDeleted, Task: t})
	return true
}

// Confirm marks a live task as confirmed. There is no way back.
// Unknown ids are ignored so no orphan flags are ever stored.
// Reports whether id names a live task.
func (s *Store) Confirm(id int) bool {
	done, ok := s.confirmed[id]
	if !ok {
		return false
	}
	if done {
		return true
	}
	s.confirmed[id] = true

	t, _ := s.Get(id)
	s.emit(Event{Kind: TaskConfirmed, Task: t})
	return true
}

// Tasks returns a copy of the live tasks in insertion order.
func (s *Store) Tasks() []Task {
	out := make([]Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Get looks up a live task by id.
func (s *Store) Get(id int) (Task, bool) {
	idx := s.indexOf(id)
	if idx < 0 {
		return Task{}, false
	}
	return s.tasks[idx], true
}

// IsConfirmed reports the confirmation flag of id (false for unknown ids).
func (s *Store) IsConfirmed(id int) bool {
	return s.confirmed[id]
}

// Confirmed returns a copy of the confirmation map.
func (s *Store) Confirmed() map[int]bool {
	out := make(map[int]bool, len(s.confirmed))
	for id, done := range s.confirmed {
		out[id] = done
	}
	return out
}

// NextID is the id the next successful Create will assign.
func (s *Store) NextID() int { return s.nextID }

// Len is the number of live tasks.
func (s *Store) Len() int { return len(s.tasks) }

func (s *Store) indexOf(id int) int {
	for i, t := range s.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
