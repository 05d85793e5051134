package task

import (
	"sync"

	"github.com/google/uuid"
)

// Option configures a Store.
type Option func(*Store)

// WithIDSource replaces the id generator. The source must return a value that
// is unique for the lifetime of the store.
func WithIDSource(next func() string) Option {
	return func(s *Store) {
		s.nextID = next
	}
}

// Store holds the ordered task list. Insertion order is display order.
//
// No operation returns an error: empty names, unknown ids and out-of-range
// positions are ignored. All methods are safe for concurrent use.
type Store struct {
	mu     sync.Mutex
	tasks  []Task
	nextID func() string
}

// NewStore returns a store holding a single uncompleted seed task.
func NewStore(opts ...Option) *Store {
	s := &Store{nextID: uuid.NewString}
	for _, opt := range opts {
		opt(s)
	}

	s.tasks = []Task{{ID: s.nextID(), Name: SeedName}}
	return s
}

// Add appends a new uncompleted task. An empty name is ignored.
// Returns true if a task was added.
func (s *Store) Add(name string) bool {
	if name == "" {
		return false
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	s.tasks = append(s.tasks, Task{ID: s.nextID(), Name: name})
	return true
}

// Toggle flips the completion flag of the task with the given id.
// Returns false if no task has that id.
func (s *Store) Toggle(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.tasks {
		if s.tasks[i].ID == id {
			s.tasks[i].Completed = !s.tasks[i].Completed
			return true
		}
	}
	return false
}

// DeleteAt removes the tasks at the given zero-based positions. Positions are
// resolved against the list as it was before the call, so removing {0, 1}
// drops the first two tasks. Out-of-range and repeated positions are ignored.
// Returns the number of tasks removed.
func (s *Store) DeleteAt(positions ...int) int {
	if len(positions) == 0 {
		return 0
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	drop := make(map[int]struct{}, len(positions))
	for _, p := range positions {
		if p >= 0 && p < len(s.tasks) {
			drop[p] = struct{}{}
		}
	}
	if len(drop) == 0 {
		return 0
	}

	kept := make([]Task, 0, len(s.tasks)-len(drop))
	for i, t := range s.tasks {
		if _, ok := drop[i]; !ok {
			kept = append(kept, t)
		}
	}
	s.tasks = kept
	return len(drop)
}

// List returns a copy of the tasks in display order.
func (s *Store) List() []Task {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]Task, len(s.tasks))
	copy(out, s.tasks)
	return out
}

// Len returns the number of tasks.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

// Get returns the task with the given id.
func (s *Store) Get(id string) (Task, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if i := s.indexOf(id); i >= 0 {
		return s.tasks[i], true
	}
	return Task{}, false
}

// IndexOf returns the current position of the task with the given id, or -1.
func (s *Store) IndexOf(id string) int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.indexOf(id)
}

func (s *Store) indexOf(id string) int {
	for i := range s.tasks {
		if s.tasks[i].ID == id {
			return i
		}
	}
	return -1
}
