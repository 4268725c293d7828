// Package todolist holds the task list client: the pending input text and
// the last fetched list, kept in sync with the server by re-fetching the
// whole list after every mutation.
//
// Operations return a Request instead of performing I/O. A Request only
// talks to the service and may run on any goroutine; its Result must be fed
// back through Store.Handle on the goroutine that owns the Store. Results are
// applied in the order they are handled, so when requests overlap the last
// response to arrive wins.
package todolist

import (
	"context"
	"log"
	"strings"

	"todo/internal/service"
)

// Action identifies a mutating request.
type Action int

const (
	Create Action = iota
	Complete
	Undo
	Delete
)

func (a Action) String() string {
	switch a {
	case Create:
		return "creating"
	case Complete:
		return "updating"
	case Undo:
		return "undoing"
	case Delete:
		return "deleting"
	default:
		return "unknown"
	}
}

// Result is the outcome of a Request.
type Result interface {
	failure() error
}

// Loaded is the Result of a list fetch.
type Loaded struct {
	Tasks []service.Task
	Err   error
}

// Mutated is the Result of a create, complete, undo or delete request.
type Mutated struct {
	Action Action
	ID     string // empty for Create
	Err    error
}

func (r Loaded) failure() error  { return r.Err }
func (r Mutated) failure() error { return r.Err }

// Request performs one backend call.
type Request func(ctx context.Context) Result

// Store is the client's view state. It is not safe for concurrent use.
type Store struct {
	svc    service.Service
	logger *log.Logger

	input string
	tasks []service.Task
}

// New creates a Store with empty input and an empty list.
// Failures are written to logger.
func New(svc service.Service, logger *log.Logger) *Store {
	return &Store{
		svc:    svc,
		logger: logger,
		tasks:  []service.Task{},
	}
}

// Input returns the pending input text.
func (s *Store) Input() string { return s.input }

// Tasks returns the last fetched list. Callers must not modify it.
func (s *Store) Tasks() []service.Task { return s.tasks }

// SetInput replaces the pending input text. It issues no request.
func (s *Store) SetInput(v string) { s.input = v }

// Load fetches the whole list.
func (s *Store) Load() Request {
	svc := s.svc
	return func(ctx context.Context) Result {
		tasks, err := svc.ListTasks(ctx)
		return Loaded{Tasks: tasks, Err: err}
	}
}

// Submit creates a task from the pending input. It returns nil, and leaves
// the state alone, when the input is empty or only whitespace.
func (s *Store) Submit() Request {
	text := s.input
	if strings.TrimSpace(text) == "" {
		return nil
	}
	svc := s.svc
	return func(ctx context.Context) Result {
		return Mutated{Action: Create, Err: svc.CreateTask(ctx, text)}
	}
}

// Complete marks the task with id as done.
func (s *Store) Complete(id string) Request {
	return s.mutate(Complete, id, s.svc.CompleteTask)
}

// Undo marks the task with id as not done.
func (s *Store) Undo(id string) Request {
	return s.mutate(Undo, id, s.svc.UndoTask)
}

// Delete removes the task with id.
func (s *Store) Delete(id string) Request {
	return s.mutate(Delete, id, s.svc.DeleteTask)
}

func (s *Store) mutate(action Action, id string, call func(context.Context, string) error) Request {
	return func(ctx context.Context) Result {
		return Mutated{Action: action, ID: id, Err: call(ctx, id)}
	}
}

// Handle applies a Result to the state. After a successful mutation it
// returns the Load request that re-synchronizes the list; otherwise nil.
func (s *Store) Handle(r Result) Request {
	switch r := r.(type) {
	case Loaded:
		if r.Err != nil {
			s.logger.Printf("error fetching tasks: %v", r.Err)
			return nil
		}
		if r.Tasks == nil {
			s.tasks = []service.Task{}
		} else {
			s.tasks = r.Tasks
		}
		return nil

	case Mutated:
		if r.Err != nil {
			s.logger.Printf("error %s task: %v", r.Action, r.Err)
			return nil
		}
		if r.Action == Create {
			s.input = ""
		}
		return s.Load()
	}
	return nil
}

// Run executes req and every follow-up request synchronously, handling each
// Result in turn. It returns the first failure so callers without a view can
// report it; the failure has already been logged.
func (s *Store) Run(ctx context.Context, req Request) error {
	var first error
	for req != nil {
		r := req(ctx)
		if err := r.failure(); err != nil && first == nil {
			first = err
		}
		req = s.Handle(r)
	}
	return first
}
