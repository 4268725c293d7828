// Package testutil provides testing utilities.
package testutil

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"todo/internal/service"
)

// FakeService is an in-memory implementation of service.Service for testing.
type FakeService struct {
	mu     sync.Mutex
	tasks  []service.Task
	nextID int
	calls  []string

	// Error injection for testing
	ListTasksErr    error
	CreateTaskErr   error
	CompleteTaskErr error
	UndoTaskErr     error
	DeleteTaskErr   error
}

// NewFakeService creates an empty FakeService.
func NewFakeService() *FakeService {
	return &FakeService{nextID: 1}
}

// AddTask seeds a task with a fixed id.
func (f *FakeService) AddTask(id, text string, done bool) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.tasks = append(f.tasks, service.Task{ID: id, Text: text, Done: done})
}

// Snapshot returns a copy of the stored tasks.
func (f *FakeService) Snapshot() []service.Task {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]service.Task, len(f.tasks))
	copy(out, f.tasks)
	return out
}

// Calls returns the operations issued so far, e.g. "list", "complete 1".
func (f *FakeService) Calls() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, len(f.calls))
	copy(out, f.calls)
	return out
}

func (f *FakeService) record(format string, args ...any) {
	f.calls = append(f.calls, fmt.Sprintf(format, args...))
}

// ListTasks implements service.Service.
func (f *FakeService) ListTasks(ctx context.Context) ([]service.Task, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("list")
	if f.ListTasksErr != nil {
		return nil, f.ListTasksErr
	}
	if len(f.tasks) == 0 {
		return nil, nil
	}
	out := make([]service.Task, len(f.tasks))
	copy(out, f.tasks)
	return out, nil
}

// CreateTask implements service.Service.
func (f *FakeService) CreateTask(ctx context.Context, text string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("create %s", text)
	if f.CreateTaskErr != nil {
		return f.CreateTaskErr
	}
	// Skip ids that were seeded by hand
	id := strconv.Itoa(f.nextID)
	for f.indexLocked(id) >= 0 {
		f.nextID++
		id = strconv.Itoa(f.nextID)
	}
	f.nextID++
	f.tasks = append(f.tasks, service.Task{ID: id, Text: text})
	return nil
}

// CompleteTask implements service.Service.
func (f *FakeService) CompleteTask(ctx context.Context, id string) error {
	return f.setDone("complete", id, true, f.CompleteTaskErr)
}

// UndoTask implements service.Service.
func (f *FakeService) UndoTask(ctx context.Context, id string) error {
	return f.setDone("undo", id, false, f.UndoTaskErr)
}

func (f *FakeService) setDone(op, id string, done bool, injected error) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("%s %s", op, id)
	if injected != nil {
		return injected
	}
	// Like the reference server, an unknown id is not an error.
	if i := f.indexLocked(id); i >= 0 {
		f.tasks[i].Done = done
	}
	return nil
}

// DeleteTask implements service.Service.
func (f *FakeService) DeleteTask(ctx context.Context, id string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.record("delete %s", id)
	if f.DeleteTaskErr != nil {
		return f.DeleteTaskErr
	}
	if i := f.indexLocked(id); i >= 0 {
		f.tasks = append(f.tasks[:i], f.tasks[i+1:]...)
	}
	return nil
}

func (f *FakeService) indexLocked(id string) int {
	for i, t := range f.tasks {
		if t.ID == id {
			return i
		}
	}
	return -1
}
