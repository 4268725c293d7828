package commands

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"todo/internal/todolist"
)

// TaskRef represents a parsed task reference.
type TaskRef struct {
	Num int    // 1-based position; 0 when ID is set
	ID  string // server id, set with --id
}

// ErrTaskRefRequired indicates no task reference was provided.
var ErrTaskRefRequired = errors.New("task reference required")

// errOutOfRange is returned by resolve when a position is past the list end.
var errOutOfRange = errors.New("task number out of range")

// ParseTaskRef parses a task reference from args.
// With byID the single argument is taken verbatim as a server id.
// Otherwise it must be a positive integer position.
func ParseTaskRef(args []string, byID bool) (TaskRef, error) {
	if len(args) == 0 || strings.TrimSpace(args[0]) == "" {
		return TaskRef{}, ErrTaskRefRequired
	}
	if len(args) > 1 {
		return TaskRef{}, fmt.Errorf("too many arguments: %s", strings.Join(args[1:], " "))
	}

	if byID {
		return TaskRef{ID: args[0]}, nil
	}

	num, err := strconv.Atoi(args[0])
	if err != nil {
		return TaskRef{}, fmt.Errorf("invalid task reference: %s", args[0])
	}
	if num < 1 {
		return TaskRef{}, fmt.Errorf("%w: %d", errOutOfRange, num)
	}
	return TaskRef{Num: num}, nil
}

// resolve returns the server id for ref. A position is looked up in a freshly
// fetched list; the fetch also leaves the list in store.
func (ref TaskRef) resolve(ctx context.Context, store *todolist.Store) (string, error) {
	if ref.ID != "" {
		return ref.ID, nil
	}
	if err := store.Run(ctx, store.Load()); err != nil {
		return "", err
	}
	tasks := store.Tasks()
	if ref.Num > len(tasks) {
		return "", fmt.Errorf("%w: %d", errOutOfRange, ref.Num)
	}
	return tasks[ref.Num-1].ID, nil
}
