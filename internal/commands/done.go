package commands

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/spf13/pflag"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/output"
	"todo/internal/service"
	"todo/internal/todolist"
)

func init() {
	Register(&DoneCmd{})
}

// DoneCmd implements the done command.
type DoneCmd struct {
	byID bool
}

func (c *DoneCmd) Name() string       { return "done" }
func (c *DoneCmd) Aliases() []string  { return []string{"complete"} }
func (c *DoneCmd) Synopsis() string   { return "Mark a task completed" }
func (c *DoneCmd) Usage() string      { return "todo done [--id] <ref>" }
func (c *DoneCmd) NeedsBackend() bool { return true }

func (c *DoneCmd) RegisterFlags(fs *pflag.FlagSet) {
	fs.BoolVar(&c.byID, "id", false, "")
}

// SetByID sets the --id flag (for testing).
func (c *DoneCmd) SetByID(v bool) { c.byID = v }

func (c *DoneCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	return runMutation(ctx, cfg, svc, args, c.byID, (*todolist.Store).Complete, out, errOut)
}

// runMutation is the shared implementation for done, undo and rm: resolve the
// reference, issue the mutation, and print the list fetched after it.
func runMutation(ctx context.Context, cfg *config.Config, svc service.Service, args []string, byID bool,
	op func(*todolist.Store, string) todolist.Request, out, errOut io.Writer) int {
	ref, err := ParseTaskRef(args, byID)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	store := newStore(svc, errOut)
	id, err := ref.resolve(ctx, store)
	if err != nil {
		if errors.Is(err, errOutOfRange) {
			fmt.Fprintf(errOut, "error: %v\n", err)
			return exitcode.UserError
		}
		// already logged by the store
		return exitcode.BackendError
	}

	if err := store.Run(ctx, op(store, id)); err != nil {
		return exitcode.BackendError
	}

	if !cfg.Quiet {
		output.FormatTasks(out, store.Tasks(), false)
	}
	return exitcode.Success
}
