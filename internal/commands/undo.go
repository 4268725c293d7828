package commands

import (
	"context"
	"io"

	"github.com/spf13/pflag"

	"todo/internal/config"
	"todo/internal/service"
	"todo/internal/todolist"
)

func init() {
	Register(&UndoCmd{})
}

// UndoCmd implements the undo command.
type UndoCmd struct {
	byID bool
}

func (c *UndoCmd) Name() string       { return "undo" }
func (c *UndoCmd) Aliases() []string  { return nil }
func (c *UndoCmd) Synopsis() string   { return "Mark a task not completed" }
func (c *UndoCmd) Usage() string      { return "todo undo [--id] <ref>" }
func (c *UndoCmd) NeedsBackend() bool { return true }

func (c *UndoCmd) RegisterFlags(fs *pflag.FlagSet) {
	fs.BoolVar(&c.byID, "id", false, "")
}

func (c *UndoCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	return runMutation(ctx, cfg, svc, args, c.byID, (*todolist.Store).Undo, out, errOut)
}
