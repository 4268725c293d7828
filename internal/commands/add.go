package commands

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/pflag"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/output"
	"todo/internal/service"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct{}

func (c *AddCmd) Name() string       { return "add" }
func (c *AddCmd) Aliases() []string  { return []string{"create"} }
func (c *AddCmd) Synopsis() string   { return "Create a task" }
func (c *AddCmd) Usage() string      { return "todo add <text...>" }
func (c *AddCmd) NeedsBackend() bool { return true }

func (c *AddCmd) RegisterFlags(fs *pflag.FlagSet) {}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	store := newStore(svc, errOut)
	store.SetInput(strings.Join(args, " "))

	req := store.Submit()
	if req == nil {
		fmt.Fprintln(errOut, "error: task text required")
		return exitcode.UserError
	}
	if err := store.Run(ctx, req); err != nil {
		return exitcode.BackendError
	}

	if !cfg.Quiet {
		output.FormatTasks(out, store.Tasks(), false)
	}
	return exitcode.Success
}
