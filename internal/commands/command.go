// Package commands provides the command interface and implementations.
package commands

import (
	"context"
	"io"
	"log"

	"github.com/spf13/pflag"

	"todo/internal/config"
	"todo/internal/service"
	"todo/internal/todolist"
)

// Command defines the interface for CLI commands.
type Command interface {
	// Name returns the primary command name.
	Name() string

	// Aliases returns alternative names for the command.
	Aliases() []string

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the usage string for help output.
	Usage() string

	// NeedsBackend returns true if the command talks to the task API.
	// help and version return false.
	NeedsBackend() bool

	// RegisterFlags registers command-specific flags.
	RegisterFlags(fs *pflag.FlagSet)

	// Run executes the command.
	// cfg is always provided.
	// svc is nil if NeedsBackend() returns false.
	// args contains positional arguments after flag parsing.
	// Returns exit code.
	Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int
}

// newStore returns a client store whose diagnostics go to errOut.
func newStore(svc service.Service, errOut io.Writer) *todolist.Store {
	return todolist.New(svc, log.New(errOut, "", 0))
}
