package commands

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/pflag"

	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/service"
	"todo/internal/todolist"
	"todo/internal/tui"
)

func init() {
	Register(&UICmd{})
}

// UICmd implements the interactive client. It is also what runs with no
// arguments.
type UICmd struct {
	programOptions []tea.ProgramOption
}

func (c *UICmd) Name() string       { return "ui" }
func (c *UICmd) Aliases() []string  { return nil }
func (c *UICmd) Synopsis() string   { return "Open the interactive list" }
func (c *UICmd) Usage() string      { return "todo ui" }
func (c *UICmd) NeedsBackend() bool { return true }

func (c *UICmd) RegisterFlags(fs *pflag.FlagSet) {}

// SetProgramOptions appends options to the bubbletea program (for testing).
func (c *UICmd) SetProgramOptions(opts ...tea.ProgramOption) {
	c.programOptions = append(c.programOptions, opts...)
}

func (c *UICmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if err := cfg.EnsureDir(); err != nil {
		fmt.Fprintf(errOut, "error: failed to create config directory: %v\n", err)
		return exitcode.ConfigError
	}

	// Diagnostics would corrupt the screen, so the standard logger (also
	// used for --debug request lines) is pointed at a file.
	logFile, err := tea.LogToFile(cfg.LogFilePath(), "todo")
	if err != nil {
		fmt.Fprintf(errOut, "error: failed to open log file: %v\n", err)
		return exitcode.ConfigError
	}
	defer logFile.Close()

	store := todolist.New(svc, log.Default())
	opts := append([]tea.ProgramOption{
		tea.WithContext(ctx),
		tea.WithOutput(out),
		tea.WithAltScreen(),
	}, c.programOptions...)
	p := tea.NewProgram(tui.New(ctx, store), opts...)
	if _, err := p.Run(); err != nil && !errors.Is(err, tea.ErrProgramKilled) {
		// no usable terminal: an environment problem like the ones above
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.ConfigError
	}
	return exitcode.Success
}
