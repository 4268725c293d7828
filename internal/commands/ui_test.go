package commands_test

import (
	"bytes"
	"context"
	"log"
	"os"
	"path/filepath"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"todo/internal/commands"
	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/testutil"
)

// restoreStdLogger undoes the redirect the ui command applies to the
// standard logger.
func restoreStdLogger(t *testing.T) {
	t.Helper()
	w, prefix, flags := log.Writer(), log.Prefix(), log.Flags()
	t.Cleanup(func() {
		log.SetOutput(w)
		log.SetPrefix(prefix)
		log.SetFlags(flags)
	})
}

func TestUICommand_RedirectsLogToFile(t *testing.T) {
	restoreStdLogger(t)

	dir := filepath.Join(t.TempDir(), "todo")
	cfg := &config.Config{Dir: dir, BaseURL: config.DefaultBaseURL}
	cmd := &commands.UICmd{}
	cmd.SetProgramOptions(tea.WithInput(nil), tea.WithoutSignalHandler())

	// a cancelled context ends the program right away
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	var outBuf, errBuf bytes.Buffer
	code := cmd.Run(ctx, cfg, testutil.NewFakeService(), nil, &outBuf, &errBuf)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d (stderr %q)", exitcode.Success, code, errBuf.String())
	}
	if errBuf.String() != "" {
		t.Errorf("expected no stderr, got %q", errBuf.String())
	}
	if _, err := os.Stat(filepath.Join(dir, config.LogFile)); err != nil {
		t.Errorf("expected log file to be created: %v", err)
	}
	f, ok := log.Writer().(*os.File)
	if !ok || f.Name() != cfg.LogFilePath() {
		t.Errorf("expected standard logger to write to %s, got %v", cfg.LogFilePath(), log.Writer())
	}
	if !strings.HasPrefix(log.Prefix(), "todo") {
		t.Errorf("expected log prefix todo, got %q", log.Prefix())
	}
}

func TestUICommand_ConfigDirFailure(t *testing.T) {
	restoreStdLogger(t)

	blocker := filepath.Join(t.TempDir(), "file")
	if err := os.WriteFile(blocker, nil, 0o644); err != nil {
		t.Fatal(err)
	}
	cfg := &config.Config{Dir: filepath.Join(blocker, "todo"), BaseURL: config.DefaultBaseURL}

	var outBuf, errBuf bytes.Buffer
	code := (&commands.UICmd{}).Run(context.Background(), cfg, testutil.NewFakeService(), nil, &outBuf, &errBuf)

	if code != exitcode.ConfigError {
		t.Errorf("expected exit code %d, got %d", exitcode.ConfigError, code)
	}
	if !strings.HasPrefix(errBuf.String(), "error: failed to create config directory: ") {
		t.Errorf("unexpected stderr %q", errBuf.String())
	}
	if outBuf.String() != "" {
		t.Errorf("expected no output, got %q", outBuf.String())
	}
}

func TestUICommand_LogFileFailure(t *testing.T) {
	restoreStdLogger(t)

	dir := t.TempDir()
	// a directory cannot be opened as the log file
	cfg := &config.Config{Dir: dir, BaseURL: config.DefaultBaseURL, LogPath: dir}

	var outBuf, errBuf bytes.Buffer
	code := (&commands.UICmd{}).Run(context.Background(), cfg, testutil.NewFakeService(), nil, &outBuf, &errBuf)

	if code != exitcode.ConfigError {
		t.Errorf("expected exit code %d, got %d", exitcode.ConfigError, code)
	}
	if !strings.HasPrefix(errBuf.String(), "error: failed to open log file: ") {
		t.Errorf("unexpected stderr %q", errBuf.String())
	}
}
