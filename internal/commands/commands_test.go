package commands_test

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"testing"

	"todo/internal/commands"
	"todo/internal/config"
	"todo/internal/exitcode"
	"todo/internal/service"
	"todo/internal/testutil"
)

var errNetwork = fmt.Errorf("%w: connection refused", service.ErrRequestFailed)

// runCommand is a helper to run a command with FakeService.
func runCommand(t *testing.T, cmd commands.Command, svc *testutil.FakeService, args []string, quiet bool) (stdout, stderr string, code int) {
	t.Helper()

	var outBuf, errBuf bytes.Buffer

	cfg := &config.Config{
		Dir:     t.TempDir(),
		BaseURL: config.DefaultBaseURL,
		Quiet:   quiet,
	}

	var s service.Service
	if svc != nil {
		s = svc
	}

	ctx := context.Background()
	code = cmd.Run(ctx, cfg, s, args, &outBuf, &errBuf)
	return outBuf.String(), errBuf.String(), code
}

func seeded() *testutil.FakeService {
	svc := testutil.NewFakeService()
	svc.AddTask("1", "buy milk", false)
	svc.AddTask("2", "walk dog", true)
	svc.AddTask("3", "call mom", false)
	return svc
}

// Tests for version command
func TestVersionCommand(t *testing.T) {
	stdout, stderr, code := runCommand(t, &commands.VersionCmd{}, nil, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "todo 0.1.0\n" {
		t.Errorf("expected version output, got %q", stdout)
	}
}

// Tests for help command
func TestHelpCommand(t *testing.T) {
	stdout, stderr, code := runCommand(t, &commands.HelpCmd{}, nil, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	for _, want := range []string{"Usage:", "todo add <text...> (create)", "todo rm [--id] <ref> (delete)", "todo undo", "--id           treat <ref> as the server id"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("help output should contain %q, got:\n%s", want, stdout)
		}
	}
}

// Tests for list command
func TestListCommand(t *testing.T) {
	stdout, stderr, code := runCommand(t, &commands.ListCmd{}, seeded(), nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	testutil.GoldenString(t, "list_mixed", stdout)
}

func TestListCommand_Empty(t *testing.T) {
	stdout, _, code := runCommand(t, &commands.ListCmd{}, testutil.NewFakeService(), nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "no tasks\n" {
		t.Errorf("expected %q, got %q", "no tasks\n", stdout)
	}
}

func TestListCommand_EmptyQuiet(t *testing.T) {
	stdout, _, _ := runCommand(t, &commands.ListCmd{}, testutil.NewFakeService(), nil, true)

	if stdout != "" {
		t.Errorf("expected empty stdout in quiet mode, got %q", stdout)
	}
}

func TestListCommand_BackendError(t *testing.T) {
	svc := seeded()
	svc.ListTasksErr = errNetwork

	stdout, stderr, code := runCommand(t, &commands.ListCmd{}, svc, nil, false)

	if code != exitcode.BackendError {
		t.Errorf("expected exit code %d, got %d", exitcode.BackendError, code)
	}
	if stdout != "" {
		t.Errorf("expected no stdout, got %q", stdout)
	}
	expected := "error fetching tasks: request failed: connection refused\n"
	if stderr != expected {
		t.Errorf("expected %q, got %q", expected, stderr)
	}
}

// Tests for add command
func TestAddCommand_Success(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask("1", "buy milk", false)

	stdout, stderr, code := runCommand(t, &commands.AddCmd{}, svc, []string{"walk", "the", "dog"}, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	testutil.GoldenString(t, "add_refreshed", stdout)

	calls := strings.Join(svc.Calls(), ",")
	if calls != "create walk the dog,list" {
		t.Errorf("expected create then list, got %q", calls)
	}
}

func TestAddCommand_Quiet(t *testing.T) {
	svc := testutil.NewFakeService()

	stdout, _, code := runCommand(t, &commands.AddCmd{}, svc, []string{"buy", "milk"}, true)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "" {
		t.Errorf("expected no stdout in quiet mode, got %q", stdout)
	}
	if len(svc.Snapshot()) != 1 {
		t.Errorf("expected 1 task, got %d", len(svc.Snapshot()))
	}
}

func TestAddCommand_NoText(t *testing.T) {
	for _, args := range [][]string{nil, {""}, {" ", "\t"}} {
		svc := testutil.NewFakeService()

		_, stderr, code := runCommand(t, &commands.AddCmd{}, svc, args, false)

		if code != exitcode.UserError {
			t.Errorf("args %q: expected exit code %d, got %d", args, exitcode.UserError, code)
		}
		if stderr != "error: task text required\n" {
			t.Errorf("args %q: unexpected stderr %q", args, stderr)
		}
		if len(svc.Calls()) != 0 {
			t.Errorf("args %q: expected no requests, got %v", args, svc.Calls())
		}
	}
}

func TestAddCommand_BackendError(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.CreateTaskErr = errNetwork

	stdout, stderr, code := runCommand(t, &commands.AddCmd{}, svc, []string{"buy", "milk"}, false)

	if code != exitcode.BackendError {
		t.Errorf("expected exit code %d, got %d", exitcode.BackendError, code)
	}
	if stdout != "" {
		t.Errorf("expected no stdout, got %q", stdout)
	}
	if !strings.HasPrefix(stderr, "error creating task: ") {
		t.Errorf("unexpected stderr %q", stderr)
	}
	if calls := svc.Calls(); len(calls) != 1 {
		t.Errorf("expected no refresh after failure, got %v", calls)
	}
}

// Tests for done, undo and rm
func TestDoneCommand_ByPosition(t *testing.T) {
	svc := seeded()

	stdout, stderr, code := runCommand(t, &commands.DoneCmd{}, svc, []string{"3"}, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	testutil.GoldenString(t, "done_refreshed", stdout)

	calls := strings.Join(svc.Calls(), ",")
	if calls != "list,complete 3,list" {
		t.Errorf("unexpected calls %q", calls)
	}
}

func TestDoneCommand_ByID(t *testing.T) {
	svc := seeded()
	cmd := &commands.DoneCmd{}
	cmd.SetByID(true)

	_, _, code := runCommand(t, cmd, svc, []string{"1"}, true)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	calls := strings.Join(svc.Calls(), ",")
	if calls != "complete 1,list" {
		t.Errorf("expected no lookup fetch with --id, got %q", calls)
	}
	if !svc.Snapshot()[0].Done {
		t.Error("expected task 1 to be done")
	}
}

func TestUndoCommand(t *testing.T) {
	svc := seeded()

	stdout, _, code := runCommand(t, &commands.UndoCmd{}, svc, []string{"2"}, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if !strings.Contains(stdout, "   2  [ ] walk dog\n") {
		t.Errorf("expected walk dog to be open, got %q", stdout)
	}
}

func TestRmCommand(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask("1", "buy milk", false)

	stdout, _, code := runCommand(t, &commands.RmCmd{}, svc, []string{"1"}, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "no tasks\n" {
		t.Errorf("expected %q, got %q", "no tasks\n", stdout)
	}
}

func TestMutationCommands_RefErrors(t *testing.T) {
	tests := []struct {
		args   []string
		stderr string
	}{
		{nil, "error: task reference required\n"},
		{[]string{"abc"}, "error: invalid task reference: abc\n"},
		{[]string{"0"}, "error: task number out of range: 0\n"},
		{[]string{"4"}, "error: task number out of range: 4\n"},
		{[]string{"1", "2"}, "error: too many arguments: 2\n"},
	}
	for _, cmd := range []commands.Command{&commands.DoneCmd{}, &commands.UndoCmd{}, &commands.RmCmd{}} {
		for _, tt := range tests {
			stdout, stderr, code := runCommand(t, cmd, seeded(), tt.args, false)

			if code != exitcode.UserError {
				t.Errorf("%s %q: expected exit code %d, got %d", cmd.Name(), tt.args, exitcode.UserError, code)
			}
			if stdout != "" {
				t.Errorf("%s %q: expected no stdout, got %q", cmd.Name(), tt.args, stdout)
			}
			if stderr != tt.stderr {
				t.Errorf("%s %q: expected %q, got %q", cmd.Name(), tt.args, tt.stderr, stderr)
			}
		}
	}
}

func TestMutationCommands_BackendError(t *testing.T) {
	tests := []struct {
		cmd    commands.Command
		inject func(*testutil.FakeService)
		log    string
	}{
		{&commands.DoneCmd{}, func(f *testutil.FakeService) { f.CompleteTaskErr = errNetwork }, "error updating task: "},
		{&commands.UndoCmd{}, func(f *testutil.FakeService) { f.UndoTaskErr = errNetwork }, "error undoing task: "},
		{&commands.RmCmd{}, func(f *testutil.FakeService) { f.DeleteTaskErr = errNetwork }, "error deleting task: "},
	}
	for _, tt := range tests {
		svc := seeded()
		tt.inject(svc)

		stdout, stderr, code := runCommand(t, tt.cmd, svc, []string{"1"}, false)

		if code != exitcode.BackendError {
			t.Errorf("%s: expected exit code %d, got %d", tt.cmd.Name(), exitcode.BackendError, code)
		}
		if stdout != "" {
			t.Errorf("%s: expected no stdout, got %q", tt.cmd.Name(), stdout)
		}
		if !strings.HasPrefix(stderr, tt.log) {
			t.Errorf("%s: expected stderr to start with %q, got %q", tt.cmd.Name(), tt.log, stderr)
		}
	}
}

func TestMutationCommands_LookupFetchFails(t *testing.T) {
	svc := seeded()
	svc.ListTasksErr = errNetwork

	_, stderr, code := runCommand(t, &commands.DoneCmd{}, svc, []string{"1"}, false)

	if code != exitcode.BackendError {
		t.Errorf("expected exit code %d, got %d", exitcode.BackendError, code)
	}
	if !strings.HasPrefix(stderr, "error fetching tasks: ") {
		t.Errorf("unexpected stderr %q", stderr)
	}
	if calls := svc.Calls(); len(calls) != 1 {
		t.Errorf("expected only the lookup fetch, got %v", calls)
	}
}
