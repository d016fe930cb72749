package commands_test

import (
	"bytes"
	"context"
	"errors"
	"strings"
	"testing"

	"taskzord/internal/commands"
	"taskzord/internal/config"
	"taskzord/internal/exitcode"
	"taskzord/internal/service"
	"taskzord/internal/testutil"
)

// runCommand is a helper to run a command with FakeService.
func runCommand(t *testing.T, cmd commands.Command, svc *testutil.FakeService, args []string, quiet bool) (stdout, stderr string, code int) {
	t.Helper()

	var outBuf, errBuf bytes.Buffer

	cfg := &config.Config{
		Dir:      t.TempDir(),
		Quiet:    quiet,
		Settings: config.DefaultSettings(),
	}

	var s service.Service
	if svc != nil {
		s = svc
	}
	code = cmd.Run(context.Background(), cfg, s, args, &outBuf, &errBuf)
	return outBuf.String(), errBuf.String(), code
}

// Tests for version command
func TestVersionCommand(t *testing.T) {
	cmd := &commands.VersionCmd{}

	stdout, stderr, code := runCommand(t, cmd, nil, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "taskzord 0.1.0\n" {
		t.Errorf("expected version output, got %q", stdout)
	}
}

// Tests for help command
func TestHelpCommand(t *testing.T) {
	cmd := &commands.HelpCmd{}

	stdout, stderr, code := runCommand(t, cmd, nil, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	for _, want := range []string{"Usage:", "taskzord add", "taskzord shell", "--desc"} {
		if !strings.Contains(stdout, want) {
			t.Errorf("help output should contain %q", want)
		}
	}
}

// Tests for add command
func TestAddCommand_Success(t *testing.T) {
	svc := testutil.NewFakeService()

	cmd := &commands.AddCmd{}
	cmd.SetDescription("2 liters")
	stdout, stderr, code := runCommand(t, cmd, svc, []string{"Buy", "milk"}, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "created 1\n" {
		t.Errorf("expected %q, got %q", "created 1\n", stdout)
	}

	task, ok := svc.Store.Get(1)
	if !ok || task.Title != "Buy milk" || task.Description != "2 liters" {
		t.Errorf("unexpected task %+v (found=%v)", task, ok)
	}
}

func TestAddCommand_Quiet(t *testing.T) {
	svc := testutil.NewFakeService()

	cmd := &commands.AddCmd{}
	cmd.SetDescription("x")
	stdout, _, code := runCommand(t, cmd, svc, []string{"A"}, true)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "" {
		t.Errorf("expected empty stdout in quiet mode, got %q", stdout)
	}
}

func TestAddCommand_ValidationErrors(t *testing.T) {
	tests := []struct {
		name string
		desc string
		args []string
		want string
	}{
		{"missing title", "x", nil, "error: preencha todos os campos: title required\n"},
		{"missing description", "", []string{"A"}, "error: preencha todos os campos: description required\n"},
		{"missing both", "", nil, "error: preencha todos os campos: title, description required\n"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := testutil.NewFakeService()
			cmd := &commands.AddCmd{}
			cmd.SetDescription(tt.desc)

			stdout, stderr, code := runCommand(t, cmd, svc, tt.args, false)

			if code != exitcode.UserError {
				t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
			}
			if stdout != "" {
				t.Errorf("expected no stdout, got %q", stdout)
			}
			if stderr != tt.want {
				t.Errorf("expected %q, got %q", tt.want, stderr)
			}
			if svc.Store.Len() != 0 || svc.Store.NextID() != 1 {
				t.Error("store changed after validation error")
			}
		})
	}
}

func TestAddCommand_WhitespaceTitle(t *testing.T) {
	svc := testutil.NewFakeService()

	cmd := &commands.AddCmd{}
	cmd.SetDescription(" ")
	_, _, code := runCommand(t, cmd, svc, []string{" "}, false)

	if code != exitcode.Success {
		t.Errorf("expected whitespace fields to be accepted, got exit %d", code)
	}
}

func TestAddCommand_InternalError(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.CreateTaskErr = service.ErrInternal

	cmd := &commands.AddCmd{}
	cmd.SetDescription("x")
	_, stderr, code := runCommand(t, cmd, svc, []string{"A"}, false)

	if code != exitcode.InternalError {
		t.Errorf("expected exit code %d, got %d", exitcode.InternalError, code)
	}
	if stderr != "error: internal error\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

// Tests for done command
func TestDoneCommand_Success(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask("A", "B")
	svc.AddTask("C", "D")

	cmd := &commands.DoneCmd{}
	stdout, stderr, code := runCommand(t, cmd, svc, []string{"#2"}, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	if stdout != "ok\n" {
		t.Errorf("expected ok, got %q", stdout)
	}
	if !svc.Store.IsConfirmed(2) || svc.Store.IsConfirmed(1) {
		t.Errorf("unexpected flags %v", svc.Store.Confirmed())
	}
}

func TestDoneCommand_NotFound(t *testing.T) {
	svc := testutil.NewFakeService()

	cmd := &commands.DoneCmd{}
	_, stderr, code := runCommand(t, cmd, svc, []string{"999"}, false)

	if code != exitcode.UserError {
		t.Errorf("expected exit code %d, got %d", exitcode.UserError, code)
	}
	if stderr != "error: task not found: 999\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
	if len(svc.Store.Confirmed()) != 0 {
		t.Errorf("stray confirmation written: %v", svc.Store.Confirmed())
	}
}

func TestDoneCommand_BadReference(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{nil, "error: task id required\n"},
		{[]string{"abc"}, "error: invalid task id: abc\n"},
		{[]string{"0"}, "error: invalid task id: 0\n"},
		{[]string{"1", "2"}, "error: unexpected argument: 2\n"},
	}

	for _, tt := range tests {
		svc := testutil.NewFakeService()
		_, stderr, code := runCommand(t, &commands.DoneCmd{}, svc, tt.args, false)
		if code != exitcode.UserError {
			t.Errorf("%v: expected exit code %d, got %d", tt.args, exitcode.UserError, code)
		}
		if stderr != tt.want {
			t.Errorf("%v: expected %q, got %q", tt.args, tt.want, stderr)
		}
		if len(svc.Calls) != 0 {
			t.Errorf("%v: service should not be called, got %v", tt.args, svc.Calls)
		}
	}
}

// Tests for rm command
func TestRmCommand_Success(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask("A", "B")
	svc.AddTask("C", "D")

	stdout, stderr, code := runCommand(t, &commands.RmCmd{}, svc, []string{"1"}, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" || stdout != "ok\n" {
		t.Errorf("unexpected output stdout=%q stderr=%q", stdout, stderr)
	}
	if _, ok := svc.Store.Get(1); ok {
		t.Error("task 1 still present")
	}
	if _, ok := svc.Store.Confirmed()[1]; ok {
		t.Error("confirmation entry for task 1 still present")
	}
}

func TestRmCommand_UnknownIDAccepted(t *testing.T) {
	svc := testutil.NewFakeService()

	stdout, stderr, code := runCommand(t, &commands.RmCmd{}, svc, []string{"42"}, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" || stdout != "ok\n" {
		t.Errorf("unexpected output stdout=%q stderr=%q", stdout, stderr)
	}
}

func TestRmCommand_BackendFailure(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.DeleteTaskErr = errors.New("disk on fire")

	_, stderr, code := runCommand(t, &commands.RmCmd{}, svc, []string{"1"}, false)

	if code != exitcode.InternalError {
		t.Errorf("expected exit code %d, got %d", exitcode.InternalError, code)
	}
	if stderr != "error: internal error: disk on fire\n" {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

// Tests for list command
func TestListCommand_WithTasks(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask("Buy milk", "2 liters")
	svc.AddTask("Bread", "whole grain")
	svc.AddTask("Eggs", "a dozen")
	svc.Store.Confirm(2)
	svc.Store.Delete(3)

	stdout, stderr, code := runCommand(t, &commands.ListCmd{}, svc, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stderr != "" {
		t.Errorf("expected no stderr, got %q", stderr)
	}
	testutil.GoldenString(t, "list_with_tasks", stdout)
}

func TestListCommand_Width(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.AddTask("Buy milk", "2 liters")

	cmd := &commands.ListCmd{}
	cmd.SetWidth(14)
	stdout, _, code := runCommand(t, cmd, svc, nil, false)

	if code != exitcode.Success {
		t.Errorf("expected exit code %d, got %d", exitcode.Success, code)
	}
	if stdout != "   1  [ ] Buy…\n" {
		t.Errorf("unexpected output %q", stdout)
	}
}

func TestListCommand_Empty(t *testing.T) {
	svc := testutil.NewFakeService()

	stdout, _, code := runCommand(t, &commands.ListCmd{}, svc, nil, false)
	if code != exitcode.Success || stdout != "no tasks found\n" {
		t.Errorf("unexpected result code=%d stdout=%q", code, stdout)
	}

	stdout, _, _ = runCommand(t, &commands.ListCmd{}, svc, nil, true)
	if stdout != "" {
		t.Errorf("expected empty stdout in quiet mode, got %q", stdout)
	}
}

func TestListCommand_Errors(t *testing.T) {
	svc := testutil.NewFakeService()
	svc.ListTasksErr = errors.New("boom")

	_, stderr, code := runCommand(t, &commands.ListCmd{}, svc, nil, false)
	if code != exitcode.InternalError || stderr != "error: internal error: boom\n" {
		t.Errorf("unexpected result code=%d stderr=%q", code, stderr)
	}

	cmd := &commands.ListCmd{}
	cmd.SetWidth(-1)
	_, stderr, code = runCommand(t, cmd, testutil.NewFakeService(), nil, false)
	if code != exitcode.UserError || stderr != "error: invalid width: -1\n" {
		t.Errorf("unexpected result code=%d stderr=%q", code, stderr)
	}
}

// Tests for ui command
func TestUICommand_RequiresTerminal(t *testing.T) {
	svc := testutil.NewFakeService()

	stdout, stderr, code := runCommand(t, &commands.UICmd{}, svc, nil, false)

	if code != exitcode.TerminalError {
		t.Errorf("expected exit code %d, got %d", exitcode.TerminalError, code)
	}
	if stdout != "" {
		t.Errorf("expected no stdout, got %q", stdout)
	}
	if !strings.HasPrefix(stderr, "error: ui requires a terminal") {
		t.Errorf("unexpected stderr %q", stderr)
	}
}

func TestUICommand_OwnsTerminal(t *testing.T) {
	var cmd commands.Command = &commands.UICmd{}
	owner, ok := cmd.(commands.TerminalOwner)
	if !ok || !owner.OwnsTerminal() {
		t.Error("ui should own the terminal")
	}
	if _, ok := commands.Command(&commands.ListCmd{}).(commands.TerminalOwner); ok {
		t.Error("list should not own the terminal")
	}
}

// Tests for registry
func TestRegistry_Aliases(t *testing.T) {
	for alias, name := range map[string]string{
		"create":  "add",
		"confirm": "done",
		"delete":  "rm",
		"ls":      "list",
	} {
		cmd, ok := commands.DefaultRegistry.Find(alias)
		if !ok {
			t.Errorf("alias %q not registered", alias)
			continue
		}
		if cmd.Name() != name {
			t.Errorf("alias %q resolves to %q, want %q", alias, cmd.Name(), name)
		}
	}
}

func TestRegistry_DuplicateRejected(t *testing.T) {
	r := commands.NewRegistry()
	if err := r.Register(&commands.AddCmd{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	err := r.Register(&commands.AddCmd{})
	if err == nil || err.Error() != `command add: "add" already used by add` {
		t.Errorf("expected duplicate error, got %v", err)
	}
}

// renamedAdd reuses AddCmd under another name with a clashing alias.
type renamedAdd struct {
	commands.AddCmd
}

func (c *renamedAdd) Name() string      { return "new" }
func (c *renamedAdd) Aliases() []string { return []string{"make", "create"} }

func TestRegistry_AliasClashRegistersNothing(t *testing.T) {
	r := commands.NewRegistry()
	if err := r.Register(&commands.AddCmd{}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	err := r.Register(&renamedAdd{})
	if err == nil || err.Error() != `command new: "create" already used by add` {
		t.Errorf("expected alias clash, got %v", err)
	}
	for _, word := range []string{"new", "make"} {
		if _, ok := r.Find(word); ok {
			t.Errorf("%q registered despite the clash", word)
		}
	}
	if cmd, _ := r.Find("create"); cmd.Name() != "add" {
		t.Errorf("create now resolves to %s", cmd.Name())
	}
}

func TestRegistry_AllSortedUnique(t *testing.T) {
	var names []string
	for _, cmd := range commands.DefaultRegistry.All() {
		names = append(names, cmd.Name())
	}
	want := "add,done,help,list,rm,ui,version"
	if got := strings.Join(names, ","); got != want {
		t.Errorf("expected %s, got %s", want, got)
	}
}
