package cli

import (
	"bufio"
	"context"
	"flag"
	"fmt"
	"io"
	"strings"

	"github.com/mattn/go-shellwords"

	"taskzord/internal/exitcode"
)

const shellName = "shell"

// runShell reads one command per line from the dispatcher's input and runs
// each against the same session. A failing line does not stop the shell;
// the exit code is that of the last failing line, or success.
func (d *Dispatcher) runShell(ctx context.Context, args []string, out, errOut io.Writer) int {
	fs := flag.NewFlagSet(shellName, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	var common commonFlags
	common.register(fs)

	positional, code, ok := parseFlags(fs, args, errOut)
	if !ok {
		return code
	}
	if len(positional) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", positional[0])
		return exitcode.UserError
	}
	if d.in == nil {
		fmt.Fprintln(errOut, "error: shell: no input")
		return exitcode.UserError
	}

	// Shell-level flags apply to every line unless the line overrides them.
	inherited := common.args()

	last := exitcode.Success
	scanner := bufio.NewScanner(d.in)
	for lineNo := 1; scanner.Scan(); lineNo++ {
		if ctx.Err() != nil {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		words, err := shellwords.Parse(line)
		if err != nil {
			fmt.Fprintf(errOut, "error: line %d: %v\n", lineNo, err)
			last = exitcode.UserError
			continue
		}
		if len(words) == 0 {
			continue
		}

		name := words[0]
		if name == "exit" || name == "quit" {
			break
		}
		lineArgs := append(append([]string(nil), inherited...), words[1:]...)
		if code := d.runShellLine(ctx, name, lineArgs, out, errOut); code != exitcode.Success {
			last = code
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(errOut, "error: shell: %v\n", err)
		return exitcode.InternalError
	}
	return last
}

func (d *Dispatcher) runShellLine(ctx context.Context, name string, args []string, out, errOut io.Writer) int {
	if strings.HasPrefix(name, "-") {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", name)
		return exitcode.UserError
	}
	if name == shellName {
		fmt.Fprintln(errOut, "error: shell cannot be nested")
		return exitcode.UserError
	}
	cmd, ok := d.registry.Find(name)
	if !ok {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", name)
		return exitcode.UserError
	}
	if cmd.Name() == "ui" {
		fmt.Fprintln(errOut, "error: ui is not available in shell")
		return exitcode.UserError
	}
	return d.dispatchCommand(ctx, cmd, args, out, errOut)
}

// args renders the flags back into arguments for per-line dispatch.
func (f *commonFlags) args() []string {
	var out []string
	if f.configDir != "" {
		out = append(out, "--config", f.configDir)
	}
	if f.quiet {
		out = append(out, "--quiet")
	}
	if f.debug {
		out = append(out, "--debug")
	}
	return out
}
