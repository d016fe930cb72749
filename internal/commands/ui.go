package commands

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"golang.org/x/term"

	"taskzord/internal/config"
	"taskzord/internal/exitcode"
	"taskzord/internal/service"
	"taskzord/internal/ui"
)

func init() {
	Register(&UICmd{})
}

// isTerminal reports whether w is an interactive terminal.
var isTerminal = func(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// runScreen starts the screen. Replaced in tests.
var runScreen = ui.Run

// UICmd implements the ui command.
type UICmd struct {
	dark bool
}

func (c *UICmd) Name() string       { return "ui" }
func (c *UICmd) Aliases() []string  { return nil }
func (c *UICmd) Synopsis() string   { return "Open the task screen" }
func (c *UICmd) Usage() string      { return "taskzord ui [--dark]" }
func (c *UICmd) NeedsSession() bool { return true }
func (c *UICmd) OwnsTerminal() bool { return true }

func (c *UICmd) RegisterFlags(fs *flag.FlagSet) {
	fs.BoolVar(&c.dark, "dark", false, "")
}

func (c *UICmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}
	if !isTerminal(os.Stdin) || !isTerminal(out) {
		fmt.Fprintln(errOut, "error: ui requires a terminal (use shell for scripts)")
		return exitcode.TerminalError
	}

	dark := c.dark || cfg.Settings.DarkMode
	if err := runScreen(ctx, svc, cfg.Settings, dark, os.Stdin, out); err != nil {
		fmt.Fprintf(errOut, "error: ui: %v\n", err)
		return exitcode.InternalError
	}
	return exitcode.Success
}
