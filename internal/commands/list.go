package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"taskzord/internal/config"
	"taskzord/internal/exitcode"
	"taskzord/internal/output"
	"taskzord/internal/service"
)

func init() {
	Register(&ListCmd{})
}

// ListCmd implements the list command.
type ListCmd struct {
	width int
}

// SetWidth sets the truncation width (for testing).
func (c *ListCmd) SetWidth(width int) {
	c.width = width
}

func (c *ListCmd) Name() string       { return "list" }
func (c *ListCmd) Aliases() []string  { return []string{"ls"} }
func (c *ListCmd) Synopsis() string   { return "List tasks" }
func (c *ListCmd) Usage() string      { return "taskzord list [--width <n>]" }
func (c *ListCmd) NeedsSession() bool { return true }

func (c *ListCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.width, "width", 0, "")
}

func (c *ListCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	if c.width < 0 {
		fmt.Fprintf(errOut, "error: invalid width: %d\n", c.width)
		return exitcode.UserError
	}
	if len(args) > 0 {
		fmt.Fprintf(errOut, "error: unexpected argument: %s\n", args[0])
		return exitcode.UserError
	}

	tasks, err := svc.ListTasks(ctx)
	if err != nil {
		return reportError(errOut, err)
	}

	if len(tasks) == 0 {
		if !cfg.Quiet {
			fmt.Fprintln(out, output.EmptyMessage)
		}
		return exitcode.Success
	}

	for _, task := range tasks {
		output.FormatTask(out, task, c.width)
	}
	return exitcode.Success
}
