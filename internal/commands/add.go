package commands

import (
	"context"
	"flag"
	"io"
	"strings"

	"taskzord/internal/config"
	"taskzord/internal/exitcode"
	"taskzord/internal/output"
	"taskzord/internal/service"
)

func init() {
	Register(&AddCmd{})
}

// AddCmd implements the add command.
type AddCmd struct {
	description string
}

// SetDescription sets the description (for testing).
func (c *AddCmd) SetDescription(desc string) {
	c.description = desc
}

func (c *AddCmd) Name() string       { return "add" }
func (c *AddCmd) Aliases() []string  { return []string{"create"} }
func (c *AddCmd) Synopsis() string   { return "Create a task" }
func (c *AddCmd) Usage() string      { return "taskzord add [--desc <text>] <title...>" }
func (c *AddCmd) NeedsSession() bool { return true }

func (c *AddCmd) RegisterFlags(fs *flag.FlagSet) {
	fs.StringVar(&c.description, "desc", "", "")
	fs.StringVar(&c.description, "d", "", "")
}

func (c *AddCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	// Title is taken verbatim; whitespace-only titles are valid.
	title := strings.Join(args, " ")

	task, err := svc.CreateTask(ctx, title, c.description)
	if err != nil {
		return reportError(errOut, err)
	}

	if !cfg.Quiet {
		output.FormatCreated(out, task)
	}
	return exitcode.Success
}
