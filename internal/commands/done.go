package commands

import (
	"context"
	"flag"
	"fmt"
	"io"

	"taskzord/internal/config"
	"taskzord/internal/exitcode"
	"taskzord/internal/service"
)

func init() {
	Register(&DoneCmd{})
}

// DoneCmd implements the done command.
type DoneCmd struct{}

func (c *DoneCmd) Name() string       { return "done" }
func (c *DoneCmd) Aliases() []string  { return []string{"confirm"} }
func (c *DoneCmd) Synopsis() string   { return "Mark a task confirmed" }
func (c *DoneCmd) Usage() string      { return "taskzord done <id>" }
func (c *DoneCmd) NeedsSession() bool { return true }

func (c *DoneCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *DoneCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	id, err := ParseTaskID(args)
	if err != nil {
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	}

	if err := svc.ConfirmTask(ctx, id); err != nil {
		return reportError(errOut, err)
	}

	if !cfg.Quiet {
		fmt.Fprintln(out, "ok")
	}
	return exitcode.Success
}
