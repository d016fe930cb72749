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
	Register(&HelpCmd{})
}

// HelpCmd implements the help command.
type HelpCmd struct{}

func (c *HelpCmd) Name() string       { return "help" }
func (c *HelpCmd) Aliases() []string  { return nil }
func (c *HelpCmd) Synopsis() string   { return "Print usage" }
func (c *HelpCmd) Usage() string      { return "taskzord help" }
func (c *HelpCmd) NeedsSession() bool { return false }

func (c *HelpCmd) RegisterFlags(fs *flag.FlagSet) {}

func (c *HelpCmd) Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int {
	fmt.Fprint(out, helpText)
	return exitcode.Success
}

const helpText = `Usage:
  taskzord                                  Open the task screen
  taskzord ui [common flags] [--dark]       Open the task screen
  taskzord add [common flags] [--desc <text>] <title...>
  taskzord create [common flags] [--desc <text>] <title...>
  taskzord done [common flags] <id>
  taskzord rm [common flags] <id>
  taskzord list [common flags] [--width <n>]
  taskzord shell [common flags]             Read commands from stdin, one per line
  taskzord help
  taskzord version

Tasks live in memory for one session. Use the screen or shell to work
with more than one command against the same list.

Common flags:
  --config <dir>   Override config directory
  --quiet          Suppress informational output
  --debug          Print debug logs to stderr (screen: debug.log in config dir)
`
