// Package commands provides the command interface and implementations.
package commands

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"

	"taskzord/internal/config"
	"taskzord/internal/exitcode"
	"taskzord/internal/service"
	"taskzord/internal/store"
)

// Command defines the interface for CLI commands.
type Command interface {
	// Name returns the primary command name.
	Name() string

	// Aliases returns alternative names for the command.
	Aliases() []string

	// Synopsis returns a short description for help output.
	Synopsis() string

	// Usage returns the usage string for help output.
	Usage() string

	// NeedsSession returns true if the command operates on the task store.
	// Commands like help and version return false.
	NeedsSession() bool

	// RegisterFlags registers command-specific flags.
	RegisterFlags(fs *flag.FlagSet)

	// Run executes the command.
	// cfg is always provided (config dir, settings).
	// svc is nil if NeedsSession() returns false.
	// args contains positional arguments after flag parsing.
	// Returns exit code.
	Run(ctx context.Context, cfg *config.Config, svc service.Service, args []string, out, errOut io.Writer) int
}

// TerminalOwner is implemented by commands that draw on the terminal.
// Their session logs must not go to stderr.
type TerminalOwner interface {
	OwnsTerminal() bool
}

// reportError prints err and maps it to an exit code.
func reportError(errOut io.Writer, err error) int {
	switch {
	case errors.Is(err, store.ErrValidation), errors.Is(err, service.ErrNotFound):
		fmt.Fprintf(errOut, "error: %v\n", err)
		return exitcode.UserError
	case errors.Is(err, service.ErrInternal):
		fmt.Fprintln(errOut, "error: internal error")
		return exitcode.InternalError
	default:
		fmt.Fprintf(errOut, "error: internal error: %v\n", err)
		return exitcode.InternalError
	}
}
