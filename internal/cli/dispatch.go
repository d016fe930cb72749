package cli

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/go-logr/logr"

	"taskzord/internal/commands"
	"taskzord/internal/config"
	"taskzord/internal/exitcode"
	"taskzord/internal/logging"
	"taskzord/internal/service"
)

// ServiceFactory creates the session service from config.
// Used to inject the store during dispatch.
type ServiceFactory func(ctx context.Context, cfg *config.Config, log logr.Logger) (service.Service, error)

// Dispatcher handles command-line parsing and dispatch.
// It owns one session: every command it runs shares the same service.
type Dispatcher struct {
	registry *commands.Registry
	factory  ServiceFactory
	in       io.Reader

	svc     service.Service
	closers []io.Closer
}

// NewDispatcher creates a new dispatcher with the given registry and
// service factory. in is read by the shell command.
func NewDispatcher(registry *commands.Registry, factory ServiceFactory, in io.Reader) *Dispatcher {
	return &Dispatcher{
		registry: registry,
		factory:  factory,
		in:       in,
	}
}

// Close releases files opened for session logging.
func (d *Dispatcher) Close() error {
	var first error
	for _, c := range d.closers {
		if err := c.Close(); err != nil && first == nil {
			first = err
		}
	}
	d.closers = nil
	return first
}

// Run parses arguments and dispatches to the appropriate command.
// Returns the exit code.
func (d *Dispatcher) Run(ctx context.Context, args []string, out, errOut io.Writer) int {
	// No args -> open the screen
	if len(args) == 0 {
		return d.dispatch(ctx, "ui", nil, out, errOut)
	}

	cmdName := args[0]

	// If first token starts with -, it's an error (flags require a command)
	if strings.HasPrefix(cmdName, "-") {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}

	if cmdName == shellName {
		return d.runShell(ctx, args[1:], out, errOut)
	}

	return d.dispatch(ctx, cmdName, args[1:], out, errOut)
}

func (d *Dispatcher) dispatch(ctx context.Context, cmdName string, args []string, out, errOut io.Writer) int {
	cmd, ok := d.registry.Find(cmdName)
	if !ok {
		fmt.Fprintf(errOut, "error: unknown command: %s\n", cmdName)
		return exitcode.UserError
	}
	return d.dispatchCommand(ctx, cmd, args, out, errOut)
}

// commonFlags are accepted by every command.
type commonFlags struct {
	configDir string
	quiet     bool
	debug     bool
}

func (f *commonFlags) register(fs *flag.FlagSet) {
	fs.StringVar(&f.configDir, "config", "", "")
	fs.BoolVar(&f.quiet, "quiet", false, "")
	fs.BoolVar(&f.debug, "debug", false, "")
}

// config builds the Config for one command run.
func (f *commonFlags) config() (*config.Config, error) {
	cfg, err := config.New(f.configDir)
	if err != nil {
		return nil, err
	}
	cfg.Quiet = f.quiet
	cfg.Debug = f.debug
	return cfg, nil
}

// parseFlags parses args into fs and reports flag errors in the CLI's
// message format. ok is false when the caller should exit with code.
func parseFlags(fs *flag.FlagSet, args []string, errOut io.Writer) (positional []string, code int, ok bool) {
	if err := fs.Parse(args); err != nil {
		errStr := err.Error()

		// Check for missing flag value
		if strings.HasPrefix(errStr, "flag needs an argument:") {
			flagPart := strings.TrimSpace(strings.TrimPrefix(errStr, "flag needs an argument:"))
			fmt.Fprintf(errOut, "error: flag needs an argument: %s\n", flagPart)
			return nil, exitcode.UserError, false
		}

		// Check for unknown flag
		if strings.HasPrefix(errStr, "flag provided but not defined:") {
			flagName := strings.TrimSpace(strings.TrimPrefix(errStr, "flag provided but not defined:"))
			fmt.Fprintf(errOut, "error: unknown flag: %s\n", flagName)
			return nil, exitcode.UserError, false
		}

		fmt.Fprintf(errOut, "error: %s\n", errStr)
		return nil, exitcode.UserError, false
	}

	// Check if first positional arg starts with - (should have been parsed as flag)
	positional = fs.Args()
	if len(positional) > 0 && strings.HasPrefix(positional[0], "-") && positional[0] != "-" {
		fmt.Fprintf(errOut, "error: unknown flag: %s\n", positional[0])
		return nil, exitcode.UserError, false
	}
	return positional, exitcode.Success, true
}

func (d *Dispatcher) dispatchCommand(ctx context.Context, cmd commands.Command, args []string, out, errOut io.Writer) int {
	// Create flag set with custom error handling
	fs := flag.NewFlagSet(cmd.Name(), flag.ContinueOnError)
	fs.SetOutput(io.Discard) // We handle errors ourselves

	var common commonFlags
	common.register(fs)
	cmd.RegisterFlags(fs)

	positional, code, ok := parseFlags(fs, args, errOut)
	if !ok {
		return code
	}

	cfg, err := common.config()
	if err != nil {
		fmt.Fprintf(errOut, "error: config: %s\n", err)
		return exitcode.UserError
	}

	var svc service.Service
	if cmd.NeedsSession() {
		svc, err = d.session(ctx, cfg, cmd, errOut)
		if err != nil {
			fmt.Fprintf(errOut, "error: session: %s\n", err)
			return exitcode.InternalError
		}
	}

	return cmd.Run(ctx, cfg, svc, positional, out, errOut)
}

// session returns the dispatcher's service, creating it on first use.
// Commands that draw on the terminal log to a file, or nowhere.
func (d *Dispatcher) session(ctx context.Context, cfg *config.Config, cmd commands.Command, errOut io.Writer) (service.Service, error) {
	if d.svc != nil {
		return d.svc, nil
	}

	logOut := errOut
	if owner, ok := cmd.(commands.TerminalOwner); ok && owner.OwnsTerminal() {
		logOut = io.Discard
		if cfg.Debug {
			f, err := openDebugLog(cfg)
			if err != nil {
				return nil, err
			}
			d.closers = append(d.closers, f)
			logOut = f
		}
	}

	log, id := logging.WithSession(logging.New(logOut, cfg.Debug))
	svc, err := d.factory(ctx, cfg, log)
	if err != nil {
		return nil, err
	}
	log.V(logging.DebugLevel).Info("session started", "id", id)
	d.svc = svc
	return svc, nil
}

func openDebugLog(cfg *config.Config) (*os.File, error) {
	if err := cfg.EnsureDir(); err != nil {
		return nil, fmt.Errorf("create config dir: %w", err)
	}
	f, err := os.OpenFile(cfg.DebugLogPath(), os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0600)
	if err != nil {
		return nil, fmt.Errorf("open debug log: %w", err)
	}
	return f, nil
}
