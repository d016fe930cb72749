// Package exitcode defines exit codes for the CLI.
package exitcode

const (
	// Success indicates successful completion.
	Success = 0

	// UserError indicates a user error (bad args, empty fields, unknown id).
	UserError = 1

	// TerminalError indicates the screen could not start (no TTY).
	TerminalError = 2

	// InternalError indicates an unexpected failure inside the session.
	InternalError = 3
)
