// Package logging builds the logr.Logger shared by the command surface and
// the screen.
package logging

import (
	"io"
	"log"

	"github.com/go-logr/logr"
	"github.com/go-logr/stdr"
	"github.com/google/uuid"
)

// DebugLevel is the verbosity used for per-operation trace lines.
const DebugLevel = 1

// New returns a logger writing to w. Info lines at DebugLevel are only
// emitted when debug is set; errors are always written.
func New(w io.Writer, debug bool) logr.Logger {
	if w == nil {
		return logr.Discard()
	}
	verbosity := 0
	if debug {
		verbosity = DebugLevel
	}
	stdr.SetVerbosity(verbosity)
	return stdr.NewWithOptions(log.New(w, "taskzord: ", log.LstdFlags), stdr.Options{
		LogCaller: stdr.None,
	})
}

// WithSession tags logger with a fresh session id.
func WithSession(logger logr.Logger) (logr.Logger, string) {
	id := uuid.NewString()
	return logger.WithValues("session", id), id
}
