// Package cli implements the pipegrid command-line interface.
//
// It provides commands for solving pipe-network scenarios and sweeping seeds,
// built on cobra with verbose logging via the charmbracelet/log library.
//
// # Commands
//
//   - solve: run the optimizer on a YAML scenario, optionally rendering the
//     resulting network as a box-drawing grid
//   - sweep: run the optimizer across a range of seeds concurrently and
//     report the best solution found
//
// All commands support --verbose (-v) for debug-level logging and --config
// for a TOML file with default penalty/seed/render settings. Loggers are
// passed through context.Context.
package cli

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
)

// newLogger creates a logger with timestamp formatting writing to w,
// filtering at the given level.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// ctxKey is the type for context keys used in this package; a distinct type
// prevents collisions with other packages.
type ctxKey int

// loggerKey is the context key for storing a logger.
const loggerKey ctxKey = 0

// withLogger returns a new context with l attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger attached by withLogger, or the
// package default when none is present.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}

	return log.Default()
}
