package main

import (
	"context"
	"io"

	"github.com/charmbracelet/log"
)

const (
	logInfoLevel  = log.InfoLevel
	logDebugLevel = log.DebugLevel
)

// newLogger creates a logger writing to w at the given level. Only this
// command layer logs; the core packages never do.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Level:           level,
	})
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}

	return log.Default()
}
