// Package cli implements the jvocab command-line interface.
//
// Commands open one vocabulary file, selected with --file or taken from the
// recent file list kept in the preferences, and either print part of it or
// apply a single change and save it back. The CLI is built using cobra and
// styles its output with lipgloss.
//
// # Commands
//
// The commands fall into three groups:
//   - browsing: categories, list, lessons, lesson, stats
//   - editing: add-category, rename-category, remove-category, add, edit, remove, move
//   - files: init, fmt, check, recent, config
//
// # Logging
//
// All commands support --verbose (-v) for debug-level logging. The logger is
// attached to the command context and is also handed to the JSON codec, so
// entries skipped while reading a file are reported as warnings.
package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/psyberchi/jvocab/pkg/vocab"
)

// newLogger returns the CLI logger: timestamped as "15:04:05.00" and
// filtered at level. Decode warnings from the codec go through it as well.
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress times a file operation and reports what it touched.
type progress struct {
	logger *log.Logger
	start  time.Time
}

func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg at info level with the store's size and the elapsed time,
// e.g. "formatted path=words.json categories=3 entries=42 took=2ms".
func (p *progress) done(msg, path string, s *vocab.Store) {
	p.logger.Info(msg,
		"path", path,
		"categories", s.CategoryCount(),
		"entries", s.VocabCount(),
		"took", time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext returns the logger attached by the root command, or
// log.Default when a command runs without it (as in completion callbacks).
func loggerFromContext(ctx context.Context) *log.Logger {
	if ctx != nil {
		if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
			return l
		}
	}
	return log.Default()
}
