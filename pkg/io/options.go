package io

import (
	"io"

	"github.com/charmbracelet/log"
)

// Options configures reading and writing. The zero value writes the pretty
// layout with every lesson number and discards warnings.
type Options struct {
	// Logger receives warnings and debug output. Nil means discard.
	Logger *log.Logger

	// Compact writes the document without indentation or line breaks.
	Compact bool

	// OmitZeroLesson leaves out "ln" for entries in lesson 0.
	OmitZeroLesson bool

	// OnWarning is called for every element skipped while reading.
	OnWarning func(Warning)
}

// Option adjusts Options.
type Option func(*Options)

// WithLogger routes warnings and debug output to l.
func WithLogger(l *log.Logger) Option { return func(o *Options) { o.Logger = l } }

// WithCompact selects the single-line layout.
func WithCompact() Option { return func(o *Options) { o.Compact = true } }

// WithOmitZeroLesson drops the "ln" key when the lesson is 0.
func WithOmitZeroLesson() Option { return func(o *Options) { o.OmitZeroLesson = true } }

// WithWarningHandler registers fn to receive decode warnings.
func WithWarningHandler(fn func(Warning)) Option { return func(o *Options) { o.OnWarning = fn } }

// Resolve applies opts to a zero Options and fills in defaults.
func Resolve(opts ...Option) Options { return buildOptions(opts) }

func buildOptions(opts []Option) Options {
	var o Options
	for _, opt := range opts {
		opt(&o)
	}
	if o.Logger == nil {
		o.Logger = log.New(io.Discard)
	}
	return o
}

// warn logs w and hands it to the warning handler.
func (o *Options) warn(w Warning) {
	o.Logger.Warn(w.Detail, "category", w.Category, "index", w.Index, "kind", w.Kind)
	if o.OnWarning != nil {
		o.OnWarning(w)
	}
}
