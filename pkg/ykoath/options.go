package ykoath

import (
	"log/slog"
)

// LevelTrace is used for raw frame dumps, below slog.LevelDebug.
const LevelTrace = slog.LevelDebug - 4

type Options struct {
	Logger *slog.Logger
}

type Option func(*Options)

func WithLogger(logger *slog.Logger) Option {
	return func(opts *Options) {
		if logger != nil {
			opts.Logger = logger
		}
	}
}

func NewOptions(opts ...Option) *Options {
	oo := &Options{
		Logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(oo)
	}

	return oo
}
