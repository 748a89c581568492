package registry

import "log/slog"

// Options holds configuration settings for a Registry.
type Options struct {
	Logger *slog.Logger
}

// Option defines a function type for applying registry options.
type Option func(*Options)

// WithLogger sets the logger used for registration and resolution events.
// If not set, slog.Default() at construction time is used.
func WithLogger(logger *slog.Logger) Option {
	return func(opts *Options) {
		opts.Logger = logger
	}
}
