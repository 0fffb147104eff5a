package markuplex

import (
	"log/slog"
	"os"
)

// Options holds lexer configuration values.
// The zero value means no overrides.
type Options struct {
	logger *slog.Logger
	debug  bool

	loggerSet bool
	debugSet  bool
}

// JoinOptions combines multiple option sets into one in declaration order.
// Later options override earlier ones when set.
func JoinOptions(srcs ...Options) Options {
	var merged Options
	for _, src := range srcs {
		merged.merge(src)
	}
	return merged
}

func (opts *Options) merge(src Options) {
	if src.loggerSet {
		opts.logger = src.logger
		opts.loggerSet = true
	}
	if src.debugSet {
		opts.debug = src.debug
		opts.debugSet = true
	}
}

// Debug controls whether every stepped byte and every published event is
// written to the diagnostic logger. It never changes the emitted events.
func Debug(value bool) Options {
	return Options{debug: value, debugSet: true}
}

// WithLogger sets the diagnostic logger used in debug mode.
// Records are logged at slog.LevelDebug.
func WithLogger(logger *slog.Logger) Options {
	return Options{logger: logger, loggerSet: true}
}

// diagnostics returns the logger for debug output, or nil when debug is off.
func (opts Options) diagnostics() *slog.Logger {
	if !opts.debug {
		return nil
	}
	if opts.logger != nil {
		return opts.logger
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug}))
}
