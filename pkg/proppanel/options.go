package proppanel

import "time"

// DefaultShutdownTimeout is the default timeout for graceful shutdown.
const DefaultShutdownTimeout = 5 * time.Second

// Options configures the Panel behavior.
type Options struct {
	// WindowTitle overrides the configured window title.
	// Empty string means use the configuration's value.
	WindowTitle string

	// Headless builds the panel without opening a window.
	Headless bool

	// ShutdownTimeout sets the maximum time Stop waits for the window loop.
	// Zero means use DefaultShutdownTimeout.
	ShutdownTimeout time.Duration

	// Logger receives lifecycle and change messages. Nil disables logging.
	Logger Logger

	// Metrics collects operational counters. Nil means a fresh collector
	// per panel.
	Metrics *Metrics

	// WatchConfig reloads the panel in place when its configuration file
	// changes on disk. It has no effect for reader and FS sources.
	WatchConfig bool

	// WatchDebounce sets the quiet period after the last file event before
	// a reload. Zero means use DefaultWatchDebounce.
	WatchDebounce time.Duration
}

// DefaultOptions returns Options with sensible defaults.
func DefaultOptions() Options {
	return Options{}
}

func (o Options) logger() Logger {
	if o.Logger == nil {
		return NopLogger()
	}
	return o.Logger
}
