package window

import "log/slog"

// RestoreMode selects how the scroll position is restored after the item list
// changes.
type RestoreMode int

const (
	// RestoreAnchor keeps the row under the scroll position at the same screen
	// position, so height added or removed above it does not move it.
	RestoreAnchor RestoreMode = iota
	// RestoreVerbatim writes back the captured scroll offset unchanged.
	RestoreVerbatim
)

type config struct {
	bufferSize  int
	restoreMode RestoreMode
	logger      *slog.Logger
	onError     func(error)
}

// Option configures a Controller.
type Option func(*config)

// WithBufferSize sets how many rows are mounted beyond each edge of the
// viewport. Negative values are treated as 0.
func WithBufferSize(n int) Option {
	return func(c *config) {
		c.bufferSize = max(n, 0)
	}
}

// WithRestoreMode sets how the scroll position is restored after a mutation.
func WithRestoreMode(mode RestoreMode) Option {
	return func(c *config) {
		c.restoreMode = mode
	}
}

// WithLogger sets the logger. The default discards everything.
func WithLogger(logger *slog.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.logger = logger
		}
	}
}

// WithErrorHandler sets the function receiving errors raised by deferred
// measurement steps. The default handler panics.
func WithErrorHandler(f func(error)) Option {
	return func(c *config) {
		if f != nil {
			c.onError = f
		}
	}
}

func defaultConfig() config {
	return config{
		bufferSize:  DefaultBufferSize,
		restoreMode: RestoreAnchor,
		logger:      slog.New(slog.DiscardHandler),
		onError: func(err error) {
			panic(err)
		},
	}
}
