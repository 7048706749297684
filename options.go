package contextpack

import "time"

// Option is a functional option for configuring an Assembler
type Option func(*Assembler)

// WithLogger sets the logger used for observability output.
// Any *slog.Logger satisfies the Logger interface.
func WithLogger(logger Logger) Option {
	return func(a *Assembler) {
		if logger != nil {
			a.logger = logger
		}
	}
}

// WithClock overrides the time source used to compute the recency cutoff.
// Intended for tests that need a deterministic "now".
func WithClock(now func() time.Time) Option {
	return func(a *Assembler) {
		if now != nil {
			a.now = now
		}
	}
}
