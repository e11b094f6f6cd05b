// Package runid mints a short correlation id for one CLI invocation, the
// same role uuid.NewV7 plays tagging device and chat records in ollama.
package runid

import "github.com/google/uuid"

// New returns a fresh time-ordered id for one train run. Its
// string form is meant to sit in a slog field, not be parsed back.
func New() string {
	u, err := uuid.NewV7()
	if err != nil {
		// NewV7 only fails if the system clock or RNG can't be read; fall
		// back to a random v4 rather than leaving log lines uncorrelated.
		u = uuid.New()
	}
	return u.String()
}
