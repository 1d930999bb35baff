package metrics

import "time"

// Sink records query metrics.
// Implementations must not block or propagate errors.
type Sink interface {
	QueryCompleted(endpoint string, duration time.Duration, outcome string)
}

// Outcome values for QueryCompleted.
const (
	OutcomeSuccess      = "success"
	OutcomeInvalidInput = "invalid_input"
	OutcomeError        = "error"
)
