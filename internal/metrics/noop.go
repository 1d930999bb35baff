package metrics

import "time"

// NoopSink is used when metrics are disabled to avoid nil checks.
type NoopSink struct{}

// NewNoopSink returns a no-op metrics sink.
func NewNoopSink() *NoopSink {
	return &NoopSink{}
}

// QueryCompleted does nothing.
func (n *NoopSink) QueryCompleted(endpoint string, duration time.Duration, outcome string) {}
