package metrics

import (
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

func TestPrometheusSink_QueryCompleted(t *testing.T) {
	reg := prometheus.NewRegistry()
	sink := NewPrometheusSink(reg)

	sink.QueryCompleted("next-draw", 2*time.Millisecond, OutcomeSuccess)
	sink.QueryCompleted("next-draw", time.Millisecond, OutcomeSuccess)
	sink.QueryCompleted("next-draw", time.Millisecond, OutcomeInvalidInput)

	if got := testutil.ToFloat64(sink.queriesTotal.WithLabelValues("next-draw", OutcomeSuccess)); got != 2 {
		t.Errorf("expected 2 successful queries, got %v", got)
	}
	if got := testutil.ToFloat64(sink.queriesTotal.WithLabelValues("next-draw", OutcomeInvalidInput)); got != 1 {
		t.Errorf("expected 1 invalid query, got %v", got)
	}
	if got := testutil.CollectAndCount(sink.queryDuration); got != 1 {
		t.Errorf("expected 1 duration series, got %d", got)
	}
}

func TestPrometheusSink_DuplicateRegistrationDoesNotPanic(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewPrometheusSink(reg)
	sink := NewPrometheusSink(reg)

	sink.QueryCompleted("schedule", time.Millisecond, OutcomeError)
}

func TestNoopSink(t *testing.T) {
	var s Sink = NewNoopSink()
	s.QueryCompleted("next-draw", time.Second, OutcomeSuccess)
}
