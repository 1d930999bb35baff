package metrics

import (
	"time"

	"github.com/google/logger"
	"github.com/prometheus/client_golang/prometheus"
)

// PrometheusSink implements Sink using the Prometheus client library.
// Registration errors are logged but never propagated.
type PrometheusSink struct {
	queriesTotal  *prometheus.CounterVec
	queryDuration *prometheus.HistogramVec
}

// NewPrometheusSink creates a sink and registers its collectors on reg.
// Registration failures are logged and the sink stays usable.
func NewPrometheusSink(reg prometheus.Registerer) *PrometheusSink {
	s := &PrometheusSink{
		queriesTotal: prometheus.NewCounterVec(prometheus.CounterOpts{
			Name: "nextdraw_queries_total",
			Help: "Total number of next-draw queries by endpoint and outcome.",
		}, []string{"endpoint", "outcome"}),
		queryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Name:    "nextdraw_query_duration_seconds",
			Help:    "Time spent computing a next-draw query in seconds.",
			Buckets: []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		}, []string{"endpoint"}),
	}

	s.register(reg, s.queriesTotal, "nextdraw_queries_total")
	s.register(reg, s.queryDuration, "nextdraw_query_duration_seconds")
	return s
}

func (s *PrometheusSink) register(reg prometheus.Registerer, c prometheus.Collector, name string) {
	if err := reg.Register(c); err != nil {
		logger.Warningf("metrics: failed to register %s: %v", name, err)
	}
}

// QueryCompleted counts a query by endpoint and outcome and records its duration.
func (s *PrometheusSink) QueryCompleted(endpoint string, duration time.Duration, outcome string) {
	s.queriesTotal.WithLabelValues(endpoint, outcome).Inc()
	s.queryDuration.WithLabelValues(endpoint).Observe(duration.Seconds())
}
