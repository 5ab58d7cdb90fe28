package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Metrics provides observability for the extraction module.
type Metrics struct {
	// Extraction outcomes by taxonomy code ("ok" for success)
	Outcome *prometheus.CounterVec

	// Full pipeline latency including the AI call
	ExtractLatency prometheus.Histogram

	// AI boundary call latency
	AILatency prometheus.Histogram

	// Sessions enriched per report
	SessionsEnriched prometheus.Histogram
}

// New creates a new Metrics instance with all extraction module metrics registered.
func New() *Metrics {
	return &Metrics{
		Outcome: promauto.NewCounterVec(prometheus.CounterOpts{
			Name: "courtcal_extraction_outcomes_total",
			Help: "Total extraction requests by outcome code",
		}, []string{"outcome"}),

		ExtractLatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "courtcal_extraction_duration_seconds",
			Help:    "Duration of full extraction requests including the AI call",
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120},
		}),

		AILatency: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "courtcal_extraction_ai_duration_seconds",
			Help:    "Duration of AI boundary calls",
			Buckets: []float64{0.5, 1, 2.5, 5, 10, 30, 60, 120},
		}),

		SessionsEnriched: promauto.NewHistogram(prometheus.HistogramOpts{
			Name:    "courtcal_extraction_sessions_per_report",
			Help:    "Number of sessions produced per extracted report",
			Buckets: []float64{1, 2, 5, 10, 20, 40, 80},
		}),
	}
}

// IncrementOutcome records an extraction outcome.
func (m *Metrics) IncrementOutcome(outcome string) {
	if m != nil {
		m.Outcome.WithLabelValues(outcome).Inc()
	}
}

// ObserveExtractLatency records the total pipeline duration.
func (m *Metrics) ObserveExtractLatency(d time.Duration) {
	if m != nil {
		m.ExtractLatency.Observe(d.Seconds())
	}
}

// ObserveAILatency records the duration of one AI boundary call.
func (m *Metrics) ObserveAILatency(d time.Duration) {
	if m != nil {
		m.AILatency.Observe(d.Seconds())
	}
}

// ObserveSessions records how many sessions a report produced.
func (m *Metrics) ObserveSessions(n int) {
	if m != nil {
		m.SessionsEnriched.Observe(float64(n))
	}
}
