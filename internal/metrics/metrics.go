// Package metrics holds the prometheus collectors of the board service.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const namespace = "mesa_board"

// Metrics groups every collector. Build it once per registry with New; a nil
// *Metrics is valid and records nothing.
type Metrics struct {
	LimiterAcquired    prometheus.Counter
	LimiterWaitSeconds prometheus.Histogram
	ChunkReads         *prometheus.CounterVec
	ChunkRetries       prometheus.Counter
	Refreshes          *prometheus.CounterVec
	RefreshSeconds     prometheus.Histogram
	RollupAnomalies    prometheus.Counter
}

// New registers the collectors on reg.
func New(reg prometheus.Registerer) *Metrics {
	f := promauto.With(reg)
	return &Metrics{
		LimiterAcquired: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "limiter",
			Name:      "acquired_total",
			Help:      "Outbound store calls admitted by the rate limiter.",
		}),
		LimiterWaitSeconds: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "limiter",
			Name:      "wait_seconds",
			Help:      "Time callers spent blocked in the rate limiter.",
			Buckets:   []float64{0.001, 0.01, 0.05, 0.1, 0.5, 1, 5, 15, 30, 60},
		}),
		ChunkReads: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "reader",
			Name:      "chunks_total",
			Help:      "Dynamic table chunk reads by outcome.",
		}, []string{"outcome"}),
		ChunkRetries: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "reader",
			Name:      "retries_total",
			Help:      "Retries of transient chunk read failures.",
		}),
		Refreshes: f.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "monitor",
			Name:      "refreshes_total",
			Help:      "Monitor cache recomputations by outcome.",
		}, []string{"outcome"}),
		RefreshSeconds: f.NewHistogram(prometheus.HistogramOpts{
			Namespace: namespace,
			Subsystem: "monitor",
			Name:      "refresh_seconds",
			Help:      "Duration of monitor cache recomputations.",
			Buckets:   prometheus.ExponentialBuckets(0.05, 2, 14),
		}),
		RollupAnomalies: f.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Subsystem: "monitor",
			Name:      "rollup_anomalies_total",
			Help:      "Malformed values treated as zero, or undated rows skipped, while rolling up.",
		}),
	}
}

// ObserveAcquire records one admitted call that waited waitSeconds.
func (m *Metrics) ObserveAcquire(waitSeconds float64) {
	if m == nil {
		return
	}
	m.LimiterAcquired.Inc()
	m.LimiterWaitSeconds.Observe(waitSeconds)
}

// ObserveChunk records the outcome of one chunk read.
func (m *Metrics) ObserveChunk(outcome string) {
	if m == nil {
		return
	}
	m.ChunkReads.WithLabelValues(outcome).Inc()
}

// ObserveRetry records one retried chunk read attempt.
func (m *Metrics) ObserveRetry() {
	if m == nil {
		return
	}
	m.ChunkRetries.Inc()
}

// ObserveRefresh records one finished recomputation.
func (m *Metrics) ObserveRefresh(outcome string, seconds float64, anomalies int) {
	if m == nil {
		return
	}
	m.Refreshes.WithLabelValues(outcome).Inc()
	m.RefreshSeconds.Observe(seconds)
	m.RollupAnomalies.Add(float64(anomalies))
}
