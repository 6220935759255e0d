package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	trialsTotal  *prometheus.CounterVec
	droppedTotal *prometheus.CounterVec
	bucketCount  *prometheus.GaugeVec
	latency      *prometheus.HistogramVec
}

// New creates a Prometheus metrics recorder registered on reg.
func New(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)
	return &Recorder{
		trialsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "regimesim_trials_total",
				Help: "Total number of simulated trials",
			},
			[]string{"scenario"},
		),
		droppedTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "regimesim_dropped_outcomes_total",
				Help: "Trial outcomes outside the histogram domain",
			},
			[]string{"scenario"},
		),
		bucketCount: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "regimesim_bucket_count",
				Help: "Trials per histogram bucket of the last run",
			},
			[]string{"scenario", "bucket"},
		),
		latency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "regimesim_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: prometheus.ExponentialBuckets(0.001, 4, 10),
			},
			[]string{"operation"},
		),
	}
}

// RecordTrials adds n simulated trials for a scenario.
func (r *Recorder) RecordTrials(scenario string, n int) {
	r.trialsTotal.WithLabelValues(scenario).Add(float64(n))
}

// RecordDropped adds n outcomes that fell outside every bucket.
func (r *Recorder) RecordDropped(scenario string, n int) {
	r.droppedTotal.WithLabelValues(scenario).Add(float64(n))
}

// RecordHistogram publishes per-bucket counts, labels aligned with counts.
func (r *Recorder) RecordHistogram(scenario string, labels []string, counts []uint64) {
	for i, c := range counts {
		if i >= len(labels) {
			break
		}
		r.bucketCount.WithLabelValues(scenario, labels[i]).Set(float64(c))
	}
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}

// Nop discards all measurements.
type Nop struct{}

func (Nop) RecordTrials(string, int)                   {}
func (Nop) RecordDropped(string, int)                  {}
func (Nop) RecordHistogram(string, []string, []uint64) {}
func (Nop) RecordLatency(string, float64)              {}
