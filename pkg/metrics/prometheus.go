package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Recorder implements domain.repository.Metrics using Prometheus.
type Recorder struct {
	fetches     *prometheus.CounterVec
	errorsTotal *prometheus.CounterVec
	latency     *prometheus.HistogramVec
	cohort      *prometheus.GaugeVec
	scores      *prometheus.GaugeVec
}

// New creates a Prometheus metrics recorder registered with the default registry.
func New() *Recorder {
	return NewWithRegistry(prometheus.DefaultRegisterer)
}

// NewWithRegistry registers the recorder's collectors with reg.
func NewWithRegistry(reg prometheus.Registerer) *Recorder {
	factory := promauto.With(reg)
	return &Recorder{
		fetches: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "deception_fetches_total",
				Help: "Pitcher fetch outcomes by status, reason and source",
			},
			[]string{"status", "reason", "source"},
		),
		errorsTotal: factory.NewCounterVec(
			prometheus.CounterOpts{
				Name: "deception_errors_total",
				Help: "Total number of errors encountered",
			},
			[]string{"type"},
		),
		latency: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Name:    "deception_operation_duration_seconds",
				Help:    "Duration of operations in seconds",
				Buckets: []float64{0.05, 0.1, 0.25, 0.5, 1, 2.5, 5, 10, 30, 60, 120},
			},
			[]string{"operation"},
		),
		cohort: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "deception_cohort_pitchers",
				Help: "Pitchers in the last scored cohort, by inclusion",
			},
			[]string{"set"},
		),
		scores: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Name: "deception_score",
				Help: "Last deception score per pitcher",
			},
			[]string{"pitcher"},
		),
	}
}

// RecordFetch counts one fetch outcome.
func (r *Recorder) RecordFetch(status, reason, source string) {
	r.fetches.WithLabelValues(status, reason, source).Inc()
}

// RecordError records an error occurrence.
func (r *Recorder) RecordError(kind string) {
	r.errorsTotal.WithLabelValues(kind).Inc()
}

// RecordLatency records operation latency in seconds.
func (r *Recorder) RecordLatency(op string, seconds float64) {
	r.latency.WithLabelValues(op).Observe(seconds)
}

// RecordCohort records how many pitchers were scored and excluded.
func (r *Recorder) RecordCohort(size, excluded int) {
	r.cohort.WithLabelValues("scored").Set(float64(size))
	r.cohort.WithLabelValues("excluded").Set(float64(excluded))
}

// RecordScore records the latest score for a pitcher.
func (r *Recorder) RecordScore(name string, score float64) {
	r.scores.WithLabelValues(name).Set(score)
}

// Nop discards all measurements.
type Nop struct{}

func (Nop) RecordFetch(string, string, string) {}
func (Nop) RecordError(string)                  {}
func (Nop) RecordLatency(string, float64)       {}
func (Nop) RecordCohort(int, int)               {}
func (Nop) RecordScore(string, float64)         {}
