// Package metrics records extraction counters for khl-team runs.
//
// The CLI is a one-shot batch job, so metrics are not served over HTTP. They
// are gathered in a private Prometheus registry and, when a path is configured,
// written in the node_exporter textfile format at the end of a run.
package metrics

import (
	"time"

	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "khl_team"

// Recorder tracks fetches, extracted records and dropped records.
// A nil *Recorder is valid and records nothing.
type Recorder struct {
	registry  *prometheus.Registry
	fetches   *prometheus.CounterVec
	fetchTime *prometheus.HistogramVec
	records   *prometheus.CounterVec
	dropped   *prometheus.CounterVec
	teams     prometheus.Counter
}

// New creates a Recorder backed by its own registry.
func New() *Recorder {
	r := &Recorder{
		registry: prometheus.NewRegistry(),
		fetches: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "documents_fetched_total",
			Help:      "Documents fetched, by outcome.",
		}, []string{"outcome"}),
		fetchTime: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "fetch_duration_seconds",
			Help:      "Time spent fetching and parsing one document.",
			Buckets:   prometheus.DefBuckets,
		}, []string{"outcome"}),
		records: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_extracted_total",
			Help:      "Records extracted, by entity.",
		}, []string{"entity"}),
		dropped: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "records_dropped_total",
			Help:      "Records seen but not placed, by source extractor.",
		}, []string{"source"}),
		teams: prometheus.NewCounter(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "teams_extracted_total",
			Help:      "Teams fully extracted.",
		}),
	}
	r.registry.MustRegister(r.fetches, r.fetchTime, r.records, r.dropped, r.teams)
	return r
}

// ObserveFetch records one document fetch.
func (r *Recorder) ObserveFetch(d time.Duration, err error) {
	if r == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "error"
	}
	r.fetches.WithLabelValues(outcome).Inc()
	r.fetchTime.WithLabelValues(outcome).Observe(d.Seconds())
}

// AddRecords counts n extracted records of entity.
func (r *Recorder) AddRecords(entity string, n int) {
	if r == nil || n <= 0 {
		return
	}
	r.records.WithLabelValues(entity).Add(float64(n))
}

// AddDropped counts n dropped records from source.
func (r *Recorder) AddDropped(source string, n int) {
	if r == nil || n <= 0 {
		return
	}
	r.dropped.WithLabelValues(source).Add(float64(n))
}

// TeamDone counts one fully extracted team.
func (r *Recorder) TeamDone() {
	if r == nil {
		return
	}
	r.teams.Inc()
}

// Gatherer exposes the underlying registry.
func (r *Recorder) Gatherer() prometheus.Gatherer {
	return r.registry
}

// WriteTextfile writes all metrics to path in the text exposition format.
func (r *Recorder) WriteTextfile(path string) error {
	if r == nil || path == "" {
		return nil
	}
	return prometheus.WriteToTextfile(path, r.registry)
}
