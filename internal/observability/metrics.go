package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

const namespace = "crash_atlas"

// Metrics holds the Prometheus collectors for the dashboard service.
type Metrics struct {
	DatasetRecords prometheus.Gauge
	DatasetReloads *prometheus.CounterVec // labels: outcome={success,error}

	QueryDuration *prometheus.HistogramVec // labels: operation

	WeatherRequests *prometheus.CounterVec // labels: outcome={success,error,unavailable}
	WeatherCache    *prometheus.CounterVec // labels: result={hit,miss}
	PrefetchJobs    *prometheus.CounterVec // labels: outcome={enqueued,done,failed}
}

// NewMetrics creates and registers all metrics with the default Prometheus registry.
func NewMetrics() *Metrics {
	m := newMetrics()
	prometheus.MustRegister(
		m.DatasetRecords,
		m.DatasetReloads,
		m.QueryDuration,
		m.WeatherRequests,
		m.WeatherCache,
		m.PrefetchJobs,
	)
	return m
}

// NewMetricsForTesting creates unregistered Metrics so tests can build as many as they need.
func NewMetricsForTesting() *Metrics {
	return newMetrics()
}

func newMetrics() *Metrics {
	return &Metrics{
		DatasetRecords: prometheus.NewGauge(prometheus.GaugeOpts{
			Namespace: namespace,
			Name:      "dataset_records",
			Help:      "Number of crash records currently held in memory.",
		}),
		DatasetReloads: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "dataset_reloads_total",
			Help:      "Dataset reloads by outcome.",
		}, []string{"outcome"}),
		QueryDuration: prometheus.NewHistogramVec(prometheus.HistogramOpts{
			Namespace: namespace,
			Name:      "query_duration_seconds",
			Help:      "Duration of filter, search and aggregation calls.",
			Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
		}, []string{"operation"}),
		WeatherRequests: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "weather_requests_total",
			Help:      "Weather lookups by outcome.",
		}, []string{"outcome"}),
		WeatherCache: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "weather_cache_total",
			Help:      "Weather cache lookups by result.",
		}, []string{"result"}),
		PrefetchJobs: prometheus.NewCounterVec(prometheus.CounterOpts{
			Namespace: namespace,
			Name:      "weather_prefetch_jobs_total",
			Help:      "Weather prefetch jobs by outcome.",
		}, []string{"outcome"}),
	}
}
