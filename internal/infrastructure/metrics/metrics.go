package metrics

import "github.com/prometheus/client_golang/prometheus"

var (
	// RequestsTotal tracks handled HTTP requests by method, path and status.
	RequestsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "people_registry_http_requests_total",
		Help: "Total number of handled HTTP requests",
	}, []string{"method", "path", "status"})

	// RequestDuration observes request latency per route.
	RequestDuration = prometheus.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "people_registry_http_request_duration_seconds",
		Help:    "HTTP request latency",
		Buckets: prometheus.DefBuckets,
	}, []string{"method", "path"})

	// SweepsTotal tracks maintenance sweep runs by outcome.
	SweepsTotal = prometheus.NewCounterVec(prometheus.CounterOpts{
		Name: "people_registry_sweeps_total",
		Help: "Total number of maintenance sweep runs",
	}, []string{"outcome"})

	// PointsGrantedTotal tracks points handed out by the maintenance sweep.
	PointsGrantedTotal = prometheus.NewCounter(prometheus.CounterOpts{
		Name: "people_registry_points_granted_total",
		Help: "Total points granted to recently created records",
	})

	// LockedRecords reports the locked-id count seen by the last sweep.
	LockedRecords = prometheus.NewGauge(prometheus.GaugeOpts{
		Name: "people_registry_locked_records",
		Help: "Number of locked record ids observed by the last sweep",
	})
)

// NewRegistry creates a new Prometheus registry with all application metrics
// registered on it.
func NewRegistry() *prometheus.Registry {
	reg := prometheus.NewRegistry()
	reg.MustRegister(
		RequestsTotal,
		RequestDuration,
		SweepsTotal,
		PointsGrantedTotal,
		LockedRecords,
	)
	return reg
}
