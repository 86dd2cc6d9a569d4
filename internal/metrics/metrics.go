package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/baharkarakas/sitecraft-backend/internal/validate"
)

var (
	// HTTP
	RequestLatency = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_requests_latency_seconds",
			Help:    "Latency of HTTP requests.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "route", "status"},
	)

	// Contracts
	ValidationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "validations_total",
			Help: "Request validations by shape and outcome",
		},
		[]string{"shape", "result"}, // accepted|rejected
	)
	ViolationsTotal = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "validation_violations_total",
			Help: "Field violations by shape and code",
		},
		[]string{"shape", "code"},
	)

	UsersRegistered = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "users_registered_total",
			Help: "Total registered users",
		},
	)
	ProjectsCreated = prometheus.NewCounter(
		prometheus.CounterOpts{
			Name: "projects_created_total",
			Help: "Total created projects",
		},
	)

	// Cache
	CacheLookups = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "project_cache_lookups_total",
			Help: "Project cache lookups by result",
		},
		[]string{"result"}, // hit|miss|error
	)
	WorkerQueueDepth = prometheus.NewGauge(
		prometheus.GaugeOpts{
			Name: "worker_queue_depth",
			Help: "Current worker queue depth",
		},
	)

	initOnce sync.Once
)

// /metrics endpoint handler
var Handler = promhttp.Handler

func Init() {
	initOnce.Do(func() {
		prometheus.MustRegister(
			RequestLatency,
			ValidationsTotal,
			ViolationsTotal,
			UsersRegistered,
			ProjectsCreated,
			CacheLookups,
			WorkerQueueDepth,
		)
	})
}

// ObserveValidation records the outcome of validating one request shape.
func ObserveValidation(shape string, err error) {
	if err == nil {
		ValidationsTotal.WithLabelValues(shape, "accepted").Inc()
		return
	}
	ValidationsTotal.WithLabelValues(shape, "rejected").Inc()
	if errs, ok := validate.As(err); ok {
		for _, ef := range errs {
			ViolationsTotal.WithLabelValues(shape, ef.Code).Inc()
		}
	}
}
