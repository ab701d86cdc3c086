package server

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics exposes Prometheus collectors that report API activity.
type Metrics struct {
	requestDuration   *prometheus.HistogramVec
	requestsTotal     *prometheus.CounterVec
	sessionsCompleted prometheus.Counter
	sharesCreated     prometheus.Counter
}

// MustNewMetrics constructs a Metrics instance using the provided
// registerer. Callers supply a fresh registry when unique metric names are
// required, as in tests. Registration errors panic, mirroring promauto.
func MustNewMetrics(reg prometheus.Registerer) *Metrics {
	if reg == nil {
		reg = prometheus.DefaultRegisterer
	}
	requestDuration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Namespace: "lifepath",
			Subsystem: "http",
			Name:      "request_duration_seconds",
			Help:      "Duration of handled HTTP requests.",
			Buckets:   prometheus.DefBuckets,
		},
		[]string{"method", "route"},
	)
	requestsTotal := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "lifepath",
			Subsystem: "http",
			Name:      "requests_total",
			Help:      "Total HTTP requests by route and status.",
		},
		[]string{"method", "route", "status"},
	)
	sessionsCompleted := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "lifepath",
			Subsystem: "sessions",
			Name:      "completed_total",
			Help:      "Questionnaire sessions completed.",
		},
	)
	sharesCreated := prometheus.NewCounter(
		prometheus.CounterOpts{
			Namespace: "lifepath",
			Subsystem: "share",
			Name:      "links_created_total",
			Help:      "Share links minted.",
		},
	)

	for _, c := range []prometheus.Collector{requestDuration, requestsTotal, sessionsCompleted, sharesCreated} {
		reg.MustRegister(c)
	}

	return &Metrics{
		requestDuration:   requestDuration,
		requestsTotal:     requestsTotal,
		sessionsCompleted: sessionsCompleted,
		sharesCreated:     sharesCreated,
	}
}

// Middleware records request counts and latency per route.
func (m *Metrics) Middleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		route := c.FullPath()
		if route == "" {
			route = "unmatched"
		}
		m.requestDuration.WithLabelValues(c.Request.Method, route).Observe(time.Since(start).Seconds())
		m.requestsTotal.WithLabelValues(c.Request.Method, route, strconv.Itoa(c.Writer.Status())).Inc()
	}
}
