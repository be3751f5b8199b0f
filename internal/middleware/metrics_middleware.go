package middleware

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/prometheus/client_golang/prometheus"
)

// Metrics records a request counter and a duration histogram per route. The
// registry is injected so tests can use an isolated one.
func Metrics(reg prometheus.Registerer) fiber.Handler {
	requests := prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "page_requests_total",
			Help: "Total HTTP requests handled by the web client.",
		},
		[]string{"path", "method", "status"},
	)
	duration := prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "page_request_duration_seconds",
			Help:    "HTTP request handling duration.",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"path", "method"},
	)
	reg.MustRegister(requests, duration)

	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		path := c.Route().Path
		if path == "" {
			path = "unknown"
		}
		method := c.Method()
		status := strconv.Itoa(c.Response().StatusCode())

		requests.WithLabelValues(path, method, status).Inc()
		duration.WithLabelValues(path, method).Observe(time.Since(start).Seconds())

		return err
	}
}
