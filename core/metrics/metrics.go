package metrics

import (
	"strconv"
	"sync"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/adaptor"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	// requestCounter counts all HTTP requests with labels.
	requestCounter = prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"service", "method", "path", "status"},
	)

	// requestDuration records request duration in seconds.
	requestDuration = prometheus.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "Duration of HTTP requests in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "method", "path", "status"},
	)

	registerOnce sync.Once
)

// HTTPMetrics collects request metrics for one service instance.
type HTTPMetrics struct {
	ServiceName string
}

// NewHTTPMetrics creates an HTTP metrics collector for a specific service.
// Collectors are registered once per process; tests may create several
// instances without tripping duplicate registration.
func NewHTTPMetrics(serviceName string) *HTTPMetrics {
	registerOnce.Do(func() {
		prometheus.MustRegister(requestCounter)
		prometheus.MustRegister(requestDuration)
	})
	return &HTTPMetrics{ServiceName: serviceName}
}

// Middleware returns a Fiber middleware that records request count and
// duration. The route pattern (not the raw path) is used as the path label
// to keep cardinality bounded.
func (m *HTTPMetrics) Middleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			if fe, ok := err.(*fiber.Error); ok {
				status = fe.Code
			} else {
				status = fiber.StatusInternalServerError
			}
		}

		path := c.Route().Path
		statusStr := strconv.Itoa(status)

		requestCounter.WithLabelValues(m.ServiceName, c.Method(), path, statusStr).Inc()
		requestDuration.WithLabelValues(m.ServiceName, c.Method(), path, statusStr).
			Observe(time.Since(start).Seconds())

		return err
	}
}

// Handler returns the Prometheus scrape endpoint as a Fiber handler.
func Handler() fiber.Handler {
	return adaptor.HTTPHandler(promhttp.Handler())
}
