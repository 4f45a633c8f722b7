package metrics

import (
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const ServiceName = "assessment-checkout"

var (
	// RequestsTotal tracks total HTTP requests
	RequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "http_requests_total",
			Help: "Total number of HTTP requests",
		},
		[]string{"service", "method", "endpoint", "status"},
	)

	// RequestDuration tracks HTTP request duration
	RequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"service", "method", "endpoint"},
	)

	// CircuitBreakerState tracks circuit breaker state (0=closed, 1=open, 2=half-open)
	CircuitBreakerState = promauto.NewGaugeVec(
		prometheus.GaugeOpts{
			Name: "circuit_breaker_state",
			Help: "Circuit breaker state (0=closed, 1=open, 2=half-open)",
		},
		[]string{"service", "circuit_name"},
	)

	CircuitBreakerFailures = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "circuit_breaker_failures_total",
			Help: "Total number of circuit breaker failures",
		},
		[]string{"service", "circuit_name"},
	)

	// PaymentEventsTotal counts checkout analytics events by name and gateway.
	PaymentEventsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkout_payment_events_total",
			Help: "Checkout funnel events",
		},
		[]string{"event", "gateway", "reason"},
	)

	// PaymentAmount tracks initiated amounts in major units per currency.
	PaymentAmount = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "checkout_payment_amount",
			Help:    "Payment amounts in major currency units",
			Buckets: []float64{5, 10, 20, 50, 500, 1000, 1500, 5000},
		},
		[]string{"currency"},
	)

	// SDKLoadsTotal counts gateway SDK loads by outcome.
	SDKLoadsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "checkout_sdk_loads_total",
			Help: "Gateway SDK load attempts",
		},
		[]string{"gateway", "outcome"},
	)

	ActiveAttempts = promauto.NewGauge(
		prometheus.GaugeOpts{
			Name: "checkout_active_attempts",
			Help: "Payment attempts currently waiting on the user or a gateway",
		},
	)
)

// PrometheusMiddleware creates a Gin middleware for automatic metrics collection
func PrometheusMiddleware(serviceName string) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()

		c.Next()

		duration := time.Since(start).Seconds()
		status := strconv.Itoa(c.Writer.Status())

		RequestsTotal.WithLabelValues(
			serviceName,
			c.Request.Method,
			c.FullPath(),
			status,
		).Inc()

		RequestDuration.WithLabelValues(
			serviceName,
			c.Request.Method,
			c.FullPath(),
		).Observe(duration)
	}
}
