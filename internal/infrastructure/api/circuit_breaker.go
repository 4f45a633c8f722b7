package api

import (
	"time"

	"assessment_checkout/internal/infrastructure/metrics"

	log "github.com/sirupsen/logrus"
	"github.com/sony/gobreaker"
)

// newCircuitBreaker trips when most recent backend calls fail at the
// transport or server level. Client-side rejections never count.
func newCircuitBreaker(name string) *gobreaker.CircuitBreaker {
	cb := gobreaker.NewCircuitBreaker(gobreaker.Settings{
		Name:        name,
		MaxRequests: 1,
		Interval:    30 * time.Second,
		Timeout:     15 * time.Second,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			failureRatio := float64(counts.TotalFailures) / float64(counts.Requests)
			return counts.Requests >= 3 && failureRatio >= 0.6
		},
		OnStateChange: func(cbName string, from gobreaker.State, to gobreaker.State) {
			metrics.CircuitBreakerState.WithLabelValues(metrics.ServiceName, cbName).Set(stateValue(to))
			log.WithFields(log.Fields{
				"circuit": cbName,
				"from":    from.String(),
				"to":      to.String(),
			}).Warn("[api][breaker] state changed")
		},
	})
	metrics.CircuitBreakerState.WithLabelValues(metrics.ServiceName, name).Set(0)
	return cb
}

func stateValue(s gobreaker.State) float64 {
	switch s {
	case gobreaker.StateOpen:
		return 1
	case gobreaker.StateHalfOpen:
		return 2
	default:
		return 0
	}
}
