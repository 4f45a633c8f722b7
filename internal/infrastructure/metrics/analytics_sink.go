package metrics

import (
	"context"

	"assessment_checkout/internal/domain/entities"
	"assessment_checkout/internal/usecase/interfaces"

	log "github.com/sirupsen/logrus"
)

// AnalyticsSink records checkout events as Prometheus counters and log lines.
// It never fails the caller.
type AnalyticsSink struct{}

var _ interfaces.IAnalyticsSink = (*AnalyticsSink)(nil)

func NewAnalyticsSink() *AnalyticsSink { return &AnalyticsSink{} }

func (s *AnalyticsSink) Track(ctx context.Context, ev entities.AnalyticsEvent) {
	PaymentEventsTotal.WithLabelValues(string(ev.Name), string(ev.Gateway), ev.Reason).Inc()
	if ev.Name == entities.EventPaymentInitiated && ev.Amount > 0 {
		PaymentAmount.WithLabelValues(ev.Currency).Observe(float64(ev.Amount) / 100)
	}
	log.WithFields(log.Fields{
		"event":      ev.Name,
		"gateway":    ev.Gateway,
		"tier":       ev.Tier,
		"amount":     ev.Amount,
		"currency":   ev.Currency,
		"reason":     ev.Reason,
		"scope":      entities.ScopeFromContext(ctx),
		"attempt_id": entities.AttemptIDFromContext(ctx),
	}).Info("[analytics] event")
}
