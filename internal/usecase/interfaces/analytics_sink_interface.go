package interfaces

import (
	"context"

	"assessment_checkout/internal/domain/entities"
)

// IAnalyticsSink receives fire-and-forget events. Track must not block.
type IAnalyticsSink interface {
	Track(ctx context.Context, event entities.AnalyticsEvent)
}
