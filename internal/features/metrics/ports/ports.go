package ports

import (
	"context"

	"remedy-engine/internal/features/metrics/domain"
)

// MetricsService defines the primary port for delivery metrics operations.
type MetricsService interface {
	GetMetrics(ctx context.Context) (*domain.DeliveryMetrics, error)
	UpdateMetrics(ctx context.Context, metrics domain.DeliveryMetrics) error
}

// MetricsRepository defines the secondary port for metrics storage.
type MetricsRepository interface {
	Save(ctx context.Context, metrics domain.DeliveryMetrics) error
	Get(ctx context.Context) (*domain.DeliveryMetrics, error)
}
