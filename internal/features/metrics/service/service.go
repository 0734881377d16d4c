package service

import (
	"context"
	"fmt"

	"remedy-engine/internal/features/metrics/domain"
	"remedy-engine/internal/features/metrics/ports"
)

// MetricsServiceImpl implements ports.MetricsService.
type MetricsServiceImpl struct {
	repo ports.MetricsRepository
}

// NewMetricsService creates a new MetricsServiceImpl.
func NewMetricsService(repo ports.MetricsRepository) *MetricsServiceImpl {
	return &MetricsServiceImpl{
		repo: repo,
	}
}

// GetMetrics retrieves the current delivery metrics snapshot.
func (s *MetricsServiceImpl) GetMetrics(ctx context.Context) (*domain.DeliveryMetrics, error) {
	metrics, err := s.repo.Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("service: failed to get metrics: %w", err)
	}

	return metrics, nil
}

// UpdateMetrics validates and stores a new metrics snapshot.
func (s *MetricsServiceImpl) UpdateMetrics(ctx context.Context, metrics domain.DeliveryMetrics) error {
	if err := metrics.Validate(); err != nil {
		return err
	}

	if err := s.repo.Save(ctx, metrics); err != nil {
		return fmt.Errorf("service: failed to save metrics: %w", err)
	}

	return nil
}
