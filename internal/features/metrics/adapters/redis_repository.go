package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"remedy-engine/internal/core/cache"
	"remedy-engine/internal/features/metrics/domain"
)

const metricsCacheKey = "delivery_metrics"

// RedisMetricsRepository implements ports.MetricsRepository on the cache port.
// The snapshot is stored as JSON with no expiration.
type RedisMetricsRepository struct {
	cache cache.Cache
}

// NewRedisMetricsRepository creates a new RedisMetricsRepository.
func NewRedisMetricsRepository(c cache.Cache) *RedisMetricsRepository {
	return &RedisMetricsRepository{
		cache: c,
	}
}

// Save stores the metrics snapshot.
func (r *RedisMetricsRepository) Save(ctx context.Context, metrics domain.DeliveryMetrics) error {
	data, err := json.Marshal(metrics)
	if err != nil {
		return fmt.Errorf("failed to marshal metrics: %w", err)
	}

	if err := r.cache.Set(ctx, metricsCacheKey, data, 0); err != nil {
		return fmt.Errorf("failed to save metrics to cache: %w", err)
	}

	return nil
}

// Get retrieves the metrics snapshot.
// When nothing has been recorded yet it returns a zero-valued snapshot.
func (r *RedisMetricsRepository) Get(ctx context.Context) (*domain.DeliveryMetrics, error) {
	data, err := r.cache.Get(ctx, metricsCacheKey)
	if err != nil {
		if errors.Is(err, cache.ErrKeyNotFound) {
			return &domain.DeliveryMetrics{}, nil
		}
		return nil, fmt.Errorf("failed to get metrics from cache: %w", err)
	}

	var metrics domain.DeliveryMetrics
	if err := json.Unmarshal(data, &metrics); err != nil {
		return nil, fmt.Errorf("failed to unmarshal metrics: %w", err)
	}

	return &metrics, nil
}
