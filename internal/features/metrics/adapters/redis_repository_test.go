package adapters

import (
	"context"
	"testing"

	"remedy-engine/internal/core/cache"
	"remedy-engine/internal/features/metrics/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRepository(t *testing.T) *RedisMetricsRepository {
	t.Helper()

	mr := miniredis.RunT(t)
	adapter, err := cache.NewRedisAdapter("redis://" + mr.Addr())
	require.NoError(t, err)
	t.Cleanup(func() { adapter.Close() })

	return NewRedisMetricsRepository(adapter)
}

func TestRedisMetricsRepository_SaveAndGet(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	snapshot := domain.DeliveryMetrics{
		TotalDeliveries:           120,
		SuccessfulDeliveries:      114,
		AverageResolutionTime:     8.5,
		CustomerSatisfactionScore: 4.2,
		CostSavings:               15750.0,
		EfficiencyImprovement:     12.3,
	}

	err := repo.Save(ctx, snapshot)
	require.NoError(t, err)

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, snapshot, *got)
	assert.InDelta(t, 95.0, got.SuccessRate(), 1e-9)
}

func TestRedisMetricsRepository_GetEmpty(t *testing.T) {
	repo := newTestRepository(t)

	got, err := repo.Get(context.Background())
	require.NoError(t, err)
	assert.Equal(t, domain.DeliveryMetrics{}, *got)
	assert.Equal(t, 0.0, got.SuccessRate())
}

func TestRedisMetricsRepository_Overwrite(t *testing.T) {
	repo := newTestRepository(t)
	ctx := context.Background()

	require.NoError(t, repo.Save(ctx, domain.DeliveryMetrics{TotalDeliveries: 1, SuccessfulDeliveries: 1}))
	require.NoError(t, repo.Save(ctx, domain.DeliveryMetrics{TotalDeliveries: 2, SuccessfulDeliveries: 1}))

	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, got.TotalDeliveries)
	assert.Equal(t, 1, got.SuccessfulDeliveries)
}
