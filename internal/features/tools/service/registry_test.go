package service

import (
	"context"
	"sync"
	"testing"

	"remedy-engine/internal/features/tools/adapters"
	"remedy-engine/internal/features/tools/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRegistry(t *testing.T) *Registry {
	t.Helper()

	registry, err := NewRegistry(
		adapters.NewPackageDamageAssessment().WithLatency(0),
		adapters.NewRouteDisruptionAnalyzer().WithLatency(0),
		adapters.NewEvidenceAnalyzer().WithLatency(0),
		adapters.NewRefundEligibilityChecker().WithLatency(0),
	)
	require.NoError(t, err)
	return registry
}

func TestNewRegistry_DuplicateName(t *testing.T) {
	_, err := NewRegistry(
		adapters.NewEvidenceAnalyzer(),
		adapters.NewEvidenceAnalyzer(),
	)
	assert.ErrorIs(t, err, ErrDuplicateTool)
}

func TestRegistry_Get(t *testing.T) {
	registry := newTestRegistry(t)

	t.Run("Known", func(t *testing.T) {
		tool, err := registry.Get("evidence_analyzer")
		require.NoError(t, err)
		assert.Equal(t, "evidence_analyzer", tool.Name())
	})

	t.Run("Unknown", func(t *testing.T) {
		_, err := registry.Get("time_machine")
		assert.ErrorIs(t, err, ErrToolNotFound)
	})
}

func TestRegistry_List_SortedByName(t *testing.T) {
	registry := newTestRegistry(t)

	infos := registry.List()
	require.Len(t, infos, 4)

	names := make([]string, len(infos))
	for i, info := range infos {
		names[i] = info.Name
	}
	assert.Equal(t, []string{
		"evidence_analyzer",
		"package_damage_assessment",
		"refund_eligibility_checker",
		"route_disruption_analyzer",
	}, names)
}

func TestRegistry_Invoke(t *testing.T) {
	registry := newTestRegistry(t)

	t.Run("Success", func(t *testing.T) {
		result, err := registry.Invoke(context.Background(), "package_damage_assessment", map[string]any{"order_id": "ORD-7"})
		require.NoError(t, err)
		assert.Equal(t, domain.ToolStatusSuccess, result.Status)
		assert.Equal(t, map[string]any{"order_id": "ORD-7"}, result.ContextProcessed)
	})

	t.Run("UnknownTool", func(t *testing.T) {
		_, err := registry.Invoke(context.Background(), "time_machine", nil)
		assert.ErrorIs(t, err, ErrToolNotFound)
	})
}

// TestRegistry_Invoke_Concurrent verifies tools run safely in parallel with
// no shared mutable state.
func TestRegistry_Invoke_Concurrent(t *testing.T) {
	registry := newTestRegistry(t)
	names := []string{
		"evidence_analyzer",
		"package_damage_assessment",
		"refund_eligibility_checker",
		"route_disruption_analyzer",
	}

	var wg sync.WaitGroup
	results := make([]domain.ToolResult, 40)
	errs := make([]error, 40)

	for i := 0; i < 40; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			results[i], errs[i] = registry.Invoke(context.Background(), names[i%len(names)], map[string]any{"i": i})
		}(i)
	}
	wg.Wait()

	for i := range results {
		require.NoError(t, errs[i], "invocation %d", i)
		assert.Equal(t, domain.ToolStatusSuccess, results[i].Status, "invocation %d", i)
	}
}
