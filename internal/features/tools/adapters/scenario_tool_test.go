package adapters

import (
	"context"
	"errors"
	"testing"
	"time"

	"remedy-engine/internal/features/tools/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestScenarioTool_Execute_NilContext(t *testing.T) {
	tool := NewPackageDamageAssessment().WithLatency(0)

	result := tool.Execute(context.Background(), nil)

	assert.Equal(t, domain.ToolStatusSuccess, result.Status)
	assert.Equal(t, "package_damage_assessment", result.Tool)
	require.NotNil(t, result.ContextProcessed)
	assert.Empty(t, result.ContextProcessed)
	assert.False(t, result.ExecutionTime.IsZero())
	assert.Contains(t, result.Result, "package_damage_assessment")
	assert.Empty(t, result.Error)
}

func TestScenarioTool_Execute_EmptyContext(t *testing.T) {
	tool := NewRouteDisruptionAnalyzer().WithLatency(0)

	result := tool.Execute(context.Background(), map[string]any{})

	assert.Equal(t, domain.ToolStatusSuccess, result.Status)
	assert.Empty(t, result.ContextProcessed)
}

func TestScenarioTool_Execute_EchoesContext(t *testing.T) {
	tool := NewEvidenceAnalyzer().WithLatency(0)

	scenario := map[string]any{
		"order_id": "ORD-1042",
		"city":     "mumbai",
	}
	result := tool.Execute(context.Background(), scenario)

	assert.Equal(t, domain.ToolStatusSuccess, result.Status)
	assert.Equal(t, scenario, result.ContextProcessed)
}

func TestScenarioTool_Execute_AnalysisError(t *testing.T) {
	tool := NewScenarioTool("failing_tool", "always fails", "testing", func(ctx context.Context, scenario map[string]any) (string, error) {
		return "", errors.New("upstream data source unavailable")
	}).WithLatency(0)

	result := tool.Execute(context.Background(), map[string]any{"order_id": "ORD-1"})

	assert.Equal(t, domain.ToolStatusError, result.Status)
	assert.Equal(t, "failing_tool", result.Tool)
	assert.Equal(t, "upstream data source unavailable", result.Error)
	assert.False(t, result.ExecutionTime.IsZero())
	assert.Empty(t, result.Result)
}

func TestScenarioTool_Execute_PanicAbsorbed(t *testing.T) {
	tool := NewScenarioTool("panicking_tool", "always panics", "testing", func(ctx context.Context, scenario map[string]any) (string, error) {
		panic("analysis blew up")
	}).WithLatency(0)

	var result domain.ToolResult
	assert.NotPanics(t, func() {
		result = tool.Execute(context.Background(), nil)
	})

	assert.Equal(t, domain.ToolStatusError, result.Status)
	assert.Contains(t, result.Error, "analysis blew up")
}

func TestScenarioTool_Execute_CallerTimeout(t *testing.T) {
	tool := NewRefundEligibilityChecker().WithLatency(5 * time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	result := tool.Execute(ctx, nil)

	assert.Equal(t, domain.ToolStatusError, result.Status)
	assert.Contains(t, result.Error, "context deadline exceeded")
}

func TestScenarioTool_Execute_Independent(t *testing.T) {
	tool := NewPackageDamageAssessment().WithLatency(0)

	first := tool.Execute(context.Background(), map[string]any{"attempt": 1})
	second := tool.Execute(context.Background(), map[string]any{"attempt": 1})

	// Same context, independent invocations: no accumulated state.
	assert.Equal(t, first.Status, second.Status)
	assert.Equal(t, first.ContextProcessed, second.ContextProcessed)
}

func TestScenarioTool_Describe(t *testing.T) {
	before := time.Now()
	tool := NewEvidenceAnalyzer()
	after := time.Now()

	info := tool.Describe()

	assert.Equal(t, "evidence_analyzer", info.Name)
	assert.NotEmpty(t, info.Description)
	assert.NotEmpty(t, info.Purpose)
	assert.False(t, info.CreatedAt.Before(before))
	assert.False(t, info.CreatedAt.After(after))

	// Describe is stable across calls.
	assert.Equal(t, info, tool.Describe())
}
