package adapters

import (
	"context"
	"fmt"
	"time"

	"remedy-engine/internal/core/logger"
	"remedy-engine/internal/features/tools/domain"

	"go.uber.org/zap"
)

// defaultLatency approximates the I/O-bound work a real analyzer would do
// (network calls, model inference).
const defaultLatency = 500 * time.Millisecond

// AnalyzeFunc is the scenario-specific analysis hook of a ScenarioTool.
// It returns a result summary or an error; errors never escape Execute.
type AnalyzeFunc func(ctx context.Context, scenario map[string]any) (string, error)

// ScenarioTool is the shared implementation behind every scenario analyzer.
// Identity (name, description, purpose) is fixed at construction and the
// tool holds no mutable state, so invocations are independent.
type ScenarioTool struct {
	name        string
	description string
	purpose     string
	createdAt   time.Time
	latency     time.Duration
	analyze     AnalyzeFunc
}

// NewScenarioTool builds a scenario analyzer with the given identity and
// analysis hook. A nil hook gets the placeholder analysis, which reports a
// generic success summary built from the tool name.
func NewScenarioTool(name, description, purpose string, analyze AnalyzeFunc) *ScenarioTool {
	t := &ScenarioTool{
		name:        name,
		description: description,
		purpose:     purpose,
		createdAt:   time.Now(),
		latency:     defaultLatency,
	}
	if analyze == nil {
		analyze = func(ctx context.Context, scenario map[string]any) (string, error) {
			return fmt.Sprintf("Successfully executed %s for scenario analysis", name), nil
		}
	}
	t.analyze = analyze
	return t
}

// WithLatency sets the simulated analysis latency. Intended for wiring time,
// before the tool is registered and invoked.
func (t *ScenarioTool) WithLatency(d time.Duration) *ScenarioTool {
	t.latency = d
	return t
}

// Name implements ports.Tool.
func (t *ScenarioTool) Name() string {
	return t.name
}

// Execute implements ports.Tool. It absorbs every failure, including panics
// in the analysis hook, into an error-status result.
func (t *ScenarioTool) Execute(ctx context.Context, scenario map[string]any) (result domain.ToolResult) {
	defer func() {
		if r := recover(); r != nil {
			logger.Get().Error("Tool panicked",
				zap.String("tool", t.name),
				zap.Any("panic", r),
			)
			result = domain.NewErrorResult(t.name, fmt.Sprintf("%v", r))
		}
	}()

	logger.Get().Debug("Executing tool",
		zap.String("tool", t.name),
		zap.Int("context_keys", len(scenario)),
	)

	if err := t.wait(ctx); err != nil {
		return domain.NewErrorResult(t.name, err.Error())
	}

	summary, err := t.analyze(ctx, scenario)
	if err != nil {
		logger.Get().Warn("Tool analysis failed",
			zap.String("tool", t.name),
			zap.Error(err),
		)
		return domain.NewErrorResult(t.name, err.Error())
	}

	return domain.NewSuccessResult(t.name, t.description, scenario, summary)
}

// wait simulates the analyzer's I/O-bound latency while honoring any
// deadline the caller imposed through ctx.
func (t *ScenarioTool) wait(ctx context.Context) error {
	if t.latency <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(t.latency)
	defer timer.Stop()

	select {
	case <-timer.C:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Describe implements ports.Tool.
func (t *ScenarioTool) Describe() domain.ToolInfo {
	return domain.ToolInfo{
		Name:        t.name,
		Description: t.description,
		Purpose:     t.purpose,
		CreatedAt:   t.createdAt,
	}
}
