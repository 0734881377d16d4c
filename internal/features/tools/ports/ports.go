package ports

import (
	"context"

	"remedy-engine/internal/features/tools/domain"
)

// Tool is the uniform contract every scenario analyzer satisfies.
// An orchestrator depends only on this interface, never on analyzer internals.
//
// Execute must never panic outward and never raises: any failure inside the
// tool body is converted into a ToolResult with error status. Invocations are
// independent and side-effect-free on the tool itself, so concurrent calls
// need no coordination. No timeout is enforced internally; callers bound
// latency through ctx.
type Tool interface {
	// Name returns the fixed registry name of the tool.
	Name() string
	// Execute runs the analysis for the given scenario context.
	Execute(ctx context.Context, scenario map[string]any) domain.ToolResult
	// Describe returns the tool's self-description. Synchronous, cannot fail.
	Describe() domain.ToolInfo
}
