package domain

import "time"

// ToolStatus is the outcome of a tool invocation. There is no observable
// intermediate state: suspension inside Execute is latency, not a transition.
type ToolStatus string

const (
	ToolStatusSuccess ToolStatus = "success"
	ToolStatusError   ToolStatus = "error"
)

// ToolResult is the structured outcome of a single tool invocation.
// Failures are reported here rather than raised, so one failing analyzer
// can never destabilize its caller.
type ToolResult struct {
	// Tool is the name of the invoked tool.
	Tool string `json:"tool"`
	// Status is "success" or "error".
	Status ToolStatus `json:"status"`
	// Description is the tool's self-description (success only).
	Description string `json:"description,omitempty"`
	// ContextProcessed echoes the supplied scenario context, `{}` when none.
	ContextProcessed map[string]any `json:"context_processed"`
	// ExecutionTime is when the invocation finished. Always present.
	ExecutionTime time.Time `json:"execution_time"`
	// Result is a summary of the analysis (success only).
	Result string `json:"result,omitempty"`
	// Error carries the failure message verbatim (error status only).
	Error string `json:"error,omitempty"`
}

// NewSuccessResult builds a success result echoing the processed context.
// A nil context is echoed as an empty map.
func NewSuccessResult(tool, description string, contextProcessed map[string]any, summary string) ToolResult {
	if contextProcessed == nil {
		contextProcessed = map[string]any{}
	}
	return ToolResult{
		Tool:             tool,
		Status:           ToolStatusSuccess,
		Description:      description,
		ContextProcessed: contextProcessed,
		ExecutionTime:    time.Now(),
		Result:           summary,
	}
}

// NewErrorResult builds an error result carrying the failure message.
func NewErrorResult(tool, message string) ToolResult {
	return ToolResult{
		Tool:             tool,
		Status:           ToolStatusError,
		ContextProcessed: map[string]any{},
		ExecutionTime:    time.Now(),
		Error:            message,
	}
}

// ToolInfo is the synchronous self-description of a tool.
type ToolInfo struct {
	// Name is the tool's fixed registry name.
	Name string `json:"name"`
	// Description says what the tool analyzes.
	Description string `json:"description"`
	// Purpose says which scenario class the tool was created for.
	Purpose string `json:"purpose"`
	// CreatedAt is when the tool instance was constructed.
	CreatedAt time.Time `json:"created_at"`
}
