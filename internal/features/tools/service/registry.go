package service

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"remedy-engine/internal/features/tools/domain"
	"remedy-engine/internal/features/tools/ports"
)

var (
	// ErrToolNotFound is returned when no tool is registered under a name.
	ErrToolNotFound = errors.New("tool not found")
	// ErrDuplicateTool is returned when two tools register the same name.
	ErrDuplicateTool = errors.New("duplicate tool name")
)

// Registry is the lookup-by-name home of every scenario analyzer.
// It is populated once at startup and read-only afterwards, so concurrent
// invocations need no locking.
type Registry struct {
	tools map[string]ports.Tool
}

// NewRegistry creates a Registry from the given tools.
func NewRegistry(tools ...ports.Tool) (*Registry, error) {
	byName := make(map[string]ports.Tool, len(tools))
	for _, tool := range tools {
		name := tool.Name()
		if _, exists := byName[name]; exists {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateTool, name)
		}
		byName[name] = tool
	}

	return &Registry{tools: byName}, nil
}

// Get returns the tool registered under name.
func (r *Registry) Get(name string) (ports.Tool, error) {
	tool, ok := r.tools[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrToolNotFound, name)
	}
	return tool, nil
}

// List returns the descriptions of all registered tools, sorted by name.
func (r *Registry) List() []domain.ToolInfo {
	infos := make([]domain.ToolInfo, 0, len(r.tools))
	for _, tool := range r.tools {
		infos = append(infos, tool.Describe())
	}
	sort.Slice(infos, func(i, j int) bool {
		return infos[i].Name < infos[j].Name
	})
	return infos
}

// Invoke runs the named tool with the given scenario context.
// The returned error only reports an unknown tool name; failures inside the
// tool arrive as an error-status ToolResult, which the caller must inspect.
func (r *Registry) Invoke(ctx context.Context, name string, scenario map[string]any) (domain.ToolResult, error) {
	tool, err := r.Get(name)
	if err != nil {
		return domain.ToolResult{}, err
	}
	return tool.Execute(ctx, scenario), nil
}
