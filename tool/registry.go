package tool

import (
	"fmt"
	"strings"
)

// reservedNames are the agent's built-in entry points; a tool may not shadow them.
var reservedNames = map[string]struct{}{
	"message": {},
	"select":  {},
}

// reservedMarker may not lead or trail a tool name.
const reservedMarker = "_"

// IsReservedName reports whether name is one of the built-in entry point names.
func IsReservedName(name string) bool {
	_, ok := reservedNames[name]
	return ok
}

// Registry is the ordered set of tools an agent exposes. Tools are opted in
// explicitly; registration order is the order used for rendering and for
// substring resolution.
type Registry struct {
	tools []Tool
	index map[string]int
}

// NewRegistry registers tools in the given order. The first invalid tool aborts construction.
func NewRegistry(tools ...Tool) (*Registry, error) {
	r := &Registry{index: make(map[string]int, len(tools))}
	for _, t := range tools {
		if err := r.Register(t); err != nil {
			return nil, err
		}
	}
	return r, nil
}

// Register appends a tool. It rejects nil or unimplemented tools, empty names,
// names carrying the reserved marker at either end, reserved entry point
// names and duplicates.
func (r *Registry) Register(t Tool) error {
	if t == nil {
		return NewToolError("<nil>", "tool is nil", CodeConfig)
	}
	if ft, ok := t.(*FunctionTool); ok && (ft == nil || ft.fn == nil) {
		return NewToolError(nameOf(ft), "tool is not callable", CodeConfig)
	}

	name := t.Name()
	switch {
	case strings.TrimSpace(name) == "":
		return NewToolError(name, "tool name is empty", CodeConfig)
	case strings.Trim(name, reservedMarker) != name:
		return NewToolError(name, fmt.Sprintf("tool name must not start or end with %q", reservedMarker), CodeConfig)
	case IsReservedName(name):
		return NewToolError(name, "tool name is reserved", CodeConfig)
	}
	if _, exists := r.index[name]; exists {
		return NewToolError(name, "tool already registered", CodeConfig)
	}

	r.index[name] = len(r.tools)
	r.tools = append(r.tools, t)
	return nil
}

func nameOf(ft *FunctionTool) string {
	if ft == nil {
		return "<nil>"
	}
	return ft.name
}

// Get returns the tool registered under exactly name.
func (r *Registry) Get(name string) (Tool, bool) {
	i, ok := r.index[name]
	if !ok {
		return nil, false
	}
	return r.tools[i], true
}

// Tools returns the registered tools in registration order.
func (r *Registry) Tools() []Tool { return append([]Tool(nil), r.tools...) }

// Names returns the registered tool names in registration order.
func (r *Registry) Names() []string {
	names := make([]string, len(r.tools))
	for i, t := range r.tools {
		names[i] = t.Name()
	}
	return names
}

// Len returns the number of registered tools.
func (r *Registry) Len() int { return len(r.tools) }
