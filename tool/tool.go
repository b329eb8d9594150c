// Package tool implements the callable-tool subsystem of an agent: explicit
// tool declaration and registration, the human-readable rendering embedded in
// system prompts, parsing of a model's JSON tool call and dispatch of that
// call to the matching tool.
package tool

import (
	"context"
	"fmt"

	"github.com/aaaai-dev/aaaai/internal/util"
)

// Tool is a callable exposed to the model.
//
// Implementations should:
//   - Provide a descriptive snake_case name
//   - Declare every accepted parameter, in the order it should be shown to the model
//   - Describe the tool the way a docstring would; the text is shown verbatim
type Tool interface {
	// Name returns the identifier the model uses to request this tool.
	Name() string

	// Description returns the documentation shown to the model.
	Description() string

	// Params returns the ordered parameter declarations.
	Params() []Param

	// Call executes the tool with JSON decoded arguments keyed by parameter name.
	Call(ctx context.Context, args map[string]any) (any, error)
}

// Param declares one named, typed tool parameter.
type Param = util.Param

// ValidationError represents parameter validation errors with detailed information.
type ValidationError = util.ValidationError

// Error codes carried by ToolError.
const (
	CodeConfig     = "CONFIG_ERROR"
	CodeValidation = "VALIDATION_ERROR"
	CodeExecution  = "EXECUTION_ERROR"
)

// ToolError represents errors raised while registering or executing a tool.
type ToolError struct {
	Tool    string `json:"tool"`    // Name of the tool that failed
	Message string `json:"message"` // Error message
	Code    string `json:"code"`    // Error code for categorization
	Err     error  `json:"-"`       // Underlying cause, if any
}

func (e *ToolError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("tool error [%s] in %s: %s", e.Code, e.Tool, e.Message)
	}
	return fmt.Sprintf("tool error in %s: %s", e.Tool, e.Message)
}

// Unwrap returns the underlying cause.
func (e *ToolError) Unwrap() error { return e.Err }

// NewToolError creates a new ToolError with the specified details.
func NewToolError(tool, message, code string) *ToolError {
	return &ToolError{
		Tool:    tool,
		Message: message,
		Code:    code,
	}
}
