package tool

import (
	"context"
	"fmt"

	"github.com/aaaai-dev/aaaai/internal/util"
)

// Func is the implementation signature of a FunctionTool.
type Func func(ctx context.Context, args map[string]any) (any, error)

// FunctionTool exposes a plain Go function as a Tool.
//
// Arguments are validated against the declared params before the function
// runs, so the function can type-assert them without further checks. A
// FunctionTool has no mutable state and is safe for concurrent use.
type FunctionTool struct {
	name        string
	description string
	params      []Param
	fn          Func
}

// NewFunctionTool constructs a FunctionTool from explicit params and function.
//
// Example:
//
//	hello := tool.NewFunctionTool(
//	  "say_hello",
//	  "this function say hello to someone",
//	  []tool.Param{{Name: "person_name", Type: "string", Description: "target name"}},
//	  func(_ context.Context, args map[string]any) (any, error) {
//	    return fmt.Sprintf("Hi %s!", args["person_name"]), nil
//	  },
//	)
func NewFunctionTool(name, description string, params []Param, fn Func) *FunctionTool {
	return &FunctionTool{
		name:        name,
		description: description,
		params:      append([]Param(nil), params...),
		fn:          fn,
	}
}

// NewFunctionToolFromStruct derives the params from the fields of an argument
// struct, in field order. Field names follow json tags and descriptions the
// `description` tag.
//
//	type helloArgs struct {
//	  PersonName string `json:"person_name" description:"target name"`
//	}
//
//	hello := tool.NewFunctionToolFromStruct("say_hello", "say hello to someone", helloArgs{}, fn)
func NewFunctionToolFromStruct(name, description string, structType any, fn Func) *FunctionTool {
	return NewFunctionTool(name, description, util.ParamsFromStruct(structType), fn)
}

// Name returns the tool name.
func (t *FunctionTool) Name() string { return t.name }

// Description returns the tool documentation.
func (t *FunctionTool) Description() string { return t.description }

// Params returns a copy of the declared params.
func (t *FunctionTool) Params() []Param { return append([]Param(nil), t.params...) }

// Schema returns the params as a JSON schema object.
func (t *FunctionTool) Schema() map[string]any { return util.SchemaFromParams(t.params) }

// Call validates args then invokes the underlying function.
//
// Error Semantics:
//
//	validation failure -> *ToolError{Code: VALIDATION_ERROR}
//	*ToolError         -> forwarded unchanged
//	other error        -> *ToolError{Code: EXECUTION_ERROR} wrapping the cause
func (t *FunctionTool) Call(ctx context.Context, args map[string]any) (any, error) {
	if t.fn == nil {
		return nil, NewToolError(t.name, "tool has no implementation", CodeConfig)
	}

	if args == nil {
		args = map[string]any{}
	}

	if err := util.ValidateArguments(args, t.params); err != nil {
		return nil, &ToolError{
			Tool:    t.name,
			Message: fmt.Sprintf("parameter validation failed: %v", err),
			Code:    CodeValidation,
			Err:     err,
		}
	}

	result, err := t.fn(ctx, args)
	if err != nil {
		if toolErr, ok := err.(*ToolError); ok {
			return nil, toolErr
		}
		return nil, &ToolError{
			Tool:    t.name,
			Message: err.Error(),
			Code:    CodeExecution,
			Err:     err,
		}
	}

	return result, nil
}

var _ Tool = (*FunctionTool)(nil)
