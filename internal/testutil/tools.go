package testutil

import (
	"context"
	"fmt"
	"sync"

	"github.com/aaaai-dev/aaaai/tool"
)

// SayHello returns the greeting tool `say_hello(person_name)` answering "Hi <name>!".
func SayHello() *tool.FunctionTool {
	return tool.NewFunctionTool(
		"say_hello",
		"this function say hello to someone\n\nArgs:\n    person_name (string): target name\n\nReturns:\n    string: what you need say",
		[]tool.Param{{Name: "person_name", Type: "string", Description: "target name"}},
		func(_ context.Context, args map[string]any) (any, error) {
			return fmt.Sprintf("Hi %s!", args["person_name"]), nil
		},
	)
}

// RecordingTool is a tool that records every call and returns a fixed result.
type RecordingTool struct {
	*tool.FunctionTool

	mu    sync.Mutex
	calls []map[string]any
}

// NewRecordingTool creates a RecordingTool accepting any of params.
func NewRecordingTool(name string, result any, params ...tool.Param) *RecordingTool {
	rt := &RecordingTool{}
	rt.FunctionTool = tool.NewFunctionTool(name, "records calls to "+name, params, func(_ context.Context, args map[string]any) (any, error) {
		rt.mu.Lock()
		defer rt.mu.Unlock()
		rt.calls = append(rt.calls, args)
		return result, nil
	})
	return rt
}

// Calls returns the recorded argument maps.
func (r *RecordingTool) Calls() []map[string]any {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]map[string]any(nil), r.calls...)
}
