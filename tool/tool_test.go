package tool

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sayHello() *FunctionTool {
	return NewFunctionTool(
		"say_hello",
		"this function say hello to someone\n\nArgs:\n    person_name (string): target name",
		[]Param{{Name: "person_name", Type: "string", Description: "target name"}},
		func(_ context.Context, args map[string]any) (any, error) {
			return fmt.Sprintf("Hi %s!", args["person_name"]), nil
		},
	)
}

func constTool(name string, result any) *FunctionTool {
	return NewFunctionTool(name, name+" tool", nil, func(context.Context, map[string]any) (any, error) {
		return result, nil
	})
}

// -------------------- FunctionTool Tests --------------------

func TestFunctionTool_Success(t *testing.T) {
	result, err := sayHello().Call(context.Background(), map[string]any{"person_name": "Ali"})
	require.NoError(t, err)
	assert.Equal(t, "Hi Ali!", result)
}

func TestFunctionTool_ValidationError(t *testing.T) {
	_, err := sayHello().Call(context.Background(), map[string]any{})
	var toolErr *ToolError
	require.ErrorAs(t, err, &toolErr)
	assert.Equal(t, CodeValidation, toolErr.Code)

	var vErr *ValidationError
	require.ErrorAs(t, err, &vErr)
	assert.Equal(t, "person_name", vErr.Field)

	_, err = sayHello().Call(context.Background(), map[string]any{"person_name": "Ali", "mood": "happy"})
	require.ErrorAs(t, err, &toolErr)
	assert.Equal(t, CodeValidation, toolErr.Code)
}

func TestFunctionTool_ExecutionError(t *testing.T) {
	boom := errors.New("boom")
	failing := NewFunctionTool("fail", "always fails", nil, func(context.Context, map[string]any) (any, error) {
		return nil, boom
	})

	_, err := failing.Call(context.Background(), nil)
	var toolErr *ToolError
	require.ErrorAs(t, err, &toolErr)
	assert.Equal(t, CodeExecution, toolErr.Code)
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, "tool error [EXECUTION_ERROR] in fail: boom", err.Error())
}

func TestFunctionTool_ToolErrorPassthrough(t *testing.T) {
	custom := NewToolError("quota", "quota exceeded", "RATE_LIMITED")
	tl := NewFunctionTool("quota", "", nil, func(context.Context, map[string]any) (any, error) {
		return nil, custom
	})
	_, err := tl.Call(context.Background(), nil)
	assert.Same(t, custom, err)
}

func TestNewFunctionToolFromStruct(t *testing.T) {
	type helloArgs struct {
		PersonName string `json:"person_name" description:"target name"`
		Times      int    `json:"times,omitempty"`
	}
	tl := NewFunctionToolFromStruct("say_hello", "say hello", helloArgs{}, func(context.Context, map[string]any) (any, error) {
		return nil, nil
	})
	assert.Equal(t, []Param{
		{Name: "person_name", Type: "string", Description: "target name"},
		{Name: "times", Type: "integer", Optional: true},
	}, tl.Params())
	assert.Equal(t, []string{"person_name"}, tl.Schema()["required"])
}

// -------------------- Registry Tests --------------------

func TestRegistry_RejectsInvalidTools(t *testing.T) {
	tests := []struct {
		name string
		tool Tool
	}{
		{"nil tool", nil},
		{"not callable", NewFunctionTool("noop", "", nil, nil)},
		{"empty name", constTool("", nil)},
		{"leading marker", constTool("_private", nil)},
		{"trailing marker", constTool("private_", nil)},
		{"dunder", constTool("__init__", nil)},
		{"reserved message", constTool("message", nil)},
		{"reserved select", constTool("select", nil)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewRegistry(tt.tool)
			var toolErr *ToolError
			require.ErrorAs(t, err, &toolErr)
			assert.Equal(t, CodeConfig, toolErr.Code)
		})
	}
}

func TestRegistry_Duplicate(t *testing.T) {
	_, err := NewRegistry(sayHello(), sayHello())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already registered")
}

func TestRegistry_OrderAndLookup(t *testing.T) {
	r, err := NewRegistry(constTool("b", 1), constTool("a", 2), sayHello())
	require.NoError(t, err)

	assert.Equal(t, []string{"b", "a", "say_hello"}, r.Names())
	assert.Equal(t, 3, r.Len())
	assert.Len(t, r.Tools(), 3)

	got, ok := r.Get("a")
	require.True(t, ok)
	assert.Equal(t, "a", got.Name())

	_, ok = r.Get("missing")
	assert.False(t, ok)
	assert.NotContains(t, r.Names(), "message")
	assert.NotContains(t, r.Names(), "select")
}

// -------------------- Render Tests --------------------

func TestRender(t *testing.T) {
	opt := NewFunctionTool("greet", "greets", []Param{
		{Name: "who", Type: "string"},
		{Name: "times", Type: "integer", Optional: true},
	}, func(context.Context, map[string]any) (any, error) { return nil, nil })

	out := Render([]Tool{sayHello(), opt, constTool("ping", nil)})
	assert.Equal(t,
		"say_hello(person_name: string) - this function say hello to someone\n\nArgs:\n    person_name (string): target name\n"+
			"greet(who: string, times?: integer) - greets\n"+
			"ping() - ping tool",
		out,
	)
	assert.Equal(t, "", Render(nil))
}

// -------------------- Parse Tests --------------------

func TestParseToolCall(t *testing.T) {
	tests := []struct {
		name       string
		completion string
		want       ToolCallRequest
	}{
		{
			name:       "bare object",
			completion: `{"name": "say_hello", "arguments": {"person_name": "Ali"}}`,
			want:       ToolCallRequest{Name: "say_hello", Arguments: map[string]any{"person_name": "Ali"}},
		},
		{
			name:       "code fence",
			completion: "```json\n{\"name\": \"say_hello\", \"arguments\": {\"person_name\": \"Ali\"}}\n```",
			want:       ToolCallRequest{Name: "say_hello", Arguments: map[string]any{"person_name": "Ali"}},
		},
		{
			name:       "surrounding prose",
			completion: `Sure! {"name": "add", "arguments": {"a": 1, "b": [2, 3]}} Hope that helps.`,
			want:       ToolCallRequest{Name: "add", Arguments: map[string]any{"a": 1.0, "b": []any{2.0, 3.0}}},
		},
		{
			name:       "missing arguments",
			completion: `{"name": "ping"}`,
			want:       ToolCallRequest{Name: "ping", Arguments: map[string]any{}},
		},
		{
			name:       "null arguments",
			completion: `{"name": "ping", "arguments": null}`,
			want:       ToolCallRequest{Name: "ping", Arguments: map[string]any{}},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseToolCall(tt.completion)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseToolCall_Malformed(t *testing.T) {
	for _, completion := range []string{
		"",
		"Hi Ali!",
		`{"name": "say_hello", "arguments": `,
		`{"arguments": {"person_name": "Ali"}}`,
		`{"name": 42, "arguments": {}}`,
		`{"name": "say_hello", "arguments": "Ali"}`,
		`["say_hello"]`,
	} {
		t.Run(completion, func(t *testing.T) {
			_, err := ParseToolCall(completion)
			assert.ErrorIs(t, err, ErrMalformedCompletion)
		})
	}
}

// -------------------- Dispatcher Tests --------------------

func TestDispatcher_ExactBeforeSubstring(t *testing.T) {
	r, err := NewRegistry(constTool("hello", "short"), constTool("say_hello", "long"))
	require.NoError(t, err)
	d := NewDispatcher(r)

	result, err := d.Dispatch(context.Background(), ToolCallRequest{Name: "say_hello"})
	require.NoError(t, err)
	assert.Equal(t, "long", result)
}

func TestDispatcher_SubstringTierIsRegistrationOrdered(t *testing.T) {
	r, err := NewRegistry(constTool("hello", "short"), constTool("say_hello", "long"))
	require.NoError(t, err)
	d := NewDispatcher(r)

	// registered name must be a substring of the requested one, first in order wins
	for i := 0; i < 5; i++ {
		result, err := d.Dispatch(context.Background(), ToolCallRequest{Name: "functions.say_hello"})
		require.NoError(t, err)
		assert.Equal(t, "short", result)
	}

	// the reverse direction never matches
	result, err := d.Dispatch(context.Background(), ToolCallRequest{Name: "hell"})
	require.NoError(t, err)
	assert.True(t, IsNotFound(result))
}

func TestDispatcher_StrictMatch(t *testing.T) {
	r, err := NewRegistry(sayHello())
	require.NoError(t, err)
	d := NewDispatcher(r, func(o *DispatcherOptions) { o.StrictMatch = true })

	result, err := d.Dispatch(context.Background(), ToolCallRequest{Name: "functions.say_hello"})
	require.NoError(t, err)
	assert.True(t, IsNotFound(result))
	assert.Equal(t, NotFound{Requested: "functions.say_hello"}, result)
	assert.Equal(t, "function not found", fmt.Sprint(result))
}

func TestDispatcher_NotFoundIsNotAToolResult(t *testing.T) {
	r, err := NewRegistry(constTool("echo", "function not found"))
	require.NoError(t, err)

	result, err := NewDispatcher(r).Dispatch(context.Background(), ToolCallRequest{Name: "echo"})
	require.NoError(t, err)
	assert.False(t, IsNotFound(result))
}

func TestDispatcher_PropagatesToolErrors(t *testing.T) {
	boom := errors.New("boom")
	failing := NewFunctionTool("fail", "", nil, func(context.Context, map[string]any) (any, error) {
		return nil, boom
	})
	r, err := NewRegistry(failing)
	require.NoError(t, err)

	_, err = NewDispatcher(r).Dispatch(context.Background(), ToolCallRequest{Name: "fail"})
	assert.ErrorIs(t, err, boom)
}

func TestDispatcher_DispatchCompletion(t *testing.T) {
	r, err := NewRegistry(sayHello())
	require.NoError(t, err)
	d := NewDispatcher(r)

	result, err := d.DispatchCompletion(context.Background(), `{"name": "say_hello", "arguments": {"person_name": "Ali"}}`)
	require.NoError(t, err)
	assert.Equal(t, "Hi Ali!", result)

	_, err = d.DispatchCompletion(context.Background(), "I cannot help with that")
	assert.ErrorIs(t, err, ErrMalformedCompletion)
}
