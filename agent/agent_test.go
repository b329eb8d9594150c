package agent

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/aaaai-dev/aaaai/internal/testutil"
	"github.com/aaaai-dev/aaaai/model"
	"github.com/aaaai-dev/aaaai/selection"
	"github.com/aaaai-dev/aaaai/tool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_Defaults(t *testing.T) {
	llm := model.NewMockModel("gemma3:12b")
	a, err := New("your name is Nora", llm)
	require.NoError(t, err)

	assert.NotEmpty(t, a.ID())
	assert.True(t, strings.HasPrefix(a.Name(), "agent-"))
	assert.Equal(t, "your name is Nora", a.Mission())
	assert.Equal(t, 3, a.MaxRetry())
	assert.False(t, a.HasTools())
	assert.Empty(t, a.Tools())
	assert.Equal(t, "gemma3:12b", a.Model().Info().Name)
}

func TestNew_RequiresModel(t *testing.T) {
	_, err := New("mission", nil)
	assert.Error(t, err)
}

func TestNew_RejectsInvalidTools(t *testing.T) {
	bad := tool.NewFunctionTool("message", "shadows an entry point", nil, func(context.Context, map[string]any) (any, error) {
		return nil, nil
	})
	_, err := New("mission", model.NewMockModel("m"), func(o *Options) { o.Tools = []tool.Tool{bad} })

	var toolErr *tool.ToolError
	require.ErrorAs(t, err, &toolErr)
	assert.Equal(t, tool.CodeConfig, toolErr.Code)
}

func TestIdentity(t *testing.T) {
	llm := model.NewMockModel("m")
	a, err := New("same", llm)
	require.NoError(t, err)
	b, err := New("same", llm)
	require.NoError(t, err)

	assert.Equal(t, a.SystemPrompt(), b.SystemPrompt())
	assert.NotEqual(t, a.ID(), b.ID())
	assert.False(t, a.Equal(b))
	assert.True(t, a.Equal(a))
	assert.False(t, a.Equal(nil))
}

func TestDescribe(t *testing.T) {
	a, err := New("you answer math questions", model.NewMockModel("m"))
	require.NoError(t, err)
	assert.Equal(t, "i am AI agent with below prompt:"+a.SystemPrompt(), a.Describe())
}

func TestMessage_WithoutTools(t *testing.T) {
	llm := model.NewMockModel("m")
	a, err := New("your name is Nora", llm)
	require.NoError(t, err)

	llm.AddResponse(a.Prompt("what is your name?"), "My name is Nora.")

	result, err := a.Message(context.Background(), "what is your name?")
	require.NoError(t, err)
	assert.Equal(t, "My name is Nora.", result)

	reqs := llm.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, model.FormatText, reqs[0].Format)
}

func TestMessage_SayHelloEndToEnd(t *testing.T) {
	llm := model.NewMockModel("gemma3:12b")
	llm.SetFallback(`{"name": "say_hello", "arguments": {"person_name": "Ali"}}`)

	a, err := New("your name is Nora", llm, func(o *Options) {
		o.Tools = []tool.Tool{testutil.SayHello()}
	})
	require.NoError(t, err)

	result, err := a.Message(context.Background(), "say hello to ali")
	require.NoError(t, err)
	assert.Equal(t, "Hi Ali!", result)

	reqs := llm.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, model.FormatJSON, reqs[0].Format)
	assert.True(t, strings.HasSuffix(reqs[0].Prompt, "plan:\n\nsay hello to ali"))
}

func TestMessage_ToolNotFound(t *testing.T) {
	llm := model.NewMockModel("m")
	llm.SetFallback(`{"name": "wave", "arguments": {}}`)

	a, err := New("mission", llm, func(o *Options) { o.Tools = []tool.Tool{testutil.SayHello()} })
	require.NoError(t, err)

	result, err := a.Message(context.Background(), "wave")
	require.NoError(t, err)
	assert.True(t, tool.IsNotFound(result))
}

func TestMessage_SubstringResolution(t *testing.T) {
	rec := testutil.NewRecordingTool("say_hello", "ok", tool.Param{Name: "person_name", Type: "string"})
	llm := model.NewMockModel("m")
	llm.SetFallback(`{"name": "functions.say_hello", "arguments": {"person_name": "Ali"}}`)

	a, err := New("mission", llm, func(o *Options) { o.Tools = []tool.Tool{rec} })
	require.NoError(t, err)

	result, err := a.Message(context.Background(), "greet ali")
	require.NoError(t, err)
	assert.Equal(t, "ok", result)
	assert.Equal(t, []map[string]any{{"person_name": "Ali"}}, rec.Calls())

	strict, err := New("mission", llm, func(o *Options) {
		o.Tools = []tool.Tool{rec}
		o.StrictToolMatch = true
	})
	require.NoError(t, err)
	result, err = strict.Message(context.Background(), "greet ali")
	require.NoError(t, err)
	assert.True(t, tool.IsNotFound(result))
}

func TestMessage_MalformedCompletion(t *testing.T) {
	llm := model.NewMockModel("m")
	llm.SetFallback("Hello Ali, nice to meet you!")

	a, err := New("mission", llm, func(o *Options) { o.Tools = []tool.Tool{testutil.SayHello()} })
	require.NoError(t, err)

	_, err = a.Message(context.Background(), "say hello to ali")
	assert.ErrorIs(t, err, tool.ErrMalformedCompletion)
}

func TestMessage_ToolErrorPropagates(t *testing.T) {
	boom := errors.New("boom")
	failing := tool.NewFunctionTool("explode", "fails", nil, func(context.Context, map[string]any) (any, error) {
		return nil, boom
	})
	llm := model.NewMockModel("m")
	llm.SetFallback(`{"name": "explode", "arguments": {}}`)

	a, err := New("mission", llm, func(o *Options) { o.Tools = []tool.Tool{failing} })
	require.NoError(t, err)

	_, err = a.Message(context.Background(), "go")
	assert.ErrorIs(t, err, boom)
}

func TestMessage_ModelError(t *testing.T) {
	llm := model.NewMockModel("m")
	down := errors.New("connection refused")
	llm.FailWith(down)

	a, err := New("mission", llm)
	require.NoError(t, err)

	_, err = a.Message(context.Background(), "hi")
	assert.ErrorIs(t, err, down)
}

func TestAsk_RendersNonStringResults(t *testing.T) {
	llm := model.NewMockModel("m")
	llm.Script(`{"name": "count", "arguments": {}}`, `{"name": "nothing", "arguments": {}}`)

	count := testutil.NewRecordingTool("count", 42)
	a, err := New("mission", llm, func(o *Options) { o.Tools = []tool.Tool{count} })
	require.NoError(t, err)

	answer, err := a.Ask(context.Background(), "how many?")
	require.NoError(t, err)
	assert.Equal(t, "42", answer)

	answer, err = a.Ask(context.Background(), "anything else?")
	require.NoError(t, err)
	assert.Equal(t, "function not found", answer)
}

func TestSelect(t *testing.T) {
	llm := model.NewMockModel("m")
	llm.SetFallback("I like Apple")

	a, err := New("you pick fruit", llm)
	require.NoError(t, err)

	res, err := a.Select(context.Background(), "which fruit is red?", selection.Keys("apple", "banana"), false)
	require.NoError(t, err)
	assert.True(t, res.Found)
	assert.Equal(t, "apple", res.Choice)

	reqs := llm.Requests()
	require.Len(t, reqs, 1)
	assert.Equal(t, a.Prompt(selection.BuildQuestion("which fruit is red?", selection.Keys("apple", "banana"))), reqs[0].Prompt)
}

func TestSelect_ThinkUsesAgentMaxRetry(t *testing.T) {
	llm := model.NewMockModel("m")
	llm.SetFallback("no idea")

	a, err := New("you pick fruit", llm, func(o *Options) { o.MaxRetry = 2 })
	require.NoError(t, err)

	res, err := a.Select(context.Background(), "which?", selection.Keys("apple", "banana"), true)
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Equal(t, 3, llm.Calls())

	llm2 := model.NewMockModel("m")
	llm2.SetFallback("no idea")
	b, err := New("you pick fruit", llm2, func(o *Options) { o.MaxRetry = 2 })
	require.NoError(t, err)

	res, err = b.Select(context.Background(), "which?", selection.Keys("apple", "banana"), false)
	require.NoError(t, err)
	assert.False(t, res.Found)
	assert.Equal(t, 1, llm2.Calls())
}
