package agent

import (
	"strings"
	"testing"

	"github.com/aaaai-dev/aaaai/internal/testutil"
	"github.com/aaaai-dev/aaaai/tool"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAssemblePrompt_WithoutTools(t *testing.T) {
	prompt, err := AssemblePrompt("your name is Nora", nil)
	require.NoError(t, err)
	assert.Equal(t, "system_prompt:\n    your name is Nora\n\nplan:\n\n", prompt)
}

func TestAssemblePrompt_WithTools(t *testing.T) {
	prompt, err := AssemblePrompt("your name is Nora", []tool.Tool{testutil.SayHello()})
	require.NoError(t, err)

	assert.Contains(t, prompt, "You are an assistant that has access to the following set of tools.")
	assert.Contains(t, prompt, "    say_hello(person_name: string) - this function say hello to someone\n\t\n\tArgs:")
	assert.Contains(t, prompt, "Return your response as a JSON blob with 'name' and 'arguments' keys.")
	assert.Contains(t, prompt, "The `arguments` should be a dictionary")
	assert.True(t, strings.HasSuffix(prompt, "plan:\n\n"))
	assert.Less(t, strings.Index(prompt, "say_hello("), strings.Index(prompt, "your name is Nora"))
}

func TestAssemblePrompt_IsPure(t *testing.T) {
	tools := []tool.Tool{testutil.SayHello()}
	a, err := AssemblePrompt("mission", tools)
	require.NoError(t, err)
	b, err := AssemblePrompt("mission", tools)
	require.NoError(t, err)
	assert.Equal(t, a, b)
}

func TestAssemblePrompt_MissionIsNotATemplate(t *testing.T) {
	prompt, err := AssemblePrompt("answer with {{.Secret}} verbatim", nil)
	require.NoError(t, err)
	assert.Contains(t, prompt, "answer with {{.Secret}} verbatim")
}
