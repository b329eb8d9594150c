package agent

import (
	"github.com/aaaai-dev/aaaai/internal/util"
	"github.com/aaaai-dev/aaaai/tool"
)

const toolsPrompt = `system_prompt:
    You are an assistant that has access to the following set of tools.
    Here are the names and descriptions for each tool:

    {{.RenderedTools}}

    Given the user input, return the name and input of the tool to use.
    Return your response as a JSON blob with 'name' and 'arguments' keys.

    The ` + "`arguments`" + ` should be a dictionary, with keys corresponding
    to the argument names and the values corresponding to the requested values.
`

const missionPrompt = `system_prompt:
    {{.Mission}}

plan:

`

// describePrefix starts every agent self-description.
const describePrefix = "i am AI agent with below prompt:"

// AssemblePrompt builds a system prompt: the tool block (only when tools are
// given), then the mission block. The question is appended at message time.
// The result depends only on its inputs.
func AssemblePrompt(mission string, tools []tool.Tool) (string, error) {
	var prompt string

	if len(tools) > 0 {
		block, err := util.RenderTemplate(toolsPrompt, map[string]any{
			"RenderedTools": util.Indent("\t", tool.Render(tools)),
		})
		if err != nil {
			return "", err
		}
		prompt += block
	}

	block, err := util.RenderTemplate(missionPrompt, map[string]any{"Mission": mission})
	if err != nil {
		return "", err
	}
	return prompt + block, nil
}
