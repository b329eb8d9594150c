package cli

import (
	"context"
	"fmt"
	"sort"

	"github.com/aaaai-dev/aaaai/tool"
)

type sayHelloArgs struct {
	PersonName string `json:"person_name" description:"target name"`
}

// builtins are the tools an agent can be given by name.
var builtins = map[string]func() tool.Tool{
	"say_hello": func() tool.Tool {
		return tool.NewFunctionToolFromStruct(
			"say_hello",
			"this function say hello to someone, returns what you need say",
			sayHelloArgs{},
			func(_ context.Context, args map[string]any) (any, error) {
				return fmt.Sprintf("Hi %s!", args["person_name"]), nil
			},
		)
	},
}

func lookupTools(names []string) ([]tool.Tool, error) {
	tools := make([]tool.Tool, 0, len(names))
	for _, name := range names {
		build, ok := builtins[name]
		if !ok {
			return nil, fmt.Errorf("unknown tool %q, available: %v", name, builtinNames())
		}
		tools = append(tools, build())
	}
	return tools, nil
}

func builtinNames() []string {
	names := make([]string, 0, len(builtins))
	for name := range builtins {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
