package cli

// Options is the root command. The struct tags are interpreted by
// github.com/jessevdk/go-flags.
type Options struct {
	Config   string `short:"f" long:"config" description:"config YAML path"`
	Provider string `short:"p" long:"provider" description:"model provider (ollama, openai, anthropic)"`
	Model    string `long:"model" description:"model name, overrides the config"`

	Message *MessageCmd `command:"message" description:"Send one question to an agent"`
	Select  *SelectCmd  `command:"select" description:"Ask an agent to choose one of the given options"`
	Route   *RouteCmd   `command:"route" description:"Route a question to the best configured agent"`
}

func newOptions(a *App) *Options {
	return &Options{
		Message: &MessageCmd{app: a},
		Select:  &SelectCmd{app: a},
		Route:   &RouteCmd{app: a},
	}
}
