package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aaaai-dev/aaaai/orchestration"
)

// RouteCmd routes a question to one of the agents declared in the config and
// prints the chosen agent with its answer.
type RouteCmd struct {
	Think bool `long:"think" description:"feed non-matching routing answers back to the router"`
	Args  struct {
		Question []string `positional-arg-name:"question" required:"yes"`
	} `positional-args:"yes"`

	app *App
}

func (c *RouteCmd) Execute(_ []string) error {
	cfg, err := c.app.config()
	if err != nil {
		return err
	}
	if len(cfg.Agents) == 0 {
		return errors.New("route: the config declares no agents")
	}

	llm, err := c.app.NewModel(cfg, cfg.Model)
	if err != nil {
		return err
	}
	orch, err := orchestration.New(llm, func(o *orchestration.Options) {
		if cfg.Router.Mission != "" {
			o.Mission = cfg.Router.Mission
		}
		o.MaxRetry = cfg.MaxRetry
		o.Think = c.Think || cfg.Think
		o.Logger = c.app.logger(cfg)
	})
	if err != nil {
		return err
	}
	for _, decl := range cfg.Agents {
		a, err := c.app.buildAgent(cfg, decl, false)
		if err != nil {
			return err
		}
		orch.Register(a)
	}

	question := strings.Join(c.Args.Question, " ")
	chosen, _, err := orch.Route(c.app.ctx, question)
	if err != nil {
		return err
	}
	result, err := chosen.Message(c.app.ctx, question)
	if err != nil {
		return err
	}
	_, err = fmt.Fprintf(c.app.Stdout, "[%s] %v\n", chosen.Name(), result)
	return err
}
