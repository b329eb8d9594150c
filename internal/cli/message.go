package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aaaai-dev/aaaai/agent"
	"github.com/aaaai-dev/aaaai/config"
)

// MessageCmd sends a single question to one agent and prints its answer or
// the result of the tool it called.
type MessageCmd struct {
	Agent   string   `short:"a" long:"agent" description:"name of an agent declared in the config"`
	Mission string   `short:"m" long:"mission" description:"mission of an ad-hoc agent"`
	Tools   []string `short:"t" long:"tool" description:"builtin tool exposed to an ad-hoc agent (repeatable)"`
	Strict  bool     `long:"strict" description:"resolve tool names by exact match only"`
	Args    struct {
		Question []string `positional-arg-name:"question" required:"yes"`
	} `positional-args:"yes"`

	app *App
}

func (c *MessageCmd) Execute(_ []string) error {
	cfg, err := c.app.config()
	if err != nil {
		return err
	}

	decl := config.AgentConfig{Name: "cli", Mission: c.Mission, Tools: c.Tools}
	if c.Agent != "" {
		declared, ok := cfg.Agent(c.Agent)
		if !ok {
			return fmt.Errorf("agent %q is not declared in the config", c.Agent)
		}
		decl = declared
	}
	if strings.TrimSpace(decl.Mission) == "" {
		return errors.New("either --agent or --mission is required")
	}

	a, err := c.app.buildAgent(cfg, decl, c.Strict)
	if err != nil {
		return err
	}

	result, err := a.Message(c.app.ctx, strings.Join(c.Args.Question, " "))
	if err != nil {
		return err
	}
	_, err = fmt.Fprintln(c.app.Stdout, result)
	return err
}

func (a *App) buildAgent(cfg *config.Config, decl config.AgentConfig, strict bool) (*agent.Agent, error) {
	tools, err := lookupTools(decl.Tools)
	if err != nil {
		return nil, fmt.Errorf("agent %s: %w", decl.Name, err)
	}
	llm, err := a.NewModel(cfg, cfg.ModelFor(decl))
	if err != nil {
		return nil, fmt.Errorf("agent %s: %w", decl.Name, err)
	}
	return agent.New(decl.Mission, llm, func(o *agent.Options) {
		o.Name = decl.Name
		o.MaxRetry = cfg.MaxRetryFor(decl)
		o.Tools = tools
		o.StrictToolMatch = strict
		o.Logger = a.logger(cfg)
	})
}
