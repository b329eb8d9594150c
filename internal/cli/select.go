package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/aaaai-dev/aaaai/agent"
	"github.com/aaaai-dev/aaaai/selection"
)

// ErrNoMatch is returned when no option matched the model's answers.
var ErrNoMatch = errors.New("no option matched")

// SelectCmd asks the model to pick one option for a text.
type SelectCmd struct {
	Mission string   `short:"m" long:"mission" default:"You classify text." description:"mission of the selecting agent"`
	Options []string `short:"o" long:"option" required:"yes" description:"option key, optionally key=description (repeatable)"`
	Think   bool     `long:"think" description:"feed non-matching answers back to the model"`
	Strict  bool     `long:"strict" description:"accept exact answers only"`
	Args    struct {
		Text []string `positional-arg-name:"text" required:"yes"`
	} `positional-args:"yes"`

	app *App
}

func (c *SelectCmd) Execute(_ []string) error {
	cfg, err := c.app.config()
	if err != nil {
		return err
	}
	options := parseOptions(c.Options)
	if err := options.Validate(); err != nil {
		return err
	}

	llm, err := c.app.NewModel(cfg, cfg.Model)
	if err != nil {
		return err
	}
	a, err := agent.New(c.Mission, llm, func(o *agent.Options) {
		o.Name = "selector"
		o.MaxRetry = cfg.MaxRetry
		o.Logger = c.app.logger(cfg)
		if c.Strict {
			o.Matcher = selection.StrictMatcher()
		}
	})
	if err != nil {
		return err
	}

	res, err := a.Select(c.app.ctx, strings.Join(c.Args.Text, " "), options, c.Think || cfg.Think)
	if err != nil {
		return err
	}
	if !res.Found {
		return fmt.Errorf("%w after %d attempts, last answer %q", ErrNoMatch, res.Calls(), res.LastAnswer())
	}
	_, err = fmt.Fprintln(c.app.Stdout, res.Choice)
	return err
}

// parseOptions reads "key" or "key=description" entries.
func parseOptions(raw []string) selection.Options {
	options := make(selection.Options, 0, len(raw))
	for _, r := range raw {
		key, desc, _ := strings.Cut(r, "=")
		options = append(options, selection.Option{Key: strings.TrimSpace(key), Description: strings.TrimSpace(desc)})
	}
	return options
}
