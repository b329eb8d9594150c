// Package cli implements the aaaai command line: one-shot agent messages,
// option selection and multi-agent routing driven by a YAML config.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/jessevdk/go-flags"

	"github.com/aaaai-dev/aaaai/config"
	"github.com/aaaai-dev/aaaai/logging"
	"github.com/aaaai-dev/aaaai/model"
)

// ModelFactory builds the completion client for a model name.
type ModelFactory func(cfg *config.Config, name string) (model.Model, error)

// App carries the process-level dependencies of the commands.
type App struct {
	Stdout   io.Writer
	Getenv   func(string) string
	NewModel ModelFactory
	// Logger overrides the logger built from the config.
	Logger logging.Logger

	ctx  context.Context
	opts *Options
}

// NewApp returns an App wired to the real process environment.
func NewApp() *App {
	return &App{
		Stdout:   os.Stdout,
		Getenv:   os.Getenv,
		NewModel: NewModel,
	}
}

// Run parses args and executes the selected sub-command.
func (a *App) Run(ctx context.Context, args []string) error {
	a.ctx = ctx
	a.opts = newOptions(a)

	parser := flags.NewParser(a.opts, flags.HelpFlag|flags.PassDoubleDash)
	parser.Name = "aaaai"
	_, err := parser.ParseArgs(args)
	return err
}

// config loads the file named by -f, then applies environment and flag overrides.
func (a *App) config() (*config.Config, error) {
	cfg, err := config.Load(a.opts.Config)
	if err != nil {
		return nil, err
	}
	// flags win over the environment; the provider must be final before
	// ApplyEnv picks its host and API key
	getenv := a.Getenv
	if a.opts.Provider != "" {
		cfg.Provider = a.opts.Provider
		getenv = func(key string) string {
			if key == "AAAAI_PROVIDER" {
				return ""
			}
			return a.Getenv(key)
		}
	}
	if err := cfg.ApplyEnv(getenv); err != nil {
		return nil, err
	}
	if a.opts.Model != "" {
		cfg.Model = a.opts.Model
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config: %w", err)
	}
	return cfg, nil
}

func (a *App) logger(cfg *config.Config) logging.Logger {
	if a.Logger != nil {
		return a.Logger
	}
	return cfg.Logger()
}
