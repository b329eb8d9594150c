// Package aaaai is the entry point for building LLM agents on a local Ollama
// server. An agent pairs a mission with a model and an optional set of
// tools; it answers questions in plain text or by calling one of its tools,
// and it can pick one of several options for a piece of text.
//
// Most applications:
//  1. create agents with NewAgent,
//  2. call Message or Select on them,
//  3. optionally register several agents on an orchestration created with
//     NewOrchestration and Invoke it to route each question.
//
// Lower level building blocks live in the agent, tool, selection,
// orchestration and model packages.
package aaaai

import (
	"github.com/aaaai-dev/aaaai/agent"
	"github.com/aaaai-dev/aaaai/logging"
	"github.com/aaaai-dev/aaaai/model/ollama"
	"github.com/aaaai-dev/aaaai/orchestration"
	"github.com/aaaai-dev/aaaai/selection"
	"github.com/aaaai-dev/aaaai/tool"
)

// Options configures agents and orchestrations created by this package.
type Options struct {
	// Name of the agent; generated when empty.
	Name string
	// MaxRetry bounds selection retries in think mode. Defaults to 3.
	MaxRetry int
	// BaseURL of the Ollama server. Defaults to http://localhost:11434.
	BaseURL string
	// Tools are exposed to agents in the given order.
	Tools []tool.Tool
	// Logger defaults to a no-op logger.
	Logger logging.Logger
}

func defaultOptions() Options {
	return Options{
		MaxRetry: selection.DefaultMaxRetry,
		BaseURL:  ollama.DefaultBaseURL,
		Logger:   logging.NoOpLogger{},
	}
}

// NewAgent creates an agent with mission running on the Ollama model modelName.
func NewAgent(mission, modelName string, optFns ...func(o *Options)) (*agent.Agent, error) {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	llm, err := ollama.NewModel(modelName, func(o *ollama.Options) { o.BaseURL = opts.BaseURL })
	if err != nil {
		return nil, err
	}

	return agent.New(mission, llm, func(o *agent.Options) {
		o.Name = opts.Name
		o.MaxRetry = opts.MaxRetry
		o.Tools = opts.Tools
		o.Logger = opts.Logger
	})
}

// NewOrchestration creates an orchestration whose router runs on the Ollama
// model modelName. Tools and Name are ignored.
func NewOrchestration(modelName string, optFns ...func(o *Options)) (*orchestration.Orchestration, error) {
	opts := defaultOptions()
	for _, fn := range optFns {
		fn(&opts)
	}

	llm, err := ollama.NewModel(modelName, func(o *ollama.Options) { o.BaseURL = opts.BaseURL })
	if err != nil {
		return nil, err
	}

	return orchestration.New(llm, func(o *orchestration.Options) {
		o.MaxRetry = opts.MaxRetry
		o.Logger = opts.Logger
	})
}
