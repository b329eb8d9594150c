package agent

import (
	"context"
	"fmt"
	"time"

	"github.com/aaaai-dev/aaaai/logging"
	"github.com/aaaai-dev/aaaai/model"
	"github.com/aaaai-dev/aaaai/selection"
	"github.com/aaaai-dev/aaaai/tool"
	"github.com/google/uuid"
)

// Options configures an Agent.
//
// Use functional options with New to override defaults.
type Options struct {
	// Name is a display name for logs; defaults to "agent-" plus the ID prefix.
	Name string
	// MaxRetry bounds selection retries in think mode.
	MaxRetry int
	// Tools are exposed to the model in the given order.
	Tools []tool.Tool
	// StrictToolMatch disables substring resolution of tool names.
	StrictToolMatch bool
	// Matcher checks selection answers; defaults to exact then containment.
	Matcher selection.Matcher
	Logger  logging.Logger
}

// Agent bundles a mission, a model binding and an optional tool set.
// It is immutable after construction.
type Agent struct {
	id           string
	name         string
	mission      string
	llm          model.Model
	maxRetry     int
	registry     *tool.Registry
	dispatcher   *tool.Dispatcher
	matcher      selection.Matcher
	systemPrompt string
	logger       logging.Logger
}

// New creates an agent for mission on llm. It fails if a tool is invalid or
// the prompt cannot be assembled.
//
// Defaults:
//   - MaxRetry: 3
//   - no tools (Message returns raw completion text)
//   - exact-then-substring matching for tools and selection
//   - NoOp logger
func New(mission string, llm model.Model, optFns ...func(o *Options)) (*Agent, error) {
	opts := Options{
		MaxRetry: selection.DefaultMaxRetry,
		Matcher:  selection.DefaultMatcher(),
		Logger:   logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	if llm == nil {
		return nil, fmt.Errorf("agent: model is required")
	}

	registry, err := tool.NewRegistry(opts.Tools...)
	if err != nil {
		return nil, fmt.Errorf("agent: %w", err)
	}

	systemPrompt, err := AssemblePrompt(mission, registry.Tools())
	if err != nil {
		return nil, fmt.Errorf("agent: assemble prompt: %w", err)
	}

	id := uuid.NewString()
	name := opts.Name
	if name == "" {
		name = "agent-" + id[:8]
	}

	logger := logging.With(opts.Logger, "agent_id", id, "agent", name)

	return &Agent{
		id:       id,
		name:     name,
		mission:  mission,
		llm:      llm,
		maxRetry: opts.MaxRetry,
		registry: registry,
		dispatcher: tool.NewDispatcher(registry, func(o *tool.DispatcherOptions) {
			o.StrictMatch = opts.StrictToolMatch
			o.Logger = logger
		}),
		matcher:      opts.Matcher,
		systemPrompt: systemPrompt,
		logger:       logger,
	}, nil
}

// ID returns the identifier assigned at construction.
func (a *Agent) ID() string { return a.id }

// Name returns the display name.
func (a *Agent) Name() string { return a.name }

// Mission returns the mission text.
func (a *Agent) Mission() string { return a.mission }

// Model returns the model binding.
func (a *Agent) Model() model.Model { return a.llm }

// MaxRetry returns the selection retry bound.
func (a *Agent) MaxRetry() int { return a.maxRetry }

// Tools returns the exposed tools in registration order.
func (a *Agent) Tools() []tool.Tool { return a.registry.Tools() }

// HasTools reports whether the agent answers through tool calls.
func (a *Agent) HasTools() bool { return a.registry.Len() > 0 }

// SystemPrompt returns the assembled system prompt.
func (a *Agent) SystemPrompt() string { return a.systemPrompt }

// Prompt returns the full prompt sent to the model for question.
func (a *Agent) Prompt(question string) string { return a.systemPrompt + question }

// Describe returns the agent's self-description used for routing.
func (a *Agent) Describe() string { return describePrefix + a.systemPrompt }

// Equal reports whether two agents are the same agent.
func (a *Agent) Equal(other *Agent) bool {
	return a != nil && other != nil && a.id == other.id
}

// Message sends question to the model. Without tools the completion text is
// returned as a string. With tools the completion must be a JSON tool call;
// the matched tool's result is returned unchanged, tool.NotFound when no tool
// matches, and an error wrapping tool.ErrMalformedCompletion when the
// completion is not a tool call.
func (a *Agent) Message(ctx context.Context, question string) (any, error) {
	a.logger.Debug("agent.message.start", "tools", a.registry.Len())

	req := model.Request{Prompt: a.Prompt(question)}
	if a.HasTools() {
		req.Format = model.FormatJSON
	}

	start := time.Now()
	resp, err := a.llm.Generate(ctx, req)
	if err != nil {
		a.logger.Error("model.generate.error", "model", a.llm.Info().Name, "error", err.Error())
		return nil, fmt.Errorf("agent %s: completion failed: %w", a.name, err)
	}

	tokens := 0
	if resp.Usage != nil {
		tokens = resp.Usage.TotalTokens
	}
	a.logger.Debug("model.generate",
		"model", a.llm.Info().Name,
		"duration_ms", time.Since(start).Milliseconds(),
		"tokens", tokens,
	)

	if !a.HasTools() {
		return resp.Text, nil
	}

	return a.dispatcher.DispatchCompletion(ctx, resp.Text)
}

// Ask implements selection.Asker by routing question through Message and
// rendering the result as text.
func (a *Agent) Ask(ctx context.Context, question string) (string, error) {
	result, err := a.Message(ctx, question)
	if err != nil {
		return "", err
	}
	switch v := result.(type) {
	case nil:
		return "", nil
	case string:
		return v, nil
	default:
		return fmt.Sprint(v), nil
	}
}

// Select makes the model choose exactly one of options for text. With think
// set, a non-matching answer is fed back up to MaxRetry times. An unmatched
// selection is reported by Result.Found, not by an error.
func (a *Agent) Select(ctx context.Context, text string, options selection.Options, think bool) (selection.Result, error) {
	p := selection.NewProtocol(a, func(o *selection.ProtocolOptions) {
		o.MaxRetry = a.maxRetry
		o.Think = think
		o.Matcher = a.matcher
		o.Logger = a.logger
	})
	return p.Select(ctx, text, options)
}

var _ selection.Asker = (*Agent)(nil)
