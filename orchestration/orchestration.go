package orchestration

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/aaaai-dev/aaaai/agent"
	"github.com/aaaai-dev/aaaai/logging"
	"github.com/aaaai-dev/aaaai/model"
	"github.com/aaaai-dev/aaaai/selection"
)

var (
	// ErrNoAgents is returned when Invoke runs before any agent is registered.
	ErrNoAgents = errors.New("no agents registered")
	// ErrNoAgentResolved is returned when the routing selection matched no agent.
	ErrNoAgentResolved = errors.New("no agent resolved for question")
)

// DefaultMission is the routing agent's mission.
const DefaultMission = "You route each question to the AI agent best suited to answer it. Answer with the chosen option only."

// Options configures an Orchestration.
type Options struct {
	// Mission of the internal routing agent.
	Mission string
	// MaxRetry bounds routing retries in think mode.
	MaxRetry int
	// Think feeds a non-matching routing answer back to the router.
	Think   bool
	Matcher selection.Matcher
	Logger  logging.Logger
}

// Orchestration holds registered agents in registration order plus the routing agent.
// It is not safe for concurrent registration.
type Orchestration struct {
	router *agent.Agent
	agents []*agent.Agent
	think  bool
	logger logging.Logger
}

// New creates an orchestration whose routing agent runs on llm.
func New(llm model.Model, optFns ...func(o *Options)) (*Orchestration, error) {
	opts := Options{
		Mission:  DefaultMission,
		MaxRetry: selection.DefaultMaxRetry,
		Matcher:  selection.DefaultMatcher(),
		Logger:   logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}

	router, err := agent.New(opts.Mission, llm, func(o *agent.Options) {
		o.Name = "router"
		o.MaxRetry = opts.MaxRetry
		o.Matcher = opts.Matcher
		o.Logger = opts.Logger
	})
	if err != nil {
		return nil, fmt.Errorf("orchestration: %w", err)
	}

	return &Orchestration{
		router: router,
		think:  opts.Think,
		logger: logging.With(opts.Logger, "component", "orchestration"),
	}, nil
}

// Register appends agents. An agent that is already registered is skipped.
func (o *Orchestration) Register(agents ...*agent.Agent) {
	for _, a := range agents {
		if a == nil {
			continue
		}
		if o.find(a.ID()) != nil {
			o.logger.Warn("orchestration.register.duplicate", "agent", a.Name(), "agent_id", a.ID())
			continue
		}
		o.agents = append(o.agents, a)
		o.logger.Debug("orchestration.register", "agent", a.Name(), "agent_id", a.ID(), "position", len(o.agents)-1)
	}
}

func (o *Orchestration) find(id string) *agent.Agent {
	for _, a := range o.agents {
		if a.ID() == id {
			return a
		}
	}
	return nil
}

// Agents returns the registered agents in registration order.
func (o *Orchestration) Agents() []*agent.Agent { return append([]*agent.Agent(nil), o.agents...) }

// Router returns the internal routing agent.
func (o *Orchestration) Router() *agent.Agent { return o.router }

// Route picks the agent for question without invoking it. The selection
// result is returned for inspection even when no agent was resolved.
func (o *Orchestration) Route(ctx context.Context, question string) (*agent.Agent, selection.Result, error) {
	if len(o.agents) == 0 {
		return nil, selection.Result{}, ErrNoAgents
	}

	byDescription := make(map[string]*agent.Agent, len(o.agents))
	options := make(selection.Options, 0, len(o.agents))
	for _, a := range o.agents {
		desc := a.Describe()
		key := strings.ToLower(desc)
		if _, dup := byDescription[key]; dup {
			// prompts equal up to letter case are indistinguishable to the router; the first registered wins
			continue
		}
		byDescription[key] = a
		options = append(options, selection.Option{Key: desc})
	}

	res, err := o.router.Select(ctx, question, options, o.think)
	if err != nil {
		return nil, res, fmt.Errorf("orchestration: route: %w", err)
	}
	if !res.Found {
		o.logger.Warn("orchestration.route.unresolved", "attempts", res.Calls())
		return nil, res, ErrNoAgentResolved
	}

	chosen := byDescription[strings.ToLower(res.Choice)]
	o.logger.Info("orchestration.route", "agent", chosen.Name(), "agent_id", chosen.ID(), "attempts", res.Calls())
	return chosen, res, nil
}

// Invoke routes question to one registered agent and returns that agent's
// Message result unchanged. The original question, not the routing prompt,
// is forwarded.
func (o *Orchestration) Invoke(ctx context.Context, question string) (any, error) {
	chosen, _, err := o.Route(ctx, question)
	if err != nil {
		return nil, err
	}
	return chosen.Message(ctx, question)
}
