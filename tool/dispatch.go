package tool

import (
	"context"
	"strings"
	"time"

	"github.com/aaaai-dev/aaaai/logging"
)

// NotFound is the result of dispatching a request no registered tool matches.
// It is a distinct type so it can never be confused with a tool's own output.
type NotFound struct {
	Requested string
}

// String returns the fixed failure text.
func (NotFound) String() string { return "function not found" }

// IsNotFound reports whether a dispatch result is the NotFound sentinel.
func IsNotFound(result any) bool {
	_, ok := result.(NotFound)
	return ok
}

// DispatcherOptions configures a Dispatcher.
type DispatcherOptions struct {
	// StrictMatch disables the substring resolution tier.
	StrictMatch bool
	Logger      logging.Logger
}

// Dispatcher resolves tool call requests against a Registry and invokes the match.
type Dispatcher struct {
	registry    *Registry
	strictMatch bool
	logger      logging.Logger
}

// NewDispatcher creates a dispatcher over registry.
func NewDispatcher(registry *Registry, optFns ...func(o *DispatcherOptions)) *Dispatcher {
	opts := DispatcherOptions{Logger: logging.NoOpLogger{}}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}
	return &Dispatcher{registry: registry, strictMatch: opts.StrictMatch, logger: opts.Logger}
}

// Resolve finds the tool for a requested name. An exact name match wins;
// otherwise, unless StrictMatch is set, the first registered tool (in
// registration order) whose name is a substring of the requested name.
func (d *Dispatcher) Resolve(requested string) (Tool, bool) {
	if t, ok := d.registry.Get(requested); ok {
		return t, true
	}
	if d.strictMatch {
		return nil, false
	}
	for _, t := range d.registry.tools {
		if strings.Contains(requested, t.Name()) {
			return t, true
		}
	}
	return nil, false
}

// Dispatch invokes the tool matching req.Name with req.Arguments. An
// unmatched name yields NotFound and a nil error; tool errors are returned
// as is.
func (d *Dispatcher) Dispatch(ctx context.Context, req ToolCallRequest) (any, error) {
	t, ok := d.Resolve(req.Name)
	if !ok {
		d.logger.Warn("tool.dispatch.not_found", "requested", req.Name, "available", d.registry.Names())
		return NotFound{Requested: req.Name}, nil
	}

	d.logger.Debug("tool.call.start", "tool", t.Name(), "requested", req.Name)
	start := time.Now()

	result, err := t.Call(ctx, req.Arguments)
	if err != nil {
		d.logger.Error("tool.call.error", "tool", t.Name(), "error", err.Error())
		return nil, err
	}

	d.logger.Info("tool.call.success", "tool", t.Name(), "duration_ms", time.Since(start).Milliseconds())
	return result, nil
}

// DispatchCompletion parses a completion as a tool call and dispatches it.
// Parse failures wrap ErrMalformedCompletion.
func (d *Dispatcher) DispatchCompletion(ctx context.Context, completion string) (any, error) {
	req, err := ParseToolCall(completion)
	if err != nil {
		d.logger.Error("tool.dispatch.malformed", "error", err.Error())
		return nil, err
	}
	return d.Dispatch(ctx, req)
}
