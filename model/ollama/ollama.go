// Package ollama provides an implementation of model.Model backed by a local
// Ollama server's generate endpoint. It is the default completion client of
// aaaai agents.
package ollama

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/aaaai-dev/aaaai/model"
	"github.com/ollama/ollama/api"
)

// DefaultBaseURL is the address of a locally running Ollama server.
const DefaultBaseURL = "http://localhost:11434"

// Options configures the Ollama model adapter.
type Options struct {
	BaseURL     string
	HTTPClient  *http.Client
	Temperature *float64
	// Options are passed through verbatim as Ollama model options (num_ctx, seed, ...).
	Options map[string]any
}

// Model wraps the Ollama generate API behind the generic model.Model interface.
type Model struct {
	client *api.Client
	name   string
	opts   Options
}

// NewModel creates a model bound to name on the configured Ollama server.
func NewModel(name string, optFns ...func(o *Options)) (*Model, error) {
	opts := Options{
		BaseURL:    DefaultBaseURL,
		HTTPClient: http.DefaultClient,
	}
	for _, fn := range optFns {
		fn(&opts)
	}

	if opts.HTTPClient == nil {
		opts.HTTPClient = http.DefaultClient
	}
	if opts.BaseURL == "" {
		opts.BaseURL = DefaultBaseURL
	}

	if strings.TrimSpace(name) == "" {
		return nil, fmt.Errorf("ollama: model name is required")
	}

	if !strings.Contains(opts.BaseURL, "://") {
		opts.BaseURL = "http://" + opts.BaseURL
	}
	u, err := url.Parse(opts.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid ollama base url %q: %w", opts.BaseURL, err)
	}

	return NewModelFromClient(api.NewClient(u, opts.HTTPClient), name, func(o *Options) { *o = opts }), nil
}

// NewModelFromClient creates a model from an existing Ollama client.
func NewModelFromClient(client *api.Client, name string, optFns ...func(o *Options)) *Model {
	opts := Options{BaseURL: DefaultBaseURL}
	for _, fn := range optFns {
		fn(&opts)
	}
	return &Model{client: client, name: name, opts: opts}
}

// Generate implements model.Model. The response is requested unstreamed; any
// chunks the server still sends are concatenated.
func (m *Model) Generate(ctx context.Context, req model.Request) (model.Response, error) {
	stream := false
	gr := &api.GenerateRequest{
		Model:  m.name,
		Prompt: req.Prompt,
		Stream: &stream,
	}
	if req.Format == model.FormatJSON {
		gr.Format = json.RawMessage(`"json"`)
	}
	if len(m.opts.Options) > 0 || m.opts.Temperature != nil {
		gr.Options = make(map[string]any, len(m.opts.Options)+1)
		for k, v := range m.opts.Options {
			gr.Options[k] = v
		}
		if m.opts.Temperature != nil {
			gr.Options["temperature"] = *m.opts.Temperature
		}
	}

	var (
		text strings.Builder
		last api.GenerateResponse
	)

	if err := m.client.Generate(ctx, gr, func(resp api.GenerateResponse) error {
		text.WriteString(resp.Response)
		last = resp
		return nil
	}); err != nil {
		return model.Response{}, fmt.Errorf("ollama api error: %w", err)
	}

	return model.Response{
		Text:         text.String(),
		FinishReason: last.DoneReason,
		Usage: &model.TokenUsage{
			PromptTokens:     last.PromptEvalCount,
			CompletionTokens: last.EvalCount,
			TotalTokens:      last.PromptEvalCount + last.EvalCount,
		},
	}, nil
}

// Info returns metadata describing this Ollama model binding.
func (m *Model) Info() model.Info {
	return model.Info{
		Name:     m.name,
		Provider: "ollama",
		BaseURL:  m.opts.BaseURL,
	}
}
