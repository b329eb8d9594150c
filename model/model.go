package model

import (
	"context"
	"fmt"
	"sync"
)

// Format requests a particular output shape from a provider.
type Format string

const (
	// FormatText is unconstrained text output.
	FormatText Format = ""
	// FormatJSON asks the provider to constrain output to a JSON value when it
	// supports doing so. Providers without such a mode ignore it.
	FormatJSON Format = "json"
)

// Request is a single completion request.
type Request struct {
	Prompt string `json:"prompt"`
	Format Format `json:"format,omitempty"`
}

// TokenUsage captures token usage statistics for a response.
type TokenUsage struct {
	PromptTokens     int `json:"prompt_tokens"`
	CompletionTokens int `json:"completion_tokens"`
	TotalTokens      int `json:"total_tokens"`
}

// Response is the generated text of one completion round-trip.
type Response struct {
	Text         string      `json:"text"`
	FinishReason string      `json:"finish_reason,omitempty"`
	Usage        *TokenUsage `json:"usage,omitempty"`
}

// Info contains metadata about a model binding.
type Info struct {
	Name     string `json:"name"`
	Provider string `json:"provider"` // "ollama", "openai", "anthropic", "mock"
	BaseURL  string `json:"base_url,omitempty"`
}

// Model is the completion client consumed by agents. Generate blocks until the
// provider answers; timeouts are the caller's responsibility via ctx.
type Model interface {
	Generate(ctx context.Context, req Request) (Response, error)

	// Info returns information about the model binding.
	Info() Info
}

// MockModel is a lightweight in-memory Model useful for tests & examples.
//
// Responses are served from, in order: a per-prompt canned response, the
// scripted queue, then the fallback. Every request is recorded.
type MockModel struct {
	mu        sync.Mutex
	info      Info
	responses map[string]string
	script    []string
	fallback  *string
	err       error
	requests  []Request
}

// NewMockModel constructs a MockModel.
func NewMockModel(name string) *MockModel {
	return &MockModel{
		info:      Info{Name: name, Provider: "mock"},
		responses: make(map[string]string),
	}
}

// AddResponse registers a deterministic canned completion for an exact prompt.
func (m *MockModel) AddResponse(prompt, response string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.responses[prompt] = response
}

// Script appends responses served in order, one per Generate call.
func (m *MockModel) Script(responses ...string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.script = append(m.script, responses...)
}

// SetFallback sets the response returned once canned and scripted responses run out.
func (m *MockModel) SetFallback(response string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fallback = &response
}

// FailWith makes every subsequent Generate call return err.
func (m *MockModel) FailWith(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.err = err
}

// Requests returns a copy of all recorded requests.
func (m *MockModel) Requests() []Request {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]Request(nil), m.requests...)
}

// Calls returns the number of Generate calls made.
func (m *MockModel) Calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.requests)
}

// Generate implements Model.
func (m *MockModel) Generate(ctx context.Context, req Request) (Response, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.requests = append(m.requests, req)

	if err := ctx.Err(); err != nil {
		return Response{}, err
	}
	if m.err != nil {
		return Response{}, m.err
	}
	if r, ok := m.responses[req.Prompt]; ok {
		return Response{Text: r, FinishReason: "stop"}, nil
	}
	if len(m.script) > 0 {
		r := m.script[0]
		m.script = m.script[1:]
		return Response{Text: r, FinishReason: "stop"}, nil
	}
	if m.fallback != nil {
		return Response{Text: *m.fallback, FinishReason: "stop"}, nil
	}
	return Response{Text: fmt.Sprintf("Mock response to: %s", req.Prompt), FinishReason: "stop"}, nil
}

// Info implements Model.
func (m *MockModel) Info() Info { return m.info }
