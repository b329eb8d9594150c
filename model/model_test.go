package model

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMockModel_ResponseOrder(t *testing.T) {
	m := NewMockModel("test-model")
	m.AddResponse("exact", "canned")
	m.Script("first", "second")
	m.SetFallback("fallback")

	ctx := context.Background()

	resp, err := m.Generate(ctx, Request{Prompt: "exact"})
	require.NoError(t, err)
	assert.Equal(t, "canned", resp.Text)

	for _, want := range []string{"first", "second", "fallback", "fallback"} {
		resp, err = m.Generate(ctx, Request{Prompt: "other"})
		require.NoError(t, err)
		assert.Equal(t, want, resp.Text)
	}

	assert.Equal(t, 5, m.Calls())
	assert.Equal(t, "exact", m.Requests()[0].Prompt)
}

func TestMockModel_DefaultResponse(t *testing.T) {
	m := NewMockModel("test-model")
	resp, err := m.Generate(context.Background(), Request{Prompt: "hi"})
	require.NoError(t, err)
	assert.Equal(t, "Mock response to: hi", resp.Text)
	assert.Equal(t, Info{Name: "test-model", Provider: "mock"}, m.Info())
}

func TestMockModel_Errors(t *testing.T) {
	m := NewMockModel("test-model")
	boom := errors.New("boom")
	m.FailWith(boom)

	_, err := m.Generate(context.Background(), Request{Prompt: "hi"})
	assert.ErrorIs(t, err, boom)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err = NewMockModel("x").Generate(ctx, Request{Prompt: "hi"})
	assert.ErrorIs(t, err, context.Canceled)
}
