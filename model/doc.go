// Package model defines the provider-agnostic completion boundary used by
// agents: a fully assembled prompt string goes in, generated text comes out.
//
// Core goals:
//   - Keep request/response shapes minimal and transport independent
//   - Let tool-using agents ask for JSON constrained output where supported
//   - Facilitate lightweight mocking for tests (MockModel)
//
// Providers (ollama, openai, anthropic) implement the Model interface from
// this package so agents remain decoupled from vendor SDKs.
package model
