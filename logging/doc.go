// Package logging provides a minimal logging interface and adapters for aaaai.
//
// The Logger interface defines the leveled methods (Debug, Info, Warn, Error)
// that agents, the tool dispatcher, the selection protocol and the
// orchestration use for observability. This package includes:
//
//   - Logger interface for dependency injection
//   - SlogAdapter wrapping Go's structured logging
//   - NoOpLogger for silent operation (testing, minimal setups)
//
// Usage:
//
//	logger := logging.NewSlogLogger(logging.LogLevelInfo, "json", false)
//	a, err := agent.New("your name is Nora", llm, func(o *agent.Options) { o.Logger = logger })
package logging
