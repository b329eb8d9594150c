// Package agent contains the Agent: a system prompt bound to a completion
// model, optionally exposing explicitly registered tools.
//
// An Agent has two entry points:
//
//  1. Message sends the assembled system prompt plus a question to the model.
//     Without tools the raw completion text is returned; with tools the
//     completion is parsed as a JSON tool call and dispatched.
//  2. Select drives the selection protocol to make the model pick exactly one
//     of a closed set of options.
//
// The system prompt is assembled once at construction and never changes.
// Agents are identified by an ID assigned at construction, not by prompt text.
package agent
