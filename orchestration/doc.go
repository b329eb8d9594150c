// Package orchestration routes a question to one of several registered
// agents. An internal routing agent runs the selection protocol over the
// registered agents' self-descriptions; the question is then forwarded,
// unchanged, to the chosen agent.
package orchestration
