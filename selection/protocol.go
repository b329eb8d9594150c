package selection

import (
	"context"
	"fmt"
	"strings"

	"github.com/aaaai-dev/aaaai/logging"
)

// Instruction is the fixed plan embedded in every selection question.
const Instruction = "Choose exactly one of the options based on the text."

// DefaultMaxRetry is the retry bound used when none is configured.
const DefaultMaxRetry = 3

// Asker sends a question through a completion path and returns the answer text.
type Asker interface {
	Ask(ctx context.Context, question string) (string, error)
}

// AskFunc adapts a plain function to Asker.
type AskFunc func(ctx context.Context, question string) (string, error)

// Ask implements Asker.
func (f AskFunc) Ask(ctx context.Context, question string) (string, error) { return f(ctx, question) }

// Attempt is one question/answer round.
type Attempt struct {
	Question string
	Answer   string
}

// Result is the outcome of a selection. Found is false when no option was
// matched; Choice is then empty and must not be used.
type Result struct {
	Choice   string
	Found    bool
	Attempts []Attempt
}

// Calls returns the number of completions the selection made.
func (r Result) Calls() int { return len(r.Attempts) }

// LastAnswer returns the most recent answer, or "" before any attempt.
func (r Result) LastAnswer() string {
	if len(r.Attempts) == 0 {
		return ""
	}
	return r.Attempts[len(r.Attempts)-1].Answer
}

// ProtocolOptions configures a Protocol.
type ProtocolOptions struct {
	// MaxRetry bounds the retries made in think mode.
	MaxRetry int
	// Think feeds a non-matching answer back as the next input.
	Think   bool
	Matcher Matcher
	Logger  logging.Logger
}

// Protocol drives an Asker to pick one option.
type Protocol struct {
	asker    Asker
	maxRetry int
	think    bool
	matcher  Matcher
	logger   logging.Logger
}

// NewProtocol creates a protocol over asker.
func NewProtocol(asker Asker, optFns ...func(o *ProtocolOptions)) *Protocol {
	opts := ProtocolOptions{
		MaxRetry: DefaultMaxRetry,
		Matcher:  DefaultMatcher(),
		Logger:   logging.NoOpLogger{},
	}
	for _, fn := range optFns {
		fn(&opts)
	}
	if opts.MaxRetry < 0 {
		opts.MaxRetry = 0
	}
	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}
	return &Protocol{
		asker:    asker,
		maxRetry: opts.MaxRetry,
		think:    opts.Think,
		matcher:  opts.Matcher,
		logger:   opts.Logger,
	}
}

// Select asks until an answer matches an option. Without think mode it makes
// exactly one completion; in think mode at most MaxRetry+1, each retry using
// the previous answer as its text. A completion error aborts the selection
// and is returned together with the attempts made so far.
func (p *Protocol) Select(ctx context.Context, text string, options Options) (Result, error) {
	var res Result
	if err := options.Validate(); err != nil {
		return res, err
	}

	input := text
	for retry := 0; ; retry++ {
		question := BuildQuestion(input, options)

		answer, err := p.asker.Ask(ctx, question)
		if err != nil {
			p.logger.Error("selection.ask.error", "attempt", retry, "error", err.Error())
			return res, fmt.Errorf("selection attempt %d: %w", retry, err)
		}
		res.Attempts = append(res.Attempts, Attempt{Question: question, Answer: answer})

		if choice, ok := p.matcher.Match(answer, options); ok {
			p.logger.Debug("selection.matched", "attempt", retry, "choice", choice)
			res.Choice, res.Found = choice, true
			return res, nil
		}

		p.logger.Warn("selection.no_match", "attempt", retry, "think", p.think)

		if !p.think || retry >= p.maxRetry {
			return res, nil
		}
		input = answer
	}
}

// BuildQuestion renders the composite selection question. Option
// descriptions, if any, are appended to the text first.
func BuildQuestion(text string, options Options) string {
	if options.HasDescriptions() {
		described := make([]string, len(options))
		for i, o := range options {
			described[i] = fmt.Sprintf("%s -> %s", o.Key, o.Description)
		}
		text += "options description: " + strings.Join(described, ", ")
	}
	return fmt.Sprintf("text: %s | plan: %s | options : %s ", text, Instruction, strings.Join(options.KeyList(), ", "))
}
