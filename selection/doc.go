// Package selection implements the bounded-retry protocol that makes a
// language model pick exactly one value from a closed set of options.
//
// A Protocol asks the model (through an Asker) a composite question built from
// the input text and the options, then checks the answer with a Matcher. In
// think mode a non-matching answer is fed back as the next input, up to
// MaxRetry times, so the model can correct itself. Every attempt is kept in
// the Result for inspection.
package selection
