package selection

import "strings"

// MatchFunc reports whether answer selects option.
type MatchFunc func(answer, option string) bool

// Exact matches an answer that is the option itself, ignoring case,
// surrounding whitespace, quotes and trailing punctuation.
func Exact(answer, option string) bool {
	return strings.EqualFold(normalize(answer), strings.TrimSpace(option))
}

// Contains matches an answer that contains the option, ignoring case.
func Contains(answer, option string) bool {
	return strings.Contains(strings.ToLower(answer), strings.ToLower(option))
}

func normalize(s string) string {
	return strings.Trim(strings.TrimSpace(s), "\"'`.!?,;: \t\n")
}

// Matcher checks an answer against options tier by tier. Within a tier
// options are tried in order; the first hit wins.
type Matcher struct {
	tiers []MatchFunc
}

// NewMatcher builds a matcher from tiers tried in the given order.
func NewMatcher(tiers ...MatchFunc) Matcher {
	return Matcher{tiers: append([]MatchFunc(nil), tiers...)}
}

// DefaultMatcher tries Exact, then Contains.
func DefaultMatcher() Matcher { return NewMatcher(Exact, Contains) }

// StrictMatcher only accepts exact answers.
func StrictMatcher() Matcher { return NewMatcher(Exact) }

// Match returns the key of the first matching option with its original casing.
func (m Matcher) Match(answer string, options Options) (string, bool) {
	tiers := m.tiers
	if len(tiers) == 0 {
		tiers = DefaultMatcher().tiers
	}
	for _, match := range tiers {
		for _, opt := range options {
			if match(answer, opt.Key) {
				return opt.Key, true
			}
		}
	}
	return "", false
}
