package selection

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidOptions is returned for an option set that cannot be selected from.
var ErrInvalidOptions = errors.New("invalid selection options")

// Option is one selectable value with an optional description shown to the model.
type Option struct {
	Key         string
	Description string
}

// Options is an ordered option set. Order decides which option wins when
// several match the same answer.
type Options []Option

// Keys builds an option set from plain keys.
func Keys(keys ...string) Options {
	opts := make(Options, len(keys))
	for i, k := range keys {
		opts[i] = Option{Key: k}
	}
	return opts
}

// Described builds an option set from alternating key, description pairs.
// A trailing key without description is kept with an empty description.
func Described(pairs ...string) Options {
	opts := make(Options, 0, (len(pairs)+1)/2)
	for i := 0; i < len(pairs); i += 2 {
		o := Option{Key: pairs[i]}
		if i+1 < len(pairs) {
			o.Description = pairs[i+1]
		}
		opts = append(opts, o)
	}
	return opts
}

// KeyList returns the option keys in order.
func (o Options) KeyList() []string {
	keys := make([]string, len(o))
	for i, opt := range o {
		keys[i] = opt.Key
	}
	return keys
}

// HasDescriptions reports whether any option carries a description.
func (o Options) HasDescriptions() bool {
	for _, opt := range o {
		if opt.Description != "" {
			return true
		}
	}
	return false
}

// Validate rejects empty sets, blank keys and keys equal ignoring case.
func (o Options) Validate() error {
	if len(o) == 0 {
		return fmt.Errorf("%w: no options", ErrInvalidOptions)
	}
	seen := make(map[string]struct{}, len(o))
	for i, opt := range o {
		if strings.TrimSpace(opt.Key) == "" {
			return fmt.Errorf("%w: option %d has an empty key", ErrInvalidOptions, i)
		}
		k := strings.ToLower(opt.Key)
		if _, dup := seen[k]; dup {
			return fmt.Errorf("%w: duplicate option %q", ErrInvalidOptions, opt.Key)
		}
		seen[k] = struct{}{}
	}
	return nil
}
