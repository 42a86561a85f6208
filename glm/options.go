// SPDX-License-Identifier: MIT

// Package glm: functional configuration of the text form.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal).
//
// The defaults produce the String form of every type: "(1, 2, 3)" for
// vectors and a list of columns "((1, 0), (0, 1))" for matrices. MarshalText
// and UnmarshalText always use the defaults.
package glm

import "strings"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultSeparator is placed between components and between columns.
	DefaultSeparator = ", "

	// DefaultOpen opens a vector or a matrix column list.
	DefaultOpen = "("

	// DefaultClose closes a vector or a matrix column list.
	DefaultClose = ")"

	// DefaultVerb is the fmt verb used for each component.
	DefaultVerb = "%v"
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicSeparatorEmpty = "glm: WithSeparator: separator must not be empty"
	panicBracketsEmpty  = "glm: WithBrackets: open and close must not be empty"
	panicVerbInvalid    = "glm: WithVerb: verb must start with '%'"
)

// Option mutates internal options. Constructors panic only on nonsensical
// values (programmer error).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
type Options struct {
	separator string // DefaultSeparator
	open      string // DefaultOpen
	close     string // DefaultClose
	verb      string // DefaultVerb; formatting only
}

// WithSeparator sets the text between components (and between columns).
// When parsing, surrounding whitespace is ignored and an all-whitespace
// separator splits on any run of whitespace.
// Panics on an empty separator.
func WithSeparator(sep string) Option {
	if sep == "" {
		panic(panicSeparatorEmpty)
	}

	return func(o *Options) { o.separator = sep }
}

// WithBrackets sets the opening and closing text of a vector or column list.
// Panics when either is empty.
func WithBrackets(open, close string) Option {
	if open == "" || close == "" {
		panic(panicBracketsEmpty)
	}

	return func(o *Options) {
		o.open = open
		o.close = close
	}
}

// WithVerb sets the fmt verb used for every component, e.g. "%.3f" or "%g".
// Parsing ignores it. Panics unless verb starts with '%'.
func WithVerb(verb string) Option {
	if len(verb) < 2 || !strings.HasPrefix(verb, "%") {
		panic(panicVerbInvalid)
	}

	return func(o *Options) { o.verb = verb }
}

// gatherOptions applies opts over the defaults.
func gatherOptions(opts []Option) Options {
	o := Options{
		separator: DefaultSeparator,
		open:      DefaultOpen,
		close:     DefaultClose,
		verb:      DefaultVerb,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(&o)
		}
	}

	return o
}
