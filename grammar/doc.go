// Package grammar tokenizes deck text and assembles it into an ordered,
// immutable Deck of keyword occurrences.
//
// The deck language is free-format and keyword-driven: a keyword name opens
// a block, subsequent whitespace-separated items form slash-terminated
// records, '--' starts a line comment, quoted strings may contain blanks,
// and N*value is repeat-count shorthand for N consecutive equal items.
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
//
package grammar

import (
	"github.com/npillmayer/schuko/tracing"
)

// tracer traces with key 'resdeck.grammar'.
func tracer() tracing.Trace {
	return tracing.Select("resdeck.grammar")
}
