// Package props derives per-cell grid property arrays from a parsed deck.
//
// Derivation is a single pass over the deck in file order: data keywords
// fill the active box, region- and box-restricted modifiers mutate arrays
// produced by earlier keywords, and every dimensioned raw literal is
// normalized to SI exactly once at the moment it is written. The pass runs
// lazily, triggered by the first query, and is then memoized; afterwards
// the arrays are read-only.
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
//
package props

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'resdeck.props'.
func tracer() tracing.Trace {
	return tracing.Select("resdeck.props")
}
