// Package units holds the unit-conversion tables for deck quantities.
//
// Decks declare one of three measurement families (Metric, Field, Lab) in
// their header section. Every dimensioned raw literal read from a deck is
// multiplied by the family's factor for its dimension exactly once, at the
// moment it is stored, normalizing all property arrays to SI.
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
//
package units

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'resdeck.units'.
func tracer() tracing.Trace {
	return tracing.Select("resdeck.units")
}
