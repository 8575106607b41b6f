// Package schema is the static keyword registry for the deck language.
//
// The set of keywords the engine understands is closed and known ahead of
// time, so the registry is a single declaratively-built lookup table,
// populated at process start and never mutated afterwards. Lookup is
// case-insensitive: names are normalized to their canonical uppercase form
// at the boundary, so 'SaTNuM', 'SATNUM' and 'satnum' resolve identically.
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
//
package schema

import "github.com/npillmayer/schuko/tracing"

// tracer traces with key 'resdeck.schema'.
func tracer() tracing.Trace {
	return tracing.Select("resdeck.schema")
}
