// Package tables is the table-lookup collaborator of the property engine.
// The engine treats it as opaque: all it asks for is a per-keyword default
// value override for table-driven keywords.
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
//
package tables

import (
	"github.com/npillmayer/resdeck/grammar"
	"github.com/npillmayer/resdeck/schema"
)

// Manager answers default-value lookups for table-driven keywords. It is
// built once from a deck and read-only afterwards.
type Manager struct {
	defaults map[string]float64
}

// NewManager scans the deck's table section. Decks without table data
// yield a manager that defers every lookup to the keyword schema.
func NewManager(deck *grammar.Deck) *Manager {
	m := &Manager{defaults: make(map[string]float64)}
	// Saturation function and PVT tables are outside this module; their
	// keywords simply do not register defaults here.
	_ = deck
	return m
}

// SetDefault registers a default value override for a keyword. Used by
// hosts that resolve table defaults elsewhere.
func (m *Manager) SetDefault(keyword string, value float64) {
	m.defaults[schema.Canonical(keyword)] = value
}

// DefaultValue returns the table-driven per-cell default for a keyword,
// if the manager knows one.
func (m *Manager) DefaultValue(keyword string) (float64, bool) {
	v, ok := m.defaults[schema.Canonical(keyword)]
	return v, ok
}
