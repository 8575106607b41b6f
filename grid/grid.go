// Package grid provides the Cartesian grid geometry a deck describes:
// cell counts, (i,j,k) to linear index addressing, and the active-cell
// predicate. The property engine consumes it through a narrow interface
// and does not own it.
//
// License
//
// Governed by a 3-Clause BSD license. License file may be found in the root
// folder of this module.
//
// Copyright © 2021 Norbert Pillmayer <norbert@pillmayer.com>
//
package grid

import (
	"fmt"

	"github.com/npillmayer/resdeck/grammar"
)

// Cartesian is a regular nx·ny·nz grid. Linear cell indices run with i
// fastest, then j, then k, all 0-based.
type Cartesian struct {
	nx, ny, nz int
	active     []bool // nil means all cells active
}

// New creates a grid of the given extent with all cells active.
func New(nx, ny, nz int) (*Cartesian, error) {
	if nx <= 0 || ny <= 0 || nz <= 0 {
		return nil, fmt.Errorf("grid: illegal extent %d x %d x %d", nx, ny, nz)
	}
	return &Cartesian{nx: nx, ny: ny, nz: nz}, nil
}

// FromDeck builds the grid from the deck's DIMENS record, honoring an
// ACTNUM keyword covering the full grid if one is present.
func FromDeck(deck *grammar.Deck) (*Cartesian, error) {
	dimens, ok := deck.First("DIMENS")
	if !ok {
		return nil, fmt.Errorf("grid: deck has no DIMENS keyword")
	}
	rec := dimens.Record(0)
	g, err := New(rec.Item(0).Int(), rec.Item(1).Int(), rec.Item(2).Int())
	if err != nil {
		return nil, err
	}
	if actnum, ok := deck.First("ACTNUM"); ok {
		rec := actnum.Record(0)
		if rec.Len() == g.CellCount() {
			g.active = make([]bool, rec.Len())
			for c := 0; c < rec.Len(); c++ {
				g.active[c] = rec.Item(c).Int() != 0
			}
		}
	}
	return g, nil
}

// Dims returns the grid extent.
func (g *Cartesian) Dims() (nx, ny, nz int) {
	return g.nx, g.ny, g.nz
}

// CellCount returns the total number of cells, active or not.
func (g *Cartesian) CellCount() int {
	return g.nx * g.ny * g.nz
}

// Index maps 0-based (i,j,k) to the linear cell index.
func (g *Cartesian) Index(i, j, k int) int {
	return i + g.nx*(j+g.ny*k)
}

// IsActive reports whether the cell at a linear index is active.
func (g *Cartesian) IsActive(index int) bool {
	if g.active == nil {
		return true
	}
	return g.active[index]
}

// ActiveCount returns the number of active cells.
func (g *Cartesian) ActiveCount() int {
	if g.active == nil {
		return g.CellCount()
	}
	n := 0
	for _, a := range g.active {
		if a {
			n++
		}
	}
	return n
}
