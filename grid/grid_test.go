package grid_test

import (
	"testing"

	"github.com/npillmayer/resdeck/grammar"
	"github.com/npillmayer/resdeck/grid"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

func TestGridFromDeck(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "resdeck.grammar")
	defer teardown()
	//
	deck, err := grammar.BuildDeck("RUNSPEC\nDIMENS\n 5 4 3 /\nGRID\n", nil)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	g, err := grid.FromDeck(deck)
	if err != nil {
		t.Fatalf("grid construction failed: %v", err)
	}
	if g.CellCount() != 60 {
		t.Errorf("cell count = %d, expected 60", g.CellCount())
	}
	nx, ny, nz := g.Dims()
	if nx != 5 || ny != 4 || nz != 3 {
		t.Errorf("dims = %d %d %d", nx, ny, nz)
	}
	if g.Index(0, 0, 0) != 0 || g.Index(4, 3, 2) != 59 || g.Index(1, 1, 0) != 6 {
		t.Errorf("linear indexing broken")
	}
	if !g.IsActive(17) {
		t.Errorf("cells should default to active")
	}
}

func TestGridActnum(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "resdeck.grammar")
	defer teardown()
	//
	input := "RUNSPEC\nDIMENS\n 2 2 1 /\nGRID\nACTNUM\n1 0 1 1 /\n"
	deck, err := grammar.BuildDeck(input, nil)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	g, err := grid.FromDeck(deck)
	if err != nil {
		t.Fatalf("grid construction failed: %v", err)
	}
	if g.ActiveCount() != 3 {
		t.Errorf("active count = %d, expected 3", g.ActiveCount())
	}
	if g.IsActive(1) || !g.IsActive(0) {
		t.Errorf("ACTNUM flags mis-applied")
	}
}

func TestGridMissingDimens(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "resdeck.grammar")
	defer teardown()
	//
	deck, err := grammar.BuildDeck("RUNSPEC\nGRID\n", nil)
	if err != nil {
		t.Fatalf("build failed: %v", err)
	}
	if _, err := grid.FromDeck(deck); err == nil {
		t.Error("expected an error for a deck without DIMENS")
	}
}

func TestGridIllegalExtent(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "resdeck.grammar")
	defer teardown()
	//
	if _, err := grid.New(0, 5, 5); err == nil {
		t.Error("zero extent should be rejected")
	}
}
