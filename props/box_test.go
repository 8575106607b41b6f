package props_test

import (
	"testing"

	"github.com/npillmayer/resdeck/units"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
)

const boxHeader = `RUNSPEC
DIMENS
 4 1 1 /
GRID
`

func TestBoxScopesDataKeyword(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "resdeck.props")
	defer teardown()
	//
	input := boxHeader + `BOX
 2 3 1 1 1 1 /
PORO
 2*0.5 /
ENDBOX
`
	s := newSetup(t, input)
	poro, err := s.props.DoubleGridProperty("PORO")
	if err != nil {
		t.Fatalf("DoubleGridProperty failed: %v", err)
	}
	want := []float64{0, 0.5, 0.5, 0}
	for i, w := range want {
		if got := poro.Get(i, 0, 0); got != w {
			t.Errorf("PORO(%d,0,0) = %g, expected %g", i, got, w)
		}
	}
}

func TestEndboxRestoresFullScope(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "resdeck.props")
	defer teardown()
	//
	input := boxHeader + `BOX
 2 3 1 1 1 1 /
PORO
 2*0.5 /
ENDBOX
NTG
 4*0.8 /
`
	s := newSetup(t, input)
	ntg, err := s.props.DoubleGridProperty("NTG")
	if err != nil {
		t.Fatalf("DoubleGridProperty failed: %v", err)
	}
	for i := 0; i < 4; i++ {
		if got := ntg.Get(i, 0, 0); got != 0.8 {
			t.Errorf("NTG(%d,0,0) = %g, expected 0.8 after ENDBOX", i, got)
		}
	}
}

func TestBoxDefaultedBoundsFallBack(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "resdeck.props")
	defer teardown()
	//
	// only the i-bounds are given; j and k fall back to the active scope
	input := boxHeader + `BOX
 1 2 4* /
PORO
 2*0.5 /
ENDBOX
`
	s := newSetup(t, input)
	poro, err := s.props.DoubleGridProperty("PORO")
	if err != nil {
		t.Fatalf("DoubleGridProperty failed: %v", err)
	}
	want := []float64{0.5, 0.5, 0, 0}
	for i, w := range want {
		if got := poro.Get(i, 0, 0); got != w {
			t.Errorf("PORO(%d,0,0) = %g, expected %g", i, got, w)
		}
	}
}

func TestBoxBoundsOutsideGrid(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "resdeck.props")
	defer teardown()
	//
	input := boxHeader + `BOX
 1 9 1 1 1 1 /
PORO
 9*0.5 /
ENDBOX
`
	s := newSetup(t, input)
	if _, err := s.props.DoubleGridProperty("PORO"); err == nil {
		t.Error("box exceeding the grid extent should fail derivation")
	}
}

func TestEqualsAndAddOperators(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "resdeck.props")
	defer teardown()
	//
	input := boxHeader + `PERMX
 4*1 /
EQUALS
 PERMX 10 1 2 1 1 1 1 /
/
ADD
 PERMX 5 2 3 1 1 1 1 /
/
`
	s := newSetup(t, input)
	permx, err := s.props.DoubleGridProperty("PERMX")
	if err != nil {
		t.Fatalf("DoubleGridProperty failed: %v", err)
	}
	mD, err := units.Factor(units.Metric, units.Permeability)
	if err != nil {
		t.Fatalf("metric permeability factor: %v", err)
	}
	want := []float64{10 * mD, 15 * mD, 6 * mD, 1 * mD}
	for i, w := range want {
		if got := permx.Get(i, 0, 0); !closeTo(got, w) {
			t.Errorf("PERMX(%d,0,0) = %g, expected %g", i, got, w)
		}
	}
}

func TestMultiplyOperatorIsDimensionless(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "resdeck.props")
	defer teardown()
	//
	input := boxHeader + `PERMX
 4*2 /
MULTIPLY
 PERMX 3 1 4 1 1 1 1 /
/
`
	s := newSetup(t, input)
	permx, err := s.props.DoubleGridProperty("PERMX")
	if err != nil {
		t.Fatalf("DoubleGridProperty failed: %v", err)
	}
	mD, err := units.Factor(units.Metric, units.Permeability)
	if err != nil {
		t.Fatalf("metric permeability factor: %v", err)
	}
	for i := 0; i < 4; i++ {
		if got := permx.Get(i, 0, 0); !closeTo(got, 6*mD) {
			t.Errorf("PERMX(%d,0,0) = %g, expected %g", i, got, 6*mD)
		}
	}
}

func TestCopyOperator(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "resdeck.props")
	defer teardown()
	//
	input := boxHeader + `PERMX
 1 2 3 4 /
COPY
 PERMX PERMY 2 3 1 1 1 1 /
/
`
	s := newSetup(t, input)
	permy, err := s.props.DoubleGridProperty("PERMY")
	if err != nil {
		t.Fatalf("DoubleGridProperty failed: %v", err)
	}
	permx, err := s.props.DoubleGridProperty("PERMX")
	if err != nil {
		t.Fatalf("DoubleGridProperty failed: %v", err)
	}
	want := []float64{0, permx.Get(1, 0, 0), permx.Get(2, 0, 0), 0}
	for i, w := range want {
		if got := permy.Get(i, 0, 0); got != w {
			t.Errorf("PERMY(%d,0,0) = %g, expected %g", i, got, w)
		}
	}
	if !permy.WasTouched() {
		t.Error("COPY must mark the target property touched")
	}
}

func TestCopyRegionOperator(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "resdeck.props")
	defer teardown()
	//
	input := boxHeader + `REGIONS
FLUXNUM
 1 1 2 2 /
SATNUM
 3 4 5 6 /
COPYREG
 SATNUM PVTNUM 2 F /
/
`
	s := newSetup(t, input)
	pvtnum, err := s.props.IntGridProperty("PVTNUM")
	if err != nil {
		t.Fatalf("IntGridProperty failed: %v", err)
	}
	want := []int{0, 0, 5, 6}
	for i, w := range want {
		if got := pvtnum.Get(i, 0, 0); got != w {
			t.Errorf("PVTNUM(%d,0,0) = %d, expected %d", i, got, w)
		}
	}
}

func TestEqualregOperator(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "resdeck.props")
	defer teardown()
	//
	input := boxHeader + `REGIONS
FLUXNUM
 1 2 2 1 /
EQUALREG
 SATNUM 7 2 /
/
MULTIREG
 SATNUM 3 1 /
/
`
	s := newSetup(t, input)
	satnum, err := s.props.IntGridProperty("SATNUM")
	if err != nil {
		t.Fatalf("IntGridProperty failed: %v", err)
	}
	want := []int{0, 7, 7, 0} // default 0 times 3 stays 0
	for i, w := range want {
		if got := satnum.Get(i, 0, 0); got != w {
			t.Errorf("SATNUM(%d,0,0) = %d, expected %d", i, got, w)
		}
	}
}

func TestFieldUnitFamily(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "resdeck.props")
	defer teardown()
	//
	input := `RUNSPEC
FIELD
DIMENS
 2 1 1 /
GRID
PERMX
 2*1 /
`
	s := newSetup(t, input)
	if s.props.UnitFamily() != units.Field {
		t.Fatalf("unit family = %v, expected Field", s.props.UnitFamily())
	}
	permx, err := s.props.DoubleGridProperty("PERMX")
	if err != nil {
		t.Fatalf("DoubleGridProperty failed: %v", err)
	}
	f, err := units.Factor(units.Field, units.Permeability)
	if err != nil {
		t.Fatalf("field permeability factor: %v", err)
	}
	if got := permx.Get(0, 0, 0); !closeTo(got, f) {
		t.Errorf("PERMX(0,0,0) = %g, expected %g", got, f)
	}
}
