package schema

import "github.com/npillmayer/resdeck/units"

// The registry content. The deck language is a closed keyword set; every
// keyword the engine recognizes is declared here and nowhere else.
func init() {
	registry = make(map[string]*Entry)

	// --- Section headers and flag keywords ---------------------------------
	//
	// Section headers carry no records of their own. ENDBOX and the phase
	// and unit-family flags share the same framing: a bare keyword line.
	for _, name := range []string{
		"RUNSPEC", "GRID", "EDIT", "PROPS", "REGIONS", "SOLUTION",
		"SUMMARY", "SCHEDULE",
		"OIL", "GAS", "WATER",
		"METRIC", "FIELD", "LAB",
		"ENDBOX",
	} {
		register(&Entry{Name: name, Kind: Section})
	}

	// --- Fixed-record keywords ---------------------------------------------

	register(&Entry{Name: "DIMENS", Kind: Fixed, NumRecs: 1, Items: []ItemDef{
		{Name: "NX", Type: Int},
		{Name: "NY", Type: Int},
		{Name: "NZ", Type: Int},
	}})
	register(&Entry{Name: "GRIDOPTS", Kind: Fixed, NumRecs: 1, Items: []ItemDef{
		{Name: "TRANMULT", Type: String, HasDefault: true, DefString: "NO"},
		{Name: "NRMULT", Type: Int, HasDefault: true, DefInt: 0},
		{Name: "NRPINC", Type: Int, HasDefault: true, DefInt: 0},
	}})
	register(&Entry{Name: "START", Kind: Fixed, NumRecs: 1, Items: []ItemDef{
		{Name: "DAY", Type: Int, HasDefault: true, DefInt: 1},
		{Name: "MONTH", Type: String, HasDefault: true, DefString: "JAN"},
		{Name: "YEAR", Type: Int, HasDefault: true, DefInt: 1983},
		{Name: "TIME", Type: String, HasDefault: true, DefString: "00:00:00"},
	}})
	register(&Entry{Name: "BOX", Kind: Fixed, NumRecs: 1, Items: boxBounds()})

	// --- List keywords (records until a lone '/') --------------------------

	register(&Entry{Name: "FAULTS", Kind: List, Items: append([]ItemDef{
		{Name: "NAME", Type: String}},
		append(boxBounds(), ItemDef{Name: "FACE", Type: String})...,
	)})
	register(&Entry{Name: "MULTFLT", Kind: List, Items: []ItemDef{
		{Name: "NAME", Type: String},
		{Name: "MULT", Type: Double, HasDefault: true, DefDouble: 1.0},
	}})

	// Region-restricted modifiers. The operand's dimension follows the
	// target keyword and is resolved when the operator is applied, so the
	// item itself is registered dimensionless. The region selector item
	// defaults to empty, standing for the deck's default region keyword.
	register(&Entry{Name: "ADDREG", Kind: List, Items: regOpItems("SHIFT")})
	register(&Entry{Name: "EQUALREG", Kind: List, Items: regOpItems("VALUE")})
	register(&Entry{Name: "MULTIREG", Kind: List, Items: regOpItems("FACTOR")})
	register(&Entry{Name: "COPYREG", Kind: List, Items: []ItemDef{
		{Name: "SRC", Type: String},
		{Name: "TARGET", Type: String},
		{Name: "REGION_NUMBER", Type: Int},
		{Name: "REGION_NAME", Type: String, HasDefault: true, DefString: ""},
	}})

	// Box-restricted modifiers. The trailing six bounds are optional and
	// default to the active box.
	register(&Entry{Name: "EQUALS", Kind: List, Items: append([]ItemDef{
		{Name: "TARGET", Type: String},
		{Name: "VALUE", Type: Double}},
		boxBounds()...,
	)})
	register(&Entry{Name: "ADD", Kind: List, Items: append([]ItemDef{
		{Name: "TARGET", Type: String},
		{Name: "SHIFT", Type: Double}},
		boxBounds()...,
	)})
	register(&Entry{Name: "MULTIPLY", Kind: List, Items: append([]ItemDef{
		{Name: "TARGET", Type: String},
		{Name: "FACTOR", Type: Double}},
		boxBounds()...,
	)})
	register(&Entry{Name: "COPY", Kind: List, Items: append([]ItemDef{
		{Name: "SRC", Type: String},
		{Name: "TARGET", Type: String}},
		boxBounds()...,
	)})

	// --- Int grid properties -----------------------------------------------

	register(&Entry{Name: "ACTNUM", Kind: Data, Class: IntProp, DefInt: 1})
	for _, name := range []string{
		"SATNUM", "IMBNUM", "PVTNUM", "EQLNUM", "ENDNUM", "FLUXNUM",
		"MULTNUM", "FIPNUM", "MISCNUM", "OPERNUM",
	} {
		register(&Entry{Name: name, Kind: Data, Class: IntProp, DefInt: 0})
	}

	// --- Double grid properties --------------------------------------------

	// Geometry keywords are consumed by the grid provider, not the
	// property registry: they parse as cell-data records but feed no
	// property namespace.
	for _, name := range []string{"DX", "DY", "DZ", "TOPS"} {
		register(&Entry{Name: name, Kind: Data, Class: NoProp,
			Dimension: units.Length})
	}
	for _, name := range []string{"PERMX", "PERMY", "PERMZ"} {
		register(&Entry{Name: name, Kind: Data, Class: DoubleProp,
			Dimension: units.Permeability})
	}
	register(&Entry{Name: "PORO", Kind: Data, Class: DoubleProp})
	register(&Entry{Name: "NTG", Kind: Data, Class: DoubleProp, DefDouble: 1.0})
	register(&Entry{Name: "MULTPV", Kind: Data, Class: DoubleProp, DefDouble: 1.0})
	register(&Entry{Name: "SWAT", Kind: Data, Class: DoubleProp, TableDefault: true})
	register(&Entry{Name: "SWATINIT", Kind: Data, Class: DoubleProp, TableDefault: true})
	register(&Entry{Name: "TEMPI", Kind: Data, Class: DoubleProp,
		Dimension: units.Temperature})
	register(&Entry{Name: "THCONR", Kind: Data, Class: DoubleProp})
}

// boxBounds is the six-bound item layout shared by BOX, the fault layout
// and the box-restricted modifiers. Bounds carry no schema default: an
// unset bound means "take it from the active box" and is resolved by the
// property engine.
func boxBounds() []ItemDef {
	return []ItemDef{
		{Name: "I1", Type: Int},
		{Name: "I2", Type: Int},
		{Name: "J1", Type: Int},
		{Name: "J2", Type: Int},
		{Name: "K1", Type: Int},
		{Name: "K2", Type: Int},
	}
}

func regOpItems(operand string) []ItemDef {
	return []ItemDef{
		{Name: "TARGET", Type: String},
		{Name: operand, Type: Double},
		{Name: "REGION_NUMBER", Type: Int},
		{Name: "REGION_NAME", Type: String, HasDefault: true, DefString: ""},
	}
}
