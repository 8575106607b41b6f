package schema

import (
	"strings"

	"github.com/npillmayer/resdeck/units"
)

// Kind determines how a keyword's records are framed in deck text.
type Kind int

// Keyword framing kinds.
const (
	Section Kind = iota // section header, no records of its own
	Fixed               // a fixed number of slash-terminated records
	List                // records until a record consisting solely of '/'
	Data                // one record of per-cell values
)

// ItemType is the scalar type of one positional record item.
type ItemType int

// Item scalar types.
const (
	Int ItemType = iota
	Double
	String
)

// ItemDef describes one positional item of a record.
type ItemDef struct {
	Name       string
	Type       ItemType
	Dimension  units.Dimension
	HasDefault bool
	DefInt     int
	DefDouble  float64
	DefString  string
}

// PropClass says which property namespace a Data keyword feeds, if any.
type PropClass int

// Property namespaces.
const (
	NoProp PropClass = iota
	IntProp
	DoubleProp
)

// Entry is one keyword schema: framing kind and record layout, plus the
// target namespace, per-cell default and dimension for grid property
// keywords.
type Entry struct {
	Name      string // canonical uppercase form
	Kind      Kind
	NumRecs   int       // number of records, Kind == Fixed only
	Items     []ItemDef // positional item layout, Fixed and List records
	Class     PropClass // Data keywords only
	Dimension units.Dimension
	DefInt    int
	DefDouble float64
	// TableDefault marks keywords whose per-cell default may be overridden
	// by the deck's table section (consulted through the TableManager).
	TableDefault bool
}

// Canonical returns the canonical registry form of a keyword name.
// Deck files quote some names with trailing blanks ('PermX   '), and
// keyword lookup is case-insensitive throughout.
func Canonical(name string) string {
	return strings.ToUpper(strings.TrimSpace(name))
}

// Get looks up the schema entry for a keyword name, case-insensitively.
func Get(name string) (*Entry, bool) {
	e, ok := registry[Canonical(name)]
	return e, ok
}

// Known reports whether the deck language knows the keyword at all.
func Known(name string) bool {
	_, ok := registry[Canonical(name)]
	return ok
}

// SupportsGridProperty reports whether name denotes a supported grid
// property keyword (int or double). It never fails, for any input.
func SupportsGridProperty(name string) bool {
	e, ok := registry[Canonical(name)]
	return ok && e.Class != NoProp
}

// registry is the fixed keyword table. Built once by init, read-only after.
var registry map[string]*Entry

func register(e *Entry) {
	if _, dup := registry[e.Name]; dup {
		tracer().Errorf("duplicate schema entry %s", e.Name)
	}
	registry[e.Name] = e
}
