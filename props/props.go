package props

import (
	"fmt"

	"github.com/emirpasic/gods/maps/treemap"
	"github.com/emirpasic/gods/sets/treeset"
	"github.com/npillmayer/resdeck/grammar"
	"github.com/npillmayer/resdeck/schema"
	"github.com/npillmayer/resdeck/units"
)

// Grid is the geometry collaborator the engine borrows for the duration of
// derivation: cell counts and linear addressing, plus the active-cell
// predicate.
type Grid interface {
	Dims() (nx, ny, nz int)
	CellCount() int
	Index(i, j, k int) int
	IsActive(index int) bool
}

// TableManager supplies per-keyword default value overrides for
// table-driven keywords. Opaque beyond that.
type TableManager interface {
	DefaultValue(keyword string) (float64, bool)
}

// Properties holds the per-cell property arrays derived from a deck: two
// disjoint keyword namespaces, one for int and one for double arrays.
//
// Derivation over the whole deck runs once, triggered by the first query,
// and is memoized. The first access mutates shared state, so a Properties
// value must not see concurrent first queries; after derivation the arrays
// are read-only and freely shareable.
type Properties struct {
	deck          *grammar.Deck
	grid          Grid
	tables        TableManager
	family        units.Family
	defaultRegion string
	intProps      *treemap.Map // keyword name -> *IntProperty
	doubleProps   *treemap.Map // keyword name -> *DoubleProperty
	derived       bool
	deriveErr     error
}

// New creates the property registry for a deck. The grid and table manager
// are borrowed, not owned; they must outlive the first query. The unit
// family and the default region keyword are read from the deck's header
// section here, once.
func New(deck *grammar.Deck, g Grid, tm TableManager) *Properties {
	p := &Properties{
		deck:          deck,
		grid:          g,
		tables:        tm,
		family:        units.Metric,
		defaultRegion: "FLUXNUM",
		intProps:      treemap.NewWithStringComparator(),
		doubleProps:   treemap.NewWithStringComparator(),
	}
	for _, name := range []string{"METRIC", "FIELD", "LAB"} {
		if deck.HasKeyword(name) {
			p.family, _ = units.FamilyFromKeyword(name)
			break
		}
	}
	// GRIDOPTS with transmissibility multiplier regions enabled switches
	// the default region partition from FLUXNUM to MULTNUM.
	if gridopts, ok := deck.First("GRIDOPTS"); ok {
		tranmult := schema.Canonical(gridopts.Record(0).Item(0).String())
		if tranmult == "YES" || tranmult == "Y" {
			p.defaultRegion = "MULTNUM"
		}
	}
	tracer().P("family", p.family.String()).Debugf("property registry created")
	return p
}

// UnitFamily returns the deck's declared measurement family.
func (p *Properties) UnitFamily() units.Family {
	return p.family
}

// DefaultRegionKeyword returns the region partition keyword a region
// operator record falls back to when its selector item is defaulted.
func (p *Properties) DefaultRegionKeyword() string {
	return p.defaultRegion
}

// SupportsGridProperty reports whether name is in the supported-keyword
// registry, case-insensitively. It never fails, for any input.
func (p *Properties) SupportsGridProperty(name string) bool {
	return schema.SupportsGridProperty(name)
}

// HasDeckIntGridProperty tells whether the deck ever populated the named
// int property. Unlike SupportsGridProperty it fails for names outside the
// int registry.
func (p *Properties) HasDeckIntGridProperty(name string) (bool, error) {
	e, err := intEntry(name)
	if err != nil {
		return false, err
	}
	if err := p.ensure(); err != nil {
		return false, err
	}
	if v, ok := p.intProps.Get(e.Name); ok {
		return v.(*IntProperty).touched, nil
	}
	return false, nil
}

// HasDeckDoubleGridProperty is the double-namespace counterpart of
// HasDeckIntGridProperty.
func (p *Properties) HasDeckDoubleGridProperty(name string) (bool, error) {
	e, err := doubleEntry(name)
	if err != nil {
		return false, err
	}
	if err := p.ensure(); err != nil {
		return false, err
	}
	if v, ok := p.doubleProps.Get(e.Name); ok {
		return v.(*DoubleProperty).touched, nil
	}
	return false, nil
}

// IntGridProperty returns the named int property. Unknown names fail with
// an UnsupportedKeywordError; supported-but-untouched names return an
// array filled with the schema default.
func (p *Properties) IntGridProperty(name string) (*IntProperty, error) {
	e, err := intEntry(name)
	if err != nil {
		return nil, err
	}
	if err := p.ensure(); err != nil {
		return nil, err
	}
	return p.intFor(e), nil
}

// DoubleGridProperty is the double-namespace counterpart of
// IntGridProperty.
func (p *Properties) DoubleGridProperty(name string) (*DoubleProperty, error) {
	e, err := doubleEntry(name)
	if err != nil {
		return nil, err
	}
	if err := p.ensure(); err != nil {
		return nil, err
	}
	return p.doubleFor(e), nil
}

// Regions returns the sorted set of distinct values of the named int
// property, or an empty slice if the deck never touched it.
func (p *Properties) Regions(name string) ([]int, error) {
	e, err := intEntry(name)
	if err != nil {
		return nil, err
	}
	if err := p.ensure(); err != nil {
		return nil, err
	}
	v, ok := p.intProps.Get(e.Name)
	if !ok || !v.(*IntProperty).touched {
		return []int{}, nil
	}
	set := treeset.NewWithIntComparator()
	for _, value := range v.(*IntProperty).data {
		set.Add(value)
	}
	regions := make([]int, 0, set.Size())
	for _, value := range set.Values() {
		regions = append(regions, value.(int))
	}
	return regions, nil
}

// IntProperties yields the touched int properties, sorted by keyword name.
// Untouched but supported keywords never appear.
func (p *Properties) IntProperties() ([]*IntProperty, error) {
	if err := p.ensure(); err != nil {
		return nil, err
	}
	var out []*IntProperty
	p.intProps.Each(func(key, value interface{}) {
		if prop := value.(*IntProperty); prop.touched {
			out = append(out, prop)
		}
	})
	return out, nil
}

// DoubleProperties yields the touched double properties, sorted by keyword
// name.
func (p *Properties) DoubleProperties() ([]*DoubleProperty, error) {
	if err := p.ensure(); err != nil {
		return nil, err
	}
	var out []*DoubleProperty
	p.doubleProps.Each(func(key, value interface{}) {
		if prop := value.(*DoubleProperty); prop.touched {
			out = append(out, prop)
		}
	})
	return out, nil
}

// --- Derivation ------------------------------------------------------------

// ensure runs the one-shot derivation pass on first use. Failure is
// memoized as well: a broken deck stays broken on every later query.
func (p *Properties) ensure() error {
	if !p.derived {
		p.derived = true
		p.deriveErr = p.derive()
	}
	return p.deriveErr
}

// derive processes the deck's keywords in file order, threading the box
// state machine through and applying property effects as they come.
func (p *Properties) derive() error {
	nx, ny, nz := p.grid.Dims()
	full := fullBox(nx, ny, nz)
	active := full
	for n := 0; n < p.deck.Len(); n++ {
		kw := p.deck.Keyword(n)
		e := kw.Schema()
		var err error
		switch {
		case kw.Name() == "BOX":
			active, err = boxFromRecord(kw.Record(0), 0, active, full)
			if err == nil {
				tracer().Debugf("active box now %s", active)
			}
		case kw.Name() == "ENDBOX":
			active = full
		case e.Kind == schema.Data && e.Class == schema.IntProp:
			err = p.fillInt(kw, active)
		case e.Kind == schema.Data && e.Class == schema.DoubleProp:
			err = p.fillDouble(kw, active)
		case regionOps[kw.Name()]:
			err = p.applyRegionOps(kw, active)
		case boxOps[kw.Name()]:
			err = p.applyBoxOps(kw, active, full)
		default:
			// sections, header keywords, faults: no property effect
		}
		if err != nil {
			return &DerivationError{Keyword: kw.Name(), Line: kw.Line(), Err: err}
		}
	}
	tracer().Infof("derived %d int and %d double properties",
		p.intProps.Size(), p.doubleProps.Size())
	return nil
}

// fillInt applies a data keyword to its int property: the record's values
// cover the active box in natural cell order, defaulted items leave cells
// untouched.
func (p *Properties) fillInt(kw *grammar.Keyword, active box) error {
	rec := kw.Record(0)
	if rec.Len() != active.volume() {
		return fmt.Errorf("%d values for a box of %d cells", rec.Len(), active.volume())
	}
	prop := p.intFor(kw.Schema())
	idx := 0
	active.eachCell(p.grid, func(cell int) {
		if item := rec.Item(idx); item.IsSet() {
			prop.data[cell] = item.Int()
		}
		idx++
	})
	prop.touched = true
	return nil
}

// fillDouble is fillInt's double counterpart; raw literals are normalized
// to SI here, once, as they are written.
func (p *Properties) fillDouble(kw *grammar.Keyword, active box) error {
	rec := kw.Record(0)
	if rec.Len() != active.volume() {
		return fmt.Errorf("%d values for a box of %d cells", rec.Len(), active.volume())
	}
	factor, err := units.Factor(p.family, kw.Schema().Dimension)
	if err != nil {
		return err
	}
	prop := p.doubleFor(kw.Schema())
	idx := 0
	active.eachCell(p.grid, func(cell int) {
		if item := rec.Item(idx); item.IsSet() {
			prop.data[cell] = item.Double() * factor
		}
		idx++
	})
	prop.touched = true
	return nil
}

// --- Property creation ------------------------------------------------------

// intFor returns the backing int property for a schema entry, creating it
// default-filled on first reference.
func (p *Properties) intFor(e *schema.Entry) *IntProperty {
	if v, ok := p.intProps.Get(e.Name); ok {
		return v.(*IntProperty)
	}
	nx, ny, nz := p.grid.Dims()
	prop := newIntProperty(e.Name, nx, ny, nz, e.DefInt)
	p.intProps.Put(e.Name, prop)
	return prop
}

// doubleFor returns the backing double property for a schema entry,
// creating it on first reference. Table-driven keywords ask the table
// manager for their default before falling back to the schema.
func (p *Properties) doubleFor(e *schema.Entry) *DoubleProperty {
	if v, ok := p.doubleProps.Get(e.Name); ok {
		return v.(*DoubleProperty)
	}
	def := e.DefDouble
	if e.TableDefault {
		if v, ok := p.tables.DefaultValue(e.Name); ok {
			def = v
		}
	}
	nx, ny, nz := p.grid.Dims()
	prop := newDoubleProperty(e.Name, nx, ny, nz, def)
	p.doubleProps.Put(e.Name, prop)
	return prop
}

// --- Accessor validation ----------------------------------------------------

func intEntry(name string) (*schema.Entry, error) {
	e, ok := schema.Get(name)
	if !ok || e.Class != schema.IntProp {
		return nil, UnsupportedKeywordError{Name: name}
	}
	return e, nil
}

func doubleEntry(name string) (*schema.Entry, error) {
	e, ok := schema.Get(name)
	if !ok || e.Class != schema.DoubleProp {
		return nil, UnsupportedKeywordError{Name: name}
	}
	return e, nil
}
