package grammar

import (
	"github.com/npillmayer/resdeck/schema"
	"github.com/npillmayer/resdeck/units"
)

// --- Item ------------------------------------------------------------------

// Item is one positional value within a record. It carries its scalar
// value, a flag telling explicitly-set apart from defaulted, and the
// dimension tag inherited from the keyword schema.
type Item struct {
	typ schema.ItemType
	set bool
	dim units.Dimension
	s   string
	i   int
	f   float64
}

// IsSet tells whether the item was written explicitly in the deck, as
// opposed to resolved from a schema default (or left without a value).
func (it Item) IsSet() bool { return it.set }

// Type returns the item's scalar type.
func (it Item) Type() schema.ItemType { return it.typ }

// Dimension returns the physical dimension tag inherited from the schema.
func (it Item) Dimension() units.Dimension { return it.dim }

// String returns the item's string value.
func (it Item) String() string { return it.s }

// Int returns the item's integer value.
func (it Item) Int() int { return it.i }

// Double returns the item's floating point value. Int items convert.
func (it Item) Double() float64 {
	if it.typ == schema.Int {
		return float64(it.i)
	}
	return it.f
}

// --- Record ----------------------------------------------------------------

// Record is an ordered sequence of items, terminated in deck source by '/'.
type Record struct {
	items []Item
	line  int // source line the record starts on
}

// Len returns the number of items in the record.
func (r *Record) Len() int { return len(r.items) }

// Item returns the i'th item of the record.
func (r *Record) Item(i int) Item { return r.items[i] }

// Line returns the source line the record starts on.
func (r *Record) Line() int { return r.line }

// --- Keyword ---------------------------------------------------------------

// Keyword is one keyword occurrence: the canonical uppercase name, its
// schema entry, and the ordered records that followed it in the deck.
type Keyword struct {
	name    string
	entry   *schema.Entry
	records []*Record
	line    int
}

// Name returns the canonical uppercase keyword name.
func (kw *Keyword) Name() string { return kw.name }

// Schema returns the registry entry this occurrence was framed by.
func (kw *Keyword) Schema() *schema.Entry { return kw.entry }

// NumRecords returns the number of records of this occurrence.
func (kw *Keyword) NumRecords() int { return len(kw.records) }

// Record returns the i'th record.
func (kw *Keyword) Record(i int) *Record { return kw.records[i] }

// Line returns the source line the keyword name appeared on.
func (kw *Keyword) Line() int { return kw.line }

// --- Deck ------------------------------------------------------------------

// Deck is the ordered sequence of keyword occurrences parsed from input
// text. It is immutable once built; insertion order is semantically
// significant, as later occurrences apply on top of earlier ones.
type Deck struct {
	keywords []*Keyword
}

// Len returns the number of keyword occurrences in the deck.
func (d *Deck) Len() int { return len(d.keywords) }

// Keyword returns the i'th keyword occurrence, in file order.
func (d *Deck) Keyword(i int) *Keyword { return d.keywords[i] }

// HasKeyword tells whether the deck contains at least one occurrence of the
// named keyword. Lookup is case-insensitive.
func (d *Deck) HasKeyword(name string) bool {
	_, ok := d.First(name)
	return ok
}

// First returns the first occurrence of the named keyword.
func (d *Deck) First(name string) (*Keyword, bool) {
	canon := schema.Canonical(name)
	for _, kw := range d.keywords {
		if kw.name == canon {
			return kw, true
		}
	}
	return nil, false
}

// Occurrences returns all occurrences of the named keyword, in file order.
func (d *Deck) Occurrences(name string) []*Keyword {
	canon := schema.Canonical(name)
	var kws []*Keyword
	for _, kw := range d.keywords {
		if kw.name == canon {
			kws = append(kws, kw)
		}
	}
	return kws
}
