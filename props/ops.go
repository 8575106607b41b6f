package props

import (
	"fmt"
	"math"

	"github.com/npillmayer/resdeck/grammar"
	"github.com/npillmayer/resdeck/schema"
	"github.com/npillmayer/resdeck/units"
)

// The modifier keyword families. Region operators carry a region-id
// argument and test the partition property cell by cell; box operators
// scope by bounds alone.
var regionOps = map[string]bool{
	"ADDREG": true, "EQUALREG": true, "MULTIREG": true, "COPYREG": true,
}

var boxOps = map[string]bool{
	"EQUALS": true, "ADD": true, "MULTIPLY": true, "COPY": true,
}

// applyRegionOps evaluates every record of a region operator keyword. The
// predicate (inside the active box, partition value equal to the region id)
// is evaluated against the partition state at application time, in deck
// order; a cell moved into the region by a later edit is unaffected.
func (p *Properties) applyRegionOps(kw *grammar.Keyword, active box) error {
	for r := 0; r < kw.NumRecords(); r++ {
		rec := kw.Record(r)
		if kw.Name() == "COPYREG" {
			if err := p.copyRegion(rec, active); err != nil {
				return err
			}
			continue
		}
		target, err := propEntry(rec.Item(0).String())
		if err != nil {
			return err
		}
		region, err := p.regionPartition(rec.Item(3))
		if err != nil {
			return err
		}
		id := rec.Item(2).Int()
		raw := rec.Item(1).Double()
		if target.Class == schema.IntProp {
			p.regionOpInt(kw.Name(), target, region, id, raw, active)
			continue
		}
		if err := p.regionOpDouble(kw.Name(), target, region, id, raw, active); err != nil {
			return err
		}
	}
	return nil
}

func (p *Properties) regionOpInt(op string, target *schema.Entry,
	region *IntProperty, id int, raw float64, active box) {
	prop := p.intFor(target)
	active.eachCell(p.grid, func(cell int) {
		if region.data[cell] != id {
			return
		}
		switch op {
		case "ADDREG":
			prop.data[cell] += int(math.Round(raw))
		case "EQUALREG":
			prop.data[cell] = int(math.Round(raw))
		case "MULTIREG":
			prop.data[cell] = int(math.Round(float64(prop.data[cell]) * raw))
		}
	})
	prop.touched = true
}

func (p *Properties) regionOpDouble(op string, target *schema.Entry,
	region *IntProperty, id int, raw float64, active box) error {
	operand := raw
	if op != "MULTIREG" { // multiplicative factors are dimensionless
		factor, err := units.Factor(p.family, target.Dimension)
		if err != nil {
			return err
		}
		operand = raw * factor
	}
	prop := p.doubleFor(target)
	active.eachCell(p.grid, func(cell int) {
		if region.data[cell] != id {
			return
		}
		switch op {
		case "ADDREG":
			prop.data[cell] += operand
		case "EQUALREG":
			prop.data[cell] = operand
		case "MULTIREG":
			prop.data[cell] *= operand
		}
	})
	prop.touched = true
	return nil
}

// copyRegion duplicates the source property into the target within the
// region predicate. Values were normalized when first written, so no
// conversion is re-applied here.
func (p *Properties) copyRegion(rec *grammar.Record, active box) error {
	src, err := propEntry(rec.Item(0).String())
	if err != nil {
		return err
	}
	target, err := propEntry(rec.Item(1).String())
	if err != nil {
		return err
	}
	if src.Class != target.Class {
		return fmt.Errorf("cannot copy %s into %s: property kinds differ",
			src.Name, target.Name)
	}
	region, err := p.regionPartition(rec.Item(3))
	if err != nil {
		return err
	}
	id := rec.Item(2).Int()
	if src.Class == schema.IntProp {
		from, to := p.intFor(src), p.intFor(target)
		active.eachCell(p.grid, func(cell int) {
			if region.data[cell] == id {
				to.data[cell] = from.data[cell]
			}
		})
		to.touched = true
		return nil
	}
	from, to := p.doubleFor(src), p.doubleFor(target)
	active.eachCell(p.grid, func(cell int) {
		if region.data[cell] == id {
			to.data[cell] = from.data[cell]
		}
	})
	to.touched = true
	return nil
}

// applyBoxOps evaluates EQUALS/ADD/MULTIPLY/COPY records. Each record may
// carry six explicit bounds overriding the active box for that record
// alone; defaulted bounds fall back to the active box.
func (p *Properties) applyBoxOps(kw *grammar.Keyword, active, full box) error {
	for r := 0; r < kw.NumRecords(); r++ {
		rec := kw.Record(r)
		opBox, err := boxFromRecord(rec, 2, active, full)
		if err != nil {
			return err
		}
		if kw.Name() == "COPY" {
			if err := p.copyBox(rec, opBox); err != nil {
				return err
			}
			continue
		}
		target, err := propEntry(rec.Item(0).String())
		if err != nil {
			return err
		}
		raw := rec.Item(1).Double()
		if target.Class == schema.IntProp {
			prop := p.intFor(target)
			opBox.eachCell(p.grid, func(cell int) {
				switch kw.Name() {
				case "EQUALS":
					prop.data[cell] = int(math.Round(raw))
				case "ADD":
					prop.data[cell] += int(math.Round(raw))
				case "MULTIPLY":
					prop.data[cell] = int(math.Round(float64(prop.data[cell]) * raw))
				}
			})
			prop.touched = true
			continue
		}
		operand := raw
		if kw.Name() != "MULTIPLY" {
			factor, err := units.Factor(p.family, target.Dimension)
			if err != nil {
				return err
			}
			operand = raw * factor
		}
		prop := p.doubleFor(target)
		opBox.eachCell(p.grid, func(cell int) {
			switch kw.Name() {
			case "EQUALS":
				prop.data[cell] = operand
			case "ADD":
				prop.data[cell] += operand
			case "MULTIPLY":
				prop.data[cell] *= operand
			}
		})
		prop.touched = true
	}
	return nil
}

func (p *Properties) copyBox(rec *grammar.Record, opBox box) error {
	src, err := propEntry(rec.Item(0).String())
	if err != nil {
		return err
	}
	target, err := propEntry(rec.Item(1).String())
	if err != nil {
		return err
	}
	if src.Class != target.Class {
		return fmt.Errorf("cannot copy %s into %s: property kinds differ",
			src.Name, target.Name)
	}
	if src.Class == schema.IntProp {
		from, to := p.intFor(src), p.intFor(target)
		opBox.eachCell(p.grid, func(cell int) {
			to.data[cell] = from.data[cell]
		})
		to.touched = true
		return nil
	}
	from, to := p.doubleFor(src), p.doubleFor(target)
	opBox.eachCell(p.grid, func(cell int) {
		to.data[cell] = from.data[cell]
	})
	to.touched = true
	return nil
}

// regionPartition resolves a region selector item to its partition
// property: 'F'→FLUXNUM, 'M'→MULTNUM, 'O'→OPERNUM, full names pass
// through, and a defaulted selector falls back to the deck's default
// region keyword.
func (p *Properties) regionPartition(selector grammar.Item) (*IntProperty, error) {
	name := p.defaultRegion
	if selector.IsSet() {
		switch s := schema.Canonical(selector.String()); s {
		case "":
			// explicit empty selector, keep the default
		case "F":
			name = "FLUXNUM"
		case "M":
			name = "MULTNUM"
		case "O":
			name = "OPERNUM"
		case "FLUXNUM", "MULTNUM", "OPERNUM":
			name = s
		default:
			return nil, fmt.Errorf("unknown region selector %q", selector.String())
		}
	}
	e, _ := schema.Get(name)
	return p.intFor(e), nil
}

// propEntry resolves a modifier target name to a grid property schema
// entry, failing for anything outside the supported set.
func propEntry(name string) (*schema.Entry, error) {
	e, ok := schema.Get(name)
	if !ok || e.Class == schema.NoProp {
		return nil, UnsupportedKeywordError{Name: schema.Canonical(name)}
	}
	return e, nil
}
