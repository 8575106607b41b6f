package units

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Dimension tags a physical quantity class. Keywords without a physical
// dimension carry None and pass through conversion unchanged.
type Dimension int

// Dimensions of deck quantities covered by the conversion tables.
const (
	None Dimension = iota
	Length
	Permeability
	Pressure
	Temperature
)

func (d Dimension) String() string {
	switch d {
	case None:
		return "none"
	case Length:
		return "length"
	case Permeability:
		return "permeability"
	case Pressure:
		return "pressure"
	case Temperature:
		return "temperature"
	}
	return fmt.Sprintf("dimension(%d)", int(d))
}

// Family is a deck's declared measurement system.
type Family int

// The three unit families a deck header may declare.
const (
	Metric Family = iota
	Field
	Lab
)

func (f Family) String() string {
	switch f {
	case Metric:
		return "METRIC"
	case Field:
		return "FIELD"
	case Lab:
		return "LAB"
	}
	return fmt.Sprintf("family(%d)", int(f))
}

// FamilyFromKeyword maps a header keyword name to its unit family.
func FamilyFromKeyword(name string) (Family, bool) {
	switch name {
	case "METRIC":
		return Metric, true
	case "FIELD":
		return Field, true
	case "LAB":
		return Lab, true
	}
	return Metric, false
}

// ConversionError signals a missing family/dimension pairing. It is fatal at
// the point of conversion.
type ConversionError struct {
	Family    Family
	Dimension Dimension
}

func (e ConversionError) Error() string {
	return fmt.Sprintf("no conversion factor for %s quantity in %s units",
		e.Dimension, e.Family)
}

// The factor tables are derived once from definitional constants. We compose
// them with decimal arithmetic so that derived factors (milli·darcy, psi in
// pascal, ...) do not accumulate binary float drift before they are frozen.
var factors map[Family]map[Dimension]float64

func init() {
	milli := decimal.New(1, -3)
	darcy := decimal.RequireFromString("9.869233e-13")     // m²
	foot := decimal.RequireFromString("0.3048")            // m
	centi := decimal.New(1, -2)                            // m
	bar := decimal.New(1, 5)                               // Pa
	atm := decimal.RequireFromString("101325")             // Pa
	lbf := decimal.RequireFromString("4.4482216152605")    // N
	inch := decimal.RequireFromString("0.0254")            // m
	psi := lbf.Div(inch.Mul(inch))                         // Pa
	rankine := decimal.RequireFromString("5").Div(decimal.RequireFromString("9"))

	mD := milli.Mul(darcy)
	factors = map[Family]map[Dimension]float64{
		Metric: {
			Length:       1.0,
			Permeability: f64(mD),
			Pressure:     f64(bar),
			Temperature:  1.0,
		},
		Field: {
			Length:       f64(foot),
			Permeability: f64(mD),
			Pressure:     f64(psi),
			Temperature:  f64(rankine),
		},
		Lab: {
			Length:       f64(centi),
			Permeability: f64(mD),
			Pressure:     f64(atm),
			Temperature:  1.0,
		},
	}
}

func f64(d decimal.Decimal) float64 {
	f, _ := d.Float64()
	return f
}

// Factor returns the multiplicative conversion factor for a raw deck literal
// of the given dimension under the given unit family. Dimensionless
// quantities always convert with factor 1.
func Factor(f Family, d Dimension) (float64, error) {
	if d == None {
		return 1.0, nil
	}
	table, ok := factors[f]
	if !ok {
		return 0, ConversionError{Family: f, Dimension: d}
	}
	factor, ok := table[d]
	if !ok {
		tracer().Errorf("no %s factor in unit family %s", d, f)
		return 0, ConversionError{Family: f, Dimension: d}
	}
	return factor, nil
}

// Convert normalizes a raw literal to SI under family f.
func Convert(raw float64, f Family, d Dimension) (float64, error) {
	factor, err := Factor(f, d)
	if err != nil {
		return 0, err
	}
	return raw * factor, nil
}
