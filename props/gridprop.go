package props

// IntProperty is a dense per-cell array of integers keyed by a keyword
// name. Its backing array always has length nx·ny·nz of the grid it was
// derived for.
type IntProperty struct {
	name    string
	nx, ny  int
	data    []int
	def     int
	touched bool
}

func newIntProperty(name string, nx, ny, nz, def int) *IntProperty {
	p := &IntProperty{name: name, nx: nx, ny: ny, def: def,
		data: make([]int, nx*ny*nz)}
	if def != 0 {
		for c := range p.data {
			p.data[c] = def
		}
	}
	return p
}

// KeywordName returns the canonical keyword name the property is keyed by.
func (p *IntProperty) KeywordName() string { return p.name }

// Data exposes the backing array. Callers must treat it as read-only.
func (p *IntProperty) Data() []int { return p.data }

// Get returns the value of cell (i,j,k), 0-based, i fastest.
func (p *IntProperty) Get(i, j, k int) int {
	return p.data[i+p.nx*(j+p.ny*k)]
}

// WasTouched tells whether any deck keyword ever wrote to the property.
func (p *IntProperty) WasTouched() bool { return p.touched }

// DoubleProperty is the float64 counterpart of IntProperty. Values are
// stored in SI; conversion from deck units happens on write, exactly once
// per raw literal.
type DoubleProperty struct {
	name    string
	nx, ny  int
	data    []float64
	def     float64
	touched bool
}

func newDoubleProperty(name string, nx, ny, nz int, def float64) *DoubleProperty {
	p := &DoubleProperty{name: name, nx: nx, ny: ny, def: def,
		data: make([]float64, nx*ny*nz)}
	if def != 0 {
		for c := range p.data {
			p.data[c] = def
		}
	}
	return p
}

// KeywordName returns the canonical keyword name the property is keyed by.
func (p *DoubleProperty) KeywordName() string { return p.name }

// Data exposes the backing array. Callers must treat it as read-only.
func (p *DoubleProperty) Data() []float64 { return p.data }

// Get returns the value of cell (i,j,k), 0-based, i fastest.
func (p *DoubleProperty) Get(i, j, k int) float64 {
	return p.data[i+p.nx*(j+p.ny*k)]
}

// WasTouched tells whether any deck keyword ever wrote to the property.
func (p *DoubleProperty) WasTouched() bool { return p.touched }
