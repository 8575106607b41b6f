package props

import (
	"fmt"

	"github.com/npillmayer/resdeck/grammar"
)

// box is an active rectangular sub-range of grid indices, 0-based and
// inclusive at both ends. Deck records use the source grammar's 1-based
// bounds; normalization happens here, at the boundary.
//
// The box engine is a two-state machine: Unboxed (full grid extent) and
// Boxed. BOX replaces the bounds without stacking, ENDBOX resets to the
// full extent.
type box struct {
	i1, i2, j1, j2, k1, k2 int
}

func fullBox(nx, ny, nz int) box {
	return box{0, nx - 1, 0, ny - 1, 0, nz - 1}
}

func (b box) volume() int {
	return (b.i2 - b.i1 + 1) * (b.j2 - b.j1 + 1) * (b.k2 - b.k1 + 1)
}

func (b box) String() string {
	return fmt.Sprintf("[%d..%d, %d..%d, %d..%d]",
		b.i1+1, b.i2+1, b.j1+1, b.j2+1, b.k1+1, b.k2+1)
}

// eachCell visits every cell of the box in natural order: i fastest, then
// j, then k. This is the order data keywords list their values in.
func (b box) eachCell(g Grid, visit func(cell int)) {
	for k := b.k1; k <= b.k2; k++ {
		for j := b.j1; j <= b.j2; j++ {
			for i := b.i1; i <= b.i2; i++ {
				visit(g.Index(i, j, k))
			}
		}
	}
}

// boxFromRecord reads six 1-based bounds from record items start..start+5.
// A defaulted bound falls back to the corresponding bound of fallback.
func boxFromRecord(rec *grammar.Record, start int, fallback, full box) (box, error) {
	bounds := [6]int{fallback.i1, fallback.i2, fallback.j1, fallback.j2,
		fallback.k1, fallback.k2}
	for n := 0; n < 6; n++ {
		item := rec.Item(start + n)
		if item.IsSet() {
			bounds[n] = item.Int() - 1
		}
	}
	b := box{bounds[0], bounds[1], bounds[2], bounds[3], bounds[4], bounds[5]}
	if b.i1 < full.i1 || b.i2 > full.i2 || b.j1 < full.j1 || b.j2 > full.j2 ||
		b.k1 < full.k1 || b.k2 > full.k2 ||
		b.i1 > b.i2 || b.j1 > b.j2 || b.k1 > b.k2 {
		return b, fmt.Errorf("box bounds %s outside grid %s", b, full)
	}
	return b, nil
}
