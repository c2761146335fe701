package chase

import (
	"math"

	"github.com/vovakirdan/queenchase/internal/core"
)

// Cell addresses one board square. I runs along world X, J along world Y.
type Cell struct {
	I, J int
}

// Valid reports whether the cell lies on the board.
func (c Cell) Valid() bool {
	return c.I >= 0 && c.I < GridSize && c.J >= 0 && c.J < GridSize
}

// Reserved reports whether hazards may never occupy the cell:
// the start cell and the goal corner.
func (c Cell) Reserved() bool {
	return (c.I == 0 && c.J == 0) || c.I+c.J == 2*(GridSize-1)
}

// Origin returns the world position of the cell's minimum corner.
func (c Cell) Origin() (x, y float64) {
	return float64(c.I)*CellWidth + originX, float64(c.J)*CellDepth + originY
}

// Box returns the cell's footprint in world space.
func (c Cell) Box() core.Box {
	x, y := c.Origin()
	return core.Box{X: x, Y: y, W: CellWidth, H: CellDepth}
}

// CellAt returns the cell containing the world point (x, y).
// ok is false when the point is off the board.
func CellAt(x, y float64) (c Cell, ok bool) {
	c = Cell{
		I: int(math.Floor((x - originX) / CellWidth)),
		J: int(math.Floor((y - originY) / CellDepth)),
	}
	return c, c.Valid()
}

// Mask is a set of board cells.
type Mask [GridSize][GridSize]bool

// Set adds a cell. Cells off the board are ignored.
func (m *Mask) Set(c Cell) {
	if c.Valid() {
		m[c.I][c.J] = true
	}
}

// Has reports whether the cell is in the set.
func (m *Mask) Has(c Cell) bool {
	return c.Valid() && m[c.I][c.J]
}

// Clear empties the set.
func (m *Mask) Clear() {
	*m = Mask{}
}

// Count returns the number of cells in the set.
func (m *Mask) Count() int {
	n := 0
	for i := range m {
		n += m.RowCount(i)
	}
	return n
}

// RowCount returns the number of set cells in row i.
func (m *Mask) RowCount(i int) int {
	if i < 0 || i >= GridSize {
		return 0
	}
	n := 0
	for _, v := range m[i] {
		if v {
			n++
		}
	}
	return n
}

// Cells lists the set cells in row-major order.
func (m *Mask) Cells() []Cell {
	var out []Cell
	for i := range m {
		for j, v := range m[i] {
			if v {
				out = append(out, Cell{I: i, J: j})
			}
		}
	}
	return out
}
