package flight

import (
	"iter"

	"github.com/charmbracelet/log"
)

// Cell is one block of a viewport as seen by a renderer.
type Cell struct {
	X, Y     int    // matrix coordinates
	Status   Status // zero when InBounds is false
	InBounds bool   // false cells render blank
	Plane    bool   // the plane is on this block
}

// Viewport is a visibleX x visibleY window of the matrix centered on the
// plane. Rows are produced lazily, top to bottom, and can be read only once;
// compute a new viewport for the next render pass.
type Viewport struct {
	matrix *Matrix
	pos    Position
	width  int
	height int
	deltaX int
	deltaY int
	next   int
	logger *log.Logger
}

// ComputeViewport returns the window of m centered on pos. Cells that fall
// outside the matrix are returned with InBounds false rather than omitted,
// so every row has exactly visibleX cells.
func ComputeViewport(m *Matrix, pos Position, visibleX, visibleY int) *Viewport {
	visibleX, visibleY = max(visibleX, 0), max(visibleY, 0)
	return &Viewport{
		matrix: m,
		pos:    pos,
		width:  visibleX,
		height: visibleY,
		deltaX: visibleX / 2,
		deltaY: visibleY / 2,
	}
}

// WithLogger makes the viewport log skipped out-of-bounds cells at debug
// level.
func (v *Viewport) WithLogger(l *log.Logger) *Viewport {
	v.logger = l
	return v
}

// Width returns the number of cells per row.
func (v *Viewport) Width() int {
	return v.width
}

// Height returns the number of rows.
func (v *Viewport) Height() int {
	return v.height
}

// Position returns the plane position the viewport is centered on.
func (v *Viewport) Position() Position {
	return v.pos
}

// Next returns the next row. The boolean is false once all rows have been
// produced.
func (v *Viewport) Next() ([]Cell, bool) {
	if v.next >= v.height {
		return nil, false
	}
	y := v.next
	v.next++

	row := make([]Cell, v.width)
	drawY := v.pos.Y - v.deltaY + y
	for x := range row {
		drawX := v.pos.X - v.deltaX + x
		cell := Cell{X: drawX, Y: drawY}

		status, ok := v.matrix.At(drawX, drawY)
		if !ok {
			if v.logger != nil {
				v.logger.Debug("viewport cell out of matrix", "x", drawX, "y", drawY)
			}
			row[x] = cell
			continue
		}
		cell.Status = status
		cell.InBounds = true
		cell.Plane = drawX == v.pos.X && drawY == v.pos.Y
		row[x] = cell
	}
	return row, true
}

// All yields the remaining rows.
func (v *Viewport) All() iter.Seq[[]Cell] {
	return func(yield func([]Cell) bool) {
		for {
			row, ok := v.Next()
			if !ok || !yield(row) {
				return
			}
		}
	}
}

// Collect drains the remaining rows into a grid.
func (v *Viewport) Collect() [][]Cell {
	grid := make([][]Cell, 0, v.height-v.next)
	for row := range v.All() {
		grid = append(grid, row)
	}
	return grid
}
