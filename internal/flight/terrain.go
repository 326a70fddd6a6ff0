// Package flight implements the grid-flight simulation: terrain generation,
// the plane's position and heading, the fixed-period tick engine, the
// viewport window around the plane and the controller that owns the single
// session and its one outstanding scheduled tick.
//
// The package knows nothing about terminals, browsers or sockets. Adapters
// read viewports and deliver commands through Controller.
package flight

import (
	"math/rand"
)

// Status is the content of one terrain block.
type Status uint8

// Block statuses. The numeric values double as generator draws: a draw in
// 1..5 maps to the status with the same value.
const (
	Free Status = iota + 1
	Mountain
	Tree
	Building
	Antenna
)

// DefaultDrawMax is the upper bound of the uniform draw per cell.
// Draws above Antenna are Free, which makes Free dominate the terrain.
const DefaultDrawMax = 20

// String returns the lowercase name of the status.
func (s Status) String() string {
	switch s {
	case Free:
		return "free"
	case Mountain:
		return "mountain"
	case Tree:
		return "tree"
	case Building:
		return "building"
	case Antenna:
		return "antenna"
	default:
		return "unknown"
	}
}

// Valid reports whether s is one of the five defined statuses.
func (s Status) Valid() bool {
	return s >= Free && s <= Antenna
}

// IsObstacle reports whether flying into s ends the flight.
func (s Status) IsObstacle() bool {
	return s.Valid() && s != Free
}

// statusForDraw maps a generator draw to a status.
func statusForDraw(draw int) Status {
	if draw > int(Antenna) || draw < int(Free) {
		return Free
	}
	return Status(draw)
}

// Matrix is the square terrain grid. It is never modified after creation;
// helpers that "change" a cell return a copy.
type Matrix struct {
	size  int
	cells []Status // row-major, index y*size+x
}

// Uniform returns a size x size matrix with every cell set to s.
func Uniform(size int, s Status) *Matrix {
	size = max(size, 0)
	m := &Matrix{size: size, cells: make([]Status, size*size)}
	for i := range m.cells {
		m.cells[i] = s
	}
	return m
}

// Generate builds a fresh size x size matrix. Each cell independently draws a
// uniform integer in [1, drawMax]; draws above 5 become Free and draws in
// 1..5 become the status with that value.
func Generate(size int, rng *rand.Rand, drawMax int) *Matrix {
	if drawMax <= 0 {
		drawMax = DefaultDrawMax
	}
	size = max(size, 0)

	m := &Matrix{size: size, cells: make([]Status, size*size)}
	for i := range m.cells {
		m.cells[i] = statusForDraw(rng.Intn(drawMax) + 1)
	}
	return m
}

// GenerateWithFreeCell regenerates the matrix until the cell at (x, y) is
// Free and returns it together with the number of generations it took.
// If (x, y) lies outside the matrix the first generation is returned.
func GenerateWithFreeCell(size, x, y int, rng *rand.Rand, drawMax int) (*Matrix, int) {
	attempts := 1
	m := Generate(size, rng, drawMax)
	if !m.InBounds(x, y) {
		return m, attempts
	}
	for {
		if s, _ := m.At(x, y); s == Free {
			return m, attempts
		}
		m = Generate(size, rng, drawMax)
		attempts++
	}
}

// Size returns the side length of the matrix.
func (m *Matrix) Size() int {
	return m.size
}

// InBounds reports whether (x, y) addresses a cell of the matrix.
func (m *Matrix) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < m.size && y < m.size
}

// At returns the status at (x, y). The boolean is false when the
// coordinates are out of bounds.
func (m *Matrix) At(x, y int) (Status, bool) {
	if !m.InBounds(x, y) {
		return 0, false
	}
	return m.cells[y*m.size+x], true
}

// With returns a copy of m with the cell at (x, y) replaced.
// Out-of-bounds coordinates return an unmodified copy.
func (m *Matrix) With(x, y int, s Status) *Matrix {
	cp := &Matrix{size: m.size, cells: make([]Status, len(m.cells))}
	copy(cp.cells, m.cells)
	if m.InBounds(x, y) {
		cp.cells[y*m.size+x] = s
	}
	return cp
}

// Count returns how many cells have status s.
func (m *Matrix) Count(s Status) int {
	n := 0
	for _, c := range m.cells {
		if c == s {
			n++
		}
	}
	return n
}

// FreeRatio returns the fraction of Free cells, or 0 for an empty matrix.
func (m *Matrix) FreeRatio() float64 {
	if len(m.cells) == 0 {
		return 0
	}
	return float64(m.Count(Free)) / float64(len(m.cells))
}
