package flight

import (
	"math/rand"
	"reflect"
	"testing"
)

func TestViewportShapeIsConstant(t *testing.T) {
	m := Uniform(20, Free)

	positions := []Position{
		{X: 10, Y: 10},
		{X: 0, Y: 0},
		{X: 19, Y: 19},
		{X: -3, Y: 25},
	}

	for _, pos := range positions {
		grid := ComputeViewport(m, pos, 7, 5).Collect()
		if len(grid) != 5 {
			t.Fatalf("pos %+v: rows = %d, expected 5", pos, len(grid))
		}
		for y, row := range grid {
			if len(row) != 7 {
				t.Errorf("pos %+v: row %d has %d cells, expected 7", pos, y, len(row))
			}
		}
	}
}

func TestViewportCentersOnPlane(t *testing.T) {
	m := Uniform(20, Free)
	pos := Position{X: 10, Y: 8, Heading: East}

	grid := ComputeViewport(m, pos, 5, 3).Collect()

	// deltaX = 2, deltaY = 1
	if grid[0][0].X != 8 || grid[0][0].Y != 7 {
		t.Errorf("top-left = (%d, %d), expected (8, 7)", grid[0][0].X, grid[0][0].Y)
	}
	center := grid[1][2]
	if !center.Plane {
		t.Error("center cell should carry the plane")
	}
	if center.X != 10 || center.Y != 8 {
		t.Errorf("center = (%d, %d), expected (10, 8)", center.X, center.Y)
	}

	planes := 0
	for _, row := range grid {
		for _, c := range row {
			if c.Plane {
				planes++
			}
		}
	}
	if planes != 1 {
		t.Errorf("found %d plane cells, expected 1", planes)
	}
}

func TestViewportEvenDimensions(t *testing.T) {
	m := Uniform(20, Free)
	grid := ComputeViewport(m, Position{X: 10, Y: 10}, 4, 4).Collect()

	// floor(4/2) = 2: the plane sits at column 2, row 2
	if !grid[2][2].Plane {
		t.Error("plane should be at (2, 2) of a 4x4 viewport")
	}
}

func TestViewportOutOfBoundsCellsAreBlank(t *testing.T) {
	m := Uniform(5, Tree)
	grid := ComputeViewport(m, Position{X: 0, Y: 0}, 3, 3).Collect()

	tests := []struct {
		row, col int
		inBounds bool
	}{
		{0, 0, false},
		{0, 2, false},
		{1, 0, false},
		{1, 1, true},
		{2, 2, true},
	}

	for _, tc := range tests {
		c := grid[tc.row][tc.col]
		if c.InBounds != tc.inBounds {
			t.Errorf("cell [%d][%d] InBounds = %v, expected %v", tc.row, tc.col, c.InBounds, tc.inBounds)
		}
		if !c.InBounds && c.Status != 0 {
			t.Errorf("blank cell [%d][%d] has status %v", tc.row, tc.col, c.Status)
		}
		if c.InBounds && c.Status != Tree {
			t.Errorf("cell [%d][%d] status = %v, expected tree", tc.row, tc.col, c.Status)
		}
	}
}

func TestViewportPlaneOutsideMatrixIsNotDrawn(t *testing.T) {
	m := Uniform(5, Free)
	grid := ComputeViewport(m, Position{X: -1, Y: 2}, 3, 3).Collect()

	if grid[1][1].Plane {
		t.Error("plane outside the matrix should render blank")
	}
}

func TestViewportIsSingleUse(t *testing.T) {
	vp := ComputeViewport(Uniform(10, Free), Position{X: 5, Y: 5}, 3, 2)

	if len(vp.Collect()) != 2 {
		t.Fatal("first pass should yield 2 rows")
	}
	if _, ok := vp.Next(); ok {
		t.Error("viewport should be exhausted after one pass")
	}
	if len(vp.Collect()) != 0 {
		t.Error("second Collect should yield nothing")
	}
}

func TestViewportIdempotent(t *testing.T) {
	m := Generate(50, rand.New(rand.NewSource(5)), DefaultDrawMax)
	pos := Position{X: 25, Y: 3, Heading: South}

	a := ComputeViewport(m, pos, 9, 7).Collect()
	b := ComputeViewport(m, pos, 9, 7).Collect()

	if !reflect.DeepEqual(a, b) {
		t.Error("two viewports with identical inputs differ")
	}
}

func TestViewportEarlyBreak(t *testing.T) {
	vp := ComputeViewport(Uniform(10, Free), Position{X: 5, Y: 5}, 3, 4)

	for range vp.All() {
		break
	}
	if rest := vp.Collect(); len(rest) != 3 {
		t.Errorf("remaining rows = %d, expected 3", len(rest))
	}
}

func TestViewportZeroSize(t *testing.T) {
	vp := ComputeViewport(Uniform(10, Free), Position{X: 5, Y: 5}, 0, -2)
	if vp.Width() != 0 || vp.Height() != 0 {
		t.Errorf("size = %dx%d, expected 0x0", vp.Width(), vp.Height())
	}
	if _, ok := vp.Next(); ok {
		t.Error("empty viewport should yield no rows")
	}
}
