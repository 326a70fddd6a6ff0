package flight

import (
	"fmt"
	"strings"

	"github.com/vovakirdan/gridflight/internal/core"
)

// Heading is the cardinal direction the plane travels in.
type Heading uint8

const (
	North Heading = iota + 1
	South
	East
	West
)

// String returns the lowercase name of the heading.
func (h Heading) String() string {
	switch h {
	case North:
		return "north"
	case South:
		return "south"
	case East:
		return "east"
	case West:
		return "west"
	default:
		return "unknown"
	}
}

// ParseHeading converts a name such as "east" or "E" to a Heading.
func ParseHeading(s string) (Heading, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "north", "n", "up":
		return North, nil
	case "south", "s", "down":
		return South, nil
	case "east", "e", "right":
		return East, nil
	case "west", "w", "left":
		return West, nil
	}
	return 0, fmt.Errorf("flight: unknown heading %q", s)
}

// Delta returns the one-cell offset of a move in this heading.
// Y grows southwards.
func (h Heading) Delta() (dx, dy int) {
	switch h {
	case North:
		return 0, -1
	case South:
		return 0, 1
	case East:
		return 1, 0
	case West:
		return -1, 0
	}
	return 0, 0
}

// Degrees returns the clockwise rotation of the plane sprite.
func (h Heading) Degrees() int {
	switch h {
	case South:
		return 180
	case East:
		return 90
	case West:
		return 270
	}
	return 0
}

// HeadingForAction maps a steering action to its heading. Steering actions
// and headings list the directions in the same order.
func HeadingForAction(a core.Action) (Heading, bool) {
	if !a.IsSteering() {
		return 0, false
	}
	return North + Heading(a-core.ActionNorth), true
}

// Position is the plane's cell coordinates plus its heading.
type Position struct {
	X, Y    int
	Heading Heading
}

// Next returns the position one cell further along the heading.
func (p Position) Next() Position {
	dx, dy := p.Heading.Delta()
	return Position{X: p.X + dx, Y: p.Y + dy, Heading: p.Heading}
}

// Tracker holds the mutable position of the plane.
type Tracker struct {
	pos Position
}

// Reset places the plane at (x, y) heading North.
func (t *Tracker) Reset(x, y int) {
	t.pos = Position{X: x, Y: y, Heading: North}
}

// SetHeading changes the heading unconditionally. The change is picked up by
// the next tick.
func (t *Tracker) SetHeading(h Heading) {
	t.pos.Heading = h
}

// Heading returns the current heading.
func (t *Tracker) Heading() Heading {
	return t.pos.Heading
}

// Position returns a copy of the current position.
func (t *Tracker) Position() Position {
	return t.pos
}

func (t *Tracker) moveTo(p Position) {
	t.pos = p
}
