// Package sprite maps viewport cells to glyphs and colors shared by the
// terminal, SSH and text renderers.
package sprite

import (
	"github.com/vovakirdan/gridflight/internal/core"
	"github.com/vovakirdan/gridflight/internal/flight"
)

// Glyphs
const (
	Blank     = ' '
	Ground    = '·'
	Mountain  = '▲'
	Tree      = '♣'
	Building  = '▆'
	Antenna   = 'Ψ'
	Explosion = '*'
)

// Terrain returns the glyph and color of a terrain status.
func Terrain(s flight.Status) (rune, core.Color) {
	switch s {
	case flight.Free:
		return Ground, core.ColorGray
	case flight.Mountain:
		return Mountain, core.ColorBrown
	case flight.Tree:
		return Tree, core.ColorGreen
	case flight.Building:
		return Building, core.ColorWhite
	case flight.Antenna:
		return Antenna, core.ColorRed
	}
	return Blank, core.ColorDefault
}

// Plane returns the plane glyph rotated to the heading.
func Plane(h flight.Heading) rune {
	switch h {
	case flight.South:
		return 'v'
	case flight.East:
		return '>'
	case flight.West:
		return '<'
	}
	return '^'
}

// For returns what to draw for one viewport cell.
func For(c flight.Cell, h flight.Heading, crashed bool) (rune, core.Color) {
	if !c.InBounds {
		return Blank, core.ColorDefault
	}
	if c.Plane {
		if crashed {
			return Explosion, core.ColorBrightRed
		}
		return Plane(h), core.ColorBrightWhite
	}
	return Terrain(c.Status)
}

// Code returns a single ASCII character per cell, used by the web client
// and plain-text logs.
func Code(c flight.Cell, h flight.Heading, crashed bool) byte {
	if !c.InBounds {
		return ' '
	}
	if c.Plane {
		if crashed {
			return '*'
		}
		return byte(Plane(h))
	}
	switch c.Status {
	case flight.Mountain:
		return 'M'
	case flight.Tree:
		return 'T'
	case flight.Building:
		return 'B'
	case flight.Antenna:
		return 'A'
	}
	return '.'
}
