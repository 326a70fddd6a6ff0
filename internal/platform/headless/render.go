// Package headless runs flights without an interactive display: a
// log-driven runner for scripted flights and a text renderer for previews.
package headless

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"

	"github.com/vovakirdan/gridflight/internal/core"
	"github.com/vovakirdan/gridflight/internal/flight"
	"github.com/vovakirdan/gridflight/internal/platform/sprite"
)

// RenderOptions controls Render.
type RenderOptions struct {
	Colored bool // emit ANSI colors
	Crashed bool // draw the plane as an explosion
}

var attributes = map[core.Color][]color.Attribute{
	core.ColorRed:         {color.FgRed},
	core.ColorGreen:       {color.FgGreen},
	core.ColorYellow:      {color.FgYellow},
	core.ColorBlue:        {color.FgBlue},
	core.ColorCyan:        {color.FgCyan},
	core.ColorWhite:       {color.FgWhite},
	core.ColorBrightRed:   {color.FgHiRed, color.Bold},
	core.ColorBrightWhite: {color.FgHiWhite, color.Bold},
	core.ColorOrange:      {color.FgHiYellow},
	core.ColorBrown:       {color.FgYellow},
	core.ColorGray:        {color.FgHiBlack},
}

func paint(c core.Color, colored bool) *color.Color {
	p := color.New(attributes[c]...)
	if colored {
		p.EnableColor()
	} else {
		p.DisableColor()
	}
	return p
}

// Render writes the viewport as text, one line per row and two characters
// per block. It consumes vp.
func Render(w io.Writer, vp *flight.Viewport, opts RenderOptions) error {
	heading := vp.Position().Heading
	var sb strings.Builder
	for row := range vp.All() {
		for _, cell := range row {
			glyph, c := sprite.For(cell, heading, opts.Crashed)
			sb.WriteString(paint(c, opts.Colored).Sprint(string(glyph)))
			sb.WriteByte(' ')
		}
		sb.WriteByte('\n')
	}
	if _, err := io.WriteString(w, sb.String()); err != nil {
		return fmt.Errorf("headless: render: %w", err)
	}
	return nil
}

// Legend returns a one-line key of the terrain glyphs.
func Legend(colored bool) string {
	entries := []flight.Status{flight.Free, flight.Mountain, flight.Tree, flight.Building, flight.Antenna}
	parts := make([]string, 0, len(entries)+1)
	for _, s := range entries {
		glyph, c := sprite.Terrain(s)
		parts = append(parts, paint(c, colored).Sprint(string(glyph))+" "+s.String())
	}
	parts = append(parts, paint(core.ColorBrightWhite, colored).Sprint("^")+" plane")
	return strings.Join(parts, "  ")
}
