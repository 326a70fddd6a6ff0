package web

import (
	"github.com/vovakirdan/gridflight/internal/flight"
	"github.com/vovakirdan/gridflight/internal/platform/sprite"
)

// Server to client message types.
const (
	TypeRedraw = "redraw"
	TypeCrash  = "crash"
	TypeError  = "error"
)

// Client to server message types.
const (
	TypeHeading = "heading"
	TypeRestart = "restart"
	TypeResize  = "resize"
)

// ServerMessage is sent on every redraw, on crash and on bad input.
// Rows hold one character per block: '.' free, 'M' mountain, 'T' tree,
// 'B' building, 'A' antenna, ' ' outside the map, '^>v<' the plane and
// '*' the wreck.
type ServerMessage struct {
	Type    string   `json:"type"`
	Run     int      `json:"run,omitempty"`
	Tick    uint64   `json:"tick"`
	X       int      `json:"x"`
	Y       int      `json:"y"`
	Heading string   `json:"heading,omitempty"`
	Degrees int      `json:"degrees"`
	Rows    []string `json:"rows,omitempty"`
	Message string   `json:"message,omitempty"`
}

// ClientMessage is a command from the browser. Width and Height are the
// window size in pixels.
type ClientMessage struct {
	Type    string `json:"type"`
	Heading string `json:"heading,omitempty"`
	Width   int    `json:"width,omitempty"`
	Height  int    `json:"height,omitempty"`
}

// frameMessage encodes vp. It consumes vp.
func frameMessage(typ string, vp *flight.Viewport, snap flight.Snapshot, crashed bool) ServerMessage {
	pos := vp.Position()
	rows := make([]string, 0, vp.Height())
	for cells := range vp.All() {
		row := make([]byte, len(cells))
		for i, c := range cells {
			row[i] = sprite.Code(c, pos.Heading, crashed)
		}
		rows = append(rows, string(row))
	}

	return ServerMessage{
		Type:    typ,
		Run:     snap.Run,
		Tick:    snap.Tick,
		X:       pos.X,
		Y:       pos.Y,
		Heading: pos.Heading.String(),
		Degrees: pos.Heading.Degrees(),
		Rows:    rows,
	}
}
