package web

import (
	"testing"

	"github.com/vovakirdan/gridflight/internal/flight"
)

func TestFrameMessage(t *testing.T) {
	m := flight.Uniform(3, flight.Free).With(0, 0, flight.Mountain).With(2, 2, flight.Antenna)
	pos := flight.Position{X: 1, Y: 1, Heading: flight.West}
	vp := flight.ComputeViewport(m, pos, 5, 3)

	msg := frameMessage(TypeRedraw, vp, flight.Snapshot{Run: 2, Tick: 7}, false)

	expected := []string{" M.. ", " .<. ", " ..A "}
	if len(msg.Rows) != len(expected) {
		t.Fatalf("rows = %q, expected %q", msg.Rows, expected)
	}
	for i := range expected {
		if msg.Rows[i] != expected[i] {
			t.Errorf("row %d = %q, expected %q", i, msg.Rows[i], expected[i])
		}
	}
	if msg.Run != 2 || msg.Tick != 7 || msg.Heading != "west" || msg.Degrees != 270 {
		t.Errorf("message = %+v", msg)
	}
}

func TestFrameMessageCrashed(t *testing.T) {
	m := flight.Uniform(1, flight.Tree)
	vp := flight.ComputeViewport(m, flight.Position{Heading: flight.North}, 1, 1)

	msg := frameMessage(TypeCrash, vp, flight.Snapshot{}, true)
	if len(msg.Rows) != 1 || msg.Rows[0] != "*" {
		t.Errorf("rows = %q, expected [\"*\"]", msg.Rows)
	}
}
