package flight

import "testing"

func newTestEngine(m *Matrix, x, y int, h Heading) (*Engine, *Tracker) {
	tr := &Tracker{}
	tr.Reset(x, y)
	tr.SetHeading(h)
	return NewEngine(m, tr), tr
}

func TestTickMovesOnFreeCell(t *testing.T) {
	m := Uniform(10, Free)
	e, tr := newTestEngine(m, 5, 5, East)

	res := e.Tick()

	if res.Outcome != OutcomeMoved {
		t.Fatalf("Outcome = %v, expected moved", res.Outcome)
	}
	if p := tr.Position(); p.X != 6 || p.Y != 5 {
		t.Errorf("Position = (%d, %d), expected (6, 5)", p.X, p.Y)
	}
	if e.State() != Running {
		t.Errorf("State = %v, expected running", e.State())
	}
}

func TestTickEachHeading(t *testing.T) {
	tests := []struct {
		h      Heading
		wx, wy int
	}{
		{North, 5, 4},
		{South, 5, 6},
		{East, 6, 5},
		{West, 4, 5},
	}

	for _, tc := range tests {
		t.Run(tc.h.String(), func(t *testing.T) {
			e, _ := newTestEngine(Uniform(10, Free), 5, 5, tc.h)
			res := e.Tick()
			if res.Position.X != tc.wx || res.Position.Y != tc.wy {
				t.Errorf("Position = (%d, %d), expected (%d, %d)", res.Position.X, res.Position.Y, tc.wx, tc.wy)
			}
		})
	}
}

// The crash check uses the pre-move cell: a plane sitting on an obstacle
// crashes without moving.
func TestTickCrashesOnCurrentObstacle(t *testing.T) {
	m := Uniform(10, Free).With(5, 5, Mountain)
	e, tr := newTestEngine(m, 5, 5, East)

	res := e.Tick()

	if res.Outcome != OutcomeCrashed {
		t.Fatalf("Outcome = %v, expected crashed", res.Outcome)
	}
	if p := tr.Position(); p.X != 5 || p.Y != 5 {
		t.Errorf("crash moved the plane to (%d, %d)", p.X, p.Y)
	}
	if res.Crash == nil || res.Crash.Reason != ReasonObstacle || res.Crash.Status != Mountain {
		t.Errorf("Crash = %+v, expected obstacle mountain", res.Crash)
	}
	if e.State() != Crashed {
		t.Errorf("State = %v, expected crashed", e.State())
	}
}

// Moving onto an obstacle is not a crash yet; it is detected one tick later.
func TestTickCrashIsDetectedOneTickLate(t *testing.T) {
	m := Uniform(10, Free).With(6, 5, Tree)
	e, tr := newTestEngine(m, 5, 5, East)

	first := e.Tick()
	if first.Outcome != OutcomeMoved {
		t.Fatalf("first tick Outcome = %v, expected moved onto the tree", first.Outcome)
	}
	if p := tr.Position(); p.X != 6 {
		t.Fatalf("X = %d, expected 6", p.X)
	}

	second := e.Tick()
	if second.Outcome != OutcomeCrashed {
		t.Fatalf("second tick Outcome = %v, expected crashed", second.Outcome)
	}
	if second.Crash.Tick != 2 {
		t.Errorf("Crash.Tick = %d, expected 2", second.Crash.Tick)
	}
	if p := tr.Position(); p.X != 6 || p.Y != 5 {
		t.Errorf("Position after crash = (%d, %d), expected (6, 5)", p.X, p.Y)
	}
}

func TestTickCrashesOutOfBounds(t *testing.T) {
	m := Uniform(3, Free)
	e, _ := newTestEngine(m, 0, 1, West)

	if res := e.Tick(); res.Outcome != OutcomeMoved {
		t.Fatalf("first tick Outcome = %v, expected moved off the edge", res.Outcome)
	}
	res := e.Tick()
	if res.Outcome != OutcomeCrashed {
		t.Fatalf("second tick Outcome = %v, expected crashed", res.Outcome)
	}
	if res.Crash.Reason != ReasonOutOfBounds {
		t.Errorf("Reason = %v, expected out of bounds", res.Crash.Reason)
	}
	if res.Crash.Position.X != -1 {
		t.Errorf("crash X = %d, expected -1", res.Crash.Position.X)
	}
}

func TestTickAfterCrashIsNoop(t *testing.T) {
	m := Uniform(10, Free).With(5, 5, Antenna)
	e, tr := newTestEngine(m, 5, 5, North)

	e.Tick()
	ticks := e.Ticks()
	res := e.Tick()

	if res.Outcome != OutcomeCrashed {
		t.Errorf("Outcome = %v, expected crashed", res.Outcome)
	}
	if e.Ticks() != ticks {
		t.Errorf("Ticks advanced from %d to %d after crash", ticks, e.Ticks())
	}
	if p := tr.Position(); p.X != 5 || p.Y != 5 {
		t.Errorf("plane moved after crash to (%d, %d)", p.X, p.Y)
	}
	if _, ok := e.Crash(); !ok {
		t.Error("Crash() should report the crash")
	}
}

func TestHeadingChangeAppliesOnNextTick(t *testing.T) {
	e, tr := newTestEngine(Uniform(10, Free), 5, 5, North)

	e.Tick() // (5, 4)
	tr.SetHeading(East)
	res := e.Tick()

	if res.Position.X != 6 || res.Position.Y != 4 {
		t.Errorf("Position = (%d, %d), expected (6, 4)", res.Position.X, res.Position.Y)
	}
}

func TestCrashReportMessage(t *testing.T) {
	tests := []struct {
		report   CrashReport
		expected string
	}{
		{
			CrashReport{Position: Position{X: 3, Y: 4}, Reason: ReasonObstacle, Status: Mountain},
			"hit a mountain at (3, 4)",
		},
		{
			CrashReport{Position: Position{X: -1, Y: 0}, Reason: ReasonOutOfBounds},
			"flew off the map at (-1, 0)",
		},
	}

	for _, tc := range tests {
		if got := tc.report.Message(); got != tc.expected {
			t.Errorf("Message() = %q, expected %q", got, tc.expected)
		}
	}
}
