package flight

import "fmt"

// State is the tick engine's lifecycle state.
type State uint8

const (
	Running State = iota
	Crashed
)

// String returns the lowercase name of the state.
func (s State) String() string {
	if s == Crashed {
		return "crashed"
	}
	return "running"
}

// CrashReason tells why a flight ended.
type CrashReason uint8

const (
	ReasonOutOfBounds CrashReason = iota + 1
	ReasonObstacle
)

// String returns a short description of the reason.
func (r CrashReason) String() string {
	switch r {
	case ReasonOutOfBounds:
		return "out of bounds"
	case ReasonObstacle:
		return "obstacle"
	default:
		return "unknown"
	}
}

// CrashReport describes the crash that ended a session run.
type CrashReport struct {
	Position Position
	Reason   CrashReason
	Status   Status // zero when Reason is ReasonOutOfBounds
	Tick     uint64 // tick on which the crash was detected
}

// Message returns a one-line description of the crash for players.
func (r CrashReport) Message() string {
	if r.Reason == ReasonObstacle {
		return fmt.Sprintf("hit a %s at (%d, %d)", r.Status, r.Position.X, r.Position.Y)
	}
	return fmt.Sprintf("flew off the map at (%d, %d)", r.Position.X, r.Position.Y)
}

// Outcome is what a single tick did.
type Outcome uint8

const (
	OutcomeMoved Outcome = iota + 1
	OutcomeCrashed
)

// TickResult is returned by Engine.Tick.
type TickResult struct {
	Outcome  Outcome
	Position Position     // position after the tick
	Crash    *CrashReport // set when Outcome is OutcomeCrashed
}

// Engine advances the plane one cell per tick over a fixed matrix.
//
// The crash check looks at the cell the plane currently occupies, before
// moving. A plane that moves onto an obstacle therefore crashes on the
// following tick, without moving again.
type Engine struct {
	matrix  *Matrix
	tracker *Tracker
	state   State
	ticks   uint64
	crash   *CrashReport
}

// NewEngine creates a running engine over m that moves t.
func NewEngine(m *Matrix, t *Tracker) *Engine {
	return &Engine{matrix: m, tracker: t, state: Running}
}

// Tick runs one simulation step. Ticks on a crashed engine change nothing
// and report the original crash.
func (e *Engine) Tick() TickResult {
	if e.state == Crashed {
		return TickResult{Outcome: OutcomeCrashed, Position: e.tracker.Position(), Crash: e.crash}
	}

	e.ticks++
	// Heading is read exactly once per tick.
	pos := e.tracker.Position()

	status, ok := e.matrix.At(pos.X, pos.Y)
	switch {
	case !ok:
		e.crashAt(pos, ReasonOutOfBounds, 0)
	case status != Free:
		e.crashAt(pos, ReasonObstacle, status)
	}
	if e.state == Crashed {
		return TickResult{Outcome: OutcomeCrashed, Position: pos, Crash: e.crash}
	}

	next := pos.Next()
	e.tracker.moveTo(next)
	return TickResult{Outcome: OutcomeMoved, Position: next}
}

func (e *Engine) crashAt(pos Position, reason CrashReason, status Status) {
	e.state = Crashed
	e.crash = &CrashReport{
		Position: pos,
		Reason:   reason,
		Status:   status,
		Tick:     e.ticks,
	}
}

// State returns Running or Crashed.
func (e *Engine) State() State {
	return e.state
}

// Ticks returns the number of ticks processed while running.
func (e *Engine) Ticks() uint64 {
	return e.ticks
}

// Crash returns the crash report once the engine has crashed.
func (e *Engine) Crash() (CrashReport, bool) {
	if e.crash == nil {
		return CrashReport{}, false
	}
	return *e.crash, true
}
