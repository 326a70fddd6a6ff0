package flight

import (
	"io"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"github.com/vovakirdan/gridflight/internal/core"
)

// Defaults mirrored by the embedded YAML config.
const (
	DefaultMatrixSize = 1000
	DefaultBlockSize  = 50 // pixels per block side
)

// SessionOptions configures terrain generation and display geometry.
type SessionOptions struct {
	MatrixSize int         // side length of the terrain matrix in blocks
	BlockSize  int         // side length of one block in pixels
	DrawMax    int         // upper bound of the per-cell generator draw
	Seed       int64       // 0 = seed from the clock
	Logger     *log.Logger // nil = silent
}

// DefaultSessionOptions returns the options of the classic game.
func DefaultSessionOptions() SessionOptions {
	return SessionOptions{
		MatrixSize: DefaultMatrixSize,
		BlockSize:  DefaultBlockSize,
		DrawMax:    DefaultDrawMax,
	}
}

// Session is one flight: the terrain, the plane and the tick engine.
// Initialize discards everything and starts over.
type Session struct {
	opts     SessionOptions
	rng      *rand.Rand
	logger   *log.Logger
	matrix   *Matrix
	tracker  Tracker
	engine   *Engine
	visibleX int
	visibleY int
	attempts int // generations needed for the last Initialize
	runs     int // number of Initialize calls
}

// Snapshot captures the observable session state for tests and logs.
type Snapshot struct {
	Run      int
	Tick     uint64
	X, Y     int
	Heading  Heading
	State    State
	VisibleX int
	VisibleY int
	Attempts int
}

// NewSession creates an uninitialized session. Call Initialize before
// ticking.
func NewSession(opts SessionOptions) *Session {
	if opts.MatrixSize <= 0 {
		opts.MatrixSize = DefaultMatrixSize
	}
	if opts.BlockSize <= 0 {
		opts.BlockSize = DefaultBlockSize
	}
	if opts.DrawMax <= 0 {
		opts.DrawMax = DefaultDrawMax
	}
	seed := opts.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	return &Session{
		opts:   opts,
		rng:    rand.New(rand.NewSource(seed)),
		logger: logger,
	}
}

// Initialize sizes the viewport from the display area, generates a new
// terrain whose center block is Free and puts the plane there heading North.
// It returns the first viewport of the new run.
func (s *Session) Initialize(widthPx, heightPx int) *Viewport {
	s.visibleX = max(core.FloorDiv(widthPx, s.opts.BlockSize), 0)
	s.visibleY = max(core.FloorDiv(heightPx, s.opts.BlockSize), 0)

	center := s.opts.MatrixSize / 2
	s.matrix, s.attempts = GenerateWithFreeCell(s.opts.MatrixSize, center, center, s.rng, s.opts.DrawMax)
	s.tracker.Reset(center, center)
	s.engine = NewEngine(s.matrix, &s.tracker)
	s.runs++

	s.logger.Debug("session initialized",
		"run", s.runs,
		"visible_x", s.visibleX,
		"visible_y", s.visibleY,
		"attempts", s.attempts,
		"free_ratio", s.matrix.FreeRatio(),
	)
	return s.Viewport()
}

// load replaces terrain and position directly. Used by tests to set up
// exact scenarios.
func (s *Session) load(m *Matrix, pos Position, visibleX, visibleY int) {
	s.matrix = m
	s.tracker.moveTo(pos)
	s.engine = NewEngine(m, &s.tracker)
	s.visibleX, s.visibleY = visibleX, visibleY
	s.attempts = 0
	s.runs++
}

// Initialized reports whether Initialize has been called.
func (s *Session) Initialized() bool {
	return s.engine != nil
}

// Viewport computes a fresh viewport for the current position.
func (s *Session) Viewport() *Viewport {
	if s.matrix == nil {
		return ComputeViewport(Uniform(0, Free), Position{}, 0, 0)
	}
	return ComputeViewport(s.matrix, s.tracker.Position(), s.visibleX, s.visibleY).WithLogger(s.logger)
}

// SetHeading changes the plane's heading for the next tick.
func (s *Session) SetHeading(h Heading) {
	s.tracker.SetHeading(h)
}

// Tick advances the engine by one step. Ticking an uninitialized session
// does nothing.
func (s *Session) Tick() TickResult {
	if s.engine == nil {
		return TickResult{}
	}
	return s.engine.Tick()
}

// State returns the engine state. An uninitialized session counts as
// running.
func (s *Session) State() State {
	if s.engine == nil {
		return Running
	}
	return s.engine.State()
}

// Crash returns the crash report of the current run, if any.
func (s *Session) Crash() (CrashReport, bool) {
	if s.engine == nil {
		return CrashReport{}, false
	}
	return s.engine.Crash()
}

// Matrix returns the current terrain.
func (s *Session) Matrix() *Matrix {
	return s.matrix
}

// Position returns the plane position.
func (s *Session) Position() Position {
	return s.tracker.Position()
}

// VisibleBlocks returns the viewport dimensions in blocks.
func (s *Session) VisibleBlocks() (int, int) {
	return s.visibleX, s.visibleY
}

// Options returns the effective options.
func (s *Session) Options() SessionOptions {
	return s.opts
}

// Snapshot returns the current observable state.
func (s *Session) Snapshot() Snapshot {
	var ticks uint64
	if s.engine != nil {
		ticks = s.engine.Ticks()
	}
	pos := s.tracker.Position()
	return Snapshot{
		Run:      s.runs,
		Tick:     ticks,
		X:        pos.X,
		Y:        pos.Y,
		Heading:  pos.Heading,
		State:    s.State(),
		VisibleX: s.visibleX,
		VisibleY: s.visibleY,
		Attempts: s.attempts,
	}
}
