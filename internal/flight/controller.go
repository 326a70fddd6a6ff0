package flight

import (
	"io"
	"sync"
	"time"

	"github.com/charmbracelet/log"
)

// DefaultTickInterval is the period between two ticks.
const DefaultTickInterval = time.Second

// Frame is what a renderer needs for one signal: the viewport and the
// session state it was computed from.
type Frame struct {
	Viewport *Viewport
	Snapshot Snapshot
}

// Adapter receives the controller's signals. Implementations draw the
// viewport and show the crash state; they must not block for long.
//
// Signals are delivered one at a time in the order the session changed.
// Adapter methods may call SetHeading and the read-only accessors but must
// not call Start, Restart, Resize or Stop.
type Adapter interface {
	// OnRedraw is called after init, restart, resize and every tick that
	// moved the plane.
	OnRedraw(f Frame)
	// OnCrash is called once when the flight ends. f shows the wreck.
	OnCrash(report CrashReport, f Frame)
}

// AdapterFuncs adapts two plain functions to the Adapter interface.
// Nil functions are skipped.
type AdapterFuncs struct {
	Redraw func(f Frame)
	Crash  func(report CrashReport, f Frame)
}

// OnRedraw implements Adapter.
func (a AdapterFuncs) OnRedraw(f Frame) {
	if a.Redraw != nil {
		a.Redraw(f)
	}
}

// OnCrash implements Adapter.
func (a AdapterFuncs) OnCrash(report CrashReport, f Frame) {
	if a.Crash != nil {
		a.Crash(report, f)
	}
}

// ControllerOptions configures a Controller.
type ControllerOptions struct {
	Session      SessionOptions
	TickInterval time.Duration // 0 = DefaultTickInterval
	Scheduler    Scheduler     // nil = TimerScheduler
	Logger       *log.Logger   // nil = silent
}

// Controller owns one session and the single outstanding tick. All adapter
// commands go through it. It is safe for concurrent use: timer callbacks and
// input handlers may arrive on different goroutines.
//
// Lock order is deliver, then mu. deliver is held from a state change until
// its signal has been handed to the adapter, so signals never overtake each
// other.
type Controller struct {
	deliver   sync.Mutex
	mu        sync.Mutex
	session   *Session
	adapter   Adapter
	scheduler Scheduler
	interval  time.Duration
	logger    *log.Logger

	pending Task
	seq     uint64 // identifies the live task; stale callbacks carry an older value

	widthPx  int
	heightPx int
	started  bool
	stopped  bool
}

// NewController creates a controller that reports to adapter.
func NewController(adapter Adapter, opts ControllerOptions) *Controller {
	if opts.TickInterval <= 0 {
		opts.TickInterval = DefaultTickInterval
	}
	if opts.Scheduler == nil {
		opts.Scheduler = TimerScheduler{}
	}
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	if opts.Session.Logger == nil {
		opts.Session.Logger = opts.Logger
	}
	if adapter == nil {
		adapter = AdapterFuncs{}
	}

	return &Controller{
		session:   NewSession(opts.Session),
		adapter:   adapter,
		scheduler: opts.Scheduler,
		interval:  opts.TickInterval,
		logger:    opts.Logger,
	}
}

// Start initializes the first session for a display of widthPx x heightPx,
// emits the first redraw and schedules the first tick.
func (c *Controller) Start(widthPx, heightPx int) {
	c.deliver.Lock()
	defer c.deliver.Unlock()

	c.mu.Lock()
	c.started = true
	c.stopped = false
	c.widthPx, c.heightPx = widthPx, heightPx
	f := c.reinitializeLocked()
	c.mu.Unlock()

	c.logger.Info("flight started", "width_px", widthPx, "height_px", heightPx)
	c.adapter.OnRedraw(f)
}

// SetHeading changes the plane's heading. It takes effect on the next tick.
func (c *Controller) SetHeading(h Heading) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.session.State() == Crashed {
		return
	}
	c.session.SetHeading(h)
}

// Restart discards the session, generates a new one and resumes ticking.
// It works from both the running and the crashed state.
func (c *Controller) Restart() {
	c.deliver.Lock()
	defer c.deliver.Unlock()

	c.mu.Lock()
	if !c.started || c.stopped {
		c.mu.Unlock()
		return
	}
	f := c.reinitializeLocked()
	c.mu.Unlock()

	c.logger.Info("flight restarted")
	c.adapter.OnRedraw(f)
}

// Resize recomputes the viewport dimensions from the new display size and
// starts a new session on fresh terrain.
func (c *Controller) Resize(widthPx, heightPx int) {
	c.deliver.Lock()
	defer c.deliver.Unlock()

	c.mu.Lock()
	c.widthPx, c.heightPx = widthPx, heightPx
	if !c.started || c.stopped {
		c.mu.Unlock()
		return
	}
	f := c.reinitializeLocked()
	c.mu.Unlock()

	c.logger.Info("display resized", "width_px", widthPx, "height_px", heightPx)
	c.adapter.OnRedraw(f)
}

// Stop cancels the pending tick. No signal is emitted after Stop returns
// until Start is called again.
func (c *Controller) Stop() {
	c.deliver.Lock()
	defer c.deliver.Unlock()

	c.mu.Lock()
	defer c.mu.Unlock()

	c.stopped = true
	c.cancelLocked()
}

// Viewport computes the current viewport.
func (c *Controller) Viewport() *Viewport {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session.Viewport()
}

// State returns the engine state of the current run.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session.State()
}

// Crash returns the crash report of the current run, if any.
func (c *Controller) Crash() (CrashReport, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session.Crash()
}

// Snapshot returns the session snapshot.
func (c *Controller) Snapshot() Snapshot {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.session.Snapshot()
}

// TickInterval returns the tick period.
func (c *Controller) TickInterval() time.Duration {
	return c.interval
}

func (c *Controller) frameLocked() Frame {
	return Frame{Viewport: c.session.Viewport(), Snapshot: c.session.Snapshot()}
}

func (c *Controller) reinitializeLocked() Frame {
	c.cancelLocked()
	c.session.Initialize(c.widthPx, c.heightPx)
	c.scheduleLocked()
	return c.frameLocked()
}

func (c *Controller) cancelLocked() {
	if c.pending != nil {
		c.pending.Cancel()
		c.pending = nil
	}
	// Invalidate any callback that already escaped cancellation.
	c.seq++
}

func (c *Controller) scheduleLocked() {
	c.seq++
	seq := c.seq
	c.pending = c.scheduler.Schedule(c.interval, func() { c.tick(seq) })
}

func (c *Controller) tick(seq uint64) {
	c.deliver.Lock()
	defer c.deliver.Unlock()

	c.mu.Lock()
	if c.stopped || seq != c.seq {
		c.mu.Unlock()
		return
	}
	c.pending = nil

	res := c.session.Tick()
	if res.Outcome == OutcomeCrashed {
		report := *res.Crash
		f := c.frameLocked()
		c.mu.Unlock()

		c.logger.Warn("plane crashed",
			"x", report.Position.X,
			"y", report.Position.Y,
			"reason", report.Reason,
			"status", report.Status,
			"tick", report.Tick,
		)
		c.adapter.OnCrash(report, f)
		return
	}

	c.scheduleLocked()
	f := c.frameLocked()
	c.mu.Unlock()

	c.adapter.OnRedraw(f)
}
