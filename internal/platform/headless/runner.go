package headless

import (
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridflight/internal/config"
	"github.com/vovakirdan/gridflight/internal/flight"
)

// Options configures a headless flight.
type Options struct {
	Config   config.FlightConfig
	Seed     int64
	WidthPx  int
	HeightPx int

	// MaxTicks stops the flight after this many ticks. 0 flies until crash.
	MaxTicks uint64

	// Turns maps a tick count to the heading set right after that tick.
	// Key 0 applies before the first tick.
	Turns map[uint64]flight.Heading

	// Out receives a rendered frame per redraw when set.
	Out     io.Writer
	Colored bool

	Logger *log.Logger
}

// Result summarizes a finished flight.
type Result struct {
	Ticks    uint64
	Crashed  bool
	Crash    flight.CrashReport
	Snapshot flight.Snapshot
}

// Runner flies one controller on the calling goroutine. Timer expiries are
// funneled through a channel so adapter callbacks never race with the loop.
type Runner struct {
	opts   Options
	logger *log.Logger
	sched  *loopScheduler
	ctrl   *flight.Controller

	frames uint64
	crash  *flight.CrashReport
	err    error
}

// NewRunner creates a runner for opts.
func NewRunner(opts Options) *Runner {
	logger := opts.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}

	r := &Runner{
		opts:   opts,
		logger: logger,
		sched:  newLoopScheduler(),
	}
	copts := opts.Config.ControllerOptions(opts.Seed, logger)
	copts.Scheduler = r.sched
	r.ctrl = flight.NewController(r, copts)
	return r
}

// Run flies until a crash, MaxTicks or ctx cancellation. Cancellation
// returns the partial result together with ctx.Err().
func (r *Runner) Run(ctx context.Context) (Result, error) {
	defer r.sched.close()
	defer r.ctrl.Stop()

	r.ctrl.Start(r.opts.WidthPx, r.opts.HeightPx)
	for !r.done() {
		select {
		case <-ctx.Done():
			return r.result(), ctx.Err()
		case fn := <-r.sched.fire:
			fn()
		}
	}
	return r.result(), r.err
}

func (r *Runner) done() bool {
	if r.err != nil || r.crash != nil {
		return true
	}
	return r.opts.MaxTicks > 0 && r.ticks() >= r.opts.MaxTicks
}

func (r *Runner) ticks() uint64 {
	if r.frames == 0 {
		return 0
	}
	return r.frames - 1
}

func (r *Runner) result() Result {
	res := Result{
		Ticks:    r.ctrl.Snapshot().Tick,
		Snapshot: r.ctrl.Snapshot(),
	}
	if r.crash != nil {
		res.Crashed = true
		res.Crash = *r.crash
	}
	return res
}

// OnRedraw implements flight.Adapter.
func (r *Runner) OnRedraw(f flight.Frame) {
	tick := r.frames
	r.frames++

	pos := f.Viewport.Position()
	r.logger.Info("frame", "tick", tick, "x", pos.X, "y", pos.Y, "heading", pos.Heading)

	if r.opts.Out != nil && r.err == nil {
		r.err = Render(r.opts.Out, f.Viewport, RenderOptions{Colored: r.opts.Colored})
	}
	if h, ok := r.opts.Turns[tick]; ok {
		r.logger.Info("turn", "tick", tick, "heading", h)
		r.ctrl.SetHeading(h)
	}
}

// OnCrash implements flight.Adapter.
func (r *Runner) OnCrash(report flight.CrashReport, f flight.Frame) {
	r.crash = &report
	r.logger.Info("flight over", "ticks", report.Tick, "reason", report.Message())

	if r.opts.Out != nil && r.err == nil {
		r.err = Render(r.opts.Out, f.Viewport, RenderOptions{Colored: r.opts.Colored, Crashed: true})
	}
}

// ParseTurns parses a script like "0:east,5:south" into a turn table.
func ParseTurns(s string) (map[uint64]flight.Heading, error) {
	turns := make(map[uint64]flight.Heading)
	s = strings.TrimSpace(s)
	if s == "" {
		return turns, nil
	}
	for _, part := range strings.Split(s, ",") {
		tickStr, headingStr, ok := strings.Cut(strings.TrimSpace(part), ":")
		if !ok {
			return nil, fmt.Errorf("headless: turn %q: expected tick:heading", part)
		}
		tick, err := strconv.ParseUint(strings.TrimSpace(tickStr), 10, 64)
		if err != nil {
			return nil, fmt.Errorf("headless: turn %q: %w", part, err)
		}
		h, err := flight.ParseHeading(headingStr)
		if err != nil {
			return nil, fmt.Errorf("headless: turn %q: %w", part, err)
		}
		turns[tick] = h
	}
	return turns, nil
}

// loopScheduler hands expired tasks to the runner loop instead of running
// them on timer goroutines.
type loopScheduler struct {
	fire chan func()
	quit chan struct{}
}

func newLoopScheduler() *loopScheduler {
	return &loopScheduler{
		fire: make(chan func()),
		quit: make(chan struct{}),
	}
}

func (s *loopScheduler) Schedule(d time.Duration, fn func()) flight.Task {
	return loopTask{time.AfterFunc(d, func() {
		select {
		case s.fire <- fn:
		case <-s.quit:
		}
	})}
}

func (s *loopScheduler) close() {
	close(s.quit)
}

type loopTask struct {
	t *time.Timer
}

func (t loopTask) Cancel() {
	t.t.Stop()
}
