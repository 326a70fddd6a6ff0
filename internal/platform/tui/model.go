package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/gridflight/internal/config"
	"github.com/vovakirdan/gridflight/internal/core"
	"github.com/vovakirdan/gridflight/internal/flight"
)

// hudRows is the number of screen rows above the playfield.
const hudRows = 1

// footerRows is the number of rows reserved for the short help line.
const footerRows = 1

// Model is the Bubble Tea model for one flight.
type Model struct {
	cfg      config.FlightConfig
	ctrl     *flight.Controller
	sched    *teaScheduler
	st       *viewState
	screen   *core.Screen
	keys     KeyMap
	help     help.Model
	quitting bool
}

// viewState is shared between the model copies Bubble Tea passes around and
// the controller's adapter callbacks.
type viewState struct {
	cols, rows int
	redraws    int
	crash      *flight.CrashReport
}

// OnRedraw implements flight.Adapter.
func (s *viewState) OnRedraw(flight.Frame) {
	s.redraws++
	s.crash = nil
}

// OnCrash implements flight.Adapter.
func (s *viewState) OnCrash(report flight.CrashReport, _ flight.Frame) {
	s.crash = &report
}

// NewModel creates a model for a terminal of rt.ScreenW x rt.ScreenH cells.
func NewModel(cfg config.FlightConfig, rt core.RuntimeConfig, logger *log.Logger) Model {
	if rt.Seed == 0 {
		rt.Seed = time.Now().UnixNano()
	}

	st := &viewState{cols: rt.ScreenW, rows: rt.ScreenH}
	sched := newTeaScheduler()
	opts := cfg.ControllerOptions(rt.Seed, logger)
	opts.Scheduler = sched

	h := help.New()
	h.Width = rt.ScreenW

	return Model{
		cfg:    cfg,
		ctrl:   flight.NewController(st, opts),
		sched:  sched,
		st:     st,
		screen: core.NewScreen(rt.ScreenW, max(rt.ScreenH-footerRows, 0)),
		keys:   DefaultKeyMap(),
		help:   h,
	}
}

// Init starts the flight and its first tick.
func (m Model) Init() tea.Cmd {
	m.ctrl.Start(m.playfieldPixels())
	return m.sched.Take()
}

// Update handles messages and forwards commands to the controller.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		return m.handleResize(msg)

	case TickMsg:
		m.sched.Fire(msg)
		return m, m.sched.Take()
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	action := m.keys.Action(msg)
	switch action {
	case core.ActionQuit:
		m.ctrl.Stop()
		m.quitting = true
		return m, tea.Quit
	case core.ActionHelp:
		m.help.ShowAll = !m.help.ShowAll
	case core.ActionRestart:
		m.ctrl.Restart()
	default:
		if h, ok := flight.HeadingForAction(action); ok {
			m.ctrl.SetHeading(h)
		}
	}
	return m, m.sched.Take()
}

// handleResize starts a new run sized to the terminal. Repeated messages
// with an unchanged size are ignored.
func (m Model) handleResize(msg tea.WindowSizeMsg) (tea.Model, tea.Cmd) {
	if msg.Width == m.st.cols && msg.Height == m.st.rows {
		return m, nil
	}
	m.st.cols, m.st.rows = msg.Width, msg.Height
	m.screen.Resize(msg.Width, max(msg.Height-footerRows, 0))
	m.help.Width = msg.Width

	m.ctrl.Resize(m.playfieldPixels())
	return m, m.sched.Take()
}

// playfieldPixels converts the playfield area to virtual pixels.
func (m Model) playfieldPixels() (int, int) {
	return m.cfg.TerminalPixels(m.st.cols, max(m.st.rows-hudRows-footerRows, 0))
}

// View renders the HUD, the playfield and the help footer.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.screen.Clear()
	m.drawHUD()

	area := core.NewRect(0, hudRows, m.screen.Width(), m.screen.Height()-hudRows)
	crashed := m.ctrl.State() == flight.Crashed
	bw, bh := m.cfg.BlockCells()
	DrawViewport(m.screen, area, m.ctrl.Viewport(), bw, bh, crashed)
	if crashed {
		if report, ok := m.ctrl.Crash(); ok {
			m.drawCrashBanner(area, report)
		}
	}

	footer := m.help.View(m.keys)
	lines := strings.Split(RenderScreen(m.screen), "\n")
	if keep := m.st.rows - lipgloss.Height(footer); keep >= 0 && keep < len(lines) {
		lines = lines[:keep]
	}
	return strings.Join(lines, "\n") + "\n" + footer
}

func (m Model) drawHUD() {
	snap := m.ctrl.Snapshot()
	left := fmt.Sprintf(" GRID FLIGHT  run %d  tick %d  pos %d,%d  heading %s",
		snap.Run, snap.Tick, snap.X, snap.Y, snap.Heading)
	m.screen.DrawTextColored(0, 0, left, core.ColorCyan)

	right := fmt.Sprintf("%s ", m.cfg.Difficulty.Preset)
	m.screen.DrawTextColored(m.screen.Width()-len(right), 0, right, core.ColorYellow)
}

func (m Model) drawCrashBanner(area core.Rect, report flight.CrashReport) {
	msg := report.Message()
	hint := "press r to restart"
	w := max(len(msg), len(hint)) + 4
	h := 5
	cx, cy := area.Center()
	x := core.Clamp(cx-w/2, area.X, max(area.Right()-w, area.X))
	y := core.Clamp(cy-h/2, area.Y, max(area.Bottom()-h, area.Y))
	box := core.NewRect(x, y, w, h)

	m.screen.DrawRect(box, ' ')
	m.screen.DrawBox(box)
	m.screen.DrawTextCentered(box.Y+1, "CRASHED", core.ColorBrightRed)
	m.screen.DrawTextCentered(box.Y+2, msg, core.ColorWhite)
	m.screen.DrawTextCentered(box.Y+3, hint, core.ColorGray)
}

// Run starts the Bubble Tea program on the local terminal.
func Run(cfg config.FlightConfig, rt core.RuntimeConfig, logger *log.Logger) error {
	p := tea.NewProgram(
		NewModel(cfg, rt, logger),
		tea.WithAltScreen(),
	)

	_, err := p.Run()
	return err
}
