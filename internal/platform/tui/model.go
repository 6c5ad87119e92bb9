package tui

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/rover-playground/internal/core"
	"github.com/vovakirdan/rover-playground/internal/sim"
	"github.com/vovakirdan/rover-playground/internal/storage"
)

// PlaygroundModel is the Bubble Tea model for driving one simulation.
type PlaygroundModel struct {
	desc      core.Descriptor
	opts      []sim.Option
	session   *sim.Session
	view      *MapView
	screen    *core.Screen
	store     *storage.Store
	config    core.RuntimeConfig
	keyMapper *KeyMapper
	holds     *HoldTracker
	help      help.Model
	logger    *log.Logger
	driver    string

	lastTick   time.Time
	best       time.Duration
	hasBest    bool
	paused     bool
	runSaved   bool
	embedded   bool // owned by an SSH SessionModel; back does not quit
	quitting   bool
	backToMenu bool
}

// PlaygroundOption configures a PlaygroundModel.
type PlaygroundOption func(*PlaygroundModel)

// WithSimOptions passes options to every session the model starts.
func WithSimOptions(opts ...sim.Option) PlaygroundOption {
	return func(m *PlaygroundModel) { m.opts = append(m.opts, opts...) }
}

// WithDriver names the driver recorded with saved runs.
func WithDriver(name string) PlaygroundOption {
	return func(m *PlaygroundModel) { m.driver = name }
}

// WithLogger sets the model logger. Sessions inherit it.
func WithLogger(l *log.Logger) PlaygroundOption {
	return func(m *PlaygroundModel) { m.logger = l }
}

func embedded() PlaygroundOption {
	return func(m *PlaygroundModel) { m.embedded = true }
}

// NewPlaygroundModel creates a model driving d.
func NewPlaygroundModel(d core.Descriptor, store *storage.Store, cfg core.RuntimeConfig, opts ...PlaygroundOption) PlaygroundModel {
	m := PlaygroundModel{
		desc:      d,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:     store,
		config:    cfg,
		keyMapper: NewKeyMapper(),
		holds:     NewHoldTracker(cfg.HoldWindow),
		help:      help.New(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	if m.logger != nil {
		m.opts = append(m.opts, sim.WithLogger(m.logger))
	}

	m.start()
	return m
}

// start opens a fresh session and looks up the best time.
func (m *PlaygroundModel) start() {
	if m.session != nil {
		m.session.Close()
	}
	m.session = sim.NewSession(m.desc, m.opts...)
	m.view = NewMapView(m.session)
	m.holds.ReleaseAll()
	m.lastTick = time.Time{}
	m.paused = false
	m.runSaved = false

	if m.store != nil {
		best, ok, err := m.store.BestTime(m.desc.ID)
		if err == nil {
			m.best, m.hasBest = best, ok
		}
	}
}

// Session returns the running simulation.
func (m PlaygroundModel) Session() *sim.Session {
	return m.session
}

// Init starts the frame loop.
func (m PlaygroundModel) Init() tea.Cmd {
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m PlaygroundModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg, time.Now())

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		m.help.Width = msg.Width
		return m, nil

	case TickMsg:
		return m.handleTick(time.Time(msg))
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m PlaygroundModel) handleKey(msg tea.KeyMsg, now time.Time) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		m.session.Close()
		return m, tea.Quit
	}

	switch action {
	case core.ActionForward, core.ActionBackward, core.ActionLeft, core.ActionRight:
		if !m.paused {
			m.holds.Press(action, now)
		}
	case core.ActionBrake:
		m.holds.ReleaseAll()
	case core.ActionPause:
		m.paused = !m.paused
		m.holds.ReleaseAll()
		// Do not count the pause as elapsed time.
		m.lastTick = time.Time{}
	case core.ActionRestart:
		m.start()
	case core.ActionBack:
		m.backToMenu = true
		m.session.Close()
		if !m.embedded {
			return m, tea.Quit
		}
	}

	return m, nil
}

// handleTick advances the simulation by the wall time since the last frame.
func (m PlaygroundModel) handleTick(now time.Time) (tea.Model, tea.Cmd) {
	if m.backToMenu || m.quitting {
		return m, nil
	}

	elapsed := time.Second / time.Duration(max(m.config.TickRate, 1))
	if !m.lastTick.IsZero() {
		elapsed = now.Sub(m.lastTick)
	}
	m.lastTick = now

	if !m.paused {
		m.session.SetInput(sim.SourceKeyboard, sim.FromFrame(m.holds.Frame(now)))
		m.session.Advance(elapsed)
		m.saveRun()
	}

	return m, tickCmd(m.config.TickRate)
}

// saveRun records the run once the mission completes.
func (m *PlaygroundModel) saveRun() {
	if m.runSaved {
		return
	}
	at, done := m.session.Finished()
	if !done {
		return
	}
	m.runSaved = true
	if m.store == nil {
		return
	}

	completed, _ := m.session.Progress()
	_, err := m.store.SaveRun(storage.Run{
		Planet:     m.desc.ID,
		Driver:     m.driver,
		Duration:   at,
		Distance:   m.session.Telemetry().Odometer,
		Objectives: completed,
	})
	if err != nil {
		if m.logger != nil {
			m.logger.Warn("could not save run", "error", err)
		}
		return
	}
	if !m.hasBest || at < m.best {
		m.best, m.hasBest = at, true
	}
}

// saveScreenshot saves the current screen to a file.
func (m *PlaygroundModel) saveScreenshot() {
	m.render()

	dir := filepath.Join(os.Getenv("HOME"), ".rover", "screenshots")
	//nolint:errcheck // Best-effort directory creation
	os.MkdirAll(dir, 0o755)

	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.desc.ID, timestamp)
	path := filepath.Join(dir, filename)

	//nolint:errcheck // Best-effort save, the drive continues regardless
	os.WriteFile(path, []byte(m.screen.String()), 0o600)
}

// render draws map, HUD and banners into the screen buffer.
func (m PlaygroundModel) render() {
	m.screen.Clear()

	w, h := m.screen.Width(), m.screen.Height()-1 // last row is the help bar
	if h < 1 || w < 1 {
		return
	}

	mapW := w
	if w >= hudWidth+20 {
		mapW = w - hudWidth
	}
	mapArea := core.NewRect(0, 0, mapW, h)

	tel := m.session.Telemetry()
	state, _ := m.session.Vehicle()
	m.view.Draw(m.screen, mapArea, tel, state)

	if mapW < w {
		drawHUD(m.screen, core.NewRect(mapW, 0, w-mapW, h), hudInfo{
			desc:       m.desc,
			tel:        tel,
			state:      state,
			objectives: m.session.Objectives(),
			elapsed:    m.session.Elapsed(),
			best:       m.best,
			hasBest:    m.hasBest,
		})
	}

	mid := h / 2
	switch {
	case m.session.Complete():
		at, _ := m.session.Finished()
		drawBanner(m.screen, mapArea, mid-2, " MISSION COMPLETE "+formatDuration(at)+" ", core.ColorBrightGreen)
		drawBanner(m.screen, mapArea, mid+2, " r: drive again   esc: menu ", core.ColorWhite)
	case tel.TargetReached:
		drawBanner(m.screen, mapArea, mid-2, " TARGET REACHED ", core.ColorBrightYellow)
	case m.paused:
		drawBanner(m.screen, mapArea, mid-2, " PAUSED ", core.ColorBrightWhite)
	case tel.Tick == 0:
		drawBanner(m.screen, mapArea, mid-2, " "+m.desc.Mission+" ", core.ColorWhite)
	}
}

// View renders the current state to a string for display.
func (m PlaygroundModel) View() string {
	if m.quitting || (m.backToMenu && !m.embedded) {
		return ""
	}

	m.render()
	return RenderScreen(m.screen) + "\n" + dimStyle.Render(m.help.View(m.keyMapper.Keys()))
}

// IsQuitting returns true if user requested to quit entirely.
func (m PlaygroundModel) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m PlaygroundModel) BackToMenu() bool {
	return m.backToMenu
}

// PlayResult reports how a standalone drive ended.
type PlayResult struct {
	BackToMenu bool
	Config     core.RuntimeConfig
}

// Run drives d in its own Bubble Tea program until the user quits or goes back.
func Run(d core.Descriptor, store *storage.Store, cfg core.RuntimeConfig, opts ...PlaygroundOption) (PlayResult, error) {
	model := NewPlaygroundModel(d, store, cfg, opts...)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	finalModel, err := p.Run()
	if err != nil {
		return PlayResult{Config: cfg}, err
	}

	m, ok := finalModel.(PlaygroundModel)
	if !ok {
		return PlayResult{Config: cfg}, nil
	}
	m.session.Close()
	return PlayResult{BackToMenu: m.backToMenu, Config: m.config}, nil
}
