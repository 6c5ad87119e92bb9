package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/rover-playground/internal/config"
	"github.com/vovakirdan/rover-playground/internal/core"
	"github.com/vovakirdan/rover-playground/internal/registry"
	"github.com/vovakirdan/rover-playground/internal/sim"
	"github.com/vovakirdan/rover-playground/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.rover/host_key.
	HostKeyPath string

	// DBPath is the path to the runs database.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// TickRate is the frame rate of every remote drive.
	TickRate int

	// Physics is the tuning table shared by all sessions.
	Physics config.PhysicsConfig

	// Logger receives server and session events. Nil logs to stderr.
	Logger *log.Logger
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.rover/runs.db",
		IdleTimeout: 30 * time.Minute,
		TickRate:    30,
		Physics:     config.DefaultPhysicsConfig(),
	}
}

// SSHServer serves the playground over SSH with Wish.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig) (*SSHServer, error) {
	logger := cfg.Logger
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "rover-ssh",
		})
	}
	if err := cfg.Physics.Validate(); err != nil {
		return nil, fmt.Errorf("invalid physics config: %w", err)
	}

	// Runs are optional; drive without them if the database is unavailable
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open runs database", "error", err)
		store = nil
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, homeErr := os.UserHomeDir()
		if homeErr != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", homeErr)
		}
		hostKeyPath = filepath.Join(home, ".rover", "host_key")
	}

	if mkdirErr := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", mkdirErr)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		if store != nil {
			store.Close()
		}
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	cfg := core.DefaultConfig()
	cfg.ScreenW = pty.Window.Width
	cfg.ScreenH = pty.Window.Height
	if s.config.TickRate > 0 {
		cfg.TickRate = s.config.TickRate
	}

	model := NewSessionModel(s.store, cfg, sshSession.User(),
		WithDriver(sshSession.User()),
		WithLogger(s.logger.With("user", sshSession.User())),
		WithSimOptions(sim.WithPhysics(s.config.Physics)),
	)

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("connection opened",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("connection closed",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			s.logger.Error("server error", "error", err)
		}
	}()

	<-done
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if s.store != nil {
		s.store.Close()
	}

	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenDrive
	screenRuns
)

// SessionModel manages the full remote flow: menu -> drive or runs -> menu.
// This is the top-level model used for SSH sessions.
type SessionModel struct {
	store    *storage.Store
	config   core.RuntimeConfig
	username string
	opts     []PlaygroundOption
	screen   sessionScreen
	menu     MenuModel
	drive    *PlaygroundModel
	runs     *RunsModel
	quitting bool
}

// NewSessionModel creates a new session model. opts apply to every drive.
func NewSessionModel(store *storage.Store, cfg core.RuntimeConfig, username string, opts ...PlaygroundOption) SessionModel {
	return SessionModel{
		store:    store,
		config:   cfg,
		username: username,
		opts:     append(opts, embedded()),
		menu:     NewMenuModel(store, cfg),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update handles messages for the session.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenDrive:
		return m.updateDrive(msg)
	case screenRuns:
		return m.updateRuns(msg)
	}
	return m.updateMenu(msg)
}

func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.screen = screenMenu
	m.drive = nil
	m.runs = nil
	m.menu = NewMenuModel(m.store, m.config)
	return m, m.menu.Init()
}

// updateMenu handles updates when in menu mode.
func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	newMenu, cmd := m.menu.Update(msg)
	if menuModel, ok := newMenu.(MenuModel); ok {
		m.menu = menuModel
	}

	if m.menu.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	// The menu asks to quit when it hands over; the session keeps running
	if m.menu.WantsRuns() {
		runs := NewRunsModel(m.store, m.config.ScreenW, m.config.ScreenH)
		m.runs = &runs
		m.screen = screenRuns
		return m, nil
	}

	if selected := m.menu.Selected(); selected != nil {
		d, err := registry.Get(selected.ID)
		if err != nil {
			return m.backToMenu()
		}
		m.config = m.menu.Config()

		drive := NewPlaygroundModel(d, m.store, m.config, m.opts...)
		m.drive = &drive
		m.screen = screenDrive
		return m, m.drive.Init()
	}

	return m, cmd
}

// updateDrive handles updates while driving.
func (m SessionModel) updateDrive(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.drive.Update(msg)
	if drive, ok := newModel.(PlaygroundModel); ok {
		m.drive = &drive
	}

	if m.drive.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.drive.BackToMenu() {
		return m.backToMenu()
	}

	return m, cmd
}

// updateRuns handles updates on the runs board.
func (m SessionModel) updateRuns(msg tea.Msg) (tea.Model, tea.Cmd) {
	newModel, cmd := m.runs.Update(msg)
	if runs, ok := newModel.(RunsModel); ok {
		m.runs = &runs
	}

	if m.runs.IsQuitting() {
		m.quitting = true
		return m, tea.Quit
	}

	if m.runs.IsGoingBack() {
		return m.backToMenu()
	}

	return m, cmd
}

// View renders the current view.
func (m SessionModel) View() string {
	if m.quitting {
		return ""
	}

	switch {
	case m.screen == screenDrive && m.drive != nil:
		return m.drive.View()
	case m.screen == screenRuns && m.runs != nil:
		return m.runs.View()
	}

	view := m.menu.View()
	if m.username != "" {
		view += "\n" + dimStyle.Render(centerText("driving as "+strings.TrimSpace(m.username), m.config.ScreenW))
	}
	return view
}
