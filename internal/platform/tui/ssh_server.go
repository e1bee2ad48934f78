package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/adrg/xdg"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/gravflip/internal/core"
	"github.com/vovakirdan/gravflip/internal/registry"
	"github.com/vovakirdan/gravflip/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key is generated under the XDG data dir.
	HostKeyPath string

	// TickRate is the simulation rate of every session.
	TickRate int

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		TickRate:    60,
		IdleTimeout: 30 * time.Minute,
	}
}

// SSHServer serves independent single-player sessions over SSH. Sessions
// have no audio and record replays under the SSH user name.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer creates the server. store may be nil, in which case runs
// are not recorded.
func NewSSHServer(cfg SSHServerConfig, store *storage.Store, logger *log.Logger) (*SSHServer, error) {
	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		p, err := xdg.DataFile("gravflip/host_key")
		if err != nil {
			return nil, fmt.Errorf("tui: cannot resolve host key path: %w", err)
		}
		hostKeyPath = p
	}
	if err := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); err != nil {
		return nil, fmt.Errorf("tui: cannot create host key directory: %w", err)
	}

	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.sessionMiddleware,
		),
	)
	if err != nil {
		return nil, fmt.Errorf("tui: cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sess.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sess.User())
		return nil, nil
	}

	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.config.TickRate,
	}
	opts := Options{
		Store:  s.store,
		Logger: s.logger.With("user", sess.User()),
		Pilot:  sess.User(),
	}
	return NewSessionModel(cfg, opts), []tea.ProgramOption{tea.WithAltScreen()}
}

// sessionMiddleware logs session start and end.
func (s *SSHServer) sessionMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		start := time.Now()
		s.logger.Info("session started", "user", sess.User(), "remote", sess.RemoteAddr().String())
		next(sess)
		s.logger.Info("session ended", "user", sess.User(), "duration", time.Since(start).Round(time.Second))
	}
}

// ListenAndServe starts the SSH server and blocks until SIGINT or SIGTERM.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	errc := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errc <- err
		}
	}()

	select {
	case <-done:
		s.logger.Info("shutting down")
		return s.Shutdown()
	case err := <-errc:
		return fmt.Errorf("tui: ssh server: %w", err)
	}
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return s.server.Shutdown(ctx)
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

type sessionScreen int

const (
	screenMenu sessionScreen = iota
	screenGame
	screenReplays
)

// SessionModel moves an SSH user between the picker, a game and the replay
// browser. Leaving a game returns to the picker instead of disconnecting.
type SessionModel struct {
	config  core.RuntimeConfig
	opts    Options
	screen  sessionScreen
	menu    MenuModel
	game    Model
	browser ReplayBrowser
	done    bool
}

// NewSessionModel creates a session that starts at the picker.
func NewSessionModel(cfg core.RuntimeConfig, opts Options) SessionModel {
	if opts.Logger == nil {
		opts.Logger = log.New(io.Discard)
	}
	return SessionModel{
		config: cfg,
		opts:   opts,
		menu:   NewMenuModel(cfg.ScreenW, cfg.ScreenH),
	}
}

// Init initializes the session.
func (m SessionModel) Init() tea.Cmd {
	return m.menu.Init()
}

// Update routes messages to the active screen.
func (m SessionModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if wsm, ok := msg.(tea.WindowSizeMsg); ok {
		m.config.ScreenW = wsm.Width
		m.config.ScreenH = wsm.Height
	}

	switch m.screen {
	case screenGame:
		return m.updateGame(msg)
	case screenReplays:
		return m.updateReplays(msg)
	default:
		return m.updateMenu(msg)
	}
}

func (m SessionModel) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.menu.Update(msg)
	m.menu = next.(MenuModel)

	switch {
	case m.menu.IsQuitting():
		m.done = true
		return m, tea.Quit
	case m.menu.WantsReplays():
		m.browser = NewReplayBrowser(m.opts.Store, m.config.ScreenW, m.config.ScreenH).OwnedBy(m.opts.Pilot)
		m.screen = screenReplays
		return m, nil
	case m.menu.Selected() != nil:
		game, err := registry.Create(m.menu.Selected().ID)
		if err != nil {
			m.opts.Logger.Error("cannot create game", "err", err)
			m.menu = NewMenuModel(m.config.ScreenW, m.config.ScreenH)
			return m, nil
		}
		return m.startGame(game, m.opts)
	}
	return m, cmd
}

func (m SessionModel) updateReplays(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.browser.Update(msg)
	m.browser = next.(ReplayBrowser)

	switch {
	case m.browser.IsQuitting():
		m.done = true
		return m, tea.Quit
	case m.browser.GoingBack():
		return m.backToMenu()
	case m.browser.Selected() != nil:
		replay := *m.browser.Selected()
		game, err := registry.Create(replay.GameID)
		if err != nil {
			m.opts.Logger.Warn("replay of unknown variant", "game", replay.GameID)
			return m.backToMenu()
		}
		opts := m.opts
		opts.Replay = &replay
		return m.startGame(game, opts)
	}
	return m, cmd
}

func (m SessionModel) updateGame(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.game.Update(msg)
	m.game = next.(Model)
	if m.game.IsQuitting() {
		return m.backToMenu()
	}
	return m, cmd
}

func (m SessionModel) startGame(game registry.Game, opts Options) (tea.Model, tea.Cmd) {
	m.config.Seed = time.Now().UnixNano()
	m.game = NewModel(game, m.config, opts)
	m.screen = screenGame
	return m, m.game.Init()
}

func (m SessionModel) backToMenu() (tea.Model, tea.Cmd) {
	m.menu = NewMenuModel(m.config.ScreenW, m.config.ScreenH)
	m.screen = screenMenu
	return m, nil
}

// View renders the active screen.
func (m SessionModel) View() string {
	if m.done {
		return ""
	}
	switch m.screen {
	case screenGame:
		return m.game.View()
	case screenReplays:
		return m.browser.View()
	default:
		return m.menu.View()
	}
}
