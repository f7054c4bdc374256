package tui

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"
	"github.com/charmbracelet/ssh"
	"github.com/charmbracelet/wish"
	"github.com/charmbracelet/wish/activeterm"
	"github.com/charmbracelet/wish/bubbletea"

	"github.com/vovakirdan/tui-2048/internal/audio"
	"github.com/vovakirdan/tui-2048/internal/config"
	"github.com/vovakirdan/tui-2048/internal/core"
	"github.com/vovakirdan/tui-2048/internal/session"
	"github.com/vovakirdan/tui-2048/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file. It is generated on first
	// start. A leading ~ is expanded.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// Game holds the rules, timing and audio settings for every session.
	Game config.Config
}

// DefaultSSHServerConfig returns a config built from the default game config.
func DefaultSSHServerConfig() SSHServerConfig {
	cfg := config.Default()
	return SSHServerConfig{
		Address:     cfg.SSH.Address,
		HostKeyPath: cfg.SSH.HostKey,
		IdleTimeout: cfg.IdleTimeout(),
		Game:        cfg,
	}
}

// SSHServer serves one 2048 session per SSH connection. Each user plays
// with their own save profile.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

type sessionKey struct{}

// NewSSHServer creates a new SSH server. store may be nil, in which case
// nothing is saved.
func NewSSHServer(cfg SSHServerConfig, store *storage.Store, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "t2048-ssh",
		})
	}

	srv := &SSHServer{
		config: cfg,
		store:  store,
		logger: logger,
	}

	hostKeyPath, err := storage.ExpandHome(cfg.HostKeyPath)
	if err != nil {
		return nil, fmt.Errorf("tui: cannot resolve host key path: %w", err)
	}
	if hostKeyPath == "" {
		return nil, errors.New("tui: host key path is empty")
	}

	// Ensure host key directory exists
	if mkdirErr := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); mkdirErr != nil {
		return nil, fmt.Errorf("tui: cannot create host key directory: %w", mkdirErr)
	}

	opts := []ssh.Option{
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			activeterm.Middleware(),
			srv.closeMiddleware,
			srv.loggingMiddleware,
		),
	}

	server, err := wish.NewServer(opts...)
	if err != nil {
		return nil, fmt.Errorf("tui: cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// Profile returns the save profile of an SSH user.
func Profile(user string) string {
	if user == "" {
		user = "anonymous"
	}
	return "ssh:" + user
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	game := s.config.Game
	profile := Profile(sshSession.User())
	logger := s.logger.With("user", sshSession.User())

	var player audio.Player = audio.Nop{}
	if game.Audio.Enabled {
		player = audio.NewBell(sshSession.Stderr(), game.Audio.MinIntervalFrames, logger)
	}

	opts := session.Options{
		Rules:  game.GameRules(),
		Timing: game.Timing(),
		Seed:   time.Now().UnixNano(),
		Player: player,
		Logger: logger,
	}
	var history HistorySource
	if s.store != nil {
		p := s.store.Profile(profile)
		opts.Persister = p
		opts.Recorder = p
		history = s.store
	}

	sess := session.New(opts)
	sess.Start()
	sshSession.Context().SetValue(sessionKey{}, sess)

	model := NewModel(Options{
		Session: sess,
		History: history,
		Profile: profile,
		Runtime: core.RuntimeConfig{
			ScreenW:  pty.Window.Width,
			ScreenH:  pty.Window.Height,
			TickRate: game.Runtime.TickRate,
		},
		FadeFrames: game.Animation.FadeFrames,
		Renderer:   bubbletea.MakeRenderer(sshSession),
		Logger:     logger,
	})

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// closeMiddleware saves the session once its program has stopped, which
// covers clients that disconnect without quitting.
func (s *SSHServer) closeMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		next(sshSession)
		if sess, ok := sshSession.Context().Value(sessionKey{}).(*session.Session); ok {
			sess.Close()
		}
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		start := time.Now()
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
			"duration", time.Since(start).Round(time.Second),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

	// Setup signal handling for graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-done:
		s.logger.Info("shutting down...")
		return s.Shutdown()
	case err := <-errCh:
		s.logger.Error("server error", "error", err)
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
