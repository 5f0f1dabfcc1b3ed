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
	"github.com/charmbracelet/wish/bubbletea"
	"github.com/google/uuid"

	"github.com/vovakirdan/balloon-quiz/internal/core"
	"github.com/vovakirdan/balloon-quiz/internal/games/balloons"
)

// GameFactory builds a fresh game for one SSH session.
type GameFactory func() (*balloons.Game, error)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23235").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.balloons/host_key.
	HostKeyPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// TickRate is the simulation rate of every session.
	TickRate int
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23235",
		IdleTimeout: 30 * time.Minute,
		TickRate:    30,
	}
}

// SSHServer wraps a Wish SSH server that gives every session its own game.
type SSHServer struct {
	config  SSHServerConfig
	server  *ssh.Server
	newGame GameFactory
	logger  *log.Logger
}

type sessionIDKey struct{}

// NewSSHServer creates a new SSH server with the given configuration.
// A nil logger logs to stderr.
func NewSSHServer(cfg SSHServerConfig, newGame GameFactory, logger *log.Logger) (*SSHServer, error) {
	if newGame == nil {
		return nil, errors.New("tui: game factory is required")
	}
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "balloons-ssh",
		})
	}

	srv := &SSHServer{
		config:  cfg,
		newGame: newGame,
		logger:  logger,
	}

	hostKeyPath := cfg.HostKeyPath
	if hostKeyPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("cannot get home directory: %w", err)
		}
		hostKeyPath = filepath.Join(home, ".balloons", "host_key")
	}

	if err := os.MkdirAll(filepath.Dir(hostKeyPath), 0o700); err != nil {
		return nil, fmt.Errorf("cannot create host key directory: %w", err)
	}

	server, err := wish.NewServer(
		wish.WithAddress(cfg.Address),
		wish.WithHostKeyPath(hostKeyPath),
		wish.WithIdleTimeout(cfg.IdleTimeout),
		wish.WithMiddleware(
			bubbletea.Middleware(srv.teaHandler),
			srv.loggingMiddleware,
		),
	)
	if err != nil {
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
func (s *SSHServer) teaHandler(sess ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sess.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sess.User())
		wish.Fatalln(sess, "balloons needs an interactive terminal, try ssh -t")
		return nil, nil
	}

	logger := s.logger.With("session", sessionID(sess))

	game, err := s.newGame()
	if err != nil {
		logger.Error("cannot create game", "error", err)
		wish.Fatalln(sess, "cannot start the game")
		return nil, nil
	}

	cfg := core.RuntimeConfig{
		ScreenW:  pty.Window.Width,
		ScreenH:  pty.Window.Height,
		TickRate: s.config.TickRate,
	}

	model := NewModel(game, cfg, logger).WithPainter(NewPainter(bubbletea.MakeRenderer(sess)))
	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
		tea.WithMouseCellMotion(),
	}
}

// loggingMiddleware tags the session with an id and logs its lifetime.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sess ssh.Session) {
		id := uuid.NewString()
		sess.Context().SetValue(sessionIDKey{}, id)

		start := time.Now()
		s.logger.Info("session started",
			"session", id,
			"user", sess.User(),
			"remote", sess.RemoteAddr().String(),
		)
		next(sess)
		s.logger.Info("session ended",
			"session", id,
			"user", sess.User(),
			"duration", time.Since(start).Round(time.Second),
		)
	}
}

// sessionID returns the id the logging middleware gave the session.
func sessionID(sess ssh.Session) string {
	if id, ok := sess.Context().Value(sessionIDKey{}).(string); ok {
		return id
	}
	return "unknown"
}

// ListenAndServe starts the SSH server and blocks until shutdown.
func (s *SSHServer) ListenAndServe() error {
	s.logger.Info("starting SSH server", "address", s.config.Address)

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
	case err := <-errCh:
		return fmt.Errorf("ssh server: %w", err)
	}

	s.logger.Info("shutting down...")
	return s.Shutdown()
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
