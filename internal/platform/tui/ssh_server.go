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

	"github.com/vovakirdan/discs/internal/scenario"
	"github.com/vovakirdan/discs/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23235").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.discs/host_key.
	HostKeyPath string

	// DBPath is the path to the run history database.
	DBPath string

	// ScenarioDir holds extra scenario files offered next to the built-ins.
	ScenarioDir string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// Epsilon and Margin are passed to every viewer.
	Epsilon float64
	Margin  float64
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23235",
		DBPath:      "~/.discs/runs.db",
		IdleTimeout: 30 * time.Minute,
		Epsilon:     1e-9,
		Margin:      0.1,
	}
}

// SSHServer wraps a Wish SSH server that serves the disk viewer.
type SSHServer struct {
	config    SSHServerConfig
	server    *ssh.Server
	store     *storage.Store
	scenarios []scenario.Scenario
	logger    *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "discs-ssh",
		})
	}

	scenarios, err := loadServedScenarios(cfg.ScenarioDir)
	if err != nil {
		return nil, err
	}

	// Open storage
	store, err := storage.Open(cfg.DBPath)
	if err != nil {
		logger.Warn("could not open run history", "error", err)
		// Continue without saving runs
		store = nil
	}

	srv := &SSHServer{
		config:    cfg,
		store:     store,
		scenarios: scenarios,
		logger:    logger,
	}

	hostKeyPath, err := resolveHostKeyPath(cfg.HostKeyPath)
	if err != nil {
		srv.closeStore()
		return nil, err
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
		srv.closeStore()
		return nil, fmt.Errorf("cannot create SSH server: %w", err)
	}

	srv.server = server
	return srv, nil
}

// loadServedScenarios returns the built-ins followed by the files in dir.
func loadServedScenarios(dir string) ([]scenario.Scenario, error) {
	scenarios, err := scenario.Builtin()
	if err != nil {
		return nil, err
	}
	if dir == "" {
		return scenarios, nil
	}
	extra, err := scenario.NewLoader(dir).LoadAll()
	if err != nil {
		return nil, fmt.Errorf("cannot load scenarios from %s: %w", dir, err)
	}
	return append(scenarios, extra...), nil
}

// resolveHostKeyPath expands ~ and creates the key's directory.
func resolveHostKeyPath(path string) (string, error) {
	if path == "" || strings.HasPrefix(path, "~") {
		home, err := os.UserHomeDir()
		if err != nil {
			return "", fmt.Errorf("cannot get home directory: %w", err)
		}
		if path == "" {
			path = filepath.Join(home, ".discs", "host_key")
		} else {
			path = filepath.Join(home, path[1:])
		}
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return "", fmt.Errorf("cannot create host key directory: %w", err)
	}
	return path, nil
}

// teaHandler creates a Bubble Tea program for each SSH session.
// `ssh host <scenario-id>` opens that scenario directly.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	pty, _, ok := sshSession.Pty()
	if !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	return s.sessionModel(sshSession.Command(), pty.Window.Width, pty.Window.Height), []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// sessionModel builds the model for one connection.
func (s *SSHServer) sessionModel(command []string, width, height int) SessionModel {
	opts := ViewerOptions{
		Epsilon: s.config.Epsilon,
		Margin:  s.config.Margin,
		Width:   width,
		Height:  height,
	}
	if s.store != nil {
		opts.Recorder = s.store
	}

	if len(command) > 0 {
		for _, sc := range s.scenarios {
			if sc.ID == command[0] {
				return NewSessionModelAt(s.scenarios, sc, opts)
			}
		}
		s.logger.Warn("unknown scenario requested", "id", command[0])
	}
	return NewSessionModel(s.scenarios, opts)
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		start := time.Now()
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
			"command", strings.Join(sshSession.Command(), " "),
		)
		next(sshSession)
		s.logger.Info("session ended",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
			"duration", time.Since(start).Round(time.Second),
		)
	}
}

// ListenAndServe starts the SSH server and blocks until an interrupt or
// SIGTERM arrives, then shuts down gracefully.
func (s *SSHServer) ListenAndServe() error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s.logger.Info("starting SSH server", "address", s.config.Address, "scenarios", len(s.scenarios))

	errCh := make(chan error, 1)
	go func() {
		if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, ssh.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err, ok := <-errCh:
		if ok {
			s.closeStore()
			return fmt.Errorf("ssh server: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown gracefully stops the server.
func (s *SSHServer) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	s.closeStore()
	return s.server.Shutdown(ctx)
}

func (s *SSHServer) closeStore() {
	if s.store != nil {
		s.store.Close()
		s.store = nil
	}
}

// Addr returns the server's listen address string.
func (s *SSHServer) Addr() string {
	return s.config.Address
}

// Scenarios returns the scenarios offered to SSH users.
func (s *SSHServer) Scenarios() []scenario.Scenario {
	return s.scenarios
}
