// Package tui provides the terminal layout viewer, the run history browser
// and an SSH server that serves the viewer via Wish.
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

	"github.com/vovakirdan/mapgen/internal/config"
	"github.com/vovakirdan/mapgen/internal/mapgen"
	"github.com/vovakirdan/mapgen/internal/storage"
)

// SSHServerConfig holds configuration for the SSH server.
type SSHServerConfig struct {
	// Address is the host:port to listen on (e.g., ":23234").
	Address string

	// HostKeyPath is the path to the host key file.
	// If empty, a key will be auto-generated at ~/.mapgen/host_key.
	HostKeyPath string

	// DBPath is the path to the run history database.
	// If empty, sessions are not recorded.
	DBPath string

	// IdleTimeout is how long to wait before closing idle connections.
	IdleTimeout time.Duration

	// Generator is the layout configuration every session starts from.
	Generator config.GeneratorConfig
}

// DefaultSSHServerConfig returns a config with sensible defaults.
func DefaultSSHServerConfig() SSHServerConfig {
	return SSHServerConfig{
		Address:     ":23234",
		DBPath:      "~/.mapgen/history.db",
		IdleTimeout: 30 * time.Minute,
		Generator:   config.DefaultGeneratorConfig(),
	}
}

// SSHServer wraps a Wish SSH server for the layout viewer.
type SSHServer struct {
	config SSHServerConfig
	server *ssh.Server
	store  *storage.Store
	logger *log.Logger
}

// NewSSHServer creates a new SSH server with the given configuration.
func NewSSHServer(cfg SSHServerConfig, logger *log.Logger) (*SSHServer, error) {
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "mapgen-ssh",
		})
	}

	if err := cfg.Generator.Validate(); err != nil {
		return nil, fmt.Errorf("invalid generator config: %w", err)
	}

	var store *storage.Store
	if cfg.DBPath != "" {
		var err error
		store, err = storage.Open(cfg.DBPath)
		if err != nil {
			logger.Warn("could not open history database", "error", err)
			// Continue without history
			store = nil
		}
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
		hostKeyPath = filepath.Join(home, ".mapgen", "host_key")
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

// teaHandler creates a layout viewer for each SSH session.
func (s *SSHServer) teaHandler(sshSession ssh.Session) (tea.Model, []tea.ProgramOption) {
	if _, _, ok := sshSession.Pty(); !ok {
		s.logger.Warn("no PTY requested", "user", sshSession.User())
		return nil, nil
	}

	gen, err := s.newSessionGenerator()
	if err != nil {
		s.logger.Error("cannot create generator", "user", sshSession.User(), "error", err)
		return nil, nil
	}

	title := fmt.Sprintf("MAPGEN - %s", sshSession.User())
	model := NewViewerModel(gen, title, WithRecorder(s.recorder(sshSession.User())))

	return model, []tea.ProgramOption{
		tea.WithAltScreen(),
	}
}

// newSessionGenerator builds a generator seeded for a fresh session.
func (s *SSHServer) newSessionGenerator() (*mapgen.Generator, error) {
	mcfg, err := s.config.Generator.MapgenConfig()
	if err != nil {
		return nil, err
	}
	if mcfg.Seed == 0 {
		mcfg.Seed = uint64(time.Now().UnixNano())
	}
	return mapgen.New(mcfg, mapgen.WithLogger(s.logger))
}

// recorder saves every pass of a session to the history store.
func (s *SSHServer) recorder(user string) func(mapgen.Config, mapgen.Result) {
	return func(cfg mapgen.Config, res mapgen.Result) {
		if s.store == nil {
			return
		}
		id, err := s.store.SaveRun(storage.NewRunRecord(cfg, s.config.Generator.Archetype, res))
		if err != nil {
			s.logger.Warn("could not record run", "user", user, "error", err)
			return
		}
		s.logger.Debug("run recorded", "user", user, "id", id, "seed", res.Seed)
	}
}

// loggingMiddleware logs SSH session events.
func (s *SSHServer) loggingMiddleware(next ssh.Handler) ssh.Handler {
	return func(sshSession ssh.Session) {
		s.logger.Info("session started",
			"user", sshSession.User(),
			"remote", sshSession.RemoteAddr().String(),
		)
		next(sshSession)
		s.logger.Info("session ended",
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
