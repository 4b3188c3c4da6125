// Package web serves the snake engine to browsers over WebSocket.
// Each connection owns one runner at a time; restarting replaces it.
package web

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"sync"
	"syscall"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/runner"
	"github.com/vovakirdan/tui-snake/internal/storage"
)

const (
	maxNameLen     = 16
	maxMessageSize = 512
)

// Config holds configuration for the WebSocket server.
type Config struct {
	// Address is the host:port to listen on (e.g., ":8080").
	Address string

	// Path is the WebSocket endpoint.
	Path string

	// Variant is the registered game every connection plays.
	Variant string

	// Game is the per-run engine config. Player and Seed are set per run.
	Game core.RuntimeConfig
}

// DefaultConfig returns a config with sensible defaults.
func DefaultConfig() Config {
	return Config{
		Address: ":8080",
		Path:    "/ws",
		Variant: "snake",
		Game:    core.DefaultConfig(),
	}
}

// Server accepts WebSocket clients and runs one game per connection.
type Server struct {
	config   Config
	store    *storage.Store
	logger   *log.Logger
	upgrader websocket.Upgrader
	http     *http.Server

	ctx    context.Context
	cancel context.CancelFunc

	mu      sync.Mutex
	conns   map[string]*Conn
	closing bool
	wg      sync.WaitGroup
}

// NewServer creates a WebSocket server. store may be nil, in which case runs
// are not journaled.
func NewServer(cfg Config, store *storage.Store, logger *log.Logger) (*Server, error) {
	if !registry.Exists(cfg.Variant) {
		return nil, fmt.Errorf("web: unknown variant %q", cfg.Variant)
	}
	if !cfg.Game.Bounds().Valid() {
		return nil, fmt.Errorf("web: invalid grid %dx%d with cell size %d",
			cfg.Game.WidthCells, cfg.Game.HeightCells, cfg.Game.CellSize)
	}
	if cfg.Path == "" {
		cfg.Path = "/ws"
	}
	if logger == nil {
		logger = log.NewWithOptions(os.Stderr, log.Options{
			ReportTimestamp: true,
			Prefix:          "snake-web",
		})
	}

	ctx, cancel := context.WithCancel(context.Background())
	srv := &Server{
		config: cfg,
		store:  store,
		logger: logger,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				// Browser clients may be served from anywhere
				return true
			},
			ReadBufferSize:    1024,
			WriteBufferSize:   4096,
			EnableCompression: true,
		},
		ctx:    ctx,
		cancel: cancel,
		conns:  make(map[string]*Conn),
	}
	srv.http = &http.Server{
		Addr:              cfg.Address,
		Handler:           srv.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}
	return srv, nil
}

// Handler returns the HTTP handler serving the WebSocket endpoint.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc(s.config.Path, s.handleWS)
	return mux
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("upgrade failed", "remote", r.RemoteAddr, "error", err)
		return
	}
	ws.EnableWriteCompression(true)
	ws.SetReadLimit(maxMessageSize)

	conn := NewConn(ws)
	if !s.track(conn) {
		conn.sendErrorAndClose("server is shutting down")
		return
	}
	defer s.untrack(conn)

	start := time.Now()
	s.logger.Info("client connected", "conn", conn.ID, "remote", r.RemoteAddr)

	sess := &session{srv: s, conn: conn}
	sess.readLoop()

	s.logger.Info("client disconnected",
		"conn", conn.ID,
		"remote", r.RemoteAddr,
		"duration", time.Since(start).Round(time.Second),
	)
}

// track registers a live connection. It returns false once shutdown began.
func (s *Server) track(c *Conn) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closing {
		return false
	}
	s.conns[c.ID] = c
	s.wg.Add(1)
	return true
}

func (s *Server) untrack(c *Conn) {
	s.mu.Lock()
	delete(s.conns, c.ID)
	s.mu.Unlock()
	c.Close()
	s.wg.Done()
}

// saveRun journals a finished run. Failures are logged and otherwise ignored.
func (s *Server) saveRun(cfg core.RuntimeConfig, res runner.Result) {
	if s.store == nil {
		return
	}
	rec := storage.NewRunRecord(string(res.RunID), res.GameID, cfg, res.Snapshot, res.Turns)
	if err := s.store.SaveRun(rec); err != nil {
		s.logger.Error("cannot save run", "run", res.RunID, "error", err)
		return
	}
	s.logger.Debug("run saved", "run", res.RunID, "score", res.Snapshot.Score, "ticks", res.Snapshot.Tick)
}

// ListenAndServe starts the HTTP server and blocks until shutdown.
func (s *Server) ListenAndServe() error {
	s.logger.Info("starting web server", "address", s.config.Address, "path", s.config.Path)

	// Setup signal handling for graceful shutdown
	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(done)

	errCh := make(chan error, 1)
	go func() {
		if err := s.http.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		s.cancel()
		return fmt.Errorf("web: %w", err)
	case <-done:
	}
	s.logger.Info("shutting down...")
	return s.Shutdown()
}

// Shutdown stops accepting clients, ends every run and closes every
// connection. It does not close the store.
func (s *Server) Shutdown() error {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	s.cancel()
	err := s.http.Shutdown(ctx)

	// Hijacked connections are not tracked by http.Server.
	s.mu.Lock()
	s.closing = true
	conns := make([]*Conn, 0, len(s.conns))
	for _, c := range s.conns {
		conns = append(conns, c)
	}
	s.mu.Unlock()
	for _, c := range conns {
		c.Close()
	}

	waited := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(waited)
	}()
	select {
	case <-waited:
	case <-ctx.Done():
		return errors.Join(err, ctx.Err())
	}
	return err
}

// Addr returns the server's listen address string.
func (s *Server) Addr() string {
	return s.config.Address
}

// playerName cleans a name sent by a client.
func playerName(name, fallback string) string {
	name = strings.TrimSpace(name)
	if name == "" {
		return fallback
	}
	if r := []rune(name); len(r) > maxNameLen {
		name = string(r[:maxNameLen])
	}
	return name
}
