// Package server owns the lifecycle of the embedded redirect server.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"sync"

	"go.uber.org/zap"

	"winklink/config"
	"winklink/handlers"
	"winklink/ports"
	"winklink/storage"
)

// ErrServerStart indicates the redirect server could not be started.
var ErrServerStart = errors.New("redirect server failed to start")

// Server manages a single redirect server instance. It is either stopped or
// running; at most one listener exists at a time. The server starts lazily
// via EnsureRunning and stops via Stop, both safe for concurrent use.
type Server struct {
	cfg    *config.Config
	store  storage.Storage
	logger *zap.Logger

	mu      sync.Mutex
	running bool
	gen     uint64 // instance generation, guards against stale serve goroutines
	port    int
	httpSrv *http.Server
}

// New creates a stopped Server around the given store.
func New(cfg *config.Config, store storage.Storage, logger *zap.Logger) (*Server, error) {
	if cfg == nil {
		return nil, errors.New("config cannot be nil")
	}
	if store == nil {
		return nil, errors.New("store cannot be nil")
	}
	if logger == nil {
		return nil, errors.New("logger cannot be nil")
	}

	return &Server{cfg: cfg, store: store, logger: logger}, nil
}

// EnsureRunning starts the redirect server if it is not already running and
// returns the bound port. Concurrent callers coordinate on the internal
// mutex, so exactly one instance is ever started and every caller observes
// the same port. On a start failure no partial state is left behind and the
// server remains stopped.
func (s *Server) EnsureRunning() (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.running {
		return s.port, nil
	}

	ln, err := ports.Listen(s.cfg.BindHost)
	if err != nil {
		return 0, fmt.Errorf("%w: %v", ErrServerStart, err)
	}

	handler, err := handlers.NewRedirectHandler(s.store, s.cfg, s.logger)
	if err != nil {
		ln.Close()
		return 0, fmt.Errorf("%w: %v", ErrServerStart, err)
	}

	srv := &http.Server{Handler: handlers.NewRouter(handler, s.cfg, s.logger)}

	s.gen++
	s.running = true
	s.port = ports.Port(ln)
	s.httpSrv = srv

	go s.serve(srv, ln, s.gen)

	s.logger.Info("Redirect server started", zap.Int("port", s.port))
	return s.port, nil
}

// serve runs the accept loop. If the loop dies for any reason other than an
// explicit Stop, the instance is marked stopped so a later EnsureRunning can
// start a fresh one on a new port.
func (s *Server) serve(srv *http.Server, ln net.Listener, gen uint64) {
	err := srv.Serve(ln)

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.gen != gen || !s.running {
		// Stopped explicitly, or a newer instance owns the state now.
		return
	}

	s.running = false
	s.port = 0
	s.httpSrv = nil

	if err != nil && !errors.Is(err, http.ErrServerClosed) {
		s.logger.Error("Accept loop terminated unexpectedly", zap.Error(err))
	}
}

// Stop shuts the running server down and releases its port. It is a no-op
// when the server is already stopped. The listener closes immediately;
// in-flight handlers get a short bounded drain window and are abandoned
// after it elapses, so Stop never blocks indefinitely.
func (s *Server) Stop() error {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return nil
	}

	srv := s.httpSrv
	port := s.port

	s.running = false
	s.port = 0
	s.httpSrv = nil
	s.mu.Unlock()

	// Shutdown closes the listener immediately, releasing the port, then
	// waits out the drain window for in-flight handlers.
	ctx, cancel := context.WithTimeout(context.Background(), s.cfg.ShutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		s.logger.Warn("Drain window elapsed, forcing close", zap.Error(err))
		return srv.Close()
	}

	s.logger.Info("Redirect server stopped", zap.Int("port", port))
	return nil
}

// Running reports whether a server instance is currently accepting requests.
func (s *Server) Running() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.running
}

// Port returns the bound port, or 0 when the server is stopped.
func (s *Server) Port() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.port
}
