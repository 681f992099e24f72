// Package server exposes the explainer as a line-oriented TCP service:
// each line a client sends is read as a JavaScript value and answered with
// its report. Telnet negotiation is stripped so telnet(1) and nc both work.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"sync"
	"sync/atomic"
	"time"

	"go.uber.org/zap"
)

// Banner is the first line sent to every client
const Banner = "looseeq: one JavaScript value per line, :help for commands."

// Options configures a Server
type Options struct {
	Addr        string
	IdleTimeout time.Duration // zero disables
	Verify      bool
	Logger      *zap.Logger
}

// Server is the line service
type Server struct {
	opts   Options
	logger *zap.Logger

	nextID int64
	mu     sync.Mutex
	ln     net.Listener
	wg     sync.WaitGroup
}

// NewServer creates a server; it does not listen until ListenAndServe or
// Serve is called
func NewServer(opts Options) *Server {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Server{opts: opts, logger: logger.Named("server")}
}

// ListenAndServe listens on the configured address and serves until ctx is
// cancelled
func (s *Server) ListenAndServe(ctx context.Context) error {
	ln, err := net.Listen("tcp", s.opts.Addr)
	if err != nil {
		return fmt.Errorf("listen: %w", err)
	}
	return s.Serve(ctx, ln)
}

// Serve accepts connections on ln until ctx is cancelled, then closes the
// listener and waits for open connections to finish
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	s.mu.Lock()
	if s.ln != nil {
		s.mu.Unlock()
		return fmt.Errorf("server already running")
	}
	s.ln = ln
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.ln = nil
		s.mu.Unlock()
	}()

	s.logger.Info("listening", zap.String("addr", ln.Addr().String()))

	ctx, cancel := context.WithCancel(ctx)
	defer cancel()
	stop := context.AfterFunc(ctx, func() { ln.Close() })
	defer stop()

	for {
		conn, err := ln.Accept()
		if err != nil {
			cancel()
			s.wg.Wait()
			if ctx.Err() != nil || errors.Is(err, net.ErrClosed) {
				s.logger.Info("server stopped")
				return nil
			}
			return fmt.Errorf("accept: %w", err)
		}

		id := atomic.AddInt64(&s.nextID, 1)
		c := NewConnection(id, NewTCPTransport(conn, s.opts.IdleTimeout), s.opts.Verify, s.logger)
		s.wg.Add(1)
		go func() {
			defer s.wg.Done()
			_ = c.Serve(ctx)
		}()
	}
}

// Addr returns the listening address, or nil when not serving
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.ln == nil {
		return nil
	}
	return s.ln.Addr()
}
