package server

import (
	"context"
	"errors"
	"io"
	"net"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Connection is one client of the line service
type Connection struct {
	ID          int64
	transport   Transport
	session     Session
	connectedAt time.Time
	logger      *zap.Logger
}

// NewConnection creates a new connection over a transport
func NewConnection(id int64, transport Transport, verify bool, logger *zap.Logger) *Connection {
	return &Connection{
		ID:          id,
		transport:   transport,
		session:     Session{Verify: verify},
		connectedAt: time.Now(),
		logger:      logger.With(zap.Int64("conn", id), zap.String("remote", transport.RemoteAddr())),
	}
}

// Serve runs the read-eval-write loop until the client leaves, the
// transport fails or ctx is cancelled. The transport is closed on return.
func (c *Connection) Serve(ctx context.Context) error {
	defer c.transport.Close()

	// Unblock ReadLine when the server shuts down
	stop := context.AfterFunc(ctx, func() { c.transport.Close() })
	defer stop()

	c.logger.Debug("connection opened")
	if err := c.transport.WriteLine(Banner); err != nil {
		return err
	}

	for {
		line, err := c.transport.ReadLine()
		if err != nil {
			return c.finish(ctx, err)
		}

		out, exit := c.session.Handle(line)
		if exit {
			return c.finish(ctx, nil)
		}
		if out == "" {
			continue
		}
		for _, l := range strings.Split(out, "\n") {
			if err := c.transport.WriteLine(l); err != nil {
				return c.finish(ctx, err)
			}
		}
	}
}

// finish logs how the connection ended. Client disconnects and shutdown
// are normal and reported as nil.
func (c *Connection) finish(ctx context.Context, err error) error {
	var netErr net.Error
	switch {
	case err == nil, errors.Is(err, io.EOF), ctx.Err() != nil:
		err = nil
	case errors.As(err, &netErr) && netErr.Timeout():
		c.logger.Info("connection idle, closing")
		err = nil
	default:
		c.logger.Warn("connection failed", zap.Error(err))
	}
	c.logger.Debug("connection closed", zap.Duration("duration", time.Since(c.connectedAt)))
	return err
}
