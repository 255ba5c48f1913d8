package ipc

import (
	"log/slog"

	"github.com/google/uuid"
)

// Handler processes a received envelope. Return nil to send no reply.
type Handler func(env Envelope) (*Envelope, error)

// Connection represents a single harness session talking to the bridge.
// Each wizard gets its own connection, identified after the hello handshake.
type Connection struct {
	transport Transport
	handlers  map[string]Handler
	Session   string
	Wizard    int64
}

func NewConnection(t Transport, handlers map[string]Handler) *Connection {
	if handlers == nil {
		handlers = make(map[string]Handler)
	}
	return &Connection{
		transport: t,
		handlers:  handlers,
		Session:   "s_" + uuid.NewString()[:8],
		Wizard:    -1,
	}
}

func (c *Connection) RegisterHandler(msgType string, handler Handler) {
	c.handlers[msgType] = handler
}

// ReadLoop blocks until the connection closes or errors. It owns the transport
// lifetime so callers don't need to track cleanup.
func (c *Connection) ReadLoop() {
	defer c.transport.Close()
	slog.Info("session opened", "session", c.Session, "transport", c.transport.Kind())

	for {
		env, err := c.transport.Read()
		if err != nil {
			slog.Info("connection read ended", "session", c.Session, "wizard", c.Wizard, "error", err)
			return
		}

		handler, ok := c.handlers[env.Type]
		if !ok {
			slog.Warn("no handler for message type", "session", c.Session, "type", env.Type)
			continue
		}

		resp, err := handler(env)
		if err != nil {
			slog.Error("handler error", "session", c.Session, "type", env.Type, "error", err)
			continue
		}

		if resp != nil {
			if err := c.transport.Write(*resp); err != nil {
				slog.Error("failed to send response", "session", c.Session, "type", resp.Type, "error", err)
				return
			}
			slog.Debug("sent response", "session", c.Session, "type", resp.Type, "wizard", c.Wizard)
		}
	}
}
