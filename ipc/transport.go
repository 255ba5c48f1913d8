package ipc

import (
	"encoding/json"
	"fmt"
	"io"
	"sync"

	"github.com/gorilla/websocket"
)

// Transport carries envelopes between the bridge and one harness.
type Transport interface {
	Read() (Envelope, error)
	Write(env Envelope) error
	Close() error
	Kind() string
}

// streamTransport frames envelopes over a byte stream (unix socket, pipe).
type streamTransport struct {
	rw io.ReadWriteCloser
	mu sync.Mutex
}

func NewStreamTransport(rw io.ReadWriteCloser) Transport {
	return &streamTransport{rw: rw}
}

func (t *streamTransport) Read() (Envelope, error) { return ReadEnvelope(t.rw) }

func (t *streamTransport) Write(env Envelope) error {
	t.mu.Lock()
	defer t.mu.Unlock()
	return WriteEnvelope(t.rw, env)
}

func (t *streamTransport) Close() error { return t.rw.Close() }

func (t *streamTransport) Kind() string { return "stream" }

// wsTransport carries one JSON envelope per websocket message.
type wsTransport struct {
	conn *websocket.Conn
	mu   sync.Mutex // gorilla allows one concurrent writer
}

func NewWebsocketTransport(conn *websocket.Conn) Transport {
	conn.SetReadLimit(MaxFrameSize)
	return &wsTransport{conn: conn}
}

func (t *wsTransport) Read() (Envelope, error) {
	for {
		kind, payload, err := t.conn.ReadMessage()
		if err != nil {
			return Envelope{}, fmt.Errorf("read message: %w", err)
		}
		if kind != websocket.TextMessage && kind != websocket.BinaryMessage {
			continue
		}
		return decodeEnvelope(payload)
	}
}

func (t *wsTransport) Write(env Envelope) error {
	payload, err := json.Marshal(env)
	if err != nil {
		return fmt.Errorf("marshal envelope: %w", err)
	}
	t.mu.Lock()
	defer t.mu.Unlock()
	if err := t.conn.WriteMessage(websocket.TextMessage, payload); err != nil {
		return fmt.Errorf("write message: %w", err)
	}
	return nil
}

func (t *wsTransport) Close() error {
	t.mu.Lock()
	_ = t.conn.WriteMessage(websocket.CloseMessage, websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
	t.mu.Unlock()
	return t.conn.Close()
}

func (t *wsTransport) Kind() string { return "websocket" }
