package ipc

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/websocket"
)

var upgrader = websocket.Upgrader{
	ReadBufferSize:  4096,
	WriteBufferSize: 4096,
	CheckOrigin:     func(r *http.Request) bool { return true },
}

// NewWebsocketHandler upgrades each request and hands the transport to serve,
// which owns it until it returns.
func NewWebsocketHandler(serve func(Transport)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		conn, err := upgrader.Upgrade(w, r, nil)
		if err != nil {
			slog.Warn("websocket upgrade failed", "remote", r.RemoteAddr, "error", err)
			return
		}
		slog.Info("websocket connection accepted", "remote", r.RemoteAddr)
		serve(NewWebsocketTransport(conn))
	}
}
