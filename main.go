package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/nstehr/vimy/wizard-core/agent"
	"github.com/nstehr/vimy/wizard-core/config"
	"github.com/nstehr/vimy/wizard-core/ipc"
)

const banner = `
 __      __.__                         .___
/  \    /  \__|____________ _______  __| _/
\   \/\/   /  \___   /\__  \\_  __ \/ __ |
 \        /|  |/    /  / __ \|  | \/ /_/ |
  \__/\  / |__/_____ \(____  /__|  \____ |
       \/           \/     \/           \/

Lane-Disciplined Arena Wizard`

func main() {
	var (
		cfgPath    string
		socketPath string
		wsAddr     string
		logLevel   string
	)
	flag.StringVar(&cfgPath, "config", "", "tuning file (yaml); defaults when empty")
	flag.StringVar(&socketPath, "socket", "/tmp/wizard.sock", "unix socket the harness connects to")
	flag.StringVar(&wsAddr, "ws", "", "optional websocket listen address, e.g. :8080")
	flag.StringVar(&logLevel, "log-level", "info", "debug, info, warn or error")
	flag.Parse()

	var level slog.Level
	if err := level.UnmarshalText([]byte(logLevel)); err != nil {
		fmt.Fprintf(os.Stderr, "invalid -log-level %q\n", logLevel)
		os.Exit(2)
	}
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: level,
	}))
	slog.SetDefault(logger)

	fmt.Println(banner)

	cfg, err := config.Load(cfgPath)
	if err != nil {
		slog.Error("failed to load config", "path", cfgPath, "error", err)
		os.Exit(1)
	}
	slog.Info("starting wizard", "config", cfgPath, "lowLife", cfg.Tuning.LowLifeRatio, "skills", len(cfg.Skills()))

	// Unix sockets leave behind a file on unclean shutdown; remove it so we can rebind.
	if err := os.RemoveAll(socketPath); err != nil {
		slog.Error("failed to clean up socket", "path", socketPath, "error", err)
		os.Exit(1)
	}

	listener, err := net.Listen("unix", socketPath)
	if err != nil {
		slog.Error("failed to listen on socket", "path", socketPath, "error", err)
		os.Exit(1)
	}
	defer listener.Close()
	defer os.Remove(socketPath)

	slog.Info("listening on domain socket", "path", socketPath)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	go func() {
		for {
			conn, err := listener.Accept()
			if err != nil {
				select {
				case <-ctx.Done():
					return
				default:
					slog.Error("failed to accept connection", "error", err)
					continue
				}
			}
			slog.Info("new connection accepted")
			go serve(ipc.NewStreamTransport(conn), cfg)
		}
	}()

	var srv *http.Server
	if wsAddr != "" {
		mux := http.NewServeMux()
		mux.Handle("/ws", ipc.NewWebsocketHandler(func(t ipc.Transport) { serve(t, cfg) }))
		srv = &http.Server{Addr: wsAddr, Handler: mux, ReadHeaderTimeout: 5 * time.Second}
		go func() {
			slog.Info("listening for websocket harnesses", "addr", wsAddr, "path", "/ws")
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				slog.Error("websocket server failed", "error", err)
				stop()
			}
		}()
	}

	<-ctx.Done()
	slog.Info("shutting down")
	if srv != nil {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
		defer cancel()
		_ = srv.Shutdown(shutdownCtx)
	}
}

// serve runs one wizard for the lifetime of a harness connection.
func serve(t ipc.Transport, cfg config.Config) {
	a, err := agent.New(cfg)
	if err != nil {
		slog.Error("failed to create agent", "error", err)
		t.Close()
		return
	}
	c := ipc.NewConnection(t, nil)
	c.RegisterHandler(ipc.TypeHello, func(env ipc.Envelope) (*ipc.Envelope, error) {
		resp, err := a.HandleHello(env)
		c.Wizard = a.Wizard
		return resp, err
	})
	c.RegisterHandler(ipc.TypeTick, a.HandleTick)
	c.ReadLoop()
}
