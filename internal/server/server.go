// Package server implements serve mode: a WebSocket endpoint that lets
// external editors run assemblies against the live engine context and be
// notified when a content hot-reload changes the catalogs.
//
// The protocol is JSON envelopes {type, payload}. Clients send "assemble"
// and "catalog" requests; the server pushes "reload" to every client after
// a reload tick bumps the catalog generation.
package server

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/gorilla/websocket"

	"github.com/novaengine/shipwright/internal/engine"
	"github.com/novaengine/shipwright/internal/output"
	"github.com/novaengine/shipwright/internal/report"
	"github.com/novaengine/shipwright/internal/ship"
)

// shutdownGrace bounds how long Run waits for in-flight requests after
// its context is cancelled.
const shutdownGrace = 5 * time.Second

// Server owns the listener, the connected clients, and the reload poll
// loop. One Server serves one engine context.
type Server struct {
	engine *engine.Context
	addr   string
	logger *log.Logger

	upgrader websocket.Upgrader

	mu      sync.Mutex
	clients map[*client]struct{}
}

// New returns a server for the given initialized engine context.
func New(ectx *engine.Context, addr string) *Server {
	return &Server{
		engine: ectx,
		addr:   addr,
		logger: output.ScopedLogger("server", addr),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			// Editors connect from local tooling, not browsers.
			CheckOrigin: func(*http.Request) bool { return true },
		},
		clients: make(map[*client]struct{}),
	}
}

// Handler returns the HTTP mux serving the websocket endpoint and a
// health probe.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleWS)
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return mux
}

// Run serves until the context is cancelled, polling for content reloads
// at the configured interval. It returns nil on graceful shutdown.
func (s *Server) Run(ctx context.Context) error {
	httpServer := &http.Server{
		Addr:              s.addr,
		Handler:           s.Handler(),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go s.reloadLoop(ctx)

	errCh := make(chan error, 1)
	go func() {
		errCh <- httpServer.ListenAndServe()
	}()

	s.logger.Info("serving", "addr", s.addr)

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		err := httpServer.Shutdown(shutdownCtx)
		s.closeClients()
		s.logger.Info("stopped")
		return err
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}

// reloadLoop polls the content tree and broadcasts the new generation
// after any rebuild.
func (s *Server) reloadLoop(ctx context.Context) {
	interval := s.engine.Config().Reload.Interval
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			changed, _, err := s.engine.ReloadTick(ctx)
			if err != nil {
				if ctx.Err() == nil {
					s.logger.Warn("reload tick failed", "error", err)
				}
				continue
			}
			if changed {
				s.Broadcast(Envelope{
					Type:    TypeReload,
					Payload: mustPayload(ReloadPayload{Generation: s.engine.Generation()}),
				})
			}
		}
	}
}

func (s *Server) handleWS(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.logger.Warn("websocket upgrade failed", "error", err)
		return
	}

	c := &client{conn: conn}
	s.mu.Lock()
	s.clients[c] = struct{}{}
	s.mu.Unlock()
	s.logger.Debug("client connected", "remote", conn.RemoteAddr())

	defer func() {
		s.drop(c)
		s.logger.Debug("client disconnected", "remote", conn.RemoteAddr())
	}()

	for {
		var env Envelope
		if err := conn.ReadJSON(&env); err != nil {
			return
		}
		if err := s.dispatch(c, &env); err != nil {
			return
		}
	}
}

// dispatch answers one client envelope. A write failure drops the client.
func (s *Server) dispatch(c *client, env *Envelope) error {
	switch env.Type {
	case TypeAssemble:
		var payload AssemblePayload
		if err := json.Unmarshal(env.Payload, &payload); err != nil {
			return c.send(errorEnvelope("assemble payload is not valid JSON"))
		}
		result := s.engine.Assembler().Assemble(ship.AssemblyRequest{
			HullID:          payload.HullID,
			SlotAssignments: payload.Assignments,
		})
		return c.send(Envelope{
			Type:    TypeResult,
			Payload: mustPayload(ResultPayload{Report: report.JSON(result)}),
		})

	case TypeCatalog:
		return c.send(Envelope{
			Type: TypeCatalog,
			Payload: mustPayload(CatalogPayload{
				Components: s.engine.Components().Len(),
				Hulls:      s.engine.Hulls().Len(),
				Generation: s.engine.Generation(),
			}),
		})

	default:
		return c.send(errorEnvelope("unknown message type '" + env.Type + "'"))
	}
}

// Broadcast sends an envelope to every connected client, pruning clients
// whose connection has died.
func (s *Server) Broadcast(env Envelope) {
	s.mu.Lock()
	clients := make([]*client, 0, len(s.clients))
	for c := range s.clients {
		clients = append(clients, c)
	}
	s.mu.Unlock()

	for _, c := range clients {
		if err := c.send(env); err != nil {
			s.drop(c)
		}
	}
}

// ClientCount returns the number of connected clients.
func (s *Server) ClientCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.clients)
}

func (s *Server) drop(c *client) {
	s.mu.Lock()
	_, ok := s.clients[c]
	delete(s.clients, c)
	s.mu.Unlock()
	if ok {
		_ = c.conn.Close()
	}
}

func (s *Server) closeClients() {
	s.mu.Lock()
	clients := make([]*client, 0, len(s.clients))
	for c := range s.clients {
		clients = append(clients, c)
	}
	s.clients = make(map[*client]struct{})
	s.mu.Unlock()

	for _, c := range clients {
		_ = c.conn.Close()
	}
}

// client is one websocket connection. The mutex serializes writes; reads
// happen only on the connection's handler goroutine.
type client struct {
	conn *websocket.Conn
	mu   sync.Mutex
}

func (c *client) send(env Envelope) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.conn.WriteJSON(&env)
}
