// Package control exposes the mixer over a websocket endpoint. Every
// connection can issue commands and receives a live stream of change
// notifications.
package control

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"sync"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/foxseedlab/mazerun/internal/control"
	"github.com/foxseedlab/mazerun/internal/mixer"
)

const maxMessageSize = 16 * 1024

type Server struct {
	addr    string
	mixer   mixer.Mixer
	handler *control.Handler

	upgrader websocket.Upgrader
	server   *http.Server
}

func NewServer(addr string, m mixer.Mixer) *Server {
	s := &Server{
		addr:    addr,
		mixer:   m,
		handler: control.NewHandler(m),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
	s.server = &http.Server{Addr: addr, Handler: s.Handler()}
	return s
}

// Handler returns the HTTP handler serving the websocket endpoint at /ws.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("/ws", s.handleConn)
	return mux
}

// Run serves until Shutdown is called or the listener fails.
func (s *Server) Run() error {
	slog.Info("control server listening", "addr", s.addr)
	if err := s.server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

func (s *Server) Shutdown(ctx context.Context) error {
	return s.server.Shutdown(ctx)
}

// replyMessage and eventMessage wrap the transport-agnostic payloads with a
// frame type so clients can tell command replies from pushed notifications.
type replyMessage struct {
	Type string `json:"type"`
	control.Response
}

type eventMessage struct {
	Type string `json:"type"`
	control.Event
}

func (s *Server) handleConn(w http.ResponseWriter, r *http.Request) {
	conn, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		slog.Error("websocket upgrade failed", "error", err, "remote", r.RemoteAddr)
		return
	}
	connID := uuid.NewString()
	slog.Info("control client connected", "conn_id", connID, "remote", r.RemoteAddr)
	conn.SetReadLimit(maxMessageSize)

	// Writes come from two goroutines: the read loop answering commands and
	// the backend goroutine pushing notifications. Serialize them.
	var writeMu sync.Mutex
	writeJSON := func(v any) error {
		writeMu.Lock()
		defer writeMu.Unlock()
		return conn.WriteJSON(v)
	}

	cancel := control.Watch(s.mixer, func(ev control.Event) {
		if err := writeJSON(eventMessage{Type: "event", Event: ev}); err != nil {
			slog.Warn("failed to push event to control client", "error", err, "conn_id", connID, "kind", ev.Kind)
		}
	})
	defer func() {
		cancel()
		_ = conn.Close()
		slog.Info("control client disconnected", "conn_id", connID)
	}()

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			if websocket.IsUnexpectedCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				slog.Warn("control read failed", "error", err, "conn_id", connID)
			}
			return
		}
		var req control.Request
		if err := json.Unmarshal(raw, &req); err != nil {
			slog.Warn("control request is not valid JSON", "error", err, "conn_id", connID)
			if err := writeJSON(replyMessage{Type: "reply", Response: control.Response{Error: "request is not valid JSON"}}); err != nil {
				return
			}
			continue
		}
		resp := s.handler.Handle(req)
		if err := writeJSON(replyMessage{Type: "reply", Response: resp}); err != nil {
			slog.Warn("failed to write control reply", "error", err, "conn_id", connID, "op", req.Op)
			return
		}
	}
}
