package ws

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/vovakirdan/ledpong/internal/engine"
)

const (
	writeWait       = 5 * time.Second
	pongWait        = 60 * time.Second
	pingPeriod      = pongWait * 9 / 10
	sendBufferSize  = 32
	maxMessageBytes = 512
)

// spectator is one connected websocket client.
type spectator struct {
	id     uuid.UUID
	conn   *websocket.Conn
	format string
	send   chan []byte
	done   chan struct{}
	once   sync.Once
}

// enqueue queues a message without blocking. When the buffer is full the
// oldest message is dropped.
func (s *spectator) enqueue(msg []byte) {
	select {
	case <-s.done:
		return
	default:
	}

	select {
	case s.send <- msg:
	default:
		select {
		case <-s.send:
		default:
		}
		select {
		case s.send <- msg:
		default:
		}
	}
}

func (s *spectator) close() {
	s.once.Do(func() { close(s.done) })
}

// Hub fans out game updates to websocket spectators. Spectators are
// read-only: anything they send is discarded.
type Hub struct {
	upgrader websocket.Upgrader
	logger   *log.Logger

	mu         sync.RWMutex
	spectators map[uuid.UUID]*spectator
	latest     *Message
}

// NewHub creates a hub. Origins are not checked; the stream is public.
func NewHub(logger *log.Logger) *Hub {
	return &Hub{
		upgrader:   websocket.Upgrader{CheckOrigin: func(r *http.Request) bool { return true }},
		logger:     logger,
		spectators: make(map[uuid.UUID]*spectator),
	}
}

// Count returns the number of connected spectators.
func (h *Hub) Count() int {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return len(h.spectators)
}

// Latest returns the last published message, if any.
func (h *Hub) Latest() (Message, bool) {
	h.mu.RLock()
	defer h.mu.RUnlock()
	if h.latest == nil {
		return Message{}, false
	}
	return *h.latest, true
}

// Publish sends a step to every spectator. It is safe to use as
// engine.Runner.OnStep.
func (h *Hub) Publish(step engine.Step) {
	msg := NewMessage(step)

	h.mu.Lock()
	h.latest = &msg
	targets := make([]*spectator, 0, len(h.spectators))
	for _, s := range h.spectators {
		targets = append(targets, s)
	}
	h.mu.Unlock()

	encoded := make(map[string][]byte, 2)
	for _, s := range targets {
		data, ok := encoded[s.format]
		if !ok {
			var err error
			data, err = msg.Encode(s.format)
			if err != nil {
				h.warn("failed to encode message", "format", s.format, "err", err)
				continue
			}
			encoded[s.format] = data
		}
		s.enqueue(data)
	}
}

// ServeHTTP upgrades the request and streams updates until the client
// goes away.
func (h *Hub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	format := r.URL.Query().Get("format")
	if format == "" {
		format = FormatJSON
	}
	if format != FormatJSON && format != FormatProto {
		http.Error(w, fmt.Sprintf("unknown format %q", format), http.StatusBadRequest)
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.warn("websocket upgrade failed", "remote", r.RemoteAddr, "err", err)
		return
	}

	s := &spectator{
		id:     uuid.New(),
		conn:   conn,
		format: format,
		send:   make(chan []byte, sendBufferSize),
		done:   make(chan struct{}),
	}
	h.register(s)
	if h.logger != nil {
		h.logger.Info("spectator connected", "id", s.id, "remote", r.RemoteAddr, "format", format)
	}

	go h.writePump(s)
	h.readPump(s)
}

func (h *Hub) register(s *spectator) {
	h.mu.Lock()
	h.spectators[s.id] = s
	latest := h.latest
	h.mu.Unlock()

	// New spectators get the current state right away.
	if latest != nil {
		if data, err := latest.Encode(s.format); err == nil {
			s.enqueue(data)
		}
	}
}

func (h *Hub) unregister(s *spectator) {
	h.mu.Lock()
	delete(h.spectators, s.id)
	h.mu.Unlock()
	s.close()
}

// readPump discards incoming messages and notices disconnects.
func (h *Hub) readPump(s *spectator) {
	defer func() {
		h.unregister(s)
		s.conn.Close()
		if h.logger != nil {
			h.logger.Info("spectator disconnected", "id", s.id)
		}
	}()

	s.conn.SetReadLimit(maxMessageBytes)
	//nolint:errcheck // Deadline errors surface on the next read
	s.conn.SetReadDeadline(time.Now().Add(pongWait))
	s.conn.SetPongHandler(func(string) error {
		return s.conn.SetReadDeadline(time.Now().Add(pongWait))
	})
	for {
		if _, _, err := s.conn.ReadMessage(); err != nil {
			return
		}
	}
}

// writePump sends queued messages and keepalive pings.
func (h *Hub) writePump(s *spectator) {
	ticker := time.NewTicker(pingPeriod)
	defer func() {
		ticker.Stop()
		s.conn.Close()
	}()

	msgType := websocket.TextMessage
	if s.format == FormatProto {
		msgType = websocket.BinaryMessage
	}

	for {
		select {
		case <-s.done:
			//nolint:errcheck // Best-effort close frame
			s.conn.WriteControl(websocket.CloseMessage,
				websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""), time.Now().Add(writeWait))
			return
		case msg := <-s.send:
			//nolint:errcheck // Write errors are reported by WriteMessage
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(msgType, msg); err != nil {
				return
			}
		case <-ticker.C:
			//nolint:errcheck // Write errors are reported by WriteMessage
			s.conn.SetWriteDeadline(time.Now().Add(writeWait))
			if err := s.conn.WriteMessage(websocket.PingMessage, nil); err != nil {
				return
			}
		}
	}
}

// Close disconnects every spectator.
func (h *Hub) Close() {
	h.mu.Lock()
	spectators := h.spectators
	h.spectators = make(map[uuid.UUID]*spectator)
	h.mu.Unlock()

	for _, s := range spectators {
		s.close()
	}
}

func (h *Hub) warn(msg string, kv ...any) {
	if h.logger != nil {
		h.logger.Warn(msg, kv...)
	}
}

// Handler returns the HTTP routes of the spectator server: the websocket
// stream at /ws, the latest message at /snapshot and a health check.
func (h *Hub) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/ws", h)
	mux.HandleFunc("/snapshot", func(w http.ResponseWriter, r *http.Request) {
		msg, ok := h.Latest()
		if !ok {
			http.Error(w, "no game running", http.StatusServiceUnavailable)
			return
		}
		data, err := msg.Encode(FormatJSON)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		w.Header().Set("Content-Type", "application/json")
		//nolint:errcheck // Client may be gone
		w.Write(data)
	})
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		fmt.Fprintf(w, "ok %d\n", h.Count())
	})
	return mux
}

// ListenAndServe serves the spectator routes on addr until ctx is
// cancelled.
func (h *Hub) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           h.Handler(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if h.logger != nil {
			h.logger.Info("starting spectator server", "address", addr)
		}
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("ws: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	h.Close()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
