package game

import (
	"encoding/json"
	"log"
	"net/http"
	"sync"

	"github.com/gorilla/websocket"
)

// TelemetryHub broadcasts world snapshots to any number of websocket
// observers. Observers are read-only; the simulation never blocks on a slow
// connection — stalled clients are dropped.
type TelemetryHub struct {
	upgrader websocket.Upgrader
	logger   *log.Logger

	mu    sync.Mutex
	conns map[*websocket.Conn]struct{}
}

// NewTelemetryHub creates a hub. A nil logger falls back to log.Default.
func NewTelemetryHub(logger *log.Logger) *TelemetryHub {
	if logger == nil {
		logger = log.Default()
	}
	return &TelemetryHub{
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin:     func(r *http.Request) bool { return true },
		},
		logger: logger,
		conns:  make(map[*websocket.Conn]struct{}),
	}
}

// Handle upgrades an HTTP request to a websocket observer connection.
func (h *TelemetryHub) Handle(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		h.logger.Printf("telemetry upgrade failed: %v", err)
		return
	}
	h.mu.Lock()
	h.conns[conn] = struct{}{}
	n := len(h.conns)
	h.mu.Unlock()
	h.logger.Printf("telemetry observer connected (%d total)", n)

	// Drain (and discard) client messages so pings are answered and closes
	// are noticed.
	go func() {
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				h.drop(conn)
				return
			}
		}
	}()
}

// Broadcast sends one snapshot to every observer.
func (h *TelemetryHub) Broadcast(snap WorldSnapshot) {
	data, err := json.Marshal(snap)
	if err != nil {
		h.logger.Printf("telemetry marshal failed: %v", err)
		return
	}

	h.mu.Lock()
	conns := make([]*websocket.Conn, 0, len(h.conns))
	for c := range h.conns {
		conns = append(conns, c)
	}
	h.mu.Unlock()

	for _, c := range conns {
		if err := c.WriteMessage(websocket.TextMessage, data); err != nil {
			h.drop(c)
		}
	}
}

// ObserverCount returns the number of connected observers.
func (h *TelemetryHub) ObserverCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.conns)
}

func (h *TelemetryHub) drop(conn *websocket.Conn) {
	h.mu.Lock()
	_, present := h.conns[conn]
	delete(h.conns, conn)
	h.mu.Unlock()
	if present {
		conn.Close()
		h.logger.Printf("telemetry observer disconnected")
	}
}
