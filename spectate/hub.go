// Package spectate streams a running game to read-only websocket spectators
// and serves the latest snapshot and metrics over HTTP. Spectators cannot
// send input to the game.
package spectate

import (
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/plus3/snake/observability"
	"github.com/plus3/snake/snake"
)

// Message is the JSON frame pushed to spectators.
type Message struct {
	Type     string         `json:"type"`
	Outcome  string         `json:"outcome,omitempty"`
	Snapshot snake.Snapshot `json:"snapshot"`
}

// Hub fans scheduler frames out to connected spectators. It is a
// snake.System; register it on the scheduler that drives the game.
type Hub struct {
	engine *snake.Engine
	logger *slog.Logger

	mu      sync.Mutex
	clients map[*client]struct{}
}

func NewHub(engine *snake.Engine, logger *slog.Logger) *Hub {
	if logger == nil {
		logger = slog.Default()
	}
	return &Hub{
		engine:  engine,
		logger:  logger,
		clients: make(map[*client]struct{}),
	}
}

// Execute broadcasts the frame. Clients whose send buffer is full are dropped
// so a slow spectator never stalls the game loop.
func (h *Hub) Execute(frame *snake.TickFrame) {
	msg := Message{Type: "snapshot", Snapshot: frame.Snapshot}
	if frame.Outcome != snake.OutcomeSkipped {
		msg.Outcome = frame.Outcome.String()
	}
	h.broadcast(msg)
}

func (h *Hub) broadcast(msg Message) {
	data, err := json.Marshal(msg)
	if err != nil {
		h.logger.Error("encoding spectator frame", "error", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for c := range h.clients {
		select {
		case c.send <- data:
		default:
			h.logger.Warn("dropping slow spectator", "client", c.id)
			h.removeLocked(c)
		}
	}
}

// Clients returns the number of connected spectators.
func (h *Hub) Clients() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.clients)
}

// register adds c and queues the current state as its first message.
func (h *Hub) register(c *client) error {
	data, err := json.Marshal(Message{Type: "snapshot", Snapshot: h.engine.Snapshot()})
	if err != nil {
		return err
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	h.clients[c] = struct{}{}
	c.send <- data
	observability.Spectators.Inc()
	h.logger.Info("spectator connected", "client", c.id, "spectators", len(h.clients))
	return nil
}

func (h *Hub) unregister(c *client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.removeLocked(c)
}

func (h *Hub) removeLocked(c *client) {
	if _, ok := h.clients[c]; !ok {
		return
	}
	delete(h.clients, c)
	close(c.send)
	observability.Spectators.Dec()
	h.logger.Info("spectator disconnected", "client", c.id, "spectators", len(h.clients))
}
