package app

import (
	"encoding/json"
	"log/slog"
	"sync"
)

// MoveEvent is one stone placement pushed to watchers of a session.
type MoveEvent struct {
	Session  string `json:"session"`
	X        int    `json:"x"`
	Y        int    `json:"y"`
	Side     string `json:"side"`
	ByEngine bool   `json:"byEngine"`
}

type watcher struct {
	session string
	send    chan []byte
}

// Hub fans out move events to the websocket watchers of each session.
// Slow watchers drop events rather than stall the match.
type Hub struct {
	mu       sync.Mutex
	watchers map[*watcher]struct{}
}

func NewHub() *Hub {
	return &Hub{watchers: make(map[*watcher]struct{})}
}

func (h *Hub) Broadcast(sessionID string, event MoveEvent) {
	data, err := json.Marshal(event)
	if err != nil {
		slog.Error("failed to marshal move event", "session", sessionID, "err", err)
		return
	}

	h.mu.Lock()
	defer h.mu.Unlock()
	for w := range h.watchers {
		if w.session != sessionID {
			continue
		}
		select {
		case w.send <- data:
		default:
		}
	}
}

func (h *Hub) register(w *watcher) {
	h.mu.Lock()
	h.watchers[w] = struct{}{}
	h.mu.Unlock()
}

func (h *Hub) unregister(w *watcher) {
	h.mu.Lock()
	if _, ok := h.watchers[w]; ok {
		delete(h.watchers, w)
		close(w.send)
	}
	h.mu.Unlock()
}

func (h *Hub) watcherCount() int {
	h.mu.Lock()
	defer h.mu.Unlock()
	return len(h.watchers)
}
