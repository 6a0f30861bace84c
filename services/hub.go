package services

import (
	"encoding/json"
	"sync"

	"github.com/lidetdev/lotto-backend/utils/logger"
)

// RoomState is pushed to every watcher of a room when its round changes.
type RoomState struct {
	RoomID    uint    `json:"room_id"`
	SessionID uint    `json:"session_id"`
	Status    string  `json:"status"`
	Players   int64   `json:"players"`
	Prize     float64 `json:"prize"`
}

// Hub fans round-state updates out to websocket watchers, grouped by room.
type Hub struct {
	mu       sync.RWMutex
	watchers map[uint]map[*Client]struct{}
}

// WatchHub is the process-wide hub.
var WatchHub = NewHub()

func NewHub() *Hub {
	return &Hub{watchers: make(map[uint]map[*Client]struct{})}
}

func (h *Hub) Join(roomID uint, c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.watchers[roomID] == nil {
		h.watchers[roomID] = make(map[*Client]struct{})
	}
	h.watchers[roomID][c] = struct{}{}
}

func (h *Hub) Leave(roomID uint, c *Client) {
	h.mu.Lock()
	defer h.mu.Unlock()
	if set, ok := h.watchers[roomID]; ok {
		delete(set, c)
		if len(set) == 0 {
			delete(h.watchers, roomID)
		}
	}
	c.Close()
}

// Broadcast sends the state to every watcher of its room. Slow consumers
// are dropped rather than blocking the caller.
func (h *Hub) Broadcast(state RoomState) {
	payload, err := json.Marshal(state)
	if err != nil {
		logger.Errorf("marshal room state: %v", err)
		return
	}

	h.mu.RLock()
	defer h.mu.RUnlock()
	for c := range h.watchers[state.RoomID] {
		select {
		case c.send <- payload:
		default:
			// Slow watcher; skip this update rather than block.
			logger.Debugf("room %d: dropping update for slow watcher", state.RoomID)
		}
	}
}
