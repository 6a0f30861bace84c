package services

import (
	"sync"

	"github.com/gorilla/websocket"
	"github.com/lidetdev/lotto-backend/utils/logger"
)

// Client is one websocket watcher of a room.
type Client struct {
	roomID uint
	conn   *websocket.Conn
	send   chan []byte
	once   sync.Once
}

// NewClient registers the connection with the hub and starts its pumps.
func NewClient(hub *Hub, roomID uint, conn *websocket.Conn) *Client {
	c := &Client{
		roomID: roomID,
		conn:   conn,
		send:   make(chan []byte, 16),
	}
	hub.Join(roomID, c)
	go c.writePump()
	go c.readPump(hub)
	return c
}

func (c *Client) Close() {
	c.once.Do(func() {
		close(c.send)
		c.conn.Close()
	})
}

// readPump discards incoming frames; reading is only needed to notice the
// peer going away.
func (c *Client) readPump(hub *Hub) {
	defer hub.Leave(c.roomID, c)
	for {
		if _, _, err := c.conn.ReadMessage(); err != nil {
			if !websocket.IsCloseError(err, websocket.CloseNormalClosure, websocket.CloseGoingAway) {
				logger.Debugf("room %d watcher read error: %v", c.roomID, err)
			}
			return
		}
	}
}

func (c *Client) writePump() {
	defer c.conn.Close()
	for msg := range c.send {
		if err := c.conn.WriteMessage(websocket.TextMessage, msg); err != nil {
			logger.Debugf("room %d watcher write error: %v", c.roomID, err)
			return
		}
	}
}
