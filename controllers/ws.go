package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"
	"github.com/lidetdev/lotto-backend/config"
	"github.com/lidetdev/lotto-backend/services"
	"github.com/lidetdev/lotto-backend/utils/logger"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		// TODO: restrict to the frontend origin in production
		return true
	},
}

// WatchRoom upgrades to a websocket streaming round-state updates for one
// room (player count, prize, status) as purchases and closures happen.
func WatchRoom(c *gin.Context) {
	roomID, err := strconv.ParseUint(c.Param("room_id"), 10, 64)
	if err != nil {
		fail(c, services.ErrRoomNotFound)
		return
	}
	if _, err := services.GetRoom(config.DB, uint(roomID)); err != nil {
		fail(c, err)
		return
	}

	conn, err := upgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		logger.Errorf("ws upgrade: %v", err)
		return
	}

	services.NewClient(services.WatchHub, uint(roomID), conn)
}
