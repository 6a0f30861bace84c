package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lidetdev/lotto-backend/config"
	"github.com/lidetdev/lotto-backend/models"
	"github.com/lidetdev/lotto-backend/services"
	"github.com/lidetdev/lotto-backend/utils/logger"
)

type declareWinnerRequest struct {
	WinnerChatID string `json:"winner_chat_id"`
}

// DeclareWinner completes the room's active round. The winner is decided by
// the operator; passing a chat ID records it on the session.
func DeclareWinner(c *gin.Context) {
	roomID, err := strconv.ParseUint(c.Param("room_id"), 10, 64)
	if err != nil {
		fail(c, services.ErrRoomNotFound)
		return
	}

	var req declareWinnerRequest
	_ = c.ShouldBindJSON(&req) // body is optional

	var winnerID *uint
	if req.WinnerChatID != "" {
		winner, err := services.GetUserByChatID(config.DB, req.WinnerChatID)
		if err != nil {
			fail(c, err)
			return
		}
		winnerID = &winner.ID
	}

	session, err := services.DeclareWinner(config.DB, uint(roomID), winnerID)
	if err != nil {
		fail(c, err)
		return
	}

	room, err := services.GetRoom(config.DB, uint(roomID))
	if err != nil {
		fail(c, err)
		return
	}
	stats, err := services.RoundPrize(config.DB, room, session.ID, config.HouseCut())
	if err != nil {
		fail(c, err)
		return
	}

	services.WatchHub.Broadcast(services.RoomState{
		RoomID:    room.ID,
		SessionID: session.ID,
		Status:    models.SessionCompleted,
		Players:   stats.Players,
		Prize:     services.DisplayAmount(stats.Prize),
	})

	go notifyRoundResult(room.Name, session.ID, services.DisplayAmount(stats.Prize))

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Game cleared, new session ready.",
		"players": stats.Players,
		"prize":   services.DisplayAmount(stats.Prize),
	})
}

// notifyRoundResult tells every participant the round is over. Runs after
// commit; failures are logged and swallowed.
func notifyRoundResult(roomName string, sessionID uint, prize float64) {
	if notifier == nil {
		return
	}
	users, err := services.SessionParticipants(config.DB, sessionID)
	if err != nil {
		logger.Errorf("load participants for session %d: %v", sessionID, err)
		return
	}
	for _, user := range users {
		if err := notifier.SendRoundResult(user.TelegramChatID, roomName, prize); err != nil {
			logger.Errorf("round result delivery to %s failed: %v", user.TelegramChatID, err)
		}
	}
}
