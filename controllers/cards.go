package controllers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/lidetdev/lotto-backend/config"
	"github.com/lidetdev/lotto-backend/models"
	"github.com/lidetdev/lotto-backend/services"
)

// BuyCard purchases a numbered card in a room's active round for the
// authenticated caller.
func BuyCard(c *gin.Context) {
	roomID, err := strconv.ParseUint(c.Param("room_id"), 10, 64)
	if err != nil {
		fail(c, services.ErrRoomNotFound)
		return
	}
	cardNumber, err := strconv.Atoi(c.Param("card"))
	if err != nil {
		fail(c, services.ErrInvalidCard)
		return
	}

	user := currentUser(c)
	result, err := services.BuyCard(config.DB, user.ID, uint(roomID), cardNumber, config.HouseCut())
	if err != nil {
		fail(c, err)
		return
	}

	services.WatchHub.Broadcast(services.RoomState{
		RoomID:    uint(roomID),
		SessionID: result.SessionID,
		Status:    models.SessionActive,
		Players:   result.Stats.Players,
		Prize:     services.DisplayAmount(result.Stats.Prize),
	})

	c.JSON(http.StatusOK, gin.H{
		"success":     true,
		"message":     fmt.Sprintf("Purchased card %d for %s", result.CardNumber, result.RoomName),
		"new_balance": services.DisplayAmount(result.NewBalance),
		"card_number": result.CardNumber,
		"players":     result.Stats.Players,
		"prize":       services.DisplayAmount(result.Stats.Prize),
		"bet":         result.Bet,
	})
}
