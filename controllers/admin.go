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

// AdminPanel renders rooms and users for the operator.
func AdminPanel(c *gin.Context) {
	rooms, err := services.ListRooms(config.DB)
	if err != nil {
		fail(c, err)
		return
	}
	var users []models.User
	if err := config.DB.Order("id").Find(&users).Error; err != nil {
		fail(c, err)
		return
	}

	c.HTML(http.StatusOK, "admin.html", gin.H{
		"rooms": rooms,
		"users": users,
	})
}

// AdminSetBalance overwrites a user's balance from the panel form.
func AdminSetBalance(c *gin.Context) {
	chatID := c.PostForm("chat_id")
	balance, err := strconv.ParseFloat(c.PostForm("balance"), 64)
	if err != nil {
		fail(c, services.ErrInvalidAmount)
		return
	}

	user, err := services.SetBalance(config.DB, chatID, balance)
	if err != nil {
		fail(c, err)
		return
	}

	logger.Infof("admin %s set balance of %s to %.2f",
		currentUser(c).Username, user.TelegramChatID, user.Balance)
	c.Redirect(http.StatusFound, "/admin")
}
