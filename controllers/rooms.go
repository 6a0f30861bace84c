package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lidetdev/lotto-backend/config"
	"github.com/lidetdev/lotto-backend/services"
)

// Index renders the room list for a logged-in user, or the landing page.
func Index(c *gin.Context) {
	user := currentUser(c)
	if user == nil {
		c.HTML(http.StatusOK, "landing.html", nil)
		return
	}

	rooms, err := services.ListRooms(config.DB)
	if err != nil {
		fail(c, err)
		return
	}

	c.HTML(http.StatusOK, "index.html", gin.H{
		"user":    user,
		"balance": services.DisplayAmount(user.Balance),
		"rooms":   rooms,
	})
}

// Landing renders the public landing page.
func Landing(c *gin.Context) {
	c.HTML(http.StatusOK, "landing.html", nil)
}

// Signup renders the registration page.
func Signup(c *gin.Context) {
	c.HTML(http.StatusOK, "signup.html", nil)
}

// Balance returns the authenticated caller's balance.
func Balance(c *gin.Context) {
	user := currentUser(c)
	c.JSON(http.StatusOK, gin.H{"balance": services.DisplayAmount(user.Balance)})
}
