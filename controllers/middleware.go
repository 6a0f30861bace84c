package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lidetdev/lotto-backend/config"
	"github.com/lidetdev/lotto-backend/models"
	"github.com/lidetdev/lotto-backend/services"
)

const (
	// SessionCookie holds the signed login token.
	SessionCookie = "lotto_session"

	userKey = "current_user"
)

// Notifier delivers bot messages; nil when the bot is disabled.
var notifier services.Notifier

func SetNotifier(n services.Notifier) {
	notifier = n
}

// Authenticate resolves the session cookie to a user when present. It never
// aborts; handlers that need a login use RequireUser/RequireAdmin.
func Authenticate() gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(SessionCookie)
		if err != nil || token == "" {
			c.Next()
			return
		}
		userID, err := services.ParseSessionToken(token, config.JWTSecret())
		if err != nil {
			c.Next()
			return
		}
		if user, err := services.GetUser(config.DB, userID); err == nil {
			c.Set(userKey, user)
		}
		c.Next()
	}
}

// RequireUser aborts with 401 unless Authenticate resolved a user.
func RequireUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		if currentUser(c) == nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "መግባት ያስፈልጋል (Login required)",
			})
			return
		}
		c.Next()
	}
}

// RequireAdmin aborts with 403 unless the caller is an admin.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := currentUser(c)
		if user == nil || !user.IsAdmin {
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{
				"success": false,
				"message": "Unauthorized",
			})
			return
		}
		c.Next()
	}
}

func currentUser(c *gin.Context) *models.User {
	if v, ok := c.Get(userKey); ok {
		if user, ok := v.(*models.User); ok {
			return user
		}
	}
	return nil
}
