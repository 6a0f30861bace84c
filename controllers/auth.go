package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lidetdev/lotto-backend/config"
	"github.com/lidetdev/lotto-backend/services"
	"github.com/lidetdev/lotto-backend/utils/logger"
)

type sendOTPRequest struct {
	TelegramChatID string `json:"telegram_chat_id" binding:"required"`
}

// SendOTP issues a registration code and delivers it over the bot.
func SendOTP(c *gin.Context) {
	var req sendOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	code, err := services.IssueOTP(config.DB, req.TelegramChatID)
	if err != nil {
		fail(c, err)
		return
	}

	// Delivery is best-effort; a failed send never invalidates the issued
	// code, the user can retry from the same page.
	if notifier == nil {
		logger.Errorf("otp issued for %s but bot is disabled", req.TelegramChatID)
	} else if err := notifier.SendOTP(req.TelegramChatID, code); err != nil {
		logger.Errorf("otp delivery to %s failed: %v", req.TelegramChatID, err)
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

type verifyOTPRequest struct {
	Username       string `json:"username" binding:"required"`
	Password       string `json:"password" binding:"required"`
	TelegramChatID string `json:"telegram_chat_id" binding:"required"`
	OTP            string `json:"otp" binding:"required"`
	ReferredBy     string `json:"referred_by"`
}

// VerifyOTP consumes the pending code and creates the account.
func VerifyOTP(c *gin.Context) {
	var req verifyOTPRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	user, err := services.VerifyOTP(config.DB, req.TelegramChatID, req.OTP, services.Registration{
		Username:   req.Username,
		Password:   req.Password,
		ReferredBy: req.ReferredBy,
	})
	if err != nil {
		fail(c, err)
		return
	}

	logger.Infof("registered user %s (chat %s)", user.Username, user.TelegramChatID)
	c.JSON(http.StatusOK, gin.H{"success": true})
}

type loginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// Login authenticates and sets the session cookie.
func Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "message": err.Error()})
		return
	}

	user, err := services.Login(config.DB, req.Username, req.Password)
	if err != nil {
		fail(c, err)
		return
	}

	token, err := services.IssueSessionToken(user, config.JWTSecret())
	if err != nil {
		fail(c, err)
		return
	}

	c.SetCookie(SessionCookie, token, int(services.SessionTTL.Seconds()), "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"success": true, "redirect": "/"})
}

// Logout clears the session cookie.
func Logout(c *gin.Context) {
	c.SetCookie(SessionCookie, "", -1, "/", "", false, true)
	c.JSON(http.StatusOK, gin.H{"success": true, "redirect": "/landing"})
}
