package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/lidetdev/lotto-backend/services"
	"github.com/lidetdev/lotto-backend/utils/logger"
)

type failure struct {
	status  int
	message string
}

// Bilingual (Amharic/English) user-facing messages, matching the tone the
// bot uses.
var failures = map[error]failure{
	services.ErrRoomNotFound:       {http.StatusNotFound, "ክፍሉ አልተገኘም (Room not found)"},
	services.ErrUserNotFound:       {http.StatusNotFound, "ተጠቃሚው አልተገኘም (User not found)"},
	services.ErrNoActiveSession:    {http.StatusBadRequest, "ምንም ንቁ ጨዋታ የለም (No active session)"},
	services.ErrInvalidCard:        {http.StatusBadRequest, "የካርድ ቁጥር ከ1 እስከ 100 መሆን አለበት (Card number must be 1-100)"},
	services.ErrInsufficientFunds:  {http.StatusBadRequest, "በቂ ቀሪ ሂሳብ የለም (Insufficient balance)"},
	services.ErrCardTaken:          {http.StatusBadRequest, "ይህ ካርድ ቀድሞ ተይዟል (Card already taken)"},
	services.ErrDuplicateIdentity:  {http.StatusBadRequest, "ይህ አካውንት ቀድሞ ተመዝግቧል (Account already registered)"},
	services.ErrDuplicateName:      {http.StatusBadRequest, "የተጠቃሚ ስሙ ተይዟል (Username already taken)"},
	services.ErrInvalidCode:        {http.StatusBadRequest, "ትክክለኛ ያልሆነ ኮድ (Invalid code)"},
	services.ErrInvalidCredentials: {http.StatusUnauthorized, "የተሳሳተ ስም ወይም የይለፍ ቃል (Wrong username or password)"},
	services.ErrInvalidAmount:      {http.StatusBadRequest, "ትክክለኛ ያልሆነ መጠን (Invalid amount)"},
}

// fail writes the structured failure shape for a domain error. Unknown
// errors are logged and reported as a generic 500.
func fail(c *gin.Context, err error) {
	for domainErr, f := range failures {
		if errors.Is(err, domainErr) {
			c.JSON(f.status, gin.H{"success": false, "message": f.message})
			return
		}
	}
	logger.Errorf("%s %s: %v", c.Request.Method, c.FullPath(), err)
	c.JSON(http.StatusInternalServerError, gin.H{"success": false, "message": "የውስጥ ስህተት (Internal error)"})
}
