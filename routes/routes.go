package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/lidetdev/lotto-backend/controllers"
)

func SetupRoutes(r *gin.Engine) {
	// ----------------------
	// Public pages + registration
	// ----------------------
	r.GET("/", controllers.Index)
	r.GET("/landing", controllers.Landing)
	r.GET("/signup", controllers.Signup)
	r.POST("/send-otp", controllers.SendOTP)
	r.POST("/verify-otp", controllers.VerifyOTP)
	r.POST("/login", controllers.Login)
	r.POST("/logout", controllers.Logout)

	// ----------------------
	// Player routes (session cookie required)
	// ----------------------
	player := r.Group("/", controllers.RequireUser())
	player.GET("/api/user/balance", controllers.Balance)
	player.POST("/buy-card/:room_id/:card", controllers.BuyCard)
	player.POST("/declare-winner/:room_id", controllers.DeclareWinner)

	// ----------------------
	// Room watch stream
	// ----------------------
	r.GET("/ws/rooms/:room_id", controllers.WatchRoom)

	// ----------------------
	// Admin panel
	// ----------------------
	admin := r.Group("/admin", controllers.RequireAdmin())
	admin.GET("", controllers.AdminPanel)
	admin.POST("", controllers.AdminSetBalance)
}
