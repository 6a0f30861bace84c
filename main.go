package main

import (
	"net/http"
	"os"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/robfig/cron/v3"

	"github.com/lidetdev/lotto-backend/bot"
	"github.com/lidetdev/lotto-backend/config"
	"github.com/lidetdev/lotto-backend/controllers"
	"github.com/lidetdev/lotto-backend/routes"
	"github.com/lidetdev/lotto-backend/services"
	"github.com/lidetdev/lotto-backend/utils/logger"
)

// setupRouter initializes Gin routes and middleware
func setupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"http://localhost:3000"},
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	r.LoadHTMLGlob("templates/*.html")
	r.Use(controllers.Authenticate())
	routes.SetupRoutes(r)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "timestamp": time.Now()})
	})

	return r
}

func main() {
	config.Load()
	db := config.ConnectDB()

	// Rooms are exactly the configured tiers; diverged sets are reset.
	if err := services.ProvisionRooms(db, services.DefaultTiers); err != nil {
		logger.Fatalf("room provisioning failed: %v", err)
	}

	// Expired OTP sweep, once a minute.
	c := cron.New()
	c.AddFunc("* * * * *", func() { services.SweepExpiredOTPs(db) })
	c.Start()

	// Telegram bot, long polling in the background.
	if token := config.BotToken(); token != "" {
		b, err := bot.New(token, db)
		if err != nil {
			logger.Fatalf("telegram bot init failed: %v", err)
		}
		controllers.SetNotifier(b)
		go b.Start()
	} else {
		logger.Info("TELEGRAM_BOT_TOKEN not set, bot functionality disabled")
	}

	router := setupRouter()

	port := os.Getenv("PORT")
	if port == "" {
		port = "5000"
	}

	logger.Infof("🚀 Lotto backend starting on port %s", port)
	if err := router.Run(":" + port); err != nil {
		logger.Fatalf("failed to start server: %v", err)
	}
}
