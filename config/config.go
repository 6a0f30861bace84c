package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

const defaultHouseCut = 0.2

// Load reads .env and validates required variables.
func Load() {
	if err := godotenv.Load(); err != nil {
		log.Println("[INFO] No .env file found, reading environment variables")
	}

	if os.Getenv("DATABASE_URL") == "" {
		log.Fatal("[FATAL] DATABASE_URL is required in .env or environment")
	}
}

// HouseCut is the fraction of the pool kept by the operator.
func HouseCut() float64 {
	raw := os.Getenv("HOUSE_CUT")
	if raw == "" {
		return defaultHouseCut
	}
	cut, err := strconv.ParseFloat(raw, 64)
	if err != nil || cut < 0 || cut >= 1 {
		log.Printf("[WARN] invalid HOUSE_CUT %q, using %.2f", raw, defaultHouseCut)
		return defaultHouseCut
	}
	return cut
}

// JWTSecret signs session cookies.
func JWTSecret() []byte {
	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Println("[WARN] JWT_SECRET not set, using insecure development secret")
		secret = "lotto-dev-secret"
	}
	return []byte(secret)
}

func BotToken() string {
	return os.Getenv("TELEGRAM_BOT_TOKEN")
}
