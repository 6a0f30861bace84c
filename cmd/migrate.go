package main

import (
	"log"

	"github.com/lidetdev/lotto-backend/config"
)

func main() {
	config.Load()
	config.ConnectDB() // connects + migrates
	log.Println("✅ Database migration completed successfully")
}
