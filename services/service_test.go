package services

import (
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/lidetdev/lotto-backend/models"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Room{},
		&models.GameSession{},
		&models.Transaction{},
		&models.OTP{},
	))
	return db
}

func newTestUser(t *testing.T, db *gorm.DB, username, chatID string, balance float64) *models.User {
	t.Helper()
	user := models.User{Username: username, TelegramChatID: chatID, Balance: balance}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func newTestRoom(t *testing.T, db *gorm.DB, name string, price float64) *models.Room {
	t.Helper()
	room := models.Room{Name: name, CardPrice: price}
	require.NoError(t, db.Create(&room).Error)
	return &room
}
