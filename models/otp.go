package models

import "time"

// OTP is a pending registration code for a Telegram chat ID. Issuing a new
// code overwrites the old row; verification deletes it.
type OTP struct {
	ID             uint      `gorm:"primaryKey" json:"-"`
	TelegramChatID string    `gorm:"uniqueIndex;size:64;not null" json:"telegram_chat_id"`
	Code           string    `gorm:"size:6;not null" json:"-"`
	ExpiresAt      time.Time `gorm:"index;not null" json:"expires_at"`
	CreatedAt      time.Time `json:"created_at"`
}
