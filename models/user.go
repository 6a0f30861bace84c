package models

import "time"

type User struct {
	ID             uint      `gorm:"primaryKey" json:"id"`
	Username       string    `gorm:"uniqueIndex;size:64;not null" json:"username"`
	TelegramChatID string    `gorm:"uniqueIndex;size:64;not null" json:"telegram_chat_id"`
	Balance        float64   `gorm:"default:0" json:"balance"`
	IsAdmin        bool      `gorm:"default:false" json:"is_admin"`
	ReferredBy     string    `gorm:"size:255" json:"referred_by,omitempty"`
	PasswordHash   string    `gorm:"size:256" json:"-"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}
