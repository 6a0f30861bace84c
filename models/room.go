package models

import "time"

// Room is a fixed-price tier. ActiveSessionID points at the one session
// currently open for play; nil means the next access opens a fresh one.
type Room struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Name            string    `gorm:"uniqueIndex;size:64;not null" json:"name"`
	CardPrice       float64   `gorm:"not null" json:"card_price"`
	ActiveSessionID *uint     `json:"active_session_id,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}
