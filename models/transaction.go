package models

import (
	"time"

	"gorm.io/datatypes"
)

// Transaction records one card purchase. The composite unique index on
// (session_id, card_number) is what makes a card sellable once per round.
type Transaction struct {
	ID         uint           `gorm:"primaryKey" json:"id"`
	UserID     uint           `gorm:"index;not null" json:"user_id"`
	RoomID     uint           `gorm:"not null" json:"room_id"`
	SessionID  uint           `gorm:"uniqueIndex:idx_session_card;not null" json:"session_id"`
	Amount     float64        `gorm:"not null" json:"amount"`
	CardNumber *int           `gorm:"uniqueIndex:idx_session_card" json:"card_number,omitempty"`
	CardGrid   datatypes.JSON `json:"card_grid,omitempty"`
	CreatedAt  time.Time      `json:"created_at"`
}
