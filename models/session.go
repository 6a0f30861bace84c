package models

import "time"

const (
	SessionActive    = "active"
	SessionCompleted = "completed"
)

// GameSession is one round of play in a room. Completed sessions stay in
// storage for auditing; only the room's ActiveSessionID decides activeness.
type GameSession struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	RoomID    uint      `gorm:"index;not null" json:"room_id"`
	Status    string    `gorm:"size:20;default:active" json:"status"`
	WinnerID  *uint     `json:"winner_id,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}
