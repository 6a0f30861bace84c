package services

import (
	"errors"
	"math"

	"github.com/lidetdev/lotto-backend/models"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// lockForUpdate takes a row lock on postgres. SQLite (tests) serializes
// writers on its own and rejects FOR UPDATE syntax.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "postgres" {
		return tx.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	return tx
}

// resolveSessionLocked returns the room's active session, creating one if
// the reference is unset or points at a completed session. The caller must
// hold the room row inside a transaction.
func resolveSessionLocked(tx *gorm.DB, room *models.Room) (*models.GameSession, error) {
	if room.ActiveSessionID != nil {
		var session models.GameSession
		err := tx.First(&session, *room.ActiveSessionID).Error
		switch {
		case err == nil && session.Status == models.SessionActive:
			return &session, nil
		case err != nil && !errors.Is(err, gorm.ErrRecordNotFound):
			return nil, err
		}
	}

	session := models.GameSession{RoomID: room.ID, Status: models.SessionActive}
	if err := tx.Create(&session).Error; err != nil {
		return nil, err
	}
	if err := tx.Model(&models.Room{}).Where("id = ?", room.ID).
		Update("active_session_id", session.ID).Error; err != nil {
		return nil, err
	}
	room.ActiveSessionID = &session.ID
	return &session, nil
}

// ResolveSession returns the current active session for a room, lazily
// creating one. Session creation and the room's back-reference update commit
// together, so a room never points at a session that does not exist.
func ResolveSession(db *gorm.DB, roomID uint) (*models.GameSession, error) {
	var session *models.GameSession
	err := db.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := lockForUpdate(tx).First(&room, roomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomNotFound
			}
			return err
		}
		resolved, err := resolveSessionLocked(tx, &room)
		if err != nil {
			return err
		}
		session = resolved
		return nil
	})
	return session, err
}

// DeclareWinner completes the room's active session and detaches it, so the
// next access starts a fresh round. winnerID is optional.
func DeclareWinner(db *gorm.DB, roomID uint, winnerID *uint) (*models.GameSession, error) {
	var closed *models.GameSession
	err := db.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := lockForUpdate(tx).First(&room, roomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomNotFound
			}
			return err
		}
		if room.ActiveSessionID == nil {
			return ErrNoActiveSession
		}

		var session models.GameSession
		if err := tx.First(&session, *room.ActiveSessionID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNoActiveSession
			}
			return err
		}
		if session.Status != models.SessionActive {
			return ErrNoActiveSession
		}

		updates := map[string]interface{}{"status": models.SessionCompleted}
		if winnerID != nil {
			updates["winner_id"] = *winnerID
		}
		if err := tx.Model(&session).Updates(updates).Error; err != nil {
			return err
		}
		if err := tx.Model(&models.Room{}).Where("id = ?", room.ID).
			Update("active_session_id", nil).Error; err != nil {
			return err
		}

		session.Status = models.SessionCompleted
		session.WinnerID = winnerID
		closed = &session
		return nil
	})
	return closed, err
}

// RoundStats is the pool derived from one session's purchases.
type RoundStats struct {
	Players int64   `json:"players"`
	Pool    float64 `json:"pool"`
	Prize   float64 `json:"prize"`
}

// RoundPrize computes the pool for a session. The pool counts distinct
// paying players, not cards: a player holding several cards stakes once.
func RoundPrize(db *gorm.DB, room *models.Room, sessionID uint, houseCut float64) (RoundStats, error) {
	var players int64
	err := db.Model(&models.Transaction{}).
		Where("room_id = ? AND session_id = ?", room.ID, sessionID).
		Distinct("user_id").
		Count(&players).Error
	if err != nil {
		return RoundStats{}, err
	}

	pool := float64(players) * room.CardPrice
	return RoundStats{
		Players: players,
		Pool:    pool,
		Prize:   pool * (1 - houseCut),
	}, nil
}

// SessionParticipants lists the distinct users who bought into a session.
func SessionParticipants(db *gorm.DB, sessionID uint) ([]models.User, error) {
	var users []models.User
	err := db.
		Joins("JOIN transactions ON transactions.user_id = users.id").
		Where("transactions.session_id = ?", sessionID).
		Distinct("users.*").
		Find(&users).Error
	return users, err
}

// DisplayAmount rounds for presentation only; stored amounts keep full
// float precision.
func DisplayAmount(v float64) float64 {
	return math.Round(v*100) / 100
}
