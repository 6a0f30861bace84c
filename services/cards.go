package services

import (
	"encoding/json"
	"errors"
	"math/rand/v2"

	"github.com/lidetdev/lotto-backend/models"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	MinCardNumber = 1
	MaxCardNumber = 100
)

// PurchaseResult is what a successful card purchase reports back.
type PurchaseResult struct {
	RoomName   string
	SessionID  uint
	CardNumber int
	NewBalance float64
	Bet        float64
	Stats      RoundStats
}

// BuyCard reserves a card number for a user in the room's active session.
// Debit and ledger insert commit together; any failure, including a losing
// race on the card's unique index, rolls the debit back.
func BuyCard(db *gorm.DB, userID, roomID uint, cardNumber int, houseCut float64) (*PurchaseResult, error) {
	if cardNumber < MinCardNumber || cardNumber > MaxCardNumber {
		return nil, ErrInvalidCard
	}

	var result *PurchaseResult
	err := db.Transaction(func(tx *gorm.DB) error {
		var room models.Room
		if err := lockForUpdate(tx).First(&room, roomID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrRoomNotFound
			}
			return err
		}

		session, err := resolveSessionLocked(tx, &room)
		if err != nil {
			return err
		}

		var user models.User
		if err := lockForUpdate(tx).First(&user, userID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrUserNotFound
			}
			return err
		}
		if user.Balance < room.CardPrice {
			return ErrInsufficientFunds
		}

		// Cheap pre-check so the common "card already sold" case never
		// touches the balance; the unique index still decides races.
		var taken int64
		if err := tx.Model(&models.Transaction{}).
			Where("session_id = ? AND card_number = ?", session.ID, cardNumber).
			Count(&taken).Error; err != nil {
			return err
		}
		if taken > 0 {
			return ErrCardTaken
		}

		newBalance := user.Balance - room.CardPrice
		if err := tx.Model(&models.User{}).Where("id = ?", user.ID).
			Update("balance", newBalance).Error; err != nil {
			return err
		}

		grid, err := json.Marshal(GenerateCard())
		if err != nil {
			return err
		}
		purchase := models.Transaction{
			UserID:     user.ID,
			RoomID:     room.ID,
			SessionID:  session.ID,
			Amount:     room.CardPrice,
			CardNumber: &cardNumber,
			CardGrid:   datatypes.JSON(grid),
		}
		if err := tx.Create(&purchase).Error; err != nil {
			if errors.Is(err, gorm.ErrDuplicatedKey) {
				return ErrCardTaken
			}
			return err
		}

		stats, err := RoundPrize(tx, &room, session.ID, houseCut)
		if err != nil {
			return err
		}

		result = &PurchaseResult{
			RoomName:   room.Name,
			SessionID:  session.ID,
			CardNumber: cardNumber,
			NewBalance: newBalance,
			Bet:        room.CardPrice,
			Stats:      stats,
		}
		return nil
	})
	return result, err
}

// GenerateCard builds a random 5x5 bingo grid. Columns draw from the B/I/N/G/O
// ranges (1-15, 16-30, 31-45, 46-60, 61-75); the center is the free space.
func GenerateCard() [5][5]int {
	var cols [5][5]int
	for c := 0; c < 5; c++ {
		offset := c * 15
		perm := rand.Perm(15)
		for r := 0; r < 5; r++ {
			cols[c][r] = offset + perm[r] + 1
		}
	}

	var card [5][5]int
	for r := 0; r < 5; r++ {
		for c := 0; c < 5; c++ {
			card[r][c] = cols[c][r]
		}
	}
	card[2][2] = 0
	return card
}
