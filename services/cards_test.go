package services

import (
	"testing"

	"github.com/lidetdev/lotto-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuyCardDebitsAndRecords(t *testing.T) {
	db := newTestDB(t)
	room := newTestRoom(t, db, "Silver Room", 10)
	user := newTestUser(t, db, "abel", "1001", 25)

	result, err := BuyCard(db, user.ID, room.ID, 7, 0.2)
	require.NoError(t, err)
	assert.Equal(t, 15.0, result.NewBalance)
	assert.Equal(t, 7, result.CardNumber)
	assert.Equal(t, "Silver Room", result.RoomName)
	assert.Equal(t, 10.0, result.Bet)
	assert.Equal(t, int64(1), result.Stats.Players)

	var reloaded models.User
	require.NoError(t, db.First(&reloaded, user.ID).Error)
	assert.Equal(t, 15.0, reloaded.Balance)

	var purchases []models.Transaction
	require.NoError(t, db.Find(&purchases).Error)
	require.Len(t, purchases, 1)
	require.NotNil(t, purchases[0].CardNumber)
	assert.Equal(t, 7, *purchases[0].CardNumber)
	assert.Equal(t, 10.0, purchases[0].Amount)
	assert.Equal(t, result.SessionID, purchases[0].SessionID)
	assert.NotEmpty(t, purchases[0].CardGrid)
}

func TestBuyCardTakenLeavesBalanceUntouched(t *testing.T) {
	db := newTestDB(t)
	room := newTestRoom(t, db, "Silver Room", 10)
	first := newTestUser(t, db, "abel", "1001", 25)
	second := newTestUser(t, db, "sara", "1002", 25)

	_, err := BuyCard(db, first.ID, room.ID, 7, 0.2)
	require.NoError(t, err)

	_, err = BuyCard(db, second.ID, room.ID, 7, 0.2)
	assert.ErrorIs(t, err, ErrCardTaken)

	var reloaded models.User
	require.NoError(t, db.First(&reloaded, second.ID).Error)
	assert.Equal(t, 25.0, reloaded.Balance)

	var count int64
	require.NoError(t, db.Model(&models.Transaction{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestBuyCardSameNumberNextRound(t *testing.T) {
	db := newTestDB(t)
	room := newTestRoom(t, db, "Silver Room", 10)
	user := newTestUser(t, db, "abel", "1001", 100)

	first, err := BuyCard(db, user.ID, room.ID, 7, 0.2)
	require.NoError(t, err)

	_, err = DeclareWinner(db, room.ID, nil)
	require.NoError(t, err)

	// The number frees up once a fresh round starts.
	second, err := BuyCard(db, user.ID, room.ID, 7, 0.2)
	require.NoError(t, err)
	assert.NotEqual(t, first.SessionID, second.SessionID)
}

func TestBuyCardInsufficientFunds(t *testing.T) {
	db := newTestDB(t)
	room := newTestRoom(t, db, "Gold Room", 20)
	user := newTestUser(t, db, "abel", "1001", 19.99)

	_, err := BuyCard(db, user.ID, room.ID, 1, 0.2)
	assert.ErrorIs(t, err, ErrInsufficientFunds)

	var count int64
	require.NoError(t, db.Model(&models.Transaction{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestBuyCardValidation(t *testing.T) {
	db := newTestDB(t)
	room := newTestRoom(t, db, "Bronze Room", 5)
	user := newTestUser(t, db, "abel", "1001", 50)

	_, err := BuyCard(db, user.ID, room.ID, 0, 0.2)
	assert.ErrorIs(t, err, ErrInvalidCard)
	_, err = BuyCard(db, user.ID, room.ID, 101, 0.2)
	assert.ErrorIs(t, err, ErrInvalidCard)
	_, err = BuyCard(db, user.ID, 42, 1, 0.2)
	assert.ErrorIs(t, err, ErrRoomNotFound)
	_, err = BuyCard(db, 42, room.ID, 1, 0.2)
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestGenerateCard(t *testing.T) {
	card := GenerateCard()

	assert.Zero(t, card[2][2])
	for r := 0; r < 5; r++ {
		for c := 0; c < 5; c++ {
			if r == 2 && c == 2 {
				continue
			}
			low, high := c*15+1, (c+1)*15
			assert.GreaterOrEqual(t, card[r][c], low)
			assert.LessOrEqual(t, card[r][c], high)
		}
	}

	// No duplicates within a column.
	for c := 0; c < 5; c++ {
		seen := map[int]bool{}
		for r := 0; r < 5; r++ {
			if r == 2 && c == 2 {
				continue
			}
			assert.False(t, seen[card[r][c]])
			seen[card[r][c]] = true
		}
	}
}
