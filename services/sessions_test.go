package services

import (
	"testing"

	"github.com/lidetdev/lotto-backend/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestResolveSessionCreatesAndReuses(t *testing.T) {
	db := newTestDB(t)
	room := newTestRoom(t, db, "Silver Room", 10)

	first, err := ResolveSession(db, room.ID)
	require.NoError(t, err)
	assert.Equal(t, models.SessionActive, first.Status)
	assert.Equal(t, room.ID, first.RoomID)

	var reloaded models.Room
	require.NoError(t, db.First(&reloaded, room.ID).Error)
	require.NotNil(t, reloaded.ActiveSessionID)
	assert.Equal(t, first.ID, *reloaded.ActiveSessionID)

	second, err := ResolveSession(db, room.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
}

func TestResolveSessionUnknownRoom(t *testing.T) {
	db := newTestDB(t)

	_, err := ResolveSession(db, 99)
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestResolveSessionIgnoresStaleReference(t *testing.T) {
	db := newTestDB(t)
	room := newTestRoom(t, db, "Gold Room", 20)

	stale, err := ResolveSession(db, room.ID)
	require.NoError(t, err)

	// Complete the session behind the room's back, leaving the reference set.
	require.NoError(t, db.Model(&models.GameSession{}).
		Where("id = ?", stale.ID).
		Update("status", models.SessionCompleted).Error)

	fresh, err := ResolveSession(db, room.ID)
	require.NoError(t, err)
	assert.NotEqual(t, stale.ID, fresh.ID)
	assert.Equal(t, models.SessionActive, fresh.Status)
}

func TestDeclareWinnerClosesRound(t *testing.T) {
	db := newTestDB(t)
	room := newTestRoom(t, db, "Bronze Room", 5)
	winner := newTestUser(t, db, "abel", "1001", 50)

	opened, err := ResolveSession(db, room.ID)
	require.NoError(t, err)

	closed, err := DeclareWinner(db, room.ID, &winner.ID)
	require.NoError(t, err)
	assert.Equal(t, opened.ID, closed.ID)
	assert.Equal(t, models.SessionCompleted, closed.Status)
	require.NotNil(t, closed.WinnerID)
	assert.Equal(t, winner.ID, *closed.WinnerID)

	var reloaded models.Room
	require.NoError(t, db.First(&reloaded, room.ID).Error)
	assert.Nil(t, reloaded.ActiveSessionID)

	// Closing again fails, and the next resolve opens a fresh round.
	_, err = DeclareWinner(db, room.ID, nil)
	assert.ErrorIs(t, err, ErrNoActiveSession)

	next, err := ResolveSession(db, room.ID)
	require.NoError(t, err)
	assert.NotEqual(t, opened.ID, next.ID)
}

func TestDeclareWinnerWithoutSession(t *testing.T) {
	db := newTestDB(t)
	room := newTestRoom(t, db, "Bronze Room", 5)

	_, err := DeclareWinner(db, room.ID, nil)
	assert.ErrorIs(t, err, ErrNoActiveSession)

	_, err = DeclareWinner(db, 404, nil)
	assert.ErrorIs(t, err, ErrRoomNotFound)
}

func TestRoundPrizeCountsDistinctPlayers(t *testing.T) {
	db := newTestDB(t)
	room := newTestRoom(t, db, "Gold Room", 20)
	alice := newTestUser(t, db, "alice", "2001", 100)
	bekele := newTestUser(t, db, "bekele", "2002", 100)

	_, err := BuyCard(db, alice.ID, room.ID, 5, 0.2)
	require.NoError(t, err)
	_, err = BuyCard(db, bekele.ID, room.ID, 6, 0.2)
	require.NoError(t, err)
	// A second card for the same player must not grow the pool.
	result, err := BuyCard(db, alice.ID, room.ID, 7, 0.2)
	require.NoError(t, err)

	assert.Equal(t, int64(2), result.Stats.Players)
	assert.Equal(t, 40.0, result.Stats.Pool)
	assert.Equal(t, 32.0, DisplayAmount(result.Stats.Prize))
}

func TestSessionParticipants(t *testing.T) {
	db := newTestDB(t)
	room := newTestRoom(t, db, "Silver Room", 10)
	alice := newTestUser(t, db, "alice", "2001", 100)
	bekele := newTestUser(t, db, "bekele", "2002", 100)

	first, err := BuyCard(db, alice.ID, room.ID, 1, 0.2)
	require.NoError(t, err)
	_, err = BuyCard(db, alice.ID, room.ID, 2, 0.2)
	require.NoError(t, err)
	_, err = BuyCard(db, bekele.ID, room.ID, 3, 0.2)
	require.NoError(t, err)

	users, err := SessionParticipants(db, first.SessionID)
	require.NoError(t, err)
	assert.Len(t, users, 2)
}

func TestDisplayAmount(t *testing.T) {
	assert.Equal(t, 15.0, DisplayAmount(15.000000001))
	assert.Equal(t, 12.34, DisplayAmount(12.341))
	assert.Equal(t, 32.0, DisplayAmount(2*20*0.8))
}
