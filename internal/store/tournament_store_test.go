package store

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitoriotavares/beach-tenis-sort/internal/apperr"
	"github.com/vitoriotavares/beach-tenis-sort/internal/tournament"
)

func TestTournamentStoreCreateAndGet(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	userID := createTestUser(t, db)
	created := createTestTournament(t, db, userID, 16)

	got, err := NewTournamentStore(db).Get(context.Background(), created.ID)
	require.NoError(t, err)

	assert.Equal(t, created.ID, got.ID)
	assert.Equal(t, "Copa de Verão", got.Title)
	assert.Equal(t, "2026-09-12", got.Date)
	assert.Equal(t, "09:00", got.StartTime)
	assert.Equal(t, "17:00", got.EndTime)
	assert.Equal(t, "Arena Central", got.Location)
	assert.Equal(t, 16, got.MaxParticipants)
	assert.Equal(t, tournament.TournamentUpcoming, got.Status)
	assert.Equal(t, userID, got.CreatedBy)
	assert.False(t, got.CreatedAt.IsZero())
}

func TestTournamentStoreGetMissing(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	_, err := NewTournamentStore(db).Get(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestTournamentStoreListOrderedByDate(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	userID := createTestUser(t, db)
	tournamentStore := NewTournamentStore(db)
	ctx := context.Background()

	dates := []string{"2026-11-01", "2026-09-12", "2026-10-05"}
	for _, date := range dates {
		trn := &tournament.Tournament{
			ID:              uuid.New(),
			Title:           "Etapa " + date,
			Date:            date,
			StartTime:       "09:00",
			EndTime:         "17:00",
			Location:        "Arena Central",
			MaxParticipants: 8,
			Status:          tournament.TournamentUpcoming,
			CreatedBy:       userID,
		}
		tx, err := db.BeginTxx(ctx, nil)
		require.NoError(t, err)
		require.NoError(t, tournamentStore.Create(ctx, tx, trn))
		require.NoError(t, tx.Commit())
	}

	listed, err := tournamentStore.List(ctx)
	require.NoError(t, err)
	require.Len(t, listed, 3)
	assert.Equal(t, "2026-09-12", listed[0].Date)
	assert.Equal(t, "2026-10-05", listed[1].Date)
	assert.Equal(t, "2026-11-01", listed[2].Date)
}

func TestTournamentStoreUpdateStatus(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	userID := createTestUser(t, db)
	trn := createTestTournament(t, db, userID, 8)

	tournamentStore := NewTournamentStore(db)
	ctx := context.Background()

	require.NoError(t, tournamentStore.UpdateStatus(ctx, trn.ID, tournament.TournamentInProgress))

	got, err := tournamentStore.Get(ctx, trn.ID)
	require.NoError(t, err)
	assert.Equal(t, tournament.TournamentInProgress, got.Status)
}
