package service

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitoriotavares/beach-tenis-sort/internal/apperr"
	"github.com/vitoriotavares/beach-tenis-sort/internal/store"
	"github.com/vitoriotavares/beach-tenis-sort/internal/tournament"
)

func newMatchService(db *sqlx.DB) *MatchService {
	return NewMatchService(db, store.NewParticipantStore(db), store.NewMatchStore(db))
}

// registerFour puts four players on the roster and returns their ids in
// registration order.
func registerFour(t *testing.T, db *sqlx.DB, ctx context.Context, trnID uuid.UUID) [4]uuid.UUID {
	t.Helper()

	svc := newParticipantService(db)
	var ids [4]uuid.UUID
	for i, name := range [4]string{"Ana", "Bruna", "Caio", "Davi"} {
		p, err := svc.Register(ctx, trnID, RegisterInput{
			Name: name, Email: name + "@example.com", Phone: "11999990000",
		})
		require.NoError(t, err)
		ids[i] = p.ID
	}
	return ids
}

func TestCreateMatch(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	ctx, _ := createOrganizer(t, db)
	trn := createTournamentForTest(t, db, ctx, 8)
	ids := registerFour(t, db, ctx, trn.ID)

	svc := newMatchService(db)
	m, err := svc.Create(ctx, trn.ID, CreateMatchInput{
		Team1Player1: ids[0], Team1Player2: ids[1],
		Team2Player1: ids[2], Team2Player2: ids[3],
		Court: "Quadra 1",
	})
	require.NoError(t, err)

	assert.Equal(t, tournament.MatchPending, m.Status)
	assert.Equal(t, 0, m.Score1)
	assert.Equal(t, 0, m.Score2)
	assert.Equal(t, "Quadra 1", m.Court)

	summaries, err := svc.List(ctx, trn.ID)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, [2]string{"Ana", "Bruna"}, summaries[0].Team1())
	assert.Equal(t, [2]string{"Caio", "Davi"}, summaries[0].Team2())
}

func TestCreateMatchRepeatedPlayer(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	ctx, _ := createOrganizer(t, db)
	trn := createTournamentForTest(t, db, ctx, 8)
	ids := registerFour(t, db, ctx, trn.ID)

	svc := newMatchService(db)
	_, err := svc.Create(ctx, trn.ID, CreateMatchInput{
		Team1Player1: ids[0], Team1Player2: ids[1],
		Team2Player1: ids[0], Team2Player2: ids[3],
		Court: "Quadra 1",
	})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))

	summaries, err := svc.List(ctx, trn.ID)
	require.NoError(t, err)
	assert.Empty(t, summaries, "a rejected match must not be stored")
}

func TestCreateMatchUnregisteredPlayer(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	ctx, _ := createOrganizer(t, db)
	trn := createTournamentForTest(t, db, ctx, 8)
	ids := registerFour(t, db, ctx, trn.ID)

	svc := newMatchService(db)
	_, err := svc.Create(ctx, trn.ID, CreateMatchInput{
		Team1Player1: ids[0], Team1Player2: ids[1],
		Team2Player1: ids[2], Team2Player2: uuid.New(),
		Court: "Quadra 1",
	})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestCreateMatchPlayerFromOtherTournament(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	ctx, _ := createOrganizer(t, db)
	trn := createTournamentForTest(t, db, ctx, 8)
	other := createTournamentForTest(t, db, ctx, 8)

	ids := registerFour(t, db, ctx, trn.ID)
	outsider, err := newParticipantService(db).Register(ctx, other.ID, RegisterInput{
		Name: "Eva", Email: "eva@example.com", Phone: "11999990000",
	})
	require.NoError(t, err)

	svc := newMatchService(db)
	_, err = svc.Create(ctx, trn.ID, CreateMatchInput{
		Team1Player1: ids[0], Team1Player2: ids[1],
		Team2Player1: ids[2], Team2Player2: outsider.ID,
		Court: "Quadra 1",
	})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestCreateMatchMissingCourt(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	ctx, _ := createOrganizer(t, db)
	trn := createTournamentForTest(t, db, ctx, 8)
	ids := registerFour(t, db, ctx, trn.ID)

	svc := newMatchService(db)
	_, err := svc.Create(ctx, trn.ID, CreateMatchInput{
		Team1Player1: ids[0], Team1Player2: ids[1],
		Team2Player1: ids[2], Team2Player2: ids[3],
		Court: "   ",
	})
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestMatchLifecycle(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	ctx, _ := createOrganizer(t, db)
	trn := createTournamentForTest(t, db, ctx, 8)
	ids := registerFour(t, db, ctx, trn.ID)

	svc := newMatchService(db)
	matchStore := store.NewMatchStore(db)

	m, err := svc.Create(ctx, trn.ID, CreateMatchInput{
		Team1Player1: ids[0], Team1Player2: ids[1],
		Team2Player1: ids[2], Team2Player2: ids[3],
		Court: "Quadra 1",
	})
	require.NoError(t, err)

	// Scoring a pending match is rejected.
	_, err = svc.AddPoint(ctx, m.ID, 1)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))

	started, err := svc.Start(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, tournament.MatchInProgress, started.Status)

	// Starting twice is rejected.
	_, err = svc.Start(ctx, m.ID)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))

	_, err = svc.AddPoint(ctx, m.ID, 1)
	require.NoError(t, err)
	scored, err := svc.AddPoint(ctx, m.ID, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, scored.Score1)
	assert.Equal(t, 0, scored.Score2)

	finished, err := svc.Finish(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, tournament.MatchCompleted, finished.Status)
	assert.Equal(t, 1, finished.WinnerTeam())

	// No scoring after the whistle.
	_, err = svc.AddPoint(ctx, m.ID, 2)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))

	persisted, err := matchStore.Get(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, tournament.MatchCompleted, persisted.Status)
	assert.Equal(t, 2, persisted.Score1)
	assert.Equal(t, 0, persisted.Score2)

	// Reopen is the one way back; the score survives the round trip.
	reopened, err := svc.Reopen(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, tournament.MatchInProgress, reopened.Status)
	assert.Equal(t, 2, reopened.Score1)

	_, err = svc.AddPoint(ctx, m.ID, 2)
	require.NoError(t, err)
	finished, err = svc.Finish(ctx, m.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, finished.Score1)
	assert.Equal(t, 1, finished.Score2)
}

func TestMatchTransitionUnknownID(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	svc := newMatchService(db)
	_, err := svc.Start(context.Background(), uuid.New())
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
}

func TestInvalidTeamNumber(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	ctx, _ := createOrganizer(t, db)
	trn := createTournamentForTest(t, db, ctx, 8)
	ids := registerFour(t, db, ctx, trn.ID)

	svc := newMatchService(db)
	m, err := svc.Create(ctx, trn.ID, CreateMatchInput{
		Team1Player1: ids[0], Team1Player2: ids[1],
		Team2Player1: ids[2], Team2Player2: ids[3],
		Court: "Quadra 1",
	})
	require.NoError(t, err)

	_, err = svc.Start(ctx, m.ID)
	require.NoError(t, err)

	_, err = svc.AddPoint(ctx, m.ID, 3)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}
