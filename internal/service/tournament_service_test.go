package service

import (
	"context"
	"testing"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitoriotavares/beach-tenis-sort/internal/apperr"
	"github.com/vitoriotavares/beach-tenis-sort/internal/middleware"
	"github.com/vitoriotavares/beach-tenis-sort/internal/store"
	"github.com/vitoriotavares/beach-tenis-sort/internal/tournament"
	users "github.com/vitoriotavares/beach-tenis-sort/internal/user"
)

// setupTestDB creates an in-memory SQLite database and applies migrations
func setupTestDB(t *testing.T) *sqlx.DB {
	t.Helper()

	database, err := sqlx.Connect("sqlite3", "file::memory:")
	require.NoError(t, err, "Failed to connect to in-memory DB")
	database.SetMaxOpenConns(1)

	_, err = database.Exec("PRAGMA foreign_keys = ON;")
	require.NoError(t, err)

	driver, err := sqlite3.WithInstance(database.DB, &sqlite3.Config{})
	require.NoError(t, err, "Failed to create migrate driver instance")

	m, err := migrate.NewWithDatabaseInstance(
		"file://../../migrations",
		"sqlite3",
		driver,
	)
	require.NoError(t, err, "Failed to create migrate instance")

	err = m.Up()
	if err != nil && err != migrate.ErrNoChange {
		require.NoError(t, err, "Failed to apply migrations")
	}

	return database
}

// createOrganizer inserts a user row and returns a context carrying their
// identity, the shape LoadAuthenticatedUser produces for signed-in requests.
func createOrganizer(t *testing.T, db *sqlx.DB) (context.Context, uuid.UUID) {
	t.Helper()

	user := &users.User{
		ID:       uuid.New(),
		Email:    "organizer@example.com",
		Username: "Organizer",
	}
	require.NoError(t, store.NewUserStore(db).CreateUser(context.Background(), user))

	ctx := context.WithValue(context.Background(), middleware.UserIDKey, user.ID)
	ctx = context.WithValue(ctx, users.UserKey, user)
	return ctx, user.ID
}

func validTournamentInput() CreateTournamentInput {
	return CreateTournamentInput{
		Title:           "Copa de Verão",
		Date:            "2026-09-12",
		StartTime:       "09:00",
		EndTime:         "17:00",
		Location:        "Arena Central",
		MaxParticipants: 8,
	}
}

func createTournamentForTest(t *testing.T, db *sqlx.DB, ctx context.Context, maxParticipants int) *tournament.Tournament {
	t.Helper()

	svc := NewTournamentService(db, store.NewTournamentStore(db), store.NewParticipantStore(db), store.NewMatchStore(db))
	input := validTournamentInput()
	input.MaxParticipants = maxParticipants
	trn, err := svc.Create(ctx, input)
	require.NoError(t, err)
	return trn
}

// spyTournamentStore records writes so tests can prove a rejected request
// never touched the store.
type spyTournamentStore struct {
	createCalls int
	updateCalls int
}

func (s *spyTournamentStore) Create(ctx context.Context, tx *sqlx.Tx, t *tournament.Tournament) error {
	s.createCalls++
	return nil
}

func (s *spyTournamentStore) Get(ctx context.Context, id uuid.UUID) (*tournament.Tournament, error) {
	return nil, apperr.NotFound("tournament %s not found", id)
}

func (s *spyTournamentStore) List(ctx context.Context) ([]tournament.Tournament, error) {
	return nil, nil
}

func (s *spyTournamentStore) UpdateStatus(ctx context.Context, id uuid.UUID, status tournament.TournamentStatus) error {
	s.updateCalls++
	return nil
}

func TestCreateTournamentUnauthenticated(t *testing.T) {
	spy := &spyTournamentStore{}
	svc := NewTournamentService(nil, spy, nil, nil)

	_, err := svc.Create(context.Background(), validTournamentInput())
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindUnauthenticated))
	assert.Zero(t, spy.createCalls, "a rejected request must not write")
}

func TestCreateTournamentValidation(t *testing.T) {
	spy := &spyTournamentStore{}
	svc := NewTournamentService(nil, spy, nil, nil)

	ctx := context.WithValue(context.Background(), middleware.UserIDKey, uuid.New())

	testCases := []struct {
		name  string
		fixup func(*CreateTournamentInput)
	}{
		{"missing title", func(in *CreateTournamentInput) { in.Title = "" }},
		{"bad date", func(in *CreateTournamentInput) { in.Date = "12/09/2026" }},
		{"bad start time", func(in *CreateTournamentInput) { in.StartTime = "9am" }},
		{"missing location", func(in *CreateTournamentInput) { in.Location = "" }},
		{"too few slots", func(in *CreateTournamentInput) { in.MaxParticipants = 1 }},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			input := validTournamentInput()
			tc.fixup(&input)

			_, err := svc.Create(ctx, input)
			require.Error(t, err)
			assert.True(t, apperr.IsKind(err, apperr.KindValidation))
		})
	}
	assert.Zero(t, spy.createCalls)
}

func TestCreateTournamentPersists(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	ctx, organizerID := createOrganizer(t, db)
	created := createTournamentForTest(t, db, ctx, 8)

	assert.Equal(t, tournament.TournamentUpcoming, created.Status)
	assert.Equal(t, organizerID, created.CreatedBy)

	got, err := store.NewTournamentStore(db).Get(context.Background(), created.ID)
	require.NoError(t, err)
	assert.Equal(t, "Copa de Verão", got.Title)
	assert.Equal(t, 8, got.MaxParticipants)
}

func TestAdvanceStatusLifecycle(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	ctx, _ := createOrganizer(t, db)
	trn := createTournamentForTest(t, db, ctx, 8)

	tournamentStore := store.NewTournamentStore(db)
	svc := NewTournamentService(db, tournamentStore, store.NewParticipantStore(db), store.NewMatchStore(db))

	advanced, err := svc.AdvanceStatus(ctx, trn.ID, tournament.TournamentInProgress)
	require.NoError(t, err)
	assert.Equal(t, tournament.TournamentInProgress, advanced.Status)

	advanced, err = svc.AdvanceStatus(ctx, trn.ID, tournament.TournamentCompleted)
	require.NoError(t, err)
	assert.Equal(t, tournament.TournamentCompleted, advanced.Status)

	_, err = svc.AdvanceStatus(ctx, trn.ID, tournament.TournamentInProgress)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))

	got, err := tournamentStore.Get(ctx, trn.ID)
	require.NoError(t, err)
	assert.Equal(t, tournament.TournamentCompleted, got.Status, "a rejected transition must not persist")
}

func TestAdvanceStatusSkipRejected(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	ctx, _ := createOrganizer(t, db)
	trn := createTournamentForTest(t, db, ctx, 8)

	svc := NewTournamentService(db, store.NewTournamentStore(db), store.NewParticipantStore(db), store.NewMatchStore(db))

	_, err := svc.AdvanceStatus(ctx, trn.ID, tournament.TournamentCompleted)
	require.Error(t, err)
	assert.True(t, apperr.IsKind(err, apperr.KindValidation))
}

func TestTournamentDetailCountsParticipants(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	ctx, _ := createOrganizer(t, db)
	trn := createTournamentForTest(t, db, ctx, 8)

	participantSvc := NewParticipantService(db, store.NewTournamentStore(db), store.NewParticipantStore(db))
	_, err := participantSvc.Register(ctx, trn.ID, RegisterInput{Name: "Ana", Email: "ana@example.com", Phone: "11999990000"})
	require.NoError(t, err)

	svc := NewTournamentService(db, store.NewTournamentStore(db), store.NewParticipantStore(db), store.NewMatchStore(db))
	detail, err := svc.Detail(ctx, trn.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, detail.ParticipantCount)
	assert.Equal(t, trn.ID, detail.Tournament.ID)
}

func TestStandings(t *testing.T) {
	db := setupTestDB(t)
	defer db.Close()

	ctx, _ := createOrganizer(t, db)
	trn := createTournamentForTest(t, db, ctx, 8)

	participantSvc := NewParticipantService(db, store.NewTournamentStore(db), store.NewParticipantStore(db))
	var ids [4]uuid.UUID
	names := [4]string{"Ana", "Bruna", "Caio", "Davi"}
	for i, name := range names {
		p, err := participantSvc.Register(ctx, trn.ID, RegisterInput{
			Name: name, Email: name + "@example.com", Phone: "11999990000",
		})
		require.NoError(t, err)
		ids[i] = p.ID
	}

	matchSvc := NewMatchService(db, store.NewParticipantStore(db), store.NewMatchStore(db))
	m, err := matchSvc.Create(ctx, trn.ID, CreateMatchInput{
		Team1Player1: ids[0], Team1Player2: ids[1],
		Team2Player1: ids[2], Team2Player2: ids[3],
		Court: "Quadra 1",
	})
	require.NoError(t, err)

	_, err = matchSvc.Start(ctx, m.ID)
	require.NoError(t, err)
	_, err = matchSvc.AddPoint(ctx, m.ID, 1)
	require.NoError(t, err)
	_, err = matchSvc.Finish(ctx, m.ID)
	require.NoError(t, err)

	svc := NewTournamentService(db, store.NewTournamentStore(db), store.NewParticipantStore(db), store.NewMatchStore(db))
	standings, err := svc.Standings(ctx, trn.ID)
	require.NoError(t, err)
	require.Len(t, standings, 4)

	assert.Equal(t, 1, standings[0].Rank)
	assert.Equal(t, 2, standings[0].Points)
	assert.Contains(t, []string{"Ana", "Bruna"}, standings[0].Name)
	assert.Equal(t, 0, standings[2].Points)
	assert.Equal(t, 0, standings[3].Points)
}
