package store

import (
	"context"
	"testing"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/require"

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

// createTestUser inserts an organizer row so tournaments have a valid
// created_by foreign key.
func createTestUser(t *testing.T, db *sqlx.DB) uuid.UUID {
	t.Helper()

	user := &users.User{
		ID:       uuid.New(),
		Email:    "organizer@example.com",
		Username: "Organizer",
	}
	require.NoError(t, NewUserStore(db).CreateUser(context.Background(), user))
	return user.ID
}

func createTestTournament(t *testing.T, db *sqlx.DB, createdBy uuid.UUID, maxParticipants int) *tournament.Tournament {
	t.Helper()

	trn := &tournament.Tournament{
		ID:              uuid.New(),
		Title:           "Copa de Verão",
		Date:            "2026-09-12",
		StartTime:       "09:00",
		EndTime:         "17:00",
		Location:        "Arena Central",
		MaxParticipants: maxParticipants,
		Status:          tournament.TournamentUpcoming,
		CreatedBy:       createdBy,
	}

	ctx := context.Background()
	tx, err := db.BeginTxx(ctx, nil)
	require.NoError(t, err)
	require.NoError(t, NewTournamentStore(db).Create(ctx, tx, trn))
	require.NoError(t, tx.Commit())
	return trn
}

func createTestParticipant(t *testing.T, db *sqlx.DB, tournamentID uuid.UUID, name, email string) *tournament.Participant {
	t.Helper()

	p := &tournament.Participant{
		ID:           uuid.New(),
		TournamentID: tournamentID,
		Name:         name,
		Email:        email,
		Phone:        "11999990000",
	}

	ctx := context.Background()
	tx, err := db.BeginTxx(ctx, nil)
	require.NoError(t, err)
	require.NoError(t, NewParticipantStore(db).Create(ctx, tx, p))
	require.NoError(t, tx.Commit())
	return p
}
