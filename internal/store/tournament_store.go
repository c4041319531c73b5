package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/vitoriotavares/beach-tenis-sort/internal/tournament"
)

type TournamentStore struct {
	db *sqlx.DB
}

func NewTournamentStore(db *sqlx.DB) *TournamentStore {
	return &TournamentStore{db: db}
}

func (s *TournamentStore) Create(ctx context.Context, tx *sqlx.Tx, t *tournament.Tournament) error {
	_, err := tx.NamedExecContext(ctx, `INSERT INTO tournaments (id, title, date, start_time, end_time, location, max_participants, status, created_by)
		VALUES (:id, :title, :date, :start_time, :end_time, :location, :max_participants, :status, :created_by)`, t)
	return classify("create tournament", err)
}

func (s *TournamentStore) Get(ctx context.Context, id uuid.UUID) (*tournament.Tournament, error) {
	var t tournament.Tournament
	err := s.db.GetContext(ctx, &t, s.db.Rebind("SELECT * FROM tournaments WHERE id = ?"), id)
	if err != nil {
		return nil, classify("get tournament", err)
	}
	return &t, nil
}

// List returns every tournament ordered by event date ascending, the order
// the landing page shows.
func (s *TournamentStore) List(ctx context.Context) ([]tournament.Tournament, error) {
	var tournaments []tournament.Tournament
	err := s.db.SelectContext(ctx, &tournaments, "SELECT * FROM tournaments ORDER BY date ASC, created_at ASC")
	if err != nil {
		return nil, classify("list tournaments", err)
	}
	return tournaments, nil
}

func (s *TournamentStore) UpdateStatus(ctx context.Context, id uuid.UUID, status tournament.TournamentStatus) error {
	_, err := s.db.ExecContext(ctx,
		s.db.Rebind("UPDATE tournaments SET status = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?"),
		status, id)
	return classify("update tournament status", err)
}
