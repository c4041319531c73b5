package store

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/vitoriotavares/beach-tenis-sort/internal/tournament"
)

// ParticipantOrder picks the roster ordering at the call site so the two
// listing surfaces (roster panel, match player picker) cannot silently
// disagree about it.
type ParticipantOrder string

const (
	// OrderByRegistration is the canonical roster order.
	OrderByRegistration ParticipantOrder = "created_at ASC"
	// OrderByName is for pickers that only show names.
	OrderByName ParticipantOrder = "name ASC"
)

type ParticipantStore struct {
	db *sqlx.DB
}

func NewParticipantStore(db *sqlx.DB) *ParticipantStore {
	return &ParticipantStore{db: db}
}

func (s *ParticipantStore) Create(ctx context.Context, tx *sqlx.Tx, p *tournament.Participant) error {
	_, err := tx.NamedExecContext(ctx, `INSERT INTO participants (id, tournament_id, name, email, phone, paid, checked_in, user_id, avatar_url)
		VALUES (:id, :tournament_id, :name, :email, :phone, :paid, :checked_in, :user_id, :avatar_url)`, p)
	return classify("create participant", err)
}

func (s *ParticipantStore) Get(ctx context.Context, id uuid.UUID) (*tournament.Participant, error) {
	var p tournament.Participant
	err := s.db.GetContext(ctx, &p, s.db.Rebind("SELECT * FROM participants WHERE id = ?"), id)
	if err != nil {
		return nil, classify("get participant", err)
	}
	return &p, nil
}

// GetByEmail finds a registration by (tournament, email), inside the
// registration transaction when tx is non-nil. It returns (nil, nil) when
// none exists, so the caller can distinguish "not registered yet" from a
// store failure.
func (s *ParticipantStore) GetByEmail(ctx context.Context, tx *sqlx.Tx, tournamentID uuid.UUID, email string) (*tournament.Participant, error) {
	var p tournament.Participant
	q := "SELECT * FROM participants WHERE tournament_id = ? AND email = ?"
	var err error
	if tx != nil {
		err = tx.GetContext(ctx, &p, tx.Rebind(q), tournamentID, email)
	} else {
		err = s.db.GetContext(ctx, &p, s.db.Rebind(q), tournamentID, email)
	}
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, classify("get participant by email", err)
	}
	return &p, nil
}

func (s *ParticipantStore) List(ctx context.Context, tournamentID uuid.UUID, order ParticipantOrder) ([]tournament.Participant, error) {
	var participants []tournament.Participant
	err := s.db.SelectContext(ctx, &participants,
		s.db.Rebind("SELECT * FROM participants WHERE tournament_id = ? ORDER BY "+string(order)),
		tournamentID)
	if err != nil {
		return nil, classify("list participants", err)
	}
	return participants, nil
}

func (s *ParticipantStore) CountByTournament(ctx context.Context, tx *sqlx.Tx, tournamentID uuid.UUID) (int, error) {
	var count int
	q := "SELECT COUNT(*) FROM participants WHERE tournament_id = ?"
	var err error
	if tx != nil {
		err = tx.GetContext(ctx, &count, tx.Rebind(q), tournamentID)
	} else {
		err = s.db.GetContext(ctx, &count, s.db.Rebind(q), tournamentID)
	}
	if err != nil {
		return 0, classify("count participants", err)
	}
	return count, nil
}

func (s *ParticipantStore) SetPaid(ctx context.Context, id uuid.UUID, paid bool) error {
	res, err := s.db.ExecContext(ctx,
		s.db.Rebind("UPDATE participants SET paid = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?"),
		paid, id)
	return classifyUpdate("update participant payment", res, err)
}

func (s *ParticipantStore) SetCheckedIn(ctx context.Context, id uuid.UUID, checkedIn bool) error {
	res, err := s.db.ExecContext(ctx,
		s.db.Rebind("UPDATE participants SET checked_in = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?"),
		checkedIn, id)
	return classifyUpdate("update participant check-in", res, err)
}

func classifyUpdate(op string, res sql.Result, err error) error {
	if err != nil {
		return classify(op, err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return classify(op, sql.ErrNoRows)
	}
	return nil
}
