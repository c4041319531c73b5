package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/vitoriotavares/beach-tenis-sort/internal/store"
	"github.com/vitoriotavares/beach-tenis-sort/internal/tournament"
)

// The services depend on these narrow store interfaces; the sqlx stores in
// internal/store satisfy them, and tests substitute spies.

type TournamentStore interface {
	Create(ctx context.Context, tx *sqlx.Tx, t *tournament.Tournament) error
	Get(ctx context.Context, id uuid.UUID) (*tournament.Tournament, error)
	List(ctx context.Context) ([]tournament.Tournament, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status tournament.TournamentStatus) error
}

type ParticipantStore interface {
	Create(ctx context.Context, tx *sqlx.Tx, p *tournament.Participant) error
	Get(ctx context.Context, id uuid.UUID) (*tournament.Participant, error)
	GetByEmail(ctx context.Context, tx *sqlx.Tx, tournamentID uuid.UUID, email string) (*tournament.Participant, error)
	List(ctx context.Context, tournamentID uuid.UUID, order store.ParticipantOrder) ([]tournament.Participant, error)
	CountByTournament(ctx context.Context, tx *sqlx.Tx, tournamentID uuid.UUID) (int, error)
	SetPaid(ctx context.Context, id uuid.UUID, paid bool) error
	SetCheckedIn(ctx context.Context, id uuid.UUID, checkedIn bool) error
}

type MatchStore interface {
	Create(ctx context.Context, m *tournament.Match) error
	Get(ctx context.Context, id uuid.UUID) (*tournament.Match, error)
	Update(ctx context.Context, m *tournament.Match) error
	ListByTournament(ctx context.Context, tournamentID uuid.UUID) ([]tournament.Match, error)
	ListWithPlayers(ctx context.Context, tournamentID uuid.UUID) ([]tournament.MatchSummary, error)
}
