package store

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/vitoriotavares/beach-tenis-sort/internal/tournament"
)

type MatchStore struct {
	db *sqlx.DB
}

func NewMatchStore(db *sqlx.DB) *MatchStore {
	return &MatchStore{db: db}
}

func (s *MatchStore) Create(ctx context.Context, m *tournament.Match) error {
	_, err := s.db.NamedExecContext(ctx, `INSERT INTO matches (id, tournament_id, team1_player1_id, team1_player2_id, team2_player1_id, team2_player2_id, court, score1, score2, status)
		VALUES (:id, :tournament_id, :team1_player1_id, :team1_player2_id, :team2_player1_id, :team2_player2_id, :court, :score1, :score2, :status)`, m)
	return classify("create match", err)
}

func (s *MatchStore) Get(ctx context.Context, id uuid.UUID) (*tournament.Match, error) {
	var m tournament.Match
	err := s.db.GetContext(ctx, &m, s.db.Rebind("SELECT * FROM matches WHERE id = ?"), id)
	if err != nil {
		return nil, classify("get match", err)
	}
	return &m, nil
}

// Update persists the scores and status of a match after a transition. Every
// transition writes the full scoring state back.
func (s *MatchStore) Update(ctx context.Context, m *tournament.Match) error {
	_, err := s.db.NamedExecContext(ctx, `UPDATE matches
		SET score1 = :score1, score2 = :score2, status = :status, updated_at = CURRENT_TIMESTAMP
		WHERE id = :id`, m)
	return classify("update match", err)
}

func (s *MatchStore) ListByTournament(ctx context.Context, tournamentID uuid.UUID) ([]tournament.Match, error) {
	var matches []tournament.Match
	err := s.db.SelectContext(ctx, &matches,
		s.db.Rebind("SELECT * FROM matches WHERE tournament_id = ? ORDER BY created_at DESC"),
		tournamentID)
	if err != nil {
		return nil, classify("list matches", err)
	}
	return matches, nil
}

// ListWithPlayers resolves the four player names in one joined query. The
// join always yields exactly one name per slot, so nothing downstream has to
// sniff row shapes.
func (s *MatchStore) ListWithPlayers(ctx context.Context, tournamentID uuid.UUID) ([]tournament.MatchSummary, error) {
	var summaries []tournament.MatchSummary
	err := s.db.SelectContext(ctx, &summaries, s.db.Rebind(`
		SELECT m.id, m.court, m.score1, m.score2, m.status, m.created_at,
			p1.name AS team1_player1_name,
			p2.name AS team1_player2_name,
			p3.name AS team2_player1_name,
			p4.name AS team2_player2_name
		FROM matches m
		JOIN participants p1 ON p1.id = m.team1_player1_id
		JOIN participants p2 ON p2.id = m.team1_player2_id
		JOIN participants p3 ON p3.id = m.team2_player1_id
		JOIN participants p4 ON p4.id = m.team2_player2_id
		WHERE m.tournament_id = ?
		ORDER BY m.created_at DESC`), tournamentID)
	if err != nil {
		return nil, classify("list matches with players", err)
	}
	return summaries, nil
}
