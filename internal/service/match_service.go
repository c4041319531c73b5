package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/vitoriotavares/beach-tenis-sort/internal/apperr"
	"github.com/vitoriotavares/beach-tenis-sort/internal/tournament"
)

type MatchService struct {
	db           *sqlx.DB
	participants ParticipantStore
	matches      MatchStore
}

func NewMatchService(db *sqlx.DB, participants ParticipantStore, matches MatchStore) *MatchService {
	return &MatchService{db: db, participants: participants, matches: matches}
}

type CreateMatchInput struct {
	Team1Player1 uuid.UUID
	Team1Player2 uuid.UUID
	Team2Player1 uuid.UUID
	Team2Player2 uuid.UUID
	Court        string
}

// Create schedules a pending match between four distinct participants of the
// tournament. Slot distinctness and the court label are validated by the
// model; membership of each player in the tournament is checked here.
func (s *MatchService) Create(ctx context.Context, tournamentID uuid.UUID, input CreateMatchInput) (*tournament.Match, error) {
	players := [4]uuid.UUID{input.Team1Player1, input.Team1Player2, input.Team2Player1, input.Team2Player2}

	m, err := tournament.NewMatch(tournamentID, players, input.Court)
	if err != nil {
		return nil, err
	}

	for _, id := range players {
		p, err := s.participants.Get(ctx, id)
		if apperr.IsKind(err, apperr.KindNotFound) {
			return nil, apperr.Validation("player %s is not registered", id)
		}
		if err != nil {
			return nil, err
		}
		if p.TournamentID != tournamentID {
			return nil, apperr.Validation("player %s belongs to another tournament", p.Name)
		}
	}

	if err := s.matches.Create(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *MatchService) List(ctx context.Context, tournamentID uuid.UUID) ([]tournament.MatchSummary, error) {
	return s.matches.ListWithPlayers(ctx, tournamentID)
}

func (s *MatchService) Start(ctx context.Context, id uuid.UUID) (*tournament.Match, error) {
	return s.transition(ctx, id, (*tournament.Match).Start)
}

func (s *MatchService) Finish(ctx context.Context, id uuid.UUID) (*tournament.Match, error) {
	return s.transition(ctx, id, (*tournament.Match).Finish)
}

func (s *MatchService) Reopen(ctx context.Context, id uuid.UUID) (*tournament.Match, error) {
	return s.transition(ctx, id, (*tournament.Match).Reopen)
}

// AddPoint increments a team's score on a match in progress.
func (s *MatchService) AddPoint(ctx context.Context, id uuid.UUID, team int) (*tournament.Match, error) {
	return s.transition(ctx, id, func(m *tournament.Match) error {
		return m.AddPoint(team)
	})
}

// transition loads the match, applies the model transition and persists the
// whole scoring state. Illegal transitions never reach the store.
func (s *MatchService) transition(ctx context.Context, id uuid.UUID, apply func(*tournament.Match) error) (*tournament.Match, error) {
	m, err := s.matches.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := apply(m); err != nil {
		return nil, err
	}
	if err := s.matches.Update(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}
