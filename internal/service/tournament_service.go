package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/vitoriotavares/beach-tenis-sort/internal/apperr"
	"github.com/vitoriotavares/beach-tenis-sort/internal/middleware"
	"github.com/vitoriotavares/beach-tenis-sort/internal/store"
	"github.com/vitoriotavares/beach-tenis-sort/internal/tournament"
)

type TournamentService struct {
	db           *sqlx.DB
	tournaments  TournamentStore
	participants ParticipantStore
	matches      MatchStore
}

func NewTournamentService(db *sqlx.DB, tournaments TournamentStore, participants ParticipantStore, matches MatchStore) *TournamentService {
	return &TournamentService{db: db, tournaments: tournaments, participants: participants, matches: matches}
}

type CreateTournamentInput struct {
	Title           string `validate:"required,max=100"`
	Date            string `validate:"required,datetime=2006-01-02"`
	StartTime       string `validate:"required,datetime=15:04"`
	EndTime         string `validate:"required,datetime=15:04"`
	Location        string `validate:"required,max=200"`
	MaxParticipants int    `validate:"required,gte=2"`
}

// Create registers a new upcoming tournament owned by the signed-in user.
// An anonymous caller is rejected before any store call.
func (s *TournamentService) Create(ctx context.Context, input CreateTournamentInput) (*tournament.Tournament, error) {
	creatorID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		return nil, apperr.Unauthenticated("sign in to create a tournament")
	}
	if err := checkInput(input); err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, apperr.Store("begin create tournament", err)
	}
	defer tx.Rollback()

	t := &tournament.Tournament{
		ID:              uuid.New(),
		Title:           input.Title,
		Date:            input.Date,
		StartTime:       input.StartTime,
		EndTime:         input.EndTime,
		Location:        input.Location,
		MaxParticipants: input.MaxParticipants,
		Status:          tournament.TournamentUpcoming,
		CreatedBy:       creatorID,
	}
	if err := s.tournaments.Create(ctx, tx, t); err != nil {
		return nil, err
	}
	return t, tx.Commit()
}

func (s *TournamentService) List(ctx context.Context) ([]tournament.Tournament, error) {
	return s.tournaments.List(ctx)
}

type TournamentDetail struct {
	Tournament       *tournament.Tournament
	ParticipantCount int
}

func (s *TournamentService) Detail(ctx context.Context, id uuid.UUID) (*TournamentDetail, error) {
	t, err := s.tournaments.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	count, err := s.participants.CountByTournament(ctx, nil, id)
	if err != nil {
		return nil, err
	}
	return &TournamentDetail{Tournament: t, ParticipantCount: count}, nil
}

// AdvanceStatus moves a tournament along its lifecycle. The transition rules
// live on the model; this only loads, validates and persists.
func (s *TournamentService) AdvanceStatus(ctx context.Context, id uuid.UUID, next tournament.TournamentStatus) (*tournament.Tournament, error) {
	t, err := s.tournaments.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := t.Advance(next); err != nil {
		return nil, err
	}
	if err := s.tournaments.UpdateStatus(ctx, id, t.Status); err != nil {
		return nil, err
	}
	return t, nil
}

// Standings derives the ranking tab from completed matches; nothing is
// stored.
func (s *TournamentService) Standings(ctx context.Context, id uuid.UUID) ([]tournament.Standing, error) {
	participants, err := s.participants.List(ctx, id, store.OrderByRegistration)
	if err != nil {
		return nil, err
	}
	matches, err := s.matches.ListByTournament(ctx, id)
	if err != nil {
		return nil, err
	}
	return tournament.ComputeStandings(participants, matches), nil
}
