package service

import (
	"context"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"github.com/vitoriotavares/beach-tenis-sort/internal/apperr"
	"github.com/vitoriotavares/beach-tenis-sort/internal/middleware"
	"github.com/vitoriotavares/beach-tenis-sort/internal/pix"
	"github.com/vitoriotavares/beach-tenis-sort/internal/store"
	"github.com/vitoriotavares/beach-tenis-sort/internal/tournament"
)

// RegistrationFee is the flat per-player fee shown on the PIX panel. The
// payment flow is a mock: confirming it just flips the paid flag.
const RegistrationFee = 50.00

type ParticipantService struct {
	db           *sqlx.DB
	tournaments  TournamentStore
	participants ParticipantStore
}

func NewParticipantService(db *sqlx.DB, tournaments TournamentStore, participants ParticipantStore) *ParticipantService {
	return &ParticipantService{db: db, tournaments: tournaments, participants: participants}
}

type RegisterInput struct {
	Name  string `validate:"required,max=100"`
	Email string `validate:"required,email"`
	Phone string `validate:"required,max=30"`
}

// Register creates a registration for (tournament, email), or returns the
// existing one unchanged: registering twice has no further effect. A new
// registration into a full tournament is rejected, but the idempotent path
// still answers even when the roster is full.
func (s *ParticipantService) Register(ctx context.Context, tournamentID uuid.UUID, input RegisterInput) (*tournament.Participant, error) {
	input.Email = strings.ToLower(strings.TrimSpace(input.Email))
	if err := checkInput(input); err != nil {
		return nil, err
	}

	t, err := s.tournaments.Get(ctx, tournamentID)
	if err != nil {
		return nil, err
	}

	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return nil, apperr.Store("begin registration", err)
	}
	defer tx.Rollback()

	existing, err := s.participants.GetByEmail(ctx, tx, tournamentID, input.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	count, err := s.participants.CountByTournament(ctx, tx, tournamentID)
	if err != nil {
		return nil, err
	}
	if count >= t.MaxParticipants {
		return nil, apperr.Conflict("tournament %q is full (%d/%d)", t.Title, count, t.MaxParticipants)
	}

	p := &tournament.Participant{
		ID:           uuid.New(),
		TournamentID: tournamentID,
		Name:         input.Name,
		Email:        input.Email,
		Phone:        input.Phone,
	}
	if user := middleware.GetAuthenticatedUser(ctx); user != nil {
		id := user.ID
		p.UserID = &id
		p.AvatarURL = user.AvatarURL
	}

	if err := s.participants.Create(ctx, tx, p); err != nil {
		return nil, err
	}
	return p, tx.Commit()
}

func (s *ParticipantService) Get(ctx context.Context, id uuid.UUID) (*tournament.Participant, error) {
	return s.participants.Get(ctx, id)
}

func (s *ParticipantService) List(ctx context.Context, tournamentID uuid.UUID) ([]tournament.Participant, error) {
	return s.participants.List(ctx, tournamentID, store.OrderByRegistration)
}

// RegistrationFor reports the signed-in user's own registration, if any.
func (s *ParticipantService) RegistrationFor(ctx context.Context, tournamentID uuid.UUID, email string) (*tournament.Participant, error) {
	return s.participants.GetByEmail(ctx, nil, tournamentID, strings.ToLower(strings.TrimSpace(email)))
}

func (s *ParticipantService) SetPaid(ctx context.Context, id uuid.UUID, paid bool) error {
	return s.participants.SetPaid(ctx, id, paid)
}

func (s *ParticipantService) SetCheckedIn(ctx context.Context, id uuid.UUID, checkedIn bool) error {
	return s.participants.SetCheckedIn(ctx, id, checkedIn)
}

type PaymentInfo struct {
	Participant *tournament.Participant
	Charge      pix.Charge
}

// Payment builds the PIX charge panel for a participant: the fixed fee, the
// copy-paste BR Code and (via the image route) its QR rendering.
func (s *ParticipantService) Payment(ctx context.Context, participantID uuid.UUID) (*PaymentInfo, error) {
	p, err := s.participants.Get(ctx, participantID)
	if err != nil {
		return nil, err
	}

	key := os.Getenv("PIX_KEY")
	if key == "" {
		key = "pagamentos@arenabeachtennis.com.br"
	}
	charge := pix.Charge{
		Key:          key,
		MerchantName: "Arena Beach Tennis",
		MerchantCity: "SAO PAULO",
		Amount:       RegistrationFee,
		TxID:         "***",
	}
	return &PaymentInfo{Participant: p, Charge: charge}, nil
}

// ConfirmPayment marks the participant as paid. There is no gateway behind
// this; the organizer confirms the transfer manually.
func (s *ParticipantService) ConfirmPayment(ctx context.Context, participantID uuid.UUID) error {
	return s.participants.SetPaid(ctx, participantID, true)
}
