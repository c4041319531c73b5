package tournament

import (
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/vitoriotavares/beach-tenis-sort/internal/apperr"
)

type MatchStatus string

const (
	MatchPending    MatchStatus = "pending"
	MatchInProgress MatchStatus = "in_progress"
	MatchCompleted  MatchStatus = "completed"
)

// Match is one 2v2 contest between four participants of the same tournament.
type Match struct {
	ID           uuid.UUID `db:"id"`
	TournamentID uuid.UUID `db:"tournament_id"`

	Team1Player1ID uuid.UUID `db:"team1_player1_id"`
	Team1Player2ID uuid.UUID `db:"team1_player2_id"`
	Team2Player1ID uuid.UUID `db:"team2_player1_id"`
	Team2Player2ID uuid.UUID `db:"team2_player2_id"`

	Court  string      `db:"court"`
	Score1 int         `db:"score1"`
	Score2 int         `db:"score2"`
	Status MatchStatus `db:"status"`

	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// NewMatch builds a pending match with zeroed scores. The four player slots
// must reference four distinct participants and the court label must be set.
func NewMatch(tournamentID uuid.UUID, players [4]uuid.UUID, court string) (*Match, error) {
	if strings.TrimSpace(court) == "" {
		return nil, apperr.Validation("court is required")
	}
	seen := make(map[uuid.UUID]bool, 4)
	for _, p := range players {
		if p == uuid.Nil {
			return nil, apperr.Validation("all four player slots are required")
		}
		if seen[p] {
			return nil, apperr.Validation("a player cannot occupy two slots in the same match")
		}
		seen[p] = true
	}

	return &Match{
		ID:             uuid.New(),
		TournamentID:   tournamentID,
		Team1Player1ID: players[0],
		Team1Player2ID: players[1],
		Team2Player1ID: players[2],
		Team2Player2ID: players[3],
		Court:          strings.TrimSpace(court),
		Status:         MatchPending,
	}, nil
}

func (m *Match) PlayerIDs() [4]uuid.UUID {
	return [4]uuid.UUID{m.Team1Player1ID, m.Team1Player2ID, m.Team2Player1ID, m.Team2Player2ID}
}

// Start moves the match onto court. Only a pending match can start.
func (m *Match) Start() error {
	if m.Status != MatchPending {
		return apperr.Validation("only a pending match can be started (status is %s)", m.Status)
	}
	m.Status = MatchInProgress
	return nil
}

// AddPoint increments the given team's score by one. Scores only move while
// the match is in progress, and they never go down.
func (m *Match) AddPoint(team int) error {
	if m.Status != MatchInProgress {
		return apperr.Validation("scores can only change while the match is in progress")
	}
	switch team {
	case 1:
		m.Score1++
	case 2:
		m.Score2++
	default:
		return apperr.Validation("team must be 1 or 2, got %d", team)
	}
	return nil
}

// Finish completes the match. There is no pending -> completed shortcut.
func (m *Match) Finish() error {
	if m.Status != MatchInProgress {
		return apperr.Validation("only a match in progress can be finished (status is %s)", m.Status)
	}
	m.Status = MatchCompleted
	return nil
}

// Reopen puts a completed match back in progress, the single backward
// transition the scoreboard allows.
func (m *Match) Reopen() error {
	if m.Status != MatchCompleted {
		return apperr.Validation("only a completed match can be reopened (status is %s)", m.Status)
	}
	m.Status = MatchInProgress
	return nil
}

// WinnerTeam derives the winning team of a completed match for display.
// It returns 0 while the match is not completed or when the score is level.
// The winner is never stored on the row.
func (m *Match) WinnerTeam() int {
	if m.Status != MatchCompleted {
		return 0
	}
	switch {
	case m.Score1 > m.Score2:
		return 1
	case m.Score2 > m.Score1:
		return 2
	default:
		return 0
	}
}

// MatchSummary is a match row with the four player names resolved, the shape
// the scoreboard renders. The store produces it from a single joined query.
type MatchSummary struct {
	ID               uuid.UUID   `db:"id"`
	Court            string      `db:"court"`
	Score1           int         `db:"score1"`
	Score2           int         `db:"score2"`
	Status           MatchStatus `db:"status"`
	Team1Player1Name string      `db:"team1_player1_name"`
	Team1Player2Name string      `db:"team1_player2_name"`
	Team2Player1Name string      `db:"team2_player1_name"`
	Team2Player2Name string      `db:"team2_player2_name"`
	CreatedAt        time.Time   `db:"created_at"`
}

func (s MatchSummary) Team1() [2]string {
	return [2]string{s.Team1Player1Name, s.Team1Player2Name}
}

func (s MatchSummary) Team2() [2]string {
	return [2]string{s.Team2Player1Name, s.Team2Player2Name}
}

func (s MatchSummary) WinnerTeam() int {
	m := Match{Score1: s.Score1, Score2: s.Score2, Status: s.Status}
	return m.WinnerTeam()
}
