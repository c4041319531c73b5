package tournament

import (
	"time"

	"github.com/google/uuid"

	"github.com/vitoriotavares/beach-tenis-sort/internal/apperr"
)

type TournamentStatus string

const (
	TournamentUpcoming   TournamentStatus = "upcoming"
	TournamentInProgress TournamentStatus = "in_progress"
	TournamentCompleted  TournamentStatus = "completed"
)

func (s TournamentStatus) Valid() bool {
	switch s {
	case TournamentUpcoming, TournamentInProgress, TournamentCompleted:
		return true
	}
	return false
}

type Tournament struct {
	ID    uuid.UUID `db:"id"`
	Title string    `db:"title"`

	// Date is the event day (YYYY-MM-DD); start and end times are HH:MM.
	// Kept as text the way the event forms submit them.
	Date      string `db:"date"`
	StartTime string `db:"start_time"`
	EndTime   string `db:"end_time"`
	Location  string `db:"location"`

	MaxParticipants int              `db:"max_participants"`
	Status          TournamentStatus `db:"status"`
	CreatedBy       uuid.UUID        `db:"created_by"`
	CreatedAt       time.Time        `db:"created_at"`
	UpdatedAt       time.Time        `db:"updated_at"`
}

// Advance moves the tournament to next. The only legal order is
// upcoming -> in_progress -> completed; everything else is rejected here so
// no call site can patch an arbitrary status onto the row.
func (t *Tournament) Advance(next TournamentStatus) error {
	if !next.Valid() {
		return apperr.Validation("unknown tournament status %q", next)
	}
	legal := (t.Status == TournamentUpcoming && next == TournamentInProgress) ||
		(t.Status == TournamentInProgress && next == TournamentCompleted)
	if !legal {
		return apperr.Validation("cannot move tournament from %s to %s", t.Status, next)
	}
	t.Status = next
	return nil
}
