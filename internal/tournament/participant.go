package tournament

import (
	"time"

	"github.com/google/uuid"
)

// Participant is one player's registration inside a single tournament.
// Paid and CheckedIn start false and are flipped independently by the
// organizer (or by the mock payment flow).
type Participant struct {
	ID           uuid.UUID  `db:"id"`
	TournamentID uuid.UUID  `db:"tournament_id"`
	Name         string     `db:"name"`
	Email        string     `db:"email"`
	Phone        string     `db:"phone"`
	Paid         bool       `db:"paid"`
	CheckedIn    bool       `db:"checked_in"`
	UserID       *uuid.UUID `db:"user_id"`
	AvatarURL    *string    `db:"avatar_url"`
	CreatedAt    time.Time  `db:"created_at"`
	UpdatedAt    time.Time  `db:"updated_at"`
}
