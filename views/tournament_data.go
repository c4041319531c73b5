package views

import (
	"github.com/vitoriotavares/beach-tenis-sort/internal/tournament"
)

const (
	TabParticipants = "participants"
	TabMatches      = "matches"
	TabRanking      = "ranking"
)

// DetailData carries everything the tournament page renders: the header, the
// signed-in user's own registration panel and the three tabs.
type DetailData struct {
	Tournament       *tournament.Tournament
	ParticipantCount int
	Participants     []tournament.Participant
	Matches          []tournament.MatchSummary
	Standings        []tournament.Standing
	Registration     *tournament.Participant
	ActiveTab        string
}

// NextStatus is the single forward transition the header button offers, if
// the tournament has one left.
func (d DetailData) NextStatus() (tournament.TournamentStatus, bool) {
	switch d.Tournament.Status {
	case tournament.TournamentUpcoming:
		return tournament.TournamentInProgress, true
	case tournament.TournamentInProgress:
		return tournament.TournamentCompleted, true
	}
	return "", false
}

func (d DetailData) Full() bool {
	return d.ParticipantCount >= d.Tournament.MaxParticipants
}

// CheckedIn lists the participants eligible for new matches, the picker
// shown in the match creation form.
func (d DetailData) CheckedIn() []tournament.Participant {
	var out []tournament.Participant
	for _, p := range d.Participants {
		if p.CheckedIn {
			out = append(out, p)
		}
	}
	return out
}

// NormalizeTab maps the ?tab= query value onto a known tab, defaulting to
// the roster.
func NormalizeTab(tab string) string {
	switch tab {
	case TabMatches, TabRanking:
		return tab
	default:
		return TabParticipants
	}
}
