package tournament

import (
	"sort"

	"github.com/google/uuid"
)

const (
	pointsPerWin  = 2
	pointsPerDraw = 1
)

// Standing is one row of the derived ranking tab. Standings are computed
// from completed matches on every read and never persisted.
type Standing struct {
	ParticipantID uuid.UUID
	Name          string
	Played        int
	Wins          int
	Draws         int
	Losses        int
	ScoreFor      int
	ScoreAgainst  int
	Points        int
	Rank          int
}

// ComputeStandings ranks every registered participant by points from
// completed matches. Ties break on score difference, then name.
func ComputeStandings(participants []Participant, matches []Match) []Standing {
	byID := make(map[uuid.UUID]*Standing, len(participants))
	rows := make([]*Standing, 0, len(participants))
	for _, p := range participants {
		s := &Standing{ParticipantID: p.ID, Name: p.Name}
		byID[p.ID] = s
		rows = append(rows, s)
	}

	for _, m := range matches {
		if m.Status != MatchCompleted {
			continue
		}
		winner := m.WinnerTeam()
		team1 := []uuid.UUID{m.Team1Player1ID, m.Team1Player2ID}
		team2 := []uuid.UUID{m.Team2Player1ID, m.Team2Player2ID}

		tally(byID, team1, m.Score1, m.Score2, winner == 1, winner == 0)
		tally(byID, team2, m.Score2, m.Score1, winner == 2, winner == 0)
	}

	sort.Slice(rows, func(i, j int) bool {
		a, b := rows[i], rows[j]
		if a.Points != b.Points {
			return a.Points > b.Points
		}
		da, db := a.ScoreFor-a.ScoreAgainst, b.ScoreFor-b.ScoreAgainst
		if da != db {
			return da > db
		}
		return a.Name < b.Name
	})

	out := make([]Standing, len(rows))
	for i, s := range rows {
		s.Rank = i + 1
		out[i] = *s
	}
	return out
}

func tally(byID map[uuid.UUID]*Standing, team []uuid.UUID, scored, conceded int, won, drew bool) {
	for _, id := range team {
		s, ok := byID[id]
		if !ok {
			continue
		}
		s.Played++
		s.ScoreFor += scored
		s.ScoreAgainst += conceded
		switch {
		case won:
			s.Wins++
			s.Points += pointsPerWin
		case drew:
			s.Draws++
			s.Points += pointsPerDraw
		default:
			s.Losses++
		}
	}
}
