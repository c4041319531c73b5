package views

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"

	"github.com/vitoriotavares/beach-tenis-sort/internal/middleware"
	"github.com/vitoriotavares/beach-tenis-sort/internal/tournament"
	users "github.com/vitoriotavares/beach-tenis-sort/internal/user"
)

func GetUser(ctx context.Context) *users.User {
	return middleware.GetAuthenticatedUser(ctx)
}

// esc HTML-escapes dynamic text before it reaches the page.
func esc(s string) string {
	return templ.EscapeString(s)
}

func writef(w io.Writer, format string, args ...any) error {
	_, err := fmt.Fprintf(w, format, args...)
	return err
}

func tournamentStatusLabel(s tournament.TournamentStatus) string {
	switch s {
	case tournament.TournamentUpcoming:
		return "Em breve"
	case tournament.TournamentInProgress:
		return "Em andamento"
	case tournament.TournamentCompleted:
		return "Concluído"
	}
	return string(s)
}

func matchStatusLabel(s tournament.MatchStatus) string {
	switch s {
	case tournament.MatchPending:
		return "Aguardando"
	case tournament.MatchInProgress:
		return "Em andamento"
	case tournament.MatchCompleted:
		return "Finalizado"
	}
	return string(s)
}
