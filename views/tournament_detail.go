package views

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/vitoriotavares/beach-tenis-sort/internal/tournament"
)

func TournamentView(d DetailData) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := renderHeader(ctx, w, d); err != nil {
			return err
		}
		if err := renderRegistrationPanel(ctx, w, d); err != nil {
			return err
		}
		if err := renderTabs(w, d); err != nil {
			return err
		}
		switch d.ActiveTab {
		case TabMatches:
			return renderMatchesTab(w, d)
		case TabRanking:
			return renderRankingTab(w, d)
		default:
			return renderParticipantsTab(w, d)
		}
	})
	return page(d.Tournament.Title, body)
}

func renderHeader(ctx context.Context, w io.Writer, d DetailData) error {
	t := d.Tournament
	if err := writef(w, `<div class="page-head">
<div>
<h1>%s</h1>
<p class="card-meta">%s · %s–%s · %s</p>
<p class="card-meta">Participantes: %d/%d</p>
</div>
<div class="head-actions">
<span class="badge badge-%s">%s</span>`,
		esc(t.Title), esc(t.Date), esc(t.StartTime), esc(t.EndTime), esc(t.Location),
		d.ParticipantCount, t.MaxParticipants, t.Status, tournamentStatusLabel(t.Status)); err != nil {
		return err
	}

	if next, ok := d.NextStatus(); ok && GetUser(ctx) != nil {
		if err := writef(w, `<form method="post" action="/tournaments/%s/status">
<input type="hidden" name="status" value="%s">
<button type="submit" class="btn btn-ghost">Avançar para "%s"</button>
</form>`, t.ID, next, tournamentStatusLabel(next)); err != nil {
			return err
		}
	}

	return writef(w, `</div>
</div>`)
}

func renderRegistrationPanel(ctx context.Context, w io.Writer, d DetailData) error {
	user := GetUser(ctx)

	if d.Registration != nil {
		p := d.Registration
		return writef(w, `<div class="panel">
<h2>Seu status de inscrição</h2>
<span class="badge badge-%s">%s</span>
<span class="badge badge-%s">%s</span>
</div>`,
			flagClass(p.Paid), flagLabel(p.Paid, "Pagamento confirmado", "Pagamento pendente"),
			flagClass(p.CheckedIn), flagLabel(p.CheckedIn, "Check-in realizado", "Aguardando check-in"))
	}

	if user == nil || d.Full() {
		return nil
	}

	return writef(w, `<div class="panel">
<h2>Inscreva-se</h2>
<form method="post" action="/tournaments/%s/participants" class="form form-inline">
<input type="text" name="name" placeholder="Nome" value="%s" required>
<input type="email" name="email" placeholder="E-mail" value="%s" required>
<input type="tel" name="phone" placeholder="Telefone" required>
<button type="submit" class="btn btn-primary">Inscrever</button>
</form>
</div>`, d.Tournament.ID, esc(user.Username), esc(user.Email))
}

func renderTabs(w io.Writer, d DetailData) error {
	tabs := []struct{ key, label string }{
		{TabParticipants, "Participantes"},
		{TabMatches, "Partidas"},
		{TabRanking, "Ranking"},
	}
	if err := writef(w, `<div class="tabs">`); err != nil {
		return err
	}
	for _, tab := range tabs {
		active := ""
		if tab.key == d.ActiveTab {
			active = " tab-active"
		}
		if err := writef(w, `<a class="tab%s" href="/tournaments/%s?tab=%s">%s</a>`,
			active, d.Tournament.ID, tab.key, tab.label); err != nil {
			return err
		}
	}
	return writef(w, `</div>`)
}

func renderParticipantsTab(w io.Writer, d DetailData) error {
	if len(d.Participants) == 0 {
		return writef(w, `<p class="empty">Nenhum participante registrado ainda.</p>`)
	}
	if err := writef(w, `<ul class="row-list">`); err != nil {
		return err
	}
	for _, p := range d.Participants {
		if err := writef(w, `<li class="row">
<span class="row-name">%s</span>
<span class="badge badge-%s">%s</span>
<span class="badge badge-%s">%s</span>
<span class="row-actions">`,
			esc(p.Name),
			flagClass(p.Paid), flagLabel(p.Paid, "Pago", "Pendente"),
			flagClass(p.CheckedIn), flagLabel(p.CheckedIn, "Check-in realizado", "Aguardando check-in")); err != nil {
			return err
		}
		if !p.Paid {
			if err := writef(w, `<a class="btn btn-small" href="/participants/%s/payment">Pagar</a>`, p.ID); err != nil {
				return err
			}
		}
		if err := writef(w, `<form method="post" action="/participants/%s/checkin">
<input type="hidden" name="checked_in" value="%t">
<button type="submit" class="btn btn-small btn-ghost">%s</button>
</form>
</span>
</li>`, p.ID, !p.CheckedIn, flagLabel(p.CheckedIn, "Desfazer check-in", "Check-in")); err != nil {
			return err
		}
	}
	return writef(w, `</ul>`)
}

func renderMatchesTab(w io.Writer, d DetailData) error {
	if err := renderCreateMatchForm(w, d); err != nil {
		return err
	}

	if len(d.Matches) == 0 {
		return writef(w, `<p class="empty">Nenhuma partida criada ainda.</p>`)
	}
	for _, m := range d.Matches {
		if err := renderMatchCard(w, d.Tournament.ID.String(), m); err != nil {
			return err
		}
	}
	return nil
}

func renderCreateMatchForm(w io.Writer, d DetailData) error {
	eligible := d.CheckedIn()
	if len(eligible) < 4 {
		return writef(w, `<p class="hint">São necessários 4 participantes com check-in para criar uma partida.</p>`)
	}

	if err := writef(w, `<details class="panel">
<summary>Nova partida</summary>
<form method="post" action="/tournaments/%s/matches" class="form">`, d.Tournament.ID); err != nil {
		return err
	}

	slots := []struct{ name, label string }{
		{"team1_player1", "Time 1 - Jogador 1"},
		{"team1_player2", "Time 1 - Jogador 2"},
		{"team2_player1", "Time 2 - Jogador 1"},
		{"team2_player2", "Time 2 - Jogador 2"},
	}
	for _, slot := range slots {
		if err := writef(w, `<label>%s
<select name="%s" required>
<option value="">Selecione</option>`, slot.label, slot.name); err != nil {
			return err
		}
		for _, p := range eligible {
			if err := writef(w, `<option value="%s">%s</option>`, p.ID, esc(p.Name)); err != nil {
				return err
			}
		}
		if err := writef(w, `</select>
</label>`); err != nil {
			return err
		}
	}

	return writef(w, `<label>Quadra
<input type="text" name="court" placeholder="Quadra 1" required>
</label>
<button type="submit" class="btn btn-primary">Criar partida</button>
</form>
</details>`)
}

func renderMatchCard(w io.Writer, tournamentID string, m tournament.MatchSummary) error {
	winner := m.WinnerTeam()
	if err := writef(w, `<div class="match-card">
<div class="match-head">
<span class="card-meta">%s</span>
<span class="badge badge-%s">%s</span>
</div>
<div class="match-teams">
<div class="team%s">%s e %s <strong>%d</strong></div>
<div class="vs">×</div>
<div class="team%s"><strong>%d</strong> %s e %s</div>
</div>
<div class="match-actions">`,
		esc(m.Court), m.Status, matchStatusLabel(m.Status),
		winnerClass(winner == 1), esc(m.Team1Player1Name), esc(m.Team1Player2Name), m.Score1,
		winnerClass(winner == 2), m.Score2, esc(m.Team2Player1Name), esc(m.Team2Player2Name)); err != nil {
		return err
	}

	back := "/tournaments/" + tournamentID + "?tab=" + TabMatches
	switch m.Status {
	case tournament.MatchPending:
		if err := matchActionForm(w, m.ID.String(), "start", back, "Iniciar", ""); err != nil {
			return err
		}
	case tournament.MatchInProgress:
		if err := matchActionForm(w, m.ID.String(), "score", back, "+1 Time 1", "1"); err != nil {
			return err
		}
		if err := matchActionForm(w, m.ID.String(), "score", back, "+1 Time 2", "2"); err != nil {
			return err
		}
		if err := matchActionForm(w, m.ID.String(), "finish", back, "Finalizar", ""); err != nil {
			return err
		}
	case tournament.MatchCompleted:
		if err := matchActionForm(w, m.ID.String(), "reopen", back, "Reabrir", ""); err != nil {
			return err
		}
	}

	return writef(w, `</div>
</div>`)
}

func matchActionForm(w io.Writer, matchID, action, back, label, team string) error {
	if err := writef(w, `<form method="post" action="/matches/%s/%s">
<input type="hidden" name="back" value="%s">`, matchID, action, esc(back)); err != nil {
		return err
	}
	if team != "" {
		if err := writef(w, `<input type="hidden" name="team" value="%s">`, team); err != nil {
			return err
		}
	}
	return writef(w, `<button type="submit" class="btn btn-small">%s</button>
</form>`, label)
}

func renderRankingTab(w io.Writer, d DetailData) error {
	if len(d.Standings) == 0 {
		return writef(w, `<p class="empty">Sem resultados para ranquear ainda.</p>`)
	}
	if err := writef(w, `<table class="table">
<thead><tr><th>#</th><th>Jogador</th><th>J</th><th>V</th><th>E</th><th>D</th><th>Saldo</th><th>Pontos</th></tr></thead>
<tbody>`); err != nil {
		return err
	}
	for _, s := range d.Standings {
		if err := writef(w, `<tr><td>%d</td><td>%s</td><td>%d</td><td>%d</td><td>%d</td><td>%d</td><td>%d</td><td><strong>%d</strong></td></tr>`,
			s.Rank, esc(s.Name), s.Played, s.Wins, s.Draws, s.Losses, s.ScoreFor-s.ScoreAgainst, s.Points); err != nil {
			return err
		}
	}
	return writef(w, `</tbody>
</table>`)
}

func flagClass(set bool) string {
	if set {
		return "ok"
	}
	return "off"
}

func flagLabel(set bool, yes, no string) string {
	if set {
		return yes
	}
	return no
}

func winnerClass(won bool) string {
	if won {
		return " team-winner"
	}
	return ""
}
