package views

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/vitoriotavares/beach-tenis-sort/internal/tournament"
)

// Index is the landing page: every tournament, soonest first.
func Index(tournaments []tournament.Tournament) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := writef(w, `<div class="page-head">
<h1>Torneios</h1>`); err != nil {
			return err
		}
		if GetUser(ctx) != nil {
			if err := writef(w, `<a class="btn btn-primary" href="/tournaments/new">Criar torneio</a>`); err != nil {
				return err
			}
		}
		if err := writef(w, `</div>`); err != nil {
			return err
		}

		if len(tournaments) == 0 {
			return writef(w, `<p class="empty">Nenhum torneio cadastrado ainda.</p>`)
		}

		if err := writef(w, `<ul class="card-list">`); err != nil {
			return err
		}
		for _, t := range tournaments {
			if err := writef(w, `<li class="card">
<a href="/tournaments/%s">
<div class="card-title">%s</div>
<div class="card-meta">%s · %s–%s · %s</div>
<span class="badge badge-%s">%s</span>
</a>
</li>`, t.ID, esc(t.Title), esc(t.Date), esc(t.StartTime), esc(t.EndTime), esc(t.Location), t.Status, tournamentStatusLabel(t.Status)); err != nil {
				return err
			}
		}
		return writef(w, `</ul>`)
	})
	return page("Torneios", body)
}

func LoginPage() templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return writef(w, `<div class="login-box">
<h1>Entrar</h1>
<p>Use sua conta Google para criar torneios e se inscrever.</p>
<a class="btn btn-primary" href="/auth/google">Entrar com Google</a>
<form method="post" action="/auth/guest">
<button type="submit" class="btn btn-ghost">Continuar como convidado</button>
</form>
</div>`)
	})
	return page("Entrar", body)
}
