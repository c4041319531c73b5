package views

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

func CreateTournamentPage() templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		return writef(w, `<h1>Novo torneio</h1>
<form method="post" action="/tournaments" class="form">
<label>Título
<input type="text" name="title" maxlength="100" required>
</label>
<label>Data
<input type="date" name="date" required>
</label>
<div class="form-row">
<label>Início
<input type="time" name="start_time" required>
</label>
<label>Término
<input type="time" name="end_time" required>
</label>
</div>
<label>Local
<input type="text" name="location" maxlength="200" required>
</label>
<label>Máximo de participantes
<input type="number" name="max_participants" min="2" value="16" required>
</label>
<button type="submit" class="btn btn-primary">Criar torneio</button>
</form>`)
	})
	return page("Novo torneio", body)
}
