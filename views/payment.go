package views

import (
	"context"
	"io"

	"github.com/a-h/templ"

	"github.com/vitoriotavares/beach-tenis-sort/internal/tournament"
)

// PaymentPage shows the mock PIX charge for one participant: fixed fee, QR
// code and copy-paste payload. Confirming posts back and flips the paid flag.
func PaymentPage(p *tournament.Participant, payload string, amount float64) templ.Component {
	body := templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := writef(w, `<div class="panel payment">
<h1>Pagamento via PIX</h1>
<p>Inscrição de <strong>%s</strong></p>
<p>Valor a pagar: <strong>R$ %.2f</strong></p>
<img class="pix-qr" src="/participants/%s/pix.png" alt="QR Code PIX" width="200" height="200">
<label>PIX copia e cola
<textarea readonly rows="4">%s</textarea>
</label>`, esc(p.Name), amount, p.ID, esc(payload)); err != nil {
			return err
		}

		if p.Paid {
			if err := writef(w, `<p class="badge badge-ok">Pagamento confirmado</p>`); err != nil {
				return err
			}
		} else {
			if err := writef(w, `<form method="post" action="/participants/%s/paid">
<button type="submit" class="btn btn-primary">Já paguei</button>
</form>`, p.ID); err != nil {
				return err
			}
		}

		return writef(w, `<a class="btn btn-ghost" href="/tournaments/%s">Voltar ao torneio</a>
</div>`, p.TournamentID)
	})
	return page("Pagamento", body)
}
