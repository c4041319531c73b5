package views

import (
	"context"
	"io"

	"github.com/a-h/templ"
)

// page wraps a body component in the site chrome: head, navbar with the
// signed-in user, footer.
func page(title string, body templ.Component) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if err := writef(w, `<!DOCTYPE html>
<html lang="pt-BR">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s - Beach Tennis</title>
<link rel="stylesheet" href="/static/styles.css">
</head>
<body>
<nav class="navbar">
<a class="brand" href="/">🎾 Beach Tennis</a>
<div class="nav-user">`, esc(title)); err != nil {
			return err
		}

		if user := GetUser(ctx); user != nil {
			if err := writef(w, `<span class="username">%s</span>
<form method="post" action="/logout"><button type="submit" class="btn btn-ghost">Sair</button></form>`, esc(user.Username)); err != nil {
				return err
			}
		} else {
			if err := writef(w, `<a class="btn btn-primary" href="/login">Entrar</a>`); err != nil {
				return err
			}
		}

		if err := writef(w, `</div>
</nav>
<main class="container">
`); err != nil {
			return err
		}

		if err := body.Render(ctx, w); err != nil {
			return err
		}

		return writef(w, `
</main>
</body>
</html>`)
	})
}
