package main

import (
	"context"
	"net/http"
	"strconv"
	"strings"

	"github.com/alexedwards/scs/v2"
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"
	"github.com/markbates/goth/gothic"

	"github.com/vitoriotavares/beach-tenis-sort/internal/db"
	"github.com/vitoriotavares/beach-tenis-sort/internal/httputil"
	"github.com/vitoriotavares/beach-tenis-sort/internal/middleware"
	"github.com/vitoriotavares/beach-tenis-sort/internal/service"
	"github.com/vitoriotavares/beach-tenis-sort/internal/store"
	"github.com/vitoriotavares/beach-tenis-sort/internal/tournament"
	"github.com/vitoriotavares/beach-tenis-sort/views"
)

func tournamentService() *service.TournamentService {
	dbConn := db.GetDB()
	return service.NewTournamentService(dbConn,
		store.NewTournamentStore(dbConn), store.NewParticipantStore(dbConn), store.NewMatchStore(dbConn))
}

func participantService() *service.ParticipantService {
	dbConn := db.GetDB()
	return service.NewParticipantService(dbConn,
		store.NewTournamentStore(dbConn), store.NewParticipantStore(dbConn))
}

func matchService() *service.MatchService {
	dbConn := db.GetDB()
	return service.NewMatchService(dbConn,
		store.NewParticipantStore(dbConn), store.NewMatchStore(dbConn))
}

func urlID(r *http.Request, w http.ResponseWriter) (uuid.UUID, bool) {
	id, err := uuid.Parse(chi.URLParam(r, "id"))
	if err != nil {
		httputil.BadRequest(w, "Invalid ID", err)
		return uuid.Nil, false
	}
	return id, true
}

func newRouter(sessionManager *scs.SessionManager) http.Handler {
	r := chi.NewRouter()

	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(sessionManager.LoadAndSave)
	r.Use(middleware.LoadAuthenticatedUser(sessionManager, store.NewUserStore(db.GetDB())))

	// Serve static files
	fileServer := http.FileServer(http.Dir("./static"))
	r.Handle("/static/*", http.StripPrefix("/static/", fileServer))

	r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		tournaments, err := tournamentService().List(r.Context())
		if err != nil {
			httputil.WriteError(w, r, err)
			return
		}
		views.Render(w, r, views.Index(tournaments))
	})

	r.Get("/tournaments/{id}", func(w http.ResponseWriter, r *http.Request) {
		id, ok := urlID(r, w)
		if !ok {
			return
		}
		data, err := loadDetail(r.Context(), id, views.NormalizeTab(r.URL.Query().Get("tab")))
		if err != nil {
			httputil.WriteError(w, r, err)
			return
		}
		views.Render(w, r, views.TournamentView(*data))
	})

	r.Group(func(r chi.Router) {
		r.Use(middleware.RequireAuth)

		r.Get("/tournaments/new", func(w http.ResponseWriter, r *http.Request) {
			views.Render(w, r, views.CreateTournamentPage())
		})

		r.Post("/tournaments", func(w http.ResponseWriter, r *http.Request) {
			if err := r.ParseForm(); err != nil {
				httputil.BadRequest(w, "Invalid form data", err)
				return
			}
			maxParticipants, _ := strconv.Atoi(r.Form.Get("max_participants"))
			input := service.CreateTournamentInput{
				Title:           strings.TrimSpace(r.Form.Get("title")),
				Date:            r.Form.Get("date"),
				StartTime:       r.Form.Get("start_time"),
				EndTime:         r.Form.Get("end_time"),
				Location:        strings.TrimSpace(r.Form.Get("location")),
				MaxParticipants: maxParticipants,
			}

			t, err := tournamentService().Create(r.Context(), input)
			if err != nil {
				httputil.WriteError(w, r, err)
				return
			}
			http.Redirect(w, r, "/tournaments/"+t.ID.String(), http.StatusSeeOther)
		})

		r.Post("/tournaments/{id}/status", func(w http.ResponseWriter, r *http.Request) {
			id, ok := urlID(r, w)
			if !ok {
				return
			}
			if err := r.ParseForm(); err != nil {
				httputil.BadRequest(w, "Invalid form data", err)
				return
			}
			next := tournament.TournamentStatus(r.Form.Get("status"))
			if _, err := tournamentService().AdvanceStatus(r.Context(), id, next); err != nil {
				httputil.WriteError(w, r, err)
				return
			}
			http.Redirect(w, r, "/tournaments/"+id.String(), http.StatusSeeOther)
		})

		r.Post("/tournaments/{id}/participants", func(w http.ResponseWriter, r *http.Request) {
			id, ok := urlID(r, w)
			if !ok {
				return
			}
			if err := r.ParseForm(); err != nil {
				httputil.BadRequest(w, "Invalid form data", err)
				return
			}
			input := service.RegisterInput{
				Name:  strings.TrimSpace(r.Form.Get("name")),
				Email: r.Form.Get("email"),
				Phone: strings.TrimSpace(r.Form.Get("phone")),
			}
			if _, err := participantService().Register(r.Context(), id, input); err != nil {
				httputil.WriteError(w, r, err)
				return
			}
			http.Redirect(w, r, "/tournaments/"+id.String()+"?tab="+views.TabParticipants, http.StatusSeeOther)
		})

		r.Post("/participants/{id}/paid", func(w http.ResponseWriter, r *http.Request) {
			id, ok := urlID(r, w)
			if !ok {
				return
			}
			svc := participantService()
			p, err := svc.Get(r.Context(), id)
			if err != nil {
				httputil.WriteError(w, r, err)
				return
			}
			if err := svc.ConfirmPayment(r.Context(), id); err != nil {
				httputil.WriteError(w, r, err)
				return
			}
			http.Redirect(w, r, "/tournaments/"+p.TournamentID.String()+"?tab="+views.TabParticipants, http.StatusSeeOther)
		})

		r.Post("/participants/{id}/checkin", func(w http.ResponseWriter, r *http.Request) {
			id, ok := urlID(r, w)
			if !ok {
				return
			}
			if err := r.ParseForm(); err != nil {
				httputil.BadRequest(w, "Invalid form data", err)
				return
			}
			checkedIn := r.Form.Get("checked_in") == "true"
			svc := participantService()
			p, err := svc.Get(r.Context(), id)
			if err != nil {
				httputil.WriteError(w, r, err)
				return
			}
			if err := svc.SetCheckedIn(r.Context(), id, checkedIn); err != nil {
				httputil.WriteError(w, r, err)
				return
			}
			http.Redirect(w, r, "/tournaments/"+p.TournamentID.String()+"?tab="+views.TabParticipants, http.StatusSeeOther)
		})

		r.Get("/participants/{id}/payment", func(w http.ResponseWriter, r *http.Request) {
			id, ok := urlID(r, w)
			if !ok {
				return
			}
			info, err := participantService().Payment(r.Context(), id)
			if err != nil {
				httputil.WriteError(w, r, err)
				return
			}
			views.Render(w, r, views.PaymentPage(info.Participant, info.Charge.Payload(), info.Charge.Amount))
		})

		r.Get("/participants/{id}/pix.png", func(w http.ResponseWriter, r *http.Request) {
			id, ok := urlID(r, w)
			if !ok {
				return
			}
			info, err := participantService().Payment(r.Context(), id)
			if err != nil {
				httputil.WriteError(w, r, err)
				return
			}
			png, err := info.Charge.QRCodePNG(200)
			if err != nil {
				httputil.InternalServerError(w, "Failed to render QR code", err)
				return
			}
			w.Header().Set("Content-Type", "image/png")
			w.Write(png)
		})

		r.Post("/tournaments/{id}/matches", func(w http.ResponseWriter, r *http.Request) {
			id, ok := urlID(r, w)
			if !ok {
				return
			}
			if err := r.ParseForm(); err != nil {
				httputil.BadRequest(w, "Invalid form data", err)
				return
			}
			input := service.CreateMatchInput{Court: strings.TrimSpace(r.Form.Get("court"))}
			slots := []struct {
				field string
				dst   *uuid.UUID
			}{
				{"team1_player1", &input.Team1Player1},
				{"team1_player2", &input.Team1Player2},
				{"team2_player1", &input.Team2Player1},
				{"team2_player2", &input.Team2Player2},
			}
			for _, slot := range slots {
				parsed, err := uuid.Parse(r.Form.Get(slot.field))
				if err != nil {
					httputil.BadRequest(w, "Invalid player selection", err)
					return
				}
				*slot.dst = parsed
			}

			if _, err := matchService().Create(r.Context(), id, input); err != nil {
				httputil.WriteError(w, r, err)
				return
			}
			http.Redirect(w, r, "/tournaments/"+id.String()+"?tab="+views.TabMatches, http.StatusSeeOther)
		})

		r.Post("/matches/{id}/start", matchTransition(func(svc *service.MatchService, ctx context.Context, id uuid.UUID, _ int) error {
			_, err := svc.Start(ctx, id)
			return err
		}))
		r.Post("/matches/{id}/finish", matchTransition(func(svc *service.MatchService, ctx context.Context, id uuid.UUID, _ int) error {
			_, err := svc.Finish(ctx, id)
			return err
		}))
		r.Post("/matches/{id}/reopen", matchTransition(func(svc *service.MatchService, ctx context.Context, id uuid.UUID, _ int) error {
			_, err := svc.Reopen(ctx, id)
			return err
		}))
		r.Post("/matches/{id}/score", matchTransition(func(svc *service.MatchService, ctx context.Context, id uuid.UUID, team int) error {
			_, err := svc.AddPoint(ctx, id, team)
			return err
		}))
	})

	r.Get("/auth/{provider}", func(w http.ResponseWriter, r *http.Request) {
		provider := chi.URLParam(r, "provider")
		r = r.WithContext(context.WithValue(r.Context(), "provider", provider))

		gothic.BeginAuthHandler(w, r)
	})

	r.Get("/auth/{provider}/callback", func(w http.ResponseWriter, r *http.Request) {
		provider := chi.URLParam(r, "provider")
		r = r.WithContext(context.WithValue(r.Context(), "provider", provider))

		gothUser, err := gothic.CompleteUserAuth(w, r)
		if err != nil {
			httputil.BadRequest(w, "Authentication failure", err)
			return
		}

		dbConn := db.GetDB()
		userService := service.NewUserService(dbConn, store.NewUserStore(dbConn))
		user, err := userService.FindOrCreateUserByProvider(r.Context(), gothUser)
		if err != nil {
			httputil.InternalServerError(w, "Failed to find or create user", err)
			return
		}

		sessionManager.Put(r.Context(), "userID", user.ID.String())

		http.Redirect(w, r, "/", http.StatusFound)
	})

	r.Get("/login", func(w http.ResponseWriter, r *http.Request) {
		views.Render(w, r, views.LoginPage())
	})

	r.Post("/auth/guest", func(w http.ResponseWriter, r *http.Request) {
		dbConn := db.GetDB()
		userService := service.NewUserService(dbConn, store.NewUserStore(dbConn))

		user, err := userService.EnsureGuestUser(r.Context())
		if err != nil {
			httputil.InternalServerError(w, "Failed to login as guest", err)
			return
		}

		sessionManager.Put(r.Context(), "userID", user.ID.String())
		http.Redirect(w, r, "/", http.StatusFound)
	})

	r.Post("/logout", func(w http.ResponseWriter, r *http.Request) {
		sessionManager.Destroy(r.Context())
		http.Redirect(w, r, "/login", http.StatusFound)
	})

	return r
}

// matchTransition builds a handler for the four scoreboard actions; the
// posting form carries the page to return to.
func matchTransition(apply func(svc *service.MatchService, ctx context.Context, id uuid.UUID, team int) error) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, ok := urlID(r, w)
		if !ok {
			return
		}
		if err := r.ParseForm(); err != nil {
			httputil.BadRequest(w, "Invalid form data", err)
			return
		}
		team, _ := strconv.Atoi(r.Form.Get("team"))

		if err := apply(matchService(), r.Context(), id, team); err != nil {
			httputil.WriteError(w, r, err)
			return
		}

		back := r.Form.Get("back")
		if back == "" || !strings.HasPrefix(back, "/") {
			back = "/"
		}
		http.Redirect(w, r, back, http.StatusSeeOther)
	}
}

// loadDetail gathers every panel of the tournament page in one place.
func loadDetail(ctx context.Context, id uuid.UUID, tab string) (*views.DetailData, error) {
	tSvc := tournamentService()
	pSvc := participantService()

	detail, err := tSvc.Detail(ctx, id)
	if err != nil {
		return nil, err
	}
	participants, err := pSvc.List(ctx, id)
	if err != nil {
		return nil, err
	}

	data := &views.DetailData{
		Tournament:       detail.Tournament,
		ParticipantCount: detail.ParticipantCount,
		Participants:     participants,
		ActiveTab:        tab,
	}

	if user := middleware.GetAuthenticatedUser(ctx); user != nil {
		reg, err := pSvc.RegistrationFor(ctx, id, user.Email)
		if err != nil {
			return nil, err
		}
		data.Registration = reg
	}

	switch tab {
	case views.TabMatches:
		data.Matches, err = matchService().List(ctx, id)
	case views.TabRanking:
		data.Standings, err = tSvc.Standings(ctx, id)
	}
	if err != nil {
		return nil, err
	}
	return data, nil
}
