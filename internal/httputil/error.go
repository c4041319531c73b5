package httputil

import (
	"log/slog"
	"net/http"

	"github.com/vitoriotavares/beach-tenis-sort/internal/apperr"
)

func InternalServerError(w http.ResponseWriter, msg string, err error) {
	slog.Error(msg, "error", err)
	http.Error(w, "Internal Server Error", http.StatusInternalServerError)
}

func BadRequest(w http.ResponseWriter, msg string, err error) {
	if err != nil {
		slog.Warn("bad request", "message", msg, "error", err)
	} else {
		slog.Warn("bad request", "message", msg)
	}
	http.Error(w, msg, http.StatusBadRequest)
}

func NotFound(w http.ResponseWriter, msg string, err error) {
	if err != nil {
		slog.Warn("not found", "message", msg, "error", err)
	} else {
		slog.Warn("not found", "message", msg)
	}
	http.Error(w, msg, http.StatusNotFound)
}

func Conflict(w http.ResponseWriter, msg string) {
	slog.Warn("conflict", "message", msg)
	http.Error(w, msg, http.StatusConflict)
}

// WriteError maps a service error onto the HTTP response by its kind.
// Store failures are logged with their cause but answered generically.
func WriteError(w http.ResponseWriter, r *http.Request, err error) {
	switch apperr.KindOf(err) {
	case apperr.KindValidation:
		BadRequest(w, err.Error(), nil)
	case apperr.KindUnauthenticated:
		http.Redirect(w, r, "/login", http.StatusFound)
	case apperr.KindNotFound:
		NotFound(w, err.Error(), nil)
	case apperr.KindConflict:
		Conflict(w, err.Error())
	default:
		InternalServerError(w, "request failed", err)
	}
}
