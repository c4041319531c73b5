package store

import (
	"database/sql"
	"errors"

	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	sqlite3 "github.com/mattn/go-sqlite3"

	"github.com/vitoriotavares/beach-tenis-sort/internal/apperr"
)

// classify converts driver errors into apperr kinds so callers branch on a
// kind instead of database error strings. Unique violations become conflicts;
// a missing relation or revoked grant surfaces as a store error carrying the
// driver message, which first-run bootstrap checks for.
func classify(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, sql.ErrNoRows) {
		return apperr.NotFound("%s: no such row", op)
	}

	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		switch pgErr.Code {
		case pgerrcode.UniqueViolation:
			return apperr.Conflict("%s: duplicate row (%s)", op, pgErr.ConstraintName)
		case pgerrcode.UndefinedTable, pgerrcode.InsufficientPrivilege:
			return apperr.Store(op+": "+pgErr.Message, err)
		}
		return apperr.Store(op, err)
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		if sqliteErr.ExtendedCode == sqlite3.ErrConstraintUnique ||
			sqliteErr.ExtendedCode == sqlite3.ErrConstraintPrimaryKey {
			return apperr.Conflict("%s: duplicate row", op)
		}
		return apperr.Store(op, err)
	}

	return apperr.Store(op, err)
}
