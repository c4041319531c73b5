package db

import (
	"log"
	"os"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	pgmigrate "github.com/golang-migrate/migrate/v4/database/postgres"
	sqlitemigrate "github.com/golang-migrate/migrate/v4/database/sqlite3"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"
	_ "github.com/mattn/go-sqlite3"
)

var conn *sqlx.DB

// InitDB connects to the database named by DATABASE_URL (any Postgres DSN,
// via pgx) or, when unset, to a local SQLite file.
func InitDB() *sqlx.DB {
	var (
		db  *sqlx.DB
		err error
	)
	if dsn := os.Getenv("DATABASE_URL"); dsn != "" {
		db, err = sqlx.Connect("pgx", dsn)
	} else {
		db, err = sqlx.Connect("sqlite3", "beach_tennis.db?_journal_mode=WAL")
		if err == nil {
			_, err = db.Exec("PRAGMA foreign_keys = ON;")
		}
	}
	if err != nil {
		log.Fatalln("Failed to connect to DB:", err)
	}

	conn = db
	log.Println("Database connected using driver", db.DriverName())
	return db
}

func GetDB() *sqlx.DB {
	return conn
}

// RunMigrations applies the SQL in ./migrations against whichever driver the
// connection uses.
func RunMigrations(db *sqlx.DB) error {
	var (
		driver database.Driver
		err    error
	)
	switch db.DriverName() {
	case "pgx":
		driver, err = pgmigrate.WithInstance(db.DB, &pgmigrate.Config{})
	default:
		driver, err = sqlitemigrate.WithInstance(db.DB, &sqlitemigrate.Config{})
	}
	if err != nil {
		return err
	}

	m, err := migrate.NewWithDatabaseInstance("file://migrations", db.DriverName(), driver)
	if err != nil {
		return err
	}
	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return err
	}
	return nil
}

// EnsureSessionTable creates the table the scs session store expects. The
// column types differ between drivers, so this lives outside the shared
// migration files.
func EnsureSessionTable(db *sqlx.DB) error {
	var stmt string
	switch db.DriverName() {
	case "pgx":
		stmt = `CREATE TABLE IF NOT EXISTS sessions (
			token TEXT PRIMARY KEY,
			data BYTEA NOT NULL,
			expiry TIMESTAMPTZ NOT NULL
		)`
	default:
		stmt = `CREATE TABLE IF NOT EXISTS sessions (
			token TEXT PRIMARY KEY,
			data BLOB NOT NULL,
			expiry REAL NOT NULL
		)`
	}
	_, err := db.Exec(stmt)
	return err
}
