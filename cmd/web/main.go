package main

import (
	"log"
	"net/http"
	"os"
	"time"

	"github.com/alexedwards/scs/postgresstore"
	"github.com/alexedwards/scs/sqlite3store"
	"github.com/alexedwards/scs/v2"
	"github.com/joho/godotenv"

	"github.com/vitoriotavares/beach-tenis-sort/internal/db"
	"github.com/vitoriotavares/beach-tenis-sort/internal/middleware"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	database := db.InitDB()
	defer database.Close()

	if err := db.RunMigrations(database); err != nil {
		log.Fatal("Failed to run migrations:", err)
	}
	if err := db.EnsureSessionTable(database); err != nil {
		log.Fatal("Failed to create session table:", err)
	}

	middleware.InitAuth()

	sessionManager := scs.New()
	sessionManager.Lifetime = 24 * time.Hour
	if database.DriverName() == "pgx" {
		sessionManager.Store = postgresstore.New(database.DB)
	} else {
		sessionManager.Store = sqlite3store.New(database.DB)
	}

	router := newRouter(sessionManager)

	addr := os.Getenv("ADDR")
	if addr == "" {
		addr = ":8080"
	}
	log.Println("Server starting on", addr)
	if err := http.ListenAndServe(addr, router); err != nil {
		log.Fatal(err)
	}
}
