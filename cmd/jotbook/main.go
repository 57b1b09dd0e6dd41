package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/joho/godotenv"

	"jotbook/internal/cli"
	"jotbook/internal/database"
	"jotbook/internal/kvstore"
	"jotbook/internal/logging"
	"jotbook/internal/store"
)

func main() {
	// A .env file is optional; real environment variables win.
	_ = godotenv.Load()

	logger := logging.Setup(os.Getenv("JOTBOOK_LOG_LEVEL"), os.Stderr)

	dbPath := os.Getenv("JOTBOOK_DB_PATH")
	if dbPath == "" {
		dbPath = "jotbook.db"
	}

	db, err := database.Open(dbPath)
	if err != nil {
		logger.Error("failed to open database", "path", dbPath, "error", err)
		os.Exit(1)
	}
	defer db.Close()

	kv := kvstore.New(db)
	sessions := store.NewSessionStore(kv)
	users := store.NewUserStore(kv, sessions)
	notes := store.NewNoteStore(kv)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	app := cli.NewApp(users, notes, sessions, logger)
	app.Run(ctx)
}
