package main

import (
	"context"
	"log"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	"golang.org/x/sync/errgroup"
	_ "modernc.org/sqlite"

	"gomokud/app"
	"gomokud/app/gomoku"
)

func main() {
	if err := godotenv.Load(); err != nil {
		slog.Info("failed to load .env file")
	}
	config := app.LoadConfig()

	var db *sqlx.DB
	if config.DbPath != "" {
		var err error
		db, err = app.OpenDB(config.DbPath)
		if err != nil {
			log.Fatalf("failed to open db: %v", err)
		}
		defer db.Close()

		db.SetMaxOpenConns(1)
		db.SetMaxIdleConns(1)
	}

	sessions := app.MakeSessionStore(app.SessionOptions{
		Renju:     config.Renju,
		Book:      gomoku.DefaultBook(),
		MoveCache: app.MakeMoveCache(time.Hour),
	})
	defer sessions.Stop()

	var hub *app.Hub
	if config.HttpAddr != "" {
		hub = app.NewHub()
	}

	handler := app.MakeHandler(sessions, db, hub, config.Team)
	server := app.MakeServer(&handler)

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	slog.Info("starting gomokud service", "team", config.Team, "renju", config.Renju)

	group, ctx := errgroup.WithContext(ctx)
	group.Go(func() error {
		return server.ListenAndServe(ctx, config.Port)
	})
	if hub != nil {
		group.Go(func() error {
			return app.ServeWatch(ctx, config.HttpAddr, app.NewWatchRouter(hub, sessions, db))
		})
	}

	if err := group.Wait(); err != nil {
		log.Fatalf("service failed: %v", err)
	}
	slog.Info("gomokud service stopped")
}
