package main

import (
	"context"
	"flag"
	"log"
	"log/slog"

	"github.com/llgcode/draw2d/draw2dimg"

	"gomokud/app"
	"gomokud/app/gomoku"
)

// Renders an archived match (or a sample position) to a png file.
func main() {
	dbPath := flag.String("db", "", "sqlite db holding archived matches")
	matchID := flag.String("match", "", "archived match id to render")
	out := flag.String("out", "board.png", "output png path")
	flag.Parse()

	renderer := gomoku.NewRenderer()

	var board gomoku.Board
	var lastMove *gomoku.Tile

	if *dbPath != "" && *matchID != "" {
		db, err := app.OpenDB(*dbPath)
		if err != nil {
			log.Fatalf("failed to open db: %v", err)
		}
		defer db.Close()

		match, err := app.GetMatch(context.Background(), db, *matchID)
		if err != nil {
			log.Fatalf("failed to load match %s: %v", *matchID, err)
		}
		board = match.Board
		if len(match.Moves) > 0 {
			lastMove = &match.Moves[len(match.Moves)-1]
		}
		slog.Info("rendering archived match", "id", match.ID, "session", match.SessionID, "stones", len(match.Moves))
	} else {
		// no match given, render a small sample position
		engine := gomoku.NewEngine(gomoku.Options{Book: gomoku.DefaultBook()})
		engine.Start()
		engine.Respond(gomoku.Tile{X: 15, Y: 16})
		engine.Respond(gomoku.Tile{X: 14, Y: 16})
		board = engine.Snapshot()
		history := engine.History()
		lastMove = &history[len(history)-1]
		slog.Info("rendering sample position", "stones", len(history))
	}

	img := renderer.DrawBoard(board, lastMove)
	if err := draw2dimg.SaveToPngFile(*out, img); err != nil {
		log.Fatalf("failed to save png: %v", err)
	}
	slog.Info("wrote board image", "path", *out)
}
