package app

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"

	"gomokud/app/gomoku"
)

//go:embed schema.sql
var CreateSchema string

type MatchRow struct {
	ID           string    `db:"id"`
	SessionID    string    `db:"session_id"`
	Board        string    `db:"board"`
	Moves        string    `db:"moves"`
	EngineSide   string    `db:"engine_side"`
	Stones       int       `db:"stones"`
	ArchivedTime time.Time `db:"archived_time"`
}

type ArchivedMatch struct {
	ID           string
	SessionID    string
	Board        gomoku.Board
	Moves        []gomoku.Tile
	EngineSide   gomoku.Cell
	ArchivedTime time.Time
}

func mapMatchRow(row MatchRow) (ArchivedMatch, error) {
	match := ArchivedMatch{
		ID:           row.ID,
		SessionID:    row.SessionID,
		ArchivedTime: row.ArchivedTime,
	}

	if err := match.Board.UnmarshalString(row.Board); err != nil {
		return ArchivedMatch{}, fmt.Errorf("failed to map match %s board: %w", row.ID, err)
	}
	moves, err := UnmarshalMoveList(row.Moves)
	if err != nil {
		return ArchivedMatch{}, fmt.Errorf("failed to map match %s moves: %w", row.ID, err)
	}
	match.Moves = moves

	switch row.EngineSide {
	case gomoku.Black.String():
		match.EngineSide = gomoku.Black
	case gomoku.White.String():
		match.EngineSide = gomoku.White
	default:
		match.EngineSide = gomoku.Empty
	}
	return match, nil
}

// InsertMatch archives a finished or abandoned match and returns the row id.
func InsertMatch(ctx context.Context, db *sqlx.DB, sessionID string, board gomoku.Board, moves []gomoku.Tile, engineSide gomoku.Cell) (string, error) {
	trace := ctx.Value(TraceKey)

	fail := func(err error) (string, error) {
		slog.Error("failed to insert match", "trace", trace, "session", sessionID, "err", err)
		return "", err
	}

	id := uuid.NewString()
	_, err := db.ExecContext(ctx,
		"INSERT INTO matches (id, session_id, board, moves, engine_side, stones, archived_time) VALUES ($1, $2, $3, $4, $5, $6, $7);",
		id,
		sessionID,
		board.MarshalString(),
		MarshalMoveList(moves),
		engineSide.String(),
		len(moves),
		time.Now())
	if err != nil {
		return fail(fmt.Errorf("failed to insert into matches: %w", err))
	}

	slog.Info("archived match", "trace", trace, "id", id, "session", sessionID, "stones", len(moves))
	return id, nil
}

var ErrMatchNotFound = errors.New("match not found")

func GetMatch(ctx context.Context, db *sqlx.DB, id string) (ArchivedMatch, error) {
	var row MatchRow
	err := db.GetContext(ctx, &row,
		"SELECT id, session_id, board, moves, engine_side, stones, archived_time FROM matches WHERE id = $1;", id)
	if errors.Is(err, sql.ErrNoRows) {
		return ArchivedMatch{}, ErrMatchNotFound
	}
	if err != nil {
		return ArchivedMatch{}, fmt.Errorf("failed to select match: %w", err)
	}
	return mapMatchRow(row)
}

// ListMatches returns the newest archived matches, optionally restricted to
// one session.
func ListMatches(ctx context.Context, db *sqlx.DB, sessionID string, limit int) ([]ArchivedMatch, error) {
	trace := ctx.Value(TraceKey)

	fail := func(err error) ([]ArchivedMatch, error) {
		slog.Error("failed to select matches", "trace", trace, "session", sessionID, "err", err)
		return nil, err
	}

	var rows []MatchRow
	var err error
	if sessionID == "" {
		err = db.SelectContext(ctx, &rows,
			"SELECT id, session_id, board, moves, engine_side, stones, archived_time FROM matches ORDER BY archived_time DESC LIMIT $1;", limit)
	} else {
		err = db.SelectContext(ctx, &rows,
			"SELECT id, session_id, board, moves, engine_side, stones, archived_time FROM matches WHERE session_id = $1 ORDER BY archived_time DESC LIMIT $2;", sessionID, limit)
	}
	if err != nil {
		return fail(fmt.Errorf("failed to select from matches: %w", err))
	}

	matchList := make([]ArchivedMatch, 0, len(rows))
	for _, row := range rows {
		match, err := mapMatchRow(row)
		if err != nil {
			return fail(err)
		}
		matchList = append(matchList, match)
	}
	return matchList, nil
}

func CountMatches(ctx context.Context, db *sqlx.DB) (int, error) {
	var count int
	if err := db.GetContext(ctx, &count, "SELECT COUNT(*) FROM matches;"); err != nil {
		return 0, fmt.Errorf("failed to count matches: %w", err)
	}
	return count, nil
}
