package app

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"gomokud/app/gomoku"
)

func testBoard(moves []gomoku.Tile) gomoku.Board {
	var b gomoku.Board
	side := gomoku.Black
	for _, move := range moves {
		if !b.Place(move.X, move.Y, side) {
			panic("failed to place " + move.String())
		}
		side = side.Opponent()
	}
	return b
}

func TestInsertAndGetMatch(t *testing.T) {
	db, cleanup := createTestDB()
	defer cleanup()

	ctx := context.WithValue(context.Background(), TraceKey, "test-insert-match")
	moves := []gomoku.Tile{{X: 15, Y: 15}, {X: 16, Y: 15}, {X: 14, Y: 14}}
	board := testBoard(moves)

	id, err := InsertMatch(ctx, db, "league-1", board, moves, gomoku.Black)
	assert.Nil(t, err)
	assert.NotEmpty(t, id)

	match, err := GetMatch(ctx, db, id)

	assert.Nil(t, err)
	assert.Equal(t, id, match.ID)
	assert.Equal(t, "league-1", match.SessionID)
	assert.Equal(t, moves, match.Moves)
	assert.Equal(t, gomoku.Black, match.EngineSide)
	assert.Equal(t, board, match.Board)
}

func TestGetMatch_NotFound(t *testing.T) {
	db, cleanup := createTestDB()
	defer cleanup()

	_, err := GetMatch(context.Background(), db, "missing-id")

	assert.ErrorIs(t, err, ErrMatchNotFound)
}

func TestListMatches(t *testing.T) {
	db, cleanup := createTestDB()
	defer cleanup()

	ctx := context.WithValue(context.Background(), TraceKey, "test-list-matches")
	moves := []gomoku.Tile{{X: 15, Y: 15}, {X: 16, Y: 16}}
	board := testBoard(moves)

	for _, session := range []string{"league-1", "league-1", "league-2"} {
		_, err := InsertMatch(ctx, db, session, board, moves, gomoku.White)
		assert.Nil(t, err)
	}

	all, err := ListMatches(ctx, db, "", 10)
	assert.Nil(t, err)
	assert.Len(t, all, 3)

	league1, err := ListMatches(ctx, db, "league-1", 10)
	assert.Nil(t, err)
	assert.Len(t, league1, 2)
	for _, match := range league1 {
		assert.Equal(t, "league-1", match.SessionID)
	}

	limited, err := ListMatches(ctx, db, "", 1)
	assert.Nil(t, err)
	assert.Len(t, limited, 1)
}

func TestCountMatches(t *testing.T) {
	db, cleanup := createTestDB()
	defer cleanup()

	ctx := context.WithValue(context.Background(), TraceKey, "test-count-matches")

	count, err := CountMatches(ctx, db)
	assert.Nil(t, err)
	assert.Equal(t, 0, count)

	moves := []gomoku.Tile{{X: 15, Y: 15}}
	_, err = InsertMatch(ctx, db, "league-1", testBoard(moves), moves, gomoku.Black)
	assert.Nil(t, err)

	count, err = CountMatches(ctx, db)
	assert.Nil(t, err)
	assert.Equal(t, 1, count)
}
