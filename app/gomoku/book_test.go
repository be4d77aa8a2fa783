package gomoku

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
)

func testBook() *Book {
	return NewBook([][]Tile{
		{{15, 15}, {16, 15}, {15, 16}, {16, 16}},
		{{15, 15}, {16, 16}, {14, 14}},
	})
}

func TestBook_UniquePrefix(t *testing.T) {
	book := testBook()
	rng := rand.New(rand.NewSource(42))

	// history is a strict prefix of exactly one sequence: the next entry is
	// fully determined, whatever the rng does
	history := []Tile{{15, 15}, {16, 15}, {15, 16}}
	for i := 0; i < 20; i++ {
		next, ok := book.Next(history, rng)
		assert.True(t, ok)
		assert.Equal(t, Tile{16, 16}, next)
	}
}

func TestBook_SharedPrefix(t *testing.T) {
	book := testBook()
	rng := rand.New(rand.NewSource(42))

	// both sequences survive an empty and a single-move history
	next, ok := book.Next(nil, rng)
	assert.True(t, ok)
	assert.Equal(t, Tile{15, 15}, next)

	next, ok = book.Next([]Tile{{15, 15}}, rng)
	assert.True(t, ok)
	assert.Contains(t, []Tile{{16, 15}, {16, 16}}, next)
}

func TestBook_NoMatch(t *testing.T) {
	book := testBook()
	rng := rand.New(rand.NewSource(42))

	_, ok := book.Next([]Tile{{15, 15}, {3, 3}}, rng)
	assert.False(t, ok)
}

func TestBook_ExhaustedSequence(t *testing.T) {
	book := testBook()
	rng := rand.New(rand.NewSource(42))

	// the short sequence matched to its full length offers nothing further
	_, ok := book.Next([]Tile{{15, 15}, {16, 16}, {14, 14}}, rng)
	assert.False(t, ok)
}

func TestBook_NilBook(t *testing.T) {
	var book *Book
	rng := rand.New(rand.NewSource(42))

	_, ok := book.Next(nil, rng)
	assert.False(t, ok)
}

func TestDefaultBook_AnchoredAtCenter(t *testing.T) {
	book := DefaultBook()
	for _, seq := range book.sequences {
		assert.NotEmpty(t, seq)
		assert.Equal(t, Tile{Center, Center}, seq[0])

		// no sequence may revisit a cell
		seen := map[Tile]bool{}
		for _, tile := range seq {
			assert.True(t, InBounds(tile.X, tile.Y))
			assert.False(t, seen[tile])
			seen[tile] = true
		}
	}
}
