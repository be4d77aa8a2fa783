package gomoku

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHashPosition(t *testing.T) {
	var a, b Board
	a.Place(3, 3, Black)
	a.Place(4, 4, White)
	b.Place(4, 4, White)
	b.Place(3, 3, Black)

	// placement order must not matter, only occupancy and side to move
	assert.Equal(t, HashPosition(&a, Black), HashPosition(&b, Black))
	assert.NotEqual(t, HashPosition(&a, Black), HashPosition(&a, White))

	b.Place(5, 5, Black)
	assert.NotEqual(t, HashPosition(&a, Black), HashPosition(&b, Black))

	var empty Board
	assert.NotEqual(t, HashPosition(&empty, Black), HashPosition(&a, Black))
}
