package gomoku

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBoard_Place(t *testing.T) {
	var b Board

	assert.True(t, b.Place(3, 4, Black))
	assert.Equal(t, Black, b.At(3, 4))

	// the cell is taken now, placing again must not touch it
	assert.False(t, b.Place(3, 4, White))
	assert.Equal(t, Black, b.At(3, 4))

	assert.False(t, b.Place(-1, 0, Black))
	assert.False(t, b.Place(0, BoardSize, Black))
	assert.False(t, b.Place(5, 5, Empty))
}

func TestBoard_Reset(t *testing.T) {
	var b Board
	b.Place(0, 0, Black)
	b.Place(30, 30, White)
	b.Place(Center, Center, Black)

	b.Reset()
	assert.Equal(t, BoardSize*BoardSize, b.CountEmpty())

	// resetting an already empty board stays empty
	b.Reset()
	assert.Equal(t, BoardSize*BoardSize, b.CountEmpty())
}

func TestBoard_MarshalString(t *testing.T) {
	type Test struct {
		place func(b *Board)
	}
	tests := []Test{
		{place: func(b *Board) {}},
		{place: func(b *Board) {
			b.Place(0, 0, Black)
		}},
		{place: func(b *Board) {
			b.Place(Center, Center, Black)
			b.Place(Center+1, Center, White)
			b.Place(BoardSize-1, BoardSize-1, Black)
		}},
		{place: func(b *Board) {
			for x := 0; x < BoardSize; x++ {
				c := Black
				if x%2 == 1 {
					c = White
				}
				b.Place(x, 7, c)
			}
		}},
	}

	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			var b Board
			test.place(&b)

			var unmarshalled Board
			err := unmarshalled.UnmarshalString(b.MarshalString())

			assert.Nil(t, err)
			assert.Equal(t, b, unmarshalled)
		})
	}
}

func TestBoard_UnmarshalStringInvalid(t *testing.T) {
	var b Board
	assert.NotNil(t, b.UnmarshalString("12x4"))
	assert.NotNil(t, b.UnmarshalString("9999b"))
}
