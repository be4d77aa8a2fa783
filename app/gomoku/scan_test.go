package gomoku

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func placeAll(b *Board, c Cell, tiles ...Tile) {
	for _, t := range tiles {
		if !b.Place(t.X, t.Y, c) {
			panic(fmt.Sprintf("test setup placed onto occupied cell %v", t))
		}
	}
}

func TestScanLine_Classification(t *testing.T) {
	type Test struct {
		own      []Tile
		opp      []Tile
		at       Tile
		axis     [2]int
		expClass ThreatClass
	}

	tests := []Test{
		{
			// four own stones to the left, candidate completes five
			own:      []Tile{{10, 10}, {11, 10}, {12, 10}, {13, 10}},
			at:       Tile{14, 10},
			axis:     [2]int{1, 0},
			expClass: ThreatFive,
		},
		{
			// three in a row plus candidate, both flanks empty
			own:      []Tile{{10, 10}, {11, 10}, {12, 10}},
			at:       Tile{13, 10},
			axis:     [2]int{1, 0},
			expClass: ThreatOpenFour,
		},
		{
			// same four but one flank taken by the opponent
			own:      []Tile{{10, 10}, {11, 10}, {12, 10}},
			opp:      []Tile{{9, 10}},
			at:       Tile{13, 10},
			axis:     [2]int{1, 0},
			expClass: ThreatBlockedFour,
		},
		{
			// gapped four: X.XXX with the candidate filling an end
			own:      []Tile{{10, 10}, {12, 10}, {13, 10}},
			at:       Tile{14, 10},
			axis:     [2]int{1, 0},
			expClass: ThreatBlockedFour,
		},
		{
			// two own stones plus candidate, open on both sides
			own:      []Tile{{10, 5}, {10, 6}},
			at:       Tile{10, 7},
			axis:     [2]int{0, 1},
			expClass: ThreatOpenThree,
		},
		{
			// blocked three against an opponent stone
			own:      []Tile{{10, 5}, {10, 6}},
			opp:      []Tile{{10, 4}},
			at:       Tile{10, 7},
			axis:     [2]int{0, 1},
			expClass: ThreatBlockedThree,
		},
		{
			// lone neighbor on the diagonal
			own:      []Tile{{6, 6}},
			at:       Tile{7, 7},
			axis:     [2]int{1, 1},
			expClass: ThreatTwo,
		},
		{
			// nothing nearby at all
			at:       Tile{20, 20},
			axis:     [2]int{1, -1},
			expClass: ThreatNone,
		},
	}

	for i, test := range tests {
		t.Run(fmt.Sprintf("%d", i), func(t *testing.T) {
			var b Board
			placeAll(&b, Black, test.own...)
			placeAll(&b, White, test.opp...)

			tc := ScanLine(&b, test.at.X, test.at.Y, test.axis[0], test.axis[1], Black)
			assert.Equal(t, test.expClass, tc)
		})
	}
}

func TestScanLine_FiveBeatsWeakerTextures(t *testing.T) {
	// a window holding a five also textually contains fours, threes, and twos;
	// the strongest class must still win on every axis and position
	var b Board
	placeAll(&b, Black, Tile{8, 8}, Tile{9, 8}, Tile{10, 8}, Tile{12, 8})

	assert.Equal(t, ThreatFive, ScanLine(&b, 11, 8, 1, 0, Black))
}

func TestScanLine_EdgesAreBlockers(t *testing.T) {
	// three stones against the edge: the edge side can never be open
	var b Board
	placeAll(&b, Black, Tile{0, 0}, Tile{1, 0}, Tile{2, 0})

	assert.Equal(t, ThreatBlockedFour, ScanLine(&b, 3, 0, 1, 0, Black))

	// same shape away from the edge is open
	b.Reset()
	placeAll(&b, Black, Tile{10, 10}, Tile{11, 10}, Tile{12, 10})
	assert.Equal(t, ThreatOpenFour, ScanLine(&b, 13, 10, 1, 0, Black))
}

func TestScanLine_OpponentPerspective(t *testing.T) {
	// scanning for White around a cell treats Black stones as blockers
	var b Board
	placeAll(&b, White, Tile{10, 10}, Tile{11, 10}, Tile{12, 10})
	placeAll(&b, Black, Tile{14, 10})

	assert.Equal(t, ThreatBlockedFour, ScanLine(&b, 13, 10, 1, 0, White))
	// for Black the white stones block, leaving only the candidate plus the
	// black stone at (14,10)
	assert.Equal(t, ThreatTwo, ScanLine(&b, 13, 10, 1, 0, Black))
}

func TestAssess_Counts(t *testing.T) {
	// a cross of two open threes through the candidate for Black, and a white
	// four demanding a block on the vertical
	var b Board
	placeAll(&b, Black, Tile{9, 10}, Tile{10, 10}, Tile{12, 14}, Tile{12, 15})
	placeAll(&b, White, Tile{20, 5}, Tile{20, 6}, Tile{20, 7}, Tile{20, 8})

	s := Assess(&b, 11, 10, Black)
	assert.Equal(t, 1, s.OwnOpenThrees)
	assert.False(t, s.OppCritical)

	s = Assess(&b, 20, 9, Black)
	assert.True(t, s.OppCritical)
	assert.Equal(t, ThreatFive, s.Opp[1])
}
