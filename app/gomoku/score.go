package gomoku

import "math"

// Heuristic weights, offense and defense. Defense stays strictly below
// offense for the same pattern length: taking our own five beats blocking
// theirs, but blocking a four-or-longer run still dwarfs any quieter gain.
const (
	scoreFive         = 1_000_000
	scoreOpenFour     = 80_000
	scoreBlockedFour  = 12_000
	scoreOpenThree    = 3_000
	scoreBlockedThree = 500
	scoreTwo          = 100

	scoreBlockFive         = 900_000
	scoreBlockOpenFour     = 55_000
	scoreBlockBlockedFour  = 12_000
	scoreBlockOpenThree    = 3_000
	scoreBlockBlockedThree = 1_000
	scoreBlockTwo          = 200

	scoreFourThreeCombo      = 150_000
	scoreBlockFourThreeCombo = 100_000
	scoreDoubleThree         = 10_000
	scoreBlockDoubleThree    = 7_000
)

func ownWeight(tc ThreatClass) int {
	switch tc {
	case ThreatFive:
		return scoreFive
	case ThreatOpenFour:
		return scoreOpenFour
	case ThreatBlockedFour:
		return scoreBlockedFour
	case ThreatOpenThree:
		return scoreOpenThree
	case ThreatBlockedThree:
		return scoreBlockedThree
	case ThreatTwo:
		return scoreTwo
	}
	return 0
}

func oppWeight(tc ThreatClass) int {
	switch tc {
	case ThreatFive:
		return scoreBlockFive
	case ThreatOpenFour:
		return scoreBlockOpenFour
	case ThreatBlockedFour:
		return scoreBlockBlockedFour
	case ThreatOpenThree:
		return scoreBlockOpenThree
	case ThreatBlockedThree:
		return scoreBlockBlockedThree
	case ThreatTwo:
		return scoreBlockTwo
	}
	return 0
}

// ScoreCell computes the desirability of an empty cell for side. The distance
// to the board center is subtracted last, purely to break ties between
// tactically equal cells.
func ScoreCell(s Summary, t Tile) int {
	score := 0
	for i := 0; i < 4; i++ {
		score += ownWeight(s.Own[i])
		score += oppWeight(s.Opp[i])
	}

	if s.OwnOpenFours > 0 && s.OwnOpenThrees > 0 {
		score += scoreFourThreeCombo
	}
	if s.OppOpenFours > 0 && s.OppOpenThrees > 0 {
		score += scoreBlockFourThreeCombo
	}
	if s.OwnOpenThrees >= 2 {
		score += scoreDoubleThree
	}
	if s.OppOpenThrees >= 2 {
		score += scoreBlockDoubleThree
	}

	return score - t.DistToCenter()
}

// isForcing reports whether playing (x,y) either wins outright or creates a
// threat the opponent cannot answer: a five, an open four paired with an open
// three, or two simultaneous open threes.
func isForcing(s Summary) bool {
	for i := 0; i < 4; i++ {
		if s.Own[i] == ThreatFive {
			return true
		}
	}
	if s.OwnOpenFours > 0 && s.OwnOpenThrees > 0 {
		return true
	}
	return s.OwnOpenThrees >= 2
}

// findForcing scans empty legal cells in row-major order and returns the
// first forcing cell, short-circuiting the full scoring pass.
func findForcing(b *Board, side Cell, legal func(Tile) bool) (Tile, bool) {
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			if b.At(x, y) != Empty {
				continue
			}
			t := Tile{X: x, Y: y}
			if legal != nil && !legal(t) {
				continue
			}
			if isForcing(Assess(b, x, y, side)) {
				return t, true
			}
		}
	}
	return Tile{}, false
}

// findBestScored scores every empty legal cell and collects the set sharing
// the maximum score. The caller breaks the tie.
func findBestScored(b *Board, side Cell, legal func(Tile) bool) []Tile {
	var best []Tile
	bestScore := math.MinInt

	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			if b.At(x, y) != Empty {
				continue
			}
			t := Tile{X: x, Y: y}
			if legal != nil && !legal(t) {
				continue
			}
			score := ScoreCell(Assess(b, x, y, side), t)
			if score > bestScore {
				bestScore = score
				best = best[:0]
				best = append(best, t)
			} else if score == bestScore {
				best = append(best, t)
			}
		}
	}
	return best
}
