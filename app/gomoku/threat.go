package gomoku

// Summary folds the four axis scans for both sides of a candidate cell into
// the counts and flags the scorer and the forbidden-move filter branch on.
type Summary struct {
	Own [4]ThreatClass
	Opp [4]ThreatClass

	OwnOpenThrees int
	OwnOpenFours  int
	OppOpenThrees int
	OppOpenFours  int

	// OppCritical reports a four-or-longer run for the opponent on any axis,
	// a block-or-lose situation.
	OppCritical bool
}

// Assess runs the line scanner over all four axes for side and its opponent,
// evaluating (x,y) as if side had just played there.
func Assess(b *Board, x, y int, side Cell) Summary {
	var s Summary
	opp := side.Opponent()

	for i, axis := range Axes {
		own := ScanLine(b, x, y, axis[0], axis[1], side)
		s.Own[i] = own
		switch own {
		case ThreatOpenFour:
			s.OwnOpenFours++
		case ThreatOpenThree:
			s.OwnOpenThrees++
		}

		theirs := ScanLine(b, x, y, axis[0], axis[1], opp)
		s.Opp[i] = theirs
		switch theirs {
		case ThreatOpenFour:
			s.OppOpenFours++
		case ThreatOpenThree:
			s.OppOpenThrees++
		}
		if theirs >= ThreatBlockedFour {
			s.OppCritical = true
		}
	}
	return s
}
