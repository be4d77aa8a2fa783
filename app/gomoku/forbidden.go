package gomoku

// Forbidden reports whether placing side at (x,y) is illegal under the
// asymmetric placement rules for the constrained side: an overline (a run
// strictly longer than five), two or more simultaneous open threes, two or
// more simultaneous open fours, or an open three together with an open four.
// A placement completing exactly five is never forbidden; the win takes
// precedence over every restriction.
//
// The stone is placed and retracted around the probe, so no externally
// visible board change survives the call. Callers hold the match lock for
// the duration of a request, which keeps the transient mutation private.
func Forbidden(b *Board, x, y int, side Cell) bool {
	if !b.IsEmpty(x, y) {
		return false
	}

	b.Place(x, y, side)
	defer b.remove(x, y)

	maxRun := 0
	openThrees := 0
	openFours := 0

	for _, axis := range Axes {
		run := runLength(b, x, y, axis[0], axis[1], side)
		if run > maxRun {
			maxRun = run
		}
		switch ScanLine(b, x, y, axis[0], axis[1], side) {
		case ThreatOpenFour:
			openFours++
		case ThreatOpenThree:
			openThrees++
		}
	}

	if maxRun == 5 {
		return false
	}
	if maxRun > 5 {
		return true
	}
	if openThrees >= 2 || openFours >= 2 {
		return true
	}
	return openThrees >= 1 && openFours >= 1
}

// runLength counts the contiguous run of side's stones through (x,y) along
// one axis, both signed directions included.
func runLength(b *Board, x, y, dx, dy int, side Cell) int {
	count := 1
	for nx, ny := x+dx, y+dy; InBounds(nx, ny) && b.At(nx, ny) == side; nx, ny = nx+dx, ny+dy {
		count++
	}
	for nx, ny := x-dx, y-dy; InBounds(nx, ny) && b.At(nx, ny) == side; nx, ny = nx-dx, ny-dy {
		count++
	}
	return count
}
