package gomoku

// ThreatClass orders the tactical value of one direction's window around one
// cell. The order is load bearing: classification checks run top-down and the
// first match wins.
type ThreatClass int

const (
	ThreatNone ThreatClass = iota
	ThreatTwo
	ThreatBlockedThree
	ThreatOpenThree
	ThreatBlockedFour
	ThreatOpenFour
	ThreatFive
)

func (tc ThreatClass) String() string {
	switch tc {
	case ThreatFive:
		return "five"
	case ThreatOpenFour:
		return "open-four"
	case ThreatBlockedFour:
		return "blocked-four"
	case ThreatOpenThree:
		return "open-three"
	case ThreatBlockedThree:
		return "blocked-three"
	case ThreatTwo:
		return "two"
	}
	return "none"
}

// Axes holds the four scan directions. Each axis is scanned once; the window
// spans both signed directions so the negations are redundant.
var Axes = [4][2]int{{1, 0}, {0, 1}, {1, 1}, {1, -1}}

const windowRadius = 4
const windowLen = 2*windowRadius + 1

type mark byte

const (
	markEmpty mark = iota
	markOwn
	markBlock
)

// lineWindow extracts the 9-cell window centered at (x,y) along (dx,dy) from
// the perspective of side. The center is marked as an own stone whether or
// not it is placed yet, so a candidate cell is evaluated as if already
// played. Out-of-bounds positions and opposing stones both read as blockers.
func lineWindow(b *Board, x, y, dx, dy int, side Cell) [windowLen]mark {
	var window [windowLen]mark
	for offset := -windowRadius; offset <= windowRadius; offset++ {
		var m mark
		nx := x + offset*dx
		ny := y + offset*dy
		switch {
		case offset == 0:
			m = markOwn
		case !InBounds(nx, ny):
			m = markBlock
		default:
			switch b.At(nx, ny) {
			case side:
				m = markOwn
			case Empty:
				m = markEmpty
			default:
				m = markBlock
			}
		}
		window[offset+windowRadius] = m
	}
	return window
}

// The gap/flank shapes for a four (resp. three) with exactly one viable
// extension. o = own stone, e = empty.
var blockedFourShapes = [4][5]mark{
	{markOwn, markOwn, markOwn, markOwn, markEmpty},
	{markEmpty, markOwn, markOwn, markOwn, markOwn},
	{markOwn, markEmpty, markOwn, markOwn, markOwn},
	{markOwn, markOwn, markEmpty, markOwn, markOwn},
}

var blockedThreeShapes = [4][4]mark{
	{markOwn, markOwn, markOwn, markEmpty},
	{markEmpty, markOwn, markOwn, markOwn},
	{markOwn, markEmpty, markOwn, markOwn},
	{markOwn, markOwn, markEmpty, markOwn},
}

func hasRun(window [windowLen]mark, length int) bool {
	run := 0
	for _, m := range window {
		if m == markOwn {
			run++
			if run >= length {
				return true
			}
		} else {
			run = 0
		}
	}
	return false
}

func hasShape(window [windowLen]mark, shape []mark) bool {
	for start := 0; start+len(shape) <= windowLen; start++ {
		match := true
		for i, m := range shape {
			if window[start+i] != m {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

func isOpenFour(window [windowLen]mark) bool {
	return hasShape(window, []mark{markEmpty, markOwn, markOwn, markOwn, markOwn, markEmpty})
}

func isOpenThree(window [windowLen]mark) bool {
	return hasShape(window, []mark{markEmpty, markOwn, markOwn, markOwn, markEmpty})
}

func classifyWindow(window [windowLen]mark) ThreatClass {
	switch {
	case hasRun(window, 5):
		return ThreatFive
	case isOpenFour(window):
		return ThreatOpenFour
	case anyShape(window, blockedFourShapes[:]):
		return ThreatBlockedFour
	case isOpenThree(window):
		return ThreatOpenThree
	case anyShapeThree(window, blockedThreeShapes[:]):
		return ThreatBlockedThree
	case hasRun(window, 2):
		return ThreatTwo
	}
	return ThreatNone
}

func anyShape(window [windowLen]mark, shapes [][5]mark) bool {
	for _, shape := range shapes {
		if hasShape(window, shape[:]) {
			return true
		}
	}
	return false
}

func anyShapeThree(window [windowLen]mark, shapes [][4]mark) bool {
	for _, shape := range shapes {
		if hasShape(window, shape[:]) {
			return true
		}
	}
	return false
}

// ScanLine classifies one axis around (x,y) for side, with the cell itself
// treated as an own stone.
func ScanLine(b *Board, x, y, dx, dy int, side Cell) ThreatClass {
	return classifyWindow(lineWindow(b, x, y, dx, dy, side))
}
