package gomoku

import (
	"errors"
	"strconv"
	"strings"
)

const BoardSize = 31
const Center = BoardSize / 2

type Cell byte

const (
	Empty Cell = iota
	Black
	White
)

func (c Cell) Opponent() Cell {
	switch c {
	case Black:
		return White
	case White:
		return Black
	}
	return Empty
}

func (c Cell) String() string {
	switch c {
	case Black:
		return "black"
	case White:
		return "white"
	}
	return "empty"
}

type Tile struct {
	X int
	Y int
}

func (t Tile) String() string {
	return "(" + strconv.Itoa(t.X) + "," + strconv.Itoa(t.Y) + ")"
}

func (t Tile) DistToCenter() int {
	dx := t.X - Center
	if dx < 0 {
		dx = -dx
	}
	dy := t.Y - Center
	if dy < 0 {
		dy = -dy
	}
	return dx + dy
}

func InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && x < BoardSize && y < BoardSize
}

// Board is a fixed 31x31 grid. A cell transitions empty -> occupied exactly
// once; the only way back is a full Reset.
type Board struct {
	cells [BoardSize * BoardSize]Cell
}

func (b *Board) At(x, y int) Cell {
	return b.cells[y*BoardSize+x]
}

func (b *Board) AtIndex(i int) Cell {
	return b.cells[i]
}

func (b *Board) IsEmpty(x, y int) bool {
	return InBounds(x, y) && b.At(x, y) == Empty
}

// Place marks the cell iff it is in bounds and currently empty. On failure
// the board is untouched.
func (b *Board) Place(x, y int, c Cell) bool {
	if !InBounds(x, y) || c == Empty {
		return false
	}
	i := y*BoardSize + x
	if b.cells[i] != Empty {
		return false
	}
	b.cells[i] = c
	return true
}

func (b *Board) remove(x, y int) {
	b.cells[y*BoardSize+x] = Empty
}

func (b *Board) Reset() {
	b.cells = [BoardSize * BoardSize]Cell{}
}

func (b *Board) CountEmpty() int {
	count := 0
	for _, cell := range b.cells {
		if cell == Empty {
			count++
		}
	}
	return count
}

func (b *Board) Clone() Board {
	return *b
}

func (b *Board) String() string {
	var sb strings.Builder
	for y := 0; y < BoardSize; y++ {
		for x := 0; x < BoardSize; x++ {
			switch b.At(x, y) {
			case Black:
				sb.WriteRune('b')
			case White:
				sb.WriteRune('w')
			default:
				sb.WriteRune('.')
			}
		}
		sb.WriteRune('\n')
	}
	return sb.String()
}

func (b *Board) MarshalString() string {
	var sb strings.Builder

	emptyCount := 0
	writeEmpty := func() {
		if emptyCount > 0 {
			sb.WriteString(strconv.Itoa(emptyCount))
		}
		emptyCount = 0
	}

	for _, cell := range b.cells {
		switch cell {
		case Empty:
			emptyCount++
		case Black:
			writeEmpty()
			sb.WriteRune('b')
		case White:
			writeEmpty()
			sb.WriteRune('w')
		}
	}
	writeEmpty()

	return sb.String()
}

var ErrBoardUnmarshal = errors.New("failed to unmarshal board from string")

func (b *Board) UnmarshalString(str string) error {
	var board Board
	cellIndex := 0
	for strIndex := 0; strIndex < len(str); {
		switch ch := str[strIndex]; ch {
		case 'b', 'w':
			if cellIndex >= len(board.cells) {
				return ErrBoardUnmarshal
			}
			if ch == 'b' {
				board.cells[cellIndex] = Black
			} else {
				board.cells[cellIndex] = White
			}
			cellIndex++
			strIndex++
		default:
			firstIndex := strIndex
			for ; strIndex < len(str); strIndex++ {
				if ch := str[strIndex]; ch == 'b' || ch == 'w' {
					break
				}
			}
			num, err := strconv.Atoi(str[firstIndex:strIndex])
			if err != nil {
				return ErrBoardUnmarshal
			}
			cellIndex += num
		}
	}
	if cellIndex > len(board.cells) {
		return ErrBoardUnmarshal
	}
	*b = board
	return nil
}
