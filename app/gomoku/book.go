package gomoku

import "math/rand"

// Book is a fixed library of early-game move sequences, every one anchored at
// the board center. Entries alternate sides in play order, so a sequence only
// keeps matching while the opponent cooperates. Read-only after construction.
type Book struct {
	sequences [][]Tile
}

func NewBook(sequences [][]Tile) *Book {
	return &Book{sequences: sequences}
}

// DefaultBook carries a handful of classic direct and diagonal opening lines
// for the side that plays the first (center) stone.
func DefaultBook() *Book {
	c := Center
	return NewBook([][]Tile{
		{{c, c}, {c + 1, c}, {c, c + 1}, {c + 1, c + 1}, {c - 1, c + 2}},
		{{c, c}, {c + 1, c}, {c + 1, c + 1}, {c - 1, c - 1}, {c + 2, c + 2}},
		{{c, c}, {c - 1, c}, {c, c - 1}, {c - 1, c - 1}, {c + 1, c - 2}},
		{{c, c}, {c + 1, c + 1}, {c - 1, c + 1}, {c + 1, c - 1}, {c - 1, c}},
		{{c, c}, {c + 1, c + 1}, {c + 1, c}, {c - 1, c}, {c + 2, c}},
		{{c, c}, {c - 1, c - 1}, {c - 1, c}, {c + 1, c}, {c - 2, c}},
		{{c, c}, {c, c + 1}, {c + 1, c}, {c - 1, c + 1}, {c + 1, c - 1}},
		{{c, c}, {c, c - 1}, {c - 1, c}, {c + 1, c - 1}, {c - 1, c + 1}},
	})
}

// Next matches history against the library position by position and, when at
// least one sequence still continues past the history, picks uniformly among
// the survivors and returns its next move. The caller must still verify the
// suggested cell is playable.
func (bk *Book) Next(history []Tile, rng *rand.Rand) (Tile, bool) {
	if bk == nil {
		return Tile{}, false
	}

	var surviving [][]Tile
	for _, seq := range bk.sequences {
		if len(seq) <= len(history) {
			continue
		}
		match := true
		for i, t := range history {
			if seq[i] != t {
				match = false
				break
			}
		}
		if match {
			surviving = append(surviving, seq)
		}
	}

	if len(surviving) == 0 {
		return Tile{}, false
	}
	seq := surviving[rng.Intn(len(surviving))]
	return seq[len(history)], true
}
