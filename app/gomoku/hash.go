package gomoku

import "math/rand"

// zobristSeed is fixed so every engine instance in the process (and every
// test run) agrees on position hashes; the hash keys the shared move cache.
const zobristSeed = 0x6f6d6b75

var zobrist = newZobristTable()

type zobristTable struct {
	cells [BoardSize * BoardSize][3]uint64
	sides [3]uint64
}

func newZobristTable() zobristTable {
	r := rand.New(rand.NewSource(zobristSeed))

	var t zobristTable
	for i := range t.cells {
		for j := 1; j < 3; j++ {
			t.cells[i][j] = r.Uint64()
		}
	}
	for j := 1; j < 3; j++ {
		t.sides[j] = r.Uint64()
	}
	return t
}

// HashPosition folds the board occupancy and the side about to move into one
// key. Empty cells contribute nothing, so sparse early positions hash fast.
func HashPosition(b *Board, toMove Cell) uint64 {
	hash := zobrist.sides[toMove]
	for i := 0; i < BoardSize*BoardSize; i++ {
		if cell := b.AtIndex(i); cell != Empty {
			hash ^= zobrist.cells[i][cell]
		}
	}
	return hash
}
