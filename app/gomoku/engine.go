package gomoku

import (
	"errors"
	"math/rand"
	"time"
)

var ErrAlreadyStarted = errors.New("match already started")
var ErrOutOfBounds = errors.New("move out of bounds")
var ErrOccupied = errors.New("cell already occupied")
var ErrNoMove = errors.New("no valid move found")

// MoveCache remembers the reply chosen for a position so repeated positions
// skip the scoring pass. Implementations are best-effort; a miss is never an
// error.
type MoveCache interface {
	Get(hash uint64) (Tile, bool)
	Set(hash uint64, t Tile)
}

type Options struct {
	// Renju enables the forbidden-move filter for the engine when it plays
	// the constrained (first-moving) side.
	Renju bool
	Book  *Book
	Rand  *rand.Rand
	Cache MoveCache
}

// Engine owns one match: the board, the move history, and the selection
// pipeline. It has no internal locking; callers serialize access.
type Engine struct {
	board   Board
	history []Tile
	side    Cell
	started bool

	renju bool
	book  *Book
	rng   *rand.Rand
	cache MoveCache
}

func NewEngine(opts Options) *Engine {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Engine{
		renju: opts.Renju,
		book:  opts.Book,
		rng:   rng,
		cache: opts.Cache,
	}
}

// Start plays the opening stone at dead center. The engine takes the
// first-moving side. Rejected once a match is underway.
func (e *Engine) Start() (Tile, error) {
	if e.started {
		return Tile{}, ErrAlreadyStarted
	}
	e.started = true
	e.side = Black

	center := Tile{X: Center, Y: Center}
	e.board.Place(center.X, center.Y, Black)
	e.history = append(e.history, center)
	return center, nil
}

// Respond records the opponent's stone and answers with the engine's own.
// A duplicate submission of an already recorded opponent stone is a no-op
// for the recording step, not an error. If the engine's chosen cell turns
// out occupied at placement time, the opponent stone stays recorded.
func (e *Engine) Respond(opp Tile) (Tile, error) {
	if !InBounds(opp.X, opp.Y) {
		return Tile{}, ErrOutOfBounds
	}

	if e.side == Empty {
		// the opponent moved first, so the opponent owns the first-moving side
		e.started = true
		e.side = White
	}
	oppCell := e.side.Opponent()

	switch e.board.At(opp.X, opp.Y) {
	case oppCell:
		// duplicate opponent move, silently keep the recorded one
	case Empty:
		e.board.Place(opp.X, opp.Y, oppCell)
		e.history = append(e.history, opp)
	default:
		return Tile{}, ErrOccupied
	}

	move, ok := e.selectMove()
	if !ok {
		return Tile{}, ErrNoMove
	}
	if !e.board.Place(move.X, move.Y, e.side) {
		return Tile{}, ErrOccupied
	}
	e.history = append(e.history, move)
	return move, nil
}

// Reset returns the engine to the awaiting-first-move state. Idempotent.
func (e *Engine) Reset() {
	e.board.Reset()
	e.history = nil
	e.side = Empty
	e.started = false
}

func (e *Engine) Started() bool {
	return e.started
}

func (e *Engine) Side() Cell {
	return e.side
}

func (e *Engine) History() []Tile {
	history := make([]Tile, len(e.history))
	copy(history, e.history)
	return history
}

func (e *Engine) Snapshot() Board {
	return e.board.Clone()
}

func (e *Engine) Hash() uint64 {
	return HashPosition(&e.board, e.side)
}

// legalTile rejects cells the forbidden-move filter excludes for the
// constrained side. Only the engine's own candidates pass through here;
// opponent stones arrive over the wire already played.
func (e *Engine) legalTile(t Tile) bool {
	if e.renju && e.side == Black {
		return !Forbidden(&e.board, t.X, t.Y, Black)
	}
	return true
}

// selectMove runs the pipeline: opening book, cached reply, forcing-move
// short circuit, then the full scoring pass with a uniform random tie-break.
func (e *Engine) selectMove() (Tile, bool) {
	if t, ok := e.book.Next(e.history, e.rng); ok {
		if e.board.IsEmpty(t.X, t.Y) && e.legalTile(t) {
			return t, true
		}
		// the board diverged from the book mid-sequence; score instead
	}

	hash := e.Hash()
	if e.cache != nil {
		if t, ok := e.cache.Get(hash); ok && e.board.IsEmpty(t.X, t.Y) && e.legalTile(t) {
			return t, true
		}
	}

	t, ok := e.findMove()
	if ok && e.cache != nil {
		e.cache.Set(hash, t)
	}
	return t, ok
}

func (e *Engine) findMove() (Tile, bool) {
	if t, ok := findForcing(&e.board, e.side, e.legalTile); ok {
		return t, true
	}
	best := findBestScored(&e.board, e.side, e.legalTile)
	if len(best) == 0 {
		return Tile{}, false
	}
	return best[e.rng.Intn(len(best))], true
}
