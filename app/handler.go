package app

import (
	"context"
	"errors"
	"log/slog"

	"github.com/jmoiron/sqlx"

	"gomokud/app/gomoku"
)

type ctxKey string

const TraceKey = ctxKey("trace")

// Handler runs one decode-dispatch-encode cycle per input line. It holds the
// process-wide collaborators; per-match state lives behind the session store.
type Handler struct {
	Sessions *SessionStore
	Db       *sqlx.DB // nil disables match archiving
	Hub      *Hub     // nil disables the spectator feed
	Team     string
}

func MakeHandler(sessions *SessionStore, db *sqlx.DB, hub *Hub, team string) Handler {
	if sessions == nil {
		panic("session store must be non nil")
	}
	return Handler{Sessions: sessions, Db: db, Hub: hub, Team: team}
}

// HandleLine processes one request line and returns exactly one reply line
// (without the trailing newline). Nothing in here may take the process down;
// every failure is encoded as an error reply.
func (h *Handler) HandleLine(ctx context.Context, line []byte) []byte {
	trace := ctx.Value(TraceKey)

	cmd, err := decodeCommand(line)
	if err != nil {
		slog.Warn("received malformed request", "trace", trace, "err", err)
		return encodeError(MsgWrongJSONFormat)
	}

	session := h.Sessions.Get(cmd.Session)

	switch cmd.Command {
	case CommandStart:
		return h.handleStart(ctx, session)
	case CommandMove:
		return h.handleMove(ctx, session, cmd.OpponentMove)
	case CommandReset:
		return h.handleReset(ctx, session)
	default:
		slog.Warn("received unknown command", "trace", trace, "command", cmd.Command)
		return encodeError(MsgUnknownCommand)
	}
}

func (h *Handler) handleStart(ctx context.Context, session *Session) []byte {
	trace := ctx.Value(TraceKey)

	var move gomoku.Tile
	var err error
	session.WithLock(func(e *gomoku.Engine) {
		move, err = e.Start()
	})

	if errors.Is(err, gomoku.ErrAlreadyStarted) {
		return encodeError(MsgNotFirstMove)
	}

	slog.Info("started match", "trace", trace, "session", session.ID, "move", move)
	h.broadcast(session.ID, move, gomoku.Black, true)
	return encodeMove(move, h.Team)
}

func (h *Handler) handleMove(ctx context.Context, session *Session, opp *Coord) []byte {
	trace := ctx.Value(TraceKey)

	if opp == nil {
		return encodeError(MsgNoOpponentMove)
	}
	oppTile := opp.Tile()

	var move gomoku.Tile
	var err error
	var side gomoku.Cell
	session.WithLock(func(e *gomoku.Engine) {
		move, err = e.Respond(oppTile)
		side = e.Side()
	})

	switch {
	case errors.Is(err, gomoku.ErrOutOfBounds):
		return encodeError(MsgOutOfBounds)
	case errors.Is(err, gomoku.ErrOccupied):
		return encodeError(MsgMoveTaken)
	case errors.Is(err, gomoku.ErrNoMove):
		// terminal for this request: the board is exhausted, archive it
		h.archiveMatch(ctx, session)
		return encodeError(MsgNoValidMove)
	case err != nil:
		slog.Error("failed to respond to move", "trace", trace, "session", session.ID, "opponentMove", oppTile, "err", err)
		return encodeError(MsgNoValidMove)
	}

	slog.Info("responded to move", "trace", trace, "session", session.ID, "opponentMove", oppTile, "move", move)
	h.broadcast(session.ID, oppTile, side.Opponent(), false)
	h.broadcast(session.ID, move, side, true)
	return encodeMove(move, h.Team)
}

func (h *Handler) handleReset(ctx context.Context, session *Session) []byte {
	trace := ctx.Value(TraceKey)

	h.archiveMatch(ctx, session)
	session.WithLock(func(e *gomoku.Engine) {
		e.Reset()
	})

	slog.Info("reset match", "trace", trace, "session", session.ID)
	return encodeReply("ok")
}

// archiveMatch stores the session's match if any stones were played. Best
// effort: an archive failure never fails the request that triggered it.
func (h *Handler) archiveMatch(ctx context.Context, session *Session) {
	if h.Db == nil {
		return
	}

	var board gomoku.Board
	var moves []gomoku.Tile
	var side gomoku.Cell
	session.WithLock(func(e *gomoku.Engine) {
		board = e.Snapshot()
		moves = e.History()
		side = e.Side()
	})

	if len(moves) == 0 {
		return
	}
	if _, err := InsertMatch(ctx, h.Db, session.ID, board, moves, side); err != nil {
		slog.Error("failed to archive match", "trace", ctx.Value(TraceKey), "session", session.ID, "err", err)
	}
}

func (h *Handler) broadcast(sessionID string, move gomoku.Tile, side gomoku.Cell, byEngine bool) {
	if h.Hub == nil {
		return
	}
	h.Hub.Broadcast(sessionID, MoveEvent{
		Session:  sessionID,
		X:        move.X,
		Y:        move.Y,
		Side:     side.String(),
		ByEngine: byEngine,
	})
}
