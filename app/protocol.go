package app

import (
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"gomokud/app/gomoku"
)

// Wire protocol: one JSON document per line, one reply line per request line.
// Coordinates arrive as numbers or numeric strings depending on the client,
// so the decoder accepts both.

const CommandStart = "start"
const CommandMove = "move"
const CommandReset = "reset"

type Command struct {
	Command      string `json:"command"`
	OpponentMove *Coord `json:"opponentMove,omitempty"`
	Session      string `json:"session,omitempty"`
}

type Coord struct {
	X FlexInt `json:"x"`
	Y FlexInt `json:"y"`
}

func (c Coord) Tile() gomoku.Tile {
	return gomoku.Tile{X: int(c.X), Y: int(c.Y)}
}

// FlexInt decodes from a JSON number or a numeric JSON string.
type FlexInt int

var ErrBadCoordinate = errors.New("coordinate is not a non-negative integer")

func (f *FlexInt) UnmarshalJSON(data []byte) error {
	var num json.Number
	if err := json.Unmarshal(data, &num); err != nil {
		var str string
		if err := json.Unmarshal(data, &str); err != nil {
			return ErrBadCoordinate
		}
		num = json.Number(str)
	}
	val, err := strconv.Atoi(num.String())
	if err != nil || val < 0 {
		return ErrBadCoordinate
	}
	*f = FlexInt(val)
	return nil
}

type MoveResponse struct {
	Move CoordOut `json:"move"`
	Team string   `json:"team"`
}

type CoordOut struct {
	X int `json:"x"`
	Y int `json:"y"`
}

type Reply struct {
	Reply string `json:"reply"`
}

type ErrorReply struct {
	Error string `json:"error"`
}

// Error strings are part of the wire contract; clients match on them.
const (
	MsgNotFirstMove    = "Not first move"
	MsgNoOpponentMove  = "No opponent move"
	MsgMoveTaken       = "Move already taken"
	MsgNoValidMove     = "No valid move found"
	MsgOutOfBounds     = "Move out of bounds"
	MsgUnknownCommand  = "Unknown command"
	MsgWrongJSONFormat = "Wrong JSON format"
)

func encodeMove(t gomoku.Tile, team string) []byte {
	return mustEncode(MoveResponse{Move: CoordOut{X: t.X, Y: t.Y}, Team: team})
}

func encodeReply(msg string) []byte {
	return mustEncode(Reply{Reply: msg})
}

func encodeError(msg string) []byte {
	return mustEncode(ErrorReply{Error: msg})
}

func mustEncode(v any) []byte {
	data, err := json.Marshal(v)
	if err != nil {
		// all response types marshal by construction
		panic(fmt.Sprintf("failed to encode response %v: %v", v, err))
	}
	return data
}

func decodeCommand(line []byte) (Command, error) {
	var cmd Command
	if err := json.Unmarshal(line, &cmd); err != nil {
		return Command{}, fmt.Errorf("failed to decode command: %w", err)
	}
	return cmd, nil
}
