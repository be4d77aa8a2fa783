package app

import (
	"fmt"
	"strconv"
	"strings"

	"gomokud/app/gomoku"
)

// Move lists are stored as "x.y" pairs joined by commas, with a trailing
// comma, e.g. "15.15,16.15,".

func MarshalMoveList(moves []gomoku.Tile) string {
	var sb strings.Builder

	for _, move := range moves {
		sb.WriteString(strconv.Itoa(move.X))
		sb.WriteRune('.')
		sb.WriteString(strconv.Itoa(move.Y))
		sb.WriteRune(',')
	}

	return sb.String()
}

func UnmarshalMoveList(moveListStr string) ([]gomoku.Tile, error) {
	var moveList []gomoku.Tile

	isSplit := func(r rune) bool {
		return r == ','
	}
	for _, pair := range strings.FieldsFunc(moveListStr, isSplit) {
		xStr, yStr, found := strings.Cut(pair, ".")
		if !found {
			return nil, fmt.Errorf("move %q is missing a separator", pair)
		}
		x, errX := strconv.Atoi(xStr)
		y, errY := strconv.Atoi(yStr)
		if errX != nil || errY != nil || !gomoku.InBounds(x, y) {
			return nil, fmt.Errorf("move %q is not a board coordinate", pair)
		}
		moveList = append(moveList, gomoku.Tile{X: x, Y: y})
	}

	return moveList, nil
}
