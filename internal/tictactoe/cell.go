package tictactoe

import (
	"errors"
	"fmt"
)

var ErrUnknownMark = errors.New("unknown mark")

// Cell is the content of a single square.
type Cell uint8

const (
	CellEmpty Cell = iota
	CellX
	CellO
)

// Side is one of the two players.
type Side uint8

const (
	X Side = iota + 1
	O
)

const (
	markX     = "X"
	markO     = "O"
	markEmpty = ""
)

// Side converts an occupied cell into the side owning it.
// Converting an empty cell is a programming error and panics.
func (c Cell) Side() Side {
	switch c {
	case CellX:
		return X
	case CellO:
		return O
	default:
		panic(fmt.Sprintf("tictactoe: cell %d does not belong to a side", c))
	}
}

func (c Cell) IsEmpty() bool {
	return c == CellEmpty
}

func (c Cell) String() string {
	switch c {
	case CellX:
		return markX
	case CellO:
		return markO
	default:
		return markEmpty
	}
}

// MarshalText encodes the cell the way boards travel over the wire: "X", "O" or "".
func (c Cell) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

func (c *Cell) UnmarshalText(text []byte) error {
	switch string(text) {
	case markX:
		*c = CellX
	case markO:
		*c = CellO
	case markEmpty:
		*c = CellEmpty
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMark, text)
	}

	return nil
}

// Cell returns the marker this side leaves on the board.
func (s Side) Cell() Cell {
	if s == O {
		return CellO
	}
	return CellX
}

// Opponent returns the other side.
func (s Side) Opponent() Side {
	if s == X {
		return O
	}
	return X
}

func (s Side) String() string {
	return s.Cell().String()
}

// ParseSide parses "X" or "O".
func ParseSide(mark string) (Side, error) {
	switch mark {
	case markX:
		return X, nil
	case markO:
		return O, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownMark, mark)
	}
}
