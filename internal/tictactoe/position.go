package tictactoe

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-agent/internal/apperror"
)

// Size is the length of a board side.
const Size = 3

var ErrMalformedPosition = errors.New("malformed position")

// Position is a row-major 3x3 grid. It is a value: assigning or passing it copies the board.
type Position [Size][Size]Cell

// NewPosition returns the empty board.
func NewPosition() Position {
	return Position{}
}

func (that *Position) At(row, col int) Cell {
	return that[row][col]
}

// Place writes the side's marker without any validation.
func (that *Position) Place(row, col int, side Side) {
	that[row][col] = side.Cell()
}

func (that *Position) Clear(row, col int) {
	that[row][col] = CellEmpty
}

// Play validates and applies a move. It is the entry point for moves coming from outside the search.
func (that *Position) Play(row, col int, side Side) error {
	if !InBounds(row, col) {
		return fmt.Errorf("%w: row %d column %d", apperror.ErrInvalidCell, row, col)
	}

	if !that[row][col].IsEmpty() {
		return apperror.ErrCellOccupied
	}

	that.Place(row, col, side)

	return nil
}

// try places side at (row, col), runs fn and always restores the square before returning.
func (that *Position) try(row, col int, side Side, fn func()) {
	that.Place(row, col, side)
	defer that.Clear(row, col)

	fn()
}

func (that *Position) EmptyCount() int {
	count := 0
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if that[row][col].IsEmpty() {
				count++
			}
		}
	}
	return count
}

// Cells flattens the board in row-major order.
func (that *Position) Cells() [Size * Size]Cell {
	var cells [Size * Size]Cell
	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			cells[row*Size+col] = that[row][col]
		}
	}
	return cells
}

// String renders the board as "XO./.X./..O".
func (that Position) String() string {
	var sb strings.Builder
	for row := 0; row < Size; row++ {
		if row > 0 {
			sb.WriteByte('/')
		}
		for col := 0; col < Size; col++ {
			switch that[row][col] {
			case CellX:
				sb.WriteByte('X')
			case CellO:
				sb.WriteByte('O')
			default:
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}

// ParsePosition reads the format produced by String. '.', '-' and '_' all mean an empty square.
func ParsePosition(s string) (Position, error) {
	var pos Position

	rows := strings.Split(s, "/")
	if len(rows) != Size {
		return pos, fmt.Errorf("%w: want %d rows, got %d", ErrMalformedPosition, Size, len(rows))
	}

	for row, line := range rows {
		if len(line) != Size {
			return pos, fmt.Errorf("%w: row %d has %d squares", ErrMalformedPosition, row, len(line))
		}

		for col := 0; col < Size; col++ {
			switch line[col] {
			case 'X', 'x':
				pos[row][col] = CellX
			case 'O', 'o':
				pos[row][col] = CellO
			case '.', '-', '_':
				pos[row][col] = CellEmpty
			default:
				return pos, fmt.Errorf("%w: unexpected %q", ErrMalformedPosition, line[col])
			}
		}
	}

	return pos, nil
}

func MustParsePosition(s string) Position {
	pos, err := ParsePosition(s)
	if err != nil {
		panic(err)
	}
	return pos
}

func InBounds(row, col int) bool {
	return row >= 0 && row < Size && col >= 0 && col < Size
}
