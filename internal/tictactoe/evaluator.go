package tictactoe

// Outcome is a game result seen from one side.
type Outcome uint8

const (
	Unfinished Outcome = iota
	Win
	Loss
	Draw
)

func (o Outcome) String() string {
	switch o {
	case Win:
		return "win"
	case Loss:
		return "loss"
	case Draw:
		return "draw"
	default:
		return "unfinished"
	}
}

func (o Outcome) IsTerminal() bool {
	return o != Unfinished
}

type square struct {
	row, col int
}

// lines lists every triple in scan order: rows, columns, main diagonal, anti-diagonal.
var lines = [8][Size]square{
	{{0, 0}, {0, 1}, {0, 2}},
	{{1, 0}, {1, 1}, {1, 2}},
	{{2, 0}, {2, 1}, {2, 2}},
	{{0, 0}, {1, 0}, {2, 0}},
	{{0, 1}, {1, 1}, {2, 1}},
	{{0, 2}, {1, 2}, {2, 2}},
	{{0, 0}, {1, 1}, {2, 2}},
	{{0, 2}, {1, 1}, {2, 0}},
}

// Evaluate classifies the position for perspective. The first completed line in scan order decides.
func Evaluate(pos Position, perspective Side) Outcome {
	for _, line := range lines {
		if owner, ok := completedBy(&pos, line); ok {
			if owner == perspective {
				return Win
			}
			return Loss
		}
	}

	for row := 0; row < Size; row++ {
		for col := 0; col < Size; col++ {
			if pos[row][col].IsEmpty() {
				return Unfinished
			}
		}
	}

	return Draw
}

// completedBy walks one line and reports the side holding all of it.
func completedBy(pos *Position, line [Size]square) (Side, bool) {
	streak := CellEmpty
	count := 0

	for _, sq := range line {
		value := pos[sq.row][sq.col]
		if value.IsEmpty() {
			return 0, false
		}

		if streak.IsEmpty() {
			streak = value
		}

		if value != streak {
			return 0, false
		}

		count++
	}

	if count < Size {
		return 0, false
	}

	return streak.Side(), true
}
