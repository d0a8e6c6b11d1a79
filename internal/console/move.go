package console

import (
	"errors"
	"strings"
)

var ErrBadCoordinate = errors.New("coordinate must be a row letter A-C followed by a column digit 1-3")

const rowLabels = "ABC"

// ParseMove reads a coordinate such as "A2" into a zero-based row and column.
func ParseMove(input string) (int, int, error) {
	input = strings.TrimSpace(input)
	if len(input) != 2 {
		return 0, 0, ErrBadCoordinate
	}

	row := strings.IndexByte(rowLabels, input[0])
	if row < 0 {
		return 0, 0, ErrBadCoordinate
	}

	if input[1] < '1' || input[1] > '3' {
		return 0, 0, ErrBadCoordinate
	}

	return row, int(input[1] - '1'), nil
}
