package console

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseMove(t *testing.T) {
	valid := []struct {
		input    string
		row, col int
	}{
		{input: "A1", row: 0, col: 0},
		{input: "A2", row: 0, col: 1},
		{input: "B2", row: 1, col: 1},
		{input: "C3", row: 2, col: 2},
		{input: " C1\n", row: 2, col: 0},
	}

	for _, tc := range valid {
		t.Run("Parses "+tc.input, func(t *testing.T) {
			row, col, err := ParseMove(tc.input)

			require.NoError(t, err)
			assert.Equal(t, tc.row, row)
			assert.Equal(t, tc.col, col)
		})
	}

	for _, input := range []string{"", "A", "A0", "A4", "D1", "a1", "1A", "A12", "B 2"} {
		t.Run("Rejects "+input, func(t *testing.T) {
			_, _, err := ParseMove(input)

			assert.ErrorIs(t, err, ErrBadCoordinate)
		})
	}
}
