package tictactoe

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-agent/internal/apperror"
)

func TestCell_Side(t *testing.T) {
	t.Run("Occupied cells convert to their side", func(t *testing.T) {
		assert.Equal(t, X, CellX.Side())
		assert.Equal(t, O, CellO.Side())
	})

	t.Run("Empty cell panics", func(t *testing.T) {
		// When: converting an empty cell into a side
		// Then: the invariant breach aborts immediately
		assert.Panics(t, func() { _ = CellEmpty.Side() })
	})
}

func TestSide_Opponent(t *testing.T) {
	assert.Equal(t, O, X.Opponent())
	assert.Equal(t, X, O.Opponent())
	assert.Equal(t, CellX, X.Cell())
	assert.Equal(t, CellO, O.Cell())
}

func TestParseSide(t *testing.T) {
	side, err := ParseSide("O")
	require.NoError(t, err)
	assert.Equal(t, O, side)

	_, err = ParseSide("Z")
	require.ErrorIs(t, err, ErrUnknownMark)
}

func TestParsePosition(t *testing.T) {
	t.Run("Round trips through String", func(t *testing.T) {
		// Given: a position in compact notation
		notation := "XO./.X./..O"

		// When: parsing it
		pos, err := ParsePosition(notation)

		// Then: the squares are placed row-major and String reproduces the input
		require.NoError(t, err)
		assert.Equal(t, CellX, pos.At(0, 0))
		assert.Equal(t, CellO, pos.At(0, 1))
		assert.Equal(t, CellO, pos.At(2, 2))
		assert.Equal(t, 5, pos.EmptyCount())
		assert.Equal(t, notation, pos.String())
	})

	t.Run("Rejects malformed input", func(t *testing.T) {
		for _, notation := range []string{"", "XXX/OOO", "XX/OOO/...", "XXZ/.../..."} {
			_, err := ParsePosition(notation)
			assert.ErrorIs(t, err, ErrMalformedPosition, notation)
		}
	})
}

func TestPosition_Play(t *testing.T) {
	t.Run("Places the marker on an empty square", func(t *testing.T) {
		pos := NewPosition()

		require.NoError(t, pos.Play(1, 2, O))

		assert.Equal(t, CellO, pos.At(1, 2))
	})

	t.Run("Rejects an occupied square", func(t *testing.T) {
		pos := MustParsePosition("X../.../...")

		err := pos.Play(0, 0, O)

		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		assert.Equal(t, CellX, pos.At(0, 0))
	})

	t.Run("Rejects squares off the board", func(t *testing.T) {
		pos := NewPosition()

		assert.ErrorIs(t, pos.Play(3, 0, X), apperror.ErrInvalidCell)
		assert.ErrorIs(t, pos.Play(0, -1, X), apperror.ErrInvalidCell)
	})
}

func TestPosition_try(t *testing.T) {
	// Given: a board and a callback that panics mid-exploration
	pos := MustParsePosition("X../.../...")
	before := pos

	// When: the exploratory move unwinds through a panic
	assert.Panics(t, func() {
		pos.try(1, 1, O, func() {
			assert.Equal(t, CellO, pos.At(1, 1))
			panic("boom")
		})
	})

	// Then: the square has still been restored
	assert.Equal(t, before, pos)
}

func TestPosition_JSON(t *testing.T) {
	pos := MustParsePosition("X../.O./...")

	data, err := json.Marshal(pos)
	require.NoError(t, err)
	assert.JSONEq(t, `[["X","",""],["","O",""],["","",""]]`, string(data))

	var decoded Position
	require.NoError(t, json.Unmarshal(data, &decoded))
	assert.Equal(t, pos, decoded)
}
