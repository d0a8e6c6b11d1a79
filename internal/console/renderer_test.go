package console

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-agent/internal/tictactoe"
)

func TestRenderer_Render(t *testing.T) {
	t.Run("Draws a lettered grid", func(t *testing.T) {
		// Given: a position with both marks
		var out bytes.Buffer
		pos := tictactoe.MustParsePosition("XO./.X./O.X")

		// When: rendering without colors
		require.NoError(t, NewRenderer(&out, false).Render(pos))

		// Then: empty squares show as dashes
		want := "  | 1 | 2 | 3 |\n" +
			"---------------\n" +
			"A | X | O | - |\n" +
			"---------------\n" +
			"B | - | X | - |\n" +
			"---------------\n" +
			"C | O | - | X |\n" +
			"---------------\n" +
			"\n"
		assert.Equal(t, want, out.String())
		assert.Equal(t, "XO./.X./O.X", pos.String())
	})

	t.Run("Colors the marks", func(t *testing.T) {
		var out bytes.Buffer

		require.NoError(t, NewRenderer(&out, true).Render(tictactoe.MustParsePosition("X../.../..O")))

		assert.Contains(t, out.String(), "\x1b[")
		assert.Contains(t, out.String(), "B | - | - | - |")
	})
}
