package console

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rocketscienceinc/tictactoe-agent/internal/service"
	"github.com/rocketscienceinc/tictactoe-agent/internal/tictactoe"
)

func newTestGame(t *testing.T, input string, agentFirst bool) (*Game, *bytes.Buffer) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	bot := service.NewBotService(logger, tictactoe.DefaultPolicy())

	var out bytes.Buffer
	game, err := NewGame(logger, bot, strings.NewReader(input), &out, Options{
		AgentMark:  "X",
		AgentFirst: agentFirst,
	})
	require.NoError(t, err)

	return game, &out
}

func TestGame_Run(t *testing.T) {
	t.Run("Agent opens in the center and wins", func(t *testing.T) {
		// Given: the agent moves first and the human plays two edge squares
		game, out := newTestGame(t, "A2\nC1\n", true)

		// When: playing the game
		outcome, err := game.Run(context.Background())

		// Then: the agent takes the diagonal
		require.NoError(t, err)
		assert.Equal(t, tictactoe.Loss, outcome)
		assert.Contains(t, out.String(), "AI's chance of winning: 64.94%")
		assert.Contains(t, out.String(), "AI's chance of winning: 72.73%")
		assert.Contains(t, out.String(), "AI's chance of winning: 100.00%")
		assert.Contains(t, out.String(), "C | O | - | X |")
		assert.True(t, strings.HasSuffix(out.String(), "I'm sorry, you lost! :(\n"))
	})

	t.Run("Bad input is prompted again and the game ends drawn", func(t *testing.T) {
		game, out := newTestGame(t, "B2\nA1\nz9\nC3\nA2\nC1\nB3\n", false)

		outcome, err := game.Run(context.Background())

		require.NoError(t, err)
		assert.Equal(t, tictactoe.Draw, outcome)
		assert.Contains(t, out.String(), "ERROR: Please choose an empty square")
		assert.Contains(t, out.String(), "ERROR: Please input a coordinate position, ex. - A2")
		assert.Contains(t, out.String(), "AI's chance of winning: 29.27%")
		assert.Contains(t, out.String(), "It was a draw, so you didn't win or lose!")
	})

	t.Run("Human completes a column", func(t *testing.T) {
		game, out := newTestGame(t, "B2\nC3\nA2\nC2\n", false)

		outcome, err := game.Run(context.Background())

		require.NoError(t, err)
		assert.Equal(t, tictactoe.Win, outcome)
		assert.Contains(t, out.String(), "B | X | O | - |")
		assert.True(t, strings.HasSuffix(out.String(), "Congratulations, you won!\n"))
	})

	t.Run("End of input stops the game", func(t *testing.T) {
		game, out := newTestGame(t, "B2\n", false)

		outcome, err := game.Run(context.Background())

		require.NoError(t, err)
		assert.Equal(t, tictactoe.Unfinished, outcome)
		assert.True(t, strings.HasSuffix(out.String(), msgPrompt+"\n"))
	})

	t.Run("Canceled context stops waiting for input", func(t *testing.T) {
		reader, writer := io.Pipe()
		t.Cleanup(func() { _ = writer.Close() })

		logger := slog.New(slog.NewTextHandler(io.Discard, nil))
		game, err := NewGame(logger, service.NewBotService(logger, tictactoe.DefaultPolicy()), reader, io.Discard, Options{AgentMark: "O"})
		require.NoError(t, err)

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err = game.Run(ctx)

		assert.ErrorIs(t, err, context.Canceled)
	})
}

func TestNewGame(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	_, err := NewGame(logger, service.NewBotService(logger, tictactoe.DefaultPolicy()), strings.NewReader(""), io.Discard, Options{AgentMark: "Z"})

	assert.ErrorIs(t, err, tictactoe.ErrUnknownMark)
}
