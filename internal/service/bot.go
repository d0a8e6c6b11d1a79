package service

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-agent/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-agent/internal/entity"
	"github.com/rocketscienceinc/tictactoe-agent/internal/tictactoe"
)

var ErrBotNotFound = errors.New("bot player not found")

type BotService interface {
	MakeTurn(game *entity.Game) (tictactoe.Selection, error)
}

type botService struct {
	logger *slog.Logger
	policy tictactoe.Policy
}

func NewBotService(logger *slog.Logger, policy tictactoe.Policy) BotService {
	return &botService{
		logger: logger.With("component", "bot"),
		policy: policy,
	}
}

// MakeTurn searches the game tree for the bot's move and plays it on the game.
func (that *botService) MakeTurn(game *entity.Game) (tictactoe.Selection, error) {
	log := that.logger.With("method", "MakeTurn", "gameID", game.ID)

	botPlayer := game.Bot()
	if botPlayer == nil {
		return tictactoe.Selection{}, ErrBotNotFound
	}

	if game.Board.EmptyCount() == 0 {
		return tictactoe.Selection{}, apperror.ErrNoAvailableMoves
	}

	side, err := tictactoe.ParseSide(botPlayer.Mark)
	if err != nil {
		return tictactoe.Selection{}, fmt.Errorf("bot has no valid mark: %w", err)
	}

	selection := tictactoe.SelectMove(game.Board, side, that.policy)
	if !selection.Found {
		// no candidate beat the initial sentinel; a pass is not a legal turn, so take the first free square
		selection.Row, selection.Col = firstEmpty(game.Board)
		log.Warn("no move adopted by search, playing first empty square", "row", selection.Row, "col", selection.Col)
	}

	if err = game.MakeTurn(botPlayer.Mark, selection.Row, selection.Col); err != nil {
		return tictactoe.Selection{}, fmt.Errorf("bot failed to make turn: %w", err)
	}

	game.BotWinPct = selection.WinPct

	log.Debug("bot made turn",
		"row", selection.Row,
		"col", selection.Col,
		"winPct", selection.WinPct,
		"wins", selection.Tally.Wins,
		"losses", selection.Tally.Losses,
		"draws", selection.Tally.Draws,
	)

	return selection, nil
}

func firstEmpty(pos tictactoe.Position) (int, int) {
	for row := 0; row < tictactoe.Size; row++ {
		for col := 0; col < tictactoe.Size; col++ {
			if pos.At(row, col).IsEmpty() {
				return row, col
			}
		}
	}
	return -1, -1
}
