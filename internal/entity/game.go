package entity

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-agent/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-agent/internal/tictactoe"
)

const (
	StatusFinished = "finished"
	StatusOngoing  = "ongoing"
	StatusWaiting  = "waiting"

	PlayerX   = "X"
	PlayerO   = "O"
	PlayerTie = "-"
)

var ErrUnknownGameStatus = errors.New("unknown game status")

type Game struct {
	ID      string             `json:"id"`
	Board   tictactoe.Position `json:"board"`
	Winner  string             `json:"winner"`
	Status  string             `json:"status"`
	Turn    string             `json:"player_turn"`
	Players []*Player          `json:"players,omitempty"`
	// BotWinPct is the chance of winning the bot reported with its last move.
	BotWinPct float64 `json:"bot_win_pct"`
}

func NewGame(id string) *Game {
	return &Game{
		ID:     id,
		Board:  tictactoe.NewPosition(),
		Turn:   PlayerX,
		Status: StatusWaiting,
	}
}

// DetermineGameResult returns the winning mark, PlayerTie, or "" while the game goes on.
func (that *Game) DetermineGameResult() string {
	switch tictactoe.Evaluate(that.Board, tictactoe.X) {
	case tictactoe.Win:
		return PlayerX
	case tictactoe.Loss:
		return PlayerO
	case tictactoe.Draw:
		return PlayerTie
	case tictactoe.Unfinished:
	}

	return ""
}

func (that *Game) UpdateGameState() {
	switch winner := that.DetermineGameResult(); winner {
	// one player wins
	case PlayerX, PlayerO:
		that.Winner = winner
		that.Status = StatusFinished
		that.Turn = ""
	// tie
	case PlayerTie:
		that.Winner = PlayerTie
		that.Status = StatusFinished
		that.Turn = ""
	// game continue
	default:
		that.Status = StatusOngoing
	}
}

func (that *Game) MakeTurn(playerMark string, row, col int) error {
	if that.IsFinished() {
		return apperror.ErrGameFinished
	}

	if that.Turn != playerMark {
		return apperror.ErrNotYourTurn
	}

	side, err := tictactoe.ParseSide(playerMark)
	if err != nil {
		return fmt.Errorf("invalid mark: %w", err)
	}

	if err = that.Board.Play(row, col, side); err != nil {
		return err
	}

	that.Turn = side.Opponent().String()

	that.UpdateGameState()

	return nil
}

func (that *Game) IsFinished() bool {
	return that.Status == StatusFinished
}

func (that *Game) IsOngoing() bool {
	return that.Status == StatusOngoing
}

func (that *Game) IsWaiting() bool {
	return that.Status == StatusWaiting
}

func (that *Game) ConfirmOngoingState() error {
	switch {
	case that.IsWaiting():
		return apperror.ErrGameIsNotStarted
	case that.IsFinished():
		return apperror.ErrGameFinished
	case that.IsOngoing():
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownGameStatus, that.Status)
	}
}

// Bot returns the search-driven player, or nil.
func (that *Game) Bot() *Player {
	for _, player := range that.Players {
		if player.IsBot() {
			return player
		}
	}
	return nil
}

// Human returns the first player that is not the bot, or nil.
func (that *Game) Human() *Player {
	for _, player := range that.Players {
		if !player.IsBot() {
			return player
		}
	}
	return nil
}
