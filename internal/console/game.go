package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-agent/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-agent/internal/entity"
	"github.com/rocketscienceinc/tictactoe-agent/internal/tictactoe"
)

const (
	msgPrompt        = "Where would you like to play?"
	msgBadCoordinate = "\nERROR: Please input a coordinate position, ex. - A2\n"
	msgOccupied      = "\nERROR: Please choose an empty square\n"
	msgChance        = "AI's chance of winning: %.2f%%\n"

	msgWin  = "Congratulations, you won!"
	msgLoss = "I'm sorry, you lost! :("
	msgDraw = "It was a draw, so you didn't win or lose!"
)

const consoleGameID = "console"

type botService interface {
	MakeTurn(game *entity.Game) (tictactoe.Selection, error)
}

type Options struct {
	AgentMark  string
	AgentFirst bool
	Color      bool
}

// Game plays one round between a human at the terminal and the bot.
type Game struct {
	logger   *slog.Logger
	bot      botService
	renderer *Renderer
	in       io.Reader

	game  *entity.Game
	human string
}

func NewGame(logger *slog.Logger, bot botService, in io.Reader, out io.Writer, opts Options) (*Game, error) {
	if _, err := tictactoe.ParseSide(opts.AgentMark); err != nil {
		return nil, fmt.Errorf("invalid agent mark: %w", err)
	}

	human := entity.Opponent(opts.AgentMark)

	game := entity.NewGame(consoleGameID)
	game.Players = []*entity.Player{
		{ID: "human", Mark: human, GameID: consoleGameID},
		entity.NewBotPlayer(consoleGameID, opts.AgentMark),
	}
	game.Status = entity.StatusOngoing

	game.Turn = human
	if opts.AgentFirst {
		game.Turn = opts.AgentMark
	}

	return &Game{
		logger:   logger.With("component", "console"),
		bot:      bot,
		renderer: NewRenderer(out, opts.Color),
		in:       in,
		game:     game,
		human:    human,
	}, nil
}

// Run plays until the game ends, the input is exhausted or ctx is canceled.
// The outcome is reported from the human's side.
func (that *Game) Run(ctx context.Context) (tictactoe.Outcome, error) {
	log := that.logger.With("method", "Run")

	humanSide, err := tictactoe.ParseSide(that.human)
	if err != nil {
		return tictactoe.Unfinished, err
	}

	lines := readLines(ctx, that.in)

	for {
		if that.game.Turn != that.human {
			selection, err := that.bot.MakeTurn(that.game)
			if err != nil {
				return tictactoe.Unfinished, fmt.Errorf("bot failed to make turn: %w", err)
			}

			log.Debug("bot moved", "row", selection.Row, "col", selection.Col, "evaluated", selection.Evaluated)

			if err = that.printf(msgChance, selection.WinPct); err != nil {
				return tictactoe.Unfinished, err
			}
		}

		if err = that.renderer.Render(that.game.Board); err != nil {
			return tictactoe.Unfinished, err
		}

		if outcome := tictactoe.Evaluate(that.game.Board, humanSide); outcome.IsTerminal() {
			return outcome, that.announce(outcome)
		}

		done, err := that.humanTurn(ctx, lines)
		if err != nil || done {
			return tictactoe.Unfinished, err
		}

		if outcome := tictactoe.Evaluate(that.game.Board, humanSide); outcome.IsTerminal() {
			if err = that.renderer.Render(that.game.Board); err != nil {
				return tictactoe.Unfinished, err
			}
			return outcome, that.announce(outcome)
		}
	}
}

// humanTurn prompts until a legal move is played. done reports exhausted input.
func (that *Game) humanTurn(ctx context.Context, lines <-chan string) (bool, error) {
	for {
		if err := that.renderer.Println(msgPrompt); err != nil {
			return false, err
		}

		var (
			line string
			ok   bool
		)

		select {
		case <-ctx.Done():
			return false, ctx.Err()
		case line, ok = <-lines:
			if !ok {
				return true, nil
			}
		}

		row, col, err := ParseMove(line)
		if err != nil {
			if err = that.renderer.Println(msgBadCoordinate); err != nil {
				return false, err
			}
			continue
		}

		err = that.game.MakeTurn(that.human, row, col)
		switch {
		case err == nil:
			return false, nil
		case errors.Is(err, apperror.ErrCellOccupied):
			if err = that.renderer.Println(msgOccupied); err != nil {
				return false, err
			}
		default:
			return false, fmt.Errorf("failed make turn: %w", err)
		}
	}
}

func (that *Game) announce(outcome tictactoe.Outcome) error {
	switch outcome {
	case tictactoe.Win:
		return that.renderer.Println(msgWin)
	case tictactoe.Loss:
		return that.renderer.Println(msgLoss)
	case tictactoe.Draw:
		return that.renderer.Println(msgDraw)
	default:
		return nil
	}
}

func (that *Game) printf(format string, args ...any) error {
	return that.renderer.Println(fmt.Sprintf(format, args...))
}

// readLines feeds input lines until EOF or ctx is done.
func readLines(ctx context.Context, in io.Reader) <-chan string {
	lines := make(chan string)

	go func() {
		defer close(lines)

		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			select {
			case lines <- scanner.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	return lines
}
