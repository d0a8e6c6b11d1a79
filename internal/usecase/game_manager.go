package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-agent/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-agent/internal/entity"
	"github.com/rocketscienceinc/tictactoe-agent/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-agent/internal/tictactoe"
)

type playerRepo interface {
	CreateOrUpdate(ctx context.Context, player *entity.Player) error
	GetByID(ctx context.Context, id string) (*entity.Player, error)
}

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, game *entity.Game) error
	GetByID(ctx context.Context, id string) (*entity.Game, error)
	DeleteByID(ctx context.Context, id string) error
}

type botService interface {
	MakeTurn(game *entity.Game) (tictactoe.Selection, error)
}

// GameManager runs games between a player and the search-driven bot.
type GameManager struct {
	logger     *slog.Logger
	playerRepo playerRepo
	gameRepo   gameRepo
	bot        botService
}

func NewGameManager(logger *slog.Logger, playerRepo playerRepo, gameRepo gameRepo, bot botService) *GameManager {
	return &GameManager{
		logger: logger.With("component", "gameManager"),

		playerRepo: playerRepo,
		gameRepo:   gameRepo,
		bot:        bot,
	}
}

// GetOrCreatePlayer returns the stored player, creating it when id is empty or unknown.
func (that *GameManager) GetOrCreatePlayer(ctx context.Context, id string) (*entity.Player, error) {
	if id != "" {
		player, err := that.playerRepo.GetByID(ctx, id)
		if err == nil {
			return player, nil
		}

		if !errors.Is(err, apperror.ErrPlayerNotFound) {
			return nil, fmt.Errorf("failed get player by id: %w", err)
		}
	}

	if id == "" {
		newID, err := pkg.GenerateNewSessionID()
		if err != nil {
			return nil, fmt.Errorf("failed generate player id: %w", err)
		}
		id = newID
	}

	player := &entity.Player{ID: id}
	if err := that.playerRepo.CreateOrUpdate(ctx, player); err != nil {
		return nil, fmt.Errorf("failed create player: %w", err)
	}

	return player, nil
}

// GetOrCreateGame returns the player's current game or starts a new one against the bot,
// with the player holding mark. The bot opens when it holds X.
func (that *GameManager) GetOrCreateGame(ctx context.Context, playerID, mark string) (*entity.Game, error) {
	player, err := that.getPlayerByID(ctx, playerID)
	if err != nil {
		return nil, err
	}

	if player.GameID != "" {
		existingGame, err := that.gameRepo.GetByID(ctx, player.GameID)
		if err == nil {
			return existingGame, nil
		}

		if !errors.Is(err, apperror.ErrGameNotFound) {
			return nil, fmt.Errorf("failed get game: %w", err)
		}
	}

	return that.createGame(ctx, player, mark)
}

func (that *GameManager) GetGame(ctx context.Context, playerID string) (*entity.Game, error) {
	player, err := that.getPlayerByID(ctx, playerID)
	if err != nil {
		return nil, err
	}

	if player.GameID == "" {
		return nil, apperror.ErrGameNotFound
	}

	game, err := that.gameRepo.GetByID(ctx, player.GameID)
	if err != nil {
		return nil, fmt.Errorf("failed get game: %w", err)
	}

	return game, nil
}

// MakeTurn plays the player's move and, when the game goes on, the bot's reply.
// A finished game is removed from storage and the player is free to start another.
func (that *GameManager) MakeTurn(ctx context.Context, playerID string, row, col int) (*entity.Game, error) {
	log := that.logger.With("method", "MakeTurn", "playerID", playerID)

	player, err := that.getPlayerByID(ctx, playerID)
	if err != nil {
		return nil, err
	}

	if player.GameID == "" {
		return nil, apperror.ErrGameNotFound
	}

	game, err := that.gameRepo.GetByID(ctx, player.GameID)
	if err != nil {
		return nil, fmt.Errorf("failed get game: %w", err)
	}

	if err = game.ConfirmOngoingState(); err != nil {
		return game, err
	}

	if err = game.MakeTurn(player.Mark, row, col); err != nil {
		return game, fmt.Errorf("failed make turn: %w", err)
	}

	if !game.IsFinished() {
		if _, err = that.bot.MakeTurn(game); err != nil {
			return nil, fmt.Errorf("bot failed to make turn: %w", err)
		}
	}

	if game.IsFinished() {
		log.Info("game finished", "gameID", game.ID, "winner", game.Winner)
		that.finishGame(ctx, game, player)

		return game, nil
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed update game: %w", err)
	}

	return game, nil
}

func (that *GameManager) createGame(ctx context.Context, player *entity.Player, mark string) (*entity.Game, error) {
	if mark == "" {
		mark = entity.PlayerX
	}

	if _, err := tictactoe.ParseSide(mark); err != nil {
		return nil, fmt.Errorf("failed create game: %w", err)
	}

	gameID, err := pkg.GenerateGameID()
	if err != nil {
		return nil, fmt.Errorf("failed create game: %w", err)
	}

	game := entity.NewGame(gameID)

	player.GameID = game.ID
	player.Mark = mark

	botPlayer := entity.NewBotPlayer(game.ID, entity.Opponent(mark))
	game.Players = []*entity.Player{player, botPlayer}
	game.Status = entity.StatusOngoing

	if botPlayer.Mark == entity.PlayerX {
		if _, err = that.bot.MakeTurn(game); err != nil {
			return nil, fmt.Errorf("bot failed to make first turn: %w", err)
		}
	}

	if err = that.gameRepo.CreateOrUpdate(ctx, game); err != nil {
		return nil, fmt.Errorf("failed create game: %w", err)
	}

	if err = that.playerRepo.CreateOrUpdate(ctx, player); err != nil {
		return nil, fmt.Errorf("failed update player: %w", err)
	}

	return game, nil
}

// finishGame drops the game and releases the player. Failures are logged, the result stands.
func (that *GameManager) finishGame(ctx context.Context, game *entity.Game, player *entity.Player) {
	log := that.logger.With("method", "finishGame", "gameID", game.ID)

	if err := that.gameRepo.DeleteByID(ctx, game.ID); err != nil && !errors.Is(err, apperror.ErrGameNotFound) {
		log.Error("failed to delete game", "error", err)
	}

	released := *player
	released.GameID = ""
	released.Mark = ""
	if err := that.playerRepo.CreateOrUpdate(ctx, &released); err != nil {
		log.Error("failed to release player", "player", player.ID, "error", err)
	}
}

func (that *GameManager) getPlayerByID(ctx context.Context, id string) (*entity.Player, error) {
	player, err := that.playerRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed get player by id: %w", err)
	}

	return player, nil
}
