package application

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"golang.org/x/sync/errgroup"

	"github.com/rocketscienceinc/tictactoe-agent/internal/config"
	"github.com/rocketscienceinc/tictactoe-agent/internal/console"
	"github.com/rocketscienceinc/tictactoe-agent/internal/repository"
	"github.com/rocketscienceinc/tictactoe-agent/internal/repository/storage"
	"github.com/rocketscienceinc/tictactoe-agent/internal/service"
	"github.com/rocketscienceinc/tictactoe-agent/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-agent/internal/usecase"
	"github.com/rocketscienceinc/tictactoe-agent/transport/rest"
	"github.com/rocketscienceinc/tictactoe-agent/transport/websocket"
)

var (
	ErrAddrNotFound = errors.New("redis address string is empty")
	ErrUnknownMode  = errors.New("unknown mode")
)

// RunApp - runs the application in the configured mode.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	log := logger.With("component", "app")

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	policy, err := tictactoe.ParsePolicy(conf.Agent.TieBreak, conf.Agent.Decisive)
	if err != nil {
		return fmt.Errorf("invalid agent policy: %w", err)
	}

	bot := service.NewBotService(logger, policy)

	log.Info("Starting application", "mode", conf.Mode, "tieBreak", policy.TieBreak, "decisive", policy.Decisive)

	switch conf.Mode {
	case config.ModeConsole:
		return runConsole(ctx, logger, conf, bot)
	case config.ModeServer:
		return runServer(ctx, logger, conf, bot)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownMode, conf.Mode)
	}
}

func runConsole(ctx context.Context, logger *slog.Logger, conf *config.Config, bot service.BotService) error {
	game, err := console.NewGame(logger, bot, os.Stdin, os.Stdout, console.Options{
		AgentMark:  conf.Agent.Mark,
		AgentFirst: conf.Console.AgentFirst,
		Color:      conf.Console.Color,
	})
	if err != nil {
		return fmt.Errorf("could not start console game: %w", err)
	}

	outcome, err := game.Run(ctx)
	if err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("console game failed: %w", err)
	}

	logger.Debug("console game over", "outcome", outcome.String())

	return nil
}

func runServer(ctx context.Context, logger *slog.Logger, conf *config.Config, bot service.BotService) error {
	log := logger.With("component", "app")

	redisAddrString := conf.Redis.GetRedisAddr()
	if redisAddrString == "" {
		return ErrAddrNotFound
	}

	redisStorage, err := storage.New(ctx, redisAddrString)
	if err != nil {
		return fmt.Errorf("could not connect to redis storage: %w", err)
	}

	defer func() {
		if err = redisStorage.Close(); err != nil {
			log.Error("could not close redis storage", "error", err)
		}
	}()

	playerRepo := repository.NewPlayerRepository(redisStorage)
	gameRepo := repository.NewGameRepository(redisStorage)
	gameUseCase := usecase.NewGameManager(logger, playerRepo, gameRepo, bot)

	group, groupCtx := errgroup.WithContext(ctx)

	// run HTTP server
	group.Go(func() error {
		log.Info("Starting HTTP server", "port", conf.HTTPPort)
		if httpErr := rest.New(logger, gameUseCase).Start(groupCtx, conf.HTTPPort); httpErr != nil {
			return fmt.Errorf("HTTP server error: %w", httpErr)
		}
		return nil
	})

	// run Websocket server
	group.Go(func() error {
		log.Info("Starting WebSocket server", "port", conf.SocketPort)
		if wsErr := websocket.New(logger, gameUseCase).Start(groupCtx, conf.SocketPort); wsErr != nil {
			return fmt.Errorf("WebSocket server error: %w", wsErr)
		}
		return nil
	})

	if err = group.Wait(); err != nil {
		return err
	}

	log.Info("Application context canceled, shutting down")

	return nil
}
