package rest

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/rocketscienceinc/tictactoe-agent/internal/entity"
)

type mockGameUseCase struct {
	mock.Mock
}

func (m *mockGameUseCase) GetOrCreatePlayer(ctx context.Context, id string) (*entity.Player, error) {
	args := m.Called(ctx, id)
	player, _ := args.Get(0).(*entity.Player)
	return player, args.Error(1)
}

func (m *mockGameUseCase) GetOrCreateGame(ctx context.Context, playerID, mark string) (*entity.Game, error) {
	args := m.Called(ctx, playerID, mark)
	game, _ := args.Get(0).(*entity.Game)
	return game, args.Error(1)
}

func (m *mockGameUseCase) GetGame(ctx context.Context, playerID string) (*entity.Game, error) {
	args := m.Called(ctx, playerID)
	game, _ := args.Get(0).(*entity.Game)
	return game, args.Error(1)
}

func (m *mockGameUseCase) MakeTurn(ctx context.Context, playerID string, row, col int) (*entity.Game, error) {
	args := m.Called(ctx, playerID, row, col)
	game, _ := args.Get(0).(*entity.Game)
	return game, args.Error(1)
}
