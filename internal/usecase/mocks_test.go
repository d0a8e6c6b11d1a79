package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/rocketscienceinc/tictactoe-agent/internal/entity"
	"github.com/rocketscienceinc/tictactoe-agent/internal/tictactoe"
)

type mockPlayerRepo struct {
	mock.Mock
}

func (m *mockPlayerRepo) CreateOrUpdate(ctx context.Context, player *entity.Player) error {
	args := m.Called(ctx, player)
	return args.Error(0)
}

func (m *mockPlayerRepo) GetByID(ctx context.Context, id string) (*entity.Player, error) {
	args := m.Called(ctx, id)
	player, _ := args.Get(0).(*entity.Player)
	return player, args.Error(1)
}

type mockGameRepo struct {
	mock.Mock
}

func (m *mockGameRepo) CreateOrUpdate(ctx context.Context, game *entity.Game) error {
	args := m.Called(ctx, game)
	return args.Error(0)
}

func (m *mockGameRepo) GetByID(ctx context.Context, id string) (*entity.Game, error) {
	args := m.Called(ctx, id)
	game, _ := args.Get(0).(*entity.Game)
	return game, args.Error(1)
}

func (m *mockGameRepo) DeleteByID(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

type mockBot struct {
	mock.Mock
}

func (m *mockBot) MakeTurn(game *entity.Game) (tictactoe.Selection, error) {
	args := m.Called(game)
	selection, _ := args.Get(0).(tictactoe.Selection)
	return selection, args.Error(1)
}
