package syncclient

import (
	"context"

	"github.com/rocketscienceinc/tictactoe4x4/internal/entity"
	"github.com/stretchr/testify/mock"
)

type mockGameAPI struct {
	mock.Mock
}

func (m *mockGameAPI) StartGame(ctx context.Context) (entity.GameState, error) {
	args := m.Called(ctx)
	return args.Get(0).(entity.GameState), args.Error(1)
}

func (m *mockGameAPI) GameState(ctx context.Context) (entity.GameState, error) {
	args := m.Called(ctx)
	return args.Get(0).(entity.GameState), args.Error(1)
}

func (m *mockGameAPI) MakeMove(ctx context.Context, position int) (entity.MoveResult, error) {
	args := m.Called(ctx, position)
	return args.Get(0).(entity.MoveResult), args.Error(1)
}

func (m *mockGameAPI) MakeOpponentMove(ctx context.Context, difficulty entity.Difficulty) (entity.MoveResult, error) {
	args := m.Called(ctx, difficulty)
	return args.Get(0).(entity.MoveResult), args.Error(1)
}
