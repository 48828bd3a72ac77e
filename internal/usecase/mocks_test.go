package usecase

import (
	"context"

	"github.com/rocketscienceinc/tictactoe4x4/internal/entity"
	"github.com/stretchr/testify/mock"
)

type mockGameRepo struct {
	mock.Mock
}

func (m *mockGameRepo) CreateOrUpdate(ctx context.Context, sessionID string, state entity.GameState) error {
	args := m.Called(ctx, sessionID, state)
	return args.Error(0)
}

func (m *mockGameRepo) GetByID(ctx context.Context, sessionID string) (entity.GameState, error) {
	args := m.Called(ctx, sessionID)
	return args.Get(0).(entity.GameState), args.Error(1)
}

func (m *mockGameRepo) DeleteByID(ctx context.Context, sessionID string) error {
	args := m.Called(ctx, sessionID)
	return args.Error(0)
}

type mockPublisher struct {
	mock.Mock
}

func (m *mockPublisher) Publish(state entity.GameState) {
	m.Called(state)
}

type stubBot struct {
	position int
	err      error
}

func (s stubBot) ChooseMove(entity.GameState, entity.Difficulty) (int, error) {
	return s.position, s.err
}
