package repository

import (
	"context"
	"sync"

	"github.com/rocketscienceinc/tictactoe4x4/internal/apperror"
	"github.com/rocketscienceinc/tictactoe4x4/internal/entity"
)

type memoryGame struct {
	mu    sync.RWMutex
	games map[string]entity.GameState
}

// NewMemoryGameRepository keeps states in process memory; they are lost on restart.
func NewMemoryGameRepository() GameRepository {
	return &memoryGame{
		games: make(map[string]entity.GameState),
	}
}

func (that *memoryGame) CreateOrUpdate(_ context.Context, sessionID string, state entity.GameState) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.games[sessionID] = state

	return nil
}

func (that *memoryGame) GetByID(_ context.Context, sessionID string) (entity.GameState, error) {
	that.mu.RLock()
	defer that.mu.RUnlock()

	state, ok := that.games[sessionID]
	if !ok {
		return entity.GameState{}, apperror.ErrGameNotFound
	}

	return state, nil
}

func (that *memoryGame) DeleteByID(_ context.Context, sessionID string) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if _, ok := that.games[sessionID]; !ok {
		return apperror.ErrGameNotFound
	}

	delete(that.games, sessionID)

	return nil
}
