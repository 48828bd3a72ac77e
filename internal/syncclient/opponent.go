package syncclient

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/tictactoe4x4/internal/entity"
)

type opponentAPI interface {
	MakeOpponentMove(ctx context.Context, difficulty entity.Difficulty) (entity.MoveResult, error)
}

// OpponentRequester asks the service for one computer move in single-player mode.
type OpponentRequester struct {
	logger *slog.Logger
	api    opponentAPI

	mu         sync.Mutex
	difficulty entity.Difficulty
}

func NewOpponentRequester(logger *slog.Logger, api opponentAPI, difficulty entity.Difficulty) *OpponentRequester {
	return &OpponentRequester{
		logger:     logger.With("component", "opponent_requester"),
		api:        api,
		difficulty: difficulty,
	}
}

func (that *OpponentRequester) Difficulty() entity.Difficulty {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.difficulty
}

func (that *OpponentRequester) SetDifficulty(difficulty entity.Difficulty) {
	that.mu.Lock()
	defer that.mu.Unlock()

	that.difficulty = difficulty
}

// Request sends one opponent-move request. A rejected opponent move is a normal outcome
// (the human move may have ended the game) and is only logged.
func (that *OpponentRequester) Request(ctx context.Context) (entity.MoveResult, error) {
	difficulty := that.Difficulty()
	log := that.logger.With("method", "Request", "difficulty", difficulty)

	result, err := that.api.MakeOpponentMove(ctx, difficulty)
	if err != nil {
		return entity.MoveResult{}, fmt.Errorf("failed to request opponent move: %w", err)
	}

	if result.Accepted {
		log.Debug("opponent moved", "position", result.Position, "player", result.Player)
	} else {
		log.Debug("opponent move rejected", "reason", result.Reason)
	}

	return result, nil
}
