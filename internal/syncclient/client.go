package syncclient

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/tictactoe4x4/internal/apperror"
	"github.com/rocketscienceinc/tictactoe4x4/internal/entity"
)

// SyncClient keeps a local ViewModel consistent with the authoritative game state.
// The cached view is only ever replaced as a whole from a fresh fetch.
type SyncClient struct {
	logger   *slog.Logger
	api      GameAPI
	opponent *OpponentRequester

	// refreshMu orders fetch+store pairs so an older response never overwrites a newer one.
	refreshMu sync.Mutex

	mu   sync.RWMutex
	view entity.ViewModel
	mode entity.Mode
}

func New(logger *slog.Logger, api GameAPI, mode entity.Mode, difficulty entity.Difficulty) *SyncClient {
	return &SyncClient{
		logger:   logger.With("component", "sync_client"),
		api:      api,
		opponent: NewOpponentRequester(logger, api, difficulty),
		view:     entity.EmptyViewModel(),
		mode:     mode,
	}
}

func (that *SyncClient) View() entity.ViewModel {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return that.view
}

func (that *SyncClient) Mode() entity.Mode {
	that.mu.RLock()
	defer that.mu.RUnlock()

	return that.mode
}

func (that *SyncClient) Difficulty() entity.Difficulty {
	return that.opponent.Difficulty()
}

// SetMode switches between single and multiplayer. Not allowed while the game is over.
func (that *SyncClient) SetMode(mode entity.Mode) error {
	that.mu.Lock()
	defer that.mu.Unlock()

	if that.view.IsOver() {
		return apperror.ErrGameAlreadyOver
	}

	that.mode = mode

	return nil
}

func (that *SyncClient) SetDifficulty(difficulty entity.Difficulty) error {
	if that.View().IsOver() {
		return apperror.ErrGameAlreadyOver
	}

	that.opponent.SetDifficulty(difficulty)

	return nil
}

// Refresh replaces the cached view with the authoritative state. On failure the cache is
// left as it was.
func (that *SyncClient) Refresh(ctx context.Context) error {
	that.refreshMu.Lock()
	defer that.refreshMu.Unlock()

	state, err := that.api.GameState(ctx)
	if err != nil {
		return fmt.Errorf("failed to refresh game state: %w", err)
	}

	view := entity.NewViewModel(state)

	that.mu.Lock()
	that.view = view
	that.mu.Unlock()

	return nil
}

// SubmitMove sends a move for the current player. Moves the cached view already rules out
// are rejected locally without a request. After a sent move the view is always refreshed.
func (that *SyncClient) SubmitMove(ctx context.Context, position int) (entity.MoveResult, error) {
	log := that.logger.With("method", "SubmitMove", "position", position)

	if err := that.precheck(position); err != nil {
		log.Debug("move rejected locally", "error", err)
		return entity.RejectedMove(position, err), nil
	}

	result, err := that.api.MakeMove(ctx, position)
	if err != nil {
		return entity.MoveResult{}, fmt.Errorf("failed to submit move: %w", err)
	}

	if !result.Accepted {
		log.Debug("move rejected by server", "reason", result.Reason, "error", result.Err())
	}

	var opponentErr error
	if result.Accepted && that.Mode() == entity.SingleMode {
		_, opponentErr = that.opponent.Request(ctx)
	}

	if err = that.Refresh(ctx); err != nil {
		return result, errors.Join(opponentErr, err)
	}

	return result, opponentErr
}

// StartNewGame starts a fresh game on the service and adopts it.
func (that *SyncClient) StartNewGame(ctx context.Context) error {
	if _, err := that.api.StartGame(ctx); err != nil {
		return fmt.Errorf("failed to start new game: %w", err)
	}

	if err := that.Refresh(ctx); err != nil {
		return err
	}

	that.mu.Lock()
	that.view.WinningLine = nil
	that.mu.Unlock()

	return nil
}

func (that *SyncClient) precheck(position int) error {
	view := that.View()

	switch {
	case !entity.IsValidPosition(position):
		return fmt.Errorf("%w: %d", apperror.ErrInvalidPosition, position)
	case view.IsOver():
		return apperror.ErrGameAlreadyOver
	case view.Board[position] != entity.Empty:
		return fmt.Errorf("%w: %d", apperror.ErrCellOccupied, position)
	default:
		return nil
	}
}
