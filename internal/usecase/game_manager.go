package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/rocketscienceinc/tictactoe4x4/internal/apperror"
	"github.com/rocketscienceinc/tictactoe4x4/internal/entity"
	"github.com/rocketscienceinc/tictactoe4x4/internal/pkg"
	"github.com/rocketscienceinc/tictactoe4x4/internal/tictactoe"
)

type gameRepo interface {
	CreateOrUpdate(ctx context.Context, sessionID string, state entity.GameState) error
	GetByID(ctx context.Context, sessionID string) (entity.GameState, error)
	DeleteByID(ctx context.Context, sessionID string) error
}

type botService interface {
	ChooseMove(state entity.GameState, difficulty entity.Difficulty) (int, error)
}

type statePublisher interface {
	Publish(state entity.GameState)
}

// GameManager is the single writer of one session's GameState. Every operation holds mu
// from load to save, so concurrent moves never interleave between validation and write.
type GameManager struct {
	logger    *slog.Logger
	sessionID string

	mu        sync.Mutex
	gameRepo  gameRepo
	bot       botService
	publisher statePublisher
	newID     func() string
}

func NewGameManager(logger *slog.Logger, sessionID string, gameRepo gameRepo, bot botService, publisher statePublisher) *GameManager {
	return &GameManager{
		logger:    logger.With("component", "game_manager", "session", sessionID),
		sessionID: sessionID,

		gameRepo:  gameRepo,
		bot:       bot,
		publisher: publisher,
		newID:     pkg.GenerateGameID,
	}
}

// Reset drops the session's stored game and starts a fresh one.
func (that *GameManager) Reset(ctx context.Context) (entity.GameState, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	err := that.gameRepo.DeleteByID(ctx, that.sessionID)
	if err != nil && !errors.Is(err, apperror.ErrGameNotFound) {
		return entity.GameState{}, fmt.Errorf("failed to delete game: %w", err)
	}

	return that.reset(ctx)
}

// Query returns the current state, starting a game if the session has none yet.
func (that *GameManager) Query(ctx context.Context) (entity.GameState, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	return that.load(ctx)
}

// ApplyMove places player's mark on position; entity.Empty plays for the current turn.
// A rejected move returns the unchanged state and an apperror validation error.
func (that *GameManager) ApplyMove(ctx context.Context, position int, player entity.Mark) (entity.GameState, error) {
	that.mu.Lock()
	defer that.mu.Unlock()

	state, err := that.load(ctx)
	if err != nil {
		return entity.GameState{}, err
	}

	if player == entity.Empty {
		player = state.Turn
	}

	return that.commit(ctx, state, position, player)
}

// ApplyOpponentMove lets the bot play for whoever's turn it is.
func (that *GameManager) ApplyOpponentMove(ctx context.Context, difficulty entity.Difficulty) (entity.GameState, int, error) {
	log := that.logger.With("method", "ApplyOpponentMove", "difficulty", difficulty)

	that.mu.Lock()
	defer that.mu.Unlock()

	state, err := that.load(ctx)
	if err != nil {
		return entity.GameState{}, 0, err
	}

	if state.IsOver() {
		return state, 0, apperror.ErrGameAlreadyOver
	}

	position, err := that.bot.ChooseMove(state, difficulty)
	if err != nil {
		return state, 0, fmt.Errorf("bot failed to choose move: %w", err)
	}

	log.Debug("bot chose move", "position", position, "player", state.Turn)

	next, err := that.commit(ctx, state, position, state.Turn)

	return next, position, err
}

func (that *GameManager) commit(ctx context.Context, state entity.GameState, position int, player entity.Mark) (entity.GameState, error) {
	log := that.logger.With("method", "commit", "position", position, "player", player)

	next, err := tictactoe.MakeTurn(state, position, player)
	if err != nil {
		log.Debug("move rejected", "error", err)
		return state, err
	}

	if err = that.save(ctx, next); err != nil {
		return state, err
	}

	log.Debug("move committed", "seq", next.Seq, "filled", next.Board.Filled())

	switch {
	case next.Winner != entity.Empty:
		log.Info("game won", "winner", next.Winner, "game", next.ID)
	case next.Draw:
		log.Info("game drawn", "game", next.ID)
	}

	return next, nil
}

func (that *GameManager) load(ctx context.Context) (entity.GameState, error) {
	state, err := that.gameRepo.GetByID(ctx, that.sessionID)
	if errors.Is(err, apperror.ErrGameNotFound) {
		return that.reset(ctx)
	}

	if err != nil {
		return entity.GameState{}, fmt.Errorf("failed to get game: %w", err)
	}

	return state, nil
}

func (that *GameManager) reset(ctx context.Context) (entity.GameState, error) {
	state := entity.NewGameState(that.newID())
	if err := that.save(ctx, state); err != nil {
		return entity.GameState{}, err
	}

	that.logger.Info("game started", "game", state.ID)

	return state, nil
}

func (that *GameManager) save(ctx context.Context, state entity.GameState) error {
	if err := that.gameRepo.CreateOrUpdate(ctx, that.sessionID, state); err != nil {
		return fmt.Errorf("failed to update game: %w", err)
	}

	if that.publisher != nil {
		that.publisher.Publish(state)
	}

	return nil
}
