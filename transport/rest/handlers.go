package rest

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rocketscienceinc/tictactoe4x4/internal/apperror"
	"github.com/rocketscienceinc/tictactoe4x4/internal/entity"
)

type gameManager interface {
	Reset(ctx context.Context) (entity.GameState, error)
	Query(ctx context.Context) (entity.GameState, error)
	ApplyMove(ctx context.Context, position int, player entity.Mark) (entity.GameState, error)
	ApplyOpponentMove(ctx context.Context, difficulty entity.Difficulty) (entity.GameState, int, error)
}

type MoveRequest struct {
	Position *int        `json:"position"`
	Player   entity.Mark `json:"player,omitempty"`
}

type OpponentMoveRequest struct {
	Difficulty string `json:"difficulty"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type gameHandlers struct {
	logger *slog.Logger
	game   gameManager
}

func newGameHandlers(logger *slog.Logger, game gameManager) *gameHandlers {
	return &gameHandlers{
		logger: logger.With("component", "game_handlers"),
		game:   game,
	}
}

func (that *gameHandlers) register(e *echo.Echo) {
	e.POST("/start", that.handleStart)
	e.GET("/game-state", that.handleGameState)
	e.POST("/make-move", that.handleMakeMove)
	e.POST("/make-ai-move", that.handleMakeOpponentMove)
}

func (that *gameHandlers) handleStart(ctx echo.Context) error {
	state, err := that.game.Reset(ctx.Request().Context())
	if err != nil {
		return that.internalError(ctx, "failed to start game", err)
	}

	return ctx.JSON(http.StatusOK, state)
}

func (that *gameHandlers) handleGameState(ctx echo.Context) error {
	state, err := that.game.Query(ctx.Request().Context())
	if err != nil {
		return that.internalError(ctx, "failed to get game state", err)
	}

	return ctx.JSON(http.StatusOK, state)
}

func (that *gameHandlers) handleMakeMove(ctx echo.Context) error {
	var req MoveRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	if req.Position == nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "position is required"})
	}

	if req.Player != entity.Empty && !req.Player.IsPlayer() {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "player must be X or O"})
	}

	state, err := that.game.ApplyMove(ctx.Request().Context(), *req.Position, req.Player)

	return that.moveResponse(ctx, *req.Position, state, err)
}

func (that *gameHandlers) handleMakeOpponentMove(ctx echo.Context) error {
	var req OpponentMoveRequest
	if err := ctx.Bind(&req); err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: "invalid request body"})
	}

	difficulty, err := entity.ParseDifficulty(req.Difficulty)
	if err != nil {
		return ctx.JSON(http.StatusBadRequest, ErrorResponse{Error: err.Error()})
	}

	state, position, err := that.game.ApplyOpponentMove(ctx.Request().Context(), difficulty)

	return that.moveResponse(ctx, position, state, err)
}

func (that *gameHandlers) moveResponse(ctx echo.Context, position int, state entity.GameState, err error) error {
	switch {
	case err == nil:
		return ctx.JSON(http.StatusOK, entity.AcceptedMove(position, state.Board[position]))
	case apperror.IsRejection(err):
		return ctx.JSON(http.StatusUnprocessableEntity, entity.RejectedMove(position, err))
	default:
		return that.internalError(ctx, "failed to make move", err)
	}
}

func (that *gameHandlers) internalError(ctx echo.Context, msg string, err error) error {
	that.logger.Error(msg, "error", err)

	return ctx.JSON(http.StatusInternalServerError, ErrorResponse{Error: msg})
}
