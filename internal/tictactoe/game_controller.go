package tictactoe

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe4x4/internal/apperror"
	"github.com/rocketscienceinc/tictactoe4x4/internal/entity"
)

// MakeTurn applies a move to a copy of state. On rejection the original state is returned
// unchanged together with the validation error.
func MakeTurn(state entity.GameState, position int, player entity.Mark) (entity.GameState, error) {
	if err := ValidateMove(state, position, player); err != nil {
		return state, fmt.Errorf("invalid turn: %w", err)
	}

	next := state
	next.Board[position] = player
	next.Seq++

	return ScheduleTurn(next, player), nil
}

// ValidateMove - checks if the move is valid.
func ValidateMove(state entity.GameState, position int, player entity.Mark) error {
	if !entity.IsValidPosition(position) {
		return fmt.Errorf("%w: %d", apperror.ErrInvalidPosition, position)
	}

	if state.IsOver() {
		return apperror.ErrGameAlreadyOver
	}

	if state.Board[position] != entity.Empty {
		return fmt.Errorf("%w: %d", apperror.ErrCellOccupied, position)
	}

	if state.Turn != player {
		return apperror.ErrNotYourTurn
	}

	return nil
}

// ScheduleTurn - settles winner, draw and the next turn after player has moved.
// A terminal move freezes the turn on the player who made it.
func ScheduleTurn(state entity.GameState, player entity.Mark) entity.GameState {
	switch _, won := entity.DetectWin(state.Board); {
	case won:
		state.Winner = player
		state.Draw = false
		state.Turn = player
	case state.Board.IsFull():
		state.Winner = entity.Empty
		state.Draw = true
		state.Turn = player
	default:
		state.Turn = player.Opponent()
	}

	return state
}
