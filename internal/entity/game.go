package entity

import (
	"fmt"

	"github.com/rocketscienceinc/tictactoe4x4/internal/apperror"
)

type Difficulty string

const (
	EasyDifficulty Difficulty = "easy"
	HardDifficulty Difficulty = "hard"
)

func ParseDifficulty(value string) (Difficulty, error) {
	switch d := Difficulty(value); d {
	case EasyDifficulty, HardDifficulty:
		return d, nil
	default:
		return "", fmt.Errorf("%w: %q", apperror.ErrUnknownDifficulty, value)
	}
}

type Mode string

const (
	SingleMode Mode = "single"
	MultiMode  Mode = "multi"
)

func ParseMode(value string) (Mode, error) {
	switch m := Mode(value); m {
	case SingleMode, MultiMode:
		return m, nil
	default:
		return "", fmt.Errorf("%w: %q", apperror.ErrUnknownMode, value)
	}
}

// GameState is the authoritative state of one game. It is a value: transitions return a new
// GameState instead of mutating the old one.
type GameState struct {
	ID     string `json:"id"`
	Seq    int    `json:"seq"`
	Board  Board  `json:"board"`
	Turn   Mark   `json:"current_turn"`
	Winner Mark   `json:"winner"`
	Draw   bool   `json:"draw"`
}

func NewGameState(id string) GameState {
	return GameState{
		ID:   id,
		Turn: PlayerX,
	}
}

func (that GameState) IsOver() bool {
	return that.Winner != Empty || that.Draw
}

// MoveResult is the outcome of a move submission. Reason holds an apperror code when the move
// was rejected.
type MoveResult struct {
	Accepted bool   `json:"accepted"`
	Position int    `json:"position"`
	Player   Mark   `json:"player,omitempty"`
	Reason   string `json:"reason,omitempty"`
	Error    string `json:"error,omitempty"`
}

func AcceptedMove(position int, player Mark) MoveResult {
	return MoveResult{Accepted: true, Position: position, Player: player}
}

func RejectedMove(position int, err error) MoveResult {
	return MoveResult{
		Position: position,
		Reason:   apperror.Code(err),
		Error:    err.Error(),
	}
}

// Err returns the sentinel error of a rejected move, nil when accepted.
func (that MoveResult) Err() error {
	if that.Accepted {
		return nil
	}

	if err := apperror.FromCode(that.Reason); err != nil {
		return err
	}

	return fmt.Errorf("move rejected: %s", that.Error)
}
