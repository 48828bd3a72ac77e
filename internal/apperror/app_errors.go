package apperror

import "errors"

var (
	ErrInvalidPosition   = errors.New("position is out of range")
	ErrCellOccupied      = errors.New("cell is already occupied")
	ErrGameAlreadyOver   = errors.New("game is already over")
	ErrNotYourTurn       = errors.New("it's not your turn")
	ErrNetworkFailure    = errors.New("network failure")
	ErrGameNotFound      = errors.New("game not found")
	ErrUnknownDifficulty = errors.New("unknown difficulty")
	ErrUnknownMode       = errors.New("unknown game mode")
)
