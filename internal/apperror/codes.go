package apperror

import "errors"

// Reason codes carried on the wire for rejected moves.
const (
	CodeInvalidPosition = "invalid_position"
	CodeCellOccupied    = "cell_occupied"
	CodeGameOver        = "game_over"
	CodeNotYourTurn     = "not_your_turn"
)

var rejections = []struct {
	code string
	err  error
}{
	{CodeInvalidPosition, ErrInvalidPosition},
	{CodeCellOccupied, ErrCellOccupied},
	{CodeGameOver, ErrGameAlreadyOver},
	{CodeNotYourTurn, ErrNotYourTurn},
}

// IsRejection reports whether err is a move validation error rather than a failure.
func IsRejection(err error) bool {
	return Code(err) != ""
}

// Code returns the wire reason code for a validation error, or "" if err is not one.
func Code(err error) string {
	for _, r := range rejections {
		if errors.Is(err, r.err) {
			return r.code
		}
	}

	return ""
}

// FromCode maps a wire reason code back to its sentinel error.
func FromCode(code string) error {
	for _, r := range rejections {
		if r.code == code {
			return r.err
		}
	}

	return nil
}
