package service

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/rocketscienceinc/tictactoe4x4/internal/apperror"
	"github.com/rocketscienceinc/tictactoe4x4/internal/entity"
)

var ErrNoAvailableMoves = errors.New("no available moves")

type BotService interface {
	ChooseMove(state entity.GameState, difficulty entity.Difficulty) (int, error)
}

type botService struct {
	intn func(n int) int
}

func NewBotService() BotService {
	return &botService{
		intn: rand.Intn, //nolint: gosec // it's ok
	}
}

// ChooseMove picks a cell for the player whose turn it is.
func (that *botService) ChooseMove(state entity.GameState, difficulty entity.Difficulty) (int, error) {
	availableCells := state.Board.EmptyCells()
	if len(availableCells) == 0 {
		return 0, ErrNoAvailableMoves
	}

	switch difficulty {
	case entity.EasyDifficulty:
		return availableCells[that.intn(len(availableCells))], nil
	case entity.HardDifficulty:
		return chooseHardMove(state.Board, state.Turn, availableCells), nil
	default:
		return 0, fmt.Errorf("%w: %q", apperror.ErrUnknownDifficulty, difficulty)
	}
}

// chooseHardMove wins if it can, then blocks, then takes the cell on the most open lines.
func chooseHardMove(board entity.Board, me entity.Mark, availableCells []int) int {
	if cell, ok := findCompletingMove(board, me, availableCells); ok {
		return cell
	}

	if cell, ok := findCompletingMove(board, me.Opponent(), availableCells); ok {
		return cell
	}

	best, bestScore := availableCells[0], -1
	for _, cell := range availableCells {
		if score := openLineScore(board, me, cell); score > bestScore {
			best, bestScore = cell, score
		}
	}

	return best
}

func findCompletingMove(board entity.Board, mark entity.Mark, availableCells []int) (int, bool) {
	for _, cell := range availableCells {
		board[cell] = mark
		_, won := entity.DetectWin(board)
		board[cell] = entity.Empty

		if won {
			return cell, true
		}
	}

	return 0, false
}

// openLineScore counts the lines through cell that the opponent has not blocked yet,
// weighting lines by how many of our marks they already hold.
func openLineScore(board entity.Board, me entity.Mark, cell int) int {
	score := 0
	for _, line := range entity.WinLines {
		if !lineContains(line, cell) {
			continue
		}

		own, blocked := 0, false
		for _, idx := range line {
			switch board[idx] {
			case me:
				own++
			case me.Opponent():
				blocked = true
			}
		}

		if !blocked {
			score += 1 + own*own
		}
	}

	return score
}

func lineContains(line entity.WinLine, cell int) bool {
	for _, idx := range line {
		if idx == cell {
			return true
		}
	}

	return false
}
