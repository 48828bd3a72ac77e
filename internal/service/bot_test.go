package service

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe4x4/internal/apperror"
	"github.com/rocketscienceinc/tictactoe4x4/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stateWith(turn entity.Mark, marks map[int]entity.Mark) entity.GameState {
	state := entity.NewGameState("bot")
	state.Turn = turn
	for idx, mark := range marks {
		state.Board[idx] = mark
	}

	return state
}

func TestBotService_ChooseMove(t *testing.T) {
	bot := NewBotService()

	t.Run("Easy picks an empty cell", func(t *testing.T) {
		// Given: a board with only cells 7 and 11 free
		marks := map[int]entity.Mark{}
		for i := range entity.BoardSize {
			if i != 7 && i != 11 {
				marks[i] = entity.PlayerX
			}
		}
		state := stateWith(entity.PlayerO, marks)

		for range 50 {
			// When: the easy bot chooses
			cell, err := bot.ChooseMove(state, entity.EasyDifficulty)

			// Then: the cell is always a free one
			require.NoError(t, err)
			assert.Contains(t, []int{7, 11}, cell)
		}
	})

	t.Run("Hard completes its own line", func(t *testing.T) {
		// Given: O holds 3 of the anti-diagonal and X threatens the top row
		state := stateWith(entity.PlayerO, map[int]entity.Mark{
			3: entity.PlayerO, 6: entity.PlayerO, 9: entity.PlayerO,
			0: entity.PlayerX, 1: entity.PlayerX, 2: entity.PlayerX,
		})

		// When: the hard bot chooses
		cell, err := bot.ChooseMove(state, entity.HardDifficulty)

		// Then: it wins instead of blocking
		require.NoError(t, err)
		assert.Equal(t, 12, cell)
	})

	t.Run("Hard blocks the opponent", func(t *testing.T) {
		// Given: X threatens the second column
		state := stateWith(entity.PlayerO, map[int]entity.Mark{
			1: entity.PlayerX, 5: entity.PlayerX, 9: entity.PlayerX,
			0: entity.PlayerO, 15: entity.PlayerO,
		})

		cell, err := bot.ChooseMove(state, entity.HardDifficulty)

		require.NoError(t, err)
		assert.Equal(t, 13, cell)
	})

	t.Run("Hard takes the lowest index among equal scores on an empty board", func(t *testing.T) {
		// Given: corners and inner cells all lie on three open lines
		cell, err := bot.ChooseMove(entity.NewGameState("bot"), entity.HardDifficulty)

		// Then: cell 0 wins the tie
		require.NoError(t, err)
		assert.Equal(t, 0, cell)
	})

	t.Run("Hard breaks mid-game ties by lowest index", func(t *testing.T) {
		// Given: X holds 0, so for O only cells 6 and 9 still sit on three open lines
		state := stateWith(entity.PlayerO, map[int]entity.Mark{0: entity.PlayerX})

		cell, err := bot.ChooseMove(state, entity.HardDifficulty)

		require.NoError(t, err)
		assert.Equal(t, 6, cell)
	})

	t.Run("Hard picks the first of many tied cells", func(t *testing.T) {
		// Given: X at 0 and O at 15 leave nine cells tied for X
		state := stateWith(entity.PlayerX, map[int]entity.Mark{0: entity.PlayerX, 15: entity.PlayerO})

		cell, err := bot.ChooseMove(state, entity.HardDifficulty)

		require.NoError(t, err)
		assert.Equal(t, 1, cell)
	})

	t.Run("Full board has no moves", func(t *testing.T) {
		var state entity.GameState
		for i := range state.Board {
			state.Board[i] = entity.PlayerX
		}

		_, err := bot.ChooseMove(state, entity.HardDifficulty)
		assert.ErrorIs(t, err, ErrNoAvailableMoves)
	})

	t.Run("Unknown difficulty", func(t *testing.T) {
		_, err := bot.ChooseMove(entity.NewGameState("bot"), entity.Difficulty("insane"))
		assert.ErrorIs(t, err, apperror.ErrUnknownDifficulty)
	})
}
