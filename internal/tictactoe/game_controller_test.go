package tictactoe

import (
	"testing"

	"github.com/rocketscienceinc/tictactoe4x4/internal/apperror"
	"github.com/rocketscienceinc/tictactoe4x4/internal/entity"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// play applies positions alternately starting from X and fails the test on any rejection.
func play(t *testing.T, state entity.GameState, positions ...int) entity.GameState {
	t.Helper()

	var err error
	for _, pos := range positions {
		state, err = MakeTurn(state, pos, state.Turn)
		require.NoError(t, err, "move %d", pos)
	}

	return state
}

// drawSequence fills the board as
//
//	X X O O
//	O O X X
//	X X O O
//	O O X X
//
// which completes no line.
var drawSequence = []int{0, 2, 1, 3, 6, 4, 7, 5, 8, 10, 9, 11, 14, 12, 15, 13}

func TestMakeTurn(t *testing.T) {
	t.Run("MakeTurn", func(t *testing.T) {
		// Given: a new game
		game := entity.NewGameState("123")

		// When: player X makes a turn
		next, err := MakeTurn(game, 0, entity.PlayerX)
		require.NoError(t, err)

		// Then: the new state has the mark and O to move, the old state is untouched
		expected := entity.GameState{
			ID:    "123",
			Seq:   1,
			Board: entity.Board{entity.PlayerX},
			Turn:  entity.PlayerO,
		}

		require.Equal(t, expected, next)
		require.Equal(t, entity.NewGameState("123"), game)
	})

	t.Run("Error on cell already occupied", func(t *testing.T) {
		// Given: X took cell 0
		game := play(t, entity.NewGameState("123"), 0)

		// When: O tries the same cell
		next, err := MakeTurn(game, 0, entity.PlayerO)

		// Then: ErrCellOccupied and the state is identical
		require.ErrorIs(t, err, apperror.ErrCellOccupied)
		require.Equal(t, game, next)
	})

	t.Run("Error on invalid position", func(t *testing.T) {
		game := entity.NewGameState("123")

		for _, pos := range []int{-1, 16, 100} {
			next, err := MakeTurn(game, pos, entity.PlayerX)
			require.ErrorIs(t, err, apperror.ErrInvalidPosition)
			require.Equal(t, game, next)
		}
	})

	t.Run("Error on playing out of turn", func(t *testing.T) {
		game := entity.NewGameState("123")

		next, err := MakeTurn(game, 1, entity.PlayerO)

		require.ErrorIs(t, err, apperror.ErrNotYourTurn)
		require.Equal(t, game, next)
	})

	t.Run("Error after the game is won", func(t *testing.T) {
		// Given: X won with the first column
		game := play(t, entity.NewGameState("123"), 0, 1, 4, 5, 8, 9, 12)

		// When: O tries to keep playing
		next, err := MakeTurn(game, 2, game.Turn)

		// Then: ErrGameAlreadyOver and nothing changes
		require.ErrorIs(t, err, apperror.ErrGameAlreadyOver)
		require.Equal(t, game, next)
	})

	t.Run("Error after a draw", func(t *testing.T) {
		game := play(t, entity.NewGameState("123"), drawSequence...)

		next, err := MakeTurn(game, 0, entity.PlayerX)

		require.ErrorIs(t, err, apperror.ErrGameAlreadyOver)
		require.Equal(t, game, next)
	})
}

func TestMakeTurn_Scenarios(t *testing.T) {
	t.Run("X wins on the first column", func(t *testing.T) {
		// Given: X at 0,4,8 and O at 1,5,9
		game := play(t, entity.NewGameState("g"), 0, 1, 4, 5, 8, 9)
		require.False(t, game.IsOver())

		// When: X plays 12
		game = play(t, game, 12)

		// Then: X wins on [0,4,8,12] and the turn stays with X
		line, ok := entity.DetectWin(game.Board)
		require.True(t, ok)
		assert.Equal(t, entity.WinLine{0, 4, 8, 12}, line)
		assert.Equal(t, entity.PlayerX, game.Winner)
		assert.False(t, game.Draw)
		assert.Equal(t, entity.PlayerX, game.Turn)
		assert.Equal(t, 7, game.Seq)
	})

	t.Run("Full board without a line is a draw", func(t *testing.T) {
		game := play(t, entity.NewGameState("g"), drawSequence...)

		assert.True(t, game.Draw)
		assert.Equal(t, entity.Empty, game.Winner)
		assert.True(t, game.Board.IsFull())
		assert.Equal(t, entity.PlayerO, game.Turn)
		assert.Equal(t, 16, game.Seq)
	})

	t.Run("Turn alternates strictly until the game ends", func(t *testing.T) {
		game := entity.NewGameState("g")
		expected := entity.PlayerX

		for i, pos := range drawSequence {
			require.Equal(t, expected, game.Turn, "before move %d", i)
			game = play(t, game, pos)
			if !game.IsOver() {
				expected = expected.Opponent()
			}
		}

		assert.Equal(t, expected, game.Turn)
	})

	t.Run("Winner and draw are never both set", func(t *testing.T) {
		for _, seq := range [][]int{drawSequence, {0, 1, 4, 5, 8, 9, 12}, {0, 4, 5, 8, 10, 9, 15}} {
			game := play(t, entity.NewGameState("g"), seq...)
			assert.False(t, game.Winner != entity.Empty && game.Draw)
		}
	})
}

func TestValidateMove(t *testing.T) {
	game := entity.NewGameState("v")

	assert.NoError(t, ValidateMove(game, 5, entity.PlayerX))
	assert.ErrorIs(t, ValidateMove(game, 16, entity.PlayerX), apperror.ErrInvalidPosition)
	assert.ErrorIs(t, ValidateMove(game, 5, entity.PlayerO), apperror.ErrNotYourTurn)
	assert.ErrorIs(t, ValidateMove(entity.GameState{Draw: true}, 5, entity.PlayerX), apperror.ErrGameAlreadyOver)
}

func TestScheduleTurn(t *testing.T) {
	t.Run("Game continues", func(t *testing.T) {
		state := entity.GameState{Board: entity.Board{entity.PlayerO}, Turn: entity.PlayerO}

		next := ScheduleTurn(state, entity.PlayerO)

		assert.Equal(t, entity.PlayerX, next.Turn)
		assert.False(t, next.IsOver())
	})

	t.Run("Win on the anti-diagonal", func(t *testing.T) {
		var board entity.Board
		for _, idx := range []int{3, 6, 9, 12} {
			board[idx] = entity.PlayerO
		}

		next := ScheduleTurn(entity.GameState{Board: board, Turn: entity.PlayerO}, entity.PlayerO)

		assert.Equal(t, entity.PlayerO, next.Winner)
		assert.Equal(t, entity.PlayerO, next.Turn)
	})
}
