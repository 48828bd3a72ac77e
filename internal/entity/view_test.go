package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewViewModel(t *testing.T) {
	t.Run("Derives the winning line from the board", func(t *testing.T) {
		// Given: a state where X completed the first column
		state := GameState{
			Board:  boardWith(map[int]Mark{0: PlayerX, 4: PlayerX, 8: PlayerX, 12: PlayerX, 1: PlayerO, 5: PlayerO, 9: PlayerO}),
			Turn:   PlayerX,
			Winner: PlayerX,
		}

		// When: building the view model
		view := NewViewModel(state)

		// Then: the winning line is the column
		require.NotNil(t, view.WinningLine)
		assert.Equal(t, WinLine{0, 4, 8, 12}, *view.WinningLine)
		assert.Equal(t, state, view.GameState)
	})

	t.Run("Fresh board has no winning line", func(t *testing.T) {
		view := NewViewModel(NewGameState("new"))
		assert.Nil(t, view.WinningLine)
	})

	t.Run("Empty view model", func(t *testing.T) {
		view := EmptyViewModel()
		assert.Equal(t, PlayerX, view.Turn)
		assert.Equal(t, Board{}, view.Board)
		assert.Nil(t, view.WinningLine)
	})
}
