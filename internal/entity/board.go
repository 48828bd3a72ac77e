package entity

import "fmt"

const (
	BoardSide = 4
	BoardSize = BoardSide * BoardSide
)

type Mark string

const (
	Empty   Mark = ""
	PlayerX Mark = "X"
	PlayerO Mark = "O"
)

// Opponent returns the other player's mark. Empty has no opponent.
func (that Mark) Opponent() Mark {
	switch that {
	case PlayerX:
		return PlayerO
	case PlayerO:
		return PlayerX
	default:
		return Empty
	}
}

func (that Mark) IsPlayer() bool {
	return that == PlayerX || that == PlayerO
}

// Board is a 4x4 grid stored row by row: index i is row i/4, column i%4.
type Board [BoardSize]Mark

// WinLine holds the four board indexes of a winning pattern.
type WinLine [BoardSide]int

// WinLines is ordered rows, then columns, then diagonals. DetectWin relies on this order.
var WinLines = [...]WinLine{
	{0, 1, 2, 3},
	{4, 5, 6, 7},
	{8, 9, 10, 11},
	{12, 13, 14, 15},
	{0, 4, 8, 12},
	{1, 5, 9, 13},
	{2, 6, 10, 14},
	{3, 7, 11, 15},
	{0, 5, 10, 15},
	{3, 6, 9, 12},
}

func IsValidPosition(position int) bool {
	return position >= 0 && position < BoardSize
}

func (that Board) Cell(row, col int) Mark {
	return that[row*BoardSide+col]
}

func (that Board) IsFull() bool {
	for _, cell := range that {
		if cell == Empty {
			return false
		}
	}

	return true
}

func (that Board) EmptyCells() []int {
	cells := make([]int, 0, BoardSize)
	for i, cell := range that {
		if cell == Empty {
			cells = append(cells, i)
		}
	}

	return cells
}

// Filled returns the number of non-empty cells.
func (that Board) Filled() int {
	return BoardSize - len(that.EmptyCells())
}

// Matches reports whether all four cells of the line hold the same player mark.
func (that Board) Matches(line WinLine) bool {
	first := that[line[0]]
	if first == Empty {
		return false
	}

	for _, idx := range line[1:] {
		if that[idx] != first {
			return false
		}
	}

	return true
}

// DetectWin returns the first completed line in WinLines order.
func DetectWin(board Board) (WinLine, bool) {
	for _, line := range WinLines {
		if board.Matches(line) {
			return line, true
		}
	}

	return WinLine{}, false
}

func (that Board) String() string {
	out := ""
	for row := 0; row < BoardSide; row++ {
		for col := 0; col < BoardSide; col++ {
			cell := that.Cell(row, col)
			if cell == Empty {
				cell = "."
			}
			out += fmt.Sprintf("%-2s", cell)
		}
		out += "\n"
	}

	return out
}
