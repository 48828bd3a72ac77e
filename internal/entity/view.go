package entity

// ViewModel is what the presentation layer renders. WinningLine is derived from Board and is
// recomputed for every new state.
type ViewModel struct {
	GameState

	WinningLine *WinLine `json:"winning_line"`
}

func NewViewModel(state GameState) ViewModel {
	view := ViewModel{GameState: state}
	if line, ok := DetectWin(state.Board); ok {
		view.WinningLine = &line
	}

	return view
}

// EmptyViewModel is the client's view before the first refresh.
func EmptyViewModel() ViewModel {
	return NewViewModel(NewGameState(""))
}
