package game

// State is the position a game is played on.
type State struct {
	Board Board
}

// NewState returns the standard opening.
func NewState() State {
	return State{Board: NewBoard()}
}

// Over reports whether neither side can place.
func (s State) Over() bool {
	return !CanPlace(s.Board, Black) && !CanPlace(s.Board, White)
}

// Winner is the side with more stones, Empty on a draw.
func (s State) Winner() Stone {
	black, white := CountStone(s.Board)
	switch {
	case black > white:
		return Black
	case white > black:
		return White
	default:
		return Empty
	}
}
