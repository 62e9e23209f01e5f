package game

// CountStone tallies the stones of each side.
func CountStone(b Board) (black, white int) {
	for _, row := range b {
		for _, s := range row {
			switch s {
			case Black:
				black++
			case White:
				white++
			}
		}
	}
	return black, white
}

// Score is the number of stones stone has on the board.
func Score(b Board, stone Stone) int {
	black, white := CountStone(b)
	if stone == Black {
		return black
	}
	return white
}

// EvaluateState is the stone differential from stone's perspective.
// It is antisymmetric: EvaluateState(b, Black) == -EvaluateState(b, White).
func EvaluateState(b Board, stone Stone) int {
	black, white := CountStone(b)
	if stone == Black {
		return black - white
	}
	return white - black
}
