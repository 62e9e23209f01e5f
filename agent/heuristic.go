package agent

import (
	"math"

	"othello/game"
	"othello/meta"
)

type HeuristicOption func(h *heuristic)

func WithCornerBonus(bonus int) HeuristicOption {
	return func(h *heuristic) {
		h.cornerBonus = bonus
	}
}

// heuristic looks one move ahead and discounts the opponent's best reply.
type heuristic struct {
	cornerBonus int
}

func NewHeuristic(options ...HeuristicOption) Agent {
	h := &heuristic{cornerBonus: meta.CORNER_BONUS}
	for _, option := range options {
		option(h)
	}
	return h
}

func (h *heuristic) Face() string {
	return "🐧"
}

// Place scores every legal move as own stones after the move minus the
// opponent's stones after their best reply, plus the corner bonus. The first
// move with the highest score wins.
func (h *heuristic) Place(b game.Board, stone game.Stone) game.Move {
	best := game.NoMove
	bestScore := math.MinInt

	for _, move := range game.LegalMoves(b, stone) {
		simulated := b.Copy()
		game.MoveStone(simulated, stone, move.X, move.Y)

		score := game.Score(simulated, stone)
		if reply, ok := bestReply(simulated, stone.Opponent()); ok {
			score -= reply
		}
		if move.IsCorner(b.Size()) {
			score += h.cornerBonus
		}

		if score > bestScore {
			bestScore = score
			best = move
		}
	}
	return best
}

// bestReply is the most stones stone can hold after any single move on b.
func bestReply(b game.Board, stone game.Stone) (int, bool) {
	best, found := 0, false
	for _, move := range game.LegalMoves(b, stone) {
		simulated := b.Copy()
		game.MoveStone(simulated, stone, move.X, move.Y)
		if score := game.Score(simulated, stone); !found || score > best {
			best, found = score, true
		}
	}
	return best, found
}
