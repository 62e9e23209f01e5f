package searcher

import (
	"othello/game"
)

// AlphaBeta is a depth-bounded negamax search over the stone differential.
// A side without a legal move is treated as a leaf; passes are not searched.
type AlphaBeta struct {
	depth   int
	prune   bool
	metrics MetricsCollector
}

func NewAlphaBeta(options ...Option) *AlphaBeta {
	ab := defaults()
	for _, option := range options {
		option(ab)
	}
	return ab
}

func (ab *AlphaBeta) Depth() int {
	return ab.depth
}

// Action picks the move for stone with the highest negamax score, keeping
// the first one found on ties. It reports false when stone cannot move.
// The caller's board is never modified.
func (ab *AlphaBeta) Action(b game.Board, stone game.Stone) (game.Move, SearchMetrics, bool) {
	ab.metrics.Start(ab.depth)

	moves := game.LegalMoves(b, stone)
	if len(moves) == 0 {
		return game.NoMove, ab.metrics.Complete(), false
	}

	best := moves[0]
	alpha := -Inf
	for _, move := range moves {
		child := b.Copy()
		game.MoveStone(child, stone, move.X, move.Y)

		var score int
		if ab.prune {
			score = -ab.Score(child, stone.Opponent(), -Inf, -alpha, ab.depth-1)
		} else {
			score = -ab.Minimax(child, stone.Opponent(), ab.depth-1)
		}

		if score > alpha {
			alpha = score
			best = move
		}
	}
	return best, ab.metrics.Complete(), true
}

// Score is the negamax value of b for stone within the (alpha, beta) window.
// A cutoff returns alpha as soon as it reaches beta.
func (ab *AlphaBeta) Score(b game.Board, stone game.Stone, alpha, beta, depth int) int {
	ab.metrics.AddNode()

	moves := game.LegalMoves(b, stone)
	if depth <= 0 || len(moves) == 0 {
		return game.EvaluateState(b, stone)
	}

	for _, move := range moves {
		child := b.Copy()
		game.MoveStone(child, stone, move.X, move.Y)
		score := -ab.Score(child, stone.Opponent(), -beta, -alpha, depth-1)
		if score > alpha {
			alpha = score
		}
		if alpha >= beta {
			ab.metrics.AddCutoff()
			return alpha
		}
	}
	return alpha
}

// Minimax is Score without a window: every branch is searched.
func (ab *AlphaBeta) Minimax(b game.Board, stone game.Stone, depth int) int {
	ab.metrics.AddNode()

	moves := game.LegalMoves(b, stone)
	if depth <= 0 || len(moves) == 0 {
		return game.EvaluateState(b, stone)
	}

	best := -Inf
	for _, move := range moves {
		child := b.Copy()
		game.MoveStone(child, stone, move.X, move.Y)
		if score := -ab.Minimax(child, stone.Opponent(), depth-1); score > best {
			best = score
		}
	}
	return best
}
