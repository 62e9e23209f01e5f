package agent

import (
	"othello/game"

	"golang.org/x/exp/rand"
)

type random struct {
	rng *rand.Rand
}

// NewRandom returns an agent that plays a uniformly random legal move.
func NewRandom(seed uint64) Agent {
	return &random{rng: rand.New(rand.NewSource(seed))}
}

func (r *random) Face() string {
	return "🎲"
}

func (r *random) Place(b game.Board, stone game.Stone) game.Move {
	moves := game.LegalMoves(b, stone)
	if len(moves) == 0 {
		return game.NoMove
	}
	return moves[r.rng.Intn(len(moves))]
}
