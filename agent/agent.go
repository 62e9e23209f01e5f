package agent

import (
	"othello/game"
	"othello/searcher"
)

type Agent interface {
	// Face is a display label for the agent, e.g. an avatar.
	Face() string
	// Place returns a legal move for stone on b, or game.NoMove when there is none.
	// Implementations must not modify b.
	Place(b game.Board, stone game.Stone) game.Move
}

// Measured is implemented by agents that report statistics about their last decision.
type Measured interface {
	LastMetrics() searcher.SearchMetrics
}
