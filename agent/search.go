package agent

import (
	"othello/game"
	"othello/searcher"
)

type search struct {
	alphaBeta *searcher.AlphaBeta
	last      searcher.SearchMetrics
}

// NewSearch returns an alpha-beta agent. Metrics are always collected and
// available through Measured.
func NewSearch(options ...searcher.Option) Agent {
	options = append(options, searcher.WithMetrics())
	return &search{alphaBeta: searcher.NewAlphaBeta(options...)}
}

func (s *search) Face() string {
	return "🦉"
}

func (s *search) Place(b game.Board, stone game.Stone) game.Move {
	move, metrics, ok := s.alphaBeta.Action(b, stone)
	s.last = metrics
	if !ok {
		return game.NoMove
	}
	return move
}

func (s *search) LastMetrics() searcher.SearchMetrics {
	return s.last
}
