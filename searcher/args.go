package searcher

import "othello/meta"

type Option func(ab *AlphaBeta)

func WithDepth(depth int) Option {
	return func(ab *AlphaBeta) {
		if depth > 0 {
			ab.depth = depth
		}
	}
}

// WithoutPruning searches the full tree. Only useful to measure what
// pruning saves, the chosen move is the same.
func WithoutPruning() Option {
	return func(ab *AlphaBeta) {
		ab.prune = false
	}
}

func WithMetrics() Option {
	return func(ab *AlphaBeta) {
		ab.metrics = NewMetricsCollector()
	}
}

func defaults() *AlphaBeta {
	return &AlphaBeta{
		depth:   meta.SEARCH_DEPTH,
		prune:   true,
		metrics: NewNoMetricsCollector(),
	}
}
