package agent

import (
	"errors"
	"fmt"

	"othello/searcher"
)

var ErrUnknownKind = errors.New("unknown agent kind")

const (
	KindHeuristic = "heuristic"
	KindSearch    = "search"
	KindMinimax   = "minimax"
	KindRandom    = "random"
)

// Config describes an agent in tournament files and service requests.
// Zero values fall back to the package defaults.
type Config struct {
	ID          int    `yaml:"id" json:"id,omitempty"`
	Kind        string `yaml:"kind" json:"kind"`
	Depth       int    `yaml:"depth,omitempty" json:"depth,omitempty"`
	CornerBonus *int   `yaml:"cornerBonus,omitempty" json:"cornerBonus,omitempty"`
	Seed        uint64 `yaml:"seed,omitempty" json:"seed,omitempty"`
}

func (c Config) String() string {
	switch c.Kind {
	case KindSearch, KindMinimax:
		return fmt.Sprintf("%s#%d(depth=%d)", c.Kind, c.ID, c.Depth)
	case KindHeuristic:
		if c.CornerBonus != nil {
			return fmt.Sprintf("%s#%d(cornerBonus=%d)", c.Kind, c.ID, *c.CornerBonus)
		}
	case KindRandom:
		return fmt.Sprintf("%s#%d(seed=%d)", c.Kind, c.ID, c.Seed)
	}
	return fmt.Sprintf("%s#%d", c.Kind, c.ID)
}

// New builds a fresh agent. Agents keep per-game state, so every game
// should get its own.
func New(c Config) (Agent, error) {
	switch c.Kind {
	case KindHeuristic, "penguin", "":
		options := []HeuristicOption{}
		if c.CornerBonus != nil {
			options = append(options, WithCornerBonus(*c.CornerBonus))
		}
		return NewHeuristic(options...), nil
	case KindSearch, "alphabeta":
		return NewSearch(searcher.WithDepth(c.Depth)), nil
	case KindMinimax:
		return NewSearch(searcher.WithDepth(c.Depth), searcher.WithoutPruning()), nil
	case KindRandom:
		return NewRandom(c.Seed), nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownKind, c.Kind)
}
