package engine

import (
	"errors"
	"fmt"
	"time"

	"othello/game"
	"othello/searcher"
)

var ErrIllegalMove = errors.New("illegal move")

// ForfeitError reports the agent that lost by attempting an illegal move.
type ForfeitError struct {
	Stone game.Stone
	Face  string
	Move  game.Move
}

func (e *ForfeitError) Error() string {
	return fmt.Sprintf("%s %s attempted %v: %v", e.Stone, e.Face, e.Move, ErrIllegalMove)
}

func (e *ForfeitError) Unwrap() error {
	return ErrIllegalMove
}

// Step is one move played during a game.
type Step struct {
	Step   int
	Stone  game.Stone
	Move   game.Move
	Flips  int
	Think  time.Duration
	Search searcher.SearchMetrics
}

type Result struct {
	Black     int
	White     int
	Winner    game.Stone // game.Empty on a draw
	Forfeit   bool
	Turns     int
	BlackTime time.Duration
	WhiteTime time.Duration
	Steps     []Step
}

// Margin is the winner's lead in stones.
func (r Result) Margin() int {
	if r.Black > r.White {
		return r.Black - r.White
	}
	return r.White - r.Black
}
