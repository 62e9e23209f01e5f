package engine

import (
	"time"

	"othello/agent"
	"othello/game"

	"github.com/rs/zerolog/log"
)

type Option func(e *Engine)

// WithBoard starts the game from a copy of b instead of the standard opening.
func WithBoard(b game.Board) Option {
	return func(e *Engine) {
		if b != nil {
			e.State.Board = b.Copy()
		}
	}
}

// WithRecorder hands rec the intermediate boards of every move, e.g. for animation.
func WithRecorder(rec game.Recorder) Option {
	return func(e *Engine) {
		e.recorder = rec
	}
}

type Engine struct {
	State    game.State
	Agents   map[game.Stone]agent.Agent
	recorder game.Recorder
}

// LocalEngine pairs two agents on one board. A nil agent defaults to the
// heuristic agent.
func LocalEngine(black, white agent.Agent, options ...Option) *Engine {
	if black == nil {
		black = agent.NewHeuristic()
	}
	if white == nil {
		white = agent.NewHeuristic()
	}

	eng := &Engine{
		State: game.NewState(),
		Agents: map[game.Stone]agent.Agent{
			game.Black: black,
			game.White: white,
		},
	}
	for _, option := range options {
		option(eng)
	}
	return eng
}

// Run plays rounds of black then white until a round passes with no move
// or neither side can place. A side that cannot place skips its turn.
// An illegal move ends the game at once: the result names the other side
// as winner and the error wraps ErrIllegalMove.
func (e *Engine) Run() (Result, error) {
	result := Result{}
	black, white := e.Agents[game.Black], e.Agents[game.White]

	log.Info().Msgf("%s plays black, %s plays white", black.Face(), white.Face())

	moved := true
	for moved && !e.State.Over() {
		moved = false
		for _, stone := range []game.Stone{game.Black, game.White} {
			player := e.Agents[stone]

			if !game.CanPlace(e.State.Board, stone) {
				log.Info().Msgf("%s cannot place anywhere, skipping", player.Face())
				continue
			}

			step, err := e.turn(player, stone, len(result.Steps)+1)
			if stone == game.Black {
				result.BlackTime += step.Think
			} else {
				result.WhiteTime += step.Think
			}
			if err != nil {
				log.Warn().Err(err).Msgf("%s forfeits", player.Face())
				return e.finish(result, stone.Opponent(), true), err
			}
			result.Steps = append(result.Steps, step)
			moved = true
		}
	}

	return e.finish(result, e.State.Winner(), false), nil
}

func (e *Engine) turn(player agent.Agent, stone game.Stone, n int) (Step, error) {
	board := e.State.Board

	start := time.Now()
	move := player.Place(board.Copy(), stone)
	step := Step{Step: n, Stone: stone, Move: move, Think: time.Since(start)}

	if !game.CanPlaceXY(board, stone, move.X, move.Y) {
		return step, &ForfeitError{Stone: stone, Face: player.Face(), Move: move}
	}

	if measured, ok := player.(agent.Measured); ok {
		step.Search = measured.LastMetrics()
	}
	step.Flips = len(game.Flips(board, stone, move.X, move.Y))
	if e.recorder != nil {
		game.MoveStoneRecorded(board, stone, move.X, move.Y, e.recorder)
	} else {
		game.MoveStone(board, stone, move.X, move.Y)
	}

	black, white := game.CountStone(board)
	log.Info().
		Int("step", n).
		Int("black", black).
		Int("white", white).
		Int("flips", step.Flips).
		Dur("think", step.Think).
		Msgf("%s placed at %v", player.Face(), move)
	return step, nil
}

func (e *Engine) finish(result Result, winner game.Stone, forfeit bool) Result {
	result.Black, result.White = game.CountStone(e.State.Board)
	result.Winner = winner
	result.Forfeit = forfeit
	result.Turns = len(result.Steps)

	event := log.Info().
		Int("black", result.Black).
		Int("white", result.White).
		Dur("blackTime", result.BlackTime).
		Dur("whiteTime", result.WhiteTime)
	switch winner {
	case game.Empty:
		event.Msg("game over: draw")
	default:
		event.Msgf("game over: %s %s wins", winner, e.Agents[winner].Face())
	}
	return result
}
