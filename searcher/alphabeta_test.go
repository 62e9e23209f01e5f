package searcher

import (
	"testing"

	"othello/game"

	"github.com/stretchr/testify/require"
)

// Small positions that can be searched to the end of the game.
var endgames = []game.Board{
	game.MustParseBoard(
		"XOO.",
		"OXO.",
		".OXO",
		"..OX",
	),
	game.MustParseBoard(
		".OX.",
		"XOO.",
		".OX.",
		"....",
	),
	game.MustParseBoard(
		"O..X",
		".XO.",
		".OX.",
		"X..O",
	),
	game.MustParseBoard(
		"...",
		"OXO",
		"X..",
	),
}

func empties(b game.Board) int {
	n := 0
	for _, row := range b {
		for _, s := range row {
			if s == game.Empty {
				n++
			}
		}
	}
	return n
}

func TestAlphaBetaScore(t *testing.T) {
	t.Run("full window score equals unpruned minimax", func(t *testing.T) {
		ab := NewAlphaBeta()
		for i, b := range endgames {
			depth := empties(b) + 1
			for _, stone := range []game.Stone{game.Black, game.White} {
				require.Equal(t, ab.Minimax(b, stone, depth), ab.Score(b, stone, -Inf, Inf, depth),
					"board %d, %s", i, stone)
			}
		}
	})

	t.Run("depth zero evaluates the position", func(t *testing.T) {
		ab := NewAlphaBeta()
		b := game.NewBoard()
		game.MoveStone(b, game.Black, 3, 1)
		require.Equal(t, game.EvaluateState(b, game.White), ab.Score(b, game.White, -Inf, Inf, 0))
	})

	t.Run("side without moves is a leaf", func(t *testing.T) {
		ab := NewAlphaBeta()
		b := game.MustParseBoard(
			"OX..",
			"....",
			"....",
			"....",
		)
		require.False(t, game.CanPlace(b, game.Black))
		require.Equal(t, 0, ab.Score(b, game.Black, -Inf, Inf, 4))
	})

	t.Run("cutoff returns at least beta", func(t *testing.T) {
		ab := NewAlphaBeta()
		b := game.NewBoard()
		full := ab.Score(b, game.Black, -Inf, Inf, 3)
		require.GreaterOrEqual(t, ab.Score(b, game.Black, -Inf, full, 3), full)
	})
}

func TestAlphaBetaAction(t *testing.T) {
	t.Run("same move and value as unpruned search to the end", func(t *testing.T) {
		for i, b := range endgames {
			depth := empties(b) + 1
			pruned := NewAlphaBeta(WithDepth(depth))
			full := NewAlphaBeta(WithDepth(depth), WithoutPruning())

			for _, stone := range []game.Stone{game.Black, game.White} {
				gotMove, _, gotOK := pruned.Action(b, stone)
				wantMove, _, wantOK := full.Action(b, stone)
				require.Equal(t, wantOK, gotOK, "board %d, %s", i, stone)
				if !gotOK {
					continue
				}
				require.Equal(t, wantMove, gotMove, "board %d, %s", i, stone)

				best := -Inf
				var chosen int
				for _, m := range game.LegalMoves(b, stone) {
					child := b.Copy()
					game.MoveStone(child, stone, m.X, m.Y)
					v := -full.Minimax(child, stone.Opponent(), depth-1)
					if v > best {
						best = v
					}
					if m == gotMove {
						chosen = v
					}
				}
				require.Equal(t, best, chosen, "board %d, %s: chosen move must be minimax optimal", i, stone)
			}
		}
	})

	t.Run("same move as unpruned search on a 4x4 opening", func(t *testing.T) {
		b := game.MustParseBoard(
			"....",
			".XO.",
			".OX.",
			"....",
		)
		pruned := NewAlphaBeta(WithDepth(6))
		full := NewAlphaBeta(WithDepth(6), WithoutPruning())
		for _, stone := range []game.Stone{game.Black, game.White} {
			gotMove, _, _ := pruned.Action(b, stone)
			wantMove, _, _ := full.Action(b, stone)
			require.Equal(t, wantMove, gotMove, stone.String())
		}
	})

	t.Run("no legal move", func(t *testing.T) {
		b := game.MustParseBoard(
			"......",
			"......",
			"..XX..",
			"..XX..",
			"......",
			"......",
		)
		move, _, ok := NewAlphaBeta().Action(b, game.White)
		require.False(t, ok)
		require.Equal(t, game.NoMove, move)
	})

	t.Run("does not modify the caller's board", func(t *testing.T) {
		b := game.NewBoard()
		_, _, ok := NewAlphaBeta().Action(b, game.Black)
		require.True(t, ok)
		require.Equal(t, game.NewBoard(), b)
	})

	t.Run("depth one takes the largest capture", func(t *testing.T) {
		b := game.MustParseBoard(
			"......",
			".XOO..",
			"......",
			"......",
			".O....",
			".X....",
		)
		// (4,1) flips two stones, (1,3) flips one.
		move, _, ok := NewAlphaBeta(WithDepth(1)).Action(b, game.Black)
		require.True(t, ok)
		require.Equal(t, game.Move{X: 4, Y: 1}, move)
	})

	t.Run("opening move is legal", func(t *testing.T) {
		b := game.NewBoard()
		move, _, ok := NewAlphaBeta().Action(b, game.Black)
		require.True(t, ok)
		require.True(t, game.CanPlaceXY(b, game.Black, move.X, move.Y))
	})
}

func TestAlphaBetaOptions(t *testing.T) {
	t.Run("defaults to four plies", func(t *testing.T) {
		require.Equal(t, 4, NewAlphaBeta().Depth())
	})

	t.Run("ignores non-positive depth", func(t *testing.T) {
		require.Equal(t, 4, NewAlphaBeta(WithDepth(0)).Depth())
		require.Equal(t, 7, NewAlphaBeta(WithDepth(7)).Depth())
	})
}

func TestAlphaBetaMetrics(t *testing.T) {
	t.Run("pruning visits fewer nodes", func(t *testing.T) {
		b := game.NewBoard()
		_, pruned, _ := NewAlphaBeta(WithMetrics()).Action(b, game.Black)
		_, full, _ := NewAlphaBeta(WithMetrics(), WithoutPruning()).Action(b, game.Black)

		require.Equal(t, 4, pruned.Depth)
		require.Greater(t, pruned.Cutoffs, int64(0), "Symmetric opening moves must cut off")
		require.Less(t, pruned.Nodes, full.Nodes)
		require.Zero(t, full.Cutoffs)
	})

	t.Run("counters restart for every search", func(t *testing.T) {
		ab := NewAlphaBeta(WithMetrics())
		_, first, _ := ab.Action(game.NewBoard(), game.Black)
		_, second, _ := ab.Action(game.NewBoard(), game.Black)
		require.Equal(t, first.Nodes, second.Nodes)
	})

	t.Run("metrics are empty unless enabled", func(t *testing.T) {
		_, m, _ := NewAlphaBeta().Action(game.NewBoard(), game.Black)
		require.Equal(t, SearchMetrics{}, m)
	})
}
