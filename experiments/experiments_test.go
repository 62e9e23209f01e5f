package experiments

import (
	"os"
	"path/filepath"
	"testing"

	"othello/agent"
	"othello/config"

	"github.com/stretchr/testify/require"
)

func tournament(t *testing.T) config.Tournament {
	setup, err := config.Parse([]byte(`
name: smoke
games: 4
workers: 2
alternate: true
agents:
  - {id: 1, kind: heuristic}
  - {id: 2, kind: random, seed: 9}
  - {id: 3, kind: search, depth: 1}
matchups:
  - {black: 1, white: 2}
  - {black: 3, white: 1}
`))
	require.NoError(t, err)
	setup.Out = t.TempDir()
	return setup
}

func TestRun(t *testing.T) {
	t.Run("plays every game of every matchup", func(t *testing.T) {
		report, err := Run(tournament(t))
		require.NoError(t, err)

		require.Len(t, report.Games, 8)
		for i, g := range report.Games {
			require.Equal(t, i+1, g.ID, "Games are reported in schedule order")
			require.LessOrEqual(t, g.BlackDisc+g.WhiteDisc, 36)
		}
		require.False(t, report.EndTime.Before(report.StartTime))
	})

	t.Run("alternates colours within a matchup", func(t *testing.T) {
		report, err := Run(tournament(t))
		require.NoError(t, err)

		require.Equal(t, 1, report.Games[0].Black)
		require.Equal(t, 2, report.Games[1].Black)
		require.Equal(t, 1, report.Games[2].Black)
		require.Equal(t, 3, report.Games[4].Black)
		require.Equal(t, 1, report.Games[5].Black)
	})

	t.Run("move records match the games", func(t *testing.T) {
		report, err := Run(tournament(t))
		require.NoError(t, err)

		turns := 0
		for _, g := range report.Games {
			turns += g.Turns
		}
		require.Len(t, report.Moves, turns)
	})

	t.Run("summaries account for every seat", func(t *testing.T) {
		report, err := Run(tournament(t))
		require.NoError(t, err)

		require.Len(t, report.Summaries, 3)
		seats := 0
		for _, s := range report.Summaries {
			require.Equal(t, s.Games, s.Wins+s.Losses+s.Draws)
			seats += s.Games
		}
		require.Equal(t, 2*len(report.Games), seats)
	})

	t.Run("rejects an invalid setup", func(t *testing.T) {
		_, err := Run(config.Tournament{Agents: []agent.Config{{ID: 1}}})
		require.ErrorIs(t, err, config.ErrInvalidConfig)
	})

	t.Run("setup without workers plays nothing and fails", func(t *testing.T) {
		report, err := Run(config.Tournament{
			Games:   3,
			Workers: 0,
			Agents: []agent.Config{
				{ID: 1, Kind: agent.KindHeuristic},
				{ID: 2, Kind: agent.KindRandom, Seed: 1},
			},
			Matchups: []config.Matchup{{Black: 1, White: 2}},
		})
		require.ErrorIs(t, err, config.ErrInvalidConfig)
		require.Empty(t, report.Games)
	})

	t.Run("setup built in code runs once games and workers are set", func(t *testing.T) {
		report, err := Run(config.Tournament{
			Name:    "direct",
			Games:   2,
			Workers: 1,
			Agents: []agent.Config{
				{ID: 1, Kind: agent.KindHeuristic},
				{ID: 2, Kind: agent.KindRandom, Seed: 1},
			},
			Matchups: []config.Matchup{{Black: 1, White: 2}},
		})
		require.NoError(t, err)
		require.Len(t, report.Games, 2)
		for i, g := range report.Games {
			require.Equal(t, i+1, g.ID)
			require.Equal(t, 1, g.Black)
			require.Equal(t, 2, g.White)
			require.Positive(t, g.Turns)
		}
	})
}

func TestSave(t *testing.T) {
	report, err := Run(tournament(t))
	require.NoError(t, err)

	dir, err := Save(report)
	require.NoError(t, err)

	for _, name := range []string{"setup.json", "agent_configs.csv", "game_records.csv", "move_records.csv", "summary.csv"} {
		info, err := os.Stat(filepath.Join(dir, name))
		require.NoError(t, err, name)
		require.Positive(t, info.Size(), name)
	}
}
