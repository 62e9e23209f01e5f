package experiments

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"othello/agent"
	"othello/config"
	"othello/engine"
	"othello/experiments/metrics"
	"othello/game"

	"github.com/rs/zerolog/log"
)

type Report struct {
	Setup     config.Tournament
	Games     []metrics.GameRecord
	Moves     []metrics.MoveRecord
	Summaries []metrics.AgentSummary
	StartTime time.Time
	EndTime   time.Time
}

type job struct {
	id    int
	black agent.Config
	white agent.Config
}

type outcome struct {
	game  metrics.GameRecord
	moves []metrics.MoveRecord
	err   error
}

// Run plays every matchup of the tournament, setup.Workers games at a time.
// With Alternate set, every second game of a matchup swaps colours.
func Run(setup config.Tournament) (Report, error) {
	if err := setup.Validate(); err != nil {
		return Report{}, err
	}
	board, err := setup.StartBoard()
	if err != nil {
		return Report{}, err
	}

	jobs := schedule(setup)
	report := Report{Setup: setup, StartTime: time.Now()}
	log.Info().Msgf("starting %s with %d games on %d workers...", setup.Name, len(jobs), setup.Workers)

	task := make(chan job, len(jobs))
	for _, j := range jobs {
		task <- j
	}
	close(task)

	outcomes := make([]outcome, len(jobs))
	var wg sync.WaitGroup
	for i := 0; i < setup.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()

			for j := range task {
				outcomes[j.id-1] = play(j, board)
			}
		}()
	}
	wg.Wait()

	for _, o := range outcomes {
		if o.err != nil {
			return Report{}, o.err
		}
		report.Games = append(report.Games, o.game)
		report.Moves = append(report.Moves, o.moves...)
	}
	report.Summaries = metrics.Summarize(report.Games, report.Moves)
	report.EndTime = time.Now()

	log.Info().Msgf("completed %s in %s", setup.Name, report.EndTime.Sub(report.StartTime))
	return report, nil
}

func schedule(setup config.Tournament) []job {
	jobs := []job{}
	for _, m := range setup.Matchups {
		black, _ := setup.Agent(m.Black)
		white, _ := setup.Agent(m.White)
		for i := 0; i < setup.Games; i++ {
			j := job{id: len(jobs) + 1, black: black, white: white}
			if setup.Alternate && i%2 == 1 {
				j.black, j.white = white, black
			}
			// Random agents would otherwise repeat the same game.
			j.black.Seed += uint64(j.id)
			j.white.Seed += uint64(j.id) << 32
			jobs = append(jobs, j)
		}
	}
	return jobs
}

func play(j job, board game.Board) outcome {
	black, err := agent.New(j.black)
	if err != nil {
		return outcome{err: fmt.Errorf("game %d: %w", j.id, err)}
	}
	white, err := agent.New(j.white)
	if err != nil {
		return outcome{err: fmt.Errorf("game %d: %w", j.id, err)}
	}

	start := time.Now()
	result, err := engine.LocalEngine(black, white, engine.WithBoard(board)).Run()
	end := time.Now()
	if err != nil && !errors.Is(err, engine.ErrIllegalMove) {
		return outcome{err: fmt.Errorf("game %d: %w", j.id, err)}
	}

	record := metrics.NewGameRecord(j.id, j.black, j.white, result, start, end)
	log.Info().Msgf("completed game %d: %s vs %s, winner %s (%d-%d)",
		j.id, j.black, j.white, result.Winner, result.Black, result.White)
	return outcome{game: record, moves: metrics.NewMoveRecords(j.id, result)}
}

// Save stores the setup, agent configs, records and summaries under the
// tournament's output directory and returns that directory.
func Save(report Report) (string, error) {
	writer, err := metrics.NewWriter(report.Setup.Out, report.Setup.Name)
	if err != nil {
		return "", fmt.Errorf("failed to create experiment writer: %w", err)
	}

	setup := struct {
		config.Tournament
		StartTime time.Time     `json:"startTime"`
		EndTime   time.Time     `json:"endTime"`
		Duration  time.Duration `json:"duration"`
	}{report.Setup, report.StartTime, report.EndTime, report.EndTime.Sub(report.StartTime)}
	if err := writer.WriteSetup(setup); err != nil {
		return "", err
	}
	log.Info().Msg("stored setup")

	if err := writer.WriteAgentConfigs(report.Setup.Agents); err != nil {
		return "", err
	}
	if err := writer.WriteGameRecords(report.Games); err != nil {
		return "", err
	}
	if err := writer.WriteMoveRecords(report.Moves); err != nil {
		return "", err
	}
	if err := writer.WriteSummaries(report.Summaries); err != nil {
		return "", err
	}
	log.Info().Msgf("stored records in %s", writer.Dir())
	return writer.Dir(), nil
}
