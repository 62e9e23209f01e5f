package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
	"time"

	"othello/agent"
	"othello/config"
	"othello/engine"
	"othello/experiments"
	"othello/game"
	"othello/meta"
	"othello/server"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

const usage = `usage: othello <command> [flags]

commands:
  play        play one game between two agents
  tournament  run a tournament described by a YAML file
  serve       serve moves over HTTP`

func main() {
	if len(os.Args) < 2 {
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}

	var err error
	switch os.Args[1] {
	case "play":
		err = runPlay(os.Args[2:])
	case "tournament":
		err = runTournament(os.Args[2:])
	case "serve":
		err = runServe(os.Args[2:])
	default:
		fmt.Fprintln(os.Stderr, usage)
		os.Exit(2)
	}
	if err != nil {
		log.Fatal().Err(err).Msg(os.Args[1] + " failed")
	}
}

func setupLogging(verbose bool) {
	log.Logger = log.Output(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.TimeOnly})
	level := zerolog.WarnLevel
	if verbose {
		level = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(level)
}

func runPlay(args []string) error {
	fs := flag.NewFlagSet("play", flag.ExitOnError)
	black := fs.String("black", agent.KindSearch, "Black agent kind: heuristic, search, minimax or random")
	white := fs.String("white", agent.KindHeuristic, "White agent kind")
	depth := fs.Int("depth", meta.SEARCH_DEPTH, "Search depth in plies")
	bonus := fs.Int("corner-bonus", meta.CORNER_BONUS, "Heuristic corner bonus")
	seed := fs.Uint64("seed", uint64(time.Now().UnixNano()), "Seed of random agents")
	boardFile := fs.String("board", "", "File with the starting position, one row per line")
	blackServer := fs.String("black-server", "", "Ask the move service at this URL for black's moves")
	whiteServer := fs.String("white-server", "", "Ask the move service at this URL for white's moves")
	verbose := fs.Bool("v", false, "Log every move")
	fs.Parse(args)
	setupLogging(*verbose)

	players := map[game.Stone]agent.Agent{}
	for stone, side := range map[game.Stone]struct{ kind, url string }{
		game.Black: {*black, *blackServer},
		game.White: {*white, *whiteServer},
	} {
		c := agent.Config{Kind: side.kind, Depth: *depth, CornerBonus: bonus, Seed: *seed + uint64(stone)}
		if side.url != "" {
			players[stone] = server.NewClient(side.url, c)
			continue
		}
		a, err := agent.New(c)
		if err != nil {
			return err
		}
		players[stone] = a
	}

	options := []engine.Option{}
	if *boardFile != "" {
		data, err := os.ReadFile(*boardFile)
		if err != nil {
			return err
		}
		b, err := game.ParseBoard(strings.Fields(string(data))...)
		if err != nil {
			return err
		}
		options = append(options, engine.WithBoard(b))
	}

	e := engine.LocalEngine(players[game.Black], players[game.White], options...)
	result, err := e.Run()

	fmt.Println(e.State.Board)
	fmt.Printf("black %d, white %d after %d moves\n", result.Black, result.White, result.Turns)
	switch result.Winner {
	case game.Empty:
		fmt.Println("draw")
	default:
		fmt.Printf("%s %s wins\n", result.Winner, e.Agents[result.Winner].Face())
	}
	return err
}

func runTournament(args []string) error {
	fs := flag.NewFlagSet("tournament", flag.ExitOnError)
	path := fs.String("config", "tournament.yaml", "Tournament YAML file")
	out := fs.String("out", "", "Output directory, overrides the file's out")
	verbose := fs.Bool("v", false, "Log every move")
	fs.Parse(args)
	setupLogging(*verbose)

	setup, err := config.Load(*path)
	if err != nil {
		return err
	}
	if *out != "" {
		setup.Out = *out
	}

	report, err := experiments.Run(setup)
	if err != nil {
		return err
	}
	dir, err := experiments.Save(report)
	if err != nil {
		return err
	}

	for _, s := range report.Summaries {
		agentConfig, _ := setup.Agent(s.Agent)
		fmt.Printf("%-32s games %3d  wins %3d  losses %3d  draws %3d  win rate %.2f  margin %+.1f  think %s\n",
			agentConfig, s.Games, s.Wins, s.Losses, s.Draws, s.WinRate, s.MeanMargin, s.MeanThink)
	}
	fmt.Printf("records stored in %s\n", dir)
	return nil
}

func runServe(args []string) error {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	addr := fs.String("addr", ":8080", "Listen address")
	fs.Parse(args)
	setupLogging(true)

	return server.Start(*addr)
}
