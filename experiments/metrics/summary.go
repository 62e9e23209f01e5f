package metrics

import (
	"sort"
	"time"

	"othello/game"

	"gonum.org/v1/gonum/floats"
	"gonum.org/v1/gonum/stat"
)

type AgentSummary struct {
	Agent       int // agent.Config.ID
	Games       int
	Wins        int
	Losses      int
	Draws       int
	Forfeits    int // games lost by an illegal move
	WinRate     float64
	MeanMargin  float64 // own minus opponent stones at the end
	MeanThink   time.Duration
	StdDevThink time.Duration
}

// Summarize aggregates results per agent, ordered by agent ID.
func Summarize(games []GameRecord, moves []MoveRecord) []AgentSummary {
	byAgent := map[int]*AgentSummary{}
	margins := map[int][]float64{}
	thinks := map[int][]float64{}
	byGame := make(map[int]GameRecord, len(games))

	summary := func(id int) *AgentSummary {
		s, ok := byAgent[id]
		if !ok {
			s = &AgentSummary{Agent: id}
			byAgent[id] = s
		}
		return s
	}

	for _, g := range games {
		byGame[g.ID] = g
		for _, side := range []game.Stone{game.Black, game.White} {
			id, own, other := g.Black, g.BlackDisc, g.WhiteDisc
			if side == game.White {
				id, own, other = g.White, g.WhiteDisc, g.BlackDisc
			}
			s := summary(id)
			s.Games++
			switch g.Winner {
			case game.Empty:
				s.Draws++
			case side:
				s.Wins++
			default:
				s.Losses++
				if g.Forfeit {
					s.Forfeits++
				}
			}
			margins[id] = append(margins[id], float64(own-other))
		}
	}

	for _, m := range moves {
		g, ok := byGame[m.Game]
		if !ok {
			continue
		}
		id := g.Black
		if m.Stone == game.White {
			id = g.White
		}
		thinks[id] = append(thinks[id], float64(m.Think))
	}

	summaries := make([]AgentSummary, 0, len(byAgent))
	for id, s := range byAgent {
		s.WinRate = float64(s.Wins) / float64(s.Games)
		s.MeanMargin = mean(margins[id])
		if t := thinks[id]; len(t) > 0 {
			m, std := meanStdDev(t)
			s.MeanThink = time.Duration(m)
			s.StdDevThink = time.Duration(std)
		}
		summaries = append(summaries, *s)
	}
	sort.Slice(summaries, func(i, j int) bool {
		return summaries[i].Agent < summaries[j].Agent
	})
	return summaries
}

func mean(xs []float64) float64 {
	if len(xs) == 0 {
		return 0
	}
	return floats.Sum(xs) / float64(len(xs))
}

// meanStdDev treats a single sample as having no spread.
func meanStdDev(xs []float64) (float64, float64) {
	if len(xs) < 2 {
		return mean(xs), 0
	}
	return stat.MeanStdDev(xs, nil)
}
