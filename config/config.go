package config

import (
	"errors"
	"fmt"
	"os"

	"othello/agent"
	"othello/game"
	"othello/meta"

	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("invalid tournament config")

// Matchup pairs two agents by their config IDs.
type Matchup struct {
	Black int `yaml:"black" json:"black"`
	White int `yaml:"white" json:"white"`
}

// Tournament describes a set of matchups played between configured agents.
type Tournament struct {
	Name      string         `yaml:"name" json:"name"`
	Games     int            `yaml:"games" json:"games"`     // per matchup
	Workers   int            `yaml:"workers" json:"workers"` // games played in parallel
	Alternate bool           `yaml:"alternate" json:"alternate"`
	Board     []string       `yaml:"board,omitempty" json:"board,omitempty"`
	Agents    []agent.Config `yaml:"agents" json:"agents"`
	Matchups  []Matchup      `yaml:"matchups" json:"matchups"`
	Out       string         `yaml:"out" json:"out"`
}

func Load(path string) (Tournament, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Tournament{}, fmt.Errorf("failed to read config: %w", err)
	}
	return Parse(data)
}

func Parse(data []byte) (Tournament, error) {
	var t Tournament
	if err := yaml.Unmarshal(data, &t); err != nil {
		return Tournament{}, fmt.Errorf("failed to parse config: %w", err)
	}
	t.applyDefaults()
	if err := t.Validate(); err != nil {
		return Tournament{}, err
	}
	return t, nil
}

func (t *Tournament) applyDefaults() {
	if t.Name == "" {
		t.Name = "tournament"
	}
	if t.Games <= 0 {
		t.Games = meta.GAMES
	}
	if t.Workers <= 0 {
		t.Workers = meta.WORKERS
	}
	if t.Out == "" {
		t.Out = "experiments"
	}
	for i := range t.Agents {
		if t.Agents[i].Kind == "" {
			t.Agents[i].Kind = agent.KindHeuristic
		}
		if t.Agents[i].Depth <= 0 && (t.Agents[i].Kind == agent.KindSearch || t.Agents[i].Kind == agent.KindMinimax) {
			t.Agents[i].Depth = meta.SEARCH_DEPTH
		}
	}
}

// Validate checks a tournament before it is run. Defaults are not applied
// here, so a zero Games or Workers is rejected.
func (t Tournament) Validate() error {
	if t.Games <= 0 {
		return fmt.Errorf("%w: games must be positive, got %d", ErrInvalidConfig, t.Games)
	}
	if t.Workers <= 0 {
		return fmt.Errorf("%w: workers must be positive, got %d", ErrInvalidConfig, t.Workers)
	}
	if len(t.Agents) == 0 {
		return fmt.Errorf("%w: no agents", ErrInvalidConfig)
	}
	ids := make(map[int]bool, len(t.Agents))
	for _, c := range t.Agents {
		if ids[c.ID] {
			return fmt.Errorf("%w: duplicate agent id %d", ErrInvalidConfig, c.ID)
		}
		ids[c.ID] = true
		if _, err := agent.New(c); err != nil {
			return fmt.Errorf("%w: agent %d: %w", ErrInvalidConfig, c.ID, err)
		}
	}
	if len(t.Matchups) == 0 {
		return fmt.Errorf("%w: no matchups", ErrInvalidConfig)
	}
	for i, m := range t.Matchups {
		if !ids[m.Black] || !ids[m.White] {
			return fmt.Errorf("%w: matchup %d refers to an unknown agent", ErrInvalidConfig, i+1)
		}
	}
	if _, err := t.StartBoard(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// Agent looks up an agent config by ID.
func (t Tournament) Agent(id int) (agent.Config, bool) {
	for _, c := range t.Agents {
		if c.ID == id {
			return c, true
		}
	}
	return agent.Config{}, false
}

// StartBoard is the configured opening, or the standard one.
func (t Tournament) StartBoard() (game.Board, error) {
	if len(t.Board) == 0 {
		return game.NewBoard(), nil
	}
	return game.ParseBoard(t.Board...)
}
