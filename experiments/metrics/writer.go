package metrics

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"othello/agent"
)

type Writer struct {
	baseDir string
}

// NewWriter creates <root>/<name>/<timestamp> for one experiment run.
func NewWriter(root, name string) (*Writer, error) {
	timestamp := time.Now().UTC().Format("20060102T150405Z")
	baseDir := filepath.Join(root, name, timestamp)
	if err := os.MkdirAll(baseDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create directory: %w", err)
	}

	return &Writer{
		baseDir: baseDir,
	}, nil
}

func (w *Writer) Dir() string {
	return w.baseDir
}

func (w *Writer) WriteSetup(setup any) error {
	f, err := os.Create(filepath.Join(w.baseDir, "setup.json"))
	if err != nil {
		return fmt.Errorf("failed to create setup file: %w", err)
	}
	defer f.Close()

	encoder := json.NewEncoder(f)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(setup); err != nil {
		return fmt.Errorf("failed to write setup: %w", err)
	}
	return nil
}

func (w *Writer) WriteAgentConfigs(configs []agent.Config) error {
	header := []string{"id", "kind", "depth", "corner_bonus", "seed"}
	rows := make([][]string, 0, len(configs))
	for _, config := range configs {
		bonus := ""
		if config.CornerBonus != nil {
			bonus = strconv.Itoa(*config.CornerBonus)
		}
		rows = append(rows, []string{
			strconv.Itoa(config.ID),
			config.Kind,
			strconv.Itoa(config.Depth),
			bonus,
			strconv.FormatUint(config.Seed, 10),
		})
	}
	return w.writeCSV("agent_configs.csv", header, rows)
}

func (w *Writer) WriteGameRecords(records []GameRecord) error {
	header := []string{"id", "black", "white", "winner", "forfeit", "black_discs", "white_discs", "turns", "black_time", "white_time", "start_time", "end_time"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.ID),
			strconv.Itoa(record.Black),
			strconv.Itoa(record.White),
			record.Winner.String(),
			strconv.FormatBool(record.Forfeit),
			strconv.Itoa(record.BlackDisc),
			strconv.Itoa(record.WhiteDisc),
			strconv.Itoa(record.Turns),
			record.BlackTime.String(),
			record.WhiteTime.String(),
			record.StartTime.Format(time.RFC3339),
			record.EndTime.Format(time.RFC3339),
		})
	}
	return w.writeCSV("game_records.csv", header, rows)
}

func (w *Writer) WriteMoveRecords(records []MoveRecord) error {
	header := []string{"game", "step", "stone", "x", "y", "flips", "think", "depth", "nodes", "cutoffs"}
	rows := make([][]string, 0, len(records))
	for _, record := range records {
		rows = append(rows, []string{
			strconv.Itoa(record.Game),
			strconv.Itoa(record.Step.Step),
			record.Stone.String(),
			strconv.Itoa(record.Move.X),
			strconv.Itoa(record.Move.Y),
			strconv.Itoa(record.Flips),
			record.Think.String(),
			strconv.Itoa(record.Search.Depth),
			strconv.FormatInt(record.Search.Nodes, 10),
			strconv.FormatInt(record.Search.Cutoffs, 10),
		})
	}
	return w.writeCSV("move_records.csv", header, rows)
}

func (w *Writer) WriteSummaries(summaries []AgentSummary) error {
	header := []string{"agent", "games", "wins", "losses", "draws", "forfeits", "win_rate", "mean_margin", "mean_think", "stddev_think"}
	rows := make([][]string, 0, len(summaries))
	for _, s := range summaries {
		rows = append(rows, []string{
			strconv.Itoa(s.Agent),
			strconv.Itoa(s.Games),
			strconv.Itoa(s.Wins),
			strconv.Itoa(s.Losses),
			strconv.Itoa(s.Draws),
			strconv.Itoa(s.Forfeits),
			strconv.FormatFloat(s.WinRate, 'f', 3, 64),
			strconv.FormatFloat(s.MeanMargin, 'f', 2, 64),
			s.MeanThink.String(),
			s.StdDevThink.String(),
		})
	}
	return w.writeCSV("summary.csv", header, rows)
}

func (w *Writer) writeCSV(name string, header []string, rows [][]string) error {
	f, err := os.Create(filepath.Join(w.baseDir, name))
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", name, err)
	}
	defer f.Close()

	writer := csv.NewWriter(f)
	if err := writer.Write(header); err != nil {
		return fmt.Errorf("failed to write %s header: %w", name, err)
	}
	if err := writer.WriteAll(rows); err != nil {
		return fmt.Errorf("failed to write %s rows: %w", name, err)
	}
	return nil
}
