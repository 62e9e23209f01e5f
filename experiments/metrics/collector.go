package metrics

import (
	"time"

	"othello/agent"
	"othello/engine"
	"othello/game"
)

type GameRecord struct {
	ID        int
	Black     int // agent.Config.ID
	White     int // agent.Config.ID
	Winner    game.Stone
	Forfeit   bool
	BlackDisc int
	WhiteDisc int
	Turns     int
	BlackTime time.Duration
	WhiteTime time.Duration
	StartTime time.Time
	EndTime   time.Time
}

type MoveRecord struct {
	Game int // GameRecord.ID
	engine.Step
}

func NewGameRecord(id int, black, white agent.Config, result engine.Result, start, end time.Time) GameRecord {
	return GameRecord{
		ID:        id,
		Black:     black.ID,
		White:     white.ID,
		Winner:    result.Winner,
		Forfeit:   result.Forfeit,
		BlackDisc: result.Black,
		WhiteDisc: result.White,
		Turns:     result.Turns,
		BlackTime: result.BlackTime,
		WhiteTime: result.WhiteTime,
		StartTime: start,
		EndTime:   end,
	}
}

func NewMoveRecords(id int, result engine.Result) []MoveRecord {
	records := make([]MoveRecord, len(result.Steps))
	for i, step := range result.Steps {
		records[i] = MoveRecord{Game: id, Step: step}
	}
	return records
}

// WinnerID is the agent config ID of the winner, 0 on a draw.
func (r GameRecord) WinnerID() int {
	switch r.Winner {
	case game.Black:
		return r.Black
	case game.White:
		return r.White
	}
	return 0
}
