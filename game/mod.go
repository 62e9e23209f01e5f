package game

import "fmt"

type Stone int

const (
	Empty Stone = iota
	Black
	White
)

// Opponent returns the other player's stone. Empty has no opponent.
func (s Stone) Opponent() Stone {
	switch s {
	case Black:
		return White
	case White:
		return Black
	default:
		return Empty
	}
}

func (s Stone) String() string {
	switch s {
	case Black:
		return "black"
	case White:
		return "white"
	default:
		return "empty"
	}
}

// ParseStone accepts the names produced by Stone.String.
func ParseStone(name string) (Stone, error) {
	switch name {
	case "black", "Black", "B", "X":
		return Black, nil
	case "white", "White", "W", "O":
		return White, nil
	}
	return Empty, fmt.Errorf("unknown stone %q", name)
}

// Move is a cell address: column X, row Y, both 0-indexed.
type Move struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// NoMove is returned by agents that have no legal placement.
var NoMove = Move{X: -1, Y: -1}

func (m Move) IsNone() bool {
	return m == NoMove
}

func (m Move) IsCorner(size int) bool {
	last := size - 1
	return (m.X == 0 || m.X == last) && (m.Y == 0 || m.Y == last)
}

func (m Move) String() string {
	return fmt.Sprintf("(%d, %d)", m.X, m.Y)
}

// Directions are the 8 unit vectors rays are cast along, as (dx, dy).
var Directions = [8][2]int{
	{-1, -1}, {-1, 0}, {-1, 1},
	{0, -1}, {0, 1},
	{1, -1}, {1, 0}, {1, 1},
}
