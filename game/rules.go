package game

// CanPlaceXY reports whether stone may be placed at (x, y): the cell must be
// empty and at least one ray must cross opponent stones and end on stone.
func CanPlaceXY(b Board, stone Stone, x, y int) bool {
	if !b.InBounds(x, y) || b[y][x] != Empty {
		return false
	}
	for _, d := range Directions {
		if len(capturedRun(b, stone, x, y, d[0], d[1])) > 0 {
			return true
		}
	}
	return false
}

// CanPlace reports whether stone has any legal placement.
func CanPlace(b Board, stone Stone) bool {
	for y := range b {
		for x := range b[y] {
			if CanPlaceXY(b, stone, x, y) {
				return true
			}
		}
	}
	return false
}

// LegalMoves lists the legal placements of stone, rows outer and columns inner.
func LegalMoves(b Board, stone Stone) []Move {
	var moves []Move
	for y := range b {
		for x := range b[y] {
			if CanPlaceXY(b, stone, x, y) {
				moves = append(moves, Move{X: x, Y: y})
			}
		}
	}
	return moves
}

// Flips lists the cells that placing stone at (x, y) would turn over,
// direction by direction and outward along each ray.
func Flips(b Board, stone Stone, x, y int) []Move {
	if !b.InBounds(x, y) || b[y][x] != Empty {
		return nil
	}
	var flips []Move
	for _, d := range Directions {
		flips = append(flips, capturedRun(b, stone, x, y, d[0], d[1])...)
	}
	return flips
}

// MoveStone applies a move in place and reports whether the board changed.
// An illegal target leaves the board untouched.
func MoveStone(b Board, stone Stone, x, y int) bool {
	return MoveStoneRecorded(b, stone, x, y, noRecorder{})
}

// MoveStoneRecorded is MoveStone that also hands rec a snapshot after the
// placement and after every single flip. An illegal target records the
// unchanged board once.
func MoveStoneRecorded(b Board, stone Stone, x, y int, rec Recorder) bool {
	if !CanPlaceXY(b, stone, x, y) {
		rec.Record(b)
		return false
	}

	b[y][x] = stone
	rec.Record(b)
	for _, d := range Directions {
		for _, cell := range capturedRun(b, stone, x, y, d[0], d[1]) {
			b[cell.Y][cell.X] = stone
			rec.Record(b)
		}
	}
	return true
}

// capturedRun walks from (x, y) along (dx, dy) over opponent stones and
// returns them if the run is closed by stone. Board edges and empty cells
// leave the run open.
func capturedRun(b Board, stone Stone, x, y, dx, dy int) []Move {
	opponent := stone.Opponent()
	var run []Move
	nx, ny := x+dx, y+dy
	for b.InBounds(nx, ny) && b[ny][nx] == opponent {
		run = append(run, Move{X: nx, Y: ny})
		nx += dx
		ny += dy
	}
	if len(run) == 0 || !b.InBounds(nx, ny) || b[ny][nx] != stone {
		return nil
	}
	return run
}
