package game

import (
	"errors"
	"fmt"
	"strings"

	"othello/meta"
)

var ErrMalformedBoard = errors.New("malformed board")

// Board is a square grid of cells in row-major order: b[y][x] is column x of row y.
type Board [][]Stone

// NewBoard returns a fresh standard starting position.
func NewBoard() Board {
	b := NewEmptyBoard(meta.BOARD_SIZE)
	mid := meta.BOARD_SIZE / 2
	b[mid-1][mid-1], b[mid][mid] = Black, Black
	b[mid-1][mid], b[mid][mid-1] = White, White
	return b
}

// NewEmptyBoard returns a size x size board with no stones.
func NewEmptyBoard(size int) Board {
	b := make(Board, size)
	for y := range b {
		b[y] = make([]Stone, size)
	}
	return b
}

// ParseBoard builds a board from one string per row.
// '.' or '-' is empty, 'X' or 'B' is black, 'O' or 'W' is white.
func ParseBoard(rows ...string) (Board, error) {
	size := len(rows)
	if size == 0 {
		return nil, fmt.Errorf("%w: no rows", ErrMalformedBoard)
	}
	b := NewEmptyBoard(size)
	for y, row := range rows {
		cells := []rune(row)
		if len(cells) != size {
			return nil, fmt.Errorf("%w: row %d has %d cells, want %d", ErrMalformedBoard, y, len(cells), size)
		}
		for x, c := range cells {
			switch c {
			case '.', '-':
				b[y][x] = Empty
			case 'X', 'B':
				b[y][x] = Black
			case 'O', 'W':
				b[y][x] = White
			default:
				return nil, fmt.Errorf("%w: unexpected %q at (%d, %d)", ErrMalformedBoard, c, x, y)
			}
		}
	}
	return b, nil
}

// MustParseBoard is ParseBoard for fixed positions known to be valid.
func MustParseBoard(rows ...string) Board {
	b, err := ParseBoard(rows...)
	if err != nil {
		panic(err)
	}
	return b
}

func (b Board) Size() int {
	return len(b)
}

func (b Board) InBounds(x, y int) bool {
	return x >= 0 && y >= 0 && y < len(b) && x < len(b[y])
}

// Copy is the deep copy used before every simulated move.
func (b Board) Copy() Board {
	c := make(Board, len(b))
	for y, row := range b {
		c[y] = make([]Stone, len(row))
		copy(c[y], row)
	}
	return c
}

func (b Board) Equal(other Board) bool {
	if len(b) != len(other) {
		return false
	}
	for y := range b {
		if len(b[y]) != len(other[y]) {
			return false
		}
		for x := range b[y] {
			if b[y][x] != other[y][x] {
				return false
			}
		}
	}
	return true
}

// Rows is the inverse of ParseBoard.
func (b Board) Rows() []string {
	rows := make([]string, len(b))
	for y, row := range b {
		var sb strings.Builder
		for _, s := range row {
			switch s {
			case Black:
				sb.WriteByte('X')
			case White:
				sb.WriteByte('O')
			default:
				sb.WriteByte('.')
			}
		}
		rows[y] = sb.String()
	}
	return rows
}

func (b Board) String() string {
	return strings.Join(b.Rows(), "\n")
}
