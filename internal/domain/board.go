package domain

import (
	"fmt"
	"math/bits"
	"strings"
)

const allColumns = uint8(1<<Columns - 1)

// Board is a 6x7 grid with row 0 at the bottom. open[r] holds a bit for
// every column whose lowest empty cell is row r, so a column is in exactly
// one row's set until it fills up.
type Board struct {
	cells [Rows][Columns]PlayerID
	open  [Rows]uint8
}

func NewBoard() *Board {
	b := &Board{}
	b.open[0] = allColumns
	return b
}

// Clone returns a deep copy. Nothing else in this package copies a board.
func (b *Board) Clone() *Board {
	nb := *b
	return &nb
}

func (b *Board) Cell(row, column int) PlayerID {
	if !inBounds(row, column) {
		return Empty
	}
	return b.cells[row][column]
}

// LandingRow reports the row a piece dropped in column would occupy.
func (b *Board) LandingRow(column int) (int, bool) {
	if column < 0 || column >= Columns {
		return -1, false
	}
	bit := uint8(1) << column
	for row := 0; row < Rows; row++ {
		if b.open[row]&bit != 0 {
			return row, true
		}
	}
	return -1, false
}

func (b *Board) CanDrop(column int) bool {
	_, ok := b.LandingRow(column)
	return ok
}

// Drop places player's piece in the lowest open row of column. It leaves
// the board untouched and returns ok=false when the column is out of range
// or already full.
func (b *Board) Drop(column int, player PlayerID) (int, bool) {
	if player != Player && player != AI {
		return -1, false
	}
	row, ok := b.LandingRow(column)
	if !ok {
		return -1, false
	}

	bit := uint8(1) << column
	b.cells[row][column] = player
	b.open[row] &^= bit
	if row+1 < Rows {
		b.open[row+1] |= bit
	}
	return row, true
}

func (b *Board) IsFull() bool {
	for row := 0; row < Rows; row++ {
		if b.open[row] != 0 {
			return false
		}
	}
	return true
}

// OpenColumns lists legal moves in generation order: lowest landing row
// first, ascending column within a row.
func (b *Board) OpenColumns() []int {
	columns := make([]int, 0, Columns)
	for row := 0; row < Rows; row++ {
		set := b.open[row]
		for set != 0 {
			c := bits.TrailingZeros8(set)
			columns = append(columns, c)
			set &^= 1 << c
		}
	}
	return columns
}

// Height is the number of rows holding at least one piece.
func (b *Board) Height() int {
	for row := Rows - 1; row >= 0; row-- {
		for c := 0; c < Columns; c++ {
			if b.cells[row][c] != Empty {
				return row + 1
			}
		}
	}
	return 0
}

func (b *Board) PieceCount(player PlayerID) int {
	n := 0
	for row := 0; row < Rows; row++ {
		for c := 0; c < Columns; c++ {
			if b.cells[row][c] == player {
				n++
			}
		}
	}
	return n
}

// Cells exports the grid as plain ints, row 0 at the bottom.
func (b *Board) Cells() [][]int {
	out := make([][]int, Rows)
	for row := range out {
		out[row] = make([]int, Columns)
		for c := 0; c < Columns; c++ {
			out[row][c] = int(b.cells[row][c])
		}
	}
	return out
}

// FromCells builds a board from a bottom-up grid, rejecting wrong
// dimensions, unknown cell values and floating pieces.
func FromCells(cells [][]int) (*Board, error) {
	if len(cells) != Rows {
		return nil, fmt.Errorf("%w: expected %d rows, got %d", ErrInvalidBoard, Rows, len(cells))
	}

	b := &Board{}
	for row := 0; row < Rows; row++ {
		if len(cells[row]) != Columns {
			return nil, fmt.Errorf("%w: row %d has %d columns", ErrInvalidBoard, row, len(cells[row]))
		}
		for c := 0; c < Columns; c++ {
			p := PlayerID(cells[row][c])
			if p != Empty && p != Player && p != AI {
				return nil, fmt.Errorf("%w: unknown cell value %d at (%d,%d)", ErrInvalidBoard, cells[row][c], row, c)
			}
			if p != Empty && row > 0 && b.cells[row-1][c] == Empty {
				return nil, fmt.Errorf("%w: floating piece at (%d,%d)", ErrInvalidBoard, row, c)
			}
			b.cells[row][c] = p
		}
	}

	for c := 0; c < Columns; c++ {
		for row := 0; row < Rows; row++ {
			if b.cells[row][c] == Empty {
				b.open[row] |= 1 << c
				break
			}
		}
	}
	return b, nil
}

// Key encodes the grid as 42 digits, bottom row first.
func (b *Board) Key() string {
	var sb strings.Builder
	sb.Grow(Rows * Columns)
	for row := 0; row < Rows; row++ {
		for c := 0; c < Columns; c++ {
			sb.WriteByte(byte('0' + b.cells[row][c]))
		}
	}
	return sb.String()
}

// String draws the board top row first, X for the player and O for the AI.
func (b *Board) String() string {
	var sb strings.Builder
	for row := Rows - 1; row >= 0; row-- {
		for c := 0; c < Columns; c++ {
			switch b.cells[row][c] {
			case Player:
				sb.WriteByte('X')
			case AI:
				sb.WriteByte('O')
			default:
				sb.WriteByte('.')
			}
		}
		sb.WriteByte('\n')
	}
	for c := 0; c < Columns; c++ {
		sb.WriteByte(byte('0' + c))
	}
	return sb.String()
}

func inBounds(row, column int) bool {
	return row >= 0 && row < Rows && column >= 0 && column < Columns
}
