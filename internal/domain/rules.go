package domain

type Position struct {
	Row    int
	Column int
}

type Direction int

const (
	Horizontal Direction = iota
	Vertical
	Diagonal     // up and to the right
	AntiDiagonal // up and to the left
)

// Window is a run of ToWin cells along one direction. Cells[0] is always on
// the lowest row the window touches.
type Window struct {
	Dir   Direction
	Cells [ToWin]Position
}

// Windows lists every window on the board once, grouped by direction.
var Windows = buildWindows()

func buildWindows() []Window {
	steps := []struct {
		dir        Direction
		dRow, dCol int
	}{
		{Horizontal, 0, 1},
		{Vertical, 1, 0},
		{Diagonal, 1, 1},
		{AntiDiagonal, 1, -1},
	}

	var windows []Window
	for _, s := range steps {
		for row := 0; row < Rows; row++ {
			for c := 0; c < Columns; c++ {
				endRow := row + s.dRow*(ToWin-1)
				endCol := c + s.dCol*(ToWin-1)
				if !inBounds(endRow, endCol) {
					continue
				}
				w := Window{Dir: s.dir}
				for i := 0; i < ToWin; i++ {
					w.Cells[i] = Position{Row: row + s.dRow*i, Column: c + s.dCol*i}
				}
				windows = append(windows, w)
			}
		}
	}
	return windows
}

// CountAlignments counts windows completely owned by player. Used for
// terminal scoring only.
func (b *Board) CountAlignments(player PlayerID) int {
	count := 0
	for _, w := range Windows {
		owned := true
		for _, p := range w.Cells {
			if b.cells[p.Row][p.Column] != player {
				owned = false
				break
			}
		}
		if owned {
			count++
		}
	}
	return count
}

// Winner decides a finished position by comparing alignment counts.
func Winner(b *Board) PlayerID {
	player, ai := b.CountAlignments(Player), b.CountAlignments(AI)
	switch {
	case player > ai:
		return Player
	case ai > player:
		return AI
	}
	return Empty
}

// CheckWin only looks at lines passing through (row, column), which is all
// that can change after a single drop.
func CheckWin(b *Board, row, column int, player PlayerID) bool {
	if !inBounds(row, column) || b.cells[row][column] != player {
		return false
	}

	directions := [][2]int{
		{0, 1},  // horizontal
		{1, 0},  // vertical
		{1, 1},  // diagonal /
		{1, -1}, // diagonal \
	}

	for _, dir := range directions {
		total := 1 +
			CountDiskInDirection(b, row, column, dir[0], dir[1], player) +
			CountDiskInDirection(b, row, column, -dir[0], -dir[1], player)
		if total >= ToWin {
			return true
		}
	}
	return false
}

// this counts the number of disks in a specific direction
func CountDiskInDirection(b *Board, row, column, deltaRow, deltaCol int, player PlayerID) int {
	count := 0
	r, c := row+deltaRow, column+deltaCol
	for inBounds(r, c) && b.cells[r][c] == player {
		count++
		r += deltaRow
		c += deltaCol
	}
	return count
}
