package domain

import (
	"errors"
	"reflect"
	"testing"
)

func TestNewBoardOpensBottomRow(t *testing.T) {
	b := NewBoard()
	if got, want := b.OpenColumns(), []int{0, 1, 2, 3, 4, 5, 6}; !reflect.DeepEqual(got, want) {
		t.Fatalf("open columns = %v, want %v", got, want)
	}
	if b.IsFull() {
		t.Fatalf("empty board reported full")
	}
	if b.Height() != 0 {
		t.Fatalf("empty board height = %d", b.Height())
	}
}

func TestDropStacksAndMovesColumnUp(t *testing.T) {
	b := NewBoard()
	for want := 0; want < 3; want++ {
		row, ok := b.Drop(3, Player)
		if !ok || row != want {
			t.Fatalf("drop %d landed at (%d, %v), want row %d", want, row, ok, want)
		}
	}

	// lowest landing row first, so column 3 (row 3) comes last
	if got, want := b.OpenColumns(), []int{0, 1, 2, 4, 5, 6, 3}; !reflect.DeepEqual(got, want) {
		t.Fatalf("open columns = %v, want %v", got, want)
	}
	if row, _ := b.LandingRow(3); row != 3 {
		t.Fatalf("landing row = %d, want 3", row)
	}
	if b.Height() != 3 {
		t.Fatalf("height = %d, want 3", b.Height())
	}
}

func TestDropRejectsFullAndOutOfRangeColumns(t *testing.T) {
	b := NewBoard()
	for i := 0; i < Rows; i++ {
		if _, ok := b.Drop(0, AI); !ok {
			t.Fatalf("drop %d into column 0 failed", i)
		}
	}

	before := b.Key()
	for _, col := range []int{0, -1, Columns} {
		if row, ok := b.Drop(col, Player); ok || row != -1 {
			t.Fatalf("drop into column %d = (%d, %v), want rejection", col, row, ok)
		}
	}
	if _, ok := b.Drop(1, Empty); ok {
		t.Fatalf("dropping an empty piece should fail")
	}
	if b.Key() != before {
		t.Fatalf("rejected drops mutated the board")
	}
	for _, col := range b.OpenColumns() {
		if col == 0 {
			t.Fatalf("full column still listed as open")
		}
	}
}

func TestIsFullAfterLastCell(t *testing.T) {
	b := NewBoard()
	p := Player
	for c := 0; c < Columns; c++ {
		for r := 0; r < Rows; r++ {
			if c == Columns-1 && r == Rows-1 {
				continue
			}
			b.Drop(c, p)
			p = p.Opponent()
		}
	}
	if b.IsFull() {
		t.Fatalf("board with one open cell reported full")
	}
	if got := b.OpenColumns(); !reflect.DeepEqual(got, []int{Columns - 1}) {
		t.Fatalf("open columns = %v", got)
	}

	if _, ok := b.Drop(Columns-1, p); !ok {
		t.Fatalf("drop into last cell failed")
	}
	if !b.IsFull() {
		t.Fatalf("board should be full")
	}
	if len(b.OpenColumns()) != 0 {
		t.Fatalf("full board still has open columns")
	}
}

func TestCloneIsDeep(t *testing.T) {
	b := NewBoard()
	b.Drop(2, Player)
	c := b.Clone()
	c.Drop(2, AI)

	if b.Cell(1, 2) != Empty {
		t.Fatalf("clone drop leaked into original")
	}
	if row, _ := b.LandingRow(2); row != 1 {
		t.Fatalf("original open set changed: landing row %d", row)
	}
}

func TestFromCellsRoundTrip(t *testing.T) {
	b := NewBoard()
	for _, col := range []int{3, 3, 2, 4, 0, 0, 0} {
		p := Player
		if b.PieceCount(Player) > b.PieceCount(AI) {
			p = AI
		}
		b.Drop(col, p)
	}

	got, err := FromCells(b.Cells())
	if err != nil {
		t.Fatalf("FromCells: %v", err)
	}
	if got.Key() != b.Key() {
		t.Fatalf("key = %s, want %s", got.Key(), b.Key())
	}
	if !reflect.DeepEqual(got.OpenColumns(), b.OpenColumns()) {
		t.Fatalf("open columns = %v, want %v", got.OpenColumns(), b.OpenColumns())
	}
}

func TestFromCellsRejectsBadGrids(t *testing.T) {
	grid := func() [][]int {
		g := make([][]int, Rows)
		for i := range g {
			g[i] = make([]int, Columns)
		}
		return g
	}

	floating := grid()
	floating[1][4] = int(AI)

	unknown := grid()
	unknown[0][0] = 7

	short := grid()[:Rows-1]

	narrow := grid()
	narrow[2] = narrow[2][:3]

	for name, g := range map[string][][]int{
		"floating": floating,
		"unknown":  unknown,
		"short":    short,
		"narrow":   narrow,
	} {
		if _, err := FromCells(g); !errors.Is(err, ErrInvalidBoard) {
			t.Errorf("%s: err = %v, want ErrInvalidBoard", name, err)
		}
	}
}

func TestStringDrawsTopRowFirst(t *testing.T) {
	b := NewBoard()
	b.Drop(0, Player)
	b.Drop(6, AI)

	want := ".......\n" +
		".......\n" +
		".......\n" +
		".......\n" +
		".......\n" +
		"X.....O\n" +
		"0123456"
	if got := b.String(); got != want {
		t.Fatalf("String() =\n%s\nwant\n%s", got, want)
	}
}
