package bot

import (
	"reflect"
	"testing"

	"github.com/iamasit07/connect4-agent/internal/domain"
)

func TestExpandIsIdempotent(t *testing.T) {
	tree := NewTree(domain.NewBoard(), domain.AI)
	root := tree.Root()

	tree.Expand(root, domain.AI)
	first := append([]NodeID(nil), tree.Node(root).Children...)
	size := tree.Len()

	tree.Expand(root, domain.AI)
	if !reflect.DeepEqual(tree.Node(root).Children, first) {
		t.Fatalf("children changed on second expand: %v vs %v", tree.Node(root).Children, first)
	}
	if tree.Len() != size {
		t.Fatalf("second expand allocated nodes: %d -> %d", size, tree.Len())
	}
	if len(first) != domain.Columns {
		t.Fatalf("root has %d children, want %d", len(first), domain.Columns)
	}
}

func TestExpandChildrenFollowGenerationOrder(t *testing.T) {
	b := domain.NewBoard()
	place(t, b, domain.Player, 3)
	tree := NewTree(b, domain.AI)
	tree.Expand(tree.Root(), domain.AI)

	var cols []int
	for _, id := range tree.Node(tree.Root()).Children {
		n := tree.Node(id)
		cols = append(cols, n.Column)
		if n.Parent != tree.Root() || n.Mover != domain.AI || n.ToMove != domain.Player || n.Depth != 1 {
			t.Fatalf("child %d has wrong provenance: %+v", id, *n)
		}
		row, _ := b.LandingRow(n.Column)
		if n.Board.Cell(row, n.Column) != domain.AI {
			t.Fatalf("child for column %d does not hold the AI piece", n.Column)
		}
	}
	if want := []int{0, 1, 2, 4, 5, 6, 3}; !reflect.DeepEqual(cols, want) {
		t.Fatalf("child columns = %v, want %v", cols, want)
	}
	if b.PieceCount(domain.AI) != 0 {
		t.Fatalf("expansion mutated the source board")
	}
}

func TestBuildTreeSizes(t *testing.T) {
	for depth, want := range map[int]int{0: 1, 1: 8, 2: 57, 3: 400} {
		tree := NewTree(domain.NewBoard(), domain.AI)
		tree.BuildTree(tree.Root(), depth, domain.AI)
		if tree.Len() != want {
			t.Errorf("depth %d: %d nodes, want %d", depth, tree.Len(), want)
		}
	}
}

func TestBuildTreeAlternatesMovers(t *testing.T) {
	tree := NewTree(domain.NewBoard(), domain.AI)
	tree.BuildTree(tree.Root(), 3, domain.AI)

	for id := NodeID(1); int(id) < tree.Len(); id++ {
		n := tree.Node(id)
		want := domain.AI
		if n.Depth%2 == 0 {
			want = domain.Player
		}
		if n.Mover != want {
			t.Fatalf("node %d at depth %d moved by %s, want %s", id, n.Depth, n.Mover, want)
		}
		if n.Depth == 3 && len(n.Children) != 0 {
			t.Fatalf("node past the cutoff was expanded")
		}
	}
}

func TestBuildTreeDoesNotDuplicate(t *testing.T) {
	tree := NewTree(domain.NewBoard(), domain.AI)
	tree.BuildTree(tree.Root(), 2, domain.AI)
	size := tree.Len()
	tree.BuildTree(tree.Root(), 2, domain.AI)
	if tree.Len() != size {
		t.Fatalf("rebuilding grew the tree from %d to %d nodes", size, tree.Len())
	}
}

func TestFullBoardHasNoChildren(t *testing.T) {
	b := domain.NewBoard()
	p := domain.Player
	for c := 0; c < domain.Columns; c++ {
		for r := 0; r < domain.Rows; r++ {
			b.Drop(c, p)
			p = p.Opponent()
		}
	}
	tree := NewTree(b, domain.AI)
	tree.BuildTree(tree.Root(), 3, domain.AI)
	if tree.Len() != 1 {
		t.Fatalf("full board grew %d nodes", tree.Len()-1)
	}
}

func TestPathFollowsParents(t *testing.T) {
	tree := NewTree(domain.NewBoard(), domain.AI)
	tree.BuildTree(tree.Root(), 3, domain.AI)

	var want []int
	id := tree.Root()
	for _, i := range []int{2, 5, 0} {
		id = tree.Node(id).Children[i]
		want = append(want, tree.Node(id).Column)
	}

	// second ply: column 2 now lands on row 1, so it sorts last
	if want[1] != 6 {
		t.Fatalf("unexpected generation order: %v", want)
	}
	if got := tree.Path(id); !reflect.DeepEqual(got, want) {
		t.Fatalf("path = %v, want %v", got, want)
	}
	if len(tree.Path(tree.Root())) != 0 {
		t.Fatalf("root path should be empty")
	}
}
