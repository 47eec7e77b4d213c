package bot

import (
	"github.com/iamasit07/connect4-agent/internal/domain"
)

// NodeID addresses a MoveNode inside its Tree.
type NodeID int32

const NoParent NodeID = -1

// MoveNode is one position in the search tree. Children are generated once
// and never regenerated, so scores backed up into them stay valid.
type MoveNode struct {
	Board     *domain.Board
	Children  []NodeID
	Parent    NodeID
	Column    int             // column that produced this node, -1 at the root
	Mover     domain.PlayerID // who played Column, Empty at the root
	ToMove    domain.PlayerID
	Depth     int
	Score     int
	Evaluated bool
	expanded  bool
}

// Tree is an arena of nodes. NodeIDs stay valid for the tree's lifetime;
// *MoveNode pointers do not survive an expansion.
type Tree struct {
	nodes []MoveNode
}

// NewTree roots a tree at a copy of board with toMove about to play.
func NewTree(board *domain.Board, toMove domain.PlayerID) *Tree {
	t := &Tree{nodes: make([]MoveNode, 0, 64)}
	t.nodes = append(t.nodes, MoveNode{
		Board:  board.Clone(),
		Parent: NoParent,
		Column: -1,
		Mover:  domain.Empty,
		ToMove: toMove,
	})
	return t
}

func (t *Tree) Root() NodeID {
	return 0
}

func (t *Tree) Node(id NodeID) *MoveNode {
	return &t.nodes[id]
}

func (t *Tree) Len() int {
	return len(t.nodes)
}

// Expand adds one child per open column, in generation order, with
// playerToMove's piece dropped. A node that was already expanded is left
// alone.
func (t *Tree) Expand(id NodeID, playerToMove domain.PlayerID) {
	if t.nodes[id].expanded {
		return
	}
	t.nodes[id].expanded = true

	parent := t.nodes[id].Board
	depth := t.nodes[id].Depth + 1
	columns := parent.OpenColumns()
	children := make([]NodeID, 0, len(columns))

	for _, col := range columns {
		board := parent.Clone()
		board.Drop(col, playerToMove)

		child := NodeID(len(t.nodes))
		t.nodes = append(t.nodes, MoveNode{
			Board:  board,
			Parent: id,
			Column: col,
			Mover:  playerToMove,
			ToMove: playerToMove.Opponent(),
			Depth:  depth,
		})
		children = append(children, child)
	}

	t.nodes[id].Children = children
}

// BuildTree expands id and every descendant until depth plies have been
// materialized, alternating the mover on each level.
func (t *Tree) BuildTree(id NodeID, depth int, playerToMove domain.PlayerID) {
	if depth <= 0 {
		return
	}
	t.Expand(id, playerToMove)
	for _, child := range t.nodes[id].Children {
		t.BuildTree(child, depth-1, playerToMove.Opponent())
	}
}

// Path returns the columns played from the root down to id.
func (t *Tree) Path(id NodeID) []int {
	var path []int
	for cur := id; cur != NoParent && t.nodes[cur].Parent != NoParent; cur = t.nodes[cur].Parent {
		path = append(path, t.nodes[cur].Column)
	}
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}
	return path
}
