package bot

import (
	"context"
	"fmt"
	"math"
	"strings"

	"github.com/iamasit07/connect4-agent/internal/domain"
)

const (
	negInf = math.MinInt32
	posInf = math.MaxInt32
)

type Strategy int

const (
	Minimax Strategy = iota
	AlphaBeta
)

func (s Strategy) String() string {
	if s == AlphaBeta {
		return "alphabeta"
	}
	return "minimax"
}

func ParseStrategy(s string) (Strategy, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "minimax":
		return Minimax, nil
	case "alphabeta", "alpha-beta", "alpha_beta", "ab":
		return AlphaBeta, nil
	}
	return Minimax, fmt.Errorf("unknown search strategy %q", s)
}

// Expansion selects whether the tree is materialized before searching or
// grown node by node as the search reaches it.
type Expansion int

const (
	Eager Expansion = iota
	Incremental
)

func (e Expansion) String() string {
	if e == Incremental {
		return "incremental"
	}
	return "eager"
}

func ParseExpansion(s string) (Expansion, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "eager":
		return Eager, nil
	case "incremental", "lazy":
		return Incremental, nil
	}
	return Eager, fmt.Errorf("unknown tree expansion %q", s)
}

type SearchOptions struct {
	Depth     int
	Expansion Expansion
	// FlipLeafPerspective scores leaves on a minimizing layer as the
	// negated opponent evaluation. Off by default: every leaf is scored
	// from the AI's side.
	FlipLeafPerspective bool
}

type SearchResult struct {
	Column   int
	Node     NodeID
	Value    int
	Visited  int
	Aborted  bool
	Cached   bool
	Strategy Strategy
	Depth    int
}

// Search backs leaf scores up to the root of tree and picks the root's best
// child. Ties keep the earlier generated child. If ctx is done mid-search
// the best fully searched child is returned with Aborted set, or the first
// legal child when none finished.
func Search(ctx context.Context, tree *Tree, strategy Strategy, opts SearchOptions) (SearchResult, error) {
	s := &searcher{
		ctx:         ctx,
		tree:        tree,
		depth:       opts.Depth,
		incremental: opts.Expansion == Incremental,
		flip:        opts.FlipLeafPerspective,
	}

	root := tree.Root()
	s.visited++
	children := s.children(root)
	if len(children) == 0 {
		return SearchResult{}, domain.ErrNoLegalMoves
	}

	maximizing := tree.nodes[root].ToMove == domain.AI
	alpha, beta := negInf, posInf
	bestChild := children[0]
	best := 0
	found := false

	for _, child := range children {
		var v int
		if strategy == AlphaBeta {
			v = s.alphaBeta(child, alpha, beta)
		} else {
			v = s.minimax(child)
		}
		if s.aborted {
			break
		}

		if !found || (maximizing && v > best) || (!maximizing && v < best) {
			best = v
			bestChild = child
			found = true
		}
		if maximizing && best > alpha {
			alpha = best
		}
		if !maximizing && best < beta {
			beta = best
		}
	}

	if !found {
		best = s.leafScore(bestChild)
	} else if !s.aborted {
		s.record(root, best)
	}

	return SearchResult{
		Column:   tree.nodes[bestChild].Column,
		Node:     bestChild,
		Value:    best,
		Visited:  s.visited,
		Aborted:  s.aborted,
		Strategy: strategy,
		Depth:    opts.Depth,
	}, nil
}

type searcher struct {
	ctx         context.Context
	tree        *Tree
	depth       int
	incremental bool
	flip        bool
	visited     int
	aborted     bool
}

func (s *searcher) visit() bool {
	if s.aborted {
		return false
	}
	s.visited++
	if s.ctx == nil {
		return true
	}
	select {
	case <-s.ctx.Done():
		s.aborted = true
		return false
	default:
		return true
	}
}

// children returns the node's children within the depth cutoff, growing
// the tree first when expanding incrementally.
func (s *searcher) children(id NodeID) []NodeID {
	n := &s.tree.nodes[id]
	if n.Depth >= s.depth {
		return nil
	}
	if s.incremental {
		s.tree.Expand(id, n.ToMove)
	}
	return s.tree.nodes[id].Children
}

func (s *searcher) leafScore(id NodeID) int {
	n := &s.tree.nodes[id]
	if s.flip && n.ToMove == domain.Player {
		return -Evaluate(n.Board, domain.Player)
	}
	return Evaluate(n.Board, domain.AI)
}

func (s *searcher) record(id NodeID, score int) {
	s.tree.nodes[id].Score = score
	s.tree.nodes[id].Evaluated = true
}

func (s *searcher) minimax(id NodeID) int {
	if !s.visit() {
		return 0
	}

	children := s.children(id)
	if len(children) == 0 {
		score := s.leafScore(id)
		s.record(id, score)
		return score
	}

	maximizing := s.tree.nodes[id].ToMove == domain.AI
	best := 0
	for i, child := range children {
		v := s.minimax(child)
		if s.aborted {
			return best
		}
		if i == 0 || (maximizing && v > best) || (!maximizing && v < best) {
			best = v
		}
	}

	s.record(id, best)
	return best
}

func (s *searcher) alphaBeta(id NodeID, alpha, beta int) int {
	if !s.visit() {
		return 0
	}

	children := s.children(id)
	if len(children) == 0 {
		score := s.leafScore(id)
		s.record(id, score)
		return score
	}

	maximizing := s.tree.nodes[id].ToMove == domain.AI
	best := 0
	for i, child := range children {
		v := s.alphaBeta(child, alpha, beta)
		if s.aborted {
			return best
		}

		if maximizing {
			if i == 0 || v > best {
				best = v
			}
			if best >= beta {
				break // beta cutoff
			}
			if best > alpha {
				alpha = best
			}
		} else {
			if i == 0 || v < best {
				best = v
			}
			if best <= alpha {
				break // alpha cutoff
			}
			if best < beta {
				beta = best
			}
		}
	}

	s.record(id, best)
	return best
}
