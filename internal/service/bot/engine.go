package bot

import (
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
	"time"

	"github.com/iamasit07/connect4-agent/internal/domain"
)

const moveCacheKeyPrefix = "c4:move:"

// CacheRepository is an optional store for decided moves.
type CacheRepository interface {
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) error
	Get(ctx context.Context, key string) (string, error)
}

type Options struct {
	MaxDepth            int
	Expansion           Expansion
	FlipLeafPerspective bool
	Timeout             time.Duration // zero means no deadline
	CacheTTL            time.Duration
	Verbose             bool
}

func DefaultOptions() Options {
	return Options{
		MaxDepth:  6,
		Expansion: Eager,
		CacheTTL:  24 * time.Hour,
	}
}

// Engine is the entry point drivers use to ask for the agent's move. It only
// carries configuration, so one Engine can serve concurrent callers.
type Engine struct {
	opts  Options
	cache CacheRepository // Optional, can be nil
}

func NewEngine(opts Options, cache CacheRepository) *Engine {
	if opts.MaxDepth <= 0 {
		opts.MaxDepth = DefaultOptions().MaxDepth
	}
	return &Engine{opts: opts, cache: cache}
}

func (e *Engine) Options() Options {
	return e.opts
}

// ChooseMove searches depth plies ahead from a copy of board with the AI to
// move and returns the column of the best immediate reply.
func (e *Engine) ChooseMove(ctx context.Context, board *domain.Board, depth int, strategy Strategy) (SearchResult, error) {
	if board.IsFull() {
		return SearchResult{}, domain.ErrNoLegalMoves
	}
	if depth < 1 {
		return SearchResult{}, fmt.Errorf("%w: got %d", domain.ErrInvalidDepth, depth)
	}
	if depth > e.opts.MaxDepth {
		return SearchResult{}, fmt.Errorf("%w: %d > %d", domain.ErrDepthCutoffTooLarge, depth, e.opts.MaxDepth)
	}

	key := e.cacheKey(board, depth, strategy)
	if res, ok := e.lookup(ctx, key, board); ok {
		res.Strategy = strategy
		res.Depth = depth
		return res, nil
	}

	if e.opts.Timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, e.opts.Timeout)
		defer cancel()
	}

	start := time.Now()
	tree := NewTree(board, domain.AI)
	if e.opts.Expansion == Eager {
		tree.BuildTree(tree.Root(), depth, domain.AI)
	}

	res, err := Search(ctx, tree, strategy, SearchOptions{
		Depth:               depth,
		Expansion:           e.opts.Expansion,
		FlipLeafPerspective: e.opts.FlipLeafPerspective,
	})
	if err != nil {
		return SearchResult{}, err
	}

	if e.opts.Verbose {
		log.Printf("[BOT] %s depth=%d expansion=%s column=%d value=%d nodes=%d visited=%d aborted=%t in %s",
			strategy, depth, e.opts.Expansion, res.Column, res.Value, tree.Len(), res.Visited, res.Aborted, time.Since(start))
	}
	if res.Aborted {
		log.Printf("[BOT] Search deadline hit after %d nodes, falling back to column %d", res.Visited, res.Column)
	} else {
		e.store(ctx, key, res)
	}

	return res, nil
}

// CalculateBestMove selects the move for a named difficulty preset.
func (e *Engine) CalculateBestMove(ctx context.Context, board *domain.Board, difficulty string) (SearchResult, error) {
	preset := PresetFor(difficulty)
	depth := preset.Depth
	if depth > e.opts.MaxDepth {
		depth = e.opts.MaxDepth
	}
	return e.ChooseMove(ctx, board, depth, preset.Strategy)
}

func (e *Engine) cacheKey(board *domain.Board, depth int, strategy Strategy) string {
	return fmt.Sprintf("%s%s:%d:%s:%t", moveCacheKeyPrefix, board.Key(), depth, strategy, e.opts.FlipLeafPerspective)
}

func (e *Engine) lookup(ctx context.Context, key string, board *domain.Board) (SearchResult, bool) {
	if e.cache == nil {
		return SearchResult{}, false
	}

	data, err := e.cache.Get(ctx, key)
	if err != nil || data == "" {
		return SearchResult{}, false
	}

	column, value, ok := parseCachedMove(data)
	if !ok || !board.CanDrop(column) {
		log.Printf("[BOT] Warning: ignoring bad cache entry %q for %s", data, key)
		return SearchResult{}, false
	}
	return SearchResult{Column: column, Node: NoParent, Value: value, Cached: true}, true
}

func (e *Engine) store(ctx context.Context, key string, res SearchResult) {
	if e.cache == nil {
		return
	}
	value := fmt.Sprintf("%d:%d", res.Column, res.Value)
	if err := e.cache.Set(ctx, key, value, e.opts.CacheTTL); err != nil {
		log.Printf("[BOT] Warning: Failed to cache move: %v", err)
	}
}

func parseCachedMove(data string) (int, int, bool) {
	colStr, valStr, found := strings.Cut(data, ":")
	if !found {
		return 0, 0, false
	}
	column, err := strconv.Atoi(colStr)
	if err != nil {
		return 0, 0, false
	}
	value, err := strconv.Atoi(valStr)
	if err != nil {
		return 0, 0, false
	}
	return column, value, true
}
