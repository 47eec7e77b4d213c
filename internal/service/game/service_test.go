package game

import (
	"context"
	"errors"
	"testing"

	"github.com/iamasit07/connect4-agent/internal/domain"
	"github.com/iamasit07/connect4-agent/internal/service/bot"
)

// fixedChooser always answers with the same column, or with err when set.
type fixedChooser struct {
	column int
	err    error
	calls  int
}

func (f *fixedChooser) ChooseMove(ctx context.Context, board *domain.Board, depth int, strategy bot.Strategy) (bot.SearchResult, error) {
	f.calls++
	if f.err != nil {
		return bot.SearchResult{}, f.err
	}
	return bot.SearchResult{Column: f.column, Depth: depth, Strategy: strategy}, nil
}

func TestSessionPlaysAgainstEngine(t *testing.T) {
	svc := NewService(bot.NewEngine(bot.DefaultOptions(), nil))
	s := svc.NewSession("easy", domain.Player)

	if s.GameID == "" {
		t.Fatalf("session has no id")
	}
	if s.Depth != 1 || s.Strategy != bot.Minimax {
		t.Fatalf("easy session searches %s depth %d", s.Strategy, s.Depth)
	}

	for _, col := range []int{0, 1, 2} {
		if _, ok := s.ApplyHumanMove(col); !ok {
			t.Fatalf("human move %d rejected", col)
		}
		if _, _, err := s.AgentMove(context.Background()); err != nil {
			t.Fatalf("agent move: %v", err)
		}
	}

	state := s.State()
	if state.MoveCount != 6 || state.CurrentPlayer != domain.Player {
		t.Fatalf("after three rounds: moves=%d turn=%s", state.MoveCount, state.CurrentPlayer)
	}
	if state.LastResult == nil || state.LastResult.Depth != 1 {
		t.Fatalf("last result not recorded: %+v", state.LastResult)
	}
	if state.Board.PieceCount(domain.AI) != 3 || state.Board.PieceCount(domain.Player) != 3 {
		t.Fatalf("unexpected board\n%s", state.Board)
	}
}

func TestSessionCapsPresetDepth(t *testing.T) {
	opts := bot.DefaultOptions()
	opts.MaxDepth = 2
	svc := NewService(bot.NewEngine(opts, nil))

	s := svc.NewSession("hard", domain.Player)
	if s.Depth != 2 {
		t.Fatalf("depth %d, want the engine ceiling 2", s.Depth)
	}
}

func TestApplyHumanMoveRejections(t *testing.T) {
	s := NewSession(&fixedChooser{column: 0}, 1, bot.Minimax, domain.Player)

	for _, col := range []int{-1, domain.Columns} {
		if row, ok := s.ApplyHumanMove(col); ok || row != -1 {
			t.Fatalf("column %d accepted at row %d", col, row)
		}
	}
	if _, ok := s.ApplyHumanMove(3); !ok {
		t.Fatalf("legal move rejected")
	}
	if _, ok := s.ApplyHumanMove(3); ok {
		t.Fatalf("human moved twice in a row")
	}
	if _, err := s.HandleMove(3); !errors.Is(err, domain.ErrNotYourTurn) {
		t.Fatalf("err = %v, want ErrNotYourTurn", err)
	}
}

func TestAgentMoveOutOfTurn(t *testing.T) {
	agent := &fixedChooser{column: 0}
	s := NewSession(agent, 1, bot.Minimax, domain.Player)

	if _, _, err := s.AgentMove(context.Background()); !errors.Is(err, domain.ErrNotYourTurn) {
		t.Fatalf("err = %v, want ErrNotYourTurn", err)
	}
	if agent.calls != 0 {
		t.Fatalf("engine consulted out of turn")
	}
}

func TestSessionFinishesOnWin(t *testing.T) {
	agent := &fixedChooser{column: 0}
	s := NewSession(agent, 1, bot.Minimax, domain.AI)

	for i := 0; i < 3; i++ {
		if _, _, err := s.AgentMove(context.Background()); err != nil {
			t.Fatalf("agent move %d: %v", i, err)
		}
		if _, ok := s.ApplyHumanMove(6); !ok {
			t.Fatalf("human move %d rejected", i)
		}
	}
	col, row, err := s.AgentMove(context.Background())
	if err != nil || col != 0 || row != 3 {
		t.Fatalf("winning move = (%d, %d, %v)", col, row, err)
	}

	state := s.State()
	if state.Status != domain.StatusWon || state.Winner != domain.AI {
		t.Fatalf("status %s winner %s, want ai win", state.Status, state.Winner)
	}
	if s.FinishedAt.IsZero() {
		t.Fatalf("finish time not set")
	}
	if _, ok := s.ApplyHumanMove(1); ok {
		t.Fatalf("move accepted after the game ended")
	}
	if _, _, err := s.AgentMove(context.Background()); !errors.Is(err, domain.ErrGameFinished) {
		t.Fatalf("err = %v, want ErrGameFinished", err)
	}
}

func TestAgentWithoutMovesEndsInDraw(t *testing.T) {
	agent := &fixedChooser{err: domain.ErrNoLegalMoves}
	s := NewSession(agent, 1, bot.Minimax, domain.AI)

	if _, _, err := s.AgentMove(context.Background()); !errors.Is(err, domain.ErrNoLegalMoves) {
		t.Fatalf("err = %v, want ErrNoLegalMoves", err)
	}
	if s.State().Status != domain.StatusDraw {
		t.Fatalf("status = %s, want draw", s.State().Status)
	}
}

func TestStateIsACopy(t *testing.T) {
	s := NewSession(&fixedChooser{column: 4}, 2, bot.AlphaBeta, domain.Player)
	s.ApplyHumanMove(3)
	if _, _, err := s.AgentMove(context.Background()); err != nil {
		t.Fatalf("agent move: %v", err)
	}

	state := s.State()
	state.Board.Drop(0, domain.Player)
	state.LastResult.Column = 6

	again := s.State()
	if again.Board.PieceCount(domain.Player) != 1 {
		t.Fatalf("mutating the snapshot changed the session board")
	}
	if again.LastResult.Column != 4 {
		t.Fatalf("mutating the snapshot changed the last result")
	}
}
