package game

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/iamasit07/connect4-agent/internal/domain"
	"github.com/iamasit07/connect4-agent/internal/service/bot"
	"github.com/iamasit07/connect4-agent/pkg/uid"
)

// MoveChooser is the part of bot.Engine a session needs.
type MoveChooser interface {
	ChooseMove(ctx context.Context, board *domain.Board, depth int, strategy bot.Strategy) (bot.SearchResult, error)
}

// Session is one human-vs-agent match around a single authoritative board.
type Session struct {
	GameID     string
	Game       *domain.Game
	Depth      int
	Strategy   bot.Strategy
	CreatedAt  time.Time
	FinishedAt time.Time
	LastResult *bot.SearchResult
	mu         sync.Mutex
	agent      MoveChooser
}

func NewSession(agent MoveChooser, depth int, strategy bot.Strategy, first domain.PlayerID) *Session {
	s := &Session{
		GameID:    uid.GenerateGameID(),
		Game:      domain.NewGame(first),
		Depth:     depth,
		Strategy:  strategy,
		CreatedAt: time.Now(),
		agent:     agent,
	}
	log.Printf("[GAME] Created session %s: depth=%d strategy=%s first=%s", s.GameID, depth, strategy, s.Game.CurrentPlayer)
	return s
}

// ApplyHumanMove drops the human's piece. ok=false means the move was not
// accepted (full or unknown column, wrong turn, finished game) and the human
// should be asked again.
func (s *Session) ApplyHumanMove(column int) (int, bool) {
	row, err := s.HandleMove(column)
	if err != nil {
		log.Printf("[GAME] Rejected human move in %s: column %d: %v", s.GameID, column, err)
		return -1, false
	}
	return row, true
}

// HandleMove is ApplyHumanMove with the reason for a rejection.
func (s *Session) HandleMove(column int) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	row, err := s.Game.MakeMove(domain.Player, column)
	if err != nil {
		return -1, err
	}
	s.markFinished()
	return row, nil
}

// AgentMove asks the engine for a column and plays it on the authoritative
// board.
func (s *Session) AgentMove(ctx context.Context) (int, int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Game.IsFinished() {
		return -1, -1, domain.ErrGameFinished
	}
	if s.Game.CurrentPlayer != domain.AI {
		return -1, -1, domain.ErrNotYourTurn
	}

	res, err := s.agent.ChooseMove(ctx, s.Game.Board, s.Depth, s.Strategy)
	if err != nil {
		if errors.Is(err, domain.ErrNoLegalMoves) {
			s.Game.Status = domain.StatusDraw
			s.markFinished()
		}
		return -1, -1, fmt.Errorf("agent move: %w", err)
	}

	row, err := s.Game.MakeMove(domain.AI, res.Column)
	if err != nil {
		return -1, -1, fmt.Errorf("agent chose column %d: %w", res.Column, err)
	}
	s.LastResult = &res
	s.markFinished()
	return res.Column, row, nil
}

// State is a copy of the session's game that callers may keep or mutate.
type State struct {
	Board         *domain.Board
	Status        domain.GameStatus
	Winner        domain.PlayerID
	CurrentPlayer domain.PlayerID
	MoveCount     int
	LastResult    *bot.SearchResult
}

func (s *Session) State() State {
	s.mu.Lock()
	defer s.mu.Unlock()
	var last *bot.SearchResult
	if s.LastResult != nil {
		res := *s.LastResult
		last = &res
	}
	return State{
		LastResult:    last,
		Board:         s.Game.Board.Clone(),
		Status:        s.Game.Status,
		Winner:        s.Game.Winner,
		CurrentPlayer: s.Game.CurrentPlayer,
		MoveCount:     s.Game.MoveCount,
	}
}

func (s *Session) markFinished() {
	if !s.Game.IsFinished() || !s.FinishedAt.IsZero() {
		return
	}
	s.FinishedAt = time.Now()
	duration := s.FinishedAt.Sub(s.CreatedAt).Round(time.Second)
	if s.Game.Status == domain.StatusWon {
		log.Printf("[GAME] Game %s won by %s after %d moves (%s)", s.GameID, s.Game.Winner, s.Game.MoveCount, duration)
		return
	}
	log.Printf("[GAME] Game %s drawn after %d moves (%s)", s.GameID, s.Game.MoveCount, duration)
}
