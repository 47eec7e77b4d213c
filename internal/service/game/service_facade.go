package game

import (
	"github.com/iamasit07/connect4-agent/internal/domain"
	"github.com/iamasit07/connect4-agent/internal/service/bot"
)

// Service is the entry point for game logic (facade)
type Service struct {
	Engine *bot.Engine
}

func NewService(engine *bot.Engine) *Service {
	return &Service{
		Engine: engine,
	}
}

// NewSession starts a game whose agent plays at the named difficulty.
func (s *Service) NewSession(difficulty string, first domain.PlayerID) *Session {
	preset := bot.PresetFor(difficulty)
	depth := preset.Depth
	if ceiling := s.Engine.Options().MaxDepth; depth > ceiling {
		depth = ceiling
	}
	return NewSession(s.Engine, depth, preset.Strategy, first)
}
