package http

import (
	"context"
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/iamasit07/connect4-agent/internal/domain"
	"github.com/iamasit07/connect4-agent/internal/service/bot"
)

// MoveChooser is the engine surface the handler needs.
type MoveChooser interface {
	ChooseMove(ctx context.Context, board *domain.Board, depth int, strategy bot.Strategy) (bot.SearchResult, error)
}

// MoveHandler exposes the two core operations over HTTP without keeping any
// game state: boards travel in every request.
type MoveHandler struct {
	Engine          MoveChooser
	DefaultDepth    int
	DefaultStrategy bot.Strategy
}

func NewMoveHandler(engine MoveChooser, depth int, strategy bot.Strategy) *MoveHandler {
	return &MoveHandler{Engine: engine, DefaultDepth: depth, DefaultStrategy: strategy}
}

type moveRequest struct {
	Board      [][]int `json:"board" binding:"required"`
	Depth      int     `json:"depth"`
	Strategy   string  `json:"strategy"`
	Difficulty string  `json:"difficulty"`
}

type moveResponse struct {
	Column   int    `json:"column"`
	Row      int    `json:"row"`
	Value    int    `json:"value"`
	Depth    int    `json:"depth"`
	Strategy string `json:"strategy"`
	Visited  int    `json:"visited"`
	Aborted  bool   `json:"aborted"`
	Cached   bool   `json:"cached"`
}

// ChooseMove answers POST /api/move with the agent's column for the board.
func (h *MoveHandler) ChooseMove(c *gin.Context) {
	var req moveRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	board, err := domain.FromCells(req.Board)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	depth, strategy := h.DefaultDepth, h.DefaultStrategy
	if req.Difficulty != "" {
		preset := bot.PresetFor(req.Difficulty)
		depth, strategy = preset.Depth, preset.Strategy
	}
	if req.Depth != 0 {
		depth = req.Depth
	}
	if req.Strategy != "" {
		strategy, err = bot.ParseStrategy(req.Strategy)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	res, err := h.Engine.ChooseMove(c.Request.Context(), board, depth, strategy)
	if err != nil {
		c.JSON(statusFor(err), gin.H{"error": err.Error()})
		return
	}

	row, _ := board.LandingRow(res.Column)
	c.JSON(http.StatusOK, moveResponse{
		Column:   res.Column,
		Row:      row,
		Value:    res.Value,
		Depth:    depth,
		Strategy: strategy.String(),
		Visited:  res.Visited,
		Aborted:  res.Aborted,
		Cached:   res.Cached,
	})
}

type dropRequest struct {
	Board  [][]int `json:"board" binding:"required"`
	Column *int    `json:"column" binding:"required"`
	Player int     `json:"player"`
}

type dropResponse struct {
	Board  [][]int `json:"board"`
	Row    int     `json:"row"`
	OK     bool    `json:"ok"`
	Winner int     `json:"winner"`
	Full   bool    `json:"full"`
}

// Drop answers POST /api/drop. ok=false means the column cannot take a
// piece and the caller should pick another one.
func (h *MoveHandler) Drop(c *gin.Context) {
	var req dropRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid input"})
		return
	}

	board, err := domain.FromCells(req.Board)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	player := domain.PlayerID(req.Player)
	if player == domain.Empty {
		player = domain.Player
	}
	if player != domain.Player && player != domain.AI {
		c.JSON(http.StatusBadRequest, gin.H{"error": "player must be 1 or 2"})
		return
	}

	row, ok := board.Drop(*req.Column, player)
	winner := domain.Empty
	if ok && domain.CheckWin(board, row, *req.Column, player) {
		winner = player
	}

	c.JSON(http.StatusOK, dropResponse{
		Board:  board.Cells(),
		Row:    row,
		OK:     ok,
		Winner: int(winner),
		Full:   board.IsFull(),
	})
}

func Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"status": "ok"})
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, domain.ErrNoLegalMoves):
		return http.StatusConflict
	case errors.Is(err, domain.ErrInvalidDepth), errors.Is(err, domain.ErrDepthCutoffTooLarge):
		return http.StatusBadRequest
	}
	return http.StatusInternalServerError
}
