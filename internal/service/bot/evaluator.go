package bot

import (
	"github.com/iamasit07/connect4-agent/internal/domain"
)

const (
	// Window weights. Opponent threats are deliberately weighted apart from
	// the matching own patterns; keep the pairs as they are.
	SCORE_FOUR          = 10000
	SCORE_THREE_OPEN    = 900
	SCORE_TWO_OPEN      = 40
	SCORE_OPP_THREE     = -450
	SCORE_OPP_TWO       = -20
	CENTER_PIECE_WEIGHT = 2
)

// Evaluate scores board from player's point of view by summing every
// 4-cell window plus a bonus for player's pieces in the center column.
func Evaluate(board *domain.Board, player domain.PlayerID) int {
	opponent := player.Opponent()
	score := 0

	// Windows starting above the highest occupied row are empty and worth 0.
	height := board.Height()
	for _, w := range domain.Windows {
		if w.Cells[0].Row >= height {
			continue
		}
		own, opp, empty := 0, 0, 0
		for _, p := range w.Cells {
			switch board.Cell(p.Row, p.Column) {
			case player:
				own++
			case opponent:
				opp++
			default:
				empty++
			}
		}
		score += scoreWindow(own, opp, empty)
	}

	for row := 0; row < domain.Rows; row++ {
		if board.Cell(row, domain.CenterColumn) == player {
			score += CENTER_PIECE_WEIGHT
		}
	}

	return score
}

func scoreWindow(own, opp, empty int) int {
	switch {
	case own == 4:
		return SCORE_FOUR
	case own == 3 && empty == 1:
		return SCORE_THREE_OPEN
	case own == 2 && empty == 2:
		return SCORE_TWO_OPEN
	case opp == 3 && empty == 1:
		return SCORE_OPP_THREE
	case opp == 2 && empty == 2:
		return SCORE_OPP_TWO
	}
	return 0
}
