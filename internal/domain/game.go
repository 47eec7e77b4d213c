package domain

// Game holds the single authoritative board of an interactive match. Moves
// mutate Board in place.
type Game struct {
	Board         *Board
	CurrentPlayer PlayerID
	Status        GameStatus
	Winner        PlayerID
	MoveCount     int
}

func NewGame(first PlayerID) *Game {
	if first != AI {
		first = Player
	}
	return &Game{
		Board:         NewBoard(),
		CurrentPlayer: first,
		Status:        StatusActive,
		Winner:        Empty,
	}
}

// MakeMove drops a piece for player and advances the turn. A full or
// out-of-range column returns ErrInvalidColumn and leaves the game as it was.
func (g *Game) MakeMove(player PlayerID, column int) (int, error) {
	if g.IsFinished() {
		return -1, ErrGameFinished
	}

	if g.CurrentPlayer != player {
		return -1, ErrNotYourTurn
	}

	row, ok := g.Board.Drop(column, player)
	if !ok {
		return -1, ErrInvalidColumn
	}

	g.MoveCount++

	if CheckWin(g.Board, row, column, player) {
		g.Status = StatusWon
		g.Winner = player
		return row, nil
	}

	if g.Board.IsFull() {
		g.Status = StatusDraw
		g.Winner = Winner(g.Board)
		return row, nil
	}

	g.CurrentPlayer = player.Opponent()
	return row, nil
}

func (g *Game) IsFinished() bool {
	return g.Status == StatusWon || g.Status == StatusDraw
}
