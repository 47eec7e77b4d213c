package domain

var BotNames = map[string]string{
	"easy":   "Alice",
	"medium": "Bob",
	"hard":   "Charles",
}

func GetBotName(difficulty string) string {
	if name, ok := BotNames[difficulty]; ok {
		return name
	}
	return "BOT"
}

// PlayerID is the owner of a cell. Empty doubles as "nobody".
type PlayerID int

const (
	Empty  PlayerID = 0
	Player PlayerID = 1
	AI     PlayerID = 2
)

// Opponent returns the other side. Empty has no opponent.
func (p PlayerID) Opponent() PlayerID {
	switch p {
	case Player:
		return AI
	case AI:
		return Player
	}
	return Empty
}

func (p PlayerID) String() string {
	switch p {
	case Player:
		return "player"
	case AI:
		return "ai"
	}
	return "empty"
}

const (
	Rows         = 6
	Columns      = 7
	ToWin        = 4
	CenterColumn = Columns / 2
)

// to represent the game status
type GameStatus string

const (
	StatusActive GameStatus = "active"
	StatusWon    GameStatus = "won"
	StatusDraw   GameStatus = "draw"
)

// basic error that can occur
type Error string

func (e Error) Error() string {
	return string(e)
}

const (
	ErrInvalidColumn       Error = "invalid column"
	ErrInvalidBoard        Error = "invalid board"
	ErrGameFinished        Error = "game is finished"
	ErrNotYourTurn         Error = "not your turn"
	ErrNoLegalMoves        Error = "no legal moves"
	ErrInvalidDepth        Error = "search depth must be at least one ply"
	ErrDepthCutoffTooLarge Error = "search depth exceeds the configured ceiling"
)
