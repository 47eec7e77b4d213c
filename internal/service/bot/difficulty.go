package bot

type BotDifficulty string

const (
	DifficultyEasy   BotDifficulty = "easy"
	DifficultyMedium BotDifficulty = "medium"
	DifficultyHard   BotDifficulty = "hard"
)

// ParseDifficulty validates and returns the bot difficulty
// Defaults to Medium if invalid or empty
func ParseDifficulty(difficulty string) BotDifficulty {
	switch difficulty {
	case "easy":
		return DifficultyEasy
	case "medium":
		return DifficultyMedium
	case "hard":
		return DifficultyHard
	default:
		return DifficultyMedium
	}
}

// Preset is the search budget behind a difficulty.
type Preset struct {
	Depth    int
	Strategy Strategy
}

var Difficulties = map[BotDifficulty]Preset{
	DifficultyEasy:   {Depth: 1, Strategy: Minimax},
	DifficultyMedium: {Depth: 3, Strategy: AlphaBeta},
	DifficultyHard:   {Depth: 4, Strategy: AlphaBeta},
}

func PresetFor(difficulty string) Preset {
	return Difficulties[ParseDifficulty(difficulty)]
}
