package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/iamasit07/connect4-agent/internal/config"
	"github.com/iamasit07/connect4-agent/internal/domain"
	"github.com/iamasit07/connect4-agent/internal/repository/redis"
	"github.com/iamasit07/connect4-agent/internal/service/bot"
	"github.com/iamasit07/connect4-agent/internal/service/game"
	"github.com/joho/godotenv"
)

type agentMoveMsg struct {
	column int
	row    int
	err    error
}

type model struct {
	session  *game.Session
	botName  string
	cursor   int
	thinking bool
	status   string
}

func agentMoveCmd(s *game.Session) tea.Cmd {
	return func() tea.Msg {
		col, row, err := s.AgentMove(context.Background())
		return agentMoveMsg{column: col, row: row, err: err}
	}
}

func (m model) Init() tea.Cmd {
	if m.thinking {
		return agentMoveCmd(m.session)
	}
	return nil
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		key := msg.String()
		if key == "q" || key == "ctrl+c" {
			return m, tea.Quit
		}
		if m.thinking || m.session.State().Status != domain.StatusActive {
			return m, nil
		}
		switch key {
		case "left", "h":
			if m.cursor > 0 {
				m.cursor--
			}
		case "right", "l":
			if m.cursor < domain.Columns-1 {
				m.cursor++
			}
		case "enter", " ":
			return m.drop()
		case "1", "2", "3", "4", "5", "6", "7":
			m.cursor = int(key[0] - '1')
			return m.drop()
		}
	case agentMoveMsg:
		m.thinking = false
		if msg.err != nil {
			m.status = fmt.Sprintf("%s could not move: %v", m.botName, msg.err)
			return m, nil
		}
		m.status = fmt.Sprintf("%s played column %d.", m.botName, msg.column+1)
		m.status += m.outcome()
	}
	return m, nil
}

func (m model) drop() (tea.Model, tea.Cmd) {
	if _, ok := m.session.ApplyHumanMove(m.cursor); !ok {
		m.status = fmt.Sprintf("Column %d is full, pick another.", m.cursor+1)
		return m, nil
	}
	if out := m.outcome(); out != "" {
		m.status = strings.TrimSpace(out)
		return m, nil
	}
	m.thinking = true
	m.status = fmt.Sprintf("%s is thinking...", m.botName)
	return m, agentMoveCmd(m.session)
}

func (m model) outcome() string {
	st := m.session.State()
	switch st.Status {
	case domain.StatusWon:
		if st.Winner == domain.Player {
			return " You win!"
		}
		return fmt.Sprintf(" %s wins.", m.botName)
	case domain.StatusDraw:
		return " It's a draw."
	}
	return ""
}

func (m model) View() string {
	st := m.session.State()

	var b strings.Builder
	b.WriteString(fmt.Sprintf("Connect Four vs %s\n\n", m.botName))
	b.WriteString(" ")
	for c := 0; c < domain.Columns; c++ {
		if c == m.cursor && !m.thinking && st.Status == domain.StatusActive {
			b.WriteString("v ")
		} else {
			b.WriteString("  ")
		}
	}
	b.WriteString("\n")
	for row := domain.Rows - 1; row >= 0; row-- {
		b.WriteString("|")
		for c := 0; c < domain.Columns; c++ {
			switch st.Board.Cell(row, c) {
			case domain.Player:
				b.WriteString("X|")
			case domain.AI:
				b.WriteString("O|")
			default:
				b.WriteString(" |")
			}
		}
		b.WriteString("\n")
	}
	b.WriteString(" 1 2 3 4 5 6 7\n\n")

	if m.status != "" {
		b.WriteString(m.status + "\n")
	}
	if st.LastResult != nil {
		b.WriteString(fmt.Sprintf("last search: %s depth %d, value %d, %d nodes\n",
			st.LastResult.Strategy, st.LastResult.Depth, st.LastResult.Value, st.LastResult.Visited))
	}
	b.WriteString("\n←/→ move  enter drop  1-7 drop in column  q quit\n")
	return b.String()
}

func main() {
	difficulty := flag.String("difficulty", "", "easy, medium or hard (overrides -depth and -strategy)")
	depth := flag.Int("depth", 0, "search depth in plies (defaults to SEARCH_DEPTH)")
	strategyName := flag.String("strategy", "", "minimax or alphabeta (defaults to SEARCH_STRATEGY)")
	aiFirst := flag.Bool("ai-first", false, "let the agent make the opening move")
	logFile := flag.String("log", "", "write logs to this file")
	flag.Parse()

	_ = godotenv.Load()
	cfg := config.LoadConfig()

	if *logFile != "" {
		f, err := tea.LogToFile(*logFile, "play")
		if err != nil {
			fmt.Fprintln(os.Stderr, "could not open log file:", err)
			os.Exit(1)
		}
		defer f.Close()
	} else {
		log.SetOutput(io.Discard)
	}

	opts, strategy, err := bot.OptionsFromConfig(cfg)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	var cache bot.CacheRepository
	if client, _ := redis.InitRedis(cfg.RedisURL, cfg.RedisPassword); client != nil {
		moveCache := redis.NewMoveCache(client)
		defer moveCache.Close()
		cache = moveCache
	}
	engine := bot.NewEngine(opts, cache)

	first := domain.Player
	if *aiFirst {
		first = domain.AI
	}

	var session *game.Session
	name := cfg.BotDifficulty
	if *difficulty != "" || (*depth == 0 && *strategyName == "") {
		if *difficulty != "" {
			name = *difficulty
		}
		session = game.NewService(engine).NewSession(name, first)
	} else {
		name = "custom"
		d := cfg.SearchDepth
		if *depth != 0 {
			d = *depth
		}
		if *strategyName != "" {
			if strategy, err = bot.ParseStrategy(*strategyName); err != nil {
				fmt.Fprintln(os.Stderr, err)
				os.Exit(1)
			}
		}
		session = game.NewSession(engine, d, strategy, first)
	}

	m := model{
		session:  session,
		botName:  domain.GetBotName(name),
		cursor:   domain.CenterColumn,
		thinking: first == domain.AI,
	}
	if m.thinking {
		m.status = fmt.Sprintf("%s is thinking...", m.botName)
	}

	if _, err := tea.NewProgram(m).Run(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}
