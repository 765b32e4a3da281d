package main

import (
	"flag"
	"io"
	"log"
	"log/slog"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/rocketscienceinc/tictactoe-solo/internal/config"
	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solo/internal/service"
	"github.com/rocketscienceinc/tictactoe-solo/internal/ui"
)

func main() {
	conf, err := config.LoadEnv()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	difficultyFlag := flag.String("difficulty", conf.Game.DefaultDifficulty, "easy or hard")
	markFlag := flag.String("mark", conf.Game.HumanMark, "your mark, X or O")
	delayFlag := flag.Duration("delay", conf.Game.ThinkingDelay, "pause before the computer moves")
	flag.Parse()

	difficulty, err := entity.ParseDifficulty(*difficultyFlag)
	if err != nil {
		log.Fatalf("invalid difficulty: %v", err)
	}

	humanMark, err := entity.ParseMark(*markFlag)
	if err != nil {
		log.Fatalf("invalid mark: %v", err)
	}

	// logs would corrupt the alt screen
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	bot := service.NewBotService(logger, nil)

	p := tea.NewProgram(ui.NewModel(bot, humanMark, difficulty, *delayFlag), tea.WithAltScreen())
	if _, err = p.Run(); err != nil {
		log.Fatalf("failed to run: %v", err)
	}
}
