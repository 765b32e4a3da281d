package ui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
	"github.com/rocketscienceinc/tictactoe-solo/internal/pkg"
	"github.com/rocketscienceinc/tictactoe-solo/internal/service"
	"github.com/rocketscienceinc/tictactoe-solo/internal/tictactoe"
)

const (
	boardSide   = 3
	startCursor = 4
)

// computerTurnMsg - fires after the thinking delay. round ties it to the game it was scheduled for.
type computerTurnMsg struct {
	round int
}

// Model - a local game against the computer, held in memory.
type Model struct {
	bot  service.BotService
	keys keyMap
	help help.Model

	humanMark     entity.Mark
	thinkingDelay time.Duration

	session entity.Session
	cursor  int
	round   int
	err     error
}

func NewModel(bot service.BotService, humanMark entity.Mark, difficulty entity.Difficulty, thinkingDelay time.Duration) Model {
	return Model{
		bot:  bot,
		keys: defaultKeyMap(),
		help: help.New(),

		humanMark:     humanMark,
		thinkingDelay: thinkingDelay,

		session: tictactoe.NewSession(pkg.GenerateGameID(), humanMark, difficulty),
		cursor:  startCursor,
	}
}

// Session - the game as currently shown.
func (that Model) Session() entity.Session {
	return that.session
}

// Init - lets the computer open when it plays X.
func (that Model) Init() tea.Cmd {
	return that.scheduleComputerTurn()
}

func (that Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return that.handleKey(msg)
	case computerTurnMsg:
		return that.handleComputerTurn(msg)
	case tea.WindowSizeMsg:
		that.help.Width = msg.Width
	}

	return that, nil
}

func (that Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, that.keys.Quit):
		return that, tea.Quit
	case key.Matches(msg, that.keys.Reset):
		that.reset()
		return that, that.scheduleComputerTurn()
	case key.Matches(msg, that.keys.Difficulty):
		that.session.Difficulty = that.session.Difficulty.Toggle()
	case key.Matches(msg, that.keys.Up):
		if that.cursor >= boardSide {
			that.cursor -= boardSide
		}
	case key.Matches(msg, that.keys.Down):
		if that.cursor < entity.BoardSize-boardSide {
			that.cursor += boardSide
		}
	case key.Matches(msg, that.keys.Left):
		if that.cursor%boardSide > 0 {
			that.cursor--
		}
	case key.Matches(msg, that.keys.Right):
		if that.cursor%boardSide < boardSide-1 {
			that.cursor++
		}
	case key.Matches(msg, that.keys.Place):
		return that.place(that.cursor)
	case key.Matches(msg, that.keys.Cell):
		that.cursor = int(msg.String()[0] - '1')
		return that.place(that.cursor)
	}

	return that, nil
}

// place - ignored unless it is the human's turn, so keys pressed while the computer thinks do nothing.
func (that Model) place(cell int) (tea.Model, tea.Cmd) {
	if !that.session.IsHumanTurn() {
		return that, nil
	}

	next, err := tictactoe.ApplyMove(that.session, cell)
	if err != nil {
		that.err = err
		return that, nil
	}

	that.err = nil
	that.session = next

	return that, that.scheduleComputerTurn()
}

func (that Model) handleComputerTurn(msg computerTurnMsg) (tea.Model, tea.Cmd) {
	if msg.round != that.round || !that.session.IsComputerTurn() {
		return that, nil
	}

	next, err := that.bot.MakeTurn(that.session)
	if err != nil {
		that.err = err
		return that, nil
	}

	that.session = next

	return that, nil
}

func (that *Model) reset() {
	that.round++
	that.err = nil
	that.cursor = startCursor
	that.session = tictactoe.NewSession(that.session.ID, that.humanMark, that.session.Difficulty)
}

func (that Model) scheduleComputerTurn() tea.Cmd {
	if !that.session.IsComputerTurn() {
		return nil
	}

	round := that.round
	if that.thinkingDelay <= 0 {
		return func() tea.Msg {
			return computerTurnMsg{round: round}
		}
	}

	return tea.Tick(that.thinkingDelay, func(time.Time) tea.Msg {
		return computerTurnMsg{round: round}
	})
}
