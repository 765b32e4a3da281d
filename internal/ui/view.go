package ui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rocketscienceinc/tictactoe-solo/internal/entity"
)

func (that Model) View() string {
	sections := []string{
		titleStyle.Render("Tic-Tac-Toe"),
		boxStyle.Render(that.renderBoard()),
		statusStyle.Render(that.session.Message()),
		infoStyle.Render(fmt.Sprintf("You: %s  AI: %s  Difficulty: %s",
			that.session.HumanMark, that.session.ComputerMark(), that.session.Difficulty)),
	}

	if that.err != nil {
		sections = append(sections, errorStyle.Render(that.err.Error()))
	}

	sections = append(sections, that.help.View(that.keys))

	return docStyle.Render(lipgloss.JoinVertical(lipgloss.Left, sections...))
}

func (that Model) renderBoard() string {
	divider := dividerStyle.Render(strings.Repeat("─", cellStyle.GetWidth()) + "┼" +
		strings.Repeat("─", cellStyle.GetWidth()) + "┼" + strings.Repeat("─", cellStyle.GetWidth()))

	rows := make([]string, 0, 2*boardSide-1)
	for row := 0; row < boardSide; row++ {
		cells := make([]string, 0, boardSide)
		for col := 0; col < boardSide; col++ {
			cells = append(cells, that.renderCell(row*boardSide+col))
		}

		if row > 0 {
			rows = append(rows, divider)
		}
		rows = append(rows, strings.Join(cells, dividerStyle.Render("│")))
	}

	return lipgloss.JoinVertical(lipgloss.Left, rows...)
}

func (that Model) renderCell(cell int) string {
	var mark string

	switch that.session.Board[cell] {
	case entity.PlayerX:
		mark = xStyle.Render(string(entity.PlayerX))
	case entity.PlayerO:
		mark = oStyle.Render(string(entity.PlayerO))
	default:
		mark = emptyStyle.Render(strconv.Itoa(cell + 1))
	}

	if cell == that.cursor && that.session.IsHumanTurn() {
		return cursorStyle.Render(mark)
	}

	return cellStyle.Render(mark)
}
