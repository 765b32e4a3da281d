package ui

import "github.com/charmbracelet/lipgloss"

var (
	docStyle     = lipgloss.NewStyle().Margin(1, 2)
	titleStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("228")).Bold(true)
	cellStyle    = lipgloss.NewStyle().Width(5).Align(lipgloss.Center)
	cursorStyle  = cellStyle.Reverse(true)
	xStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF5F87")).Bold(true)
	oStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#5FAFFF")).Bold(true)
	emptyStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
	boxStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
	statusStyle  = lipgloss.NewStyle().MarginTop(1).Bold(true)
	infoStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("245"))
	errorStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("9"))
	dividerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("240"))
)
