package tui

import "github.com/charmbracelet/lipgloss"

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("212"))

	statStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("245"))

	livesStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("203"))

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("99"))

	categoryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Italic(true)

	promptStyle = lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62"))

	choiceStyle = lipgloss.NewStyle().
			PaddingLeft(2)

	selectedChoiceStyle = lipgloss.NewStyle().
				PaddingLeft(0).
				Bold(true).
				Foreground(lipgloss.Color("212"))

	correctStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("42"))

	wrongStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("203"))

	revealStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("220"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("238"))

	gameOverStyle = lipgloss.NewStyle().
			Bold(true).
			Padding(1, 3).
			Border(lipgloss.DoubleBorder()).
			BorderForeground(lipgloss.Color("212"))
)
