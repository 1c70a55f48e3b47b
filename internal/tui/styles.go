package tui

import "github.com/charmbracelet/lipgloss"

// Color palette.
var (
	salmonPink = lipgloss.Color("#FFB3BA")
	mintGreen  = lipgloss.Color("#A8E6CF")
	mutedGray  = lipgloss.Color("#6B7280")
	darkText   = lipgloss.Color("#3C3C3C")
	amber      = lipgloss.Color("#F2C94C")
)

var (
	titleStyle = lipgloss.NewStyle().
			Foreground(salmonPink).
			Bold(true)

	wordStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(darkText).
			Background(lipgloss.Color("#FFFFFF")).
			Padding(0, 2)

	phoneticStyle = lipgloss.NewStyle().
			Foreground(mutedGray)

	meaningStyle = lipgloss.NewStyle().
			Width(48)

	levelStyle = lipgloss.NewStyle().
			Foreground(amber)

	statusStyle = lipgloss.NewStyle().
			Foreground(mintGreen)

	errorStyle = lipgloss.NewStyle().
			Foreground(salmonPink)

	tallyStyle = lipgloss.NewStyle().
			Foreground(mutedGray).
			Italic(true)

	cardStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(salmonPink).
			Padding(1, 3).
			Width(56)
)
