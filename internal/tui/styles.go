package tui

import "github.com/charmbracelet/lipgloss"

// Color palette
var (
	yellow = lipgloss.Color("#F59E0B")
	green  = lipgloss.Color("#10B981")
	gray   = lipgloss.Color("#6B7280")
	blue   = lipgloss.Color("#3B82F6")
)

var (
	appStyle = lipgloss.NewStyle().Padding(1, 2)

	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(yellow)

	completeStyle = lipgloss.NewStyle().
			Foreground(green).
			Strikethrough(true)

	incompleteStyle = lipgloss.NewStyle().Foreground(yellow)

	cursorStyle = lipgloss.NewStyle().
			Foreground(blue).
			Bold(true)

	emptyStyle = lipgloss.NewStyle().
			Foreground(gray).
			Italic(true)
)
