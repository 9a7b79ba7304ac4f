package display

import "github.com/charmbracelet/lipgloss"

// Soft palette shared by every screen.
var (
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bbf7d0")).
			Bold(true)

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#a1a1aa"))

	focusedLabelStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#bae6fd"))

	valueStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d4d4d8"))

	hintStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#71717a"))

	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fca5a5"))

	statusStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fde68a"))

	selectorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bae6fd"))

	cursorRowStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bbf7d0"))

	headerBarStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#27272a")).
			Foreground(lipgloss.Color("#a1a1aa"))
)
