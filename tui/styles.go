package tui

import "github.com/charmbracelet/lipgloss"

var (
	colorAccent = lipgloss.Color("#20B9B4")
	colorError  = lipgloss.Color("#E74C3C")
	colorWarn   = lipgloss.Color("#F4D03F")
	colorMuted  = lipgloss.Color("#6C7A80")
)

var (
	styleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	styleLabel = lipgloss.NewStyle().Width(22)
	styleFocus = lipgloss.NewStyle().Bold(true).Foreground(colorAccent)
	styleError = lipgloss.NewStyle().Foreground(colorError)
	styleWarn  = lipgloss.NewStyle().Foreground(colorWarn)
	styleMuted = lipgloss.NewStyle().Foreground(colorMuted)
	styleValue = lipgloss.NewStyle().Bold(true)

	styleResultBox = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorAccent).
			Padding(0, 1)
)
