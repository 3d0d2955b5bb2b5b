package tui

import "github.com/charmbracelet/lipgloss"

// Palette shared by the render styles and the huh form theme.
const (
	colorPrimary = lipgloss.Color("#7D56F4")
	colorSuccess = lipgloss.Color("#04B575")
	colorError   = lipgloss.Color("#FF0000")
	colorMuted   = lipgloss.Color("#888888")
	colorFaint   = lipgloss.Color("#666666")
)

var (
	// Title styling
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary).
			MarginBottom(1)

	// Banner styling for the interactive header
	HeaderStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FFFFFF")).
			Background(colorPrimary).
			Padding(0, 1)

	// Highlighted values such as paths and repository URLs
	SelectedStyle = lipgloss.NewStyle().
			Foreground(colorPrimary).
			Bold(true)

	// Help text styling
	HelpStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			MarginTop(1)

	// Error styling
	ErrorStyle = lipgloss.NewStyle().
			Foreground(colorError).
			Bold(true)

	// Success styling
	SuccessStyle = lipgloss.NewStyle().
			Foreground(colorSuccess).
			Bold(true)

	// Subtle text styling
	SubtleStyle = lipgloss.NewStyle().
			Foreground(colorFaint)
)
