package tui

import (
	huh "github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

// NewHuhTheme builds the form theme matching the render styles above.
func NewHuhTheme() *huh.Theme {
	theme := huh.ThemeBase()

	theme.Focused.Base = theme.Focused.Base.BorderForeground(colorPrimary)
	theme.Focused.Title = theme.Focused.Title.Foreground(colorPrimary).Bold(true)
	theme.Focused.Description = theme.Focused.Description.Foreground(colorMuted)
	theme.Focused.ErrorIndicator = theme.Focused.ErrorIndicator.Foreground(colorError)
	theme.Focused.ErrorMessage = theme.Focused.ErrorMessage.Foreground(colorError)
	theme.Focused.SelectSelector = theme.Focused.SelectSelector.Foreground(colorPrimary)
	theme.Focused.MultiSelectSelector = theme.Focused.MultiSelectSelector.Foreground(colorPrimary)
	theme.Focused.SelectedOption = theme.Focused.SelectedOption.Foreground(colorSuccess)
	theme.Focused.SelectedPrefix = theme.Focused.SelectedPrefix.Foreground(colorSuccess)
	theme.Focused.UnselectedPrefix = theme.Focused.UnselectedPrefix.Foreground(colorMuted)
	theme.Focused.FocusedButton = theme.Focused.FocusedButton.
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(colorPrimary)
	theme.Focused.BlurredButton = theme.Focused.BlurredButton.
		Foreground(lipgloss.Color("#FFFFFF")).
		Background(colorFaint)
	theme.Focused.TextInput.Cursor = theme.Focused.TextInput.Cursor.Foreground(colorSuccess)
	theme.Focused.TextInput.Placeholder = theme.Focused.TextInput.Placeholder.Foreground(colorFaint)
	theme.Focused.TextInput.Prompt = theme.Focused.TextInput.Prompt.Foreground(colorPrimary)

	theme.Blurred = theme.Focused
	theme.Blurred.Base = theme.Blurred.Base.BorderStyle(lipgloss.HiddenBorder())
	theme.Blurred.Title = theme.Blurred.Title.Foreground(colorMuted).Bold(false)

	theme.Help.ShortKey = theme.Help.ShortKey.Foreground(colorMuted)
	theme.Help.ShortDesc = theme.Help.ShortDesc.Foreground(colorFaint)

	return theme
}
