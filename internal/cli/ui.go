package cli

import "github.com/charmbracelet/lipgloss"

var (
	colorCyan = lipgloss.Color("36")  // Teal - headings
	colorDim  = lipgloss.Color("240") // Dim gray - muted text
)

var (
	// StyleTitle for help headings.
	StyleTitle = lipgloss.NewStyle().Bold(true).Foreground(colorCyan)

	// StyleDim for secondary text.
	StyleDim = lipgloss.NewStyle().Foreground(colorDim)
)
