package table

import "github.com/charmbracelet/lipgloss"

// Style controls grid rendering in the Model.
type Style struct {
	Text        lipgloss.Style
	Placeholder lipgloss.Style

	Header  lipgloss.Style
	Cell    lipgloss.Style
	Focused lipgloss.Style

	Border lipgloss.Style
}

func DefaultStyle() Style {
	return Style{
		Text:        lipgloss.NewStyle(),
		Placeholder: lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
		Header:      lipgloss.NewStyle().Bold(true),
		Cell:        lipgloss.NewStyle(),
		Focused:     lipgloss.NewStyle().Reverse(true),
		Border:      lipgloss.NewStyle().Foreground(lipgloss.Color("240")),
	}
}
