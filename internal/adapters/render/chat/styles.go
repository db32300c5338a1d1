package chat

import "github.com/charmbracelet/lipgloss"

type styles struct {
	banner lipgloss.Style
	prompt lipgloss.Style
	bot    lipgloss.Style
	reply  lipgloss.Style
}

func newStyles() styles {
	return styles{
		banner: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39")),
		prompt: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("245")),
		bot:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("69")),
		reply:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
	}
}
