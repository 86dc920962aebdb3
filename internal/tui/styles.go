package tui

import "github.com/charmbracelet/lipgloss"

type styles struct {
	Title     lipgloss.Style
	Subtle    lipgloss.Style
	Error     lipgloss.Style
	Card      lipgloss.Style
	CardBack  lipgloss.Style
	Option    lipgloss.Style
	Correct   lipgloss.Style
	Wrong     lipgloss.Style
	TutorYou  lipgloss.Style
	TutorBot  lipgloss.Style
	MapRoot   lipgloss.Style
	MapBranch lipgloss.Style
	MapSub    lipgloss.Style
	MapDetail lipgloss.Style
	Help      lipgloss.Style
}

func newStyles() styles {
	return styles{
		Title:     lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		Subtle:    lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Error:     lipgloss.NewStyle().Foreground(lipgloss.Color("196")),
		Card:      lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(1, 3).Width(64),
		CardBack:  lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("99")).Padding(1, 3).Width(64),
		Option:    lipgloss.NewStyle().PaddingLeft(2),
		Correct:   lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("42")).Bold(true),
		Wrong:     lipgloss.NewStyle().PaddingLeft(2).Foreground(lipgloss.Color("196")),
		TutorYou:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("75")),
		TutorBot:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		MapRoot:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("99")),
		MapBranch: lipgloss.NewStyle().Foreground(lipgloss.Color("75")),
		MapSub:    lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		MapDetail: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
		Help:      lipgloss.NewStyle().Foreground(lipgloss.Color("241")).MarginTop(1),
	}
}
