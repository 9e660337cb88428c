package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme contains the visual styles shared by the viewer, picker and history.
type Theme struct {
	// Side panel
	PanelBorder lipgloss.Style
	PanelTitle  lipgloss.Style
	Label       lipgloss.Style
	Value       lipgloss.Style
	Dim         lipgloss.Style
	Selected    lipgloss.Style

	// Search outcome
	Found    lipgloss.Style
	NotFound lipgloss.Style
	Error    lipgloss.Style

	// Bottom bar
	Status lipgloss.Style
	Help   lipgloss.Style

	// Scenario picker
	MenuTitle       lipgloss.Style
	MenuItemNormal  lipgloss.Style
	MenuItemActive  lipgloss.Style
	MenuDescription lipgloss.Style
}

// DefaultTheme returns the default visual theme.
func DefaultTheme() Theme {
	return Theme{
		PanelBorder: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")).
			Padding(0, 1),
		PanelTitle: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")),
		Label:      lipgloss.NewStyle().Foreground(lipgloss.Color("245")),
		Value:      lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		Dim:        lipgloss.NewStyle().Foreground(lipgloss.Color("241")).Italic(true),
		Selected:   lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("11")),

		Found:    lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("46")),  // Lime green
		NotFound: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("203")), // Soft red
		Error:    lipgloss.NewStyle().Foreground(lipgloss.Color("196")),

		Status: lipgloss.NewStyle().Foreground(lipgloss.Color("51")),
		Help:   lipgloss.NewStyle().Foreground(lipgloss.Color("241")),

		MenuTitle:       lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).MarginBottom(1),
		MenuItemNormal:  lipgloss.NewStyle().Foreground(lipgloss.Color("252")),
		MenuItemActive:  lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("229")).Background(lipgloss.Color("57")),
		MenuDescription: lipgloss.NewStyle().Foreground(lipgloss.Color("241")),
	}
}
