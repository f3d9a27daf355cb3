package main

import "github.com/charmbracelet/lipgloss"

// --- STYLES ---
var (
	accentColor = lipgloss.Color("#5A46E0")

	docStyle   = lipgloss.NewStyle().Margin(1, 2)
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#FFFDF5")).
			Background(accentColor).
			Padding(0, 1)
	helpStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("241"))

	// Board state styles
	errorStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	watchingStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("46"))
	pendingStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("220"))
	copySuccessStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("46")).Bold(true)

	// Detail view styles
	detailTitleStyle = lipgloss.NewStyle().
				Bold(true).
				Foreground(lipgloss.Color("#FAFAFA")).
				Background(accentColor).
				Padding(0, 1)
	detailAttrStyle = lipgloss.NewStyle().Bold(true)
	detailValStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("244"))
	detailPaneStyle = lipgloss.NewStyle().
			Padding(1, 2).
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accentColor)
)
