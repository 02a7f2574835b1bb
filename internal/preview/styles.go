package preview

import (
	"github.com/charmbracelet/lipgloss"
)

var (
	primaryColor = lipgloss.Color("99")  // Purple
	accentColor  = lipgloss.Color("39")  // Blue
	ctaColor     = lipgloss.Color("208") // Orange
	mutedColor   = lipgloss.Color("245") // Gray

	frameStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(mutedColor)

	blockStyle = lipgloss.NewStyle().
			PaddingLeft(1).
			PaddingRight(1).
			BorderStyle(lipgloss.NormalBorder()).
			BorderBottom(true).
			BorderForeground(mutedColor)

	emptyStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Align(lipgloss.Center).
			PaddingTop(3).
			PaddingBottom(3)

	badgeStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			Italic(true)

	labelStyle = lipgloss.NewStyle().Bold(true)

	heroStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor)

	accentStyle = lipgloss.NewStyle().Foreground(accentColor)

	ctaStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ctaColor)

	mutedStyle = lipgloss.NewStyle().Foreground(mutedColor)

	footerStyle = lipgloss.NewStyle().
			Foreground(mutedColor).
			MarginTop(1)
)
