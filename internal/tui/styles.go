package tui

import "github.com/charmbracelet/lipgloss"

var (
	inkColor    = lipgloss.Color("#ffffff")
	mutedColor  = lipgloss.Color("#71717a")
	dimColor    = lipgloss.Color("#52525b")
	borderColor = lipgloss.Color("#27272a")
	errorColor  = lipgloss.Color("#ef4444")
	okColor     = lipgloss.Color("#22c55e")

	brandStyle        = lipgloss.NewStyle().Bold(true).Foreground(inkColor)
	helperStyle       = lipgloss.NewStyle().Foreground(mutedColor)
	badgeStyle        = lipgloss.NewStyle().Foreground(lipgloss.Color("#a1a1aa")).Border(lipgloss.RoundedBorder()).BorderForeground(borderColor).Padding(0, 1)
	headlineStyle     = lipgloss.NewStyle().Bold(true).Foreground(inkColor)
	sublineStyle      = lipgloss.NewStyle().Bold(true).Foreground(mutedColor)
	taglineStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#a1a1aa"))
	inputBoxStyle     = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderColor).Padding(0, 1)
	submitButtonStyle = lipgloss.NewStyle().Foreground(inkColor).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#3f3f46")).Align(lipgloss.Center)
	spinnerStyle      = lipgloss.NewStyle().Foreground(inkColor)
	errorBadgeStyle   = lipgloss.NewStyle().Foreground(errorColor).Border(lipgloss.NormalBorder()).BorderForeground(lipgloss.Color("#7f1d1d")).Padding(0, 1)

	resultCardStyle    = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderColor).Padding(1, 2)
	resultHeadingStyle = lipgloss.NewStyle().Foreground(mutedColor)
	resultActiveStyle  = lipgloss.NewStyle().Foreground(okColor)
	originalLabelStyle = lipgloss.NewStyle().Foreground(mutedColor)
	originalURLStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#d4d4d8"))
	shortURLStyle      = lipgloss.NewStyle().Bold(true).Foreground(inkColor).Border(lipgloss.RoundedBorder()).BorderForeground(lipgloss.Color("#3f3f46")).Padding(0, 2)
	copyButtonStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#000000")).Background(inkColor).Padding(0, 2)
	copiedButtonStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#000000")).Background(okColor).Padding(0, 2)

	featureStyle      = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).BorderForeground(borderColor).Foreground(dimColor).Align(lipgloss.Center).Margin(0, 1, 0, 0)
	featureTitleStyle = lipgloss.NewStyle().Bold(true).Foreground(inkColor)
)
