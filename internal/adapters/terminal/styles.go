package terminal

import (
	"github.com/charmbracelet/lipgloss"
	"uvdash.app/internal/core/uv"
)

var (
	colorPrimary = lipgloss.Color("#00BFFF")
	colorMuted   = lipgloss.Color("#6C757D")
	colorBorder  = lipgloss.Color("#4A90E2")
	colorNotice  = lipgloss.Color("#FFD93D")
	colorError   = lipgloss.Color("#FF6B6B")

	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(colorPrimary)

	paneStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(colorBorder).
			Padding(1, 2)

	labelStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Bold(true)

	mutedStyle = lipgloss.NewStyle().
			Foreground(colorMuted)

	noticeStyle = lipgloss.NewStyle().
			Foreground(colorNotice).
			Italic(true)

	errorStyle = lipgloss.NewStyle().
			Foreground(colorError)

	footerStyle = lipgloss.NewStyle().
			Foreground(colorMuted).
			Faint(true)
)

// severityStyle colours text with the WHO colour of the severity
func severityStyle(s uv.Severity) lipgloss.Style {
	return lipgloss.NewStyle().
		Foreground(lipgloss.Color(s.Color())).
		Bold(true)
}
