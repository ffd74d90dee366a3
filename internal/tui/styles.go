package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/MKhiriev/go-sol-vault/models"
)

var (
	appStyle      = lipgloss.NewStyle().Padding(1, 2)
	titleStyle    = lipgloss.NewStyle().Bold(true)
	helpStyle     = lipgloss.NewStyle().Faint(true)
	selectedStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("14"))
	errorStyle    = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("9"))
	successStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("10"))
	warningStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("11"))
	infoStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("12"))
	toastBoxStyle = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

func levelStyle(level models.NotificationLevel) lipgloss.Style {
	switch level {
	case models.LevelSuccess:
		return successStyle
	case models.LevelWarning:
		return warningStyle
	case models.LevelError:
		return errorStyle
	default:
		return infoStyle
	}
}
