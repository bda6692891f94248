package cli

import (
	"errors"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"daily-planner/internal/schedule"
)

var (
	titleStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("39"))
	okStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("42"))
	warnStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("214"))
	errStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("196"))
	dimStyle   = lipgloss.NewStyle().Faint(true)
)

// userMessage renders a use-case error as the text shown to the user.
func userMessage(err error) string {
	switch {
	case errors.Is(err, schedule.ErrNoInput):
		return schedule.MessageNoInput
	case errors.Is(err, schedule.ErrScheduleLocked):
		return schedule.MessageLocked
	case errors.Is(err, schedule.ErrUnauthorized):
		return schedule.MessageWrongPass
	case errors.Is(err, schedule.ErrExternalService):
		return schedule.ErrorMessagePrefix + strings.TrimPrefix(err.Error(), schedule.ErrExternalService.Error()+": ")
	default:
		return schedule.ErrorMessagePrefix + err.Error()
	}
}

// FormatError styles err for stderr.
func FormatError(err error) string {
	return errStyle.Render(userMessage(err))
}
