package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/typetick/typetick/internal/model"
)

// Default palette, matching the reference color pairs: green text for
// correct input, black-on-red for errors, black-on-magenta for the header.
const (
	defaultCorrectColor = "#50FA7B"
	defaultPendingColor = "#8C8C8C"
	defaultErrorFg      = "#1C1C1C"
	defaultErrorBg      = "#FF4D4F"
	defaultHeaderFg     = "#1C1C1C"
	defaultHeaderBg     = "#C678DD"
	footerColor         = "#6E6E6E"
)

// Theme holds the styles used by the renderer. It is built once from the
// resolved config and passed to render functions rather than kept as
// package-level mutable state.
type Theme struct {
	Correct lipgloss.Style
	Pending lipgloss.Style
	Error   lipgloss.Style
	Cursor  lipgloss.Style
	Header  lipgloss.Style
	Footer  lipgloss.Style
}

// NewTheme builds a Theme from config colors, falling back to defaults
// for unset values.
func NewTheme(cfg model.Config) Theme {
	correct := pickColor(cfg.CorrectColor, defaultCorrectColor)
	pending := pickColor(cfg.PendingColor, defaultPendingColor)
	pendingStyle := lipgloss.NewStyle().Foreground(pending)
	return Theme{
		Correct: lipgloss.NewStyle().Foreground(correct),
		Pending: pendingStyle,
		Error: lipgloss.NewStyle().
			Foreground(pickColor(cfg.ErrorFg, defaultErrorFg)).
			Background(pickColor(cfg.ErrorBg, defaultErrorBg)),
		Cursor: pendingStyle.Underline(true),
		Header: lipgloss.NewStyle().
			Foreground(pickColor(cfg.HeaderFg, defaultHeaderFg)).
			Background(pickColor(cfg.HeaderBg, defaultHeaderBg)),
		Footer: lipgloss.NewStyle().Foreground(lipgloss.Color(footerColor)),
	}
}

func pickColor(value, fallback string) lipgloss.Color {
	if value == "" {
		return lipgloss.Color(fallback)
	}
	return lipgloss.Color(value)
}
