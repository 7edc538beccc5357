package report

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"chart-interpreter/internal/strength"
)

// styler decorates the highlighted parts of a text report.
type styler interface {
	title(s string) string
	tier(t strength.Tier) string
	severity(label string) string
}

// severityWidth pads severity labels so diagnostics line up.
const severityWidth = 7

type plainStyler struct{}

func (plainStyler) title(s string) string { return s }

func (plainStyler) tier(t strength.Tier) string { return string(t) }

func (plainStyler) severity(label string) string {
	return fmt.Sprintf("%-*s", severityWidth, label)
}

var (
	colorStrong  = lipgloss.Color("#2CD7C7")
	colorWarning = lipgloss.Color("#F4D03F")
	colorError   = lipgloss.Color("#E74C3C")
	colorMuted   = lipgloss.Color("#5F7D87")

	titleStyle = lipgloss.NewStyle().Bold(true)

	tierStyles = map[strength.Tier]lipgloss.Style{
		strength.TierStrong: lipgloss.NewStyle().Bold(true).Foreground(colorStrong),
		strength.TierMedium: lipgloss.NewStyle().Foreground(colorWarning),
		strength.TierWeak:   lipgloss.NewStyle().Foreground(colorError),
	}

	severityStyles = map[string]lipgloss.Style{
		"error":   lipgloss.NewStyle().Bold(true).Foreground(colorError),
		"warning": lipgloss.NewStyle().Foreground(colorWarning),
		"info":    lipgloss.NewStyle().Foreground(colorMuted),
	}
)

// colorStyler renders with lipgloss; escape codes are dropped when the
// output profile has no colour support.
type colorStyler struct{}

func (colorStyler) title(s string) string { return titleStyle.Render(s) }

func (colorStyler) tier(t strength.Tier) string {
	style, ok := tierStyles[t]
	if !ok {
		return string(t)
	}

	return style.Render(string(t))
}

func (colorStyler) severity(label string) string {
	padded := fmt.Sprintf("%-*s", severityWidth, label)

	style, ok := severityStyles[label]
	if !ok {
		return padded
	}

	return style.Render(padded)
}
