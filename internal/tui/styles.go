package tui

import "github.com/charmbracelet/lipgloss"

var (
	accent = lipgloss.Color("#4f46e5")
	muted  = lipgloss.Color("#6b7280")
	faint  = lipgloss.Color("#374151")
)

// Styles holds the preview styles.
type Styles struct {
	Title       lipgloss.Style
	Tab         lipgloss.Style
	ActiveTab   lipgloss.Style
	Slide       lipgloss.Style
	Placeholder lipgloss.Style
	Arrow       lipgloss.Style
	Dot         lipgloss.Style
	ActiveDot   lipgloss.Style
}

// DefaultStyles returns the preview styles.
func DefaultStyles() Styles {
	return Styles{
		Title: lipgloss.NewStyle().Bold(true).MarginBottom(1),
		Tab: lipgloss.NewStyle().
			Foreground(muted).
			Padding(0, 1),
		ActiveTab: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(accent).
			Bold(true).
			Padding(0, 1),
		Slide: lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(faint).
			Width(slideWidth).
			Height(slideHeight).
			Align(lipgloss.Center, lipgloss.Center),
		Placeholder: lipgloss.NewStyle().Foreground(muted),
		Arrow:       lipgloss.NewStyle().Foreground(muted).Padding(0, 1),
		Dot:         lipgloss.NewStyle().Foreground(faint),
		ActiveDot:   lipgloss.NewStyle().Foreground(accent),
	}
}
