package output

import "github.com/charmbracelet/lipgloss"

// Styles are the lipgloss styles shared by text output.
type Styles struct {
	Header1 lipgloss.Style
	Header2 lipgloss.Style
	Success lipgloss.Style
	Warning lipgloss.Style
	Error   lipgloss.Style
	Muted   lipgloss.Style
	Key     lipgloss.Style
	Value   lipgloss.Style
}

// NewStyles builds the styles on r.
func NewStyles(r *lipgloss.Renderer) *Styles {
	return &Styles{
		Header1: r.NewStyle().Bold(true).Foreground(lipgloss.Color("63")),
		Header2: r.NewStyle().Bold(true),
		Success: r.NewStyle().Foreground(lipgloss.Color("42")),
		Warning: r.NewStyle().Foreground(lipgloss.Color("214")),
		Error:   r.NewStyle().Foreground(lipgloss.Color("196")),
		Muted:   r.NewStyle().Foreground(lipgloss.Color("245")),
		Key:     r.NewStyle().Foreground(lipgloss.Color("245")),
		Value:   r.NewStyle(),
	}
}
