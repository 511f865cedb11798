package tui

import "github.com/charmbracelet/lipgloss"

// Colors defines the color palette for the TUI.
var Colors = struct {
	Primary  lipgloss.Color
	Muted    lipgloss.Color
	Error    lipgloss.Color
	Success  lipgloss.Color
	Warning  lipgloss.Color
	Selected lipgloss.Color
}{
	Primary:  lipgloss.Color("#6C5CE7"),
	Muted:    lipgloss.Color("#636E72"),
	Error:    lipgloss.Color("#D63031"),
	Success:  lipgloss.Color("#00B894"),
	Warning:  lipgloss.Color("#FDCB6E"),
	Selected: lipgloss.Color("#FFEAA7"),
}

// Styles groups the lipgloss styles used across screens.
type Styles struct {
	Header    lipgloss.Style
	TabActive lipgloss.Style
	TabIdle   lipgloss.Style
	ColHeader lipgloss.Style
	Row       lipgloss.Style
	RowCursor lipgloss.Style
	Muted     lipgloss.Style
	Status    lipgloss.Style
	StatusErr lipgloss.Style
	Prompt    lipgloss.Style
}

// DefaultStyles returns the standard style set.
func DefaultStyles() Styles {
	return Styles{
		Header:    lipgloss.NewStyle().Bold(true).Foreground(Colors.Primary),
		TabActive: lipgloss.NewStyle().Bold(true).Foreground(Colors.Selected),
		TabIdle:   lipgloss.NewStyle().Foreground(Colors.Muted),
		ColHeader: lipgloss.NewStyle().Bold(true).Foreground(Colors.Muted),
		Row:       lipgloss.NewStyle(),
		RowCursor: lipgloss.NewStyle().Foreground(Colors.Selected),
		Muted:     lipgloss.NewStyle().Foreground(Colors.Muted),
		Status:    lipgloss.NewStyle().Foreground(Colors.Success),
		StatusErr: lipgloss.NewStyle().Foreground(Colors.Error),
		Prompt:    lipgloss.NewStyle().Foreground(Colors.Warning),
	}
}
