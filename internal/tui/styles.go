package tui

import "github.com/charmbracelet/lipgloss"

// Palette
var (
	Primary = lipgloss.Color("#7c3aed")
	Muted   = lipgloss.Color("#6b7280")
	Success = lipgloss.Color("#16a34a")
	Danger  = lipgloss.Color("#dc2626")
)

// Styles holds the styles used by the checklist view.
type Styles struct {
	Header  lipgloss.Style
	Cursor  lipgloss.Style
	Task    lipgloss.Style
	Checked lipgloss.Style
	Score   lipgloss.Style
	Error   lipgloss.Style
	Footer  lipgloss.Style
}

// DefaultStyles returns the default styles.
func DefaultStyles() Styles {
	return Styles{
		Header: lipgloss.NewStyle().
			Foreground(lipgloss.Color("#ffffff")).
			Background(Primary).
			Padding(0, 1).
			Bold(true).
			MarginBottom(1),

		Cursor: lipgloss.NewStyle().
			Foreground(Primary).
			Bold(true),

		Task: lipgloss.NewStyle(),

		Checked: lipgloss.NewStyle().
			Foreground(Muted).
			Strikethrough(true),

		Score: lipgloss.NewStyle().
			Foreground(Success).
			Bold(true).
			MarginTop(1),

		Error: lipgloss.NewStyle().
			Foreground(Danger).
			Bold(true),

		Footer: lipgloss.NewStyle().
			Foreground(Muted).
			MarginTop(1),
	}
}
