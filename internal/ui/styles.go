package ui

import "github.com/charmbracelet/lipgloss"

// Styles are the lipgloss styles every renderer pulls from.
type Styles struct {
	Theme    Theme
	Title    lipgloss.Style
	Success  lipgloss.Style
	Pending  lipgloss.Style
	Accent   lipgloss.Style
	Muted    lipgloss.Style
	Error    lipgloss.Style
	Selected lipgloss.Style
	Done     lipgloss.Style
	Help     lipgloss.Style
	Panel    lipgloss.Style
}

// NewStyles binds theme t to renderer r. A nil renderer means the default one.
func NewStyles(r *lipgloss.Renderer, t Theme) Styles {
	if r == nil {
		r = lipgloss.DefaultRenderer()
	}
	return Styles{
		Theme:    t,
		Title:    r.NewStyle().Bold(t.Bold).Foreground(t.Title),
		Success:  r.NewStyle().Foreground(t.Success),
		Pending:  r.NewStyle().Foreground(t.Pending),
		Accent:   r.NewStyle().Foreground(t.Accent),
		Muted:    r.NewStyle().Faint(t.Bold),
		Error:    r.NewStyle().Foreground(t.Error).Bold(t.Bold),
		Selected: r.NewStyle().Bold(true).Reverse(t.Bold),
		Done:     r.NewStyle().Faint(t.Bold).Strikethrough(t.Bold),
		Help:     r.NewStyle().Faint(t.Bold),
		Panel: r.NewStyle().
			Border(t.Border).
			BorderForeground(t.Muted).
			Padding(0, 1),
	}
}
