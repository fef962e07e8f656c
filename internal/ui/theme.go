package ui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Theme bundles palette + symbols + box border.
type Theme struct {
	Name                                          string
	Title, Muted, Accent, Success, Error, Pending lipgloss.TerminalColor
	BoxUnchecked, BoxChecked                      string
	SymOK, SymFail                                string
	Border                                        lipgloss.Border
	Bold                                          bool
}

// ThemeByName picks a theme; anything unknown is classic.
func ThemeByName(name string) Theme {
	switch strings.ToLower(name) {
	case "neon":
		return Theme{
			Name:  "neon",
			Title: lipgloss.Color("13"), Muted: lipgloss.Color("8"), Accent: lipgloss.Color("14"),
			Success: lipgloss.Color("10"), Error: lipgloss.Color("9"), Pending: lipgloss.Color("11"),
			BoxUnchecked: "◻", BoxChecked: "◼",
			SymOK: "✔", SymFail: "✖",
			Border: lipgloss.RoundedBorder(),
			Bold:   true,
		}
	case "mono":
		none := lipgloss.NoColor{}
		return Theme{
			Name:  "mono",
			Title: none, Muted: none, Accent: none, Success: none, Error: none, Pending: none,
			BoxUnchecked: "[ ]", BoxChecked: "[x]",
			SymOK: "+", SymFail: "!",
			Border: lipgloss.ASCIIBorder(),
		}
	default:
		return Theme{
			Name:  "classic",
			Title: lipgloss.NoColor{}, Muted: lipgloss.Color("8"), Accent: lipgloss.Color("12"),
			Success: lipgloss.Color("42"), Error: lipgloss.Color("9"), Pending: lipgloss.Color("214"),
			BoxUnchecked: "☐", BoxChecked: "☑",
			SymOK: "✔", SymFail: "✖",
			Border: lipgloss.NormalBorder(),
			Bold:   true,
		}
	}
}
