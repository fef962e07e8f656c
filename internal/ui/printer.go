package ui

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// Printer writes user-facing lines. Colors are dropped automatically when out
// is not a terminal.
type Printer struct {
	out io.Writer
	St  Styles
}

func NewPrinter(out io.Writer, theme string) *Printer {
	return &Printer{out: out, St: NewStyles(lipgloss.NewRenderer(out), ThemeByName(theme))}
}

func (p *Printer) Line(s string) { fmt.Fprintln(p.out, s) }

func (p *Printer) OK(msg string) {
	p.Line(p.St.Success.Render(p.St.Theme.SymOK + " " + msg))
}

func (p *Printer) Fail(msg string) {
	p.Line(p.St.Error.Render(p.St.Theme.SymFail + " " + msg))
}

// Panel draws lines inside the theme's border.
func (p *Printer) Panel(lines []string) {
	p.Line(p.St.Panel.Render(strings.Join(lines, "\n")))
}

// Box returns the checkbox glyph for done.
func (p *Printer) Box(done bool) string {
	if done {
		return p.St.Success.Render(p.St.Theme.BoxChecked)
	}
	return p.St.Muted.Render(p.St.Theme.BoxUnchecked)
}

// ProgressBar renders "[███░░░] done/total".
func ProgressBar(done, total, width int) string {
	if width <= 0 {
		width = 28
	}
	den := total
	if den <= 0 {
		den = 1
	}
	filled := int(float64(done) / float64(den) * float64(width))
	if filled > width {
		filled = width
	}
	return "[" + strings.Repeat("█", filled) + strings.Repeat("░", width-filled) + fmt.Sprintf("] %d/%d", done, total)
}
