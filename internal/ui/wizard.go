package ui

import (
	"strings"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

const (
	completeSymbol = "◇"
	separator      = " · "
	borderTop      = "┌"
	borderSide     = "│"
	borderBottom   = "└"

	SymbolOK      = "✓"
	SymbolWarn    = "!"
	SymbolFailure = "✗"
)

func WizardTheme() *huh.Theme {
	t := huh.ThemeBase()
	red := lipgloss.Color("1")
	t.Focused.ErrorMessage = t.Focused.ErrorMessage.SetString("✗").Foreground(red)
	t.Blurred.ErrorMessage = t.Blurred.ErrorMessage.SetString("✗").Foreground(red)
	return t
}

type Field struct {
	Label string
	Value string
}

func borderStyle() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
}

// RenderWizard draws a boxed summary of a completed form. Fields without a
// value are left out.
func RenderWizard(title string, fields []Field) string {
	var b strings.Builder

	border := borderStyle()

	b.WriteString(border.Render(borderTop))
	b.WriteString(" ")
	b.WriteString(title)
	b.WriteString("\n")

	b.WriteString(border.Render(borderSide))
	b.WriteString("\n")

	for _, f := range fields {
		if f.Value != "" {
			b.WriteString(renderField(f))
			b.WriteString("\n")
		}
	}

	b.WriteString(border.Render(borderBottom))
	b.WriteString("\n")

	return b.String()
}

// RenderNotice draws the outcome of a single operation: a symbol and
// headline followed by detail lines.
func RenderNotice(symbol, headline string, details ...string) string {
	var b strings.Builder

	border := borderStyle()

	b.WriteString(border.Render(borderTop))
	b.WriteString(" ")
	b.WriteString(symbol)
	b.WriteString(" ")
	b.WriteString(headline)
	b.WriteString("\n")

	for _, d := range details {
		b.WriteString(border.Render(borderSide))
		b.WriteString(" ")
		b.WriteString(d)
		b.WriteString("\n")
	}

	b.WriteString(border.Render(borderBottom))
	b.WriteString("\n")

	return b.String()
}

func renderField(f Field) string {
	return completeSymbol + " " + f.Label + separator + f.Value
}
