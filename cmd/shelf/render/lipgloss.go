package render

import (
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/term"
)

type LipglossRenderer struct {
	width int
	r     *lipgloss.Renderer

	titleStyle     lipgloss.Style
	metaStyle      lipgloss.Style
	labelStyle     lipgloss.Style
	availableStyle lipgloss.Style
	issuedStyle    lipgloss.Style
}

func NewLipglossRenderer(w io.Writer, width int) *LipglossRenderer {
	r := lipgloss.NewRenderer(w)
	return &LipglossRenderer{
		width:          width,
		r:              r,
		titleStyle:     r.NewStyle().Bold(true),
		metaStyle:      r.NewStyle().Faint(true),
		labelStyle:     r.NewStyle().Faint(true),
		availableStyle: r.NewStyle().Foreground(lipgloss.Color("10")),
		issuedStyle:    r.NewStyle().Foreground(lipgloss.Color("11")),
	}
}

func NewLipglossRendererAuto(w io.Writer) *LipglossRenderer {
	width := 80
	if f, ok := w.(*os.File); ok {
		if tw, _, err := term.GetSize(f.Fd()); err == nil && tw > 0 {
			width = tw
		}
	}
	return NewLipglossRenderer(w, width)
}

func (r *LipglossRenderer) RenderBookList(view BookListView) string {
	if view.IsEmpty() {
		return "No books found.\n"
	}

	var sb strings.Builder
	for i, item := range view.Items {
		if i > 0 {
			sb.WriteString("\n")
		}
		sb.WriteString(r.renderItem(item))
	}
	return sb.String()
}

func (r *LipglossRenderer) renderItem(item BookItem) string {
	title := r.titleStyle.Render(item.Title)
	badge := r.statusStyle(item).Render(item.Status)

	padding := max(1, r.width-lipgloss.Width(title)-lipgloss.Width(badge))
	header := title + strings.Repeat(" ", padding) + badge
	meta := r.metaStyle.Render("  by " + item.Author + " · ISBN " + item.ISBN)

	return header + "\n" + meta + "\n"
}

func (r *LipglossRenderer) RenderBook(item BookItem) string {
	rows := []struct{ label, value string }{
		{"Title:", r.titleStyle.Render(item.Title)},
		{"Author:", item.Author},
		{"ISBN:", item.ISBN},
		{"Status:", r.statusStyle(item).Render(item.Status)},
	}

	var sb strings.Builder
	for _, row := range rows {
		sb.WriteString(r.labelStyle.Render(row.label))
		sb.WriteString(strings.Repeat(" ", 8-len(row.label)))
		sb.WriteString(row.value)
		sb.WriteString("\n")
	}
	return sb.String()
}

func (r *LipglossRenderer) statusStyle(item BookItem) lipgloss.Style {
	if item.Available {
		return r.availableStyle
	}
	return r.issuedStyle
}
