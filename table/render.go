package table

import (
	"strings"

	"github.com/iw2rmb/lattice/dom"
	graphemeutil "github.com/iw2rmb/lattice/internal/grapheme"
)

func (m *Model) renderContent() string {
	if m.doc == nil {
		return ""
	}

	focused := CurrentCell(m.doc.Caret())

	var out []string
	for _, block := range m.doc.Blocks() {
		switch b := block.(type) {
		case *dom.Paragraph:
			out = append(out, m.renderParagraph(b))
		case *dom.Table:
			out = append(out, m.renderTable(b, focused))
		}
	}
	return strings.Join(out, "\n")
}

func (m *Model) renderParagraph(p *dom.Paragraph) string {
	var sb strings.Builder
	for _, run := range p.Runs() {
		st := m.cfg.Style.Text
		if run.IsPlaceholder() {
			st = m.cfg.Style.Placeholder
		}
		sb.WriteString(st.Render(run.Content()))
	}
	line := sb.String()
	if caret := m.doc.Caret(); m.focused && caret.Active() {
		if run, ok := caret.Node.(*dom.Text); ok && run.Parent() == dom.Node(p) {
			line += m.cfg.Style.Focused.Render(" ")
		}
	}
	return line
}

func (m *Model) renderTable(tbl *dom.Table, focused *dom.Cell) string {
	rows := tbl.Rows()
	cols := 0
	for _, r := range rows {
		if n := r.CellCount(); n > cols {
			cols = n
		}
	}
	if cols == 0 {
		return ""
	}

	widths := make([]int, cols)
	for _, r := range rows {
		for i, c := range r.Cells() {
			if w := graphemeutil.Width(cellText(c)); w > widths[i] {
				widths[i] = w
			}
		}
	}

	border := m.cfg.Style.Border
	var sb strings.Builder
	sb.WriteString(border.Render(rule(widths, "┌", "┬", "┐")))
	for ri, r := range rows {
		if ri > 0 {
			sb.WriteByte('\n')
			sb.WriteString(border.Render(rule(widths, "├", "┼", "┤")))
		}
		sb.WriteByte('\n')
		sb.WriteString(m.renderRow(r, widths, focused))
	}
	sb.WriteByte('\n')
	sb.WriteString(border.Render(rule(widths, "└", "┴", "┘")))
	return sb.String()
}

func (m *Model) renderRow(r *dom.Row, widths []int, focused *dom.Cell) string {
	border := m.cfg.Style.Border
	var sb strings.Builder
	sb.WriteString(border.Render("│"))
	for i, w := range widths {
		cell := r.Cell(i)
		text := ""
		st := m.cfg.Style.Cell
		switch {
		case cell == nil:
			// Jagged row: pad the missing column.
		case cell == focused && m.focused:
			text = cellText(cell)
			st = m.cfg.Style.Focused
		case cell.CellKind() == dom.CellHeader:
			text = cellText(cell)
			st = m.cfg.Style.Header
		default:
			text = cellText(cell)
		}
		pad := w - graphemeutil.Width(text)
		if pad < 0 {
			pad = 0
		}
		sb.WriteString(" " + st.Render(text) + strings.Repeat(" ", pad) + " ")
		sb.WriteString(border.Render("│"))
	}
	return sb.String()
}

func cellText(c *dom.Cell) string {
	var sb strings.Builder
	for _, run := range c.Runs() {
		if run.IsPlaceholder() {
			continue
		}
		sb.WriteString(run.Content())
	}
	return sb.String()
}

func rule(widths []int, left, mid, right string) string {
	parts := make([]string, len(widths))
	for i, w := range widths {
		parts[i] = strings.Repeat("─", w+2)
	}
	return left + strings.Join(parts, mid) + right
}
