package table

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"

	"github.com/iw2rmb/lattice/dom"
)

// buildGrid builds a document holding one table. Each rows entry is one row
// of cell contents; empty strings produce empty cells.
func buildGrid(rows ...[]string) (*dom.Document, *dom.Table) {
	doc := dom.NewDocument()
	tbl := dom.NewTable()
	for _, contents := range rows {
		row := dom.NewRow()
		for _, content := range contents {
			cell := dom.NewCell(dom.CellData)
			if content != "" {
				cell.AppendRun(dom.NewText(content))
			}
			row.AppendCell(cell)
		}
		tbl.AppendRow(row)
	}
	doc.AppendBlock(tbl)
	return doc, tbl
}

// caretIn anchors the caret inside the cell at (row, col).
func caretIn(t *testing.T, doc *dom.Document, tbl *dom.Table, row, col int) *dom.Cell {
	t.Helper()
	r := tbl.Row(row)
	if r == nil {
		t.Fatalf("no row %d", row)
	}
	cell := r.Cell(col)
	if cell == nil {
		t.Fatalf("no cell (%d,%d)", row, col)
	}
	FocusCell(doc, cell, nil)
	return cell
}

func keyTab() tea.KeyMsg      { return tea.KeyMsg{Type: tea.KeyTab} }
func keyShiftTab() tea.KeyMsg { return tea.KeyMsg{Type: tea.KeyShiftTab} }
func keyUp() tea.KeyMsg       { return tea.KeyMsg{Type: tea.KeyUp} }
func keyDown() tea.KeyMsg     { return tea.KeyMsg{Type: tea.KeyDown} }
func keyLeft() tea.KeyMsg     { return tea.KeyMsg{Type: tea.KeyLeft} }
func keyRight() tea.KeyMsg    { return tea.KeyMsg{Type: tea.KeyRight} }

// recordingHost captures focus requests and optionally fails them.
type recordingHost struct {
	cells []*dom.Cell
	fail  bool
}

func (h *recordingHost) FocusCell(cell *dom.Cell) error {
	h.cells = append(h.cells, cell)
	if h.fail {
		return errors.New("focus target detached")
	}
	return nil
}
