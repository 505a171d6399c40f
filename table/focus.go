package table

import "github.com/iw2rmb/lattice/dom"

// Host is the input-focus primitive supplied by the embedding surface.
//
// FocusCell returns an error when the target cannot receive focus (for
// example a detached element). Callers in this package discard the error:
// focus failure never affects the navigation or mutation result.
type Host interface {
	FocusCell(cell *dom.Cell) error
}

// FocusCell moves the caret into cell.
//
// A cell with content keeps it untouched and gets the caret at the end of
// its last run. An empty cell gets exactly one placeholder run with the
// caret at offset 0 inside it. The cell is marked editable and the host, if
// any, is asked to focus it.
func FocusCell(doc *dom.Document, cell *dom.Cell, host Host) {
	if doc == nil || cell == nil {
		return
	}

	cell.SetEditable(true)

	if run := cell.LastRun(); run != nil {
		doc.SetCaret(dom.Caret{Node: run, Offset: run.Len()})
	} else {
		ph := dom.PlaceholderText()
		cell.AppendRun(ph)
		doc.SetCaret(dom.Caret{Node: ph, Offset: 0})
	}

	if host != nil {
		_ = host.FocusCell(cell) // focus failure is non-fatal
	}
}
