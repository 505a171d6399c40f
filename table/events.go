package table

import "github.com/iw2rmb/lattice/dom"

// ChangeEvent describes the document state after a handled key.
type ChangeEvent struct {
	Version uint64
	Caret   dom.Caret

	// Shape of the table containing the caret; both zero outside a table.
	Rows, Cols int
}

func buildChangeEvent(doc *dom.Document) ChangeEvent {
	ev := ChangeEvent{
		Version: doc.Version(),
		Caret:   doc.Caret(),
	}
	if cell := CurrentCell(doc.Caret()); cell != nil {
		if tbl := ParentTable(cell); tbl != nil {
			ev.Rows = tbl.RowCount()
			if row := cell.Row(); row != nil {
				ev.Cols = row.CellCount()
			}
		}
	}
	return ev
}
