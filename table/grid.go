package table

import "github.com/iw2rmb/lattice/dom"

// Editor performs structural grid mutations on a document.
//
// Every operation resolves the current cell from the live caret and degrades
// to a no-op when no cell or table is resolvable; the caret may legitimately
// be outside any table when a command fires.
type Editor struct {
	doc  *dom.Document
	host Host
}

// NewEditor returns an editor over doc. host may be nil.
func NewEditor(doc *dom.Document, host Host) *Editor {
	return &Editor{doc: doc, host: host}
}

func (e *Editor) currentCell() *dom.Cell {
	if e.doc == nil {
		return nil
	}
	return CurrentCell(e.doc.Caret())
}

// InsertRowAbove inserts a new row immediately before the current one. Each
// new cell matches the kind of the current row's cell in that column and
// holds placeholder content. The caret does not move.
func (e *Editor) InsertRowAbove() {
	cell := e.currentCell()
	if cell == nil {
		return
	}
	row := cell.Row()
	if row == nil || row.Table() == nil {
		return
	}

	fresh := dom.NewRow()
	for _, src := range row.Cells() {
		fresh.AppendCell(placeholderCell(src.CellKind()))
	}
	row.Table().InsertRow(row.Index(), fresh)
}

// InsertRowBelow inserts a new row of plain data cells immediately after the
// current one (appending when the current row is last), then focuses the
// first cell of the new row.
func (e *Editor) InsertRowBelow() {
	cell := e.currentCell()
	if cell == nil {
		return
	}
	row := cell.Row()
	if row == nil || row.Table() == nil {
		return
	}

	fresh := dom.NewRow()
	for range row.Cells() {
		fresh.AppendCell(placeholderCell(dom.CellData))
	}
	row.Table().InsertRow(row.Index()+1, fresh)

	FocusCell(e.doc, fresh.Cell(0), e.host)
}

// InsertColumnLeft inserts one placeholder cell per row immediately before
// the current column. Each new cell matches the kind of that row's cell in
// the column, falling back to a data cell for rows too short to have one
// (the new cell is then appended, mirroring the shorter row's shape).
func (e *Editor) InsertColumnLeft() {
	e.insertColumn(0)
}

// InsertColumnRight is symmetric to InsertColumnLeft: the new cell lands
// immediately after the current column, appended when the column is the
// row's last.
func (e *Editor) InsertColumnRight() {
	e.insertColumn(1)
}

func (e *Editor) insertColumn(offset int) {
	cell := e.currentCell()
	if cell == nil {
		return
	}
	tbl := ParentTable(cell)
	if tbl == nil {
		return
	}

	col := cell.Index()
	for _, row := range tbl.Rows() {
		kind := dom.CellData
		if src := row.Cell(col); src != nil {
			kind = src.CellKind()
		}
		// InsertCell clamps past-the-end positions, so rows shorter than
		// the column get the new cell appended.
		row.InsertCell(col+offset, placeholderCell(kind))
	}
}

// DeleteRow removes the current row. Tables with fewer than two rows are
// left untouched. The caret is refocused before removal: into the same
// column of the previous row, or of the row now at index 1 when deleting
// the first row. The column clamps into shorter target rows.
func (e *Editor) DeleteRow() {
	cell := e.currentCell()
	if cell == nil {
		return
	}
	row := cell.Row()
	tbl := ParentTable(cell)
	if row == nil || tbl == nil || tbl.RowCount() < 2 {
		return
	}

	idx := row.Index()
	target := tbl.Row(idx - 1)
	if target == nil {
		target = tbl.Row(1)
	}
	if target != nil {
		FocusCell(e.doc, target.Cell(clampCol(cell.Index(), target)), e.host)
	}

	tbl.RemoveRow(idx)
}

// DeleteColumn removes the current column from every row that has it.
// Tables whose first row has fewer than two cells are left untouched. The
// caret is refocused before removal: into the previous column, or the next
// one when deleting the first column.
func (e *Editor) DeleteColumn() {
	cell := e.currentCell()
	if cell == nil {
		return
	}
	row := cell.Row()
	tbl := ParentTable(cell)
	if row == nil || tbl == nil {
		return
	}
	first := tbl.Row(0)
	if first == nil || first.CellCount() < 2 {
		return
	}

	col := cell.Index()
	target := row.Cell(col - 1)
	if target == nil {
		target = row.Cell(col + 1)
	}
	if target != nil {
		FocusCell(e.doc, target, e.host)
	}

	for _, r := range tbl.Rows() {
		if r.Cell(col) != nil {
			r.RemoveCell(col)
		}
	}
}

func placeholderCell(kind dom.CellKind) *dom.Cell {
	c := dom.NewCell(kind)
	c.AppendRun(dom.PlaceholderText())
	return c
}

func clampCol(col int, row *dom.Row) int {
	if last := row.CellCount() - 1; col > last {
		return last
	}
	return col
}
