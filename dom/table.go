package dom

// CellKind distinguishes data cells from header cells.
type CellKind uint8

const (
	CellData CellKind = iota
	CellHeader
)

// String returns a short name for the cell kind.
func (k CellKind) String() string {
	if k == CellHeader {
		return "header"
	}
	return "data"
}

// Table is an ordered sequence of rows, held either directly or inside an
// explicit body Section. Rows may be jagged.
type Table struct {
	doc  *Document
	body *Section
	rows []*Row
}

// NewTable returns a detached table holding its rows directly.
func NewTable() *Table { return &Table{} }

// NewTableWithBody returns a detached table whose rows live in an explicit
// body section.
func NewTableWithBody() *Table {
	t := &Table{}
	t.body = &Section{table: t}
	return t
}

// NewGrid returns a detached table of rows x cols empty data cells.
func NewGrid(rows, cols int) *Table {
	t := NewTable()
	for r := 0; r < rows; r++ {
		row := NewRow()
		for c := 0; c < cols; c++ {
			row.AppendCell(NewCell(CellData))
		}
		t.AppendRow(row)
	}
	return t
}

func (t *Table) Kind() NodeKind { return KindTable }

func (t *Table) Parent() Node {
	if t.doc == nil {
		return nil
	}
	return t.doc
}

func (t *Table) block() {}

// Document returns the owning document, or nil for a detached table.
func (t *Table) Document() *Document { return t.doc }

// Body returns the explicit body section, or nil when rows are held directly.
func (t *Table) Body() *Section { return t.body }

// Rows returns the table's row sequence, resolved through the body section
// when one is present.
func (t *Table) Rows() []*Row {
	if t.body != nil {
		return t.body.rows
	}
	return t.rows
}

// RowCount returns the number of rows.
func (t *Table) RowCount() int { return len(t.Rows()) }

// Row returns the row at index i, or nil when out of range.
func (t *Table) Row(i int) *Row {
	rows := t.Rows()
	if i < 0 || i >= len(rows) {
		return nil
	}
	return rows[i]
}

// AppendRow attaches r as the last row.
func (t *Table) AppendRow(r *Row) {
	t.InsertRow(t.RowCount(), r)
}

// InsertRow attaches r at index i, shifting later rows. Indexes outside
// [0, RowCount] clamp to the nearest end.
func (t *Table) InsertRow(i int, r *Row) {
	rows := t.Rows()
	if i < 0 {
		i = 0
	}
	if i > len(rows) {
		i = len(rows)
	}

	if t.body != nil {
		r.parent = t.body
	} else {
		r.parent = t
	}

	rows = append(rows, nil)
	copy(rows[i+1:], rows[i:])
	rows[i] = r
	t.setRows(rows)
	t.reindexRows()
	t.bump()
}

// RemoveRow detaches the row at index i. Out-of-range indexes are ignored.
func (t *Table) RemoveRow(i int) {
	rows := t.Rows()
	if i < 0 || i >= len(rows) {
		return
	}
	rows[i].parent = nil
	rows[i].index = 0
	t.setRows(append(rows[:i], rows[i+1:]...))
	t.reindexRows()
	t.bump()
}

func (t *Table) setRows(rows []*Row) {
	if t.body != nil {
		t.body.rows = rows
		return
	}
	t.rows = rows
}

func (t *Table) reindexRows() {
	for i, r := range t.Rows() {
		r.index = i
	}
}

func (t *Table) bump() {
	if t.doc != nil {
		t.doc.bump()
	}
}

// Section is an explicit body row-container inside a table.
type Section struct {
	table *Table
	rows  []*Row
}

func (s *Section) Kind() NodeKind { return KindSection }

func (s *Section) Parent() Node {
	if s.table == nil {
		return nil
	}
	return s.table
}

// Rows returns the section's rows in order.
func (s *Section) Rows() []*Row { return s.rows }

// Row is an ordered sequence of cells with a position inside its table.
type Row struct {
	parent Node // *Table or *Section
	index  int
	cells  []*Cell
}

// NewRow returns a detached row.
func NewRow() *Row { return &Row{} }

func (r *Row) Kind() NodeKind { return KindRow }

func (r *Row) Parent() Node { return r.parent }

// Index returns the row's position among its table's rows.
func (r *Row) Index() int { return r.index }

// Table returns the owning table, resolved through the body section when
// present, or nil for a detached row.
func (r *Row) Table() *Table {
	switch p := r.parent.(type) {
	case *Table:
		return p
	case *Section:
		return p.table
	default:
		return nil
	}
}

// Cells returns the row's cells in order.
func (r *Row) Cells() []*Cell { return r.cells }

// CellCount returns the number of cells in the row.
func (r *Row) CellCount() int { return len(r.cells) }

// Cell returns the cell at index i, or nil when out of range.
func (r *Row) Cell(i int) *Cell {
	if i < 0 || i >= len(r.cells) {
		return nil
	}
	return r.cells[i]
}

// AppendCell attaches c as the row's last cell.
func (r *Row) AppendCell(c *Cell) {
	r.InsertCell(len(r.cells), c)
}

// InsertCell attaches c at index i, shifting later cells. Indexes outside
// [0, CellCount] clamp to the nearest end.
func (r *Row) InsertCell(i int, c *Cell) {
	if i < 0 {
		i = 0
	}
	if i > len(r.cells) {
		i = len(r.cells)
	}
	c.row = r
	r.cells = append(r.cells, nil)
	copy(r.cells[i+1:], r.cells[i:])
	r.cells[i] = c
	r.reindexCells()
	r.bump()
}

// RemoveCell detaches the cell at index i. Out-of-range indexes are ignored.
func (r *Row) RemoveCell(i int) {
	if i < 0 || i >= len(r.cells) {
		return
	}
	r.cells[i].row = nil
	r.cells[i].index = 0
	r.cells = append(r.cells[:i], r.cells[i+1:]...)
	r.reindexCells()
	r.bump()
}

func (r *Row) reindexCells() {
	for i, c := range r.cells {
		c.index = i
	}
}

func (r *Row) bump() {
	if t := r.Table(); t != nil {
		t.bump()
	}
}

// Cell is an individual grid unit holding inline content.
type Cell struct {
	row      *Row
	index    int
	kind     CellKind
	runs     []*Text
	editable bool
}

// NewCell returns a detached cell of the given kind.
func NewCell(kind CellKind) *Cell { return &Cell{kind: kind} }

func (c *Cell) Kind() NodeKind { return KindCell }

func (c *Cell) Parent() Node {
	if c.row == nil {
		return nil
	}
	return c.row
}

// Row returns the owning row, or nil for a detached cell.
func (c *Cell) Row() *Row { return c.row }

// Index returns the cell's position among its row's cells.
func (c *Cell) Index() int { return c.index }

// CellKind returns whether the cell is a data or header cell.
func (c *Cell) CellKind() CellKind { return c.kind }

// Runs returns the cell's text runs in order.
func (c *Cell) Runs() []*Text { return c.runs }

// LastRun returns the last run, or nil for an empty cell.
func (c *Cell) LastRun() *Text {
	if len(c.runs) == 0 {
		return nil
	}
	return c.runs[len(c.runs)-1]
}

// IsEmpty reports whether the cell has no content.
func (c *Cell) IsEmpty() bool { return len(c.runs) == 0 }

// AppendRun attaches t as the cell's last run.
func (c *Cell) AppendRun(t *Text) {
	t.parent = c
	c.runs = append(c.runs, t)
	if r := c.row; r != nil {
		r.bump()
	}
}

// Editable reports whether the cell accepts input.
func (c *Cell) Editable() bool { return c.editable }

// SetEditable marks the cell as accepting input.
func (c *Cell) SetEditable(editable bool) { c.editable = editable }

// Content returns the concatenated run content.
func (c *Cell) Content() string {
	var s string
	for _, r := range c.runs {
		s += r.content
	}
	return s
}
