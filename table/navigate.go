package table

import (
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/lattice/dom"
)

// Controller is the key-driven navigation state machine.
//
// HandleKey reports whether the key was consumed. Not-handled means the
// host's default key behavior should proceed; the controller then guarantees
// it performed no side effects.
type Controller struct {
	doc  *dom.Document
	cfg  Config
	grid *Editor
}

// NewController returns a controller over doc.
func NewController(doc *dom.Document, cfg Config) *Controller {
	cfg = normalizeConfig(cfg)
	return &Controller{
		doc:  doc,
		cfg:  cfg,
		grid: NewEditor(doc, cfg.Host),
	}
}

// Editor returns the structural grid editor sharing this controller's
// document and host.
func (c *Controller) Editor() *Editor { return c.grid }

// HandleKey routes one key press. It returns true when the key was consumed.
func (c *Controller) HandleKey(msg tea.KeyMsg) bool {
	if c.doc == nil {
		return false
	}

	before := c.doc.Version()
	handled := c.route(msg)
	if handled && c.cfg.OnChange != nil && c.doc.Version() != before {
		c.cfg.OnChange(buildChangeEvent(c.doc))
	}
	return handled
}

func (c *Controller) route(msg tea.KeyMsg) bool {
	km := c.cfg.KeyMap
	caret := c.doc.Caret()

	if !InTable(caret) {
		return c.enterFromOutside(msg, caret)
	}

	switch {
	case key.Matches(msg, km.PrevCell):
		return c.step(caret, -1)
	case key.Matches(msg, km.NextCell):
		return c.step(caret, 1)
	case key.Matches(msg, km.Left):
		return c.horizontal(caret, -1)
	case key.Matches(msg, km.Right):
		return c.horizontal(caret, 1)
	case key.Matches(msg, km.Up):
		return c.vertical(caret, -1)
	case key.Matches(msg, km.Down):
		return c.vertical(caret, 1)
	}
	return false
}

// step moves focus through the table's cells flattened in row-major
// document order. Backward from the first cell is absorbed without moving;
// forward from the last cell inserts a row below.
func (c *Controller) step(caret dom.Caret, dir int) bool {
	cell := CurrentCell(caret)
	if cell == nil {
		return false
	}
	tbl := ParentTable(cell)
	if tbl == nil {
		// A cell without a table is a detached fragment; leave the key to
		// the host rather than half-consuming it.
		return false
	}

	cells := flattenCells(tbl)
	idx := -1
	for i, cand := range cells {
		if cand == cell {
			idx = i
			break
		}
	}
	if idx < 0 {
		return false
	}

	switch {
	case dir < 0:
		if idx > 0 {
			FocusCell(c.doc, cells[idx-1], c.cfg.Host)
		}
	case idx < len(cells)-1:
		FocusCell(c.doc, cells[idx+1], c.cfg.Host)
	case !c.cfg.ReadOnly:
		c.grid.InsertRowBelow()
	}
	return true
}

// horizontal moves within the current row only; hitting a row edge leaves
// the key to the host.
func (c *Controller) horizontal(caret dom.Caret, dir int) bool {
	cell := CurrentCell(caret)
	if cell == nil {
		return false
	}
	row := cell.Row()
	if row == nil || ParentTable(cell) == nil {
		return false
	}

	target := row.Cell(cell.Index() + dir)
	if target == nil {
		return false
	}
	FocusCell(c.doc, target, c.cfg.Host)
	return true
}

// vertical moves across rows, clamping the column into shorter rows, and
// exits the table past the first or last row.
func (c *Controller) vertical(caret dom.Caret, dir int) bool {
	cell := CurrentCell(caret)
	if cell == nil {
		return false
	}
	row := cell.Row()
	tbl := ParentTable(cell)
	if row == nil || tbl == nil {
		return false
	}

	target := tbl.Row(row.Index() + dir)
	if target == nil {
		return c.exitTable(tbl, dir)
	}
	if tc := target.Cell(clampCol(cell.Index(), target)); tc != nil {
		FocusCell(c.doc, tc, c.cfg.Host)
	}
	return true
}

// exitTable places the caret into the sibling block before (dir < 0) or
// after (dir > 0) the table, fabricating a placeholder paragraph when no
// sibling exists.
func (c *Controller) exitTable(tbl *dom.Table, dir int) bool {
	doc := tbl.Document()
	if doc == nil {
		return false
	}

	var sib dom.Block
	if dir < 0 {
		sib = doc.BlockBefore(tbl)
	} else {
		sib = doc.BlockAfter(tbl)
	}
	if sib == nil {
		p := dom.PlaceholderParagraph()
		if dir < 0 {
			doc.InsertBlockBefore(tbl, p)
		} else {
			doc.InsertBlockAfter(tbl, p)
		}
		sib = p
	}

	switch b := sib.(type) {
	case *dom.Paragraph:
		c.focusParagraph(b, dir)
	case *dom.Table:
		// Adjacent table: entering it keeps the left-aligned entry point.
		c.focusTableEdge(b, dir)
	}
	return true
}

// focusParagraph lands at the end of the paragraph when arriving from below
// (dir < 0), at its start when arriving from above.
func (c *Controller) focusParagraph(p *dom.Paragraph, dir int) {
	if p.IsEmpty() {
		p.AppendRun(dom.PlaceholderText())
	}
	if dir < 0 {
		run := p.LastRun()
		c.doc.SetCaret(dom.Caret{Node: run, Offset: run.Len()})
		return
	}
	c.doc.SetCaret(dom.Caret{Node: p.FirstRun(), Offset: 0})
}

// enterFromOutside handles Down/Up pressed next to a table: Down enters the
// first cell of the sibling table's first row, Up the first cell of its
// LAST row. The first column is deliberate either way, preserving a
// left-aligned entry point regardless of the originating offset.
func (c *Controller) enterFromOutside(msg tea.KeyMsg, caret dom.Caret) bool {
	if !caret.Active() {
		return false
	}
	block := dom.ContainingBlock(caret.Node)
	if block == nil {
		return false
	}

	km := c.cfg.KeyMap
	switch {
	case key.Matches(msg, km.Down):
		if tbl, ok := c.doc.BlockAfter(block).(*dom.Table); ok {
			return c.focusTableEdge(tbl, 1)
		}
	case key.Matches(msg, km.Up):
		if tbl, ok := c.doc.BlockBefore(block).(*dom.Table); ok {
			return c.focusTableEdge(tbl, -1)
		}
	}
	return false
}

// focusTableEdge enters the first row (dir > 0) or last row (dir < 0) of
// tbl at column 0. Empty tables are not entered.
func (c *Controller) focusTableEdge(tbl *dom.Table, dir int) bool {
	rows := tbl.Rows()
	if len(rows) == 0 {
		return false
	}
	row := rows[0]
	if dir < 0 {
		row = rows[len(rows)-1]
	}
	cell := row.Cell(0)
	if cell == nil {
		return false
	}
	FocusCell(c.doc, cell, c.cfg.Host)
	return true
}

// flattenCells enumerates every cell of tbl row-major, ignoring row
// boundaries. This drives Tab traversal.
func flattenCells(tbl *dom.Table) []*dom.Cell {
	var out []*dom.Cell
	for _, row := range tbl.Rows() {
		out = append(out, row.Cells()...)
	}
	return out
}
