package table

import "github.com/iw2rmb/lattice/dom"

// InTable reports whether the caret sits anywhere inside a table: its anchor
// or any ancestor is a table, section, row, or cell. An inactive caret is
// never in a table.
func InTable(c dom.Caret) bool {
	if !c.Active() {
		return false
	}
	found := dom.Ancestor(c.Node, func(n dom.Node) bool {
		switch n.Kind() {
		case dom.KindTable, dom.KindSection, dom.KindRow, dom.KindCell:
			return true
		}
		return false
	})
	return found != nil
}

// CurrentCell returns the nearest cell ancestor of the caret's anchor, or
// nil when the caret is inactive or outside any cell.
func CurrentCell(c dom.Caret) *dom.Cell {
	if !c.Active() {
		return nil
	}
	found := dom.Ancestor(c.Node, func(n dom.Node) bool {
		return n.Kind() == dom.KindCell
	})
	if found == nil {
		return nil
	}
	return found.(*dom.Cell)
}

// ParentTable returns the nearest table ancestor of n (including n itself),
// or nil.
func ParentTable(n dom.Node) *dom.Table {
	found := dom.Ancestor(n, func(a dom.Node) bool {
		return a.Kind() == dom.KindTable
	})
	if found == nil {
		return nil
	}
	return found.(*dom.Table)
}
