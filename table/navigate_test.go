package table

import (
	"testing"

	"github.com/iw2rmb/lattice/dom"
)

func newController(doc *dom.Document) *Controller {
	return NewController(doc, Config{})
}

func TestTab_MovesThroughFlattenedOrder(t *testing.T) {
	doc, tbl := buildGrid([]string{"a", "b"}, []string{"c", "d"})
	caretIn(t, doc, tbl, 0, 1)

	if !newController(doc).HandleKey(keyTab()) {
		t.Fatal("tab not handled inside table")
	}
	if got := CurrentCell(doc.Caret()); got == nil || got.Content() != "c" {
		t.Fatal("tab did not cross the row boundary in flattened order")
	}
}

func TestTab_LastCellInsertsRowBelow(t *testing.T) {
	doc, tbl := buildGrid([]string{"a", "b", "c"}, []string{"d", "e", "f"})
	caretIn(t, doc, tbl, 1, 2)

	if !newController(doc).HandleKey(keyTab()) {
		t.Fatal("tab at last cell not handled")
	}
	if tbl.RowCount() != 3 {
		t.Fatalf("rows=%d, want 3", tbl.RowCount())
	}
	if got := tbl.Row(2).CellCount(); got != 3 {
		t.Fatalf("new row cells=%d, want anchor row's 3", got)
	}
	if got := CurrentCell(doc.Caret()); got != tbl.Row(2).Cell(0) {
		t.Fatal("caret not in first cell of the inserted row")
	}
}

func TestTab_SingleCellScenario(t *testing.T) {
	doc, tbl := buildGrid([]string{"only"})
	caretIn(t, doc, tbl, 0, 0)

	if !newController(doc).HandleKey(keyTab()) {
		t.Fatal("tab not handled")
	}
	if tbl.RowCount() != 2 {
		t.Fatalf("rows=%d, want 2", tbl.RowCount())
	}
	if got := CurrentCell(doc.Caret()); got != tbl.Row(1).Cell(0) {
		t.Fatal("caret not on the new row's sole cell")
	}
}

func TestShiftTab_MovesBackAcrossRows(t *testing.T) {
	doc, tbl := buildGrid([]string{"a", "b"}, []string{"c", "d"})
	caretIn(t, doc, tbl, 1, 0)

	if !newController(doc).HandleKey(keyShiftTab()) {
		t.Fatal("shift+tab not handled")
	}
	if got := CurrentCell(doc.Caret()); got == nil || got.Content() != "b" {
		t.Fatal("shift+tab did not land on the previous flattened cell")
	}
}

func TestShiftTab_FirstCellAbsorbed(t *testing.T) {
	doc, tbl := buildGrid([]string{"a", "b"}, []string{"c", "d"})
	cell := caretIn(t, doc, tbl, 0, 0)
	before := doc.Caret()

	if !newController(doc).HandleKey(keyShiftTab()) {
		t.Fatal("shift+tab at first cell must still be handled")
	}
	if doc.Caret() != before || CurrentCell(doc.Caret()) != cell {
		t.Fatal("caret moved at flattened index 0")
	}
	if tbl.RowCount() != 2 {
		t.Fatal("structure changed")
	}
}

func TestArrowRight_TwoByTwoScenario(t *testing.T) {
	doc, tbl := buildGrid([]string{"a", "b"}, []string{"c", "d"})
	caretIn(t, doc, tbl, 0, 0)
	ctl := newController(doc)

	if !ctl.HandleKey(keyRight()) {
		t.Fatal("first ArrowRight not handled")
	}
	if got := CurrentCell(doc.Caret()); got == nil || got.Content() != "b" {
		t.Fatal("caret not at row 0 / column 1")
	}

	before := doc.Caret()
	if ctl.HandleKey(keyRight()) {
		t.Fatal("ArrowRight at last column must not be handled")
	}
	if doc.Caret() != before {
		t.Fatal("caret changed on an unhandled key")
	}
}

func TestArrowLeft_RowBoundaryNotHandled(t *testing.T) {
	doc, tbl := buildGrid([]string{"a", "b"}, []string{"c", "d"})
	caretIn(t, doc, tbl, 1, 0)

	// Horizontal movement never crosses row boundaries.
	if newController(doc).HandleKey(keyLeft()) {
		t.Fatal("ArrowLeft at row start must not be handled")
	}
	if got := CurrentCell(doc.Caret()); got == nil || got.Content() != "c" {
		t.Fatal("caret moved on an unhandled key")
	}
}

func TestArrowDown_ClampsIntoJaggedRow(t *testing.T) {
	doc, tbl := buildGrid([]string{"a", "b", "c"}, []string{"d"})
	caretIn(t, doc, tbl, 0, 2)

	if !newController(doc).HandleKey(keyDown()) {
		t.Fatal("ArrowDown not handled")
	}
	if got := CurrentCell(doc.Caret()); got == nil || got.Content() != "d" {
		t.Fatal("column did not clamp into the shorter row")
	}
}

func TestArrowUp_ClampsIntoJaggedRow(t *testing.T) {
	doc, tbl := buildGrid([]string{"a"}, []string{"b", "c", "d"})
	caretIn(t, doc, tbl, 1, 2)

	if !newController(doc).HandleKey(keyUp()) {
		t.Fatal("ArrowUp not handled")
	}
	if got := CurrentCell(doc.Caret()); got == nil || got.Content() != "a" {
		t.Fatal("column did not clamp moving up")
	}
}

func TestArrowDown_LastRowExitsToExistingSibling(t *testing.T) {
	doc, tbl := buildGrid([]string{"a"}, []string{"b"})
	after := dom.NewParagraph("after")
	doc.AppendBlock(after)
	caretIn(t, doc, tbl, 1, 0)

	if !newController(doc).HandleKey(keyDown()) {
		t.Fatal("ArrowDown at last row not handled")
	}
	if tbl.RowCount() != 2 {
		t.Fatal("exit mutated the table")
	}
	if InTable(doc.Caret()) {
		t.Fatal("caret still inside the table")
	}
	if doc.Caret().Node != dom.Node(after.FirstRun()) || doc.Caret().Offset != 0 {
		t.Fatalf("caret=%+v, want start of the following paragraph", doc.Caret())
	}
}

func TestArrowDown_LastRowFabricatesPlaceholder(t *testing.T) {
	doc, tbl := buildGrid([]string{"a"})
	caretIn(t, doc, tbl, 0, 0)

	if !newController(doc).HandleKey(keyDown()) {
		t.Fatal("ArrowDown at last row not handled")
	}
	blocks := doc.Blocks()
	if len(blocks) != 2 {
		t.Fatalf("blocks=%d, want table plus fabricated paragraph", len(blocks))
	}
	p, ok := blocks[1].(*dom.Paragraph)
	if !ok {
		t.Fatal("fabricated block is not a paragraph")
	}
	if len(p.Runs()) != 1 || !p.Runs()[0].IsPlaceholder() {
		t.Fatal("fabricated paragraph must hold one placeholder unit")
	}
	if doc.Caret().Node != dom.Node(p.Runs()[0]) {
		t.Fatal("caret not inside the fabricated paragraph")
	}
	if tbl.RowCount() != 1 {
		t.Fatal("exit mutated the table")
	}
}

func TestArrowUp_FirstRowExitsBefore(t *testing.T) {
	doc := dom.NewDocument()
	before := dom.NewParagraph("intro")
	doc.AppendBlock(before)
	tbl := dom.NewGrid(2, 1)
	doc.AppendBlock(tbl)
	FocusCell(doc, tbl.Row(0).Cell(0), nil)

	if !NewController(doc, Config{}).HandleKey(keyUp()) {
		t.Fatal("ArrowUp at first row not handled")
	}
	caret := doc.Caret()
	if caret.Node != dom.Node(before.LastRun()) || caret.Offset != 5 {
		t.Fatalf("caret=%+v, want end of the preceding paragraph", caret)
	}
}

func TestArrowUp_FirstRowFabricatesPlaceholderBefore(t *testing.T) {
	doc, tbl := buildGrid([]string{"a"})
	caretIn(t, doc, tbl, 0, 0)

	if !newController(doc).HandleKey(keyUp()) {
		t.Fatal("ArrowUp at first row not handled")
	}
	blocks := doc.Blocks()
	if len(blocks) != 2 {
		t.Fatalf("blocks=%d, want fabricated paragraph plus table", len(blocks))
	}
	if _, ok := blocks[0].(*dom.Paragraph); !ok {
		t.Fatal("fabricated paragraph must precede the table")
	}
	if blocks[1] != dom.Block(tbl) {
		t.Fatal("table moved")
	}
}

func TestArrowDown_EntersTableFromOutside(t *testing.T) {
	doc := dom.NewDocument()
	p := dom.NewParagraph("above")
	doc.AppendBlock(p)
	tbl := dom.NewGrid(2, 2)
	doc.AppendBlock(tbl)
	doc.SetCaret(dom.Caret{Node: p.FirstRun(), Offset: 3})

	if !NewController(doc, Config{}).HandleKey(keyDown()) {
		t.Fatal("ArrowDown next to a table not handled")
	}
	if got := CurrentCell(doc.Caret()); got != tbl.Row(0).Cell(0) {
		t.Fatal("caret not in first cell of the first row")
	}
}

func TestArrowUp_EntersLastRowFirstColumn(t *testing.T) {
	doc := dom.NewDocument()
	tbl := dom.NewTable()
	wide := dom.NewRow()
	for i := 0; i < 3; i++ {
		wide.AppendCell(dom.NewCell(dom.CellData))
	}
	tbl.AppendRow(wide)
	last := dom.NewRow()
	last.AppendCell(dom.NewCell(dom.CellData))
	last.AppendCell(dom.NewCell(dom.CellData))
	tbl.AppendRow(last)
	doc.AppendBlock(tbl)
	p := dom.NewParagraph("below, with a long run")
	doc.AppendBlock(p)
	doc.SetCaret(dom.Caret{Node: p.FirstRun(), Offset: 10})

	if !NewController(doc, Config{}).HandleKey(keyUp()) {
		t.Fatal("ArrowUp below a table not handled")
	}
	// Entry point is the LAST row's FIRST column, regardless of the
	// originating horizontal offset or the row's width.
	if got := CurrentCell(doc.Caret()); got != last.Cell(0) {
		t.Fatal("caret not in first cell of the last row")
	}
}

func TestEnter_EmptyTableNotHandled(t *testing.T) {
	doc := dom.NewDocument()
	p := dom.NewParagraph("above")
	doc.AppendBlock(p)
	doc.AppendBlock(dom.NewTable())
	doc.SetCaret(dom.Caret{Node: p.FirstRun()})

	if NewController(doc, Config{}).HandleKey(keyDown()) {
		t.Fatal("entering a rowless table must not be handled")
	}
}

func TestOutsideTable_OtherKeysNotHandled(t *testing.T) {
	doc := dom.NewDocument()
	p := dom.NewParagraph("plain")
	doc.AppendBlock(p)
	doc.AppendBlock(dom.NewGrid(1, 1))
	doc.SetCaret(dom.Caret{Node: p.FirstRun()})
	ctl := NewController(doc, Config{})

	if ctl.HandleKey(keyTab()) {
		t.Fatal("tab outside a table must not be handled")
	}
	if ctl.HandleKey(keyLeft()) {
		t.Fatal("ArrowLeft outside a table must not be handled")
	}
	if ctl.HandleKey(keyUp()) {
		t.Fatal("ArrowUp with no preceding table must not be handled")
	}
}

func TestInactiveCaret_NotHandled(t *testing.T) {
	doc := dom.NewDocument()
	doc.AppendBlock(dom.NewGrid(1, 1))

	if NewController(doc, Config{}).HandleKey(keyDown()) {
		t.Fatal("inactive caret must not handle keys")
	}
}

func TestTab_DetachedCellNotHandled(t *testing.T) {
	// A cell whose row has no table is a structural anomaly: the key is
	// left to the host with no side effects.
	doc := dom.NewDocument()
	row := dom.NewRow()
	cell := dom.NewCell(dom.CellData)
	cell.AppendRun(dom.NewText("stray"))
	row.AppendCell(cell)
	doc.SetCaret(dom.Caret{Node: cell.LastRun()})
	before := doc.Caret()

	if NewController(doc, Config{}).HandleKey(keyTab()) {
		t.Fatal("tab in a detached cell must not be handled")
	}
	if doc.Caret() != before {
		t.Fatal("caret changed without a resolvable table")
	}
}

func TestReadOnly_TabAtLastCellAbsorbed(t *testing.T) {
	doc, tbl := buildGrid([]string{"a"})
	caretIn(t, doc, tbl, 0, 0)

	if !NewController(doc, Config{ReadOnly: true}).HandleKey(keyTab()) {
		t.Fatal("read-only tab at last cell must still be handled")
	}
	if tbl.RowCount() != 1 {
		t.Fatal("read-only controller mutated the table")
	}
}

func TestOnChange_ReportsShape(t *testing.T) {
	doc, tbl := buildGrid([]string{"a", "b"}, []string{"c", "d"})
	caretIn(t, doc, tbl, 0, 0)

	var got []ChangeEvent
	ctl := NewController(doc, Config{OnChange: func(ev ChangeEvent) { got = append(got, ev) }})

	if !ctl.HandleKey(keyRight()) {
		t.Fatal("ArrowRight not handled")
	}
	if len(got) != 1 {
		t.Fatalf("events=%d, want 1", len(got))
	}
	ev := got[0]
	if ev.Rows != 2 || ev.Cols != 2 {
		t.Fatalf("shape=%dx%d, want 2x2", ev.Rows, ev.Cols)
	}
	if ev.Version != doc.Version() || !ev.Caret.Active() {
		t.Fatalf("event=%+v, want current version and active caret", ev)
	}

	// Absorbed keys that change nothing emit no event.
	caretIn(t, doc, tbl, 0, 0)
	n := len(got)
	if !ctl.HandleKey(keyShiftTab()) {
		t.Fatal("shift+tab at first cell must be handled")
	}
	if len(got) != n {
		t.Fatal("no-op key emitted a change event")
	}
}

func TestController_HostFailureDoesNotAffectResult(t *testing.T) {
	doc, tbl := buildGrid([]string{"a", "b"})
	caretIn(t, doc, tbl, 0, 0)
	host := &recordingHost{fail: true}

	if !NewController(doc, Config{Host: host}).HandleKey(keyRight()) {
		t.Fatal("navigation must be handled despite focus failure")
	}
	if len(host.cells) != 1 || host.cells[0] != tbl.Row(0).Cell(1) {
		t.Fatal("host did not receive the focus request")
	}
}
