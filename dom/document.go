package dom

// Caret is the logical cursor: a content node plus an offset within it.
// Offsets count grapheme clusters. The zero Caret is inactive.
type Caret struct {
	Node   Node
	Offset int
}

// Active reports whether the caret points at a node.
func (c Caret) Active() bool { return c.Node != nil }

// Document is the block container owning the caret and a version counter.
// The version increases on every structural or caret mutation, so hosts can
// cheaply detect change.
type Document struct {
	blocks  []Block
	caret   Caret
	version uint64
}

// NewDocument returns an empty document.
func NewDocument() *Document { return &Document{} }

func (d *Document) Kind() NodeKind { return KindDocument }

func (d *Document) Parent() Node { return nil }

// Version returns the mutation counter.
func (d *Document) Version() uint64 { return d.version }

func (d *Document) bump() { d.version++ }

// Blocks returns the document's block children in order.
func (d *Document) Blocks() []Block { return d.blocks }

// Caret returns the current caret. It may be inactive.
func (d *Document) Caret() Caret { return d.caret }

// SetCaret replaces the active caret.
func (d *Document) SetCaret(c Caret) {
	if d.caret == c {
		return
	}
	d.caret = c
	d.bump()
}

// ClearCaret deactivates the caret.
func (d *Document) ClearCaret() { d.SetCaret(Caret{}) }

// AppendBlock attaches b as the document's last block.
func (d *Document) AppendBlock(b Block) {
	d.insertBlock(len(d.blocks), b)
}

// InsertBlockBefore attaches b immediately before ref. When ref is not a
// child of the document, b is appended.
func (d *Document) InsertBlockBefore(ref, b Block) {
	if i := d.blockIndex(ref); i >= 0 {
		d.insertBlock(i, b)
		return
	}
	d.AppendBlock(b)
}

// InsertBlockAfter attaches b immediately after ref. When ref is not a
// child of the document, b is appended.
func (d *Document) InsertBlockAfter(ref, b Block) {
	if i := d.blockIndex(ref); i >= 0 {
		d.insertBlock(i+1, b)
		return
	}
	d.AppendBlock(b)
}

// BlockBefore returns the sibling immediately before b, or nil.
func (d *Document) BlockBefore(b Block) Block {
	i := d.blockIndex(b)
	if i <= 0 {
		return nil
	}
	return d.blocks[i-1]
}

// BlockAfter returns the sibling immediately after b, or nil.
func (d *Document) BlockAfter(b Block) Block {
	i := d.blockIndex(b)
	if i < 0 || i+1 >= len(d.blocks) {
		return nil
	}
	return d.blocks[i+1]
}

func (d *Document) blockIndex(b Block) int {
	for i, child := range d.blocks {
		if child == b {
			return i
		}
	}
	return -1
}

func (d *Document) insertBlock(i int, b Block) {
	if i < 0 {
		i = 0
	}
	if i > len(d.blocks) {
		i = len(d.blocks)
	}
	d.attach(b)
	d.blocks = append(d.blocks, nil)
	copy(d.blocks[i+1:], d.blocks[i:])
	d.blocks[i] = b
	d.bump()
}

func (d *Document) attach(b Block) {
	switch n := b.(type) {
	case *Paragraph:
		n.doc = d
	case *Table:
		n.doc = d
	}
}

// ContainingBlock returns the nearest block ancestor of n (the node itself
// when n already is a block), or nil for detached nodes.
func ContainingBlock(n Node) Block {
	found := Ancestor(n, func(a Node) bool {
		_, ok := a.(Block)
		return ok
	})
	if found == nil {
		return nil
	}
	return found.(Block)
}
