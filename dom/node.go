package dom

// NodeKind identifies the structural type of a node.
type NodeKind uint8

const (
	KindDocument NodeKind = iota
	KindParagraph
	KindText
	KindTable
	KindSection
	KindRow
	KindCell
)

// String returns a short name for the kind.
func (k NodeKind) String() string {
	switch k {
	case KindDocument:
		return "document"
	case KindParagraph:
		return "paragraph"
	case KindText:
		return "text"
	case KindTable:
		return "table"
	case KindSection:
		return "section"
	case KindRow:
		return "row"
	case KindCell:
		return "cell"
	default:
		return "unknown"
	}
}

// Node is any member of the document tree.
//
// Parent returns nil for the document root and for detached fragments.
type Node interface {
	Kind() NodeKind
	Parent() Node
}

// Block is a top-level child of a Document: a Paragraph or a Table.
type Block interface {
	Node
	block()
}

// Ancestor walks parent pointers from n (inclusive) and returns the first
// node for which match reports true, or nil.
func Ancestor(n Node, match func(Node) bool) Node {
	for cur := n; cur != nil; cur = cur.Parent() {
		if match(cur) {
			return cur
		}
	}
	return nil
}
