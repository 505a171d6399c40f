package dom

import graphemeutil "github.com/iw2rmb/lattice/internal/grapheme"

// placeholderContent is the minimal non-empty unit inserted so that empty
// cells and paragraphs stay focusable.
const placeholderContent = " "

// Text is an inline run of content inside a Paragraph or Cell.
type Text struct {
	parent      Node
	content     string
	placeholder bool
}

// NewText returns a detached text run with the given content.
func NewText(content string) *Text {
	return &Text{content: content}
}

// PlaceholderText returns a new placeholder run.
func PlaceholderText() *Text {
	return &Text{content: placeholderContent, placeholder: true}
}

func (t *Text) Kind() NodeKind { return KindText }

func (t *Text) Parent() Node { return t.parent }

// Content returns the raw run content.
func (t *Text) Content() string { return t.content }

// Len returns the caret length of the run in grapheme clusters.
func (t *Text) Len() int { return graphemeutil.Count(t.content) }

// IsPlaceholder reports whether the run is a placeholder unit.
func (t *Text) IsPlaceholder() bool { return t.placeholder }
