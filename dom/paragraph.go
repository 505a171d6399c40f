package dom

// Paragraph is a block of inline text runs.
type Paragraph struct {
	doc  *Document
	runs []*Text
}

// NewParagraph returns a detached paragraph containing one run per argument.
func NewParagraph(content ...string) *Paragraph {
	p := &Paragraph{}
	for _, c := range content {
		p.AppendRun(NewText(c))
	}
	return p
}

// PlaceholderParagraph returns a paragraph holding a single placeholder run.
func PlaceholderParagraph() *Paragraph {
	p := &Paragraph{}
	p.AppendRun(PlaceholderText())
	return p
}

func (p *Paragraph) Kind() NodeKind { return KindParagraph }

func (p *Paragraph) Parent() Node {
	if p.doc == nil {
		return nil
	}
	return p.doc
}

func (p *Paragraph) block() {}

// Runs returns the paragraph's text runs in order.
func (p *Paragraph) Runs() []*Text { return p.runs }

// FirstRun returns the first run, or nil for an empty paragraph.
func (p *Paragraph) FirstRun() *Text {
	if len(p.runs) == 0 {
		return nil
	}
	return p.runs[0]
}

// LastRun returns the last run, or nil for an empty paragraph.
func (p *Paragraph) LastRun() *Text {
	if len(p.runs) == 0 {
		return nil
	}
	return p.runs[len(p.runs)-1]
}

// IsEmpty reports whether the paragraph has no runs.
func (p *Paragraph) IsEmpty() bool { return len(p.runs) == 0 }

// AppendRun attaches t as the paragraph's last run.
func (p *Paragraph) AppendRun(t *Text) {
	t.parent = p
	p.runs = append(p.runs, t)
	if p.doc != nil {
		p.doc.bump()
	}
}

// Content returns the concatenated run content.
func (p *Paragraph) Content() string {
	var s string
	for _, r := range p.runs {
		s += r.content
	}
	return s
}
