package table

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/iw2rmb/lattice/dom"
)

// Model is a Bubble Tea component that renders a document's grid and routes
// key input through a Controller.
//
// Rendering is a host-side convenience; all navigation semantics live in
// the Controller and work without a Model.
type Model struct {
	cfg Config
	doc *dom.Document
	ctl *Controller

	focused bool
}

// New returns a model over doc.
func New(doc *dom.Document, cfg Config) Model {
	cfg = normalizeConfig(cfg)
	return Model{
		cfg:     cfg,
		doc:     doc,
		ctl:     NewController(doc, cfg),
		focused: true,
	}
}

// Document returns the underlying document.
func (m Model) Document() *dom.Document { return m.doc }

// Controller returns the navigation controller.
func (m Model) Controller() *Controller { return m.ctl }

func (m Model) Init() tea.Cmd { return nil }

func (m Model) Focus() Model {
	m.focused = true
	return m
}

func (m Model) Blur() Model {
	m.focused = false
	return m
}

func (m Model) Focused() bool { return m.focused }

// Update routes key messages through the controller. Keys the controller
// does not consume are left for the host.
func (m Model) Update(msg tea.Msg) (Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok && m.focused {
		m.ctl.HandleKey(keyMsg)
	}
	return m, nil
}

func (m Model) View() string { return m.renderContent() }
