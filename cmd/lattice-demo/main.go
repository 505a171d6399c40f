package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/pkg/errors"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/iw2rmb/lattice/dom"
	"github.com/iw2rmb/lattice/table"
)

type demoConfig struct {
	Rows      int    `yaml:"rows"`
	Cols      int    `yaml:"cols"`
	HeaderRow bool   `yaml:"header_row"`
	LogFile   string `yaml:"log_file"`
}

func defaultConfig() demoConfig {
	return demoConfig{Rows: 3, Cols: 3, HeaderRow: true}
}

func loadConfig(path string) (demoConfig, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, errors.Wrap(err, "read config")
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, errors.Wrap(err, "parse config")
	}
	if cfg.Rows < 1 {
		cfg.Rows = 1
	}
	if cfg.Cols < 1 {
		cfg.Cols = 1
	}
	return cfg, nil
}

func newLogger(path string) (*zap.Logger, error) {
	if path == "" {
		return zap.NewNop(), nil
	}
	zc := zap.NewProductionConfig()
	zc.OutputPaths = []string{path}
	logger, err := zc.Build()
	if err != nil {
		return nil, errors.Wrap(err, "build logger")
	}
	return logger, nil
}

func buildDocument(cfg demoConfig) *dom.Document {
	doc := dom.NewDocument()
	doc.AppendBlock(dom.NewParagraph("Arrows and tab navigate; tab on the last cell grows the table."))

	tbl := dom.NewTableWithBody()
	for r := 0; r < cfg.Rows; r++ {
		row := dom.NewRow()
		for c := 0; c < cfg.Cols; c++ {
			kind := dom.CellData
			if cfg.HeaderRow && r == 0 {
				kind = dom.CellHeader
			}
			cell := dom.NewCell(kind)
			if kind == dom.CellHeader {
				cell.AppendRun(dom.NewText(fmt.Sprintf("col %d", c)))
			} else {
				cell.AppendRun(dom.NewText(fmt.Sprintf("r%dc%d", r, c)))
			}
			row.AppendCell(cell)
		}
		tbl.AppendRow(row)
	}
	doc.AppendBlock(tbl)
	doc.AppendBlock(dom.NewParagraph("Arrow down past the last row to land here."))
	return doc
}

type model struct {
	grid table.Model
}

func newModel(cfg demoConfig, logger *zap.Logger) model {
	var m model
	doc := buildDocument(cfg)
	m.grid = table.New(doc, table.Config{
		Style: table.DefaultStyle(),
		OnChange: func(ev table.ChangeEvent) {
			logger.Info("change",
				zap.Uint64("version", ev.Version),
				zap.Int("rows", ev.Rows),
				zap.Int("cols", ev.Cols),
			)
		},
	})
	if first := firstCell(doc); first != nil {
		table.FocusCell(doc, first, nil)
	}
	return m
}

func firstCell(doc *dom.Document) *dom.Cell {
	for _, b := range doc.Blocks() {
		if tbl, ok := b.(*dom.Table); ok && tbl.RowCount() > 0 {
			return tbl.Row(0).Cell(0)
		}
	}
	return nil
}

func (m model) Init() tea.Cmd { return nil }

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		ed := m.grid.Controller().Editor()
		switch keyMsg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "alt+up":
			ed.InsertRowAbove()
			return m, nil
		case "alt+down":
			ed.InsertRowBelow()
			return m, nil
		case "alt+left":
			ed.InsertColumnLeft()
			return m, nil
		case "alt+right":
			ed.InsertColumnRight()
			return m, nil
		case "ctrl+d":
			ed.DeleteRow()
			return m, nil
		case "ctrl+k":
			ed.DeleteColumn()
			return m, nil
		}
	}

	var cmd tea.Cmd
	m.grid, cmd = m.grid.Update(msg)
	return m, cmd
}

func (m model) View() string {
	var sb strings.Builder
	sb.WriteString(m.grid.View())
	sb.WriteString("\n\n")
	sb.WriteString("alt+arrows insert · ctrl+d delete row · ctrl+k delete column · q quit\n")
	return sb.String()
}

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg, err := loadConfig(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	logger, err := newLogger(cfg.LogFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	p := tea.NewProgram(newModel(cfg, logger), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		fmt.Fprintln(os.Stderr, errors.Wrap(err, "run program"))
		os.Exit(1)
	}
}
