// Package tui is an interactive terminal viewer that grows the fern a batch
// at a time and plots it with braille dots.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"fernview/internal/config"
	"fernview/internal/fern"
)

const maxBatch = 1 << 20

type Model struct {
	width  int
	height int

	cfg  config.Config
	keys keyMap
	help help.Model

	paused bool

	zoom    float64
	offsetX int
	offsetY int

	status string

	// Generator session: the chain is the only state carried between
	// batches, the buffers are reused for every tick.
	chain fern.Chain
	batch int
	xb    *fern.Buffer
	yb    *fern.Buffer
	src   *fern.Tally
	hist  *history

	// transform table
	showTable bool
	tbl       table.Model

	// export prompt
	exportMode bool
	ti         textinput.Model
}

type tickMsg time.Time

type exportDoneMsg struct {
	path   string
	points int
	err    error
}

// New creates a viewer drawing from src with settings from cfg.
func New(cfg config.Config, src fern.Source) Model {
	m := Model{
		cfg:    cfg,
		keys:   defaultKeys(),
		help:   help.New(),
		zoom:   1.0,
		status: "fern ready",
		batch:  cfg.Batch,
		xb:     fern.Allocate(cfg.Batch),
		yb:     fern.Allocate(cfg.Batch),
		src:    &fern.Tally{Source: src},
		hist:   newHistory(cfg.History),
	}
	m.tbl = table.New(table.WithColumns(transformColumns()), table.WithFocused(false), table.WithHeight(5))
	m.refreshTable()

	m.ti = textinput.New()
	m.ti.Placeholder = "fern.png"
	m.ti.Prompt = "export to: "
	m.ti.CharLimit = 256
	return m
}

func (m Model) Init() tea.Cmd { return m.tick() }

func (m Model) tick() tea.Cmd {
	return tea.Tick(m.cfg.Interval.Duration, func(t time.Time) tea.Msg { return tickMsg(t) })
}

// Chain is the current generator session.
func (m Model) Chain() fern.Chain { return m.chain }

// step runs one batch from the last point and records it.
func (m *Model) step() {
	if m.xb.Len() < m.batch {
		m.xb, m.yb = fern.Allocate(m.batch), fern.Allocate(m.batch)
	}
	var (
		n   int
		err error
	)
	m.chain, n, err = m.chain.Next(m.xb, m.yb, m.batch, m.src)
	m.hist.push(m.xb.Values()[:n], m.yb.Values()[:n])
	if err != nil {
		m.paused = true
		m.status = "draw error: " + err.Error()
	}
}
