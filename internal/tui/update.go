package tui

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"fernview/internal/export"
)

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
	case tickMsg:
		if !m.paused {
			m.step()
			if m.showTable {
				m.refreshTable()
			}
		}
		return m, m.tick()
	case exportDoneMsg:
		if msg.err != nil {
			m.status = "export error: " + msg.err.Error()
			slog.Error("export failed", "path", msg.path, "err", msg.err)
		} else {
			m.status = fmt.Sprintf("exported %s points to %s", humanCount(msg.points), msg.path)
			slog.Info("exported fern", "path", msg.path, "points", msg.points)
		}
	case tea.KeyMsg:
		if m.exportMode {
			switch msg.String() {
			case "esc":
				m.exportMode = false
				m.ti.Blur()
				m.status = "export cancelled"
				return m, nil
			case "enter":
				path := strings.TrimSpace(m.ti.Value())
				if path == "" {
					path = m.ti.Placeholder
				}
				m.exportMode = false
				m.ti.Blur()
				m.status = "exporting " + path
				return m, m.exportCmd(path)
			}
			var cmd tea.Cmd
			m.ti, cmd = m.ti.Update(msg)
			return m, cmd
		}
		switch {
		case key.Matches(msg, m.keys.Quit):
			return m, tea.Quit
		case key.Matches(msg, m.keys.Pause):
			m.paused = !m.paused
			if m.paused {
				m.status = "paused"
			} else {
				m.status = "running"
			}
		case key.Matches(msg, m.keys.ZoomIn):
			if m.zoom < 64 {
				m.zoom *= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case key.Matches(msg, m.keys.ZoomOut):
			if m.zoom > 0.25 {
				m.zoom /= 1.2
				m.status = fmt.Sprintf("zoom: %.2fx", m.zoom)
			}
		case key.Matches(msg, m.keys.Up):
			m.offsetY--
		case key.Matches(msg, m.keys.Down):
			m.offsetY++
		case key.Matches(msg, m.keys.Left):
			m.offsetX -= 2
		case key.Matches(msg, m.keys.Right):
			m.offsetX += 2
		case key.Matches(msg, m.keys.Reset):
			m.zoom = 1.0
			m.offsetX, m.offsetY = 0, 0
			m.status = "view reset"
		case key.Matches(msg, m.keys.Faster):
			if m.batch < maxBatch {
				m.batch *= 2
			}
			m.status = fmt.Sprintf("batch: %d points/tick", m.batch)
		case key.Matches(msg, m.keys.Slower):
			if m.batch > 1 {
				m.batch /= 2
			}
			m.status = fmt.Sprintf("batch: %d points/tick", m.batch)
		case key.Matches(msg, m.keys.Clear):
			m.hist.reset()
			m.src.Reset()
			m.refreshTable()
			m.status = "cleared"
		case key.Matches(msg, m.keys.Table):
			m.showTable = !m.showTable
			if m.showTable {
				m.refreshTable()
			}
		case key.Matches(msg, m.keys.Export):
			m.exportMode = true
			m.ti.SetValue("")
			m.status = "export mode"
			return m, m.ti.Focus()
		case key.Matches(msg, m.keys.Help):
			m.help.ShowAll = !m.help.ShowAll
		}
	}
	return m, nil
}

// exportCmd writes the current history to a PNG off the update loop.
func (m Model) exportCmd(path string) tea.Cmd {
	xs, ys := m.hist.snapshot()
	col, err := m.cfg.Colorful()
	opts := export.PNGOptions{Size: m.cfg.Size, Color: col, Alpha: m.cfg.Alpha, Radius: m.cfg.Radius}
	return func() tea.Msg {
		if err != nil {
			return exportDoneMsg{path: path, err: err}
		}
		cloud := &export.Cloud{X: xs, Y: ys}
		return exportDoneMsg{path: path, points: cloud.Len(), err: export.SavePNG(path, cloud, opts)}
	}
}
