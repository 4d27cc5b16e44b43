package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

func (m Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}

	// Layout sizes
	helpView := " " + m.help.View(m.keys)
	headerHeight := 1
	footerHeight := 1 + lipgloss.Height(helpView)
	contentHeight := m.height - headerHeight - footerHeight
	if contentHeight < 4 {
		contentHeight = 4
	}
	contentWidth := max(10, m.width)

	// Header
	state := "running"
	if m.paused {
		state = warnStyle.Render("paused")
	}
	header := titleStyle.Render(" fern ─ barnsley fern in the terminal ") + dimStyle.Render(" "+state)
	header = lipgloss.NewStyle().Width(contentWidth).Render(header)

	// Table panel on the right when visible
	var side string
	sideWidth := 0
	if m.showTable {
		side = boxStyle.Render(m.tbl.View())
		sideWidth = lipgloss.Width(side) + 1
	}

	mapWidth := max(10, contentWidth-sideWidth)
	mapHeight := contentHeight

	var canvas string
	if m.exportMode {
		prompt := boxStyle.Width(min(60, mapWidth-4)).Render(m.ti.View())
		canvas = lipgloss.Place(mapWidth, mapHeight, lipgloss.Center, lipgloss.Center, prompt)
	} else {
		lines := m.renderFern(mapWidth, mapHeight)
		canvas = fernStyle(m.cfg.Color).Render(strings.Join(lines, "\n"))
	}
	mapView := lipgloss.NewStyle().Width(mapWidth).Height(mapHeight).Render(canvas)

	body := mapView
	if m.showTable {
		body = lipgloss.JoinHorizontal(lipgloss.Top, mapView, " ", side)
	}

	// Footer: status left, chain summary right, help below
	status := dimStyle.Render(" " + m.status + " ")
	last := m.chain.Last
	summary := dimStyle.Render(fmt.Sprintf("  pts=%s kept=%s batch=%d last=(%.4f, %.4f)  ",
		humanCount(m.chain.Produced), humanCount(m.hist.len()), m.batch, last.X, last.Y))
	spacerW := max(0, contentWidth-lipgloss.Width(status)-lipgloss.Width(summary))
	statusLine := lipgloss.JoinHorizontal(lipgloss.Bottom, status, strings.Repeat(" ", spacerW), summary)
	footer := lipgloss.JoinVertical(lipgloss.Left, statusLine, helpView)

	ui := lipgloss.JoinVertical(lipgloss.Left, header, body, footer)
	return appStyle.Width(contentWidth).Height(m.height).Render(ui)
}
