package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/table"

	"fernview/internal/fern"
)

func transformColumns() []table.Column {
	cols := []table.Column{
		{Title: "#", Width: 2},
		{Title: "map", Width: 13},
		{Title: "p", Width: 5},
	}
	for _, c := range []string{"a", "b", "c", "d", "e", "f"} {
		cols = append(cols, table.Column{Title: c, Width: 6})
	}
	return append(cols, table.Column{Title: "hits", Width: 9}, table.Column{Title: "share", Width: 7})
}

// transformRows lists the four maps with how often each was drawn.
func transformRows(hits [4]int) []table.Row {
	total := 0
	for _, h := range hits {
		total += h
	}
	ts := fern.Transforms()
	rows := make([]table.Row, 0, len(ts))
	for i, t := range ts {
		share := "-"
		if total > 0 {
			share = fmt.Sprintf("%.2f%%", 100*float64(hits[i])/float64(total))
		}
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			t.ID.String(),
			fmt.Sprintf("%.2f", t.Weight()),
			fmt.Sprintf("%g", t.A),
			fmt.Sprintf("%g", t.B),
			fmt.Sprintf("%g", t.C),
			fmt.Sprintf("%g", t.D),
			fmt.Sprintf("%g", t.E),
			fmt.Sprintf("%g", t.F),
			humanCount(hits[i]),
			share,
		})
	}
	return rows
}

func (m *Model) refreshTable() {
	m.tbl.SetRows(transformRows(m.src.Hits))
}
