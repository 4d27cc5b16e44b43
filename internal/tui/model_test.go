package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fernview/internal/config"
	"fernview/internal/fern"
)

func testModel(t *testing.T, src fern.Source) Model {
	t.Helper()
	cfg := config.Default()
	cfg.Batch = 100
	cfg.History = 1000
	m := New(cfg, src)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 100, Height: 30})
	return next.(Model)
}

func press(t *testing.T, m Model, keys ...string) Model {
	t.Helper()
	for _, k := range keys {
		var msg tea.KeyMsg
		switch k {
		case "enter":
			msg = tea.KeyMsg{Type: tea.KeyEnter}
		case "esc":
			msg = tea.KeyMsg{Type: tea.KeyEscape}
		default:
			msg = tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
		}
		next, _ := m.Update(msg)
		m = next.(Model)
	}
	return m
}

func tick(m Model) Model {
	next, _ := m.Update(tickMsg{})
	return next.(Model)
}

func TestTickAdvancesChain(t *testing.T) {
	m := testModel(t, fern.NewRandSource(1))
	m = tick(m)
	m = tick(m)
	assert.Equal(t, 200, m.Chain().Produced)
	assert.Equal(t, 200, m.hist.len())
	assert.Equal(t, 200, m.src.Total())

	// the chain continues exactly where a single run would be
	xs := make([]float64, 200)
	ys := make([]float64, 200)
	_, err := fern.Generate(fern.Point{}, xs, ys, 200, fern.NewRandSource(1))
	require.NoError(t, err)
	assert.Equal(t, fern.Point{X: xs[199], Y: ys[199]}, m.Chain().Last)
}

func TestPauseStopsGeneration(t *testing.T) {
	m := testModel(t, fern.NewRandSource(1))
	m = press(t, m, "p")
	assert.True(t, m.paused)
	m = tick(m)
	assert.Equal(t, 0, m.Chain().Produced)
	m = press(t, m, "p")
	m = tick(m)
	assert.Equal(t, 100, m.Chain().Produced)
}

func TestBatchKeys(t *testing.T) {
	m := testModel(t, fern.NewRandSource(1))
	m = press(t, m, "]", "]")
	assert.Equal(t, 400, m.batch)
	m = tick(m)
	assert.Equal(t, 400, m.Chain().Produced)
	assert.GreaterOrEqual(t, m.xb.Len(), 400)
	m = press(t, m, "[", "[", "[", "[", "[", "[", "[", "[", "[", "[")
	assert.Equal(t, 1, m.batch)
}

func TestSourceFailurePauses(t *testing.T) {
	m := testModel(t, fern.NewScript([]float64{0.005, 0.5, 0.95}))
	m = tick(m)
	assert.True(t, m.paused)
	assert.Contains(t, m.status, "draw error")
	assert.Equal(t, 3, m.Chain().Produced)
	assert.InDelta(t, 0.448, m.Chain().Last.X, 1e-9)
	assert.Equal(t, 3, m.hist.len())
}

func TestZoomAndReset(t *testing.T) {
	m := testModel(t, fern.NewRandSource(1))
	m = press(t, m, "+", "+")
	assert.InDelta(t, 1.44, m.zoom, 1e-9)
	m = press(t, m, "0")
	assert.Equal(t, 1.0, m.zoom)
	assert.Equal(t, 0, m.offsetX)
}

func TestClear(t *testing.T) {
	m := testModel(t, fern.NewRandSource(1))
	m = tick(m)
	m = press(t, m, "c")
	assert.Equal(t, 0, m.hist.len())
	assert.Equal(t, 0, m.src.Total())
	// the chain keeps going from where it was
	assert.Equal(t, 100, m.Chain().Produced)
}

func TestExportPromptCancel(t *testing.T) {
	m := testModel(t, fern.NewRandSource(1))
	m = press(t, m, "e")
	assert.True(t, m.exportMode)
	// keys go to the prompt, not the viewer
	m = press(t, m, "q")
	assert.True(t, m.exportMode)
	assert.Equal(t, "q", m.ti.Value())
	m = press(t, m, "esc")
	assert.False(t, m.exportMode)
}

func TestTransformTable(t *testing.T) {
	m := testModel(t, fern.NewScript([]float64{0.005, 0.5, 0.5, 0.95}))
	m = press(t, m, "t")
	m = tick(m)
	rows := m.tbl.Rows()
	require.Len(t, rows, 4)
	assert.Equal(t, "stem", rows[0][1])
	assert.Equal(t, "2", rows[1][9])
	assert.Equal(t, "50.00%", rows[1][10])
}

func TestScreenXYMicroFitsBounds(t *testing.T) {
	m := testModel(t, fern.NewRandSource(1))
	w, h := 40, 20
	b := fern.Bounds()
	corners := []fern.Point{{b.MinX, b.MinY}, {b.MaxX, b.MaxY}, {b.MinX, b.MaxY}, {b.MaxX, b.MinY}}
	for _, p := range corners {
		mx, my, ok := m.screenXYMicro(p.X, p.Y, w, h)
		require.True(t, ok)
		assert.GreaterOrEqual(t, mx, 0)
		assert.Less(t, mx, w*2)
		assert.GreaterOrEqual(t, my, 0)
		assert.Less(t, my, h*4)
	}
	// y grows upward on screen
	_, top, _ := m.screenXYMicro(0, b.MaxY, w, h)
	_, bottom, _ := m.screenXYMicro(0, b.MinY, w, h)
	assert.Less(t, top, bottom)

	_, _, ok := m.screenXYMicro(0, 0, 0, 0)
	assert.False(t, ok)
}

func TestViewDrawsFern(t *testing.T) {
	m := testModel(t, fern.NewRandSource(1))
	for i := 0; i < 5; i++ {
		m = tick(m)
	}
	lines := m.renderFern(40, 20)
	require.Len(t, lines, 20)
	dots := 0
	for _, l := range lines {
		for _, r := range l {
			if r >= 0x2801 && r <= 0x28FF {
				dots++
			}
		}
	}
	assert.Greater(t, dots, 0)

	view := m.View()
	assert.True(t, strings.Contains(view, "barnsley fern"))
	assert.Contains(t, view, "pts=500")
}
