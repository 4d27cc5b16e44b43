package tui

import (
	"math"

	"fernview/internal/fern"
)

// renderFern plots the point history into a w x h cell canvas.
func (m Model) renderFern(w, h int) []string {
	br := newBrailleBuf(w, h)
	m.hist.each(func(x, y float64) {
		if mx, my, ok := m.screenXYMicro(x, y, w, h); ok {
			br.setPixel(mx, my)
		}
	})
	return br.toLines()
}

// screenXYMicro maps fern coordinates into a 2x4 microgrid per cell. The
// bounds are fitted to the canvas keeping their aspect ratio, y up, then
// zoomed about the centre and panned.
func (m Model) screenXYMicro(x, y float64, w, h int) (int, int, bool) {
	wMic := float64(w * 2)
	hMic := float64(h * 4)
	if wMic < 2 || hMic < 2 {
		return 0, 0, false
	}
	b := fern.Bounds()
	scale := math.Min((wMic-1)/b.Width(), (hMic-1)/b.Height()) * m.zoom
	cx := (b.MinX + b.MaxX) / 2
	cy := (b.MinY + b.MaxY) / 2
	sx := wMic/2 + (x-cx)*scale
	sy := hMic/2 - (y-cy)*scale
	return int(math.Floor(sx)) + m.offsetX*2, int(math.Floor(sy)) + m.offsetY*4, true
}
