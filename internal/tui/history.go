package tui

// history is a fixed-capacity ring of recent points. When full, the oldest
// points are overwritten.
type history struct {
	xs, ys []float64
	start  int
	n      int
}

func newHistory(capacity int) *history {
	return &history{xs: make([]float64, capacity), ys: make([]float64, capacity)}
}

func (h *history) len() int { return h.n }
func (h *history) cap() int { return len(h.xs) }

func (h *history) reset() {
	h.start, h.n = 0, 0
}

func (h *history) push(xs, ys []float64) {
	c := h.cap()
	if c == 0 {
		return
	}
	if len(xs) > c {
		xs, ys = xs[len(xs)-c:], ys[len(ys)-c:]
	}
	for i := range xs {
		j := (h.start + h.n) % c
		h.xs[j], h.ys[j] = xs[i], ys[i]
		if h.n < c {
			h.n++
		} else {
			h.start = (h.start + 1) % c
		}
	}
}

// each visits points from oldest to newest.
func (h *history) each(fn func(x, y float64)) {
	c := h.cap()
	for i := 0; i < h.n; i++ {
		j := (h.start + i) % c
		fn(h.xs[j], h.ys[j])
	}
}

// snapshot copies the points out, oldest first.
func (h *history) snapshot() (xs, ys []float64) {
	xs = make([]float64, 0, h.n)
	ys = make([]float64, 0, h.n)
	h.each(func(x, y float64) {
		xs = append(xs, x)
		ys = append(ys, y)
	})
	return xs, ys
}
