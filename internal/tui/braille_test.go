package tui

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBrailleSetPixel(t *testing.T) {
	b := newBrailleBuf(2, 1)
	b.setPixel(0, 0)
	b.setPixel(1, 3)
	b.setPixel(2, 1)
	// out of range is ignored
	b.setPixel(-1, 0)
	b.setPixel(4, 0)
	b.setPixel(0, 4)

	lines := b.toLines()
	assert.Equal(t, []string{string([]rune{0x2800 + 0x81, 0x2800 + 0x02})}, lines)
	assert.Equal(t, 3, b.lit())
}

func TestBrailleBlank(t *testing.T) {
	b := newBrailleBuf(3, 2)
	assert.Equal(t, []string{"   ", "   "}, b.toLines())
	assert.Equal(t, 0, b.lit())
}

func TestHistoryRing(t *testing.T) {
	h := newHistory(4)
	h.push([]float64{1, 2, 3}, []float64{10, 20, 30})
	assert.Equal(t, 3, h.len())
	h.push([]float64{4, 5}, []float64{40, 50})
	xs, ys := h.snapshot()
	assert.Equal(t, []float64{2, 3, 4, 5}, xs)
	assert.Equal(t, []float64{20, 30, 40, 50}, ys)

	// a batch larger than the ring keeps its tail
	h.push([]float64{6, 7, 8, 9, 10, 11}, []float64{0, 0, 0, 0, 0, 1})
	xs, ys = h.snapshot()
	assert.Equal(t, []float64{8, 9, 10, 11}, xs)
	assert.Equal(t, 1.0, ys[3])

	h.reset()
	assert.Equal(t, 0, h.len())
	xs, _ = h.snapshot()
	assert.Empty(t, xs)
}

func TestHumanCount(t *testing.T) {
	assert.Equal(t, "999", humanCount(999))
	assert.Equal(t, "12.3k", humanCount(12345))
	assert.Equal(t, "1.50M", humanCount(1500000))
}
