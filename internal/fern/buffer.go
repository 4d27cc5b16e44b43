package fern

import "github.com/pkg/errors"

// Buffer is a sized block of coordinates handed to GenerateInto and read
// back by the caller. The caller owns it; the generator never keeps it past
// the call. Refilling a buffer overwrites its previous contents.
type Buffer struct {
	data []float64
}

// Allocate reserves storage for size coordinates. A zero size yields an
// empty buffer that has no readable elements.
func Allocate(size int) *Buffer {
	if size < 0 {
		size = 0
	}
	return &Buffer{data: make([]float64, size)}
}

// Len is the number of coordinates b holds.
func (b *Buffer) Len() int {
	if b == nil {
		return 0
	}
	return len(b.data)
}

// At returns the i-th coordinate.
func (b *Buffer) At(i int) float64 { return b.data[i] }

// Values exposes the backing slice without copying.
func (b *Buffer) Values() []float64 {
	if b == nil {
		return nil
	}
	return b.data
}

// GenerateInto fills the first size slots of xb and yb with chained points
// starting at prev. See Generate for the error contract.
func GenerateInto(prev Point, xb, yb *Buffer, size int, src Source) (int, error) {
	if xb == nil || yb == nil {
		return 0, errors.Wrap(ErrInvalidArgument, "nil buffer")
	}
	return Generate(prev, xb.data, yb.data, size, src)
}

// LastPoint reads the point at slot n-1, the one to continue a chain from.
// With n == 0 there is no such point and ok is false.
func LastPoint(xb, yb *Buffer, n int) (p Point, ok bool) {
	if n <= 0 || n > xb.Len() || n > yb.Len() {
		return Point{}, false
	}
	return Point{X: xb.data[n-1], Y: yb.data[n-1]}, true
}
