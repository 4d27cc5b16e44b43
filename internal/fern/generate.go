package fern

import "github.com/pkg/errors"

// ErrInvalidArgument reports a batch request whose sizes do not fit.
var ErrInvalidArgument = errors.New("invalid argument")

// Generate writes n chained points starting from prev into xs and ys.
// Point i is Step(point i-1, draw i) with point -1 being prev.
//
// Both slices must hold at least n elements; otherwise ErrInvalidArgument is
// returned and the source is not touched. If the source fails, the points
// written before the failure form a valid prefix and their count is returned
// with the error.
func Generate(prev Point, xs, ys []float64, n int, src Source) (int, error) {
	if n < 0 {
		return 0, errors.Wrapf(ErrInvalidArgument, "negative size %d", n)
	}
	if len(xs) < n || len(ys) < n {
		return 0, errors.Wrapf(ErrInvalidArgument, "size %d exceeds buffers (x=%d, y=%d)", n, len(xs), len(ys))
	}
	xs, ys = xs[:n], ys[:n]
	p := prev
	for i := range xs {
		d, err := src.Draw()
		if err != nil {
			return i, errors.Wrapf(err, "draw %d of %d", i, n)
		}
		p = Select(d).Apply(p)
		xs[i], ys[i] = p.X, p.Y
	}
	return n, nil
}
