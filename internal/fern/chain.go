package fern

import (
	"context"

	"github.com/pkg/errors"
)

// Chain is the host's view of a running fern: the last point produced and
// how many points came before it. It is a plain value threaded between
// batches; the generator itself keeps nothing.
type Chain struct {
	Last     Point
	Produced int
}

// Next generates n points after c into xb and yb and returns the advanced
// chain. On a draw failure the chain advances over the valid prefix only.
func (c Chain) Next(xb, yb *Buffer, n int, src Source) (Chain, int, error) {
	written, err := GenerateInto(c.Last, xb, yb, n, src)
	if p, ok := LastPoint(xb, yb, written); ok {
		c.Last = p
	}
	c.Produced += written
	return c, written, err
}

// Stream produces total points from prev in batches of at most batch points,
// calling emit after each one with the freshly written coordinates. The
// slices passed to emit are reused by the next batch. Cancellation is only
// observed between batches. The returned chain covers every emitted point.
func Stream(ctx context.Context, prev Point, total, batch int, src Source, emit func(xs, ys []float64) error) (Chain, error) {
	c := Chain{Last: prev}
	if total < 0 || batch <= 0 {
		return c, errors.Wrapf(ErrInvalidArgument, "total %d, batch %d", total, batch)
	}
	size := min(batch, total)
	xb, yb := Allocate(size), Allocate(size)
	for c.Produced < total {
		if err := ctx.Err(); err != nil {
			return c, err
		}
		n := min(size, total-c.Produced)
		var (
			written int
			err     error
		)
		c, written, err = c.Next(xb, yb, n, src)
		if written > 0 {
			if eerr := emit(xb.data[:written], yb.data[:written]); eerr != nil {
				return c, eerr
			}
		}
		if err != nil {
			return c, err
		}
	}
	return c, nil
}
