// Package export renders fern point clouds outside the terminal viewer.
package export

import (
	"context"

	"golang.org/x/sync/errgroup"

	"fernview/internal/fern"
)

// Cloud is a set of generated points kept as parallel coordinate slices.
type Cloud struct {
	X []float64
	Y []float64
}

// Len is the number of points in c.
func (c *Cloud) Len() int { return len(c.X) }

func (c *Cloud) add(xs, ys []float64) error {
	c.X = append(c.X, xs...)
	c.Y = append(c.Y, ys...)
	return nil
}

// Collect generates total points split over workers independent chains, each
// starting at the origin with its own draw source from newSource. Chains share
// nothing, so they run concurrently. Points are returned grouped by chain in
// worker order.
func Collect(ctx context.Context, total, workers, batch int, newSource func(worker int) fern.Source) (*Cloud, error) {
	if workers <= 0 {
		workers = 1
	}
	parts := make([]Cloud, workers)
	g, ctx := errgroup.WithContext(ctx)
	for w := 0; w < workers; w++ {
		n := total / workers
		if w < total%workers {
			n++
		}
		part := &parts[w]
		part.X = make([]float64, 0, n)
		part.Y = make([]float64, 0, n)
		src := newSource(w)
		g.Go(func() error {
			_, err := fern.Stream(ctx, fern.Point{}, n, batch, src, part.add)
			return err
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	out := &Cloud{X: make([]float64, 0, total), Y: make([]float64, 0, total)}
	for i := range parts {
		_ = out.add(parts[i].X, parts[i].Y)
	}
	return out, nil
}
