package fern

import (
	"math/rand/v2"

	"github.com/pkg/errors"
)

// ErrExhausted is returned by a scripted source once every draw is consumed.
var ErrExhausted = errors.New("draw source exhausted")

// Source yields uniform draws in [0,1), one per produced point.
type Source interface {
	Draw() (float64, error)
}

// SourceFunc adapts a plain function to Source.
type SourceFunc func() (float64, error)

func (f SourceFunc) Draw() (float64, error) { return f() }

// RandSource draws from a seeded PCG generator. It is not safe for
// concurrent use; give each goroutine its own.
type RandSource struct {
	r *rand.Rand
}

// NewRandSource creates a deterministic source for seed.
func NewRandSource(seed uint64) *RandSource {
	return &RandSource{r: rand.New(rand.NewPCG(seed, 0))}
}

func (s *RandSource) Draw() (float64, error) {
	return s.r.Float64(), nil
}

// Script replays a recorded sequence of draws.
type Script struct {
	draws []float64
	next  int
}

// NewScript returns a source that yields draws in order.
func NewScript(draws []float64) *Script {
	return &Script{draws: draws}
}

func (s *Script) Draw() (float64, error) {
	if s.next >= len(s.draws) {
		return 0, errors.Wrapf(ErrExhausted, "after %d draws", s.next)
	}
	d := s.draws[s.next]
	s.next++
	return d, nil
}

// Used is the number of draws consumed so far.
func (s *Script) Used() int { return s.next }

// Tally counts which transform each draw of the wrapped source selects.
type Tally struct {
	Source Source
	Hits   [4]int
}

func (t *Tally) Draw() (float64, error) {
	d, err := t.Source.Draw()
	if err != nil {
		return d, err
	}
	t.Hits[Select(d).ID]++
	return d, nil
}

// Total is the number of draws counted.
func (t *Tally) Total() int {
	n := 0
	for _, h := range t.Hits {
		n += h
	}
	return n
}

// Reset zeroes the counters.
func (t *Tally) Reset() { t.Hits = [4]int{} }
