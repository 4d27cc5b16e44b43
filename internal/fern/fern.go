// Package fern generates points of the Barnsley fern with the chaos game.
//
// The generator is stateless between calls: every batch starts from an
// explicit previous point and consumes exactly one draw per produced point.
package fern

// Point is a coordinate pair on the fern plane.
type Point struct {
	X float64
	Y float64
}

// TransformID identifies one of the four fern maps.
type TransformID int

const (
	Stem TransformID = iota
	LargeLeaflet
	LeftLeaflet
	RightLeaflet
)

func (id TransformID) String() string {
	switch id {
	case Stem:
		return "stem"
	case LargeLeaflet:
		return "large leaflet"
	case LeftLeaflet:
		return "left leaflet"
	case RightLeaflet:
		return "right leaflet"
	}
	return "unknown"
}

// Transform is an affine map x' = A*x + B*y + E, y' = C*x + D*y + F.
// Upper is the exclusive cumulative probability bound used for selection.
type Transform struct {
	ID    TransformID
	Upper float64
	A, B  float64
	C, D  float64
	E, F  float64
}

// Apply maps p through t.
func (t Transform) Apply(p Point) Point {
	return Point{
		X: t.A*p.X + t.B*p.Y + t.E,
		Y: t.C*p.X + t.D*p.Y + t.F,
	}
}

// Weight is the selection probability of t.
func (t Transform) Weight() float64 {
	if t.ID == Stem {
		return t.Upper
	}
	return t.Upper - table[t.ID-1].Upper
}

var table = [4]Transform{
	{ID: Stem, Upper: 0.01, A: 0, B: 0, C: 0, D: 0.16, E: 0, F: 0},
	{ID: LargeLeaflet, Upper: 0.86, A: 0.85, B: 0.04, C: -0.04, D: 0.85, E: 0, F: 1.6},
	{ID: LeftLeaflet, Upper: 0.93, A: 0.20, B: -0.26, C: 0.23, D: 0.22, E: 0, F: 1.6},
	{ID: RightLeaflet, Upper: 1.00, A: -0.15, B: 0.28, C: 0.26, D: 0.24, E: 0, F: 0.44},
}

// Transforms returns a copy of the fixed transform table in selection order.
func Transforms() [4]Transform {
	return table
}

// Select picks the transform for a draw. Bucket bounds are half-open, so a
// draw equal to a bound belongs to the next bucket. Anything at or above the
// left leaflet bound, including out-of-range draws, selects the right leaflet.
func Select(draw float64) Transform {
	switch {
	case draw < table[Stem].Upper:
		return table[Stem]
	case draw < table[LargeLeaflet].Upper:
		return table[LargeLeaflet]
	case draw < table[LeftLeaflet].Upper:
		return table[LeftLeaflet]
	default:
		return table[RightLeaflet]
	}
}

// Step produces the point following prev for one draw.
func Step(prev Point, draw float64) Point {
	return Select(draw).Apply(prev)
}
