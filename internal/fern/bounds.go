package fern

// Rect is an axis-aligned rectangle.
type Rect struct {
	MinX float64
	MaxX float64
	MinY float64
	MaxY float64
}

// Width of r.
func (r Rect) Width() float64 { return r.MaxX - r.MinX }

// Height of r.
func (r Rect) Height() float64 { return r.MaxY - r.MinY }

// Contains reports whether p lies inside r grown by tol on every side.
func (r Rect) Contains(p Point, tol float64) bool {
	return p.X >= r.MinX-tol && p.X <= r.MaxX+tol && p.Y >= r.MinY-tol && p.Y <= r.MaxY+tol
}

const (
	minX = -2.1820
	maxX = 2.6558
	minY = 0.0
	maxY = 9.9983
)

// Bounds is the extent of the fern attractor.
func Bounds() Rect {
	return Rect{MinX: minX, MaxX: maxX, MinY: minY, MaxY: maxY}
}

func MinX() float64 { return minX }
func MaxX() float64 { return maxX }
func MinY() float64 { return minY }
func MaxY() float64 { return maxY }
