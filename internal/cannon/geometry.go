package cannon

// Rect is an axis-aligned box in arena units. Width and height are exclusive
// extents: a Rect at x with width w covers [x, x+w).
type Rect struct {
	X, Y int
	W, H int
}

// Intersects reports whether r and o overlap. Boxes that only share an edge
// do not intersect.
func (r Rect) Intersects(o Rect) bool {
	if r.W <= 0 || r.H <= 0 || o.W <= 0 || o.H <= 0 {
		return false
	}
	return r.X < o.X+o.W && o.X < r.X+r.W &&
		r.Y < o.Y+o.H && o.Y < r.Y+r.H
}

// Contains reports whether the point (px,py) lies inside r.
func (r Rect) Contains(px, py int) bool {
	return px >= r.X && px < r.X+r.W && py >= r.Y && py < r.Y+r.H
}

// abs returns |v| without the NaN handling of math.Abs; velocities are
// always finite.
func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
