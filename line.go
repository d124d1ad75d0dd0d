package outline

// Line represents a line segment. Handles are lines from an on-curve node to
// an off-curve node.
type Line struct {
	// The line's start point.
	P0 Point
	// The line's end point.
	P1 Point
}

// Length returns the length of the line.
func (l Line) Length() float64 {
	return l.P1.Sub(l.P0).Hypot()
}

func (l Line) Eval(t float64) Point {
	return l.P0.Lerp(l.P1, t)
}

// Computes the point where two lines, if extended to infinity, would cross.
func (l Line) CrossingPoint(o Line) (Point, bool) {
	ab := l.P1.Sub(l.P0)
	cd := o.P1.Sub(o.P0)
	pcd := ab.Cross(cd)
	if pcd == 0 {
		return Point{}, false
	}
	h := ab.Cross(l.P0.Sub(o.P0)) / pcd
	return o.P0.Translate(cd.Mul(h)), true
}

// Nearest returns the squared distance from pt to the closest point of the
// segment, and that point's parameter.
func (l Line) Nearest(pt Point) (distSq, t float64) {
	d := l.P1.Sub(l.P0)
	dotp := d.Dot(pt.Sub(l.P0))
	dSquared := d.Dot(d)
	if dotp <= 0.0 {
		return pt.Sub(l.P0).Hypot2(), 0.0
	} else if dotp >= dSquared {
		return pt.Sub(l.P1).Hypot2(), 1.0
	} else {
		t := dotp / dSquared
		dist := pt.Sub(l.Eval(t)).Hypot2()
		return dist, t
	}
}

// Project returns the orthogonal projection of pt onto the infinite line
// through P0 and P1. Unlike [Line.Nearest], the result is not clamped to the
// segment. It returns false if the line has zero length.
func (l Line) Project(pt Point) (Point, bool) {
	d := l.P1.Sub(l.P0)
	dSquared := d.Hypot2()
	if dSquared == 0 {
		return pt, false
	}
	t := d.Dot(pt.Sub(l.P0)) / dSquared
	return l.P0.Translate(d.Mul(t)), true
}

// Extend returns the line lengthened by dist beyond P1, keeping its
// direction. It returns false if the line has zero length and thus no
// direction.
func (l Line) Extend(dist float64) (Line, bool) {
	d := l.P1.Sub(l.P0)
	n := d.Hypot()
	if n == 0 {
		return l, false
	}
	return Line{P0: l.P0, P1: l.P0.Translate(d.Mul((n + dist) / n))}, true
}

// Distance returns the distance from pt to the infinite line through P0 and
// P1.
func (l Line) Distance(pt Point) float64 {
	d := l.P1.Sub(l.P0)
	n := d.Hypot()
	if n == 0 {
		return pt.Distance(l.P0)
	}
	c := d.Cross(pt.Sub(l.P0)) / n
	if c < 0 {
		return -c
	}
	return c
}

func (l Line) Tangents() (Vec2, Vec2) {
	d := l.P1.Sub(l.P0)
	return d, d
}

// Cubic returns the line as a degenerate cubic Bézier.
func (l Line) Cubic() CubicBez {
	return CubicBez{l.P0, l.P0, l.P1, l.P1}
}
