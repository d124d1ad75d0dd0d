package outline

import "math"

const (
	// Samples taken from each source cubic.
	fitSamples = 16
	// Newton iterations refining the sample parameters.
	fitIterations = 8
)

// fitJoin fits a single cubic Bézier to the outline formed by curves, which
// must be connected end to start. The fitted cubic starts and ends where the
// outline does and leaves both end points in the same directions, so that
// smooth nodes at either end stay smooth.
//
// The control arm lengths are a least-squares fit over samples of the
// outline. Sample parameters start out as normalized chord lengths and are
// refined by Newton iteration. If the system is singular or produces arms
// pointing backwards, both arms are a third of the chord.
func fitJoin(curves []CubicBez) (CubicBez, bool) {
	if len(curves) == 0 {
		return CubicBez{}, false
	}
	p0 := curves[0].P0
	p3 := curves[len(curves)-1].P3
	d0, _ := curves[0].Tangents()
	_, d1 := curves[len(curves)-1].Tangents()
	if p0 == p3 || d0.Hypot2() == 0 || d1.Hypot2() == 0 {
		return CubicBez{}, false
	}
	t0 := d0.Normalize()
	t1 := d1.Negate().Normalize()

	pts := []Point{p0}
	for _, c := range curves {
		pts = append(pts, c.Polyline(fitSamples)[1:]...)
	}
	us, ok := chordParams(pts)
	if !ok {
		return CubicBez{}, false
	}
	fit := solveArms(p0, p3, t0, t1, pts, us)
	for range fitIterations {
		for i, p := range pts {
			us[i] = refineParam(fit, p, us[i])
		}
		fit = solveArms(p0, p3, t0, t1, pts, us)
	}
	if fit.P1.IsNaN() || fit.P2.IsNaN() {
		return CubicBez{}, false
	}
	return fit, true
}

// chordParams assigns each point its normalized distance along the polyline.
func chordParams(pts []Point) ([]float64, bool) {
	us := make([]float64, len(pts))
	for i := 1; i < len(pts); i++ {
		us[i] = us[i-1] + pts[i].Distance(pts[i-1])
	}
	total := us[len(us)-1]
	if total == 0 {
		return nil, false
	}
	for i := range us {
		us[i] /= total
	}
	return us, true
}

func solveArms(p0, p3 Point, t0, t1 Vec2, pts []Point, us []float64) CubicBez {
	var c00, c01, c11, x0, x1 float64
	for i, p := range pts {
		u := us[i]
		mu := 1 - u
		b0 := mu * mu * mu
		b1 := 3 * u * mu * mu
		b2 := 3 * u * u * mu
		b3 := u * u * u
		a0 := t0.Mul(b1)
		a1 := t1.Mul(b2)
		c00 += a0.Dot(a0)
		c01 += a0.Dot(a1)
		c11 += a1.Dot(a1)
		r := p.Sub(Point(Vec2(p0).Mul(b0 + b1).Add(Vec2(p3).Mul(b2 + b3))))
		x0 += a0.Dot(r)
		x1 += a1.Dot(r)
	}

	chord := p0.Distance(p3)
	alpha0, alpha1 := chord/3, chord/3
	if det := c00*c11 - c01*c01; math.Abs(det) > 1e-12 {
		a0 := (x0*c11 - x1*c01) / det
		a1 := (c00*x1 - c01*x0) / det
		if a0 > 1e-6*chord && a1 > 1e-6*chord {
			alpha0, alpha1 = a0, a1
		}
	}
	return CubicBez{
		p0,
		p0.Translate(t0.Mul(alpha0)),
		p3.Translate(t1.Mul(alpha1)),
		p3,
	}
}

// refineParam performs one Newton step towards the parameter of the point on
// c closest to p.
func refineParam(c CubicBez, p Point, u float64) float64 {
	d := c.Differentiate()
	q := c.Eval(u).Sub(p)
	q1 := Vec2(d.Eval(u))
	q2 := Vec2(d.Differentiate().Eval(u))
	den := q1.Dot(q1) + q.Dot(q2)
	if den == 0 {
		return u
	}
	return min(max(u-q.Dot(q1)/den, 0), 1)
}
