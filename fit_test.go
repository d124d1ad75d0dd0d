package outline

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

var pointComparer = cmp.Comparer(func(p1, p2 Point) bool {
	return p1.Distance(p2) <= 0.5
})

func TestFitJoinRecoversSplitCubic(t *testing.T) {
	c := CubicBez{Pt(0, 0), Pt(20, 80), Pt(80, 80), Pt(100, 0)}
	// c split at t=0.5.
	c0 := CubicBez{Pt(0, 0), Pt(10, 40), Pt(30, 60), Pt(50, 60)}
	c1 := CubicBez{Pt(50, 60), Pt(70, 60), Pt(90, 40), Pt(100, 0)}

	fit, ok := fitJoin([]CubicBez{c0, c1})
	if !ok {
		t.Fatal("fit failed")
	}
	diff(t, c, fit, pointComparer)
	for i := range 11 {
		u := float64(i) / 10
		if d := fit.Eval(u).Distance(c.Eval(u)); d > 0.5 {
			t.Errorf("fit deviates by %g at t=%g", d, u)
		}
	}
}

func TestFitJoinKeepsTangents(t *testing.T) {
	a := CubicBez{Pt(0, 0), Pt(10, 40), Pt(40, 60), Pt(70, 60)}
	b := QuadBez{Pt(70, 60), Pt(120, 60), Pt(150, 10)}.Raise()

	fit, ok := fitJoin([]CubicBez{a, b})
	if !ok {
		t.Fatal("fit failed")
	}
	if fit.P0 != a.P0 || fit.P3 != b.P3 {
		t.Errorf("fit moved its end points: %v", fit)
	}
	d0, _ := a.Tangents()
	_, d1 := b.Tangents()
	f0, f1 := fit.Tangents()
	if cr := d0.Normalize().Cross(f0.Normalize()); math.Abs(cr) > epsilon || d0.Dot(f0) <= 0 {
		t.Errorf("start tangent changed from %s to %s", d0, f0)
	}
	if cr := d1.Normalize().Cross(f1.Normalize()); math.Abs(cr) > epsilon || d1.Dot(f1) <= 0 {
		t.Errorf("end tangent changed from %s to %s", d1, f1)
	}
}

func TestFitJoinDegenerate(t *testing.T) {
	loop := []CubicBez{
		{Pt(0, 0), Pt(0, 50), Pt(50, 50), Pt(50, 0)},
		{Pt(50, 0), Pt(50, -50), Pt(0, -50), Pt(0, 0)},
	}
	if _, ok := fitJoin(loop); ok {
		t.Error("fitted a closed loop")
	}
	if _, ok := fitJoin(nil); ok {
		t.Error("fitted nothing")
	}
}

func TestCubicPolyline(t *testing.T) {
	c := Line{Pt(0, 0), Pt(8, 0)}.Cubic()
	pts := c.Polyline(4)
	if len(pts) != 5 || pts[0] != c.P0 || pts[4] != c.P3 {
		t.Errorf("unexpected polyline %v", pts)
	}
}
