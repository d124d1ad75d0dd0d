package outline

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestLineProject(t *testing.T) {
	l := Line{Pt(0, 0), Pt(10, 0)}
	p, ok := l.Project(Pt(25, 7))
	if !ok {
		t.Fatal("projection onto non-degenerate line failed")
	}
	// Not clamped to the segment.
	diff(t, Pt(25, 0), p)

	l = Line{Pt(0, 0), Pt(10, 10)}
	p, _ = l.Project(Pt(0, 10))
	diff(t, Pt(5, 5), p, cmpopts.EquateApprox(0, 1e-12))

	if _, ok := (Line{Pt(1, 1), Pt(1, 1)}).Project(Pt(3, 3)); ok {
		t.Error("projection onto zero-length line succeeded")
	}
}

func TestLineExtend(t *testing.T) {
	l, ok := Line{Pt(0, 0), Pt(3, 4)}.Extend(5)
	if !ok {
		t.Fatal("extending non-degenerate line failed")
	}
	diff(t, Pt(6, 8), l.P1, cmpopts.EquateApprox(0, 1e-12))
	if d := l.Length(); math.Abs(d-10) > 1e-12 {
		t.Errorf("got length %g, want 10", d)
	}

	if _, ok := (Line{Pt(2, 2), Pt(2, 2)}).Extend(1); ok {
		t.Error("extending zero-length line succeeded")
	}
}

func TestLineDistance(t *testing.T) {
	l := Line{Pt(0, 0), Pt(10, 0)}
	if d := l.Distance(Pt(50, -3)); d != 3 {
		t.Errorf("got distance %g, want 3", d)
	}
}

func TestLineNearest(t *testing.T) {
	l := Line{Pt(0, 0), Pt(10, 0)}
	distSq, tt := l.Nearest(Pt(15, 2))
	if distSq != 29 || tt != 1 {
		t.Errorf("got (%g, %g), want (29, 1)", distSq, tt)
	}
	distSq, tt = l.Nearest(Pt(4, 3))
	if distSq != 9 || tt != 0.4 {
		t.Errorf("got (%g, %g), want (9, 0.4)", distSq, tt)
	}
}

func TestCrossingPoint(t *testing.T) {
	hLine := Line{Pt(0.0, 0.0), Pt(100.0, 0.0)}
	vLine := Line{Pt(10.0, -10.0), Pt(10.0, 10.0)}
	p, ok := hLine.CrossingPoint(vLine)
	if !ok {
		t.Fatal("lines don't cross")
	}
	diff(t, Pt(10, 0), p, cmpopts.EquateApprox(0, 1e-12))

	if _, ok := hLine.CrossingPoint(Line{Pt(0, 5), Pt(1, 5)}); ok {
		t.Error("parallel lines cross")
	}
}
