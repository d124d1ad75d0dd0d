package outline

import (
	"fmt"
	"iter"
)

// Segment is a run of off-curve nodes terminated by one on-curve node.
type Segment []*Node

// OnCurve returns the segment's last node, which is on-curve in any
// well-formed contour.
func (seg Segment) OnCurve() *Node {
	return seg[len(seg)-1]
}

// OffCurves returns the segment's control points.
func (seg Segment) OffCurves() []*Node {
	return seg[:len(seg)-1]
}

// IsCurve reports whether the segment has control points.
func (seg Segment) IsCurve() bool {
	return len(seg) > 1
}

// Segments partitions the contour's nodes into segments.
//
// The partition follows the UFO convention. In a closed contour, the segment
// ending at node 0 is the last segment, and off-curve nodes trailing the last
// on-curve node belong to it. Open contours start with a single-node move
// segment, and trailing off-curve nodes of an open contour don't belong to
// any segment.
//
// Segments are derived from the node list on every call and never cached.
func (c *Contour) Segments() []Segment {
	if len(c.nodes) == 0 {
		return nil
	}
	segs := []Segment{nil}
	lastWasOffCurve := false
	firstIsMove := c.nodes[0].Type == MoveSegment
	for _, n := range c.nodes {
		segs[len(segs)-1] = append(segs[len(segs)-1], n)
		if n.IsOnCurve() {
			segs = append(segs, nil)
		}
		lastWasOffCurve = !n.IsOnCurve()
	}
	if len(segs[len(segs)-1]) == 0 {
		segs = segs[:len(segs)-1]
	}
	switch {
	case lastWasOffCurve && firstIsMove:
		segs = segs[:len(segs)-1]
	case lastWasOffCurve && len(segs) > 1:
		last := append(segs[len(segs)-1], segs[0]...)
		segs = append(segs[1:len(segs)-1], last)
	case !lastWasOffCurve && !firstIsMove:
		segs = append(segs[1:], segs[0])
	}
	return segs
}

// segmentIndex returns the index of the segment ending in on.
func segmentIndex(segs []Segment, on *Node) (int, bool) {
	for i, seg := range segs {
		if seg.OnCurve() == on {
			return i, true
		}
	}
	return 0, false
}

// RemoveSegment removes the nodes of the segment at index.
//
// With preserveShape, the segments on either side of the removed on-curve
// node are replaced by a single curve that approximates the old outline.
// This is only possible where the removed node has neighbors on both sides,
// so preserveShape is a [StructuralError] for the first and last segment of
// an open contour. Removing the first segment of an open contour drops the
// handles of the second one and makes its on-curve node the new start. Contours with fewer than three segments, and runs of
// straight lines, fall back to plain removal.
//
// RemoveSegment panics if index is out of range.
func (c *Contour) RemoveSegment(index int, preserveShape bool) error {
	segs := c.Segments()
	if index < 0 || index >= len(segs) {
		panic(fmt.Sprintf("outline: segment index %d out of range [0, %d)", index, len(segs)))
	}
	seg := segs[index]
	if !seg.OnCurve().IsOnCurve() {
		return &StructuralError{Op: "remove segment", Index: index, Reason: "segment doesn't end in an on-curve node"}
	}
	if preserveShape && c.Open && (index == 0 || index == len(segs)-1) {
		return &StructuralError{Op: "remove segment", Index: index, Reason: "can't preserve shape at the end of an open contour"}
	}

	defer c.batch()()
	if preserveShape && len(segs) > 2 {
		if c.joinSegments(segs, index) {
			return nil
		}
		Logger().Debug("outline: shape-preserving removal fell back to plain removal",
			"contour", c.name, "segment", index)
	}
	for _, n := range seg {
		c.RemoveNode(n)
	}
	if c.Open && index == 0 && seg.OnCurve().Type == MoveSegment && len(segs) > 1 {
		// The following on-curve node becomes the new start.
		next := segs[1]
		for _, n := range next.OffCurves() {
			c.RemoveNode(n)
		}
		next.OnCurve().Type = MoveSegment
	}
	return nil
}

// joinSegments removes the segment at index and turns the following segment
// into a curve approximating both. It reports false, without modifying the
// contour, if no such curve exists.
func (c *Contour) joinSegments(segs []Segment, index int) bool {
	n := len(segs)
	prev := segs[(index-1+n)%n]
	seg := segs[index]
	next := segs[(index+1)%n]
	if !seg.IsCurve() && !next.IsCurve() {
		return false
	}

	var curves []CubicBez
	curves = append(curves, seg.Cubics(prev.OnCurve().Pos)...)
	curves = append(curves, next.Cubics(seg.OnCurve().Pos)...)
	fit, ok := fitJoin(curves)
	if !ok {
		return false
	}

	nextOn := next.OnCurve()
	offs := next.OffCurves()
	if nextOn.Type == QCurveSegment {
		ctrl, ok := Line{fit.P0, fit.P1}.CrossingPoint(Line{fit.P3, fit.P2})
		if !ok || ctrl.Sub(fit.P0).Dot(fit.P1.Sub(fit.P0)) <= 0 || ctrl.Sub(fit.P3).Dot(fit.P2.Sub(fit.P3)) <= 0 {
			return false
		}
		for _, nd := range seg {
			c.RemoveNode(nd)
		}
		if len(offs) == 0 {
			c.insertBefore(nextOn, &Node{Pos: ctrl})
			return true
		}
		offs[0].Pos = ctrl
		for _, nd := range offs[1:] {
			c.RemoveNode(nd)
		}
		return true
	}

	for _, nd := range seg {
		c.RemoveNode(nd)
	}
	if len(offs) == 2 {
		offs[0].Pos = fit.P1
		offs[1].Pos = fit.P2
	} else {
		for _, nd := range offs {
			c.RemoveNode(nd)
		}
		c.insertBefore(nextOn, &Node{Pos: fit.P1}, &Node{Pos: fit.P2})
	}
	nextOn.Type = CurveSegment
	c.changed()
	return true
}

// PathElements returns the segment's drawing commands, without the initial
// MoveTo. Quadratic B-splines are expanded into quadratic Béziers with
// implied on-curve points.
func (seg Segment) PathElements() iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		on := seg.OnCurve()
		offs := seg.OffCurves()
		switch {
		case len(offs) == 0:
			yield(LineTo(on.Pos))
		case on.Type == QCurveSegment || len(offs) == 1:
			for i := range len(offs) - 1 {
				if !yield(QuadTo(offs[i].Pos, offs[i].Pos.Midpoint(offs[i+1].Pos))) {
					return
				}
			}
			yield(QuadTo(offs[len(offs)-1].Pos, on.Pos))
		default:
			// Curves with more than two control points aren't valid cubics;
			// use the outermost handles.
			yield(CubicTo(offs[0].Pos, offs[len(offs)-1].Pos, on.Pos))
		}
	}
}

// Cubics returns the segment as a sequence of cubic Béziers starting at
// start, which is the on-curve position of the preceding segment.
func (seg Segment) Cubics(start Point) []CubicBez {
	var out []CubicBez
	p0 := start
	for el := range seg.PathElements() {
		switch el.Kind {
		case LineToKind:
			out = append(out, Line{p0, el.P0}.Cubic())
			p0 = el.P0
		case QuadToKind:
			out = append(out, QuadBez{p0, el.P0, el.P1}.Raise())
			p0 = el.P1
		case CubicToKind:
			out = append(out, CubicBez{p0, el.P0, el.P1, el.P2})
			p0 = el.P2
		}
	}
	return out
}
