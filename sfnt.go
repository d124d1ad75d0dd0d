package outline

import (
	"fmt"
	"math"

	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
)

// LoadGlyph loads glyph x of f as an editable glyph, in font units with the
// y axis pointing up.
func LoadGlyph(f *sfnt.Font, b *sfnt.Buffer, x sfnt.GlyphIndex) (*Glyph, error) {
	ppem := fixed.Int26_6(f.UnitsPerEm()) << 6
	segs, err := f.LoadGlyph(b, x, ppem, nil)
	if err != nil {
		return nil, fmt.Errorf("outline: loading glyph %d: %w", x, err)
	}
	name, err := f.GlyphName(b, x)
	if err != nil {
		name = fmt.Sprintf("glyph%d", x)
	}
	return GlyphFromSegments(name, segs), nil
}

// GlyphFromSegments builds a glyph from an sfnt outline. Every subpath
// becomes a closed contour. The y axis is flipped so that it points up, as
// font editors expect.
//
// On-curve nodes whose incoming and outgoing directions agree, and that have
// at least one handle, are marked smooth.
func GlyphFromSegments(name string, segs sfnt.Segments) *Glyph {
	g := NewGlyph(name)
	var nodes []*Node
	flush := func() {
		if len(nodes) > 0 {
			g.AppendContour(closeContour(nodes, fmt.Sprintf("%s#%d", name, g.Len())))
		}
		nodes = nil
	}
	for _, seg := range segs {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			flush()
			nodes = append(nodes, &Node{Pos: fromFixed(seg.Args[0]), Type: MoveSegment})
		case sfnt.SegmentOpLineTo:
			nodes = append(nodes, &Node{Pos: fromFixed(seg.Args[0]), Type: LineSegment})
		case sfnt.SegmentOpQuadTo:
			nodes = append(nodes,
				&Node{Pos: fromFixed(seg.Args[0])},
				&Node{Pos: fromFixed(seg.Args[1]), Type: QCurveSegment})
		case sfnt.SegmentOpCubeTo:
			nodes = append(nodes,
				&Node{Pos: fromFixed(seg.Args[0])},
				&Node{Pos: fromFixed(seg.Args[1])},
				&Node{Pos: fromFixed(seg.Args[2]), Type: CurveSegment})
		}
	}
	flush()
	g.ClearDirty()
	return g
}

func fromFixed(p fixed.Point26_6) Point {
	return Pt(float64(p.X)/64, -float64(p.Y)/64)
}

// closeContour turns a subpath starting with a move into a closed contour.
// An explicit closing segment back to the start is folded into the first
// node; otherwise the contour closes with a line.
func closeContour(nodes []*Node, name string) *Contour {
	first := nodes[0]
	first.Type = LineSegment
	if last := nodes[len(nodes)-1]; len(nodes) > 1 && last.Pos == first.Pos {
		first.Type = last.Type
		nodes = nodes[:len(nodes)-1]
	}
	c := NewContour(nodes, false, WithName(name))
	for i, n := range nodes {
		if n.IsOnCurve() {
			n.Smooth = isSmooth(c, i)
		}
	}
	return c
}

func isSmooth(c *Contour, i int) bool {
	const tolerance = 1e-3
	if c.Len() < 3 {
		return false
	}
	prev, n, next := c.At(i-1), c.At(i), c.At(i+1)
	if prev.IsOnCurve() && next.IsOnCurve() {
		return false
	}
	in := n.Pos.Sub(prev.Pos)
	out := next.Pos.Sub(n.Pos)
	l := in.Hypot() * out.Hypot()
	if l == 0 {
		return false
	}
	return in.Dot(out) > 0 && math.Abs(in.Cross(out)) <= tolerance*l
}
