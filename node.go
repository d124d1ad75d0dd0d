package outline

import "fmt"

// SegmentType is the kind of segment an on-curve node ends. The zero value,
// [OffCurve], marks control points.
type SegmentType uint8

const (
	// A control point. It doesn't lie on the outline.
	OffCurve SegmentType = iota
	// The first node of an open contour.
	MoveSegment
	// A straight line from the previous on-curve node.
	LineSegment
	// A cubic Bézier. Preceded by two off-curve nodes.
	CurveSegment
	// A quadratic B-spline. Preceded by any number of off-curve nodes, with
	// on-curve points implied halfway between consecutive off-curves.
	QCurveSegment
)

func (typ SegmentType) String() string {
	switch typ {
	case OffCurve:
		return "offcurve"
	case MoveSegment:
		return "move"
	case LineSegment:
		return "line"
	case CurveSegment:
		return "curve"
	case QCurveSegment:
		return "qcurve"
	default:
		return fmt.Sprintf("SegmentType(%d)", typ)
	}
}

// Node is a point of a contour.
type Node struct {
	Pos  Point
	Type SegmentType
	// Smooth is only meaningful for on-curve nodes. The handles on either
	// side of a smooth node stay collinear while editing.
	Smooth bool
	// Selected is owned by whatever tracks the user's selection. The
	// editing operations only read it.
	Selected bool
	Name     string
}

// On returns an on-curve node ending a segment of type typ.
func On(x, y float64, typ SegmentType) *Node {
	if typ == OffCurve {
		panic("outline: On called with OffCurve")
	}
	return &Node{Pos: Pt(x, y), Type: typ}
}

// Off returns an off-curve node.
func Off(x, y float64) *Node {
	return &Node{Pos: Pt(x, y)}
}

// IsOnCurve reports whether the node lies on the outline.
func (n *Node) IsOnCurve() bool {
	return n.Type != OffCurve
}

// Move translates the node by delta.
func (n *Node) Move(delta Vec2) {
	n.Pos = n.Pos.Translate(delta)
}

func (n *Node) String() string {
	s := fmt.Sprintf("%s%s", n.Type, n.Pos)
	if n.Smooth {
		s += " smooth"
	}
	if n.Selected {
		s += " selected"
	}
	return s
}
