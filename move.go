package outline

// MoveNode moves n by delta and adjusts the nodes whose position depends on
// it.
//
// Moving an on-curve node drags its adjacent off-curve nodes along. Moving an
// off-curve node that is attached to a smooth on-curve node keeps the handles
// on both sides of that node collinear: if the opposite handle is free, it is
// rotated onto the new direction and keeps its length; otherwise n itself is
// projected onto the tangent line.
//
// MoveNode panics if n doesn't belong to c.
func MoveNode(c *Contour, n *Node, delta Vec2) {
	idx := c.Index(n)
	if n.IsOnCurve() {
		moveOnCurve(c, idx, delta)
	} else {
		resolveOffCurve(c, idx, delta).apply(n)
	}
	c.changed()
}

// MoveSelection moves all selected nodes of c by delta.
func MoveSelection(c *Contour, delta Vec2) {
	defer c.batch()()
	for _, n := range c.Selection() {
		MoveNode(c, n, delta)
	}
}

func moveOnCurve(c *Contour, idx int, delta Vec2) {
	c.At(idx).Move(delta)
	var moved *Node
	for _, d := range [2]int{-1, 1} {
		// The node before the first node of an open contour is its last
		// node, across the gap.
		if c.Open && idx == 0 && d == -1 {
			continue
		}
		pt := c.At(idx + d)
		if pt.IsOnCurve() || pt == moved {
			continue
		}
		if d > 0 {
			// A quadratic's single control point is shared with the next
			// on-curve node. If that node is selected, it moves the control
			// point itself.
			if other := c.At(idx + 2*d); other.IsOnCurve() && other.Selected {
				continue
			}
		}
		pt.Move(delta)
		moved = pt
	}
}

type updateKind uint8

const (
	updateSkip updateKind = iota
	updateMove
	updateProject
)

// nodeUpdate is the single change applied to a moved off-curve node.
type nodeUpdate struct {
	kind   updateKind
	delta  Vec2
	target Point
}

func (u nodeUpdate) apply(n *Node) {
	switch u.kind {
	case updateMove:
		n.Move(u.delta)
	case updateProject:
		n.Pos = u.target
	}
}

// sibling is an on-curve node adjacent to an off-curve node, together with
// the node on the far side of the on-curve node. other is nil if the
// on-curve node ends an open contour.
type sibling struct {
	onCurve *Node
	other   *Node
}

func offCurveSiblings(c *Contour, idx int) []sibling {
	var sibs []sibling
	for _, d := range [2]int{-1, 1} {
		i := idx + d
		if c.Open && (i < 0 || i >= c.Len()) {
			continue
		}
		on := c.At(i)
		if !on.IsOnCurve() {
			continue
		}
		s := sibling{onCurve: on}
		if j := idx + 2*d; !c.Open || (j >= 0 && j < c.Len()) {
			s.other = c.At(j)
		}
		sibs = append(sibs, s)
	}
	return sibs
}

// resolveOffCurve decides how the off-curve node at idx moves and realigns
// the opposite handles of its smooth siblings.
func resolveOffCurve(c *Contour, idx int, delta Vec2) nodeUpdate {
	n := c.At(idx)
	sibs := offCurveSiblings(c, idx)

	shouldMove := true
	for _, s := range sibs {
		// A selected on-curve node moves its handles along. Moving n as
		// well would displace it twice.
		if s.onCurve.Selected {
			shouldMove = false
		}
	}
	pos := n.Pos
	if shouldMove {
		pos = pos.Translate(delta)
	}

	projected := false
	for _, s := range sibs {
		if !s.onCurve.Smooth || s.other == nil || isFreeHandle(s.other) {
			continue
		}
		if p, ok := (Line{s.onCurve.Pos, s.other.Pos}).Project(pos); ok {
			pos = p
			projected = true
		}
	}
	for _, s := range sibs {
		if !s.onCurve.Smooth || s.other == nil || !isFreeHandle(s.other) {
			continue
		}
		alignHandle(pos, s.onCurve, s.other)
	}

	switch {
	case projected:
		return nodeUpdate{kind: updateProject, target: pos}
	case shouldMove:
		return nodeUpdate{kind: updateMove, delta: delta}
	default:
		return nodeUpdate{kind: updateSkip}
	}
}

func isFreeHandle(n *Node) bool {
	return !n.IsOnCurve() && !n.Selected
}

// alignHandle puts handle on the ray from pos through onCurve, keeping its
// distance to onCurve.
func alignHandle(pos Point, onCurve, handle *Node) {
	length := handle.Pos.Distance(onCurve.Pos)
	l, ok := Line{pos, onCurve.Pos}.Extend(length)
	if !ok {
		return
	}
	handle.Pos = l.P1
}
