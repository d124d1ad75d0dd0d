package outline

// RemoveSelection removes the selected nodes of c.
//
// A segment whose on-curve node is selected is removed as a whole, using
// [Contour.RemoveSegment]. preserveShape is passed along, except for the
// first and last segment of an open contour, where no shape can be
// preserved. Once a contour would be left without segments, it is removed
// from its glyph instead; a contour that doesn't belong to a glyph is
// emptied.
//
// Selected off-curve nodes are removed on their own. Removing either handle
// of a cubic removes both and turns the segment into a line.
//
// If an edit fails with a [StructuralError], c is restored to its state
// before the call and the error is returned.
func RemoveSelection(c *Contour, preserveShape bool) (err error) {
	segs := c.Segments()
	if len(segs) == 0 {
		return nil
	}

	st := c.save()
	defer c.batch()()
	defer func() {
		if err != nil {
			c.restore(st)
			Logger().Warn("outline: rolled back selection removal", "contour", c.name, "err", err)
		}
	}()

	// Segments are visited back to front by their on-curve node. The last
	// segment contains node 0, and removing it can rotate the segment list,
	// so it goes last. A shape-preserving join rewrites the following
	// segment, so every step derives its segment from the current nodes.
	order := make([]*Node, 0, len(segs))
	for i := len(segs) - 2; i >= 0; i-- {
		order = append(order, segs[i].OnCurve())
	}
	order = append(order, segs[len(segs)-1].OnCurve())

	for _, on := range order {
		if _, ok := c.IndexOf(on); !ok {
			continue
		}
		cur := c.Segments()
		index, ok := segmentIndex(cur, on)
		if !ok {
			return &StructuralError{Op: "remove selection", Index: -1, Reason: "on-curve node no longer ends a segment"}
		}
		if !on.Selected {
			if err := removeSelectedOffCurves(c, cur[index], index); err != nil {
				return err
			}
			continue
		}

		if len(cur) < 2 {
			removeContour(c)
			return nil
		}
		preserve := preserveShape
		if c.Open && (index == 0 || index == len(cur)-1) {
			preserve = false
		}
		if err := c.RemoveSegment(index, preserve); err != nil {
			return err
		}
	}
	return nil
}

// removeSelectedOffCurves handles a segment whose on-curve node is kept.
func removeSelectedOffCurves(c *Contour, seg Segment, index int) error {
	switch len(seg) {
	case 1:
	case 2:
		off := seg[0]
		if !off.Selected {
			return nil
		}
		if off.IsOnCurve() {
			return &StructuralError{Op: "remove selection", Index: index, Reason: "on-curve node in control point position"}
		}
		c.RemoveNode(off)
	case 3:
		if !seg[0].Selected && !seg[1].Selected {
			return nil
		}
		// A cubic with a single handle isn't valid.
		c.RemoveNode(seg[0])
		c.RemoveNode(seg[1])
		seg[2].Type = LineSegment
	default:
		// Quadratic B-splines stay valid with any number of control points.
		offs := seg.OffCurves()
		removed := 0
		for _, off := range offs {
			if off.Selected {
				c.RemoveNode(off)
				removed++
			}
		}
		if removed == len(offs) {
			seg.OnCurve().Type = LineSegment
		}
	}
	return nil
}

func removeContour(c *Contour) {
	if g := c.glyph; g != nil {
		g.RemoveContour(c)
		return
	}
	c.nodes = nil
	c.changed()
}
