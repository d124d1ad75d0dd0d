package outline

import (
	"fmt"
	"iter"
	"slices"
)

// Glyph owns a collection of contours.
type Glyph struct {
	Name     string
	contours []*Contour
	dirty    bool
}

func NewGlyph(name string, contours ...*Contour) *Glyph {
	g := &Glyph{Name: name}
	for _, c := range contours {
		g.AppendContour(c)
	}
	return g
}

// AppendContour adds c to the glyph. It panics if c already belongs to a
// glyph.
func (g *Glyph) AppendContour(c *Contour) {
	if c.glyph != nil {
		panic("outline: contour already belongs to a glyph")
	}
	c.glyph = g
	g.contours = append(g.contours, c)
	g.dirty = true
}

// RemoveContour removes c from the glyph. It panics if c doesn't belong to
// g.
func (g *Glyph) RemoveContour(c *Contour) {
	i := slices.Index(g.contours, c)
	if i < 0 {
		panic(fmt.Sprintf("outline: contour %q does not belong to glyph %q", c.name, g.Name))
	}
	g.contours = slices.Delete(g.contours, i, i+1)
	c.glyph = nil
	g.dirty = true
	Logger().Debug("outline: removed contour", "glyph", g.Name, "contour", c.name)
}

// Contours returns the glyph's contours. The slice is a copy.
func (g *Glyph) Contours() []*Contour {
	return slices.Clone(g.contours)
}

func (g *Glyph) Len() int { return len(g.contours) }

// Dirty reports whether contours were added or removed since the last call to
// ClearDirty. Changes to a contour's nodes are tracked by the contour.
func (g *Glyph) Dirty() bool { return g.dirty }

func (g *Glyph) ClearDirty() { g.dirty = false }

// PathElements returns the drawing commands of all contours, one subpath per
// contour.
func (g *Glyph) PathElements() iter.Seq[PathElement] {
	return func(yield func(PathElement) bool) {
		for _, c := range g.contours {
			for el := range c.PathElements() {
				if !yield(el) {
					return
				}
			}
		}
	}
}
