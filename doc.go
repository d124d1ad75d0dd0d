// Package outline implements the constraints that keep glyph outlines intact
// while they are edited by direct manipulation.
//
// A font editor lets the user drag nodes around and delete them. Doing so
// naively corrupts outlines: dragging a handle of a smooth node introduces a
// kink, dragging an on-curve node leaves its handles behind, and deleting a
// node can leave a cubic with a single control point. This package reacts to
// those edits and updates the neighboring nodes accordingly. It does not
// decide what is selected or how far the mouse moved; callers pass in the
// selection (via [Node.Selected]) and the delta.
//
// # Contours, nodes, and segments
//
// A [Glyph] owns [Contour] values, which are ordered sequences of [Node]
// values. A node is either on-curve, in which case its [SegmentType] says
// what kind of segment it ends, or off-curve, acting as a control point.
// Contours index their nodes circularly.
//
// [Contour.Segments] partitions a contour into [Segment] values, each a run of
// off-curve nodes terminated by an on-curve node, following the UFO
// conventions. The partition is recomputed from the nodes on every call.
//
// # Editing
//
// [MoveNode] moves a single node, [MoveSelection] moves all selected nodes,
// and [RemoveSelection] deletes them. Contours record that they changed in a
// dirty flag ([Contour.Dirty]) and optionally notify a callback registered
// with [WithChangeFunc].
//
// Edits that would leave a contour in an invalid state fail with a
// [StructuralError] and leave the contour untouched. Passing nodes that
// don't belong to the contour is a programming error and panics.
//
// # Interoperability
//
// [LoadGlyph] and [GlyphFromSegments] import outlines from fonts parsed by
// golang.org/x/image/font/sfnt. [Contour.PathElements] and
// [Glyph.PathElements] return edited outlines as drawing commands.
//
// # Concurrency
//
// Contours and glyphs must not be accessed concurrently. Edits are meant to
// be driven by a single event loop.
package outline
