package outline

import (
	"fmt"
	"iter"
	"slices"
)

// ContourOption configures a Contour during creation.
type ContourOption func(*contourOptions)

type contourOptions struct {
	onChange func(*Contour)
	name     string
}

// WithChangeFunc registers fn to be called after an operation changed the
// contour's geometry. Operations that perform several mutations, such as
// [RemoveSelection], call fn once.
func WithChangeFunc(fn func(*Contour)) ContourOption {
	return func(o *contourOptions) {
		o.onChange = fn
	}
}

// WithName names the contour. The name only shows up in log records.
func WithName(name string) ContourOption {
	return func(o *contourOptions) {
		o.name = name
	}
}

// Contour is an ordered sequence of nodes. Nodes are addressed by index, and
// indices wrap around: At(-1) is the last node. This holds for open contours,
// too, even though they don't draw a closing segment.
//
// A Contour must not be used by multiple goroutines concurrently.
type Contour struct {
	// Open contours start with a [MoveSegment] node and have distinct start
	// and end points.
	Open bool

	nodes    []*Node
	glyph    *Glyph
	name     string
	dirty    bool
	onChange func(*Contour)

	batching int
	pending  bool
}

// NewContour returns a contour consisting of nodes. The contour takes
// ownership of the slice.
func NewContour(nodes []*Node, open bool, opts ...ContourOption) *Contour {
	var o contourOptions
	for _, opt := range opts {
		opt(&o)
	}
	return &Contour{
		Open:     open,
		nodes:    nodes,
		name:     o.name,
		onChange: o.onChange,
	}
}

func (c *Contour) Name() string { return c.name }

// Glyph returns the glyph the contour belongs to, or nil.
func (c *Contour) Glyph() *Glyph { return c.glyph }

// Len returns the number of nodes.
func (c *Contour) Len() int { return len(c.nodes) }

// At returns the node at index i modulo the number of nodes. It panics if
// the contour is empty.
func (c *Contour) At(i int) *Node {
	if len(c.nodes) == 0 {
		panic("outline: At called on empty contour")
	}
	return c.nodes[c.wrap(i)]
}

func (c *Contour) wrap(i int) int {
	n := len(c.nodes)
	i %= n
	if i < 0 {
		i += n
	}
	return i
}

// IndexOf returns the index of n, or false if n isn't part of the contour.
func (c *Contour) IndexOf(n *Node) (int, bool) {
	i := slices.Index(c.nodes, n)
	return i, i >= 0
}

// Index returns the index of n. It panics if n isn't part of the contour.
func (c *Contour) Index(n *Node) int {
	i, ok := c.IndexOf(n)
	if !ok {
		panic(fmt.Sprintf("outline: node %s does not belong to contour", n))
	}
	return i
}

// Nodes returns an iterator over the contour's nodes in order.
func (c *Contour) Nodes() iter.Seq[*Node] {
	return slices.Values(c.nodes)
}

// Selection returns the selected nodes. The returned slice is a snapshot and
// isn't affected by later changes to the contour.
func (c *Contour) Selection() []*Node {
	var sel []*Node
	for _, n := range c.nodes {
		if n.Selected {
			sel = append(sel, n)
		}
	}
	return sel
}

// Dirty reports whether the contour's geometry changed since the last call
// to ClearDirty.
func (c *Contour) Dirty() bool { return c.dirty }

func (c *Contour) ClearDirty() { c.dirty = false }

// InsertNode inserts n so that it has index i. i may equal Len to append.
func (c *Contour) InsertNode(i int, n *Node) {
	if i < 0 || i > len(c.nodes) {
		panic(fmt.Sprintf("outline: insertion index %d out of range [0, %d]", i, len(c.nodes)))
	}
	c.nodes = slices.Insert(c.nodes, i, n)
	c.changed()
}

// RemoveNode removes n from the contour. It panics if n isn't part of the
// contour.
func (c *Contour) RemoveNode(n *Node) {
	i := c.Index(n)
	c.nodes = slices.Delete(c.nodes, i, i+1)
	c.changed()
}

// insertBefore inserts nodes in front of anchor. Nodes in front of the first
// node are appended instead, so that the contour's first node stays the same.
func (c *Contour) insertBefore(anchor *Node, nodes ...*Node) {
	i := c.Index(anchor)
	if i == 0 {
		i = len(c.nodes)
	}
	c.nodes = slices.Insert(c.nodes, i, nodes...)
	c.changed()
}

func (c *Contour) changed() {
	c.dirty = true
	if c.batching > 0 {
		c.pending = true
		return
	}
	if c.onChange != nil {
		c.onChange(c)
	}
}

// batch defers change notifications until the returned function is called.
// Batches nest.
func (c *Contour) batch() func() {
	c.batching++
	return func() {
		c.batching--
		if c.batching == 0 && c.pending {
			c.pending = false
			if c.onChange != nil {
				c.onChange(c)
			}
		}
	}
}

type contourState struct {
	nodes  []*Node
	values []Node
	dirty  bool
}

func (c *Contour) save() contourState {
	st := contourState{
		nodes:  slices.Clone(c.nodes),
		values: make([]Node, len(c.nodes)),
		dirty:  c.dirty,
	}
	for i, n := range c.nodes {
		st.values[i] = *n
	}
	return st
}

func (c *Contour) restore(st contourState) {
	c.nodes = st.nodes
	c.dirty = st.dirty
	c.pending = false
	for i, n := range c.nodes {
		*n = st.values[i]
	}
}
