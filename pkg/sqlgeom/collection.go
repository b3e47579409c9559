package sqlgeom

import (
	"github.com/dhconnelly/rtreego"
)

// entry is one indexed member of a Collection; it satisfies rtreego.Spatial.
type entry struct {
	value Value
	bound Envelope
}

func (e entry) Bounds() rtreego.Rect {
	width := e.bound.MaxX - e.bound.MinX
	height := e.bound.MaxY - e.bound.MinY
	// rtreego rejects zero-size rectangles; give point geometries a
	// degenerate-but-valid extent.
	if width <= 0 {
		width = 1e-9
	}
	if height <= 0 {
		height = 1e-9
	}
	rect, _ := rtreego.NewRect(rtreego.Point{e.bound.MinX, e.bound.MinY}, []float64{width, height})
	return rect
}

// Collection holds a batch of decoded values alongside an R-tree spatial
// index over their envelopes, for fast bounds queries over large result
// sets (e.g. every geometry value returned by one query).
type Collection struct {
	entries []entry
	rtree   *rtreego.Rtree
}

// NewCollection builds a Collection from already-decoded values, indexing
// each by its envelope. The slice is copied; callers may reuse it.
func NewCollection(values []Value) *Collection {
	rtree := rtreego.NewTree(2, 25, 50)
	entries := make([]entry, len(values))
	for i, v := range values {
		e := entry{value: v, bound: Bounds(v.Root)}
		entries[i] = e
		rtree.Insert(e)
	}
	return &Collection{entries: entries, rtree: rtree}
}

// Len returns the number of values in the collection.
func (c *Collection) Len() int {
	return len(c.entries)
}

// InBounds returns every value whose envelope intersects bounds, using the
// R-tree for an O(log n) query instead of a linear scan.
func (c *Collection) InBounds(bounds Envelope) []Value {
	width := bounds.MaxX - bounds.MinX
	height := bounds.MaxY - bounds.MinY
	if width <= 0 {
		width = 1e-9
	}
	if height <= 0 {
		height = 1e-9
	}
	rect, err := rtreego.NewRect(rtreego.Point{bounds.MinX, bounds.MinY}, []float64{width, height})
	if err != nil {
		return nil
	}

	hits := c.rtree.SearchIntersect(rect)
	out := make([]Value, 0, len(hits))
	for _, h := range hits {
		out = append(out, h.(entry).value)
	}
	return out
}

// All returns every value in the collection, in insertion order.
func (c *Collection) All() []Value {
	out := make([]Value, len(c.entries))
	for i, e := range c.entries {
		out[i] = e.value
	}
	return out
}
