package snake

import (
	"slices"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// Body is the ordered list of cells occupied by the snake, head first.
type Body struct {
	segs []core.Point
}

// NewBody creates a body from segments given head first.
func NewBody(segs ...core.Point) Body {
	return Body{segs: slices.Clone(segs)}
}

// Head returns the head cell.
func (b *Body) Head() core.Point {
	return b.segs[0]
}

// Tail returns the last cell.
func (b *Body) Tail() core.Point {
	return b.segs[len(b.segs)-1]
}

// Len returns the number of segments.
func (b *Body) Len() int {
	return len(b.segs)
}

// Segments returns a copy of the segments, head first.
func (b *Body) Segments() []core.Point {
	return slices.Clone(b.segs)
}

// Contains reports whether p is occupied by any segment.
func (b *Body) Contains(p core.Point) bool {
	return slices.Contains(b.segs, p)
}

// Advance computes the head position after one move in d on a wrapping grid
// and reports whether that cell is taken by the body. The tail counts: the
// test runs before the tail moves.
func (b *Body) Advance(g core.Grid, d Direction) (head core.Point, collided bool) {
	dx, dy := d.Delta()
	head = g.Wrap(b.Head(), dx, dy)
	return head, slices.Contains(b.segs[1:], head)
}

// GrowAt inserts a new head and keeps the tail.
func (b *Body) GrowAt(head core.Point) {
	b.segs = slices.Insert(b.segs, 0, head)
}

// MoveAt inserts a new head and drops the tail, returning the vacated cell.
func (b *Body) MoveAt(head core.Point) core.Point {
	tail := b.Tail()
	copy(b.segs[1:], b.segs[:len(b.segs)-1])
	b.segs[0] = head
	return tail
}
