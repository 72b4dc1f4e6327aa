package snake

import (
	"slices"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestBodyGrowAndMove(t *testing.T) {
	b := NewBody(core.Point{X: 2, Y: 0}, core.Point{X: 1, Y: 0})

	b.GrowAt(core.Point{X: 3, Y: 0})
	if b.Len() != 3 || b.Head() != (core.Point{X: 3, Y: 0}) {
		t.Fatalf("GrowAt: got %v", b.Segments())
	}

	vacated := b.MoveAt(core.Point{X: 4, Y: 0})
	if vacated != (core.Point{X: 1, Y: 0}) {
		t.Errorf("MoveAt vacated %v, expected (1,0)", vacated)
	}
	expected := []core.Point{{X: 4, Y: 0}, {X: 3, Y: 0}, {X: 2, Y: 0}}
	if !slices.Equal(b.Segments(), expected) {
		t.Errorf("MoveAt: got %v, expected %v", b.Segments(), expected)
	}
}

func TestBodyAdvance(t *testing.T) {
	grid := core.NewGrid(10, 10)
	// A hook shape: moving left from (5,5) hits (4,5); moving down hits the tail.
	b := NewBody(
		core.Point{X: 5, Y: 5},
		core.Point{X: 5, Y: 4},
		core.Point{X: 4, Y: 4},
		core.Point{X: 4, Y: 5},
		core.Point{X: 4, Y: 6},
		core.Point{X: 5, Y: 6},
	)

	tests := []struct {
		dir      Direction
		head     core.Point
		collided bool
	}{
		{DirLeft, core.Point{X: 4, Y: 5}, true},
		{DirRight, core.Point{X: 6, Y: 5}, false},
		{DirDown, core.Point{X: 5, Y: 6}, true},
	}

	for _, tc := range tests {
		t.Run(tc.dir.String(), func(t *testing.T) {
			head, collided := b.Advance(grid, tc.dir)
			if head != tc.head || collided != tc.collided {
				t.Errorf("Advance(%v) = %v, %v; expected %v, %v", tc.dir, head, collided, tc.head, tc.collided)
			}
		})
	}
}

func TestSegmentsIsCopy(t *testing.T) {
	b := NewBody(core.Point{X: 1, Y: 1}, core.Point{X: 0, Y: 1})
	segs := b.Segments()
	segs[0] = core.Point{X: 9, Y: 9}

	if b.Head() != (core.Point{X: 1, Y: 1}) {
		t.Error("Segments() exposed internal storage")
	}
}

func TestDirectionOpposites(t *testing.T) {
	for _, d := range []Direction{DirUp, DirDown, DirLeft, DirRight} {
		dx, dy := d.Delta()
		ox, oy := d.Opposite().Delta()
		if dx+ox != 0 || dy+oy != 0 {
			t.Errorf("%v and %v are not opposite", d, d.Opposite())
		}
		if d.Opposite().Opposite() != d {
			t.Errorf("Opposite() is not an involution for %v", d)
		}
	}
}
