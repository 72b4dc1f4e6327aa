package snake

import (
	"errors"
	"math/rand"
	"slices"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestSpawnAvoidsSnakeAndExcluded(t *testing.T) {
	grid := core.NewGrid(5, 4)
	body := NewBody(core.Point{X: 2, Y: 2}, core.Point{X: 1, Y: 2}, core.Point{X: 0, Y: 2})
	excluded := core.Point{X: 3, Y: 3}

	for seed := int64(0); seed < 200; seed++ {
		s := NewSpawner(grid, rand.New(rand.NewSource(seed)))
		p, err := s.Spawn(&body, excluded)
		if err != nil {
			t.Fatalf("seed %d: Spawn() failed: %v", seed, err)
		}
		if !grid.Contains(p) {
			t.Errorf("seed %d: %v is off the grid", seed, p)
		}
		if body.Contains(p) || p == excluded {
			t.Errorf("seed %d: %v is occupied", seed, p)
		}
	}
}

func TestSpawnFindsLastFreeCell(t *testing.T) {
	grid := core.NewGrid(4, 3)
	var segs []core.Point
	for y := range grid.H {
		for x := range grid.W {
			if x == 3 && y == 1 {
				continue
			}
			segs = append(segs, core.Point{X: x, Y: y})
		}
	}
	body := NewBody(segs...)

	p, err := NewSpawner(grid, rand.New(rand.NewSource(7))).Spawn(&body)
	if err != nil {
		t.Fatalf("Spawn() failed: %v", err)
	}
	if p != (core.Point{X: 3, Y: 1}) {
		t.Errorf("Spawn() = %v, expected the only free cell (3,1)", p)
	}
}

func TestSpawnGridFull(t *testing.T) {
	grid := core.NewGrid(4, 3)
	var segs []core.Point
	for y := range grid.H {
		for x := range grid.W {
			segs = append(segs, core.Point{X: x, Y: y})
		}
	}
	body := NewBody(segs[:len(segs)-1]...)
	last := segs[len(segs)-1]

	_, err := NewSpawner(grid, rand.New(rand.NewSource(1))).Spawn(&body, last)
	if !errors.Is(err, ErrGridFull) {
		t.Errorf("Spawn() error = %v, expected ErrGridFull", err)
	}
}

func TestSpawnCoversFreeCells(t *testing.T) {
	grid := core.NewGrid(3, 3)
	body := NewBody(core.Point{X: 1, Y: 1}, core.Point{X: 0, Y: 1})
	s := NewSpawner(grid, rand.New(rand.NewSource(3)))

	var seen []core.Point
	for range 500 {
		p, err := s.Spawn(&body)
		if err != nil {
			t.Fatal(err)
		}
		if !slices.Contains(seen, p) {
			seen = append(seen, p)
		}
	}
	if len(seen) != grid.Cells()-body.Len() {
		t.Errorf("expected every free cell to be reachable, saw %d of %d", len(seen), grid.Cells()-body.Len())
	}
}
