package snake

import (
	"errors"
	"math/rand"
	"slices"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// ErrGridFull is returned when no free cell is left for food.
var ErrGridFull = errors.New("snake: no free cell left on the grid")

// Spawner places food on cells the snake does not occupy.
type Spawner struct {
	grid core.Grid
	rng  *rand.Rand
}

// NewSpawner creates a spawner for grid g drawing from rng.
func NewSpawner(g core.Grid, rng *rand.Rand) *Spawner {
	return &Spawner{grid: g, rng: rng}
}

// Spawn picks a uniformly random cell that is neither part of body nor one
// of excluded. It samples at random first and, on a crowded grid, falls back
// to choosing among the enumerated free cells so it always terminates.
func (s *Spawner) Spawn(body *Body, excluded ...core.Point) (core.Point, error) {
	taken := func(p core.Point) bool {
		return body.Contains(p) || slices.Contains(excluded, p)
	}

	attempts := 4 * s.grid.Cells()
	for range attempts {
		p := core.Point{X: s.rng.Intn(s.grid.W), Y: s.rng.Intn(s.grid.H)}
		if !taken(p) {
			return p, nil
		}
	}

	var free []core.Point
	for y := range s.grid.H {
		for x := range s.grid.W {
			p := core.Point{X: x, Y: y}
			if !taken(p) {
				free = append(free, p)
			}
		}
	}
	if len(free) == 0 {
		return core.Point{X: -1, Y: -1}, ErrGridFull
	}
	return free[s.rng.Intn(len(free))], nil
}
