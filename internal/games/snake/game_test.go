package snake

import (
	"math/rand"
	"slices"
	"testing"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

var t0 = time.Date(2026, 1, 1, 12, 0, 0, 0, time.UTC)

const interval = 100 * time.Millisecond

func testOptions(w, h int) Options {
	return Options{
		Grid: core.NewGrid(w, h),
		Difficulty: config.DifficultySettings{
			Name:            "Medium",
			Speed:           10,
			CellSize:        5,
			ScoreMultiplier: 2,
		},
		Rules: Rules{Wrap: true},
		Rand:  rand.New(rand.NewSource(1)),
	}
}

// place puts the snake and food at known cells.
func place(g *Game, dir Direction, food core.Point, segs ...core.Point) {
	g.body = NewBody(segs...)
	g.dir = dir
	g.nextDir = dir
	g.food = food
}

func at(k int) time.Time {
	return t0.Add(time.Duration(k) * interval)
}

func TestNewGameStartPosition(t *testing.T) {
	g := NewGame(testOptions(20, 10), t0)

	body := g.Body()
	expected := []core.Point{{X: 10, Y: 5}, {X: 9, Y: 5}}
	if !slices.Equal(body, expected) {
		t.Errorf("start body = %v, expected %v", body, expected)
	}
	if g.Direction() != DirRight {
		t.Errorf("start direction = %v, expected right", g.Direction())
	}
	if slices.Contains(body, g.Food()) || !g.Grid().Contains(g.Food()) {
		t.Errorf("food %v must be on the grid and off the snake", g.Food())
	}
}

func TestEatFoodScenario(t *testing.T) {
	g := NewGame(testOptions(10, 10), t0)
	place(g, DirRight, core.Point{X: 6, Y: 5}, core.Point{X: 5, Y: 5}, core.Point{X: 4, Y: 5})

	out := g.Update(at(1))

	if !out.Ticked || !out.Ate {
		t.Fatalf("expected a tick that eats, got %+v", out)
	}
	if g.Score() != 2 {
		t.Errorf("score = %d, expected multiplier 2", g.Score())
	}
	expected := []core.Point{{X: 6, Y: 5}, {X: 5, Y: 5}, {X: 4, Y: 5}}
	if !slices.Equal(g.Body(), expected) {
		t.Errorf("body = %v, expected %v", g.Body(), expected)
	}
	if slices.Contains(g.Body(), g.Food()) {
		t.Errorf("new food %v spawned on the snake", g.Food())
	}
}

func TestMoveWithoutFoodVacatesTail(t *testing.T) {
	g := NewGame(testOptions(10, 10), t0)
	place(g, DirRight, core.Point{X: 0, Y: 0},
		core.Point{X: 5, Y: 5}, core.Point{X: 4, Y: 5}, core.Point{X: 3, Y: 5})

	g.Update(at(1))

	body := g.Body()
	if len(body) != 3 {
		t.Errorf("length changed to %d", len(body))
	}
	if slices.Contains(body, core.Point{X: 3, Y: 5}) {
		t.Error("old tail cell should be vacated")
	}
	if body[0] != (core.Point{X: 6, Y: 5}) {
		t.Errorf("head = %v, expected (6,5)", body[0])
	}
	if g.Score() != 0 {
		t.Errorf("score = %d, expected 0", g.Score())
	}
}

func TestTickGating(t *testing.T) {
	g := NewGame(testOptions(10, 10), t0)
	place(g, DirRight, core.Point{X: 0, Y: 0}, core.Point{X: 5, Y: 5}, core.Point{X: 4, Y: 5})

	if out := g.Update(t0.Add(interval / 2)); out.Ticked {
		t.Error("update before the interval elapsed should be a no-op")
	}
	if g.Body()[0] != (core.Point{X: 5, Y: 5}) {
		t.Error("snake moved during a gated update")
	}
	if out := g.Update(at(1)); !out.Ticked {
		t.Error("update after the interval should tick")
	}
	if g.Ticks() != 1 {
		t.Errorf("Ticks() = %d, expected 1", g.Ticks())
	}
}

func TestSteerRejectsReversal(t *testing.T) {
	tests := []struct {
		name     string
		presses  []Direction
		expected Direction
	}{
		{"reversal ignored", []Direction{DirLeft}, DirRight},
		{"last valid wins", []Direction{DirUp, DirDown}, DirDown},
		{"valid then reversal", []Direction{DirUp, DirLeft}, DirUp},
		{"same direction", []Direction{DirRight}, DirRight},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := NewGame(testOptions(10, 10), t0)
			for _, d := range tc.presses {
				g.Steer(d)
			}
			if g.NextDirection() != tc.expected {
				t.Errorf("next direction = %v, expected %v", g.NextDirection(), tc.expected)
			}
		})
	}
}

func TestBufferedTurnAppliesOnTick(t *testing.T) {
	g := NewGame(testOptions(10, 10), t0)
	place(g, DirRight, core.Point{X: 0, Y: 0}, core.Point{X: 5, Y: 5}, core.Point{X: 4, Y: 5})

	g.Steer(DirUp)
	g.Steer(DirLeft) // reversal of the committed direction, ignored
	g.Update(at(1))

	if g.Direction() != DirUp {
		t.Errorf("direction = %v, expected up", g.Direction())
	}
	if g.Body()[0] != (core.Point{X: 5, Y: 4}) {
		t.Errorf("head = %v, expected (5,4)", g.Body()[0])
	}
}

func TestSelfCollisionEndsWithoutMutation(t *testing.T) {
	g := NewGame(testOptions(10, 10), t0)
	segs := []core.Point{{X: 5, Y: 5}, {X: 5, Y: 6}, {X: 4, Y: 6}, {X: 4, Y: 5}, {X: 3, Y: 5}}
	place(g, DirUp, core.Point{X: 0, Y: 0}, segs...)

	g.Steer(DirLeft)
	out := g.Update(at(1))

	over, reason := g.Over()
	if !out.Ended || !over || reason != ReasonSelfCollision {
		t.Fatalf("expected self collision, got over=%v reason=%q", over, reason)
	}
	if !slices.Equal(g.Body(), segs) {
		t.Errorf("body mutated on collision: %v", g.Body())
	}
	if out := g.Update(at(5)); out.Ticked {
		t.Error("an ended episode must not tick")
	}
}

func TestMovingIntoTailCollides(t *testing.T) {
	g := NewGame(testOptions(10, 10), t0)
	segs := []core.Point{{X: 5, Y: 5}, {X: 6, Y: 5}, {X: 6, Y: 6}, {X: 5, Y: 6}}
	place(g, DirLeft, core.Point{X: 0, Y: 0}, segs...)

	g.Steer(DirDown)
	out := g.Update(at(1))

	over, reason := g.Over()
	if !out.Ended || !over || reason != ReasonSelfCollision {
		t.Fatalf("moving into the tail: over=%v reason=%q, expected self collision", over, reason)
	}
	if !slices.Equal(g.Body(), segs) {
		t.Errorf("body mutated on collision: %v", g.Body())
	}
}

func TestWrapAround(t *testing.T) {
	g := NewGame(testOptions(10, 10), t0)
	place(g, DirRight, core.Point{X: 5, Y: 0}, core.Point{X: 9, Y: 5}, core.Point{X: 8, Y: 5})

	g.Update(at(1))

	if g.Body()[0] != (core.Point{X: 0, Y: 5}) {
		t.Errorf("head = %v, expected wrap to (0,5)", g.Body()[0])
	}
}

func TestWallsEndEpisode(t *testing.T) {
	opts := testOptions(10, 10)
	opts.Rules.Wrap = false
	g := NewGame(opts, t0)
	place(g, DirRight, core.Point{X: 5, Y: 0}, core.Point{X: 9, Y: 5}, core.Point{X: 8, Y: 5})

	out := g.Update(at(1))

	over, reason := g.Over()
	if !out.Ended || !over || reason != ReasonWall {
		t.Errorf("expected wall death, got over=%v reason=%q", over, reason)
	}
}

func TestBoardFull(t *testing.T) {
	g := NewGame(testOptions(4, 3), t0)
	place(g, DirRight, core.Point{X: 3, Y: 2},
		core.Point{X: 2, Y: 2}, core.Point{X: 1, Y: 2}, core.Point{X: 0, Y: 2},
		core.Point{X: 0, Y: 1}, core.Point{X: 1, Y: 1}, core.Point{X: 2, Y: 1}, core.Point{X: 3, Y: 1},
		core.Point{X: 3, Y: 0}, core.Point{X: 2, Y: 0}, core.Point{X: 1, Y: 0}, core.Point{X: 0, Y: 0})

	out := g.Update(at(1))

	over, reason := g.Over()
	if !out.Ate || !out.Ended || !over || reason != ReasonBoardFull {
		t.Fatalf("expected board full after eating, got %+v reason=%q", out, reason)
	}
	if len(g.Body()) != 12 {
		t.Errorf("length = %d, expected the whole grid", len(g.Body()))
	}
	if g.Score() != 2 {
		t.Errorf("the last food should still score, got %d", g.Score())
	}
}

func specialOptions() Options {
	opts := testOptions(10, 10)
	opts.Rules.SpecialFood = true
	opts.SpecialFood = config.SpecialFoodConfig{
		Enabled:     true,
		SpawnChance: 1,
		Bonus:       10,
		Lifetime:    10 * time.Second,
	}
	return opts
}

func TestSpecialFoodSpawnsOffSnakeAndFood(t *testing.T) {
	for seed := int64(1); seed <= 20; seed++ {
		opts := specialOptions()
		opts.Rand = rand.New(rand.NewSource(seed))
		g := NewGame(opts, t0)
		place(g, DirRight, core.Point{X: 0, Y: 0}, core.Point{X: 5, Y: 5}, core.Point{X: 4, Y: 5})

		out := g.Update(at(1))

		sf, ok := g.Special()
		if !out.Spawned || !ok {
			t.Fatalf("seed %d: special food should spawn with chance 1", seed)
		}
		if slices.Contains(g.Body(), sf.Pos) || sf.Pos == g.Food() {
			t.Errorf("seed %d: special food at %v overlaps snake or food", seed, sf.Pos)
		}
		if !sf.SpawnedAt.Equal(at(1)) || sf.Bonus != 10 {
			t.Errorf("seed %d: unexpected special food %+v", seed, sf)
		}
	}
}

func TestEatSpecialFood(t *testing.T) {
	opts := specialOptions()
	opts.SpecialFood.SpawnChance = 0
	g := NewGame(opts, t0)
	place(g, DirRight, core.Point{X: 0, Y: 0}, core.Point{X: 5, Y: 5}, core.Point{X: 4, Y: 5})
	g.special = &SpecialFood{Pos: core.Point{X: 6, Y: 5}, Bonus: 10, SpawnedAt: t0}

	out := g.Update(at(1))

	if !out.AteSpecial || out.Ate {
		t.Fatalf("expected only special food eaten, got %+v", out)
	}
	if g.Score() != 20 {
		t.Errorf("score = %d, expected bonus 10 x multiplier 2", g.Score())
	}
	if len(g.Body()) != 3 {
		t.Errorf("snake should grow, length = %d", len(g.Body()))
	}
	if _, ok := g.Special(); ok {
		t.Error("eaten special food should be cleared")
	}
}

func TestSpecialFoodExpires(t *testing.T) {
	g := NewGame(specialOptions(), t0)
	place(g, DirRight, core.Point{X: 0, Y: 9}, core.Point{X: 5, Y: 5}, core.Point{X: 4, Y: 5})
	g.Update(at(1))
	g.opts.SpecialFood.SpawnChance = 0
	g.special.Pos = core.Point{X: 0, Y: 0}

	g.Update(at(1).Add(5 * time.Second))
	if _, ok := g.Special(); !ok {
		t.Fatal("special food expired too early")
	}

	g.Update(at(1).Add(10*time.Second + interval))
	if _, ok := g.Special(); ok {
		t.Error("special food should expire after its lifetime")
	}
}

func TestResumeRearmsTimerAndFreezesSpecial(t *testing.T) {
	g := NewGame(specialOptions(), t0)
	place(g, DirRight, core.Point{X: 0, Y: 9}, core.Point{X: 5, Y: 5}, core.Point{X: 4, Y: 5})
	g.Update(at(1))
	g.opts.SpecialFood.SpawnChance = 0
	g.special.Pos = core.Point{X: 0, Y: 0}

	g.Suspend(at(2))
	resumeAt := at(2).Add(time.Minute)
	g.Resume(resumeAt)

	if out := g.Update(resumeAt.Add(interval / 2)); out.Ticked {
		t.Error("first update after resume should wait a full interval")
	}
	g.Update(resumeAt.Add(interval))
	if _, ok := g.Special(); !ok {
		t.Error("time spent suspended should not count against the special food")
	}
}

func TestFoodRelocation(t *testing.T) {
	opts := testOptions(10, 10)
	opts.Food.RelocateAfterTicks = 3
	g := NewGame(opts, t0)
	place(g, DirRight, core.Point{X: 0, Y: 0}, core.Point{X: 5, Y: 5}, core.Point{X: 4, Y: 5})

	g.Update(at(1))
	g.Update(at(2))
	if g.Food() != (core.Point{X: 0, Y: 0}) {
		t.Fatal("food moved before the relocation period")
	}
	g.Update(at(3))
	if g.foodAge != 0 {
		t.Errorf("food age should reset after relocation, got %d", g.foodAge)
	}
	if slices.Contains(g.Body(), g.Food()) {
		t.Errorf("relocated food %v is on the snake", g.Food())
	}
}

func TestNoDuplicateSegmentsWhilePlaying(t *testing.T) {
	for seed := int64(1); seed <= 10; seed++ {
		opts := testOptions(8, 6)
		opts.Rand = rand.New(rand.NewSource(seed))
		g := NewGame(opts, t0)
		rng := rand.New(rand.NewSource(seed * 7))

		for k := 1; k <= 500; k++ {
			g.Steer(Direction(rng.Intn(4)))
			before := len(g.Body())
			out := g.Update(at(k))
			if out.Ended {
				break
			}

			body := g.Body()
			seen := make(map[core.Point]bool, len(body))
			for _, p := range body {
				if seen[p] {
					t.Fatalf("seed %d tick %d: duplicate segment %v in %v", seed, k, p, body)
				}
				seen[p] = true
			}

			switch {
			case out.Ate && len(body) != before+1:
				t.Fatalf("seed %d tick %d: eating should grow by one", seed, k)
			case !out.Ate && !out.AteSpecial && len(body) != before:
				t.Fatalf("seed %d tick %d: moving should keep the length", seed, k)
			}
			if slices.Contains(body, g.Food()) {
				t.Fatalf("seed %d tick %d: food on the snake", seed, k)
			}
		}
	}
}

func TestDeterminism(t *testing.T) {
	run := func() []core.Point {
		opts := specialOptions()
		opts.SpecialFood.SpawnChance = 0.2
		opts.Rand = rand.New(rand.NewSource(12345))
		g := NewGame(opts, t0)
		for k := 1; k <= 60; k++ {
			switch k {
			case 10:
				g.Steer(DirDown)
			case 20:
				g.Steer(DirLeft)
			}
			g.Update(at(k))
		}
		return append(g.Body(), g.Food())
	}

	if a, b := run(), run(); !slices.Equal(a, b) {
		t.Errorf("same seed produced different games:\n%v\n%v", a, b)
	}
}
