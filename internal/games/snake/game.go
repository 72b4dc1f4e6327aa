// Package snake implements the Snake game: the per-tick update of one
// episode, the menu state machine around it and the three registered
// variants.
package snake

import (
	"errors"
	"math/rand"
	"time"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
)

// EndReason explains why an episode ended.
type EndReason string

const (
	ReasonNone          EndReason = ""
	ReasonSelfCollision EndReason = "self_collision"
	ReasonWall          EndReason = "wall"
	ReasonBoardFull     EndReason = "board_full"
)

// Rules toggle the differences between variants inside an episode.
type Rules struct {
	Wrap        bool // Leaving the grid re-enters on the other side; otherwise walls kill
	SpecialFood bool // Time-limited bonus food may appear
}

// SpecialFood is the bonus item of the enhanced variant.
type SpecialFood struct {
	Pos       core.Point
	Bonus     int
	SpawnedAt time.Time
}

// Options configures a new episode.
type Options struct {
	Grid        core.Grid
	Difficulty  config.DifficultySettings
	Rules       Rules
	Food        config.FoodConfig
	SpecialFood config.SpecialFoodConfig
	Rand        *rand.Rand
}

// Outcome reports what happened during one call to Update.
type Outcome struct {
	Ticked     bool // A logic tick was committed
	Ate        bool // Ordinary food was eaten
	AteSpecial bool // Special food was eaten
	Spawned    bool // Special food appeared
	Ended      bool // The episode ended this tick
}

// Game is one episode: a snake on a grid, its food and its score.
type Game struct {
	opts    Options
	grid    core.Grid
	rng     *rand.Rand
	spawner *Spawner

	body    Body
	dir     Direction
	nextDir Direction // Buffered direction, committed on the next tick
	food    core.Point
	special *SpecialFood
	score   int

	ticks       uint64
	foodAge     int // Ticks since the ordinary food was placed
	lastTick    time.Time
	suspendedAt time.Time
	over        bool
	reason      EndReason
}

// NewGame starts an episode at time now. The snake starts in the middle of
// the grid, two cells long, heading right.
func NewGame(opts Options, now time.Time) *Game {
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(now.UnixNano()))
	}
	g := &Game{
		opts:     opts,
		grid:     opts.Grid,
		rng:      opts.Rand,
		spawner:  NewSpawner(opts.Grid, opts.Rand),
		dir:      DirRight,
		nextDir:  DirRight,
		lastTick: now,
	}

	c := g.grid.Center()
	g.body = NewBody(c, g.grid.Wrap(c, -1, 0))

	food, err := g.spawner.Spawn(&g.body)
	if err != nil {
		g.end(ReasonBoardFull)
	}
	g.food = food
	return g
}

// Steer buffers a direction change for the next tick. A reversal of the
// current direction is ignored; among several valid presses between two
// ticks, the last one wins.
func (g *Game) Steer(d Direction) {
	if d == g.dir.Opposite() {
		return
	}
	g.nextDir = d
}

// Suspend freezes the episode clock, e.g. while paused or in a menu.
func (g *Game) Suspend(now time.Time) {
	if g.suspendedAt.IsZero() {
		g.suspendedAt = now
	}
}

// Resume re-arms the tick timer so the snake does not jump after a pause,
// and extends the special food lifetime by the time spent suspended.
func (g *Game) Resume(now time.Time) {
	if !g.suspendedAt.IsZero() && g.special != nil {
		g.special.SpawnedAt = g.special.SpawnedAt.Add(now.Sub(g.suspendedAt))
	}
	g.suspendedAt = time.Time{}
	g.lastTick = now
}

// Update advances the episode by one tick if the difficulty's tick interval
// has elapsed since the previous tick. Calls before that are no-ops.
func (g *Game) Update(now time.Time) Outcome {
	var out Outcome
	if g.over || now.Sub(g.lastTick) < g.opts.Difficulty.TickInterval() {
		return out
	}
	g.lastTick = now
	g.ticks++
	out.Ticked = true

	g.dir = g.nextDir

	if !g.opts.Rules.Wrap {
		dx, dy := g.dir.Delta()
		if !g.grid.Contains(g.body.Head().Add(dx, dy)) {
			g.end(ReasonWall)
			out.Ended = true
			return out
		}
	}

	head, collided := g.body.Advance(g.grid, g.dir)
	if collided {
		g.end(ReasonSelfCollision)
		out.Ended = true
		return out
	}

	mult := g.opts.Difficulty.ScoreMultiplier
	out.Ate = head == g.food
	out.AteSpecial = g.special != nil && head == g.special.Pos
	if out.Ate {
		g.score += mult
	}
	if out.AteSpecial {
		g.score += g.special.Bonus * mult
		g.special = nil
	}

	if out.Ate || out.AteSpecial {
		g.body.GrowAt(head)
	} else {
		g.body.MoveAt(head)
	}

	if out.Ate {
		if !g.placeFood() {
			out.Ended = true
			return out
		}
	} else if n := g.opts.Food.RelocateAfterTicks; n > 0 {
		g.foodAge++
		if g.foodAge >= n && !g.placeFood() {
			out.Ended = true
			return out
		}
	}

	out.Spawned = g.maybeSpawnSpecial(now)
	g.expireSpecial(now)
	return out
}

// placeFood moves the ordinary food to a free cell. It ends the episode and
// returns false when the snake fills the grid.
func (g *Game) placeFood() bool {
	var excluded []core.Point
	if g.special != nil {
		excluded = append(excluded, g.special.Pos)
	}
	food, err := g.spawner.Spawn(&g.body, excluded...)
	if errors.Is(err, ErrGridFull) {
		g.food = core.Point{X: -1, Y: -1}
		g.end(ReasonBoardFull)
		return false
	}
	g.food = food
	g.foodAge = 0
	return true
}

func (g *Game) maybeSpawnSpecial(now time.Time) bool {
	cfg := g.opts.SpecialFood
	if !g.opts.Rules.SpecialFood || !cfg.Enabled || g.special != nil {
		return false
	}
	if g.rng.Float64() >= cfg.SpawnChance {
		return false
	}
	pos, err := g.spawner.Spawn(&g.body, g.food)
	if err != nil {
		return false
	}
	g.special = &SpecialFood{Pos: pos, Bonus: cfg.Bonus, SpawnedAt: now}
	return true
}

func (g *Game) expireSpecial(now time.Time) {
	if g.special != nil && g.specialAge(now) > g.opts.SpecialFood.Lifetime {
		g.special = nil
	}
}

// specialAge is how long the special food has been on the board, not
// counting time spent suspended.
func (g *Game) specialAge(now time.Time) time.Duration {
	if g.special == nil {
		return 0
	}
	if !g.suspendedAt.IsZero() {
		now = g.suspendedAt
	}
	return now.Sub(g.special.SpawnedAt)
}

func (g *Game) end(reason EndReason) {
	g.over = true
	g.reason = reason
}

// Grid returns the playfield dimensions.
func (g *Game) Grid() core.Grid { return g.grid }

// Difficulty returns the tuning bundle of the episode.
func (g *Game) Difficulty() config.DifficultySettings { return g.opts.Difficulty }

// Body returns the snake segments, head first.
func (g *Game) Body() []core.Point { return g.body.Segments() }

// Direction returns the committed direction.
func (g *Game) Direction() Direction { return g.dir }

// NextDirection returns the buffered direction.
func (g *Game) NextDirection() Direction { return g.nextDir }

// Food returns the ordinary food cell.
func (g *Game) Food() core.Point { return g.food }

// Special returns the active special food, if any.
func (g *Game) Special() (SpecialFood, bool) {
	if g.special == nil {
		return SpecialFood{}, false
	}
	return *g.special, true
}

// Score returns the score of the episode.
func (g *Game) Score() int { return g.score }

// Ticks returns the number of committed ticks.
func (g *Game) Ticks() uint64 { return g.ticks }

// Over reports whether the episode has ended, and why.
func (g *Game) Over() (bool, EndReason) { return g.over, g.reason }
