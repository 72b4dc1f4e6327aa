package snake

import (
	"time"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/scores"
)

// Snapshot is a read-only view of everything a renderer needs.
type Snapshot struct {
	Variant    string
	Menus      bool
	Walls      bool // Leaving the grid ends the episode
	State      State
	Difficulty string
	Grid       core.Grid
	Snake      []core.Point
	Direction  Direction
	Food       core.Point
	Special    *SpecialFood
	SpecialTTL time.Duration // Time left before the special food expires
	Score      int
	Best       int
	Ticks      uint64
	Reason     EndReason
	Menu       Menu
	ScoresTab  string
	HighScores scores.Table
	Qualified  bool // The last score is waiting for a name
	HasEpisode bool
}

// Snapshot captures the current machine state.
func (m *Machine) Snapshot() Snapshot {
	s := Snapshot{
		Variant:    m.variant.ID,
		Menus:      m.variant.Menus,
		Walls:      !m.variant.Rules.Wrap,
		State:      m.state,
		Difficulty: m.difficultyName(),
		Menu:       m.menu,
		Qualified:  m.pending != nil,
		HasEpisode: m.hasEpisode,
	}
	s.Menu.Items = append([]MenuItem(nil), m.menu.Items...)

	if m.variant.Menus {
		s.HighScores = m.env.Scores.Table()
		s.Best = m.env.Scores.Best(s.Difficulty)
		tab := selectableAt(m.scoresTab)
		s.ScoresTab = m.env.Config.Difficulties.For(tab).Name
	}

	if g := m.game; g != nil {
		s.Grid = g.Grid()
		s.Snake = g.Body()
		s.Direction = g.Direction()
		s.Food = g.Food()
		s.Score = g.Score()
		s.Ticks = g.Ticks()
		_, s.Reason = g.Over()
		if sf, ok := g.Special(); ok {
			s.Special = &sf
			s.SpecialTTL = m.env.Config.SpecialFood.Lifetime - g.specialAge(m.env.Clock.Now())
		}
	}
	return s
}
