package snake

import (
	"fmt"
	"math/rand"
	"slices"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/audio"
	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
)

type pendingScore struct {
	difficulty string
	score      int
}

// Machine is the context of a running game: the active state, the current
// episode and the menus. It implements registry.Game.
type Machine struct {
	variant Variant
	env     registry.Env
	logger  *log.Logger
	rng     *rand.Rand

	state      State
	menu       Menu
	preset     config.DifficultyPreset
	game       *Game
	hasEpisode bool // An unfinished episode can be continued
	scoresTab  int  // Difficulty shown on the high score screen
	pending    *pendingScore
	quit       bool
}

// NewMachine creates a game of the given variant.
func NewMachine(v Variant, env registry.Env) *Machine {
	env = env.WithDefaults()
	if !v.Sound {
		env.Sound = audio.Nop{}
	}
	return &Machine{
		variant: v,
		env:     env,
		logger:  env.Logger.With("variant", v.ID),
		preset:  config.DifficultyEasy,
	}
}

// ID returns the variant identifier.
func (m *Machine) ID() string { return m.variant.ID }

// Title returns the display name.
func (m *Machine) Title() string { return m.variant.Title }

// Reset returns to the initial state. Variants without menus start playing
// right away.
func (m *Machine) Reset(cfg core.RuntimeConfig) {
	m.rng = rand.New(rand.NewSource(cfg.Seed))
	m.game = nil
	m.hasEpisode = false
	m.pending = nil
	m.quit = false

	if !m.variant.Menus {
		m.preset = config.DifficultyClassic
		m.startEpisode()
		m.state = StatePlaying
		return
	}
	m.state = StateMainMenu
	m.menu = mainMenu(false)
}

// Step applies the actions of one frame and then lets the episode tick.
func (m *Machine) Step(in core.InputFrame) core.StepResult {
	for _, a := range in.Actions() {
		if a == core.ActionQuit {
			m.quit = true
		}
		if m.quit {
			break
		}
		if m.pending != nil {
			continue
		}
		m.handle(a)
	}

	var ticked bool
	if !m.quit && m.state == StatePlaying && m.game != nil {
		out := m.game.Update(m.env.Clock.Now())
		ticked = out.Ticked
		m.react(out)
	}
	return core.StepResult{State: m.State(), Ticked: ticked}
}

func (m *Machine) handle(a core.Action) {
	switch m.state {
	case StatePlaying:
		if d, ok := directionFor(a); ok {
			m.game.Steer(d)
			return
		}
		switch a {
		case core.ActionPause:
			if m.variant.Pause {
				m.fire(EventPause, MenuItem{})
			}
		case core.ActionBack:
			if m.variant.Menus {
				m.fire(EventPause, MenuItem{})
			} else {
				m.quit = true
			}
		}

	case StatePaused:
		switch a {
		case core.ActionPause, core.ActionBack:
			m.fire(EventResume, MenuItem{})
		default:
			if m.variant.Menus {
				m.navigate(a)
			}
		}

	case StateGameOver:
		switch {
		case a == core.ActionRestart:
			m.fire(EventPlayAgain, MenuItem{})
		case !m.variant.Menus && a == core.ActionConfirm:
			m.fire(EventPlayAgain, MenuItem{})
		case !m.variant.Menus && a == core.ActionBack:
			m.quit = true
		case a == core.ActionBack:
			m.fire(EventMainMenu, MenuItem{})
		case m.variant.Menus:
			m.navigate(a)
		}

	case StateMainMenu:
		m.navigate(a)

	case StateDifficultySelect:
		if a == core.ActionBack {
			m.fire(EventBack, MenuItem{})
			return
		}
		m.navigate(a)

	case StateHighScores:
		n := len(config.SelectablePresets())
		switch a {
		case core.ActionLeft, core.ActionUp:
			m.scoresTab = (m.scoresTab + n - 1) % n
		case core.ActionRight, core.ActionDown:
			m.scoresTab = (m.scoresTab + 1) % n
		case core.ActionBack, core.ActionConfirm:
			m.fire(EventBack, MenuItem{})
		}
	}
}

// navigate moves the menu cursor or activates the selected item.
func (m *Machine) navigate(a core.Action) {
	switch a {
	case core.ActionUp:
		m.menu.Move(-1)
	case core.ActionDown:
		m.menu.Move(1)
	case core.ActionConfirm:
		if item, ok := m.menu.Selected(); ok {
			m.env.Sound.Play(audio.EffectMenuSelect)
			m.fire(item.Event, item)
		}
	}
}

// fire applies a transition and runs the side effects of entering the new
// state. Events that do not apply in the current state are ignored.
func (m *Machine) fire(ev Event, item MenuItem) {
	if ev == EventQuit {
		m.quit = true
		return
	}
	from := m.state
	to, ok := Next(from, ev, m.hasEpisode)
	if !ok {
		return
	}
	m.state = to
	now := m.env.Clock.Now()

	switch ev {
	case EventPickDifficulty:
		m.preset = item.Preset
		m.startEpisode()
	case EventPlayAgain:
		m.startEpisode()
	case EventPause:
		m.game.Suspend(now)
	case EventResume, EventContinue:
		m.game.Resume(now)
	}

	switch to {
	case StateMainMenu:
		m.menu = mainMenu(m.hasEpisode)
	case StateDifficultySelect:
		m.menu = difficultyMenu(m.env.Config.Difficulties, m.preset)
	case StatePaused:
		m.menu = pauseMenu()
	case StateGameOver:
		m.menu = gameOverMenu()
	case StateHighScores:
		m.scoresTab = max(0, slices.Index(config.SelectablePresets(), m.preset))
	}

	m.logger.Debug("state changed", "from", from, "event", ev, "to", to)
}

func (m *Machine) startEpisode() {
	cfg := m.env.Config
	w, h := cfg.GridSize(m.preset)
	m.game = NewGame(Options{
		Grid:        core.NewGrid(w, h),
		Difficulty:  cfg.Difficulties.For(m.preset),
		Rules:       m.variant.Rules,
		Food:        cfg.Food,
		SpecialFood: cfg.SpecialFood,
		Rand:        m.rng,
	}, m.env.Clock.Now())
	m.hasEpisode = true
	m.logger.Debug("episode started",
		"difficulty", m.difficultyName(),
		"grid", fmt.Sprintf("%dx%d", w, h))
}

// react turns the outcome of a tick into sounds and state changes.
func (m *Machine) react(out Outcome) {
	if out.Ate {
		m.env.Sound.Play(audio.EffectEat)
	}
	if out.AteSpecial {
		m.env.Sound.Play(audio.EffectSpecial)
	}
	if out.Ended {
		m.finishEpisode()
	}
}

func (m *Machine) finishEpisode() {
	_, reason := m.game.Over()
	score := m.game.Score()
	difficulty := m.difficultyName()

	m.hasEpisode = false
	m.fire(EventGameOver, MenuItem{})
	m.env.Sound.Play(audio.EffectGameOver)
	m.logger.Info("episode ended", "reason", reason, "score", score, "difficulty", difficulty)

	if m.variant.Menus && m.env.Scores.Qualifies(difficulty, score) {
		m.pending = &pendingScore{difficulty: difficulty, score: score}
	}
}

func (m *Machine) difficultyName() string {
	return m.env.Config.Difficulties.For(m.preset).Name
}

// PendingName reports a qualifying score waiting for a player name.
func (m *Machine) PendingName() (difficulty string, score int, ok bool) {
	if m.pending == nil {
		return "", 0, false
	}
	return m.pending.difficulty, m.pending.score, true
}

// SubmitName records the pending score under name. A blank name discards it.
func (m *Machine) SubmitName(name string) {
	if m.pending == nil {
		return
	}
	p := m.pending
	m.pending = nil
	if !m.env.Scores.Record(p.difficulty, name, p.score, m.env.Clock.Now()) {
		m.logger.Debug("high score discarded", "difficulty", p.difficulty, "score", p.score)
	}
}

// CancelName drops the pending score.
func (m *Machine) CancelName() {
	m.pending = nil
}

// State returns the current game state.
func (m *Machine) State() core.GameState {
	score := 0
	if m.game != nil {
		score = m.game.Score()
	}
	return core.GameState{
		Phase:        m.state.String(),
		Score:        score,
		GameOver:     m.state == StateGameOver,
		Paused:       m.state == StatePaused,
		AwaitingName: m.pending != nil,
		Quit:         m.quit,
	}
}

// Current returns the active state.
func (m *Machine) Current() State { return m.state }

// Episode returns the current episode, or nil before the first game.
func (m *Machine) Episode() *Game { return m.game }

var (
	_ registry.Game      = (*Machine)(nil)
	_ registry.NameEntry = (*Machine)(nil)
)
