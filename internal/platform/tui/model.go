package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/registry"
	"github.com/vovakirdan/tui-snake/internal/scores"
)

var modalStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("220")).
	Padding(1, 3)

var modalTitleStyle = lipgloss.NewStyle().
	Bold(true).
	Foreground(lipgloss.Color("220"))

var modalHintStyle = lipgloss.NewStyle().
	Foreground(lipgloss.Color("241"))

// Model is the Bubble Tea model for running a game.
type Model struct {
	game      registry.Game
	screen    *core.Screen
	config    core.RuntimeConfig
	keys      *KeyMapper
	input     core.InputFrame
	state     core.GameState
	logger    *log.Logger
	nameInput textinput.Model
	naming    bool // The high score name modal is open
	quitting  bool
}

// NewModel creates a new Bubble Tea model for the given game.
func NewModel(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) Model {
	// Use time-based seed if not specified
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}

	ti := textinput.New()
	ti.Placeholder = scores.DefaultName
	ti.CharLimit = scores.MaxNameLen
	ti.Width = scores.MaxNameLen + 1
	ti.Prompt = "> "

	return Model{
		game:      game,
		screen:    core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		config:    cfg,
		keys:      NewKeyMapper(),
		input:     core.NewInputFrame(),
		logger:    logger,
		nameInput: ti,
	}
}

// Init initializes the model and starts the game.
func (m Model) Init() tea.Cmd {
	m.game.Reset(m.config)
	return tickCmd(m.config.TickRate)
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if m.naming {
			return m.handleNameKey(msg)
		}
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		return m.handleTick()
	}

	if m.naming {
		var cmd tea.Cmd
		m.nameInput, cmd = m.nameInput.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKey processes keyboard input during play.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	if m.keys.MapKeyToFrame(msg, &m.input) {
		m.quitting = true
		return m, tea.Quit
	}
	return m, nil
}

// handleNameKey routes keys to the name entry modal.
func (m Model) handleNameKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	entry, ok := m.game.(registry.NameEntry)
	if !ok {
		m.naming = false
		return m, nil
	}

	switch msg.String() {
	case "ctrl+c":
		entry.CancelName()
		m.quitting = true
		return m, tea.Quit
	case "enter":
		entry.SubmitName(m.nameInput.Value())
		m.closeNameEntry()
		return m, nil
	case "esc":
		entry.CancelName()
		m.closeNameEntry()
		return m, nil
	}

	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

func (m *Model) closeNameEntry() {
	m.naming = false
	m.nameInput.Blur()
	m.state = m.game.State()
}

// handleTick runs one frame of the game.
func (m Model) handleTick() (tea.Model, tea.Cmd) {
	result := m.game.Step(m.input)
	m.state = result.State
	m.input.Clear()

	if m.state.Quit {
		m.quitting = true
		return m, tea.Quit
	}

	if m.state.AwaitingName && !m.naming {
		if _, ok := m.game.(registry.NameEntry); ok {
			m.naming = true
			m.nameInput.SetValue(scores.DefaultName)
			m.nameInput.CursorEnd()
			return m, tea.Batch(m.nameInput.Focus(), tickCmd(m.config.TickRate))
		}
	}

	return m, tickCmd(m.config.TickRate)
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	m.game.Render(m.screen)

	home, err := os.UserHomeDir()
	if err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}
	dir := filepath.Join(home, ".snake", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("screenshot skipped", "error", err)
		return
	}

	timestamp := time.Now().Format("20060102_150405")
	path := filepath.Join(dir, fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp))
	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("screenshot failed", "path", path, "error", err)
		return
	}
	m.logger.Info("screenshot saved", "path", path)
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	if m.naming {
		return lipgloss.Place(m.config.ScreenW, m.config.ScreenH,
			lipgloss.Center, lipgloss.Center, m.nameModal())
	}

	m.game.Render(m.screen)
	return RenderScreen(m.screen)
}

func (m Model) nameModal() string {
	difficulty, score := "", m.state.Score
	if entry, ok := m.game.(registry.NameEntry); ok {
		difficulty, score, _ = entry.PendingName()
	}

	body := lipgloss.JoinVertical(lipgloss.Center,
		modalTitleStyle.Render("NEW HIGH SCORE!"),
		"",
		fmt.Sprintf("%d points on %s", score, difficulty),
		"",
		"Enter your name:",
		m.nameInput.View(),
		"",
		modalHintStyle.Render("enter save  esc skip"),
	)
	return modalStyle.Render(body)
}

// Run starts the Bubble Tea program with the given game.
func Run(game registry.Game, cfg core.RuntimeConfig, logger *log.Logger) error {
	model := NewModel(game, cfg, logger)

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
	)

	_, err := p.Run()
	return err
}
