package snake

import "github.com/vovakirdan/tui-snake/internal/config"

// MenuItem is one selectable line of a menu.
type MenuItem struct {
	Label  string
	Event  Event
	Preset config.DifficultyPreset // Set on difficulty entries
}

// Menu is a vertical list with a cursor.
type Menu struct {
	Title  string
	Items  []MenuItem
	Cursor int
}

// Move shifts the cursor by delta, wrapping at both ends.
func (m *Menu) Move(delta int) {
	n := len(m.Items)
	if n == 0 {
		return
	}
	m.Cursor = ((m.Cursor+delta)%n + n) % n
}

// Selected returns the item under the cursor.
func (m *Menu) Selected() (MenuItem, bool) {
	if m.Cursor < 0 || m.Cursor >= len(m.Items) {
		return MenuItem{}, false
	}
	return m.Items[m.Cursor], true
}

func mainMenu(hasEpisode bool) Menu {
	items := []MenuItem{{Label: "New Game", Event: EventNewGame}}
	if hasEpisode {
		items = append(items, MenuItem{Label: "Continue", Event: EventContinue})
	}
	items = append(items,
		MenuItem{Label: "High Scores", Event: EventHighScores},
		MenuItem{Label: "Quit", Event: EventQuit},
	)
	return Menu{Title: "SNAKE", Items: items}
}

func difficultyMenu(table config.DifficultyTable, current config.DifficultyPreset) Menu {
	m := Menu{Title: "Select Difficulty"}
	for i, p := range config.SelectablePresets() {
		m.Items = append(m.Items, MenuItem{
			Label:  table.For(p).Name,
			Event:  EventPickDifficulty,
			Preset: p,
		})
		if p == current {
			m.Cursor = i
		}
	}
	m.Items = append(m.Items, MenuItem{Label: "Back", Event: EventBack})
	return m
}

func pauseMenu() Menu {
	return Menu{
		Title: "Paused",
		Items: []MenuItem{
			{Label: "Resume", Event: EventResume},
			{Label: "Main Menu", Event: EventMainMenu},
		},
	}
}

func gameOverMenu() Menu {
	return Menu{
		Title: "Game Over",
		Items: []MenuItem{
			{Label: "Play Again", Event: EventPlayAgain},
			{Label: "Main Menu", Event: EventMainMenu},
		},
	}
}

func selectableAt(i int) config.DifficultyPreset {
	presets := config.SelectablePresets()
	if i < 0 || i >= len(presets) {
		return presets[0]
	}
	return presets[i]
}
