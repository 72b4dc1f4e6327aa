package config

import (
	"fmt"
	"strings"
	"time"
)

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyMedium DifficultyPreset = "medium"
	DifficultyHard   DifficultyPreset = "hard"

	// DifficultyClassic tunes the minimal and standard variants, which have
	// no difficulty selection.
	DifficultyClassic DifficultyPreset = "classic"
)

// AllPresets returns every preset in display order.
func AllPresets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyMedium, DifficultyHard, DifficultyClassic}
}

// SelectablePresets returns the presets offered on the difficulty screen.
func SelectablePresets() []DifficultyPreset {
	return []DifficultyPreset{DifficultyEasy, DifficultyMedium, DifficultyHard}
}

// ParsePreset converts user input ("Easy", "hard", ...) to a preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	p := DifficultyPreset(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range AllPresets() {
		if p == known {
			return p, nil
		}
	}
	return "", fmt.Errorf("config: unknown difficulty %q", s)
}

// DifficultySettings is the fixed tuning bundle of one difficulty.
type DifficultySettings struct {
	Name            string `yaml:"name"`             // Display name, also the high-score table key
	Speed           int    `yaml:"speed"`            // Logic ticks per second
	CellSize        int    `yaml:"cell_size"`        // Arena units per grid cell
	ScoreMultiplier int    `yaml:"score_multiplier"` // Applied to every point scored
}

// TickInterval returns the time between two logic ticks.
func (s DifficultySettings) TickInterval() time.Duration {
	if s.Speed <= 0 {
		return time.Second
	}
	return time.Second / time.Duration(s.Speed)
}

// DifficultyTable maps each preset to its settings.
type DifficultyTable struct {
	Easy    DifficultySettings `yaml:"easy"`
	Medium  DifficultySettings `yaml:"medium"`
	Hard    DifficultySettings `yaml:"hard"`
	Classic DifficultySettings `yaml:"classic"`
}

// For returns the settings of a preset. Unknown presets get Easy.
func (t DifficultyTable) For(preset DifficultyPreset) DifficultySettings {
	switch preset {
	case DifficultyMedium:
		return t.Medium
	case DifficultyHard:
		return t.Hard
	case DifficultyClassic:
		return t.Classic
	default:
		return t.Easy
	}
}
