// Package config provides YAML-based game configuration loading and
// difficulty lookup for the snake platform.
package config

import (
	"fmt"
	"time"
)

// SnakeConfig contains all tunable configuration for the Snake game.
type SnakeConfig struct {
	Arena        ArenaConfig       `yaml:"arena"`
	Difficulties DifficultyTable   `yaml:"difficulties"`
	Food         FoodConfig        `yaml:"food"`
	SpecialFood  SpecialFoodConfig `yaml:"special_food"`
	Sound        SoundConfig       `yaml:"sound"`
}

// ArenaConfig is the playfield size in abstract units.
// The grid of a difficulty is Arena / CellSize in each dimension.
type ArenaConfig struct {
	Width  int `yaml:"width"`
	Height int `yaml:"height"`
}

// FoodConfig defines ordinary food behavior.
type FoodConfig struct {
	// RelocateAfterTicks moves uneaten food after this many ticks. 0 disables it.
	RelocateAfterTicks int `yaml:"relocate_after_ticks"`
}

// SpecialFoodConfig defines the time-limited bonus food.
type SpecialFoodConfig struct {
	Enabled     bool          `yaml:"enabled"`
	SpawnChance float64       `yaml:"spawn_chance"` // Probability per tick, 0.0 - 1.0
	Bonus       int           `yaml:"bonus"`        // Points before the difficulty multiplier
	Lifetime    time.Duration `yaml:"lifetime"`
}

// SoundConfig toggles synthesized sound effects.
type SoundConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // Relative volume in beep's log scale; 0 = unchanged
}

// Validate checks that the configuration describes a playable game.
func (c SnakeConfig) Validate() error {
	if c.Arena.Width <= 0 || c.Arena.Height <= 0 {
		return fmt.Errorf("config: arena must be positive, got %dx%d", c.Arena.Width, c.Arena.Height)
	}
	for _, preset := range AllPresets() {
		s := c.Difficulties.For(preset)
		if s.Speed <= 0 {
			return fmt.Errorf("config: %s speed must be positive, got %d", preset, s.Speed)
		}
		if s.CellSize <= 0 {
			return fmt.Errorf("config: %s cell_size must be positive, got %d", preset, s.CellSize)
		}
		if s.ScoreMultiplier <= 0 {
			return fmt.Errorf("config: %s score_multiplier must be positive, got %d", preset, s.ScoreMultiplier)
		}
		w, h := c.GridSize(preset)
		if w < MinGridWidth || h < MinGridHeight {
			return fmt.Errorf("config: %s grid %dx%d is smaller than %dx%d", preset, w, h, MinGridWidth, MinGridHeight)
		}
	}
	if c.SpecialFood.SpawnChance < 0 || c.SpecialFood.SpawnChance > 1 {
		return fmt.Errorf("config: special_food.spawn_chance must be within [0, 1], got %v", c.SpecialFood.SpawnChance)
	}
	if c.SpecialFood.Enabled && c.SpecialFood.Lifetime <= 0 {
		return fmt.Errorf("config: special_food.lifetime must be positive when enabled")
	}
	if c.Food.RelocateAfterTicks < 0 {
		return fmt.Errorf("config: food.relocate_after_ticks must not be negative")
	}
	return nil
}

// Minimum playable grid.
const (
	MinGridWidth  = 4
	MinGridHeight = 3
)

// GridSize returns the grid dimensions for a difficulty preset.
func (c SnakeConfig) GridSize(preset DifficultyPreset) (w, h int) {
	cell := c.Difficulties.For(preset).CellSize
	if cell <= 0 {
		return 0, 0
	}
	return c.Arena.Width / cell, c.Arena.Height / cell
}
