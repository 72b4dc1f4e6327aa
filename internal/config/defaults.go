package config

import (
	_ "embed"
	"time"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// DefaultSnakeConfig returns the default Snake configuration.
func DefaultSnakeConfig() SnakeConfig {
	return SnakeConfig{
		Arena: ArenaConfig{
			Width:  120,
			Height: 60,
		},
		Difficulties: DifficultyTable{
			Easy:    DifficultySettings{Name: "Easy", Speed: 8, CellSize: 6, ScoreMultiplier: 1},
			Medium:  DifficultySettings{Name: "Medium", Speed: 12, CellSize: 5, ScoreMultiplier: 2},
			Hard:    DifficultySettings{Name: "Hard", Speed: 18, CellSize: 4, ScoreMultiplier: 3},
			Classic: DifficultySettings{Name: "Classic", Speed: 10, CellSize: 5, ScoreMultiplier: 1},
		},
		Food: FoodConfig{
			RelocateAfterTicks: 0,
		},
		SpecialFood: SpecialFoodConfig{
			Enabled:     true,
			SpawnChance: 0.2,
			Bonus:       10,
			Lifetime:    10 * time.Second,
		},
		Sound: SoundConfig{
			Enabled: true,
			Volume:  -1,
		},
	}
}

// DefaultYAML returns the embedded default YAML.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
