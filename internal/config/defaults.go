package config

import (
	_ "embed"
	"time"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

//go:embed defaults/snake.yaml
var defaultSnakeYAML []byte

// Default returns the built-in configuration: an 800x600 board of 20px cells
// (40x30 grid) stepping every 100ms.
func Default() Config {
	return Config{
		Board: BoardConfig{
			Width:    800,
			Height:   600,
			CellSize: 20,
		},
		Tick: TickConfig{
			Interval: 100 * time.Millisecond,
		},
		FrameRate: 60,
		Player: PlayerConfig{
			Name: "Player",
		},
		Food: FoodConfig{
			Policy: snake.FoodFree,
		},
	}
}

// DefaultYAML returns the embedded default configuration file.
func DefaultYAML() []byte {
	return defaultSnakeYAML
}
