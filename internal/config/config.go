// Package config provides YAML-based configuration loading for the snake game.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/tui-snake/internal/games/snake"
)

// Config contains all configuration for a session.
type Config struct {
	Board     BoardConfig  `yaml:"board"`
	Tick      TickConfig   `yaml:"tick"`
	FrameRate int          `yaml:"frame_rate"`
	Player    PlayerConfig `yaml:"player"`
	Food      FoodConfig   `yaml:"food"`
	Assets    AssetsConfig `yaml:"assets"`
}

// BoardConfig defines the playfield in pixel-like units; the grid is
// Width/CellSize columns by Height/CellSize rows.
type BoardConfig struct {
	Width    int `yaml:"width"`
	Height   int `yaml:"height"`
	CellSize int `yaml:"cell_size"`
}

// TickConfig defines the fixed simulation interval.
type TickConfig struct {
	Interval time.Duration `yaml:"interval"`
}

// PlayerConfig defines what the HUD shows.
type PlayerConfig struct {
	Name string `yaml:"name"`
}

// FoodConfig selects the food placement policy.
type FoodConfig struct {
	Policy snake.FoodPolicy `yaml:"policy"`
}

// AssetsConfig points at optional startup resources.
type AssetsConfig struct {
	Glyphs     string `yaml:"glyphs"`
	Background string `yaml:"background"`
}

// Validate reports every invalid field at once.
func (c Config) Validate() error {
	var errs []error

	if c.Board.Width <= 0 || c.Board.Height <= 0 {
		errs = append(errs, fmt.Errorf("board: width and height must be positive, got %dx%d", c.Board.Width, c.Board.Height))
	}
	if c.Board.CellSize <= 0 {
		errs = append(errs, fmt.Errorf("board: cell_size must be positive, got %d", c.Board.CellSize))
	} else if c.Board.CellSize > c.Board.Width || c.Board.CellSize > c.Board.Height {
		errs = append(errs, fmt.Errorf("board: cell_size %d exceeds board %dx%d", c.Board.CellSize, c.Board.Width, c.Board.Height))
	}
	if c.Tick.Interval <= 0 {
		errs = append(errs, fmt.Errorf("tick: interval must be positive, got %s", c.Tick.Interval))
	}
	if c.FrameRate <= 0 {
		errs = append(errs, fmt.Errorf("frame_rate must be positive, got %d", c.FrameRate))
	}
	if _, err := snake.ParseFoodPolicy(string(c.Food.Policy)); err != nil {
		errs = append(errs, fmt.Errorf("food: %w", err))
	}

	if len(errs) > 0 {
		return fmt.Errorf("config: invalid configuration: %w", errors.Join(errs...))
	}
	return nil
}
