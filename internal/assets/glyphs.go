// Package assets loads the one-time startup resources used by the renderer:
// the glyph set (the terminal stand-in for a font) and the background tile.
package assets

import (
	_ "embed"
	"fmt"
	"os"
	"unicode/utf8"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-snake/internal/core"
)

//go:embed defaults/glyphs.yaml
var defaultGlyphsYAML []byte

// Glyphs defines the runes and colors used to draw each board element.
type Glyphs struct {
	Head  rune
	Body  rune
	Food  rune
	Empty rune

	HeadColor       core.Color
	BodyColor       core.Color
	FoodColor       core.Color
	BackgroundColor core.Color
	TextColor       core.Color
	BorderColor     core.Color
	GameOverColor   core.Color
}

// glyphFile mirrors the YAML layout. Empty fields keep the default.
type glyphFile struct {
	Head   string `yaml:"head"`
	Body   string `yaml:"body"`
	Food   string `yaml:"food"`
	Empty  string `yaml:"empty"`
	Colors struct {
		Head       string `yaml:"head"`
		Body       string `yaml:"body"`
		Food       string `yaml:"food"`
		Background string `yaml:"background"`
		Text       string `yaml:"text"`
		Border     string `yaml:"border"`
		GameOver   string `yaml:"game_over"`
	} `yaml:"colors"`
}

// DefaultGlyphs returns the built-in glyph set.
func DefaultGlyphs() Glyphs {
	return Glyphs{
		Head:            '█',
		Body:            '▓',
		Food:            '●',
		Empty:           ' ',
		HeadColor:       core.ColorBrightBlue,
		BodyColor:       core.ColorBlue,
		FoodColor:       core.ColorRed,
		BackgroundColor: core.ColorGreen,
		TextColor:       core.ColorWhite,
		BorderColor:     core.ColorGray,
		GameOverColor:   core.ColorBrightRed,
	}
}

// DefaultGlyphsYAML returns the embedded glyph file, a template for custom sets.
func DefaultGlyphsYAML() []byte {
	return defaultGlyphsYAML
}

// LoadGlyphs reads a glyph set from a YAML file.
func LoadGlyphs(path string) (Glyphs, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Glyphs{}, fmt.Errorf("assets: failed to read glyphs %s: %w", path, err)
	}
	g, err := ParseGlyphs(data)
	if err != nil {
		return Glyphs{}, fmt.Errorf("assets: %s: %w", path, err)
	}
	return g, nil
}

// ParseGlyphs decodes a glyph set, filling unset fields from the defaults.
func ParseGlyphs(data []byte) (Glyphs, error) {
	var f glyphFile
	if err := yaml.Unmarshal(data, &f); err != nil {
		return Glyphs{}, fmt.Errorf("failed to parse glyphs: %w", err)
	}

	g := DefaultGlyphs()
	runes := []struct {
		name string
		src  string
		dst  *rune
	}{
		{"head", f.Head, &g.Head},
		{"body", f.Body, &g.Body},
		{"food", f.Food, &g.Food},
		{"empty", f.Empty, &g.Empty},
	}
	for _, r := range runes {
		if r.src == "" {
			continue
		}
		if utf8.RuneCountInString(r.src) != 1 {
			return Glyphs{}, fmt.Errorf("glyph %s must be a single rune, got %q", r.name, r.src)
		}
		*r.dst, _ = utf8.DecodeRuneInString(r.src)
	}

	colors := []struct {
		name string
		src  string
		dst  *core.Color
	}{
		{"head", f.Colors.Head, &g.HeadColor},
		{"body", f.Colors.Body, &g.BodyColor},
		{"food", f.Colors.Food, &g.FoodColor},
		{"background", f.Colors.Background, &g.BackgroundColor},
		{"text", f.Colors.Text, &g.TextColor},
		{"border", f.Colors.Border, &g.BorderColor},
		{"game_over", f.Colors.GameOver, &g.GameOverColor},
	}
	for _, c := range colors {
		if c.src == "" {
			continue
		}
		parsed, err := core.ParseColor(c.src)
		if err != nil {
			return Glyphs{}, fmt.Errorf("color %s: %w", c.name, err)
		}
		*c.dst = parsed
	}

	return g, nil
}
