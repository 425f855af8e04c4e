package assets

import (
	"github.com/charmbracelet/log"
)

// Theme bundles the resources loaded at startup.
type Theme struct {
	Glyphs     Glyphs
	Background Background
}

// Load reads the glyph set and background once.
// A missing or broken glyph set falls back to the built-in glyphs with a warning.
// A background that cannot be loaded is ignored and the board is drawn plain.
// Empty paths select the defaults without touching the filesystem.
func Load(glyphsPath, backgroundPath string, logger *log.Logger) Theme {
	theme := Theme{Glyphs: DefaultGlyphs()}

	if glyphsPath != "" {
		g, err := LoadGlyphs(glyphsPath)
		if err != nil {
			logger.Warn("glyph set unavailable, using built-in glyphs", "path", glyphsPath, "err", err)
		} else {
			theme.Glyphs = g
		}
	}

	if backgroundPath != "" {
		bg, err := LoadBackground(backgroundPath)
		if err != nil {
			logger.Debug("background not loaded", "path", backgroundPath, "err", err)
		} else {
			theme.Background = bg
		}
	}

	return theme
}
