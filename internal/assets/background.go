package assets

import (
	"fmt"
	"os"
	"strings"
)

// Background is a text tile repeated over the board interior.
// The zero value is an empty background.
type Background struct {
	lines [][]rune
}

// LoadBackground reads a background tile from a text file.
func LoadBackground(path string) (Background, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Background{}, fmt.Errorf("assets: failed to read background %s: %w", path, err)
	}
	bg := ParseBackground(string(data))
	if bg.Empty() {
		return Background{}, fmt.Errorf("assets: background %s is empty", path)
	}
	return bg, nil
}

// ParseBackground builds a tile from text. Trailing blank lines are dropped.
func ParseBackground(text string) Background {
	raw := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")
	for len(raw) > 0 && strings.TrimSpace(raw[len(raw)-1]) == "" {
		raw = raw[:len(raw)-1]
	}

	var bg Background
	for _, line := range raw {
		bg.lines = append(bg.lines, []rune(line))
	}
	return bg
}

// Empty reports whether there is nothing to draw.
func (b Background) Empty() bool {
	return len(b.lines) == 0
}

// At returns the tile rune covering board position (x, y).
// Short lines and blanks are transparent.
func (b Background) At(x, y int) (rune, bool) {
	if b.Empty() || x < 0 || y < 0 {
		return 0, false
	}
	line := b.lines[y%len(b.lines)]
	if len(line) == 0 {
		return 0, false
	}
	r := line[x%len(line)]
	if r == ' ' {
		return 0, false
	}
	return r, true
}
