package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestANSICode(t *testing.T) {
	tests := []struct {
		c    core.Color
		want string
		ok   bool
	}{
		{core.ColorDefault, "", false},
		{core.ColorRed, "1", true},
		{core.ColorBlue, "4", true},
		{core.ColorWhite, "7", true},
		{core.ColorBrightRed, "9", true},
		{core.ColorBrightBlue, "12", true},
		{core.ColorGray, "245", true},
	}

	for _, tt := range tests {
		t.Run(tt.c.String(), func(t *testing.T) {
			got, ok := ansiCode(tt.c)
			if got != tt.want || ok != tt.ok {
				t.Errorf("ansiCode(%v) = %q, %v; want %q, %v", tt.c, got, ok, tt.want, tt.ok)
			}
		})
	}
}

func TestColorStylesCoverAllColors(t *testing.T) {
	for c := core.ColorDefault; c <= core.ColorGray; c++ {
		if _, ok := colorStyles[c]; !ok {
			t.Errorf("no style for %v", c)
		}
	}
}

func TestRenderScreenText(t *testing.T) {
	s := core.NewScreen(6, 2)
	s.DrawTextColored(0, 0, "ab", core.ColorRed)
	s.DrawTextColored(2, 0, "cd", core.ColorGray)
	s.DrawText(0, 1, "xyz")

	out := RenderScreen(s)
	lines := strings.Split(out, "\n")
	if len(lines) != 2 {
		t.Fatalf("got %d lines, want 2:\n%s", len(lines), out)
	}
	for i, wants := range [][]string{{"ab", "cd"}, {"xyz"}} {
		for _, want := range wants {
			if !strings.Contains(lines[i], want) {
				t.Errorf("line %d = %q, want it to contain %q", i, lines[i], want)
			}
		}
	}
}
