package snake

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/assets"
	"github.com/vovakirdan/tui-snake/internal/core"
)

func renderGame(t *testing.T, g *Game, theme assets.Theme, w, h int) *core.Screen {
	t.Helper()
	screen := core.NewScreen(w, h)
	NewRenderer("Tester", theme).Render(screen, g.Snapshot())
	return screen
}

func TestRenderPlaying(t *testing.T) {
	g := newTestGame(t, 10, 6, 444)
	g.food = Cell{Col: 0, Row: 0}
	theme := assets.Theme{Glyphs: assets.DefaultGlyphs()}

	// Board 10x6 needs 12x10; a 30-wide screen centers the frame at x=9.
	screen := renderGame(t, g, theme, 30, 10)

	if !strings.Contains(screen.Row(0), "Player: Tester | Score: 0") {
		t.Errorf("HUD missing, row 0 = %q", screen.Row(0))
	}
	if screen.Get(9, 2) != '┌' || screen.Get(20, 9) != '┘' {
		t.Errorf("board frame misplaced:\n%s", screen.String())
	}

	// Head at center (5,3) is drawn at (9+1+5, 2+1+3).
	head := screen.GetCell(15, 6)
	if head.Rune != theme.Glyphs.Head || head.Color != theme.Glyphs.HeadColor {
		t.Errorf("head cell = %+v", head)
	}
	food := screen.GetCell(10, 3)
	if food.Rune != theme.Glyphs.Food || food.Color != theme.Glyphs.FoodColor {
		t.Errorf("food cell = %+v", food)
	}
	if strings.Contains(screen.String(), "Game Over") {
		t.Error("game over overlay should not be drawn while playing")
	}
}

func TestRenderBodyAndBackground(t *testing.T) {
	g := newTestGame(t, 10, 6, 445)
	placeSnake(g, HeadingRight, HeadingRight, Cell{Col: 3, Row: 2}, Cell{Col: 2, Row: 2})
	g.hasFood = false
	theme := assets.Theme{
		Glyphs:     assets.DefaultGlyphs(),
		Background: assets.ParseBackground("#"),
	}

	screen := renderGame(t, g, theme, 12, 10)

	body := screen.GetCell(1+2, 3+2)
	if body.Rune != theme.Glyphs.Body || body.Color != theme.Glyphs.BodyColor {
		t.Errorf("body cell = %+v", body)
	}
	bg := screen.GetCell(1, 3)
	if bg.Rune != '#' || bg.Color != theme.Glyphs.BackgroundColor {
		t.Errorf("background cell = %+v", bg)
	}
	if strings.ContainsRune(screen.String(), theme.Glyphs.Food) {
		t.Error("absent food should not be drawn")
	}
}

func TestRenderGameOver(t *testing.T) {
	g := newTestGame(t, 30, 10, 446)
	placeSnake(g, HeadingRight, HeadingRight, Cell{Col: 29, Row: 5})
	g.score = 3
	g.Step()

	screen := renderGame(t, g, assets.Theme{Glyphs: assets.DefaultGlyphs()}, 40, 14)
	content := screen.String()

	for _, want := range []string{"Game Over", "Press Enter to Restart", "Score: 3", "Player: Tester | Score: 3"} {
		if !strings.Contains(content, want) {
			t.Errorf("expected %q in:\n%s", want, content)
		}
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := newTestGame(t, 40, 30, 447)
	screen := renderGame(t, g, assets.Theme{Glyphs: assets.DefaultGlyphs()}, 60, 20)

	content := screen.String()
	if !strings.Contains(content, "Terminal too small") {
		t.Errorf("expected too-small overlay:\n%s", content)
	}
	if !strings.Contains(content, "Need 42x34") {
		t.Errorf("expected required size in overlay:\n%s", content)
	}
	if !strings.Contains(content, "Resize to continue") {
		t.Errorf("expected resize hint in overlay:\n%s", content)
	}
	if Fits(screen, g.Board()) {
		t.Error("40x30 board should not fit a 60x20 screen")
	}
	if !Fits(core.NewScreen(42, 34), g.Board()) {
		t.Error("40x30 board should fit a 42x34 screen")
	}
}

func TestRenderOverlayStaysOnScreen(t *testing.T) {
	g := newTestGame(t, 40, 30, 448)
	// The widest overlay line needs a 26-wide box; it is pinned to the left edge.
	screen := renderGame(t, g, assets.Theme{Glyphs: assets.DefaultGlyphs()}, 22, 20)

	if got := screen.Get(0, 8); got != '┌' {
		t.Errorf("overlay box should start at column 0, got %q:\n%s", got, screen.String())
	}
	if !strings.Contains(screen.Row(9), "Terminal too small") {
		t.Errorf("overlay title clipped: %q", screen.Row(9))
	}
}

func TestRequiredSize(t *testing.T) {
	w, h := RequiredSize(Board{Cols: 40, Rows: 30})
	if w != 42 || h != 34 {
		t.Errorf("RequiredSize() = %dx%d, expected 42x34", w, h)
	}
}
