package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/assets"
	"github.com/vovakirdan/tui-snake/internal/core"
)

const hudHeight = 2 // status line + separator

// Renderer draws snapshots into a screen buffer. It only reads game state.
type Renderer struct {
	player     string
	glyphs     assets.Glyphs
	background assets.Background
}

// NewRenderer creates a renderer for the given player name and theme.
func NewRenderer(player string, theme assets.Theme) *Renderer {
	return &Renderer{
		player:     player,
		glyphs:     theme.Glyphs,
		background: theme.Background,
	}
}

// RequiredSize returns the smallest screen that fits the board, its frame and the HUD.
func RequiredSize(b Board) (int, int) {
	return b.Cols + 2, b.Rows + 2 + hudHeight
}

// Fits reports whether dst is large enough to draw board. The loop is held
// while it is not, so the snake never moves off-screen.
func Fits(dst *core.Screen, b Board) bool {
	needW, needH := RequiredSize(b)
	return dst.Bounds().Fits(needW, needH)
}

// Render clears dst and draws one frame.
func (r *Renderer) Render(dst *core.Screen, snap Snapshot) {
	dst.Clear()
	r.renderHUD(dst, snap)

	if !Fits(dst, snap.Board) {
		needW, needH := RequiredSize(snap.Board)
		r.renderOverlay(dst, dst.Bounds(), r.glyphs.TextColor,
			"Terminal too small",
			fmt.Sprintf("Need %dx%d, have %dx%d", needW, needH, dst.Width(), dst.Height()),
			"Resize to continue")
		return
	}

	needW, needH := RequiredSize(snap.Board)

	frame := core.NewRect((dst.Width()-needW)/2, hudHeight, needW, needH-hudHeight)
	dst.DrawBox(frame, r.glyphs.BorderColor)
	r.renderBoard(dst, frame, snap)

	if snap.Phase == PhaseGameOver {
		r.renderOverlay(dst, frame, r.glyphs.GameOverColor,
			"Game Over",
			"Press Enter to Restart",
			fmt.Sprintf("Score: %d  Length: %d", snap.Score, len(snap.Body)))
	}
}

// HUDText returns the status line: player name and score.
func (r *Renderer) HUDText(snap Snapshot) string {
	return fmt.Sprintf(" Player: %s | Score: %d", r.player, snap.Score)
}

func (r *Renderer) renderHUD(dst *core.Screen, snap Snapshot) {
	dst.DrawTextColored(0, 0, r.HUDText(snap), r.glyphs.TextColor)
	for x, n := 0, dst.Width(); x < n; x++ {
		dst.SetColored(x, 1, '─', r.glyphs.BorderColor)
	}
}

// renderBoard draws background, snake and food inside the frame.
func (r *Renderer) renderBoard(dst *core.Screen, frame core.Rect, snap Snapshot) {
	ox, oy := frame.X+1, frame.Y+1

	for row := 0; row < snap.Board.Rows; row++ {
		for col := 0; col < snap.Board.Cols; col++ {
			if ch, ok := r.background.At(col, row); ok {
				dst.SetColored(ox+col, oy+row, ch, r.glyphs.BackgroundColor)
			} else {
				dst.Set(ox+col, oy+row, r.glyphs.Empty)
			}
		}
	}

	for i, seg := range snap.Body {
		if i == 0 {
			dst.SetColored(ox+seg.Col, oy+seg.Row, r.glyphs.Head, r.glyphs.HeadColor)
		} else {
			dst.SetColored(ox+seg.Col, oy+seg.Row, r.glyphs.Body, r.glyphs.BodyColor)
		}
	}

	// Food is drawn last so it stays visible if it spawned under the snake.
	if snap.HasFood {
		dst.SetColored(ox+snap.Food.Col, oy+snap.Food.Row, r.glyphs.Food, r.glyphs.FoodColor)
	}
}

// renderOverlay draws a boxed message centered in area, kept on screen when it can be.
func (r *Renderer) renderOverlay(dst *core.Screen, area core.Rect, c core.Color, lines ...string) {
	maxLen := 0
	for _, l := range lines {
		maxLen = max(maxLen, len([]rune(l)))
	}
	boxW := maxLen + 4
	boxH := len(lines) + 2
	cx, cy := area.Center()
	box := core.NewRect(
		core.Clamp(cx-boxW/2, 0, max(dst.Width()-boxW, 0)),
		core.Clamp(cy-boxH/2, 0, max(dst.Height()-boxH, 0)),
		boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box, c)
	for i, l := range lines {
		x := box.X + (boxW-len([]rune(l)))/2
		dst.DrawTextColored(x, box.Y+1+i, l, c)
	}
}
