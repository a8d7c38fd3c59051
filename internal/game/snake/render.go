package snake

import (
	"fmt"

	"github.com/vovakirdan/qsnake/internal/core"
)

// Render draws the game to the screen buffer.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	// Field border: the grid bounds are the walls
	dst.DrawBox(core.NewRect(g.mapOffsetX-1, g.mapOffsetY-1, g.width+2, g.height+2))

	g.renderSnake(dst)

	if g.food.X >= 0 && g.food.Y >= 0 {
		dst.SetCell(g.mapOffsetX+g.food.X, g.mapOffsetY+g.food.Y, '*', core.ColorBrightRed)
	}

	switch {
	case g.gameOver:
		g.renderOverlay(dst,
			fmt.Sprintf("Game Over - Score: %d  High: %d", g.score, g.high),
			"Restarting... (R to restart now)")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	mode := "manual"
	if g.training {
		mode = "training"
	}
	st := g.State()
	hud := fmt.Sprintf(" %s - Score: %d  High: %d  Ep: %d  eps: %.3f  Mode: %s  Speed: %s",
		g.Title(), st.Score, st.HighScore, st.Episode, st.Epsilon, mode, g.speed)
	dst.DrawText(0, 0, hud)
	dst.DrawHLine(0, 1, dst.Width(), '─')
}

// renderSnake draws the snake, head highlighted.
func (g *Game) renderSnake(dst *core.Screen) {
	for i, seg := range g.snake {
		x := g.mapOffsetX + seg.X
		y := g.mapOffsetY + seg.Y
		if i == 0 {
			dst.SetCell(x, y, 'O', core.ColorBrightGreen)
		} else {
			dst.SetCell(x, y, 'o', core.ColorGreen)
		}
	}
}

// renderOverlay draws a centered two-line message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	w := dst.Width()
	h := dst.Height()

	maxLen := len(line1)
	if len(line2) > maxLen {
		maxLen = len(line2)
	}
	box := core.NewRect((w-maxLen-4)/2, (h-5)/2, maxLen+4, 5)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)
	dst.DrawTextCentered(box.Y+1, line1)
	dst.DrawTextCentered(box.Y+3, line2)
}
