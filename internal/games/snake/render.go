package snake

import (
	"fmt"

	"github.com/vovakirdan/tui-snake/internal/core"
)

const (
	hudHeight = 2 // status line + separator
	cellWidth = 2 // terminal columns per board cell
)

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()
	g.renderHUD(dst)

	b := g.state.Board
	boxW := b.Width()*cellWidth + 2
	boxH := b.Height() + 2
	if dst.Width() < boxW || dst.Height() < boxH+hudHeight {
		dst.DrawTextCentered(dst.Height()/2, "Window too small", core.ColorYellow)
		dst.DrawTextCentered(dst.Height()/2+1, fmt.Sprintf("need %dx%d", boxW, boxH+hudHeight), core.ColorGray)
		return
	}

	area := core.NewRect(0, hudHeight, dst.Width(), dst.Height()-hudHeight)
	box := area.CenteredIn(boxW, boxH)
	dst.DrawBox(box, core.ColorGray)
	g.renderBoard(dst, box.X+1, box.Y+1)

	switch g.state.Status {
	case StatusLost:
		g.renderOverlay(dst, "Game Over", fmt.Sprintf("Score: %d", g.state.Score))
	case StatusWon:
		g.renderOverlay(dst, "You Win!", fmt.Sprintf("Score: %d", g.state.Score))
	}
}

func (g *Game) renderHUD(dst *core.Screen) {
	hud := fmt.Sprintf(" %s  Score: %d  Length: %d  Delay: %dms",
		g.title, g.state.Score, g.state.Length, g.Delay().Milliseconds())
	dst.DrawText(0, 0, hud)
	for x := range dst.Width() {
		dst.Set(x, 1, '─')
	}
}

// renderBoard draws apples and the snake with the board origin at (ox, oy).
func (g *Game) renderBoard(dst *core.Screen, ox, oy int) {
	b := g.state.Board
	for y := range b.Height() {
		for x := range b.Width() {
			p := Point{X: x, Y: y}
			sx := ox + x*cellWidth
			sy := oy + y
			switch {
			case b.IsSnake(p) && p == g.state.Head:
				dst.SetColored(sx, sy, '█', core.ColorBrightGreen)
				dst.SetColored(sx+1, sy, '█', core.ColorBrightGreen)
			case b.IsSnake(p):
				dst.SetColored(sx, sy, '█', core.ColorGreen)
				dst.SetColored(sx+1, sy, '█', core.ColorGreen)
			case b.IsApple(p):
				dst.SetColored(sx, sy, '(', core.ColorBrightRed)
				dst.SetColored(sx+1, sy, ')', core.ColorBrightRed)
			}
		}
	}
}

// renderOverlay draws a centered two-line message box with a restart hint.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	hint := "Space to play again"
	width := max(len(line1), len(line2), len(hint)) + 4
	box := core.NewRect(0, 0, dst.Width(), dst.Height()).CenteredIn(width, 7)

	dst.DrawRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, core.ColorBrightWhite)
	dst.DrawTextCentered(box.Y+1, line1, core.ColorBrightWhite)
	dst.DrawTextCentered(box.Y+3, line2, core.ColorYellow)
	dst.DrawTextCentered(box.Y+5, hint, core.ColorGray)
}
