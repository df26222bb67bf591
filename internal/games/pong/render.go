package pong

import (
	"fmt"

	"github.com/vovakirdan/pixel-arcade/internal/core"
)

// Palette
var (
	colorBackground = core.RGB(30, 30, 40)
	colorCenterLine = core.RGB(80, 80, 95)
	colorPaddle     = core.RGB(15, 232, 73)
	colorBall       = core.RGB(252, 186, 4)
	colorHighlight  = core.RGB(255, 235, 150)
)

// Dashes of the centre line, in pixels.
const (
	dashEvery  = 4
	dashLength = 2
)

const serveText = "Press SPACE to serve"

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear(colorBackground)
	drawCenterLine(dst)

	switch p := g.phase.(type) {
	case menuPhase:
		drawMenu(dst, p.selection)
	case playPhase:
		g.drawPlay(dst, p)
	}
}

func drawCenterLine(dst *core.Screen) {
	x := dst.Width() / 2
	for y := 0; y < dst.Height(); y += dashEvery {
		dst.FillRect(x, y, x+1, y+dashLength, colorCenterLine)
	}
}

// drawMenu lays out the title, both options with the selected one
// highlighted, and the help lines.
func drawMenu(dst *core.Screen, selection Mode) {
	top := dst.Rows()/2 - 5
	left := dst.Cols()/2 - 12

	dst.DrawTextCentered(top, "PONG", core.ColorText)
	for i, label := range menuOptions {
		c := core.ColorText
		if Mode(i) == selection {
			c = colorHighlight
		}
		dst.DrawText(left, top+2+i, label, c)
	}
	dst.DrawText(left, top+6, "Use Up/Down then Enter (or press 1/2)", core.ColorText)
	dst.DrawText(left, top+7, "ESC = Quit", core.ColorText)
}

// drawPlay draws paddles, ball and the HUD.
func (g *Game) drawPlay(dst *core.Screen, p playPhase) {
	dst.FillRectR(g.left.Rect(), colorPaddle)
	dst.FillRectR(g.right.Rect(), colorPaddle)
	dst.FillRectR(g.ball.Rect(), colorBall)

	dst.DrawText(1, 0, hudLine(p.opponent, g.scoreL, g.scoreR), core.ColorText)
	if !g.ball.InPlay {
		dst.DrawTextCentered(dst.Rows()/2-2, serveText, core.ColorText)
	}
}

// hudLine returns the controls and score summary.
func hudLine(mode Mode, left, right int) string {
	return fmt.Sprintf("W/S  Up/Down  Space=Serve  R=Reset  Mode: %s  Score: %d - %d", mode, left, right)
}
