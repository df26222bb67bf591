package flappy

import (
	"fmt"

	"github.com/vovakirdan/pixel-arcade/internal/core"
)

// Palette
var (
	skyTop    = core.RGB(12, 16, 22)
	skyBottom = core.RGB(24, 30, 40)
	skyStripe = core.RGB(28, 36, 48)

	pipeMain = core.RGB(70, 200, 90)
	pipeHi   = core.RGB(110, 230, 130)
	pipeLo   = core.RGB(40, 145, 65)
	capMain  = core.RGB(85, 220, 110)
	capHi    = core.RGB(125, 240, 145)
	capLo    = core.RGB(55, 170, 80)

	birdShadow = core.RGB(0, 0, 0)
	birdBody   = core.RGB(250, 220, 70)
	birdHi     = core.RGB(255, 245, 160)
	birdWing   = core.RGB(235, 200, 55)
	birdEye    = core.RGB(250, 250, 250)
	birdPupil  = core.RGB(30, 30, 30)
	birdBeak   = core.RGB(255, 150, 40)
)

const (
	stripeEvery = 4 // px between faint vertical sky stripes
	capHeight   = 2 // px
)

const gameOverText = "GAME OVER - Press SPACE"

// Render draws the current game state to the screen.
// Gap bounds are recomputed here from obstacle state; nothing is written back.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear(skyTop)
	g.drawSky(dst)
	for _, o := range g.obstacles {
		g.drawObstacle(dst, o)
	}
	g.drawBird(dst)

	dst.DrawText(1, 0, fmt.Sprintf("Score: %d", g.score), core.ColorText)
	if g.phase == PhaseDead {
		dst.DrawTextCentered(dst.Rows()/2, gameOverText, core.ColorText)
	}
}

// drawSky paints a vertical gradient with faint stripes.
func (g *Game) drawSky(dst *core.Screen) {
	w, h := dst.Width(), dst.Height()
	for y := 0; y < h; y++ {
		t := 0.0
		if h > 1 {
			t = float64(y) / float64(h-1)
		}
		dst.FillRect(0, y, w, y+1, core.Lerp(skyTop, skyBottom, t))
	}
	for x := 0; x < w; x += stripeEvery {
		dst.FillRect(x, 0, x+1, h, skyStripe)
	}
}

// drawObstacle draws both pipes of an obstacle with side shading and caps
// facing the gap.
func (g *Game) drawObstacle(dst *core.Screen, o Obstacle) {
	width := g.cfg.Obstacles.Width
	col := o.Rect(width, g.h)
	top, bottom := o.Gap(g.cfg.Obstacles.GapHeight, g.h)
	shade := max(width/3, 1)

	if top > 0 {
		drawPipe(dst, col.X0, col.X1, 0, top, shade)
		drawCap(dst, col.X0, col.X1, max(top-capHeight, 0), top)
	}
	if bottom < g.h {
		drawPipe(dst, col.X0, col.X1, bottom, g.h, shade)
		drawCap(dst, col.X0, col.X1, bottom, min(bottom+capHeight, g.h))
	}
}

// drawPipe fills one pipe segment with a highlight on the left and a shadow on
// the right.
func drawPipe(dst *core.Screen, left, right, y0, y1, shade int) {
	dst.FillRect(left, y0, right, y1, pipeMain)
	dst.FillRect(left+1, y0, left+1+shade, y1, pipeHi)
	dst.FillRect(right-1-shade, y0, right-1, y1, pipeLo)
}

// drawCap draws the lip of a pipe, one pixel wider than the body on each side.
func drawCap(dst *core.Screen, left, right, y0, y1 int) {
	dst.FillRect(left-1, y0, right+1, y1, capMain)
	dst.FillRect(left, y0, left+2, y1, capHi)
	dst.FillRect(right-2, y0, right, y1, capLo)
}

// drawBird draws the bird with a drop shadow, wing, eye and beak.
func (g *Game) drawBird(dst *core.Screen) {
	x := g.cfg.Bird.X
	y := int(g.birdY)
	r := g.cfg.Bird.Radius
	x0, y0, x1, y1 := x-r, y-r, x+r, y+r

	dst.FillEllipse(x0+1, y0+1, x1+1, y1+1, birdShadow)
	dst.FillEllipse(x0, y0, x1, y1, birdBody)
	dst.FillEllipse(x0, y0, x0+max(r/2, 1), y0+max(r/2, 1), birdHi)
	dst.FillEllipse(x0, y, x, y1, birdWing)

	dst.Set(x, y-1, birdEye)
	dst.Set(x+1, y-1, birdPupil)
	dst.FillRect(x+r, y, x+r+2, y+1, birdBeak)
}
