package pong

import (
	"github.com/vovakirdan/pixel-arcade/internal/config"
	"github.com/vovakirdan/pixel-arcade/internal/core"
)

// Paddle is a vertical bat described by its centre.
type Paddle struct {
	X, Y  float64 // Centre
	W, H  float64
	Speed float64 // px/s
}

// Box returns the paddle's bounding box.
func (p Paddle) Box() core.Box {
	return core.BoxAround(p.X, p.Y, p.W, p.H)
}

// Rect returns the paddle's pixel rectangle for drawing.
func (p Paddle) Rect() core.Rect {
	b := p.Box()
	return core.NewRect(int(b.X0), int(b.Y0), int(b.X1), int(b.Y1))
}

// move shifts the paddle by dy, keeping it fully on a surface of height h.
func (p *Paddle) move(dy float64, h int) {
	p.Y = core.ClampF(p.Y+dy, p.H*0.5, float64(h)-p.H*0.5)
}

// Ball is the round ball. It sits still until served.
type Ball struct {
	X, Y   float64 // Centre
	R      float64
	VX, VY float64 // px/s
	InPlay bool
}

// integrate moves the ball and reflects it off the top and bottom walls of a
// surface of height h.
func (b *Ball) integrate(dt float64, h int) {
	b.X += b.VX * dt
	b.Y += b.VY * dt

	if b.Y-b.R < 0 {
		b.Y = b.R
		b.VY = -b.VY
	}
	if b.Y+b.R > float64(h) {
		b.Y = float64(h) - b.R
		b.VY = -b.VY
	}
}

// hits reports whether the ball touches paddle p.
func (b Ball) hits(p Paddle) bool {
	return core.CircleHitsBox(b.X, b.Y, b.R, p.Box())
}

// bounceOff returns the ball from paddle p. The impact offset from the paddle
// centre, normalised to [-1, 1], sets the outgoing vertical speed and adds a
// horizontal boost. The ball is placed one pixel clear of the paddle face so
// the next frame cannot collide again.
func (b *Ball) bounceOff(p Paddle, fromLeft bool, cfg config.PongBall) {
	rel := core.ClampF((b.Y-p.Y)/(p.H*0.5), -1, 1)

	dir := -1.0
	if fromLeft {
		dir = 1.0
	}
	speed := cfg.BounceBase + cfg.BounceBoost*abs(rel)
	b.VX = dir * speed
	b.VY = rel * cfg.BounceVY

	if fromLeft {
		b.X = p.X + p.W*0.5 + b.R + 1
	} else {
		b.X = p.X - p.W*0.5 - b.R - 1
	}
}

// Rect returns the ball's square of side 2r for drawing.
func (b Ball) Rect() core.Rect {
	return core.NewRect(int(b.X-b.R), int(b.Y-b.R), int(b.X+b.R), int(b.Y+b.R))
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
