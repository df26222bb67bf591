package flappy

import (
	"github.com/vovakirdan/pixel-arcade/internal/config"
	"github.com/vovakirdan/pixel-arcade/internal/core"
	"github.com/vovakirdan/pixel-arcade/internal/rng"
)

// ObstacleCount is the fixed number of obstacles in play at all times.
const ObstacleCount = 4

// Obstacle is a pair of pipes with a passable gap between them.
type Obstacle struct {
	X      float64 // Left edge, decreasing over time
	GapY   float64 // Vertical centre of the gap
	Passed bool    // Set once the bird has cleared it
}

// Rect returns the obstacle's full-height column on a surface of height h.
func (o Obstacle) Rect(width, h int) core.Rect {
	left := int(o.X)
	return core.NewRect(left, 0, left+width, h)
}

// Gap returns the integer gap bounds, clamped to [0, h].
// Collision and rendering both derive the gap from here so they agree pixel
// for pixel.
func (o Obstacle) Gap(gapHeight, h int) (top, bottom int) {
	half := float64(gapHeight) * 0.5
	top = core.Clamp(int(o.GapY-half), 0, h)
	bottom = core.Clamp(int(o.GapY+half), 0, h)
	return top, bottom
}

// gapRange returns the inclusive range of gap centres that keep the whole gap
// at least margin pixels from the top and bottom of a surface of height h.
func gapRange(cfg config.FlappyObstacles, h int) (lo, hi int) {
	lo = cfg.Margin + cfg.GapHeight/2
	hi = h - cfg.Margin - cfg.GapHeight/2
	return lo, hi
}

// newGapY draws a gap centre. On surfaces too short for the margins the range
// collapses to its lower bound.
func newGapY(r *rng.LCG, cfg config.FlappyObstacles, h int) float64 {
	lo, hi := gapRange(cfg, h)
	return float64(r.Between(lo, hi))
}

// layout places the obstacles ahead of the right edge at fixed spacing, each
// with a fresh gap.
func layout(obs *[ObstacleCount]Obstacle, r *rng.LCG, cfg config.FlappyObstacles, w, h int) {
	start := float64(w + cfg.SpawnOffset)
	for i := range obs {
		obs[i] = Obstacle{
			X:    start + float64(i*cfg.Spacing),
			GapY: newGapY(r, cfg, h),
		}
	}
}

// rightmost returns the largest obstacle X, never less than zero.
func rightmost(obs *[ObstacleCount]Obstacle) float64 {
	maxX := 0.0
	for i := range obs {
		maxX = max(maxX, obs[i].X)
	}
	return maxX
}
