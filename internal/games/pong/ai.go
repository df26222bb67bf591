package pong

import (
	"github.com/vovakirdan/pixel-arcade/internal/config"
	"github.com/vovakirdan/pixel-arcade/internal/core"
	"github.com/vovakirdan/pixel-arcade/internal/rng"
)

// Controller drives the computer's paddle.
//
// It is a sampled-reaction tracker rather than a perfect one: it only looks at
// the ball every SampleFrames frames while the ball approaches, only updates
// its commanded velocity every moveDelay frames, and eases its real velocity
// toward the command under a bounded acceleration. Every PerfectEvery-th hit
// gets a zero-delay response.
type Controller struct {
	cfg config.PongAI

	target       float64 // Perceived ball height
	cmdVel       float64 // Commanded velocity, px/s
	vel          float64 // Eased velocity, px/s
	moveFrames   int     // Frames since the last command
	checkFrames  int     // Frames since the last ball sample
	moveDelay    int     // Frames between commands; 0 means every frame
	maxMoveDelay int
	hits         int // AI paddle hits since the last full reset
}

func newController(cfg config.PongAI) Controller {
	c := Controller{cfg: cfg}
	c.reset()
	return c
}

// reset restores the controller for a new game.
func (c *Controller) reset() {
	c.hits = 0
	c.moveFrames = 0
	c.checkFrames = 0
	c.moveDelay = c.cfg.InitialDelay
	c.maxMoveDelay = c.cfg.InitialDelay
	c.cmdVel = 0
	c.vel = 0
}

// newRound prepares for a serve. lead is the human's score minus the
// computer's. The hit count carries over.
func (c *Controller) newRound(lead int, paddleY float64, r *rng.LCG) {
	c.moveFrames = 0
	c.checkFrames = 0
	c.cmdVel = 0
	c.vel = 0
	c.pickDelay(lead, r)
	c.moveDelay = c.maxMoveDelay
	c.target = paddleY
}

// onHit records a return by the computer's paddle.
func (c *Controller) onHit(lead int, paddleY float64, r *rng.LCG) {
	c.hits++
	c.moveFrames = 0
	c.cmdVel = 0
	c.vel = 0

	if c.hits%c.cfg.PerfectEvery == 0 {
		c.moveDelay = 0
	} else {
		c.pickDelay(lead, r)
		c.moveDelay = c.maxMoveDelay
	}
	c.target = paddleY
}

// pickDelay sharpens the controller while the human leads comfortably and
// otherwise picks one of the configured delays at random.
func (c *Controller) pickDelay(lead int, r *rng.LCG) {
	if lead >= c.cfg.CatchupLead {
		c.maxMoveDelay = c.cfg.CatchupDelay
		return
	}
	c.maxMoveDelay = c.cfg.Delays[r.Pick(len(c.cfg.Delays))]
}

// update advances the controller one frame and returns the paddle's
// displacement for this frame.
func (c *Controller) update(dt float64, ball Ball, paddle Paddle) float64 {
	if ball.InPlay && ball.VX > 0 {
		c.checkFrames++
		if c.checkFrames >= c.cfg.SampleFrames {
			c.target = ball.Y
			c.checkFrames = 0
		}
	}

	c.moveFrames++
	delay := max(c.moveDelay, 0)
	if delay == 0 || c.moveFrames >= delay {
		c.cmdVel = c.command(c.target-paddle.Y, paddle.Speed)
		c.moveFrames = 0
	}

	maxDv := c.cfg.Accel * dt
	c.vel += core.ClampF(c.cmdVel-c.vel, -maxDv, maxDv)

	dy := c.vel * dt

	// Snap instead of overshooting the target.
	if diff := c.target - paddle.Y; abs(diff) <= abs(dy) {
		dy = diff
		c.vel = 0
		c.cmdVel = 0
	}
	return dy
}

// command is the proportional law with a dead zone around the target.
func (c *Controller) command(diff, speed float64) float64 {
	if abs(diff) <= c.cfg.DeadZone {
		return 0
	}
	return core.ClampF(diff*c.cfg.Gain, -speed, speed)
}

// Hits returns the number of AI returns since the last full reset.
func (c *Controller) Hits() int {
	return c.hits
}
