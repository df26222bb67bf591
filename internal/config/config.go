// Package config provides YAML-based gameplay configuration for the arcade.
// Every game ships an embedded default; a user file may override it.
package config

import (
	"errors"
	"fmt"
	"time"

	"github.com/vovakirdan/pixel-arcade/internal/core"
)

// ErrInvalidConfig is returned by Validate for out-of-range values.
var ErrInvalidConfig = errors.New("invalid config")

// FrameConfig controls the frame driver's pacing for one game.
type FrameConfig struct {
	FPS     int     `yaml:"fps"`      // Target frame rate; 0 means uncapped
	YieldMs int     `yaml:"yield_ms"` // Sleep between uncapped frames
	MaxStep float64 `yaml:"max_step"` // Upper bound on one simulation step, seconds; at most core.MaxStep
}

// Interval returns the target frame interval, or zero when uncapped.
func (f FrameConfig) Interval() time.Duration {
	if f.FPS <= 0 {
		return 0
	}
	return time.Second / time.Duration(f.FPS)
}

// Yield returns the pause used between uncapped frames.
func (f FrameConfig) Yield() time.Duration {
	return time.Duration(f.YieldMs) * time.Millisecond
}

func (f FrameConfig) validate() error {
	if f.FPS < 0 {
		return fmt.Errorf("%w: frame.fps must not be negative", ErrInvalidConfig)
	}
	if f.YieldMs < 0 {
		return fmt.Errorf("%w: frame.yield_ms must not be negative", ErrInvalidConfig)
	}
	if !(f.MaxStep > 0) || f.MaxStep > core.MaxStep {
		return fmt.Errorf("%w: frame.max_step must be in (0, %g]", ErrInvalidConfig, core.MaxStep)
	}
	return nil
}

// FlappyConfig contains all configuration for the Flappy game.
type FlappyConfig struct {
	Bird      FlappyBird      `yaml:"bird"`
	Physics   FlappyPhysics   `yaml:"physics"`
	Obstacles FlappyObstacles `yaml:"obstacles"`
	Frame     FrameConfig     `yaml:"frame"`
}

// FlappyBird defines the player's fixed column and size.
type FlappyBird struct {
	X      int `yaml:"x"`
	Radius int `yaml:"radius"`
}

// FlappyPhysics defines vertical motion.
type FlappyPhysics struct {
	Gravity      float64 `yaml:"gravity"`       // px/s^2, positive is down
	JumpVelocity float64 `yaml:"jump_velocity"` // px/s, negative is up
}

// FlappyObstacles defines obstacle geometry and scrolling.
type FlappyObstacles struct {
	Width       int     `yaml:"width"`
	GapHeight   int     `yaml:"gap_height"`
	Spacing     int     `yaml:"spacing"`      // Distance between consecutive obstacles
	SpawnOffset int     `yaml:"spawn_offset"` // First obstacle distance past the right edge
	Margin      int     `yaml:"margin"`       // Keeps gaps away from the top and bottom
	Speed       float64 `yaml:"speed"`        // px/s leftward
}

// Validate checks the config for values the simulation cannot work with.
func (c FlappyConfig) Validate() error {
	switch {
	case c.Bird.Radius <= 0:
		return fmt.Errorf("%w: bird.radius must be positive", ErrInvalidConfig)
	case c.Physics.JumpVelocity >= 0:
		return fmt.Errorf("%w: physics.jump_velocity must be negative (upward)", ErrInvalidConfig)
	case c.Obstacles.Width <= 0:
		return fmt.Errorf("%w: obstacles.width must be positive", ErrInvalidConfig)
	case c.Obstacles.GapHeight <= 0:
		return fmt.Errorf("%w: obstacles.gap_height must be positive", ErrInvalidConfig)
	case c.Obstacles.Spacing <= 0:
		return fmt.Errorf("%w: obstacles.spacing must be positive", ErrInvalidConfig)
	case c.Obstacles.Margin < 0:
		return fmt.Errorf("%w: obstacles.margin must not be negative", ErrInvalidConfig)
	case c.Obstacles.Speed <= 0:
		return fmt.Errorf("%w: obstacles.speed must be positive", ErrInvalidConfig)
	}
	return c.Frame.validate()
}

// PongConfig contains all configuration for the Pong game.
type PongConfig struct {
	Paddle PongPaddle  `yaml:"paddle"`
	Ball   PongBall    `yaml:"ball"`
	AI     PongAI      `yaml:"ai"`
	Frame  FrameConfig `yaml:"frame"`
}

// PongPaddle defines paddle geometry.
type PongPaddle struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	Speed  float64 `yaml:"speed"` // px/s
	Inset  float64 `yaml:"inset"` // Paddle centre distance from its side
}

// PongBall defines serve and bounce speeds.
type PongBall struct {
	Radius      float64 `yaml:"radius"`
	ServeVX     float64 `yaml:"serve_vx"`
	ServeVY     float64 `yaml:"serve_vy"`
	BounceBase  float64 `yaml:"bounce_base"`  // Horizontal speed after a dead-centre hit
	BounceBoost float64 `yaml:"bounce_boost"` // Extra horizontal speed at the paddle tip
	BounceVY    float64 `yaml:"bounce_vy"`    // Vertical speed at the paddle tip
}

// PongAI tunes the computer opponent.
type PongAI struct {
	SampleFrames int     `yaml:"sample_frames"` // Frames between ball height samples
	DeadZone     float64 `yaml:"dead_zone"`
	Gain         float64 `yaml:"gain"`  // Commanded px/s per px of error
	Accel        float64 `yaml:"accel"` // px/s^2 easing limit
	InitialDelay int     `yaml:"initial_delay"`
	CatchupLead  int     `yaml:"catchup_lead"`  // Human lead that makes the AI sharpen up
	CatchupDelay int     `yaml:"catchup_delay"` // Move delay while trailing by CatchupLead
	Delays       []int   `yaml:"delays"`        // Move delays picked at random otherwise
	PerfectEvery int     `yaml:"perfect_every"` // Every Nth AI hit gets a zero-delay response
}

// Validate checks the config for values the simulation cannot work with.
func (c PongConfig) Validate() error {
	switch {
	case c.Paddle.Width <= 0 || c.Paddle.Height <= 0:
		return fmt.Errorf("%w: paddle size must be positive", ErrInvalidConfig)
	case c.Paddle.Speed <= 0:
		return fmt.Errorf("%w: paddle.speed must be positive", ErrInvalidConfig)
	case c.Ball.Radius <= 0:
		return fmt.Errorf("%w: ball.radius must be positive", ErrInvalidConfig)
	case c.Ball.ServeVX <= 0 || c.Ball.BounceBase <= 0:
		return fmt.Errorf("%w: ball speeds must be positive", ErrInvalidConfig)
	case c.AI.SampleFrames <= 0:
		return fmt.Errorf("%w: ai.sample_frames must be positive", ErrInvalidConfig)
	case c.AI.DeadZone < 0:
		return fmt.Errorf("%w: ai.dead_zone must not be negative", ErrInvalidConfig)
	case c.AI.Gain <= 0 || c.AI.Accel <= 0:
		return fmt.Errorf("%w: ai.gain and ai.accel must be positive", ErrInvalidConfig)
	case len(c.AI.Delays) == 0:
		return fmt.Errorf("%w: ai.delays must list at least one delay", ErrInvalidConfig)
	case c.AI.PerfectEvery <= 0:
		return fmt.Errorf("%w: ai.perfect_every must be positive", ErrInvalidConfig)
	}
	return c.Frame.validate()
}
