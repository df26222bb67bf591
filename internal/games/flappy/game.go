// Package flappy implements a Flappy Bird-style game.
// The player keeps a bird airborne and steers it through gaps in scrolling pipes.
package flappy

import (
	"github.com/vovakirdan/pixel-arcade/internal/config"
	"github.com/vovakirdan/pixel-arcade/internal/core"
	"github.com/vovakirdan/pixel-arcade/internal/registry"
	"github.com/vovakirdan/pixel-arcade/internal/rng"
)

// Phase is the bird's lifecycle state.
type Phase int

const (
	PhaseFlying Phase = iota // Physics and scoring run
	PhaseDead                // Frozen until the player restarts
)

// String returns the phase name for logs.
func (p Phase) String() string {
	if p == PhaseDead {
		return "dead"
	}
	return "flying"
}

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Game implements the Flappy game logic.
type Game struct {
	cfg        config.FlappyConfig
	configured bool // cfg was supplied by NewWithConfig
	rng        *rng.LCG

	phase     Phase
	birdY     float64 // Bird centre; the column is fixed at cfg.Bird.X
	birdV     float64 // px/s, positive is down
	obstacles [ObstacleCount]Obstacle
	score     int

	w, h int // Surface size in pixels
}

// New creates a Flappy game that loads its configuration on Init.
// Until then it carries the built-in defaults.
func New() *Game {
	return &Game{cfg: config.DefaultFlappyConfig()}
}

// NewWithConfig creates a Flappy game with an explicit configuration.
func NewWithConfig(cfg config.FlappyConfig) *Game {
	return &Game{cfg: cfg, configured: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "flappy"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Flappy Bird"
}

// Init loads configuration, seeds the generator and starts a new game.
func (g *Game) Init(rc core.RuntimeConfig) {
	if !g.configured {
		cfg, err := config.LoadFlappy(configPath)
		if err != nil {
			cfg = config.DefaultFlappyConfig()
		}
		g.cfg = cfg
	}
	g.rng = rng.New(rc.Seed)
	g.w = max(rc.ScreenW, 1)
	g.h = max(rc.ScreenH, 1)
	g.reset()
}

// Resize adopts a new surface size and restarts the game.
// The generator keeps its stream.
func (g *Game) Resize(w, h int) {
	g.w = max(w, 1)
	g.h = max(h, 1)
	g.reset()
}

// reset starts a new game on the current surface.
func (g *Game) reset() {
	g.score = 0
	g.phase = PhaseFlying
	g.birdY = float64(g.h) * 0.5
	g.birdV = 0
	layout(&g.obstacles, g.rng, g.cfg.Obstacles, g.w, g.h)
}

// Step advances the game by dt seconds.
func (g *Game) Step(dt float64, in *core.Tracker) core.StepResult {
	dt = core.ClampStep(dt, g.cfg.Frame.MaxStep)
	jump := in.Pressed(core.KeySpace)

	switch g.phase {
	case PhaseDead:
		if jump {
			g.reset()
		}
	case PhaseFlying:
		if jump {
			g.birdV = g.cfg.Physics.JumpVelocity
		}
		g.advance(dt)
	}

	return core.StepResult{State: g.State()}
}

// advance integrates the bird, scrolls and recycles obstacles, scores passes
// and tests collisions.
func (g *Game) advance(dt float64) {
	r := float64(g.cfg.Bird.Radius)
	g.birdV += g.cfg.Physics.Gravity * dt
	g.birdY += g.birdV * dt

	if g.birdY < r {
		g.birdY = r
		g.birdV = 0
	}
	if floor := float64(g.h) - r; g.birdY > floor {
		g.birdY = floor
		g.phase = PhaseDead
	}

	ob := g.cfg.Obstacles
	width := float64(ob.Width)
	birdLeft := float64(g.cfg.Bird.X - g.cfg.Bird.Radius)
	bird := g.birdRect()

	// Recycled obstacles line up behind the rightmost position seen before
	// this frame's scroll.
	maxX := rightmost(&g.obstacles)

	for i := range g.obstacles {
		o := &g.obstacles[i]
		o.X -= ob.Speed * dt

		if !o.Passed && o.X+width < birdLeft {
			o.Passed = true
			g.score++
		}

		if o.X < -width {
			o.X = maxX + float64(ob.Spacing)
			maxX = o.X
			o.GapY = newGapY(g.rng, ob, g.h)
			o.Passed = false
		}

		if g.hits(*o, bird) {
			g.phase = PhaseDead
		}
	}
}

// birdRect returns the bird's collision box, the square around its circle.
func (g *Game) birdRect() core.Rect {
	x := g.cfg.Bird.X
	y := int(g.birdY)
	r := g.cfg.Bird.Radius
	return core.NewRect(x-r, y-r, x+r, y+r)
}

// hits reports whether the bird box overlaps the obstacle's column without
// fitting inside its gap.
func (g *Game) hits(o Obstacle, bird core.Rect) bool {
	if !bird.OverlapsX(o.Rect(g.cfg.Obstacles.Width, g.h)) {
		return false
	}
	top, bottom := o.Gap(g.cfg.Obstacles.GapHeight, g.h)
	return !bird.WithinY(top, bottom)
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.phase == PhaseDead,
	}
}

// Phase returns the bird's lifecycle state.
func (g *Game) Phase() Phase {
	return g.phase
}

// Pacing returns the frame policy: uncapped with a short yield by default.
func (g *Game) Pacing() config.FrameConfig {
	return g.cfg.Frame
}

// Register the game with the registry
func init() {
	registry.Register("flappy", func() registry.Game {
		return New()
	})
}
