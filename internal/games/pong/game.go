// Package pong implements classic Pong with a start menu.
// The left paddle is always human; the right paddle is a second player or a
// computer opponent chosen on the menu.
package pong

import (
	"github.com/vovakirdan/pixel-arcade/internal/config"
	"github.com/vovakirdan/pixel-arcade/internal/core"
	"github.com/vovakirdan/pixel-arcade/internal/registry"
	"github.com/vovakirdan/pixel-arcade/internal/rng"
)

// configPath stores the custom config path set via CLI
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// Game implements the Pong game logic.
type Game struct {
	cfg        config.PongConfig
	configured bool // cfg was supplied by NewWithConfig
	rng        *rng.LCG

	phase  phase
	left   Paddle
	right  Paddle
	ball   Ball
	scoreL int
	scoreR int
	ai     Controller

	w, h int // Surface size in pixels
}

// New creates a Pong game that loads its configuration on Init.
// Until then it carries the built-in defaults.
func New() *Game {
	return &Game{cfg: config.DefaultPongConfig()}
}

// NewWithConfig creates a Pong game with an explicit configuration.
func NewWithConfig(cfg config.PongConfig) *Game {
	return &Game{cfg: cfg, configured: true}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "pong"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Pong"
}

// Init loads configuration, seeds the generator and opens the start menu.
func (g *Game) Init(rc core.RuntimeConfig) {
	if !g.configured {
		cfg, err := config.LoadPong(configPath)
		if err != nil {
			cfg = config.DefaultPongConfig()
		}
		g.cfg = cfg
	}
	g.rng = rng.New(rc.Seed)
	g.ai = newController(g.cfg.AI)
	g.w = max(rc.ScreenW, 1)
	g.h = max(rc.ScreenH, 1)
	g.phase = menuPhase{}
	g.resetGame()
}

// Resize adopts a new surface size and resets the game. The menu or the
// current opponent is kept.
func (g *Game) Resize(w, h int) {
	g.w = max(w, 1)
	g.h = max(h, 1)
	g.resetGame()
}

// vsComputer reports whether the computer drives the right paddle.
func (g *Game) vsComputer() bool {
	p, ok := g.phase.(playPhase)
	return ok && p.opponent == ModeVsComputer
}

// lead returns the left player's score advantage.
func (g *Game) lead() int {
	return g.scoreL - g.scoreR
}

// resetGame zeroes the scores, re-centres both paddles and serves right.
func (g *Game) resetGame() {
	g.scoreL = 0
	g.scoreR = 0

	pc := g.cfg.Paddle
	g.left = Paddle{X: pc.Inset, Y: float64(g.h) * 0.5, W: pc.Width, H: pc.Height, Speed: pc.Speed}
	g.right = Paddle{X: float64(g.w) - pc.Inset, Y: float64(g.h) * 0.5, W: pc.Width, H: pc.Height, Speed: pc.Speed}

	g.ai.reset()
	g.newRound(true)
}

// newRound centres a stationary ball aimed right when serveToRight is set and
// left otherwise, with a matching vertical direction.
func (g *Game) newRound(serveToRight bool) {
	dir := -1.0
	if serveToRight {
		dir = 1.0
	}
	bc := g.cfg.Ball
	g.ball = Ball{
		X:  float64(g.w) * 0.5,
		Y:  float64(g.h) * 0.5,
		R:  bc.Radius,
		VX: dir * bc.ServeVX,
		VY: dir * bc.ServeVY,
	}

	if g.vsComputer() {
		g.ai.newRound(g.lead(), g.right.Y, g.rng)
	}
}

// Step advances the game by dt seconds.
func (g *Game) Step(dt float64, in *core.Tracker) core.StepResult {
	dt = core.ClampStep(dt, g.cfg.Frame.MaxStep)

	if in.Pressed(core.KeyEscape) {
		return core.StepResult{State: g.State(), Quit: true}
	}

	switch p := g.phase.(type) {
	case menuPhase:
		g.stepMenu(p, in)
	case playPhase:
		if in.Pressed(core.KeyR) {
			g.resetGame()
		}
		g.stepPlay(dt, p, in)
	}

	return core.StepResult{State: g.State()}
}

// stepPlay runs one frame of play: paddles, serve, ball, collisions, scoring.
func (g *Game) stepPlay(dt float64, p playPhase, in *core.Tracker) {
	g.left.move(heldAxis(in, core.KeyW, core.KeyS)*g.left.Speed*dt, g.h)

	var dyR float64
	if p.opponent == ModeVsComputer {
		dyR = g.ai.update(dt, g.ball, g.right)
	} else {
		dyR = heldAxis(in, core.KeyUp, core.KeyDown) * g.right.Speed * dt
	}
	g.right.move(dyR, g.h)

	if !g.ball.InPlay && in.Pressed(core.KeySpace) {
		g.ball.InPlay = true
	}
	if !g.ball.InPlay {
		return
	}

	g.ball.integrate(dt, g.h)

	// Only the paddle the ball is heading toward is tested.
	if g.ball.VX < 0 && g.ball.hits(g.left) {
		g.ball.bounceOff(g.left, true, g.cfg.Ball)
	} else if g.ball.VX > 0 && g.ball.hits(g.right) {
		g.ball.bounceOff(g.right, false, g.cfg.Ball)
		if p.opponent == ModeVsComputer {
			g.ai.onHit(g.lead(), g.right.Y, g.rng)
		}
	}

	switch {
	case g.ball.X+g.ball.R < 0:
		g.scoreR++
		g.newRound(false)
	case g.ball.X-g.ball.R > float64(g.w):
		g.scoreL++
		g.newRound(true)
	}
}

// heldAxis returns -1, 0 or +1 from a pair of held keys.
func heldAxis(in *core.Tracker, up, down core.Key) float64 {
	var v float64
	if in.Held(up) {
		v--
	}
	if in.Held(down) {
		v++
	}
	return v
}

// State returns the current scores. Pong has no terminal state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.scoreL,
		Opponent: g.scoreR,
	}
}

// InMenu reports whether the start menu is showing.
func (g *Game) InMenu() bool {
	_, ok := g.phase.(menuPhase)
	return ok
}

// Pacing returns the frame policy, 60 FPS by default.
func (g *Game) Pacing() config.FrameConfig {
	return g.cfg.Frame
}

// Register the game with the registry
func init() {
	registry.Register("pong", func() registry.Game {
		return New()
	})
}
