package core

// RuntimeConfig contains configuration passed to games at initialization.
// Games use this to size the world to the surface and to seed their RNG.
type RuntimeConfig struct {
	ScreenW int    // Surface width in pixels
	ScreenH int    // Surface height in pixels
	Seed    uint32 // RNG seed; a given seed reproduces a run exactly
}

// GameState represents the externally visible status of a game.
// Returned by Game.State() to communicate status to the platform.
type GameState struct {
	Score    int  // Primary score (left side in two-sided games)
	Opponent int  // Right-side score; zero for single-player games
	GameOver bool // Whether the game is in its terminal state awaiting reset
}

// StepResult is returned by Game.Step() after each simulation step.
type StepResult struct {
	State GameState
	Quit  bool // The game asked the frame driver to stop
}

// MaxStep is the longest simulation step in seconds, whatever the pacing says.
const MaxStep = 0.05

// ClampStep bounds a frame's elapsed time to [0, min(maxStep, MaxStep)].
// Negative, NaN and oversized values from a clock glitch or a stall never reach
// the simulation.
func ClampStep(dt, maxStep float64) float64 {
	if !(dt > 0) {
		return 0
	}
	if !(maxStep > 0) || maxStep > MaxStep {
		maxStep = MaxStep
	}
	if dt > maxStep {
		return maxStep
	}
	return dt
}
