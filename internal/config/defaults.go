package config

import (
	_ "embed"
)

//go:embed defaults/flappy.yaml
var defaultFlappyYAML []byte

//go:embed defaults/pong.yaml
var defaultPongYAML []byte

// DefaultFlappyConfig returns the default Flappy configuration.
func DefaultFlappyConfig() FlappyConfig {
	return FlappyConfig{
		Bird: FlappyBird{
			X:      12,
			Radius: 2,
		},
		Physics: FlappyPhysics{
			Gravity:      110,
			JumpVelocity: -38,
		},
		Obstacles: FlappyObstacles{
			Width:       6,
			GapHeight:   15,
			Spacing:     22,
			SpawnOffset: 12,
			Margin:      6,
			Speed:       26,
		},
		Frame: FrameConfig{
			FPS:     0,
			YieldMs: 1,
			MaxStep: 0.05,
		},
	}
}

// DefaultPongConfig returns the default Pong configuration.
func DefaultPongConfig() PongConfig {
	return PongConfig{
		Paddle: PongPaddle{
			Width:  2,
			Height: 9,
			Speed:  42,
			Inset:  4,
		},
		Ball: PongBall{
			Radius:      1,
			ServeVX:     32,
			ServeVY:     10,
			BounceBase:  24,
			BounceBoost: 7,
			BounceVY:    26,
		},
		AI: PongAI{
			SampleFrames: 24,
			DeadZone:     0.25,
			Gain:         8,
			Accel:        256,
			InitialDelay: 10,
			CatchupLead:  2,
			CatchupDelay: 2,
			Delays:       []int{6, 12},
			PerfectEvery: 7,
		},
		Frame: FrameConfig{
			FPS:     60,
			YieldMs: 1,
			MaxStep: 0.05,
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "flappy":
		return defaultFlappyYAML
	case "pong":
		return defaultPongYAML
	default:
		return nil
	}
}
