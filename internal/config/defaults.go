package config

import (
	_ "embed"
)

//go:embed defaults/breakout.yaml
var defaultYAML []byte

// Default returns the built-in configuration. The values trace back to the
// classic 900x600 arena: a 120x20 paddle hovering 60 units above the bottom
// wall and a 30x30 ball launched down-right at 400 units per second.
func Default() Config {
	return Config{
		Arena: ArenaConfig{
			Left:          -450,
			Right:         450,
			Top:           300,
			Bottom:        -300,
			WallThickness: 10,
		},
		Paddle: PaddleConfig{
			Width:    120,
			Height:   20,
			Speed:    500,
			Padding:  10,
			FloorGap: 60,
		},
		Ball: BallConfig{
			Width:      30,
			Height:     30,
			Speed:      400,
			StartX:     0,
			StartY:     -50,
			DirectionX: 0.5,
			DirectionY: -0.5,
		},
		Bricks: BrickConfig{
			Width:      100,
			Height:     30,
			Gap:        5,
			SideGap:    20,
			CeilingGap: 20,
			PaddleGap:  270,
		},
		Sim: SimConfig{
			TickRate: 60,
		},
	}
}
