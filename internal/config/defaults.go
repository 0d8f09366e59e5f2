package config

import (
	_ "embed"
)

//go:embed defaults/blockout.yaml
var defaultBlockoutYAML []byte

// DefaultBlockoutConfig returns the default blockout configuration.
func DefaultBlockoutConfig() BlockoutConfig {
	return BlockoutConfig{
		Arena: ArenaConfig{
			MinX:        0,
			MinY:        60,
			MaxX:        1000,
			MaxY:        1200,
			GridOffsetX: 40,
			GridOffsetY: 100,
		},
		Collision: CollisionConfig{
			CellSize:      45,
			StepSize:      5,
			LooseInset:    2,
			CellTolerance: 2,
		},
		Gates: GatesConfig{
			AlignTolerance: 30,
		},
		Exit: ExitConfig{
			Speed:     8,
			Jitter:    2,
			Threshold: 40,
		},
		Session: SessionConfig{
			TimeLimitSecs:    300,
			FirstClearReward: 20,
			ParticlesPerExit: 15,
		},
	}
}
