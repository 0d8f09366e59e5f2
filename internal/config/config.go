// Package config provides YAML-based configuration loading for blockout.
package config

// BlockoutConfig contains all tunable parameters of the puzzle engine and
// the play session.
type BlockoutConfig struct {
	Arena     ArenaConfig     `yaml:"arena"`
	Collision CollisionConfig `yaml:"collision"`
	Gates     GatesConfig     `yaml:"gates"`
	Exit      ExitConfig      `yaml:"exit"`
	Session   SessionConfig   `yaml:"session"`
}

// ArenaConfig defines the play area limits in logical pixels.
type ArenaConfig struct {
	MinX        int `yaml:"min_x"`
	MinY        int `yaml:"min_y"` // HUD margin
	MaxX        int `yaml:"max_x"`
	MaxY        int `yaml:"max_y"`
	GridOffsetX int `yaml:"grid_offset_x"`
	GridOffsetY int `yaml:"grid_offset_y"`
}

// CollisionConfig defines the collision test and sub-stepping constants.
type CollisionConfig struct {
	CellSize      int `yaml:"cell_size"`
	StepSize      int `yaml:"step_size"`
	LooseInset    int `yaml:"loose_inset"`
	CellTolerance int `yaml:"cell_tolerance"`
}

// GatesConfig defines gate alignment parameters.
type GatesConfig struct {
	AlignTolerance int `yaml:"align_tolerance"`
}

// ExitConfig defines the exit animation.
type ExitConfig struct {
	Speed     int `yaml:"speed"`     // Pixels per tick toward the gate side
	Jitter    int `yaml:"jitter"`    // Max random offset per tick
	Threshold int `yaml:"threshold"` // Distance past the gate edge before removal
}

// SessionConfig defines play session rules.
type SessionConfig struct {
	TimeLimitSecs    int `yaml:"time_limit_secs"`
	FirstClearReward int `yaml:"first_clear_reward"`
	ParticlesPerExit int `yaml:"particles_per_exit"`
}
