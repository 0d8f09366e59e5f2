package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEmbeddedDefaultsMatchHardcoded(t *testing.T) {
	cfg, err := parse(defaultBlockoutYAML)
	require.NoError(t, err)
	assert.Equal(t, DefaultBlockoutConfig(), cfg)
}

func TestLoadBlockoutCustomPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "custom.yaml")
	require.NoError(t, os.WriteFile(path, []byte("collision:\n  step_size: 3\nexit:\n  speed: 12\n"), 0o644))

	cfg, err := LoadBlockout(path)
	require.NoError(t, err)

	assert.Equal(t, 3, cfg.Collision.StepSize)
	assert.Equal(t, 12, cfg.Exit.Speed)
	// Keys not named keep their defaults
	assert.Equal(t, 45, cfg.Collision.CellSize)
	assert.Equal(t, 30, cfg.Gates.AlignTolerance)
}

func TestLoadBlockoutErrors(t *testing.T) {
	dir := t.TempDir()

	t.Run("missing file", func(t *testing.T) {
		_, err := LoadBlockout(filepath.Join(dir, "nope.yaml"))
		assert.Error(t, err)
	})

	t.Run("malformed yaml", func(t *testing.T) {
		path := filepath.Join(dir, "bad.yaml")
		require.NoError(t, os.WriteFile(path, []byte("arena: [1, 2"), 0o644))
		_, err := LoadBlockout(path)
		assert.Error(t, err)
	})

	t.Run("invalid values", func(t *testing.T) {
		path := filepath.Join(dir, "zero.yaml")
		require.NoError(t, os.WriteFile(path, []byte("collision:\n  cell_size: 0\n"), 0o644))
		_, err := LoadBlockout(path)
		assert.ErrorContains(t, err, "cell_size")
	})
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*BlockoutConfig)
		ok     bool
	}{
		{"defaults", func(*BlockoutConfig) {}, true},
		{"zero step", func(c *BlockoutConfig) { c.Collision.StepSize = 0 }, false},
		{"negative tolerance", func(c *BlockoutConfig) { c.Collision.CellTolerance = -1 }, false},
		{"inverted arena", func(c *BlockoutConfig) { c.Arena.MaxX = c.Arena.MinX }, false},
		{"negative jitter", func(c *BlockoutConfig) { c.Exit.Jitter = -2 }, false},
		{"no time limit", func(c *BlockoutConfig) { c.Session.TimeLimitSecs = 0 }, true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			cfg := DefaultBlockoutConfig()
			tc.mutate(&cfg)
			err := cfg.Validate()
			if tc.ok {
				assert.NoError(t, err)
			} else {
				assert.Error(t, err)
			}
		})
	}
}
