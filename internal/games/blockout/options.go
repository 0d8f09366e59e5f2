package blockout

import (
	"io"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/blockout/internal/config"
	platformcore "github.com/vovakirdan/blockout/internal/core"
	"github.com/vovakirdan/blockout/internal/games/blockout/core"
	"github.com/vovakirdan/blockout/internal/registry"
)

// Options configures a game. The registry hands them to the mode factories.
type Options = registry.Options

// ProgressStore persists campaign progress and clear records.
type ProgressStore = registry.ProgressStore

// CustomStore holds editor designs in the text level format.
type CustomStore = registry.CustomStore

func loggerOf(o Options) *log.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return log.New(io.Discard)
}

// TuningFromConfig maps the YAML configuration onto engine constants.
func TuningFromConfig(c config.BlockoutConfig) core.Tuning {
	return core.Tuning{
		MinX:           c.Arena.MinX,
		MinY:           c.Arena.MinY,
		MaxX:           c.Arena.MaxX,
		MaxY:           c.Arena.MaxY,
		GridOffsetX:    c.Arena.GridOffsetX,
		GridOffsetY:    c.Arena.GridOffsetY,
		CellSize:       c.Collision.CellSize,
		StepSize:       c.Collision.StepSize,
		LooseInset:     c.Collision.LooseInset,
		CellTolerance:  c.Collision.CellTolerance,
		AlignTolerance: c.Gates.AlignTolerance,
		ExitSpeed:      c.Exit.Speed,
		ExitJitter:     c.Exit.Jitter,
		ExitThreshold:  c.Exit.Threshold,
	}
}

// memoryProgress keeps progress for the lifetime of a game when no store
// is configured.
type memoryProgress struct {
	p platformcore.Progress
}

func newMemoryProgress() *memoryProgress {
	return &memoryProgress{p: platformcore.NewProgress()}
}

func (m *memoryProgress) LoadProgress() (platformcore.Progress, error) { return m.p, nil }

func (m *memoryProgress) SaveProgress(p platformcore.Progress) error {
	m.p = p
	return nil
}

func (m *memoryProgress) RecordClear(string, int) error { return nil }
