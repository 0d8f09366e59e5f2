package core

// Tuning holds the engine constants. All distances are logical pixels.
type Tuning struct {
	// Arena limits. A piece must lie within [MinX, MaxX] x [MinY, MaxY].
	MinX, MinY int
	MaxX, MaxY int

	// Origin of the play grid used when snapping.
	GridOffsetX int
	GridOffsetY int

	CellSize      int
	StepSize      int // CCD sub-step length
	LooseInset    int // Shrink of the mover's bounding box
	CellTolerance int // Shrink of each mover cell

	AlignTolerance int

	ExitSpeed     int
	ExitJitter    int
	ExitThreshold int
}

// DefaultTuning returns the constants the campaign levels are built for.
func DefaultTuning() Tuning {
	return Tuning{
		MinX:           0,
		MinY:           60,
		MaxX:           1000,
		MaxY:           1200,
		GridOffsetX:    40,
		GridOffsetY:    100,
		CellSize:       45,
		StepSize:       5,
		LooseInset:     2,
		CellTolerance:  2,
		AlignTolerance: 30,
		ExitSpeed:      8,
		ExitJitter:     2,
		ExitThreshold:  40,
	}
}
