package levels

import (
	"fmt"

	"github.com/vovakirdan/blockout/internal/games/blockout/core"
	"github.com/vovakirdan/blockout/internal/games/blockout/levels/formats"
)

// ValidationError contains details about validation failure.
type ValidationError struct {
	Code    string
	Message string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("[%s] %s", e.Code, e.Message)
}

// Validate performs load-time checks of a parsed level:
//   - At least one movable piece
//   - Gates have a valid side, a playable color and lie along their edge
//   - Movable pieces have a size, sit on the grid and start in a legal spot
func Validate(l formats.Level) error {
	if err := validateGates(l.Gates); err != nil {
		return err
	}
	if err := validatePieces(l.Pieces); err != nil {
		return err
	}
	return validatePlacement(l.Pieces)
}

func validateGates(gates []core.Gate) error {
	for i, g := range gates {
		if !g.Side.Valid() {
			return ValidationError{
				Code:    "BAD_SIDE",
				Message: fmt.Sprintf("gate %d has side %d, expected 0-3", i, g.Side),
			}
		}
		if g.Color == core.ColorWall {
			return ValidationError{
				Code:    "WALL_COLOR",
				Message: fmt.Sprintf("gate %d uses the wall color", i),
			}
		}
		if g.W <= 0 || g.H <= 0 {
			return ValidationError{
				Code:    "BAD_GATE",
				Message: fmt.Sprintf("gate %d has size %dx%d", i, g.W, g.H),
			}
		}
		if g.Side.HorizontalEdge() && g.W <= g.H || !g.Side.HorizontalEdge() && g.H <= g.W {
			return ValidationError{
				Code:    "BAD_GATE",
				Message: fmt.Sprintf("%s gate %d (%dx%d) does not lie along its edge", g.Side, i, g.W, g.H),
			}
		}
	}
	return nil
}

func validatePieces(pieces []core.Piece) error {
	movable := 0
	for i, p := range pieces {
		if p.W <= 0 || p.H <= 0 {
			return ValidationError{
				Code:    "BAD_PIECE",
				Message: fmt.Sprintf("piece %d has size %dx%d", i, p.W, p.H),
			}
		}
		if p.IsWall() {
			continue
		}
		movable++
		if (p.X-formats.GridOriginX)%formats.CellSize != 0 || (p.Y-formats.GridOriginY)%formats.CellSize != 0 {
			return ValidationError{
				Code:    "OFF_GRID",
				Message: fmt.Sprintf("%s piece %d at (%d, %d) is not on the grid", p.Color, i, p.X, p.Y),
			}
		}
	}
	if movable == 0 {
		return ValidationError{
			Code:    "NO_PIECES",
			Message: "level has no movable pieces",
		}
	}
	return nil
}

// validatePlacement checks that every movable piece could legally stay
// where it starts.
func validatePlacement(pieces []core.Piece) error {
	oracle := core.NewOracle(core.DefaultTuning())

	ptrs := make([]*core.Piece, len(pieces))
	for i := range pieces {
		ptrs[i] = &pieces[i]
	}

	for i, p := range ptrs {
		if p.IsWall() {
			continue
		}
		if !oracle.IsValidMove(p, p.X, p.Y, ptrs) {
			return ValidationError{
				Code:    "BLOCKED",
				Message: fmt.Sprintf("%s piece %d at (%d, %d) overlaps an obstacle or leaves the arena", p.Color, i, p.X, p.Y),
			}
		}
	}
	return nil
}
