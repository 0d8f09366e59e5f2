// Package core implements the blockout movement engine: shape-aware
// collision tests, sub-stepped drag resolution, grid snapping and gate
// exits. This package is UI-agnostic and deterministic for a given seed.
package core

import "strings"

// Axis restricts which screen axis a piece may be dragged along.
type Axis uint8

const (
	AxisNone Axis = iota
	AxisHorizontal
	AxisVertical
)

// String returns the string representation of an axis.
func (a Axis) String() string {
	switch a {
	case AxisNone:
		return "NONE"
	case AxisHorizontal:
		return "HORIZONTAL"
	case AxisVertical:
		return "VERTICAL"
	default:
		return "UNKNOWN"
	}
}

// Next cycles None -> Horizontal -> Vertical -> None.
func (a Axis) Next() Axis {
	return (a + 1) % 3
}

// Constrain adjusts a drag target so it stays on the allowed axis through
// the drag origin (ox, oy).
func (a Axis) Constrain(ox, oy, tx, ty int) (int, int) {
	switch a {
	case AxisHorizontal:
		return tx, oy
	case AxisVertical:
		return ox, ty
	default:
		return tx, ty
	}
}

// ParseAxis converts a string to an Axis. Empty input means AxisNone.
func ParseAxis(s string) (Axis, bool) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "", "NONE":
		return AxisNone, true
	case "HORIZONTAL", "H":
		return AxisHorizontal, true
	case "VERTICAL", "V":
		return AxisVertical, true
	default:
		return AxisNone, false
	}
}

// Side is the arena edge a gate is cut into.
type Side uint8

const (
	SideTop Side = iota
	SideRight
	SideBottom
	SideLeft
)

// String returns the string representation of a side.
func (s Side) String() string {
	switch s {
	case SideTop:
		return "top"
	case SideRight:
		return "right"
	case SideBottom:
		return "bottom"
	case SideLeft:
		return "left"
	default:
		return "unknown"
	}
}

// Valid reports whether s is one of the four sides.
func (s Side) Valid() bool {
	return s <= SideLeft
}

// Next returns the side clockwise from s.
func (s Side) Next() Side {
	return (s + 1) % 4
}

// HorizontalEdge reports whether the gate lies along a top or bottom edge.
// Pieces pass through such gates by moving vertically.
func (s Side) HorizontalEdge() bool {
	return s == SideTop || s == SideBottom
}

// Delta returns the unit direction pointing out of the arena through s.
func (s Side) Delta() (dx, dy int) {
	switch s {
	case SideTop:
		return 0, -1
	case SideRight:
		return 1, 0
	case SideBottom:
		return 0, 1
	case SideLeft:
		return -1, 0
	default:
		return 0, 0
	}
}

// ParseSide converts a side name to a Side.
func ParseSide(s string) (Side, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "top", "t", "0":
		return SideTop, true
	case "right", "r", "1":
		return SideRight, true
	case "bottom", "b", "2":
		return SideBottom, true
	case "left", "l", "3":
		return SideLeft, true
	default:
		return SideTop, false
	}
}
