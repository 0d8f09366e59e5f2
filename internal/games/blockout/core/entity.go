package core

import (
	platformcore "github.com/vovakirdan/blockout/internal/core"
)

// PieceID identifies a piece within one arena.
type PieceID int

// Piece is a movable polyomino, or a wall when its color is ColorWall.
type Piece struct {
	ID    PieceID
	X, Y  int
	W, H  int
	Shape Shape
	Color Color
	Axis  Axis

	Selected bool
	Exiting  bool
	Target   *Gate // Set once the piece commits to an exit
}

// NewPiece creates a piece whose bounds are derived from its shape.
func NewPiece(x, y int, shape Shape, cell int, color Color, axis Axis) *Piece {
	w, h := shape.Size(cell)
	return &Piece{X: x, Y: y, W: w, H: h, Shape: shape, Color: color, Axis: axis}
}

// NewWall creates a wall with custom bounds. Its shape is the solid grid
// covering the bounds, so partial cells count as occupied.
func NewWall(x, y, w, h, cell int) *Piece {
	return &Piece{
		X:     x,
		Y:     y,
		W:     w,
		H:     h,
		Shape: FilledShape(platformcore.CeilDiv(h, cell), platformcore.CeilDiv(w, cell)),
		Color: ColorWall,
	}
}

// IsWall reports whether the piece is an immovable wall.
func (p *Piece) IsWall() bool {
	return p.Color == ColorWall
}

// Bounds returns the bounding rectangle at the current position.
func (p *Piece) Bounds() platformcore.Rect {
	return platformcore.NewRect(p.X, p.Y, p.W, p.H)
}

// Center returns the center of the bounding rectangle.
func (p *Piece) Center() (int, int) {
	return p.Bounds().Center()
}

// MoveTo places the piece at (x, y).
func (p *Piece) MoveTo(x, y int) {
	p.X, p.Y = x, y
}

// SetShape replaces the shape and resizes the bounds to match.
func (p *Piece) SetShape(s Shape, cell int) {
	p.Shape = s
	p.W, p.H = s.Size(cell)
}

// ContainsPoint reports whether (px, py) falls on an occupied cell.
func (p *Piece) ContainsPoint(px, py, cell int) bool {
	if !p.Bounds().Contains(px, py) {
		return false
	}
	return p.Shape.At((py-p.Y)/cell, (px-p.X)/cell)
}

// BeginExit commits the piece to leave through g.
func (p *Piece) BeginExit(g *Gate) {
	p.Exiting = true
	p.Target = g
	p.Selected = false
}

// Clone returns a deep copy. Target is not copied.
func (p *Piece) Clone() *Piece {
	c := *p
	c.Target = nil
	return &c
}

// Gate is a colored opening in one arena edge.
type Gate struct {
	X, Y  int
	W, H  int
	Color Color
	Side  Side
}

// NewGate creates a gate.
func NewGate(x, y, w, h int, color Color, side Side) *Gate {
	return &Gate{X: x, Y: y, W: w, H: h, Color: color, Side: side}
}

// Bounds returns the gate rectangle.
func (g *Gate) Bounds() platformcore.Rect {
	return platformcore.NewRect(g.X, g.Y, g.W, g.H)
}

// Proxy returns a wall-colored stand-in covering the gate, used to block
// pieces of other colors.
func (g *Gate) Proxy(cell int) *Piece {
	return NewWall(g.X, g.Y, g.W, g.H, cell)
}

// ContainsPoint reports whether (px, py) lies on the gate.
func (g *Gate) ContainsPoint(px, py int) bool {
	return g.Bounds().Contains(px, py)
}
