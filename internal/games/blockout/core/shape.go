package core

import (
	"errors"
	"fmt"
	"strings"
)

// Shape grid errors.
var (
	ErrEmptyShape  = errors.New("shape: empty grid")
	ErrRaggedShape = errors.New("shape: rows differ in length")
	ErrNoCells     = errors.New("shape: no occupied cells")
)

// CellPos addresses one cell of a shape grid.
type CellPos struct {
	Row, Col int
}

// Shape is an immutable boolean occupancy matrix. Copies share storage
// safely because no method mutates it; shape changes build a new Shape.
type Shape struct {
	rows, cols int
	cells      []bool
	occupied   []CellPos
}

// NewShape validates grid and builds a Shape from it.
// The grid must be rectangular with at least one occupied cell.
func NewShape(grid [][]bool) (Shape, error) {
	if len(grid) == 0 || len(grid[0]) == 0 {
		return Shape{}, ErrEmptyShape
	}

	rows, cols := len(grid), len(grid[0])
	s := Shape{rows: rows, cols: cols, cells: make([]bool, rows*cols)}
	for r, row := range grid {
		if len(row) != cols {
			return Shape{}, fmt.Errorf("%w: row %d has %d cells, expected %d", ErrRaggedShape, r, len(row), cols)
		}
		for c, v := range row {
			s.cells[r*cols+c] = v
			if v {
				s.occupied = append(s.occupied, CellPos{Row: r, Col: c})
			}
		}
	}
	if len(s.occupied) == 0 {
		return Shape{}, ErrNoCells
	}
	return s, nil
}

// MustShape is like NewShape but panics on invalid grids.
// Intended for static tables.
func MustShape(grid [][]bool) Shape {
	s, err := NewShape(grid)
	if err != nil {
		panic(err)
	}
	return s
}

// ParseShape builds a shape from string rows where '#', '1' or 'X' mark an
// occupied cell and '.', '0' or ' ' an empty one.
func ParseShape(rows []string) (Shape, error) {
	grid := make([][]bool, len(rows))
	for r, line := range rows {
		grid[r] = make([]bool, 0, len(line))
		for _, ch := range line {
			switch ch {
			case '#', '1', 'X', 'x':
				grid[r] = append(grid[r], true)
			case '.', '0', ' ':
				grid[r] = append(grid[r], false)
			default:
				return Shape{}, fmt.Errorf("shape: invalid cell %q in row %d", ch, r)
			}
		}
	}
	return NewShape(grid)
}

// FilledShape returns a solid rows x cols rectangle. Dimensions below one
// are raised to one.
func FilledShape(rows, cols int) Shape {
	rows, cols = max(rows, 1), max(cols, 1)
	grid := make([][]bool, rows)
	for r := range grid {
		grid[r] = make([]bool, cols)
		for c := range grid[r] {
			grid[r][c] = true
		}
	}
	return MustShape(grid)
}

// Rows returns the number of rows.
func (s Shape) Rows() int { return s.rows }

// Cols returns the number of columns.
func (s Shape) Cols() int { return s.cols }

// IsZero reports whether s is the zero Shape (no grid at all).
func (s Shape) IsZero() bool { return s.rows == 0 }

// At reports whether cell (row, col) is occupied. Out of range is false.
func (s Shape) At(row, col int) bool {
	if row < 0 || row >= s.rows || col < 0 || col >= s.cols {
		return false
	}
	return s.cells[row*s.cols+col]
}

// Occupied returns the occupied cells in row-major order.
// The returned slice must not be modified.
func (s Shape) Occupied() []CellPos {
	return s.occupied
}

// Size returns the pixel width and height for the given cell size.
func (s Shape) Size(cell int) (w, h int) {
	return s.cols * cell, s.rows * cell
}

// Expand scales the shape so each cell becomes a factor x factor block.
func (s Shape) Expand(factor int) Shape {
	if factor <= 1 || s.IsZero() {
		return s
	}
	grid := make([][]bool, s.rows*factor)
	for r := range grid {
		grid[r] = make([]bool, s.cols*factor)
		for c := range grid[r] {
			grid[r][c] = s.At(r/factor, c/factor)
		}
	}
	return MustShape(grid)
}

// Grid returns a fresh copy of the occupancy matrix.
func (s Shape) Grid() [][]bool {
	grid := make([][]bool, s.rows)
	for r := range grid {
		grid[r] = make([]bool, s.cols)
		copy(grid[r], s.cells[r*s.cols:(r+1)*s.cols])
	}
	return grid
}

// Strings returns the shape as '#'/'.' rows, the inverse of ParseShape.
func (s Shape) Strings() []string {
	out := make([]string, s.rows)
	var sb strings.Builder
	for r := 0; r < s.rows; r++ {
		sb.Reset()
		for c := 0; c < s.cols; c++ {
			if s.At(r, c) {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
		out[r] = sb.String()
	}
	return out
}

// Equal reports whether two shapes have the same occupancy.
func (s Shape) Equal(other Shape) bool {
	if s.rows != other.rows || s.cols != other.cols {
		return false
	}
	for i := range s.cells {
		if s.cells[i] != other.cells[i] {
			return false
		}
	}
	return true
}

// NamedShape is a catalog entry.
type NamedShape struct {
	Name  string
	Shape Shape
}

func mustParse(rows ...string) Shape {
	s, err := ParseShape(rows)
	if err != nil {
		panic(err)
	}
	return s
}

// catalog holds the tile shapes in editor cycle order. One tile spans
// two collision cells, see Expand.
var catalog = []NamedShape{
	{"S_1x1", mustParse("#")},
	{"S_1x2", mustParse("##")},
	{"S_2x1", mustParse("#", "#")},
	{"S_2x2", mustParse("##", "##")},
	{"S_1x3", mustParse("###")},
	{"S_3x1", mustParse("#", "#", "#")},
	{"S_1x4", mustParse("####")},
	{"S_4x1", mustParse("#", "#", "#", "#")},
	{"S_3x3", mustParse("###", "###", "###")},
	{"L_TL", mustParse("##", "#.")},
	{"L_TR", mustParse("##", ".#")},
	{"L_BL", mustParse("#.", "##")},
	{"L_BR", mustParse(".#", "##")},
	{"L_BR3x3", mustParse(".#", ".#", "##")},
	{"L_TL3x3", mustParse("##", "#.", "#.")},
	{"L_TR3x3", mustParse("##", ".#", ".#")},
	{"L_BL3x3", mustParse("#.", "#.", "##")},
	{"CROSS", mustParse(".#.", "###", ".#.")},
	{"U_UP", mustParse("#.#", "###")},
	{"U_DOWN", mustParse("###", "#.#")},
}

// Catalog returns the tile shape catalog in editor cycle order.
func Catalog() []NamedShape {
	out := make([]NamedShape, len(catalog))
	copy(out, catalog)
	return out
}

// ShapeByName looks up a catalog shape (tile scale).
func ShapeByName(name string) (Shape, bool) {
	for _, ns := range catalog {
		if strings.EqualFold(ns.Name, name) {
			return ns.Shape, true
		}
	}
	return Shape{}, false
}

// NextCatalogShape returns the catalog entry after the one equal to s at
// the given expansion factor, or the first entry when s is not in the
// catalog.
func NextCatalogShape(s Shape, factor int) NamedShape {
	for i, ns := range catalog {
		if ns.Shape.Expand(factor).Equal(s) {
			next := catalog[(i+1)%len(catalog)]
			return NamedShape{Name: next.Name, Shape: next.Shape.Expand(factor)}
		}
	}
	return NamedShape{Name: catalog[0].Name, Shape: catalog[0].Shape.Expand(factor)}
}
