package formats

import (
	"bufio"
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/vovakirdan/blockout/internal/games/blockout/core"
)

// The text format stores one object per line:
//
//	GATE x y w h r g b side
//	BLOCK x y w h r g b AXIS rows cols c0 c1 ...
//
// Colors are theme RGB triples and cells are 0/1 in row-major order.
// Wall-colored blocks are walls. Blank lines and lines starting with '#'
// are ignored.

// ParseText parses the line-based level format.
func ParseText(data []byte) (Level, error) {
	var level Level

	sc := bufio.NewScanner(bytes.NewReader(data))
	sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNo := 0
	for sc.Scan() {
		lineNo++
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		fields := strings.Fields(line)
		var err error
		switch fields[0] {
		case "GATE":
			var g core.Gate
			g, err = parseGate(fields[1:])
			if err == nil {
				level.Gates = append(level.Gates, g)
			}
		case "BLOCK":
			var p core.Piece
			p, err = parseBlock(fields[1:])
			if err == nil {
				level.Pieces = append(level.Pieces, p)
			}
		default:
			err = fmt.Errorf("unknown record %q", fields[0])
		}
		if err != nil {
			return Level{}, fmt.Errorf("line %d: %w", lineNo, err)
		}
	}
	if err := sc.Err(); err != nil {
		return Level{}, fmt.Errorf("reading text level: %w", err)
	}
	return level, nil
}

func atoiAll(fields []string) ([]int, error) {
	out := make([]int, len(fields))
	for i, f := range fields {
		v, err := strconv.Atoi(f)
		if err != nil {
			return nil, fmt.Errorf("field %d: %w", i+1, err)
		}
		out[i] = v
	}
	return out, nil
}

func parseColor(r, g, b int) (core.Color, error) {
	if r < 0 || r > 255 || g < 0 || g > 255 || b < 0 || b > 255 {
		return core.ColorRed, fmt.Errorf("color component out of range: %d %d %d", r, g, b)
	}
	return core.ColorFromRGB(uint8(r), uint8(g), uint8(b))
}

func parseGate(fields []string) (core.Gate, error) {
	if len(fields) != 8 {
		return core.Gate{}, fmt.Errorf("GATE needs 8 fields, got %d", len(fields))
	}
	v, err := atoiAll(fields)
	if err != nil {
		return core.Gate{}, err
	}
	color, err := parseColor(v[4], v[5], v[6])
	if err != nil {
		return core.Gate{}, err
	}
	if v[7] < int(core.SideTop) || v[7] > int(core.SideLeft) {
		return core.Gate{}, fmt.Errorf("unknown side %d", v[7])
	}
	return *core.NewGate(v[0], v[1], v[2], v[3], color, core.Side(v[7])), nil
}

func parseBlock(fields []string) (core.Piece, error) {
	if len(fields) < 10 {
		return core.Piece{}, fmt.Errorf("BLOCK needs at least 10 fields, got %d", len(fields))
	}
	head, err := atoiAll(fields[:7])
	if err != nil {
		return core.Piece{}, err
	}
	color, err := parseColor(head[4], head[5], head[6])
	if err != nil {
		return core.Piece{}, err
	}
	axis, ok := core.ParseAxis(fields[7])
	if !ok {
		return core.Piece{}, fmt.Errorf("unknown axis %q", fields[7])
	}
	dims, err := atoiAll(fields[8:10])
	if err != nil {
		return core.Piece{}, err
	}
	rows, cols := dims[0], dims[1]
	if rows <= 0 || cols <= 0 {
		return core.Piece{}, core.ErrEmptyShape
	}
	if rows > MaxShapeCells || cols > MaxShapeCells {
		return core.Piece{}, fmt.Errorf("shape %dx%d too large, max %d per side", rows, cols, MaxShapeCells)
	}
	cells := fields[10:]
	if len(cells) != rows*cols {
		return core.Piece{}, fmt.Errorf("%w: expected %d cells, got %d", core.ErrRaggedShape, rows*cols, len(cells))
	}

	grid := make([][]bool, rows)
	for r := range grid {
		grid[r] = make([]bool, cols)
		for c := range grid[r] {
			switch cells[r*cols+c] {
			case "0":
			case "1":
				grid[r][c] = true
			default:
				return core.Piece{}, fmt.Errorf("invalid cell %q", cells[r*cols+c])
			}
		}
	}
	shape, err := core.NewShape(grid)
	if err != nil {
		return core.Piece{}, err
	}

	return core.Piece{
		X:     head[0],
		Y:     head[1],
		W:     head[2],
		H:     head[3],
		Shape: shape,
		Color: color,
		Axis:  axis,
	}, nil
}

// EncodeText writes a snapshot in the line-based format, gates first.
func EncodeText(s core.Snapshot) []byte {
	var buf bytes.Buffer
	for _, g := range s.Gates() {
		r, gr, b := g.Color.RGB()
		fmt.Fprintf(&buf, "GATE %d %d %d %d %d %d %d %d\n", g.X, g.Y, g.W, g.H, r, gr, b, g.Side)
	}
	for _, p := range s.Pieces() {
		r, g, b := p.Color.RGB()
		fmt.Fprintf(&buf, "BLOCK %d %d %d %d %d %d %d %s %d %d",
			p.X, p.Y, p.W, p.H, r, g, b, p.Axis, p.Shape.Rows(), p.Shape.Cols())
		for row := 0; row < p.Shape.Rows(); row++ {
			for col := 0; col < p.Shape.Cols(); col++ {
				if p.Shape.At(row, col) {
					buf.WriteString(" 1")
				} else {
					buf.WriteString(" 0")
				}
			}
		}
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}
