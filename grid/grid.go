// Package grid turns a 0/1 black-and-white cell matrix into a graph of
// crossing word slots (a Layout of WordLayout nodes), and provides the
// random grid generator and the small 2-D affine matrix helper it uses for
// four-way rotational symmetry.
package grid

import "strings"

// Grid is a W×H matrix of 0 (white, a letter cell) or 1 (black, a block
// cell), addressed (x, y) with x the column and y the row. It is not
// immutable: Set writes a cell in place, and GenerateRandom builds its grid
// that way. BuildLayout and Layout only read the grid.
type Grid struct {
	width, height int
	data           []byte
}

// NewGrid returns a width×height grid with every cell white (0).
func NewGrid(width, height int) *Grid {
	return &Grid{width: width, height: height, data: make([]byte, width*height)}
}

// NewGridFromData returns a grid backed by a copy of data, row-major
// (data[y*width+x]).
func NewGridFromData(width, height int, data []byte) *Grid {
	g := &Grid{width: width, height: height, data: make([]byte, width*height)}
	copy(g.data, data)
	return g
}

// Size reports the grid's width and height.
func (g *Grid) Size() (width, height int) { return g.width, g.height }

func (g *Grid) index(x, y int) int { return y*g.width + x }

// Get returns the cell value at (x, y).
func (g *Grid) Get(x, y int) byte { return g.data[g.index(x, y)] }

// Set writes val into the cell at (x, y).
func (g *Grid) Set(x, y int, val byte) { g.data[g.index(x, y)] = val }

// OutOfRange reports whether (x, y) falls outside the grid's bounds.
func (g *Grid) OutOfRange(x, y int) bool {
	return x < 0 || x >= g.width || y < 0 || y >= g.height
}

// Data returns a copy of the grid's row-major byte data.
func (g *Grid) Data() []byte {
	out := make([]byte, len(g.data))
	copy(out, g.data)
	return out
}

// String renders the grid as whitespace-separated digits, one row per line.
func (g *Grid) String() string {
	var b strings.Builder
	for y := 0; y < g.height; y++ {
		for x := 0; x < g.width; x++ {
			if x > 0 {
				b.WriteByte(' ')
			}
			b.WriteByte('0' + g.data[g.index(x, y)])
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// PrettyString renders the grid using replace[0] for white and replace[1]
// for black cells, one row per line, with row 0 at the bottom (matching the
// original generator's pretty_log orientation).
func (g *Grid) PrettyString(replace [2]string) string {
	var b strings.Builder
	for y := g.height - 1; y >= 0; y-- {
		for x := 0; x < g.width; x++ {
			if x > 0 {
				b.WriteByte(' ')
			}
			b.WriteString(replace[g.data[g.index(x, y)]])
		}
		b.WriteByte('\n')
	}
	return b.String()
}

// Matrix is a 3×3 integer affine transform in row-major order, applied to
// homogeneous 2-D points (x, y, 1). It backs the random grid generator's
// four-way rotational symmetry; diagonal symmetry swaps x and y directly.
type Matrix [9]int

// Identity returns the identity transform.
func Identity() Matrix {
	return Matrix{
		1, 0, 0,
		0, 1, 0,
		0, 0, 1,
	}
}

// Translate returns the transform that adds (x, y) to a point.
func Translate(x, y int) Matrix {
	return Matrix{
		1, 0, x,
		0, 1, y,
		0, 0, 1,
	}
}

// Rotate90 is a 90° counter-clockwise rotation about the origin: (x,y) maps
// to (-y, x).
var Rotate90 = Matrix{
	0, -1, 0,
	1, 0, 0,
	0, 0, 1,
}

// Mul returns m × other, standard 3×3 matrix multiplication.
func (m Matrix) Mul(other Matrix) Matrix {
	var r Matrix
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			var sum int
			for k := 0; k < 3; k++ {
				sum += m[i*3+k] * other[k*3+j]
			}
			r[i*3+j] = sum
		}
	}
	return r
}

// Apply applies the transform to the homogeneous point (x, y, 1) and
// returns the resulting (x, y).
func (m Matrix) Apply(x, y int) (int, int) {
	rx := m[0]*x + m[1]*y + m[2]
	ry := m[3]*x + m[4]*y + m[5]
	return rx, ry
}
