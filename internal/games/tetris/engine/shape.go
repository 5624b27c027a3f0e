package engine

import "strings"

// Shape is a binary occupancy matrix; 1 marks an occupied cell.
// Shapes may be rectangular (the I piece is 1x4 or 4x1).
type Shape [][]uint8

// Height returns the number of rows.
func (s Shape) Height() int {
	return len(s)
}

// Width returns the number of columns.
func (s Shape) Width() int {
	if len(s) == 0 {
		return 0
	}
	return len(s[0])
}

// CellCount returns the number of occupied cells.
func (s Shape) CellCount() int {
	n := 0
	for r := range s {
		for _, v := range s[r] {
			if v != 0 {
				n++
			}
		}
	}
	return n
}

// Clone returns a deep copy.
func (s Shape) Clone() Shape {
	c := make(Shape, len(s))
	for r := range s {
		c[r] = make([]uint8, len(s[r]))
		copy(c[r], s[r])
	}
	return c
}

// Equal reports whether both shapes have the same dimensions and cells.
func (s Shape) Equal(o Shape) bool {
	if s.Height() != o.Height() || s.Width() != o.Width() {
		return false
	}
	for r := range s {
		for c := range s[r] {
			if s[r][c] != o[r][c] {
				return false
			}
		}
	}
	return true
}

// String draws the shape with '#' for occupied and '.' for empty cells.
func (s Shape) String() string {
	var sb strings.Builder
	for r := range s {
		if r > 0 {
			sb.WriteByte('\n')
		}
		for _, v := range s[r] {
			if v != 0 {
				sb.WriteByte('#')
			} else {
				sb.WriteByte('.')
			}
		}
	}
	return sb.String()
}

// Rotate returns s turned 90 degrees clockwise: transpose, then reverse the
// order of the rows' elements. An h x w shape becomes w x h. Four rotations
// give back the original matrix.
func Rotate(s Shape) Shape {
	h, w := s.Height(), s.Width()
	out := make(Shape, w)
	for i := 0; i < w; i++ {
		out[i] = make([]uint8, h)
		for j := 0; j < h; j++ {
			out[i][j] = s[h-1-j][i]
		}
	}
	return out
}

// RotateN applies Rotate n times (n modulo 4).
func RotateN(s Shape, n int) Shape {
	n = ((n % 4) + 4) % 4
	out := s.Clone()
	for i := 0; i < n; i++ {
		out = Rotate(out)
	}
	return out
}
