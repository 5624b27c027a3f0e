// Package engine implements the falling-block placement engine: grid physics,
// the board heuristic, the placement search used by the autonomous player and
// the piece/board state machine that ties them together.
//
// The package has no I/O and no dependency on the terminal platform. Hosts
// drive it with Tick and observe it through queries and Hooks.
package engine

// Cell is one board cell. Empty cells are zero; filled cells hold the Kind of
// the piece that was locked there, which renderers use as a color marker.
type Cell uint8

// Empty is the zero cell.
const Empty Cell = 0

// Canonical board dimensions.
const (
	DefaultRows = 20
	DefaultCols = 10
)

// Board is a fixed-size grid of cells indexed as b[row][col], row 0 at the top.
type Board [][]Cell

// NewBoard allocates an empty rows x cols board.
func NewBoard(rows, cols int) Board {
	b := make(Board, rows)
	for r := range b {
		b[r] = make([]Cell, cols)
	}
	return b
}

// Rows returns the number of rows.
func (b Board) Rows() int {
	return len(b)
}

// Cols returns the number of columns.
func (b Board) Cols() int {
	if len(b) == 0 {
		return 0
	}
	return len(b[0])
}

// Clone returns a deep copy. The copy never aliases the receiver's rows.
func (b Board) Clone() Board {
	c := make(Board, len(b))
	for r := range b {
		c[r] = make([]Cell, len(b[r]))
		copy(c[r], b[r])
	}
	return c
}

// InBounds reports whether (row, col) lies on the board.
func (b Board) InBounds(row, col int) bool {
	return row >= 0 && row < b.Rows() && col >= 0 && col < b.Cols()
}

// Filled reports whether the cell at (row, col) is occupied.
// Out-of-bounds positions count as filled.
func (b Board) Filled(row, col int) bool {
	if !b.InBounds(row, col) {
		return true
	}
	return b[row][col] != Empty
}

// RowFull reports whether every cell of the row is occupied.
func (b Board) RowFull(row int) bool {
	for _, c := range b[row] {
		if c == Empty {
			return false
		}
	}
	return true
}

// FilledCount returns the number of occupied cells.
func (b Board) FilledCount() int {
	n := 0
	for r := range b {
		for _, c := range b[r] {
			if c != Empty {
				n++
			}
		}
	}
	return n
}

// CanPlace reports whether every occupied cell of s, offset by (row, col),
// lands in bounds on an empty board cell. An empty shape always fits.
func CanPlace(b Board, s Shape, row, col int) bool {
	for r := range s {
		for c, v := range s[r] {
			if v == 0 {
				continue
			}
			nr, nc := row+r, col+c
			if !b.InBounds(nr, nc) || b[nr][nc] != Empty {
				return false
			}
		}
	}
	return true
}

// LockInto returns a copy of b with every occupied cell of s written as cell
// at offset (row, col). Lines are not cleared. Cells that fall outside the
// board are skipped; callers are expected to check CanPlace first.
func LockInto(b Board, s Shape, row, col int, cell Cell) Board {
	out := b.Clone()
	for r := range s {
		for c, v := range s[r] {
			if v == 0 {
				continue
			}
			nr, nc := row+r, col+c
			if out.InBounds(nr, nc) {
				out[nr][nc] = cell
			}
		}
	}
	return out
}

// ClearFullLines removes every full row from a copy of b, inserting empty rows
// at the top so the remaining rows keep their relative order. It returns the
// compacted board and the number of rows removed.
func ClearFullLines(b Board) (Board, int) {
	out := b.Clone()
	cols := out.Cols()
	cleared := 0
	if cols == 0 {
		return out, 0
	}

	// Scan bottom-up. After a splice the row above slides into index r, so the
	// same index is checked again.
	for r := out.Rows() - 1; r >= 0; {
		if !out.RowFull(r) {
			r--
			continue
		}
		copy(out[1:r+1], out[0:r])
		out[0] = make([]Cell, cols)
		cleared++
	}
	return out, cleared
}

// DropRow returns the resting row for s when hard-dropped from (row, col).
// The caller must ensure the shape fits at the starting position.
func DropRow(b Board, s Shape, row, col int) int {
	for CanPlace(b, s, row+1, col) {
		row++
	}
	return row
}
