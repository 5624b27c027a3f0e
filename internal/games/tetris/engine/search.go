package engine

// SearchOptions bounds the placement search.
type SearchOptions struct {
	// MinCol is the leftmost column offset tried. Negative offsets let
	// rotations whose left columns are empty reach the left wall.
	MinCol int
	// FallbackCol is returned when no placement is legal.
	FallbackCol int
}

// DefaultSearchOptions returns the canonical search bounds.
func DefaultSearchOptions() SearchOptions {
	return SearchOptions{MinCol: -2, FallbackCol: 0}
}

// Move is the outcome of a placement search: rotate Rotations times clockwise
// from the spawn orientation, then shift to Col and hard-drop to Row.
type Move struct {
	Col       int
	Rotations int
	Row       int
	Score     float64
	Lines     int
	Found     bool
}

// FindBestMove tries every rotation (0..3) and column offset, hard-drops the
// piece, locks it into a copy of b, clears lines and scores the result with w.
// Rotations are the outer loop and columns the inner one; only a strictly
// greater score replaces the incumbent, so ties keep the earliest candidate.
// The input board is never modified.
func FindBestMove(b Board, s Shape, cell Cell, w Weights, opts SearchOptions) Move {
	best := Move{Col: opts.FallbackCol, Score: negInf}
	shape := s.Clone()

	for rot := 0; rot < 4; rot++ {
		if rot > 0 {
			shape = Rotate(shape)
		}
		for col := opts.MinCol; col < b.Cols(); col++ {
			if !CanPlace(b, shape, 0, col) {
				continue
			}
			row := DropRow(b, shape, 0, col)
			locked := LockInto(b, shape, row, col, cell)
			cleared, lines := ClearFullLines(locked)
			score := w.Evaluate(cleared, lines)
			if score > best.Score {
				best = Move{Col: col, Rotations: rot, Row: row, Score: score, Lines: lines, Found: true}
			}
		}
	}

	if !best.Found {
		return Move{Col: opts.FallbackCol}
	}
	return best
}
