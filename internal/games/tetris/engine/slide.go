package engine

// SlideConfig tunes the last-moment lateral relocation of a grounded piece.
type SlideConfig struct {
	// Range is how many columns either side are considered.
	Range int
	// FallWeight rewards each extra row the piece falls after sliding.
	FallWeight float64
	// LineWeight rewards each line the resulting lock clears.
	LineWeight float64
	// Manual enables slides for human-controlled pieces too.
	Manual bool
}

// DefaultSlideConfig returns the canonical slide tuning.
func DefaultSlideConfig() SlideConfig {
	return SlideConfig{Range: 3, FallWeight: 2, LineWeight: 50}
}

// Slide is an accepted relocation: move to Col on the current row, after which
// the piece can fall Fall more rows.
type Slide struct {
	Col       int
	Fall      int
	Lines     int
	Holes     int
	Bumpiness int
	Score     float64
}

// SmartSlide looks for a nearby column the grounded piece p can slide into and
// fall further from. The lateral path must be free on p's current row, the
// piece must fall at least one row, and the resulting lock may not leave more
// holes than locking in place would. Candidates are ranked by
//
//	FallWeight*fall + LineWeight*lines - w.Holes*holes - w.Bumpiness*bumpiness
//
// and only a strictly better score replaces the incumbent. It returns false
// when p can still descend or no candidate qualifies.
func SmartSlide(b Board, p Piece, w Weights, cfg SlideConfig) (Slide, bool) {
	if !p.Fits(b) || CanPlace(b, p.Shape, p.Row+1, p.Col) || cfg.Range <= 0 {
		return Slide{}, false
	}

	inPlace, _ := ClearFullLines(LockInto(b, p.Shape, p.Row, p.Col, p.Kind.Cell()))
	baseHoles := Holes(inPlace)

	reach := min(cfg.Range, b.Cols())
	best := Slide{Score: negInf}
	found := false

	for dc := -reach; dc <= reach; dc++ {
		if dc == 0 || !lateralPathFree(b, p, dc) {
			continue
		}
		col := p.Col + dc
		rest := DropRow(b, p.Shape, p.Row, col)
		fall := rest - p.Row
		if fall <= 0 {
			continue
		}
		locked, lines := ClearFullLines(LockInto(b, p.Shape, rest, col, p.Kind.Cell()))
		holes := Holes(locked)
		if holes > baseHoles {
			continue
		}
		bump := Bumpiness(locked)
		score := cfg.FallWeight*float64(fall) +
			cfg.LineWeight*float64(lines) -
			w.Holes*float64(holes) -
			w.Bumpiness*float64(bump)
		if score > best.Score {
			best = Slide{Col: col, Fall: fall, Lines: lines, Holes: holes, Bumpiness: bump, Score: score}
			found = true
		}
	}
	return best, found
}

// lateralPathFree reports whether p can shift one column at a time by dc
// without leaving its row.
func lateralPathFree(b Board, p Piece, dc int) bool {
	step := 1
	if dc < 0 {
		step = -1
	}
	for c := p.Col + step; ; c += step {
		if !CanPlace(b, p.Shape, p.Row, c) {
			return false
		}
		if c == p.Col+dc {
			return true
		}
	}
}
