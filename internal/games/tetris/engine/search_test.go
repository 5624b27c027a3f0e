package engine

import (
	"math/rand"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFindBestMoveEmptyBoardInBounds(t *testing.T) {
	b := NewBoard(DefaultRows, DefaultCols)
	w := DefaultWeights()
	for _, k := range Kinds {
		mv := FindBestMove(b, k.Template(), k.Cell(), w, DefaultSearchOptions())
		if !mv.Found {
			t.Fatalf("%s: no move found on empty board", k)
		}
		s := RotateN(k.Template(), mv.Rotations)
		if mv.Col < 0 || mv.Col+s.Width() > b.Cols() {
			t.Errorf("%s: col %d out of range for width %d", k, mv.Col, s.Width())
		}
		if mv.Rotations < 0 || mv.Rotations > 3 {
			t.Errorf("%s: rotations = %d", k, mv.Rotations)
		}
		if !CanPlace(b, s, mv.Row, mv.Col) {
			t.Errorf("%s: CanPlace at returned (%d, %d) = false", k, mv.Row, mv.Col)
		}
		if mv.Row != DropRow(b, s, 0, mv.Col) {
			t.Errorf("%s: row %d is not the resting row", k, mv.Row)
		}
	}
}

func TestFindBestMoveTakesTetris(t *testing.T) {
	b := NewBoard(DefaultRows, DefaultCols)
	for r := DefaultRows - 4; r < DefaultRows; r++ {
		for c := 1; c < DefaultCols; c++ {
			b[r][c] = KindJ.Cell()
		}
	}
	mv := FindBestMove(b, KindI.Template(), KindI.Cell(), DefaultWeights(), DefaultSearchOptions())
	want := Move{Col: 0, Rotations: 1, Row: DefaultRows - 4, Score: 3000, Lines: 4, Found: true}
	if diff := cmp.Diff(want, mv); diff != "" {
		t.Errorf("FindBestMove mismatch (-want +got):\n%s", diff)
	}
}

func TestFindBestMoveIsOptimal(t *testing.T) {
	rng := rand.New(rand.NewSource(612))
	w := DefaultWeights()

	for trial := 0; trial < 25; trial++ {
		b := randomBoard(rng, DefaultRows, DefaultCols, 6)
		before := b.Clone()
		k := RandomKind(rng)

		mv := FindBestMove(b, k.Template(), k.Cell(), w, DefaultSearchOptions())
		if diff := cmp.Diff(before, b); diff != "" {
			t.Fatalf("trial %d: search mutated board", trial)
		}
		if !mv.Found {
			continue
		}

		shape := k.Template()
		for rot := 0; rot < 4; rot++ {
			for col := -2; col < b.Cols(); col++ {
				if !CanPlace(b, shape, 0, col) {
					continue
				}
				row := DropRow(b, shape, 0, col)
				cleared, lines := ClearFullLines(LockInto(b, shape, row, col, k.Cell()))
				if score := w.Evaluate(cleared, lines); score > mv.Score {
					t.Errorf("trial %d %s: rot %d col %d scores %v > chosen %v",
						trial, k, rot, col, score, mv.Score)
				}
			}
			shape = Rotate(shape)
		}
	}
}

func TestFindBestMoveFallback(t *testing.T) {
	b := NewBoard(4, 4)
	for r := range b {
		for c := range b[r] {
			b[r][c] = KindS.Cell()
		}
	}
	mv := FindBestMove(b, KindT.Template(), KindT.Cell(), DefaultWeights(), SearchOptions{MinCol: -2, FallbackCol: 3})
	if diff := cmp.Diff(Move{Col: 3}, mv); diff != "" {
		t.Errorf("fallback mismatch (-want +got):\n%s", diff)
	}
}

func TestFindBestMoveTiesKeepFirst(t *testing.T) {
	// On an empty board the O piece scores identically at both walls and in
	// every rotation; the earliest candidate must win.
	b := NewBoard(4, 4)
	w := Weights{}
	mv := FindBestMove(b, KindO.Template(), KindO.Cell(), w, DefaultSearchOptions())
	if mv.Col != 0 || mv.Rotations != 0 {
		t.Errorf("tie winner = col %d rot %d, want col 0 rot 0", mv.Col, mv.Rotations)
	}
}

// randomBoard fills the bottom maxHeight rows with random cells and leaves
// one random gap per row so no row starts full.
func randomBoard(rng *rand.Rand, rows, cols, maxHeight int) Board {
	b := NewBoard(rows, cols)
	for r := rows - maxHeight; r < rows; r++ {
		for c := 0; c < cols; c++ {
			if rng.Intn(3) > 0 {
				b[r][c] = KindL.Cell()
			}
		}
		b[r][rng.Intn(cols)] = Empty
	}
	return b
}
