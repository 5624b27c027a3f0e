package engine

import "math"

// Weights holds the coefficients and thresholds of the board evaluator.
// Penalty weights are stored as positive magnitudes and subtracted.
type Weights struct {
	AggregateHeight float64
	Holes           float64
	Bumpiness       float64
	WellDepth       float64
	Blockades       float64

	// SurvivalHeight is the max column height above which any clear is
	// rewarded flatly with SurvivalLineBonus per line.
	SurvivalHeight    int
	SurvivalLineBonus float64

	TetrisBonus      float64
	NonTetrisPenalty float64
	SetupBonus       float64
	SetupDepth       int
}

// DefaultWeights returns the canonical evaluator tuning.
func DefaultWeights() Weights {
	return Weights{
		AggregateHeight:   0.7,
		Holes:             7,
		Bumpiness:         1.5,
		WellDepth:         1.2,
		Blockades:         2,
		SurvivalHeight:    7,
		SurvivalLineBonus: 200,
		TetrisBonus:       3000,
		NonTetrisPenalty:  400,
		SetupBonus:        800,
		SetupDepth:        4,
	}
}

// Evaluate scores a board that has already had its full lines removed.
// linesCleared is the number of lines the placement removed. Higher is better.
func (w Weights) Evaluate(b Board, linesCleared int) float64 {
	heights := ColumnHeights(b)

	score := -w.AggregateHeight*float64(sum(heights)) -
		w.Holes*float64(Holes(b)) -
		w.Bumpiness*float64(bumpiness(heights)) -
		w.WellDepth*float64(WellDepth(b)) -
		w.Blockades*float64(Blockades(b))

	if maxOf(heights) > w.SurvivalHeight {
		return score + w.SurvivalLineBonus*float64(linesCleared)
	}

	switch {
	case linesCleared == 4:
		score += w.TetrisBonus
	case linesCleared > 0:
		score -= w.NonTetrisPenalty
	}
	if IsTetrisSetup(b, w.SetupDepth) {
		score += w.SetupBonus
	}
	return score
}

// ColumnHeights returns, per column, the distance from the bottom of the board
// to the top of the highest filled cell. Empty columns have height 0.
func ColumnHeights(b Board) []int {
	rows, cols := b.Rows(), b.Cols()
	h := make([]int, cols)
	for c := 0; c < cols; c++ {
		for r := 0; r < rows; r++ {
			if b[r][c] != Empty {
				h[c] = rows - r
				break
			}
		}
	}
	return h
}

// AggregateHeight is the sum of all column heights.
func AggregateHeight(b Board) int {
	return sum(ColumnHeights(b))
}

// MaxHeight is the tallest column height.
func MaxHeight(b Board) int {
	return maxOf(ColumnHeights(b))
}

// Holes counts empty cells with at least one filled cell above them in the
// same column.
func Holes(b Board) int {
	holes := 0
	for c := 0; c < b.Cols(); c++ {
		covered := false
		for r := 0; r < b.Rows(); r++ {
			if b[r][c] != Empty {
				covered = true
			} else if covered {
				holes++
			}
		}
	}
	return holes
}

// Bumpiness sums the absolute height differences of adjacent columns.
func Bumpiness(b Board) int {
	return bumpiness(ColumnHeights(b))
}

// WellDepth sums, over every empty cell whose left and right neighbours are
// filled or walls, the run of empty cells from that cell down. A well three
// cells deep against a wall adds 3+2+1.
func WellDepth(b Board) int {
	rows, cols := b.Rows(), b.Cols()
	total := 0
	for c := 0; c < cols; c++ {
		for r := 0; r < rows; r++ {
			if b[r][c] != Empty || !b.Filled(r, c-1) || !b.Filled(r, c+1) {
				continue
			}
			d := 1
			for rr := r + 1; rr < rows && b[rr][c] == Empty; rr++ {
				d++
			}
			total += d
		}
	}
	return total
}

// Blockades counts filled cells directly above a hole in their column.
func Blockades(b Board) int {
	blocks := 0
	for c := 0; c < b.Cols(); c++ {
		for r := 0; r+1 < b.Rows(); r++ {
			if b[r][c] != Empty && b[r+1][c] == Empty {
				blocks++
			}
		}
	}
	return blocks
}

// IsTetrisSetup reports whether either wall column holds an open well at least
// depth rows deep, measured from the bottom while the wall column is empty and
// its inner neighbour is filled.
func IsTetrisSetup(b Board, depth int) bool {
	cols := b.Cols()
	if cols < 2 || depth <= 0 {
		return false
	}
	for _, side := range [2][2]int{{0, 1}, {cols - 1, cols - 2}} {
		well, inner := side[0], side[1]
		d := 0
		for r := b.Rows() - 1; r >= 0; r-- {
			if b[r][well] != Empty || b[r][inner] == Empty {
				break
			}
			d++
		}
		if d >= depth {
			return true
		}
	}
	return false
}

func sum(xs []int) int {
	t := 0
	for _, x := range xs {
		t += x
	}
	return t
}

func maxOf(xs []int) int {
	m := 0
	for _, x := range xs {
		m = max(m, x)
	}
	return m
}

func bumpiness(heights []int) int {
	s := 0
	for i := 0; i+1 < len(heights); i++ {
		s += absInt(heights[i] - heights[i+1])
	}
	return s
}

func absInt(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// negInf seeds maximisation loops.
var negInf = math.Inf(-1)
