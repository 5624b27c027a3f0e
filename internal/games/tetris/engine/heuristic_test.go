package engine

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func approxEqual(a, b float64) bool {
	return math.Abs(a-b) < 1e-9
}

func TestMetrics(t *testing.T) {
	b := parseBoard(
		"....",
		".#..",
		".#..",
		"#..#",
		"##.#",
	)

	if diff := cmp.Diff([]int{2, 4, 0, 2}, ColumnHeights(b)); diff != "" {
		t.Errorf("ColumnHeights mismatch (-want +got):\n%s", diff)
	}
	tests := []struct {
		name string
		got  int
		want int
	}{
		{"AggregateHeight", AggregateHeight(b), 8},
		{"MaxHeight", MaxHeight(b), 4},
		{"Holes", Holes(b), 1},
		{"Bumpiness", Bumpiness(b), 8},
		{"WellDepth", WellDepth(b), 4},
		{"Blockades", Blockades(b), 1},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %d, want %d", tt.name, tt.got, tt.want)
		}
	}

	got := DefaultWeights().Evaluate(b, 0)
	want := -0.7*8 - 7*1 - 1.5*8 - 1.2*4 - 2*1
	if !approxEqual(got, want) {
		t.Errorf("Evaluate = %v, want %v", got, want)
	}
}

func TestWellDepthGrowsWithDepth(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		want int
	}{
		{"three deep at the wall", []string{"....", ".###", ".###", ".###"}, 6},
		{"interior well", []string{"....", "#.##", "#.##"}, 3},
		{"covered gap counts from the gap down", []string{"####", "#.##", "#.##"}, 3},
		{"open on one side", []string{"....", "..##", "..##"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := WellDepth(parseBoard(tt.rows...)); got != tt.want {
				t.Errorf("WellDepth = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestBlockadesCountOnlyCellsDirectlyAboveHoles(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		want int
	}{
		{"tall stack over one hole", []string{"#.", "#.", "#.", ".#"}, 1},
		{"two separate holes", []string{"#.", ".#", "#.", ".#"}, 3},
		{"no holes", []string{"..", "#.", "##"}, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Blockades(parseBoard(tt.rows...)); got != tt.want {
				t.Errorf("Blockades = %d, want %d", got, tt.want)
			}
		})
	}
}

func TestEmptyBoardMetrics(t *testing.T) {
	b := NewBoard(DefaultRows, DefaultCols)
	if AggregateHeight(b)+Holes(b)+Bumpiness(b)+WellDepth(b)+Blockades(b) != 0 {
		t.Error("empty board should have all-zero metrics")
	}
	if IsTetrisSetup(b, 4) {
		t.Error("empty board is not a tetris setup")
	}
	if got := DefaultWeights().Evaluate(b, 0); got != 0 {
		t.Errorf("Evaluate(empty) = %v, want 0", got)
	}
}

func TestEvaluateLineBonuses(t *testing.T) {
	w := DefaultWeights()
	empty := NewBoard(DefaultRows, DefaultCols)

	tests := []struct {
		lines int
		want  float64
	}{
		{0, 0},
		{1, -400},
		{2, -400},
		{3, -400},
		{4, 3000},
	}
	for _, tt := range tests {
		if got := w.Evaluate(empty, tt.lines); !approxEqual(got, tt.want) {
			t.Errorf("Evaluate(empty, %d) = %v, want %v", tt.lines, got, tt.want)
		}
	}
}

func TestEvaluateSurvivalMode(t *testing.T) {
	w := DefaultWeights()
	// Column 0 is eight cells tall, above the survival threshold.
	rows := make([]string, DefaultRows)
	for r := range rows {
		rows[r] = ".........."
		if r >= DefaultRows-8 {
			rows[r] = "#........."
		}
	}
	b := parseBoard(rows...)
	base := w.Evaluate(b, 0)

	for lines := 1; lines <= 4; lines++ {
		got := w.Evaluate(b, lines) - base
		if want := 200 * float64(lines); !approxEqual(got, want) {
			t.Errorf("survival bonus for %d lines = %v, want %v", lines, got, want)
		}
	}
}

func TestIsTetrisSetup(t *testing.T) {
	tests := []struct {
		name string
		rows []string
		want bool
	}{
		{
			name: "left well four deep",
			rows: []string{"..........", ".#########", ".#########", ".#########", ".#########"},
			want: true,
		},
		{
			name: "right well four deep",
			rows: []string{"..........", "#########.", "#########.", "#########.", "#########."},
			want: true,
		},
		{
			name: "only three deep",
			rows: []string{"..........", "..........", ".#########", ".#########", ".#########"},
		},
		{
			name: "interior well does not count",
			rows: []string{"..........", "####.#####", "####.#####", "####.#####", "####.#####"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsTetrisSetup(parseBoard(tt.rows...), 4); got != tt.want {
				t.Errorf("IsTetrisSetup = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSetupBonusApplied(t *testing.T) {
	w := DefaultWeights()
	b := parseBoard("..........", ".#########", ".#########", ".#########", ".#########")
	withBonus := w.Evaluate(b, 0)
	w.SetupBonus = 0
	if got := withBonus - w.Evaluate(b, 0); !approxEqual(got, 800) {
		t.Errorf("setup bonus = %v, want 800", got)
	}
}

func TestEvaluateIsPure(t *testing.T) {
	w := DefaultWeights()
	b := parseBoard(
		"......",
		"..#...",
		"#.##.#",
		"##.###",
	)
	before := b.Clone()
	first := w.Evaluate(b, 1)
	second := w.Evaluate(b, 1)
	if first != second {
		t.Errorf("Evaluate not repeatable: %v then %v", first, second)
	}
	if diff := cmp.Diff(before, b); diff != "" {
		t.Errorf("Evaluate mutated board (-before +after):\n%s", diff)
	}
}
