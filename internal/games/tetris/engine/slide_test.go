package engine

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestSmartSlideFindsDeeperColumn(t *testing.T) {
	b := parseBoard(
		"......",
		"......",
		"......",
		"......",
		"###...",
		"###...",
	)
	p := Piece{Kind: KindO, Shape: KindO.Template(), Row: 2, Col: 0}

	got, ok := SmartSlide(b, p, DefaultWeights(), DefaultSlideConfig())
	if !ok {
		t.Fatal("SmartSlide found nothing")
	}
	if got.Col != 3 || got.Fall != 2 {
		t.Errorf("slide = col %d fall %d, want col 3 fall 2", got.Col, got.Fall)
	}
	if got.Holes != 0 {
		t.Errorf("slide holes = %d, want 0", got.Holes)
	}
}

func TestSmartSlideRejections(t *testing.T) {
	tests := []struct {
		name  string
		board Board
		piece Piece
		cfg   SlideConfig
	}{
		{
			name:  "piece can still fall",
			board: NewBoard(6, 6),
			piece: Piece{Kind: KindO, Shape: KindO.Template(), Row: 0, Col: 0},
			cfg:   DefaultSlideConfig(),
		},
		{
			name: "candidate adds a hole",
			board: parseBoard(
				"....",
				"....",
				"....",
				"....",
				"##..",
				"###.",
			),
			piece: Piece{Kind: KindO, Shape: KindO.Template(), Row: 2, Col: 0},
			cfg:   DefaultSlideConfig(),
		},
		{
			name: "path blocked",
			board: parseBoard(
				"......",
				"......",
				"..#...",
				"..#...",
				"###...",
				"###...",
			),
			piece: Piece{Kind: KindO, Shape: KindO.Template(), Row: 2, Col: 0},
			cfg:   DefaultSlideConfig(),
		},
		{
			name: "out of range",
			board: parseBoard(
				"......",
				"......",
				"......",
				"......",
				"###...",
				"###...",
			),
			piece: Piece{Kind: KindO, Shape: KindO.Template(), Row: 2, Col: 0},
			cfg:   SlideConfig{Range: 2, FallWeight: 2, LineWeight: 50},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := tt.board.Clone()
			if s, ok := SmartSlide(tt.board, tt.piece, DefaultWeights(), tt.cfg); ok {
				t.Errorf("SmartSlide accepted %+v", s)
			}
			if diff := cmp.Diff(before, tt.board); diff != "" {
				t.Errorf("board mutated (-before +after):\n%s", diff)
			}
		})
	}
}

func TestSmartSlidePrefersLineClear(t *testing.T) {
	b := parseBoard(
		"......",
		"......",
		"......",
		"......",
		"##....",
		"##.###",
	)
	// Vertical I resting on the left stack. Column 2 completes the bottom row.
	p := Piece{Kind: KindI, Shape: Rotate(KindI.Template()), Row: 0, Col: 1}

	got, ok := SmartSlide(b, p, DefaultWeights(), DefaultSlideConfig())
	if !ok {
		t.Fatal("SmartSlide found nothing")
	}
	if got.Col != 2 || got.Lines != 1 {
		t.Errorf("slide = col %d lines %d, want col 2 lines 1", got.Col, got.Lines)
	}
}
