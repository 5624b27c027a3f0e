package tetris

import (
	"fmt"
	"time"
	"unicode/utf8"

	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
)

const (
	cellWidth = 2  // terminal columns per board cell
	hudWidth  = 20 // side panel width including the gap
)

var kindColors = map[engine.Kind]core.Color{
	engine.KindI: core.ColorCyan,
	engine.KindO: core.ColorYellow,
	engine.KindT: core.ColorMagenta,
	engine.KindJ: core.ColorBlue,
	engine.KindL: core.ColorOrange,
	engine.KindS: core.ColorGreen,
	engine.KindZ: core.ColorRed,
}

// KindColor returns the color a kind is drawn in.
func KindColor(k engine.Kind) core.Color {
	if c, ok := kindColors[k]; ok {
		return c
	}
	return core.ColorGray
}

// Render draws the game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.tooSmall {
		g.renderTooSmall(dst)
		return
	}

	snap := g.eng.Snapshot()
	rows, cols := snap.Board.Rows(), snap.Board.Cols()
	boardW := cols*cellWidth + 2
	boardH := rows + 2

	originX := (g.screenW - boardW - hudWidth) / 2
	originY := (g.screenH - boardH) / 2
	board := core.NewRect(originX, originY, boardW, boardH)

	dst.DrawBox(board, core.ColorGray)
	g.renderCells(dst, board, snap)
	g.renderHUD(dst, board.Right()+2, board.Y, snap)
	g.renderOverlays(dst, board)

	if board.Bottom() < g.screenH-1 {
		dst.DrawTextCentered(g.screenH-1, g.Controls(), core.ColorDim)
	}
}

func (g *Game) renderTooSmall(dst *core.Screen) {
	y := g.screenH / 2
	dst.DrawTextCentered(y, "Window too small", core.ColorDefault)
	dst.DrawTextCentered(y+1, "Please resize terminal", core.ColorDim)
}

func (g *Game) renderCells(dst *core.Screen, board core.Rect, snap engine.Snapshot) {
	inner := board.Inset(1)
	put := func(row, col int, r rune, c core.Color) {
		x := inner.X + col*cellWidth
		for i := range cellWidth {
			dst.SetColor(x+i, inner.Y+row, r, c)
		}
	}

	for r, line := range snap.Board {
		for c, cell := range line {
			if cell == engine.Empty {
				continue
			}
			put(r, c, '█', KindColor(engine.Kind(cell)))
		}
	}

	if !snap.HasCurrent {
		return
	}
	p := snap.Current
	if snap.GhostRow > p.Row {
		eachCell(p.Shape, snap.GhostRow, p.Col, func(r, c int) {
			put(r, c, '░', core.ColorDim)
		})
	}
	eachCell(p.Shape, p.Row, p.Col, func(r, c int) {
		put(r, c, '█', KindColor(p.Kind))
	})
}

// eachCell calls fn with the board coordinates of every filled cell of s
// placed at (row, col).
func eachCell(s engine.Shape, row, col int, fn func(r, c int)) {
	for i, line := range s {
		for j, v := range line {
			if v != 0 {
				fn(row+i, col+j)
			}
		}
	}
}

func (g *Game) renderHUD(dst *core.Screen, x, y int, snap engine.Snapshot) {
	dst.DrawTextColor(x, y, g.Title(), core.ColorBrightWhite)

	lines := []string{
		fmt.Sprintf("Score    %d", snap.Score),
		fmt.Sprintf("Lines    %d", snap.Lines),
		fmt.Sprintf("Tetrises %d", snap.Tetrises),
		fmt.Sprintf("Pieces   %d", snap.Pieces),
		fmt.Sprintf("Speed    %s", snap.Speed),
		fmt.Sprintf("Mult     x%.2f", snap.Multiplier),
	}
	for i, l := range lines {
		dst.DrawText(x, y+2+i, l)
	}

	row := y + 2 + len(lines) + 1
	if snap.Automated {
		dst.DrawTextColor(x, row, "AUTO", core.ColorBrightYellow)
		if snap.HasTarget {
			dst.DrawTextColor(x+5, row, fmt.Sprintf("-> col %d r%d", snap.Target.Col, snap.Target.Rotations), core.ColorDim)
		}
	} else {
		dst.DrawTextColor(x, row, "MANUAL", core.ColorDim)
	}

	row += 2
	dst.DrawText(x, row, "Next")
	if snap.Next != engine.KindNone {
		eachCell(snap.Next.Template(), 0, 0, func(r, c int) {
			for i := range cellWidth {
				dst.SetColor(x+c*cellWidth+i, row+1+r, '█', KindColor(snap.Next))
			}
		})
	}
}

func (g *Game) renderOverlays(dst *core.Screen, board core.Rect) {
	cx := board.X + board.W/2
	cy := board.Y + board.H/2

	switch {
	case g.paused:
		drawOverlay(dst, cx, cy, core.ColorBrightWhite, "PAUSED", "Press P to resume")
	case g.gameOver && g.mode == ModeAuto:
		left := max(0, g.cfg.RestartAfter()-g.attractFor)
		secs := int((left + time.Second - 1) / time.Second)
		drawOverlay(dst, cx, cy, core.ColorBrightWhite,
			"GAME OVER",
			fmt.Sprintf("Score: %d", g.last.FinalScore),
			fmt.Sprintf("Demo restarts in %d", secs))
	case g.gameOver:
		drawOverlay(dst, cx, cy, core.ColorBrightWhite,
			"GAME OVER",
			fmt.Sprintf("Score: %d", g.last.FinalScore),
			"Enter: play again",
			"R: restart  Q: quit")
	case g.celebrate > 0:
		drawOverlay(dst, cx, board.Y+3, core.ColorBrightYellow, "TETRIS!")
	}
}

// drawOverlay draws a boxed block of centered lines around (cx, cy).
func drawOverlay(dst *core.Screen, cx, cy int, c core.Color, lines ...string) {
	maxLen := 0
	for _, l := range lines {
		maxLen = max(maxLen, utf8.RuneCountInString(l))
	}

	box := core.NewRect(cx-(maxLen+4)/2, cy-(len(lines)+2)/2, maxLen+4, len(lines)+2)
	dst.FillRect(box, ' ', core.ColorDefault)
	dst.DrawBox(box, c)
	for i, l := range lines {
		dst.DrawTextColor(cx-utf8.RuneCountInString(l)/2, box.Y+1+i, l, c)
	}
}

// Controls returns the key hints for the game.
func (g *Game) Controls() string {
	if g.mode == ModeAuto {
		return "1-4: Speed | P: Pause | R: Restart | Q: Quit"
	}
	return "Arrows/WASD: Move | Space: Drop | T: Auto | 1-4: Speed | P: Pause | Q: Quit"
}
