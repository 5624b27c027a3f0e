package tetris

import "github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"

// Phase is the coarse state of a game as seen by the platform.
type Phase string

const (
	PhasePlaying     Phase = "playing"
	PhasePaused      Phase = "paused"
	PhaseGameOver    Phase = "game_over"
	PhasePausedSmall Phase = "paused_small_window"
)

// Snapshot captures the complete game state for determinism testing.
type Snapshot struct {
	Tick        uint64
	Mode        Mode
	Phase       Phase
	Games       int // rounds started since Reset
	Celebrating bool
	Last        engine.GameOver
	Engine      engine.Snapshot
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	phase := PhasePlaying
	switch {
	case g.tooSmall:
		phase = PhasePausedSmall
	case g.gameOver:
		phase = PhaseGameOver
	case g.paused:
		phase = PhasePaused
	}

	return Snapshot{
		Tick:        g.tick,
		Mode:        g.mode,
		Phase:       phase,
		Games:       g.games,
		Celebrating: g.celebrate > 0,
		Last:        g.last,
		Engine:      g.eng.Snapshot(),
	}
}
