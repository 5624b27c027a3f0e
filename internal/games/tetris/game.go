// Package tetris adapts the placement engine to the terminal platform: it maps
// input actions to engine commands, advances the engine once per platform
// tick, runs the self-playing demo cycle and draws everything into a screen
// buffer.
package tetris

import (
	"math/rand"
	"sync"
	"time"

	"github.com/vovakirdan/tui-tetris/internal/config"
	"github.com/vovakirdan/tui-tetris/internal/core"
	"github.com/vovakirdan/tui-tetris/internal/games/tetris/engine"
	"github.com/vovakirdan/tui-tetris/internal/registry"
)

// Mode selects who plays.
type Mode string

const (
	// ModeClassic is played by a human, who may hand over to the computer.
	ModeClassic Mode = "classic"
	// ModeAuto is the self-playing demo: the computer plays, and after each
	// game over a new game starts once the attract delay has passed.
	ModeAuto Mode = "auto"
)

// celebrateTicks is how long the tetris banner stays up.
const celebrateTicks = 45

// Package-level settings shared by every instance the registry creates.
var (
	settingsMu  sync.RWMutex
	settingsCfg = config.DefaultTetrisConfig()
	startSpeed  *engine.Speed
)

// Configure sets the tuning used by games reset after this call.
func Configure(cfg config.TetrisConfig) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	settingsCfg = cfg
}

// SetStartSpeed overrides the configured starting tier.
func SetStartSpeed(s engine.Speed) {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	s = s.Normalize()
	startSpeed = &s
}

// ClearStartSpeed reverts to the configured starting tier.
func ClearStartSpeed() {
	settingsMu.Lock()
	defer settingsMu.Unlock()
	startSpeed = nil
}

func currentSettings() (config.TetrisConfig, *engine.Speed) {
	settingsMu.RLock()
	defer settingsMu.RUnlock()
	if startSpeed == nil {
		return settingsCfg, nil
	}
	s := *startSpeed
	return settingsCfg, &s
}

// Game implements registry.Game around an engine.Engine.
type Game struct {
	mode Mode
	cfg  config.TetrisConfig
	eng  *engine.Engine
	diff *config.DifficultyManager

	tick      uint64
	tickDelta time.Duration

	screenW  int
	screenH  int
	tooSmall bool
	paused   bool

	gameOver   bool
	last       engine.GameOver
	celebrate  int
	attractFor time.Duration
	games      int
}

// New creates a human-played game.
func New() *Game {
	return &Game{mode: ModeClassic}
}

// NewAuto creates the self-playing demo.
func NewAuto() *Game {
	return &Game{mode: ModeAuto}
}

func init() {
	registry.Register("tetris", func() registry.Game {
		return New()
	})
	registry.Register("tetris_auto", func() registry.Game {
		return NewAuto()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	if g.mode == ModeAuto {
		return "tetris_auto"
	}
	return "tetris"
}

// Title returns the display name.
func (g *Game) Title() string {
	if g.mode == ModeAuto {
		return "Tetris (AI Demo)"
	}
	return "Tetris"
}

// Mode reports who plays.
func (g *Game) Mode() Mode {
	return g.mode
}

// Reset builds a fresh engine from the current settings and starts a game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	tuning, speed := currentSettings()
	g.cfg = tuning

	g.tick = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.paused = false
	g.games = 0

	rate := cfg.TickRate
	if rate <= 0 {
		rate = core.DefaultConfig().TickRate
	}
	g.tickDelta = time.Second / time.Duration(rate)

	rng := rand.New(rand.NewSource(cfg.Seed))
	g.eng = engine.New(tuning.Engine(), rng, engine.Hooks{
		OnRender:      g.onRender,
		OnGameOver:    g.onGameOver,
		OnAttractTick: g.onAttractTick,
	})

	initial := tuning.InitialSpeed()
	if speed != nil {
		initial = *speed
	}
	g.diff = config.NewDifficultyManager(tuning.Difficulty, initial)

	g.checkScreenSize()
	g.startGame(initial)
}

// startGame begins a new round at the given tier.
func (g *Game) startGame(speed engine.Speed) {
	g.gameOver = false
	g.last = engine.GameOver{}
	g.celebrate = 0
	g.attractFor = 0
	g.games++

	g.diff.SetInitial(speed)
	g.eng.SetSpeed(speed)
	g.eng.SetAutomation(g.mode == ModeAuto)
	g.eng.Start()
}

func (g *Game) onRender(_ engine.Snapshot, x engine.RenderExtras) {
	if x.Celebrate {
		g.celebrate = celebrateTicks
	}
}

func (g *Game) onGameOver(over engine.GameOver) {
	g.gameOver = true
	g.last = over
}

func (g *Game) onAttractTick(d time.Duration) {
	g.attractFor += d
}

// Resize updates the screen size without restarting the game.
func (g *Game) Resize(w, h int) {
	g.screenW, g.screenH = w, h
	g.checkScreenSize()
}

func (g *Game) checkScreenSize() {
	rows, cols := g.cfg.Board.Rows, g.cfg.Board.Cols
	g.tooSmall = g.screenW < cols*cellWidth+2+hudWidth || g.screenH < rows+2
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	g.tick++

	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) && !g.gameOver {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	g.applySpeedKeys(in)

	if g.gameOver && g.mode == ModeClassic && in.Has(core.ActionConfirm) {
		g.startGame(g.diff.Initial())
		return core.StepResult{State: g.State()}
	}

	if g.eng.State() == engine.StatePlaying {
		if in.Has(core.ActionToggleAuto) && g.mode == ModeClassic {
			g.eng.SetAutomation(!g.eng.Automated())
		}
		if !g.eng.Automated() {
			g.applyMovement(in)
		}
	}

	g.eng.Tick(g.tickDelta)

	if g.eng.State() == engine.StatePlaying && g.diff.IsEnabled() {
		if s := g.diff.Speed(g.eng.Lines(), g.eng.Score()); s > g.eng.Speed() {
			g.eng.SetSpeed(s)
		}
	}

	if g.celebrate > 0 {
		g.celebrate--
	}

	if g.mode == ModeAuto && g.gameOver && g.attractFor >= g.cfg.RestartAfter() {
		g.startGame(g.cfg.DemoSpeed())
	}

	return core.StepResult{State: g.State()}
}

func (g *Game) applySpeedKeys(in core.InputFrame) {
	keys := []struct {
		action core.Action
		speed  engine.Speed
	}{
		{core.ActionSpeedSlow, engine.SpeedSlow},
		{core.ActionSpeedNormal, engine.SpeedNormal},
		{core.ActionSpeedFast, engine.SpeedFast},
		{core.ActionSpeedImpossible, engine.SpeedImpossible},
	}
	for _, k := range keys {
		if in.Has(k.action) {
			g.eng.SetSpeed(k.speed)
			g.diff.SetInitial(k.speed)
		}
	}
}

func (g *Game) applyMovement(in core.InputFrame) {
	if in.Has(core.ActionLeft) {
		g.eng.Move(-1)
	}
	if in.Has(core.ActionRight) {
		g.eng.Move(1)
	}
	if in.Has(core.ActionRotate) {
		g.eng.Rotate()
	}
	if in.Has(core.ActionSoftDrop) {
		g.eng.SoftDrop()
	}
	if in.Has(core.ActionHardDrop) {
		g.eng.HardDrop()
	}
}

// State returns the current game state. After a game over the final counters
// of the finished game are reported until a new game starts.
func (g *Game) State() core.GameState {
	if g.gameOver {
		return core.GameState{
			Score:     g.last.FinalScore,
			GameOver:  true,
			Automated: g.last.Automated,
			Lines:     g.last.Lines,
			Tetrises:  g.last.Tetrises,
		}
	}
	return core.GameState{
		Score:     g.eng.Score(),
		Paused:    g.paused || g.tooSmall,
		Automated: g.eng.Automated(),
		Lines:     g.eng.Lines(),
		Tetrises:  g.eng.Tetrises(),
	}
}

// Engine exposes the underlying engine to the platform, e.g. for statistics.
func (g *Game) Engine() *engine.Engine {
	return g.eng
}
