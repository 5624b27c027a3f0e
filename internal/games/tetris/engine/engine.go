package engine

import (
	"math"
	"time"
)

// State is the top-level engine mode.
type State int

const (
	// StateAttract is the idle/demo mode: no active piece, gravity suspended.
	StateAttract State = iota
	// StatePlaying means a game is in progress.
	StatePlaying
)

func (s State) String() string {
	if s == StatePlaying {
		return "playing"
	}
	return "attract"
}

// Config holds everything the engine needs besides its random source.
type Config struct {
	Rows     int
	Cols     int
	SpawnRow int
	SpawnCol int

	// LockDelay is the number of grounded gravity steps before a piece merges.
	LockDelay int
	// StallLimit is the number of consecutive automated ticks without progress
	// on a grounded piece after which the piece is merged by force.
	StallLimit int
	// MaxFrameDelta caps the time a single Tick may account for.
	MaxFrameDelta time.Duration

	Speeds       SpeedTable
	InitialSpeed Speed

	LinePoints    int
	TetrisBonus   int
	LineBonusRate float64

	Weights Weights
	Search  SearchOptions
	Slide   SlideConfig
}

// DefaultConfig returns the canonical rules.
func DefaultConfig() Config {
	return Config{
		Rows:          DefaultRows,
		Cols:          DefaultCols,
		SpawnRow:      0,
		SpawnCol:      3,
		LockDelay:     3,
		StallLimit:    10,
		MaxFrameDelta: time.Second / 30,
		Speeds:        DefaultSpeedTable(),
		InitialSpeed:  SpeedSlow,
		LinePoints:    100,
		TetrisBonus:   800,
		LineBonusRate: 0.001,
		Weights:       DefaultWeights(),
		Search:        DefaultSearchOptions(),
		Slide:         DefaultSlideConfig(),
	}
}

// Target is the placement the autonomous player is steering toward.
type Target struct {
	Col       int
	Rotations int
	Row       int
	Score     float64
}

// Stats is the counter view passed to Hooks.OnStats.
type Stats struct {
	Score      int
	Lines      int
	Tetrises   int
	Pieces     int
	Speed      Speed
	LineBonus  float64
	Multiplier float64
	Automated  bool
}

// Snapshot is a copy of the observable engine state.
type Snapshot struct {
	State      State
	Board      Board
	Current    Piece
	HasCurrent bool
	GhostRow   int
	Next       Kind
	Target     Target
	HasTarget  bool
	Stats
}

// RenderExtras carries one-off presentation events.
type RenderExtras struct {
	Celebrate bool
}

// GameOver describes a finished game.
type GameOver struct {
	FinalScore int
	Automated  bool
	Lines      int
	Tetrises   int
	Pieces     int
}

// Hooks are optional observers. Nil fields are skipped.
type Hooks struct {
	OnRender      func(Snapshot, RenderExtras)
	OnStats       func(Stats)
	OnGameOver    func(GameOver)
	OnAttractTick func(time.Duration)
}

// Engine is the piece/board state machine. It is not safe for concurrent use;
// one goroutine owns an engine and delivers its ticks.
type Engine struct {
	cfg   Config
	rng   Source
	hooks Hooks

	state      State
	board      Board
	current    Piece
	hasCurrent bool
	next       Kind

	score    int
	lines    int
	tetrises int
	pieces   int
	speed    Speed
	auto     bool

	target        Target
	hasTarget     bool
	needsPlan     bool
	plans         int
	rotationsLeft int

	lockCount int
	stall     int
	slid      bool
	acc       time.Duration
}

// New returns an engine in attract mode with an empty board.
func New(cfg Config, rng Source, hooks Hooks) *Engine {
	if cfg.Rows <= 0 {
		cfg.Rows = DefaultRows
	}
	if cfg.Cols <= 0 {
		cfg.Cols = DefaultCols
	}
	if cfg.LockDelay <= 0 {
		cfg.LockDelay = 1
	}
	if cfg.StallLimit <= 0 {
		cfg.StallLimit = 10
	}
	if cfg.MaxFrameDelta <= 0 {
		cfg.MaxFrameDelta = time.Second / 30
	}
	return &Engine{
		cfg:   cfg,
		rng:   rng,
		hooks: hooks,
		state: StateAttract,
		board: NewBoard(cfg.Rows, cfg.Cols),
		speed: cfg.InitialSpeed.Normalize(),
	}
}

// Config returns the rules the engine was built with.
func (e *Engine) Config() Config { return e.cfg }

// Start begins a new game: clears the board and counters and spawns a piece.
// Speed and automation carry over.
func (e *Engine) Start() {
	e.state = StatePlaying
	e.board = NewBoard(e.cfg.Rows, e.cfg.Cols)
	e.hasCurrent = false
	e.next = KindNone
	e.score, e.lines, e.tetrises, e.pieces = 0, 0, 0, 0
	e.lockCount, e.stall, e.acc, e.plans = 0, 0, 0, 0
	e.clearTarget()
	e.spawn()
	if e.state != StatePlaying {
		return
	}
	e.render(RenderExtras{})
	e.emitStats()
}

// EnterAttractMode clears the board and the score and suspends gravity.
func (e *Engine) EnterAttractMode() {
	e.state = StateAttract
	e.board = NewBoard(e.cfg.Rows, e.cfg.Cols)
	e.hasCurrent = false
	e.score = 0
	e.acc = 0
	e.clearTarget()
	e.render(RenderExtras{})
	e.emitStats()
}

// SetSpeed switches tier; unknown tiers fall back to SpeedNormal.
func (e *Engine) SetSpeed(s Speed) {
	e.speed = s.Normalize()
	e.emitStats()
}

// SetAutomation turns the autonomous player on or off. Turning it off
// discards any planned target; turning it on mid-fall plans for the active
// piece on the next tick.
func (e *Engine) SetAutomation(on bool) {
	if on && !e.auto && e.active() && !e.hasTarget {
		e.needsPlan = true
	}
	e.auto = on
	if !on {
		e.clearTarget()
	}
	e.emitStats()
}

// Move shifts the active piece one column left (dir < 0) or right (dir > 0).
func (e *Engine) Move(dir int) bool {
	if !e.active() || dir == 0 {
		return false
	}
	dc := 1
	if dir < 0 {
		dc = -1
	}
	if !CanPlace(e.board, e.current.Shape, e.current.Row, e.current.Col+dc) {
		return false
	}
	e.current.Col += dc
	e.lockCount = 0
	return true
}

// Rotate turns the active piece clockwise, trying the current column and then
// one column left and one column right.
func (e *Engine) Rotate() bool {
	if !e.active() {
		return false
	}
	rotated := Rotate(e.current.Shape)
	for _, kick := range [...]int{0, -1, 1} {
		if CanPlace(e.board, rotated, e.current.Row, e.current.Col+kick) {
			e.current.Shape = rotated
			e.current.Col += kick
			e.lockCount = 0
			return true
		}
	}
	return false
}

// SoftDrop performs one gravity step immediately.
func (e *Engine) SoftDrop() {
	if !e.active() {
		return
	}
	e.gravityStep()
}

// HardDrop repeats gravity steps until the active piece locks, so a smart
// slide may still apply on the way down.
func (e *Engine) HardDrop() {
	if !e.active() {
		return
	}
	for start := e.pieces; e.active() && e.pieces == start; {
		e.gravityStep()
	}
}

// Tick advances the engine by delta of wall-clock time and returns the
// resulting snapshot.
func (e *Engine) Tick(delta time.Duration) Snapshot {
	delta = max(0, min(delta, e.cfg.MaxFrameDelta))
	e.acc += delta

	if e.state == StateAttract {
		if e.hooks.OnAttractTick != nil {
			e.hooks.OnAttractTick(delta)
		}
		e.render(RenderExtras{})
		return e.Snapshot()
	}

	startPieces, startRow := e.pieces, e.current.Row
	e.slid = false
	progress := false
	if e.auto {
		progress = e.steer()
	}

	interval := e.interval()
	for e.acc >= interval && e.state == StatePlaying {
		e.acc -= interval
		e.gravityStep()
	}

	if e.state == StatePlaying && e.auto {
		progress = progress || e.slid || e.pieces != startPieces || e.current.Row != startRow
		grounded := !CanPlace(e.board, e.current.Shape, e.current.Row+1, e.current.Col)
		switch {
		case progress:
			e.stall = 0
		case grounded:
			e.stall++
			if e.stall >= e.cfg.StallLimit {
				e.stall = 0
				e.merge()
				e.spawn()
			}
		}
	}

	e.render(RenderExtras{})
	return e.Snapshot()
}

// Board returns a copy of the settled cells.
func (e *Engine) Board() Board { return e.board.Clone() }

// Current returns a copy of the active piece, if any.
func (e *Engine) Current() (Piece, bool) {
	if !e.hasCurrent {
		return Piece{}, false
	}
	return e.current.Clone(), true
}

func (e *Engine) Next() Kind { return e.next }
func (e *Engine) Score() int { return e.score }
func (e *Engine) Lines() int { return e.lines }
func (e *Engine) Tetrises() int { return e.tetrises }
func (e *Engine) Pieces() int { return e.pieces }
func (e *Engine) State() State { return e.state }
func (e *Engine) Speed() Speed { return e.speed }
func (e *Engine) Automated() bool { return e.auto }
func (e *Engine) LockCount() int { return e.lockCount }
func (e *Engine) StallCount() int { return e.stall }
func (e *Engine) LineBonus() float64 { return 1 + e.cfg.LineBonusRate*float64(e.lines) }

// Target returns the placement automation is steering toward.
func (e *Engine) Target() (Target, bool) {
	return e.target, e.hasTarget
}

// Stats returns the current counters.
func (e *Engine) Stats() Stats {
	bonus := e.LineBonus()
	return Stats{
		Score:      e.score,
		Lines:      e.lines,
		Tetrises:   e.tetrises,
		Pieces:     e.pieces,
		Speed:      e.speed,
		LineBonus:  bonus,
		Multiplier: e.cfg.Speeds.Tier(e.speed).Multiplier * bonus,
		Automated:  e.auto,
	}
}

// Snapshot returns a deep copy of the observable state.
func (e *Engine) Snapshot() Snapshot {
	s := Snapshot{
		State:     e.state,
		Board:     e.board.Clone(),
		Next:      e.next,
		Target:    e.target,
		HasTarget: e.hasTarget,
		Stats:     e.Stats(),
	}
	if e.hasCurrent {
		s.Current = e.current.Clone()
		s.HasCurrent = true
		s.GhostRow = DropRow(e.board, e.current.Shape, e.current.Row, e.current.Col)
	}
	return s
}

func (e *Engine) active() bool {
	return e.state == StatePlaying && e.hasCurrent
}

func (e *Engine) interval() time.Duration {
	iv := e.cfg.Speeds.Tier(e.speed).Interval
	if iv <= 0 {
		iv = time.Millisecond
	}
	return iv
}

// gravityStep descends the piece, or slides it, or advances the lock counter.
func (e *Engine) gravityStep() {
	if CanPlace(e.board, e.current.Shape, e.current.Row+1, e.current.Col) {
		e.current.Row++
		e.lockCount = 0
		return
	}
	if e.auto || e.cfg.Slide.Manual {
		if s, ok := SmartSlide(e.board, e.current, e.cfg.Weights, e.cfg.Slide); ok {
			e.current.Col = s.Col
			e.lockCount = 0
			e.slid = true
			if e.hasTarget {
				e.hasTarget = false
				e.rotationsLeft = 0
			}
			return
		}
	}
	e.lockCount++
	if e.lockCount >= e.cfg.LockDelay {
		e.merge()
		e.spawn()
	}
}

// steer plans a target for a freshly spawned piece and then issues at most one
// corrective action. It reports whether the piece moved.
func (e *Engine) steer() bool {
	if !e.active() {
		return false
	}
	if e.needsPlan {
		e.needsPlan = false
		e.plans++
		mv := FindBestMove(e.board, e.current.Shape, e.current.Kind.Cell(), e.cfg.Weights, e.cfg.Search)
		e.target = Target{Col: mv.Col, Rotations: mv.Rotations, Row: mv.Row, Score: mv.Score}
		e.hasTarget = true
		e.rotationsLeft = mv.Rotations
		e.stall = 0
	}
	if !e.hasTarget {
		return false
	}
	if e.rotationsLeft > 0 && e.Rotate() {
		e.rotationsLeft--
		return true
	}
	switch {
	case e.current.Col < e.target.Col:
		return e.Move(1)
	case e.current.Col > e.target.Col:
		return e.Move(-1)
	}
	return false
}

func (e *Engine) merge() {
	e.board = LockInto(e.board, e.current.Shape, e.current.Row, e.current.Col, e.current.Kind.Cell())
	e.hasCurrent = false
	e.lockCount = 0

	board, n := ClearFullLines(e.board)
	e.board = board
	if n == 0 {
		return
	}

	points := e.cfg.LinePoints * n
	if n == 4 {
		points += e.cfg.TetrisBonus
		e.tetrises++
	}
	e.lines += n
	mult := e.cfg.Speeds.Tier(e.speed).Multiplier * e.LineBonus()
	e.score += int(math.Round(float64(points) * mult))
	if n == 4 {
		e.render(RenderExtras{Celebrate: true})
	}
	e.emitStats()
}

func (e *Engine) spawn() {
	if e.next == KindNone {
		e.next = RandomKind(e.rng)
	}
	e.current = NewPiece(e.next, e.cfg.SpawnRow, e.cfg.SpawnCol)
	e.hasCurrent = true
	e.next = RandomKind(e.rng)
	e.pieces++
	e.lockCount = 0
	e.stall = 0
	e.clearTarget()
	e.needsPlan = true
	e.emitStats()

	if !e.current.Fits(e.board) {
		e.gameOver()
	}
}

func (e *Engine) gameOver() {
	final := GameOver{
		FinalScore: e.score,
		Automated:  e.auto,
		Lines:      e.lines,
		Tetrises:   e.tetrises,
		Pieces:     e.pieces,
	}
	e.EnterAttractMode()
	if e.hooks.OnGameOver != nil {
		e.hooks.OnGameOver(final)
	}
}

func (e *Engine) clearTarget() {
	e.target = Target{}
	e.hasTarget = false
	e.needsPlan = false
	e.rotationsLeft = 0
}

func (e *Engine) render(x RenderExtras) {
	if e.hooks.OnRender != nil {
		e.hooks.OnRender(e.Snapshot(), x)
	}
}

func (e *Engine) emitStats() {
	if e.hooks.OnStats != nil {
		e.hooks.OnStats(e.Stats())
	}
}
