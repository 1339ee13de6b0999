// Package life runs Conway's Game of Life on a toroidal grid. A Session owns
// the board, the pattern library and all editing state; the front end drives
// it through gesture callbacks and a periodic Tick.
package life

import (
	"log"
	"runtime"
	"time"

	"toruslife/internal/core"
	"toruslife/internal/lifefile"
	"toruslife/internal/pattern"
)

// Display buffer values returned by Cells.
const (
	CellDead uint8 = iota
	CellAlive
	CellHighlighted
	CellPreview
	CellMoved
)

// Option customizes a Session.
type Option func(*Session)

// WithDisplay attaches the collaborator notified about cell creation, removal
// and layout changes.
func WithDisplay(d core.Display) Option {
	return func(s *Session) {
		if d != nil {
			s.display = d
		}
	}
}

// WithLogger replaces the logger used for load and save reports.
func WithLogger(l *log.Logger) Option {
	return func(s *Session) {
		if l != nil {
			s.logger = l
		}
	}
}

// WithStore sets the directory store used by Save, ImportAll and NextSaveName.
func WithStore(st *lifefile.Store) Option {
	return func(s *Session) { s.store = st }
}

// WithLibrary shares an existing pattern library.
func WithLibrary(lib *pattern.Library) Option {
	return func(s *Session) {
		if lib != nil {
			s.library = lib
		}
	}
}

// Session is one simulation: the grid and its active set, the iteration
// clock, the pattern library, insertion mode and the selection buffer.
type Session struct {
	cfg Config

	grid    *core.Grid
	display core.Display
	logger  *log.Logger
	store   *lifefile.Store
	library *pattern.Library
	rng     *core.RNG
	clock   *core.Interval
	workers int

	next       []bool
	pending    []core.Coord
	moved      []bool
	movedList  []int
	motion     bool
	generation int

	current   *pattern.Config
	inserting bool
	hover     core.Coord
	hovering  bool
	preview   map[int]struct{}

	gesture gesture
	sel     selection
	frame   frame

	pixels []uint8
}

// New returns a Session with the provided dimensions using defaults.
func New(rows, cols int, opts ...Option) *Session {
	cfg := DefaultConfig()
	cfg.Rows = rows
	cfg.Cols = cols
	return NewWithConfig(cfg, opts...)
}

// NewWithConfig returns a Session configured from the provided options.
func NewWithConfig(cfg Config, opts ...Option) *Session {
	s := &Session{
		cfg:     cfg,
		display: core.NopDisplay{},
		logger:  log.Default(),
		library: pattern.NewLibrary(),
		rng:     core.NewRNG(cfg.Seed),
		clock:   core.NewInterval(cfg.MillisPerIteration),
		motion:  cfg.HighlightMotion,
		preview: map[int]struct{}{},
	}
	for _, opt := range opts {
		opt(s)
	}
	s.SetWorkers(cfg.Workers)
	s.clock.SetEnabled(cfg.AutoIterate)
	s.allocate(core.NewGrid(cfg.Rows, cfg.Cols))
	for i := 0; i < s.grid.Len(); i++ {
		c := s.grid.At(i)
		s.display.Attach(core.Coord{Row: c.Row, Col: c.Col})
	}
	return s
}

func (s *Session) allocate(g *core.Grid) {
	s.grid = g
	s.next = make([]bool, g.Len())
	s.moved = make([]bool, g.Len())
	s.movedList = s.movedList[:0]
	s.pixels = make([]uint8, g.Len())
}

// Name returns the simulation identifier.
func (s *Session) Name() string { return "life" }

// Size returns the grid dimensions.
func (s *Session) Size() core.Size { return s.grid.Size() }

// Grid exposes the board.
func (s *Session) Grid() *core.Grid { return s.grid }

// Library exposes the session's pattern registry.
func (s *Session) Library() *pattern.Library { return s.library }

// Store returns the file store, or nil when the session has none.
func (s *Session) Store() *lifefile.Store { return s.store }

// Generation returns the number of generations computed since the last reset
// or load.
func (s *Session) Generation() int { return s.generation }

// Workers returns the number of partitions Iterate splits the active list into.
func (s *Session) Workers() int { return s.workers }

// SetWorkers sets the partition count. Values below 1 select the number of
// available CPUs.
func (s *Session) SetWorkers(n int) {
	if n < 1 {
		n = runtime.NumCPU()
	}
	s.workers = n
}

// Reset clears the board and respawns it randomly from seed.
func (s *Session) Reset(seed int64) {
	s.rng = core.NewRNG(seed)
	s.Clear()
	s.SpawnRandom(s.cfg.SpawnChance)
	s.generation = 0
}

// Step advances the simulation by one generation.
func (s *Session) Step() { s.Iterate() }

// Tick runs one generation if auto-iteration is on and the interval has
// elapsed. It reports whether a generation ran.
func (s *Session) Tick(now time.Time) bool {
	if !s.clock.Due(now) {
		return false
	}
	s.Iterate()
	return true
}

// ToggleAutoIteration switches periodic iteration on or off.
func (s *Session) ToggleAutoIteration() { s.clock.Toggle() }

// AutoIterating reports whether periodic iteration is on.
func (s *Session) AutoIterating() bool { return s.clock.Enabled() }

// SetMillisPerIteration sets the minimum wall time between generations.
func (s *Session) SetMillisPerIteration(ms int) { s.clock.SetMillis(ms) }

// MillisPerIteration returns the configured interval.
func (s *Session) MillisPerIteration() int { return s.clock.Millis() }

// Clear kills every cell.
func (s *Session) Clear() {
	s.grid.Clear()
	s.clearMotion()
}

// SpawnRandom flips each cell independently with probability chance, clamped
// to [0, 1], and returns how many cells flipped.
func (s *Session) SpawnRandom(chance float64) int {
	chance = min(max(chance, 0), 1)
	flipped := 0
	for i := 0; i < s.grid.Len(); i++ {
		if !s.rng.Chance(chance) {
			continue
		}
		c := s.grid.At(i)
		s.grid.SetAlive(c.Row, c.Col, !c.Alive())
		flipped++
	}
	return flipped
}

// Alive reports whether the (wrapped) cell is alive.
func (s *Session) Alive(row, col int) bool { return s.grid.Alive(row, col) }

// SetHighlightMotion turns marking of cells changed by the last generation on
// or off.
func (s *Session) SetHighlightMotion(on bool) { s.motion = on }

// HighlightingMotion reports whether motion marking is on.
func (s *Session) HighlightingMotion() bool { return s.motion }

// Moved reports whether the (wrapped) cell changed state in the last
// generation.
func (s *Session) Moved(row, col int) bool {
	r, c := s.grid.Wrap(row, col)
	return s.moved[s.grid.Index(r, c)]
}

// Cells renders the board into a display buffer of Cell* values.
func (s *Session) Cells() []uint8 {
	for i := range s.pixels {
		c := s.grid.At(i)
		v := CellDead
		switch {
		case s.isPreviewed(i):
			v = CellPreview
		case s.Highlighted(c.Row, c.Col):
			v = CellHighlighted
		case s.motion && s.moved[i]:
			v = CellMoved
		case c.Alive():
			v = CellAlive
		}
		s.pixels[i] = v
	}
	return s.pixels
}
