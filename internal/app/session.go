package app

import (
	"cgol/internal/core"
	"cgol/internal/life"
)

// Mode is the interaction state: playing or editing.
type Mode int

const (
	// ModePlay advances the simulation on a fixed cadence; editing input is
	// ignored.
	ModePlay Mode = iota
	// ModeEdit pauses the simulation and routes mouse input to the board.
	ModeEdit
)

func (m Mode) String() string {
	if m == ModeEdit {
		return "edit"
	}
	return "play"
}

// Theme selects the rendering palette. It never affects simulation state.
type Theme int

const (
	// ThemeDark renders light cells on a dark background.
	ThemeDark Theme = iota
	// ThemeLight renders dark cells on a light background.
	ThemeLight
)

// Session owns the live grid and the interaction state. It is mutated only
// from the frame loop, one event at a time; there is no locking.
type Session struct {
	grid       *core.Grid
	mode       Mode
	theme      Theme
	clock      *core.StepClock
	cellSize   int
	generation int
	quit       bool
}

// NewSession builds the session a frame loop drives: an all-Dead grid sized
// from the config, seeded with the demo patterns unless the config starts
// empty, in play mode with the dark theme.
func NewSession(cfg *Config) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	grid := core.NewGrid(cfg.Cols(), cfg.Rows())
	if !cfg.Empty {
		life.Seed(grid)
	}
	return &Session{
		grid:     grid,
		mode:     ModePlay,
		theme:    ThemeDark,
		clock:    core.NewStepClock(cfg.StepInterval),
		cellSize: cfg.CellSize,
	}, nil
}

// Handle dispatches one input event. Malformed input is dropped rather than
// reported; editing is best-effort and must never halt the loop.
func (s *Session) Handle(ev Event) {
	switch ev := ev.(type) {
	case ToggleMode:
		if s.mode == ModePlay {
			s.mode = ModeEdit
		} else {
			s.mode = ModePlay
			// Editing pauses the simulation; the time spent paused must not
			// be replayed as a fast-forward burst on resume.
			s.clock.Reset()
		}
	case ToggleTheme:
		if s.theme == ThemeDark {
			s.theme = ThemeLight
		} else {
			s.theme = ThemeDark
		}
	case Quit:
		s.quit = true
	case StepOnce:
		if s.mode == ModeEdit {
			s.advance()
		}
	case Clear:
		if s.mode == ModeEdit {
			s.grid.Clear()
		}
	case Randomize:
		if s.mode == ModeEdit {
			life.Soup(s.grid, core.NewRNG(ev.Seed), 0.25)
		}
	case Paint:
		s.paint(ev)
	}
}

func (s *Session) paint(ev Paint) {
	if s.mode != ModeEdit || ev.X < 0 || ev.Y < 0 {
		return
	}
	x := ev.X / s.cellSize
	y := ev.Y / s.cellSize
	if !s.grid.Contains(x, y) {
		return
	}
	s.grid.Set(x, y, ev.State)
}

// Tick runs once per rendered frame. In play mode it advances the owned grid
// whenever the step interval has elapsed, independent of the frame rate.
func (s *Session) Tick() {
	if s.mode != ModePlay {
		return
	}
	if s.clock.ShouldStep() {
		s.advance()
	}
}

func (s *Session) advance() {
	s.grid = life.Step(s.grid)
	s.generation++
}

// Grid returns the current generation.
func (s *Session) Grid() *core.Grid { return s.grid }

// Mode returns the interaction mode.
func (s *Session) Mode() Mode { return s.mode }

// Theme returns the active palette selection.
func (s *Session) Theme() Theme { return s.theme }

// Generation returns the number of steps taken since startup.
func (s *Session) Generation() int { return s.generation }

// Quitting reports whether a quit event has been observed.
func (s *Session) Quitting() bool { return s.quit }
