package app

import (
	"slices"
	"testing"
	"time"

	"cgol/internal/core"
)

func testConfig() *Config {
	cfg := NewConfig()
	cfg.ScreenWidth = 80
	cfg.ScreenHeight = 40
	cfg.CellSize = 8
	cfg.StepInterval = time.Hour
	cfg.Empty = true
	return cfg
}

func newTestSession(t *testing.T) *Session {
	t.Helper()
	s, err := NewSession(testConfig())
	if err != nil {
		t.Fatal(err)
	}
	return s
}

func TestInitialState(t *testing.T) {
	s := newTestSession(t)
	if s.Mode() != ModePlay {
		t.Fatalf("initial mode %v, expected play", s.Mode())
	}
	if s.Theme() != ThemeDark {
		t.Fatalf("initial theme %v, expected dark", s.Theme())
	}
	if s.Quitting() {
		t.Fatal("fresh session must not be quitting")
	}
	if g := s.Grid(); g.W != 10 || g.H != 5 {
		t.Fatalf("grid %dx%d, expected 10x5 from 80x40 at cell size 8", g.W, g.H)
	}
}

func TestModeToggleDoesNotTouchGrid(t *testing.T) {
	s := newTestSession(t)
	s.Handle(Paint{}) // play mode, ignored
	s.Grid().Set(3, 3, core.Alive)
	snapshot := append([]core.State(nil), s.Grid().Cells()...)

	s.Handle(ToggleMode{})
	if s.Mode() != ModeEdit {
		t.Fatal("toggle from play must enter edit")
	}
	s.Handle(ToggleMode{})
	if s.Mode() != ModePlay {
		t.Fatal("toggle from edit must return to play")
	}
	if !slices.Equal(snapshot, s.Grid().Cells()) {
		t.Fatal("mode toggles must not alter cell data")
	}
}

func TestThemeToggleIndependentOfMode(t *testing.T) {
	s := newTestSession(t)
	s.Handle(ToggleTheme{})
	if s.Theme() != ThemeLight {
		t.Fatal("theme toggle must flip to light")
	}
	if s.Mode() != ModePlay {
		t.Fatal("theme toggle must not change the mode")
	}
	s.Handle(ToggleMode{})
	s.Handle(ToggleTheme{})
	if s.Theme() != ThemeDark {
		t.Fatal("theme toggle must flip back to dark")
	}
	if s.Mode() != ModeEdit {
		t.Fatal("theme toggle must not change the mode")
	}
}

func TestPaintMapsPixelsToCells(t *testing.T) {
	s := newTestSession(t)
	s.Handle(ToggleMode{})

	s.Handle(Paint{X: 17, Y: 9, State: core.Alive})
	if st, _ := s.Grid().At(2, 1); st != core.Alive {
		t.Fatal("paint at pixel (17,9) must set cell (2,1) with 8px cells")
	}

	// Dragging over the same cell again is a no-op.
	s.Handle(Paint{X: 23, Y: 15, State: core.Alive})
	if s.Grid().Population() != 1 {
		t.Fatalf("population %d, expected 1", s.Grid().Population())
	}

	s.Handle(Paint{X: 17, Y: 9, State: core.Dead})
	if st, _ := s.Grid().At(2, 1); st != core.Dead {
		t.Fatal("painting Alive then Dead must leave the cell Dead")
	}
}

func TestPaintIgnoredInPlayMode(t *testing.T) {
	s := newTestSession(t)
	s.Handle(Paint{X: 17, Y: 9, State: core.Alive})
	if s.Grid().Population() != 0 {
		t.Fatal("paint must be ignored while playing")
	}
}

func TestPaintOutsideCanvasIgnored(t *testing.T) {
	s := newTestSession(t)
	s.Handle(ToggleMode{})
	for _, p := range [][2]int{{-1, 0}, {0, -1}, {80, 0}, {0, 40}, {5000, 5000}} {
		s.Handle(Paint{X: p[0], Y: p[1], State: core.Alive})
	}
	if s.Grid().Population() != 0 {
		t.Fatal("out-of-canvas paints must not change any cell")
	}
}

func TestStepOnceOnlyWhileEditing(t *testing.T) {
	s := newTestSession(t)
	s.Handle(StepOnce{})
	if s.Generation() != 0 {
		t.Fatal("step-once must be ignored while playing")
	}

	s.Handle(ToggleMode{})
	s.Grid().Set(1, 1, core.Alive) // isolated, dies in one step
	s.Handle(StepOnce{})
	if s.Generation() != 1 {
		t.Fatalf("generation %d after step-once, expected 1", s.Generation())
	}
	if s.Grid().Population() != 0 {
		t.Fatal("isolated cell must die after one step")
	}
}

func TestClearAndRandomizeOnlyWhileEditing(t *testing.T) {
	s := newTestSession(t)
	s.Handle(Randomize{Seed: 42})
	if s.Grid().Population() != 0 {
		t.Fatal("randomize must be ignored while playing")
	}

	s.Handle(ToggleMode{})
	s.Handle(Randomize{Seed: 42})
	if s.Grid().Population() == 0 {
		t.Fatal("randomize must fill some cells while editing")
	}
	s.Handle(Clear{})
	if s.Grid().Population() != 0 {
		t.Fatal("clear must kill every cell while editing")
	}
}

func TestTickAdvancesOnlyInPlayMode(t *testing.T) {
	cfg := testConfig()
	cfg.StepInterval = time.Nanosecond
	s, err := NewSession(cfg)
	if err != nil {
		t.Fatal(err)
	}

	s.Handle(ToggleMode{})
	s.Tick()
	if s.Generation() != 0 {
		t.Fatal("tick must not step while editing")
	}

	s.Handle(ToggleMode{})
	s.Tick()
	if s.Generation() != 1 {
		t.Fatalf("generation %d after an elapsed tick in play mode, expected 1", s.Generation())
	}
}

func TestResumeAfterEditingDoesNotFastForward(t *testing.T) {
	cfg := testConfig()
	cfg.StepInterval = 50 * time.Millisecond
	s, err := NewSession(cfg)
	if err != nil {
		t.Fatal(err)
	}
	s.Tick() // consume the initial step

	// Pause well past several step intervals, then resume.
	s.Handle(ToggleMode{})
	time.Sleep(200 * time.Millisecond)
	s.Handle(ToggleMode{})

	before := s.Generation()
	for i := 0; i < 6; i++ {
		s.Tick()
	}
	if advanced := s.Generation() - before; advanced > 1 {
		t.Fatalf("%d generations advanced right after resuming, expected at most 1; "+
			"the paused duration must not be replayed", advanced)
	}
}

func TestQuitLatches(t *testing.T) {
	s := newTestSession(t)
	s.Handle(Quit{})
	if !s.Quitting() {
		t.Fatal("quit event must latch the quit flag")
	}
	s.Handle(ToggleMode{})
	if !s.Quitting() {
		t.Fatal("quit flag must stay latched")
	}
}

func TestSeededStart(t *testing.T) {
	cfg := testConfig()
	cfg.ScreenWidth = 400
	cfg.ScreenHeight = 240
	cfg.Empty = false
	s, err := NewSession(cfg)
	if err != nil {
		t.Fatal(err)
	}
	if s.Grid().Population() == 0 {
		t.Fatal("default start must seed the demo patterns")
	}
}
