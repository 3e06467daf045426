//go:build ebiten

package app

import (
	"fmt"
	"time"

	"cgol/internal/core"
	"cgol/internal/render"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font/basicfont"
)

// Game adapts a Session to the ebiten.Game interface. Ebiten's run loop is
// the frame pacing; the session's step clock gates the simulation cadence.
type Game struct {
	session *Session
	painter *render.Painter
	cfg     *Config
}

// New constructs the Game for the provided config.
func New(cfg *Config) (*Game, error) {
	session, err := NewSession(cfg)
	if err != nil {
		return nil, err
	}
	return &Game{
		session: session,
		painter: render.NewPainter(cfg.Cols(), cfg.Rows()),
		cfg:     cfg,
	}, nil
}

// Update drains this frame's input into the session, then advances it.
func (g *Game) Update() error {
	s := g.session

	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		s.Handle(Quit{})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		s.Handle(ToggleMode{})
		g.syncCursor()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
		s.Handle(ToggleTheme{})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) {
		s.Handle(StepOnce{})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		s.Handle(Clear{})
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyS) {
		s.Handle(Randomize{Seed: time.Now().UnixNano()})
	}

	// Checking the held button state every frame makes painting follow a
	// drag, not just the press.
	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		s.Handle(Paint{X: x, Y: y, State: core.Alive})
	} else if ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight) {
		x, y := ebiten.CursorPosition()
		s.Handle(Paint{X: x, Y: y, State: core.Dead})
	}

	s.Tick()

	if s.Quitting() {
		return ebiten.Termination
	}
	return nil
}

func (g *Game) syncCursor() {
	if g.session.Mode() == ModeEdit {
		ebiten.SetCursorShape(ebiten.CursorShapeCrosshair)
		return
	}
	ebiten.SetCursorShape(ebiten.CursorShapeDefault)
}

// Draw renders the board, the edit overlay and the status label.
func (g *Game) Draw(screen *ebiten.Image) {
	s := g.session
	pal := g.palette()

	screen.Fill(pal.Background)
	g.painter.Blit(screen, s.Grid().Cells(), pal, g.cfg.CellSize)
	if s.Mode() == ModeEdit {
		g.painter.GridDots(screen, pal, g.cfg.CellSize)
	}

	label := fmt.Sprintf("%s  gen %d", s.Mode(), s.Generation())
	text.Draw(screen, label, basicfont.Face7x13, 4, 12, pal.Cell)
}

func (g *Game) palette() render.Palette {
	if g.session.Theme() == ThemeLight {
		return render.Light
	}
	return render.Dark
}

// Layout returns the logical screen size; the window scales it up.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	return g.cfg.Cols() * g.cfg.CellSize, g.cfg.Rows() * g.cfg.CellSize
}
