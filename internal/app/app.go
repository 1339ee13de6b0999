//go:build ebiten

package app

import (
	"image/color"
	"log"
	"time"

	"toruslife/internal/lifefile"
	"toruslife/internal/render"
	"toruslife/internal/sims/life"
	"toruslife/internal/ui"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var keyActions = map[ebiten.Key]Action{
	ebiten.KeySpace:      ActionToggleAuto,
	ebiten.KeyN:          ActionStep,
	ebiten.KeyC:          ActionCopy,
	ebiten.KeyX:          ActionCut,
	ebiten.KeyBackspace:  ActionDelete,
	ebiten.KeyDelete:     ActionDelete,
	ebiten.KeyArrowUp:    ActionFlipVertical,
	ebiten.KeyArrowDown:  ActionFlipHorizontal,
	ebiten.KeyArrowRight: ActionRotate,
	ebiten.KeyI:          ActionToggleInsert,
	ebiten.KeyM:          ActionToggleMotion,
	ebiten.KeyS:          ActionSaveBoard,
	ebiten.KeyP:          ActionSavePattern,
	ebiten.KeyR:          ActionReset,
	ebiten.KeyK:          ActionClear,
}

var selectionColor = color.RGBA{R: 250, G: 190, B: 60, A: 255}

// Game adapts a life session to the ebiten.Game interface.
type Game struct {
	session    *life.Session
	controller *Controller
	display    *Display
	watcher    *lifefile.Watcher
	painter    *render.GridPainter
	hud        *ui.HUD

	width, height int
	pressed       bool
}

// New constructs a Game for the provided session. display must be the
// session's core.Display; watcher may be nil.
func New(session *life.Session, display *Display, watcher *lifefile.Watcher, hudWidth int, seed int64, logger *log.Logger) *Game {
	size := session.Size()
	return &Game{
		session:    session,
		controller: NewController(session, logger, seed),
		display:    display,
		watcher:    watcher,
		painter:    render.NewGridPainter(size.W, size.H, render.LifePalette()),
		hud:        ui.NewHUD(session, hudWidth),
	}
}

func (g *Game) boardWidth() int { return max(g.width-g.hud.Width(), 0) }

// Update handles per-frame logic and advances the simulation.
func (g *Game) Update() error {
	if !g.hud.Capturing() && (inpututil.IsKeyJustPressed(ebiten.KeyQ) || inpututil.IsKeyJustPressed(ebiten.KeyEscape)) {
		return ebiten.Termination
	}
	if n := g.controller.Drain(g.watcher); n > 0 {
		g.hud.SetMessage("patterns updated")
	}

	capturing := g.hud.Capturing()
	g.hud.Update(g.boardWidth())
	if !capturing && !g.hud.Capturing() {
		g.handleKeys()
	}
	g.handleMouse()

	g.session.Tick(time.Now())
	if g.display.TakeLayout() {
		g.layoutBoard()
	}
	return nil
}

func (g *Game) handleKeys() {
	for key, action := range keyActions {
		if !inpututil.IsKeyJustPressed(key) {
			continue
		}
		msg := g.controller.Apply(action, g.hud.Query())
		if action == ActionSaveBoard || action == ActionSavePattern {
			g.hud.Invalidate()
		}
		if msg != "" {
			g.hud.SetMessage(msg)
		}
	}
}

func (g *Game) handleMouse() {
	mx, my := ebiten.CursorPosition()
	row, col, onBoard := -1, -1, false
	if mx < g.boardWidth() {
		row, col, onBoard = g.session.CellAt(float64(mx), float64(my))
	}
	modifier := ebiten.IsKeyPressed(ebiten.KeyShift)

	switch {
	case inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) && onBoard:
		g.session.Press(row, col, modifier)
		g.pressed = true
	case inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) && g.pressed:
		g.pressed = false
		if onBoard {
			g.session.Release(row, col)
			break
		}
		// Released off the board: end the gesture at the last cell it reached.
		lr, lc := g.clampToBoard(mx, my)
		g.session.Release(lr, lc)
	case g.pressed && onBoard:
		g.session.Drag(row, col)
	}

	if g.session.InsertingConfig() && onBoard && !g.pressed {
		g.session.PreviewConfig(row, col)
	}
}

func (g *Game) clampToBoard(mx, my int) (int, int) {
	size := g.session.CellSize()
	if size <= 0 {
		return 0, 0
	}
	origin := g.session.CellBounds(0, 0)
	col := int((float64(mx) - origin.X) / size)
	row := int((float64(my) - origin.Y) / size)
	grid := g.session.Grid()
	return min(max(row, 0), grid.Rows()-1), min(max(col, 0), grid.Cols()-1)
}

func (g *Game) layoutBoard() {
	g.session.Resize(float64(g.boardWidth()), float64(g.height))
	g.session.Relocate(0, 0)
}

// Draw renders the current board, the selection frame and the HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	size := g.session.Size()
	origin := g.session.CellBounds(0, 0)
	g.painter.Blit(screen, g.session.Cells(), size.W, size.H, origin.X, origin.Y, g.session.CellSize())
	if r, ok := g.session.SelectionRect(); ok {
		render.Outline(screen, r.X, r.Y, r.W, r.H, selectionColor)
	}
	g.hud.Draw(screen, g.boardWidth(), g.height)
}

// Layout tracks the window size and returns it as the logical screen size.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth != g.width || outsideHeight != g.height {
		g.width, g.height = outsideWidth, outsideHeight
		g.layoutBoard()
	}
	return outsideWidth, outsideHeight
}

// Close releases the pattern watcher.
func (g *Game) Close() error {
	if g.watcher == nil {
		return nil
	}
	return g.watcher.Close()
}
