// Orbital Mind: an interactive n-body gravity sandbox.
package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"
	"math"
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"golang.org/x/image/font/basicfont"

	"github.com/abhishek776655/Orbital-Mind/pkg/physics"
	"github.com/abhishek776655/Orbital-Mind/pkg/simulation"
	"github.com/abhishek776655/Orbital-Mind/pkg/view"
)

const (
	screenWidth  = 1280
	screenHeight = 800

	gridSpacing = 100.0 // world units

	// UI
	uiBtnW   = 100
	uiBtnH   = 28
	uiBtnPad = 12

	// defaults for bodies created by drag gesture
	createMass    = 100.0
	createDensity = 2.0
)

// Game wires the simulator, camera and pointer state machine into the
// Ebiten frame loop.
type Game struct {
	sim *simulation.Simulator
	cam *view.Camera
	ptr *view.Pointer

	selected    uint64
	hasSelected bool

	mouseDown bool

	touch    *view.TouchTracker
	touchIDs []ebiten.TouchID
	touches  []view.Touch

	shortcutsVisible bool
}

func newGame(sc *simulation.Scenario) *Game {
	g := &Game{
		sim:              simulation.NewSimulator(sc),
		cam:              view.NewCamera(screenWidth, screenHeight),
		shortcutsVisible: true,
	}
	g.ptr = view.NewPointer(g.cam)
	g.touch = view.NewTouchTracker(g.ptr)
	g.ptr.OnSelect = func(id uint64, ok bool) {
		g.selected = id
		g.hasSelected = ok
	}
	g.ptr.OnCreate = func(pos, vel physics.Vec2) {
		g.sim.AddBody(physics.NewBody(createMass, createDensity, pos, vel,
			color.RGBA{200, 200, 255, 255}))
	}
	return g
}

func (g *Game) Update() error {
	g.handleKeys()
	g.handleTouch()
	if !g.ptr.Pinching() {
		g.handleMouse()
	}

	g.sim.Step()
	return nil
}

func (g *Game) handleKeys() {
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		if g.sim.Running {
			g.sim.Pause()
		} else {
			g.sim.Resume()
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyN) && !g.sim.Running {
		g.sim.StepOnce()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyR) {
		g.sim.Reset()
		g.hasSelected = false
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyC) {
		if g.ptr.Mode == view.ModeView {
			g.ptr.Mode = view.ModeCreate
		} else {
			g.ptr.Mode = view.ModeView
		}
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyT) {
		g.sim.Config.ShowTrails = !g.sim.Config.ShowTrails
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyG) {
		g.sim.Config.ShowGrid = !g.sim.Config.ShowGrid
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyH) {
		g.shortcutsVisible = !g.shortcutsVisible
	}

	// scenario hotkeys
	for key, name := range map[ebiten.Key]string{
		ebiten.Key1: "solar",
		ebiten.Key2: "binary",
		ebiten.Key3: "chaos",
	} {
		if inpututil.IsKeyJustPressed(key) {
			g.loadScenario(simulation.Builtins[name]())
		}
	}

	// property edits for the selected body go through the simulator's edit
	// path so motion state survives the change
	if g.hasSelected {
		if b, ok := g.sim.ByID(g.selected); ok {
			switch {
			case inpututil.IsKeyJustPressed(ebiten.KeyK):
				g.editSelected(b, func(e *physics.Body) { e.SetMass(e.Mass * 1.1) })
			case inpututil.IsKeyJustPressed(ebiten.KeyJ):
				g.editSelected(b, func(e *physics.Body) { e.SetMass(e.Mass * 0.9) })
			case inpututil.IsKeyJustPressed(ebiten.KeyD):
				g.editSelected(b, func(e *physics.Body) { e.SetDensity(e.Density * 1.1) })
			case inpututil.IsKeyJustPressed(ebiten.KeyS):
				g.editSelected(b, func(e *physics.Body) { e.SetDensity(e.Density * 0.9) })
			case inpututil.IsKeyJustPressed(ebiten.KeyF):
				g.editSelected(b, func(e *physics.Body) { e.Fixed = !e.Fixed })
			}
		}
	}
}

func (g *Game) editSelected(b *physics.Body, mutate func(*physics.Body)) {
	e := b.Clone()
	mutate(e)
	g.sim.EditBodies([]*physics.Body{e})
}

func (g *Game) loadScenario(sc *simulation.Scenario) {
	g.sim.Config = sc.Config
	g.sim.Name = sc.Name
	g.sim.LoadScenario(sc.Bodies)
	g.hasSelected = false
}

func (g *Game) handleMouse() {
	mx, my := ebiten.CursorPosition()
	s := physics.Vec2{X: float64(mx), Y: float64(my)}

	// cursor off the surface cancels the gesture silently
	if mx < 0 || my < 0 || mx >= screenWidth || my >= screenHeight {
		g.ptr.Leave()
		g.mouseDown = false
		return
	}

	if _, wheelY := ebiten.Wheel(); wheelY != 0 {
		g.cam.ZoomAt(math.Pow(1.1, wheelY), s)
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		g.mouseDown = true
		if !g.clickButtons(mx, my) {
			g.ptr.Down(s)
		}
	} else if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) && g.mouseDown {
		g.ptr.Move(s)
	}
	if inpututil.IsMouseButtonJustReleased(ebiten.MouseButtonLeft) && g.mouseDown {
		g.mouseDown = false
		g.ptr.Up(s, g.sim.Bodies)
	}
}

func (g *Game) handleTouch() {
	g.touchIDs = ebiten.AppendTouchIDs(g.touchIDs[:0])
	g.touches = g.touches[:0]
	for _, id := range g.touchIDs {
		x, y := ebiten.TouchPosition(id)
		g.touches = append(g.touches, view.Touch{
			ID:  int64(id),
			Pos: physics.Vec2{X: float64(x), Y: float64(y)},
		})
	}
	g.touch.Frame(g.touches, g.sim.Bodies)
}

// clickButtons handles the top-right button row; returns true if the click
// landed on a button.
func (g *Game) clickButtons(mx, my int) bool {
	pauseX, stepX, resetX, modeX := buttonRow()
	switch {
	case pointInRect(mx, my, pauseX, uiBtnPad, uiBtnW, uiBtnH):
		if g.sim.Running {
			g.sim.Pause()
		} else {
			g.sim.Resume()
		}
	case pointInRect(mx, my, stepX, uiBtnPad, uiBtnW, uiBtnH):
		if !g.sim.Running {
			g.sim.StepOnce()
		}
	case pointInRect(mx, my, resetX, uiBtnPad, uiBtnW, uiBtnH):
		g.sim.Reset()
		g.hasSelected = false
	case pointInRect(mx, my, modeX, uiBtnPad, uiBtnW, uiBtnH):
		if g.ptr.Mode == view.ModeView {
			g.ptr.Mode = view.ModeCreate
		} else {
			g.ptr.Mode = view.ModeView
		}
	default:
		return false
	}
	return true
}

func buttonRow() (pauseX, stepX, resetX, modeX int) {
	pauseX = screenWidth - uiBtnPad - uiBtnW
	stepX = pauseX - uiBtnPad - uiBtnW
	resetX = stepX - uiBtnPad - uiBtnW
	modeX = resetX - uiBtnPad - uiBtnW
	return
}

func (g *Game) Draw(screen *ebiten.Image) {
	if g.sim.Config.ShowGrid {
		g.drawGrid(screen)
	}
	if g.sim.Config.ShowTrails {
		g.drawTrails(screen)
	}
	g.drawBodies(screen)
	g.drawGhost(screen)
	g.drawHUD(screen)
}

func (g *Game) drawGrid(screen *ebiten.Image) {
	cfg := g.sim.Config
	topLeft := g.cam.ScreenToWorld(physics.Vec2{})
	botRight := g.cam.ScreenToWorld(physics.Vec2{X: screenWidth, Y: screenHeight})

	// cosmetic shimmer driven by the decorative time accumulator
	pulse := cfg.WaveAmplitude * math.Sin(2*math.Pi*cfg.WaveFrequency*g.sim.Elapsed)
	alpha := uint8(math.Min(255, math.Max(0, 28+pulse)))
	clr := color.RGBA{70, 70, 90, alpha}

	x0 := math.Floor(topLeft.X/gridSpacing) * gridSpacing
	for x := x0; x <= botRight.X; x += gridSpacing {
		s := g.cam.WorldToScreen(physics.Vec2{X: x})
		vector.StrokeLine(screen, float32(s.X), 0, float32(s.X), screenHeight, 1, clr, false)
	}
	y0 := math.Floor(topLeft.Y/gridSpacing) * gridSpacing
	for y := y0; y <= botRight.Y; y += gridSpacing {
		s := g.cam.WorldToScreen(physics.Vec2{Y: y})
		vector.StrokeLine(screen, 0, float32(s.Y), screenWidth, float32(s.Y), 1, clr, false)
	}
}

func (g *Game) drawTrails(screen *ebiten.Image) {
	fade := g.sim.Config.TrailFade
	for _, b := range g.sim.Bodies {
		n := len(b.Trail)
		if n == 0 {
			continue
		}
		prev := g.cam.WorldToScreen(b.Trail[0])
		for i := 1; i <= n; i++ {
			var cur physics.Vec2
			if i == n {
				cur = g.cam.WorldToScreen(b.Pos)
			} else {
				cur = g.cam.WorldToScreen(b.Trail[i])
			}
			clr := b.ColorC
			if fade {
				clr.A = uint8(40 + 215*i/n)
			}
			vector.StrokeLine(screen, float32(prev.X), float32(prev.Y),
				float32(cur.X), float32(cur.Y), 1, clr, true)
			prev = cur
		}
	}
}

func (g *Game) drawBodies(screen *ebiten.Image) {
	for _, b := range g.sim.Bodies {
		s := g.cam.WorldToScreen(b.Pos)
		r := float32(b.Radius * g.cam.Zoom)
		if r < 1 {
			r = 1
		}
		vector.DrawFilledCircle(screen, float32(s.X), float32(s.Y), r, b.ColorC, true)
		if b.Fixed {
			vector.StrokeCircle(screen, float32(s.X), float32(s.Y), r+2, 1,
				color.RGBA{180, 180, 180, 220}, true)
		}
		if g.hasSelected && b.ID == g.selected {
			vector.StrokeCircle(screen, float32(s.X), float32(s.Y), r+4, 2,
				color.RGBA{255, 255, 255, 200}, true)
		}
	}
}

func (g *Game) drawGhost(screen *ebiten.Image) {
	start, end, active := g.ptr.CreatingGhost()
	if !active {
		return
	}
	s0 := g.cam.WorldToScreen(start)
	s1 := g.cam.WorldToScreen(end)
	r := float32(physics.RadiusFor(createMass, createDensity) * g.cam.Zoom)
	ghost := color.RGBA{200, 200, 255, 110}
	vector.DrawFilledCircle(screen, float32(s0.X), float32(s0.Y), r, ghost, true)
	drawArrow(screen, s0, s1, color.RGBA{255, 200, 0, 220})
}

// drawArrow draws a line with a small head at the tip.
func drawArrow(screen *ebiten.Image, from, to physics.Vec2, clr color.RGBA) {
	vector.StrokeLine(screen, float32(from.X), float32(from.Y),
		float32(to.X), float32(to.Y), 1, clr, true)
	d := to.Sub(from)
	l := d.Len()
	if l == 0 {
		return
	}
	u := d.Mul(1 / l)
	perp := physics.Vec2{X: -u.Y, Y: u.X}
	const sz = 10.0
	p1 := to.Sub(u.Mul(sz)).Add(perp.Mul(sz * 0.5))
	p2 := to.Sub(u.Mul(sz)).Sub(perp.Mul(sz * 0.5))
	vector.StrokeLine(screen, float32(to.X), float32(to.Y), float32(p1.X), float32(p1.Y), 1, clr, true)
	vector.StrokeLine(screen, float32(to.X), float32(to.Y), float32(p2.X), float32(p2.Y), 1, clr, true)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	mode := "view"
	if g.ptr.Mode == view.ModeCreate {
		mode = "create"
	}
	ebitenutil.DebugPrint(screen, fmt.Sprintf("Env: %s\nBodies: %d\nMode: %s\nZoom: %.2f\nPaused: %v",
		g.sim.Name, len(g.sim.Bodies), mode, g.cam.Zoom, !g.sim.Running))

	// buttons
	mx, my := ebiten.CursorPosition()
	pauseX, stepX, resetX, modeX := buttonRow()
	pauseLabel := "Pause"
	if !g.sim.Running {
		pauseLabel = "Resume"
	}
	modeLabel := "View"
	if g.ptr.Mode == view.ModeCreate {
		modeLabel = "Create"
	}
	drawButton(screen, pauseX, uiBtnPad, uiBtnW, uiBtnH, pauseLabel, !g.sim.Running, false,
		pointInRect(mx, my, pauseX, uiBtnPad, uiBtnW, uiBtnH))
	drawButton(screen, stepX, uiBtnPad, uiBtnW, uiBtnH, "Step", false, g.sim.Running,
		pointInRect(mx, my, stepX, uiBtnPad, uiBtnW, uiBtnH))
	drawButton(screen, resetX, uiBtnPad, uiBtnW, uiBtnH, "Reset", false, false,
		pointInRect(mx, my, resetX, uiBtnPad, uiBtnW, uiBtnH))
	drawButton(screen, modeX, uiBtnPad, uiBtnW, uiBtnH, modeLabel, g.ptr.Mode == view.ModeCreate, false,
		pointInRect(mx, my, modeX, uiBtnPad, uiBtnW, uiBtnH))

	if g.hasSelected {
		if b, ok := g.sim.ByID(g.selected); ok {
			lines := []string{
				fmt.Sprintf("Mass: %.3e", b.Mass),
				fmt.Sprintf("Density: %.2f", b.Density),
				fmt.Sprintf("Radius: %.2f", b.Radius),
				fmt.Sprintf("Pos: (%.1f, %.1f)", b.Pos.X, b.Pos.Y),
				fmt.Sprintf("Vel: (%.2f, %.2f)", b.Vel.X, b.Vel.Y),
				fmt.Sprintf("Fixed: %v", b.Fixed),
			}
			drawPanel(screen, 12, screenHeight-len(lines)*14-24, lines)
		}
	}

	if g.shortcutsVisible {
		drawPanel(screen, 12, 100, []string{
			"Space - pause/resume",
			"N - step (paused)",
			"R - reset",
			"C - view/create mode",
			"T - trails, G - grid",
			"1/2/3 - solar/binary/chaos",
			"K/J - mass +/- (selected)",
			"D/S - density +/- (selected)",
			"F - fix/unfix (selected)",
			"H - hide this panel",
		})
	}
}

func drawPanel(screen *ebiten.Image, x, y int, lines []string) {
	pad := 6
	charW := 7
	lineH := 14
	maxLen := 0
	for _, l := range lines {
		if len(l) > maxLen {
			maxLen = len(l)
		}
	}
	w := maxLen*charW + pad*2
	h := len(lines)*lineH + pad*2

	panel := ebiten.NewImage(w, h)
	panel.Fill(color.RGBA{10, 10, 20, 200})
	for i, l := range lines {
		text.Draw(panel, l, basicfont.Face7x13, pad, pad+(i+1)*lineH-2,
			color.RGBA{220, 220, 220, 255})
	}
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(panel, op)
}

func pointInRect(px, py, rx, ry, rw, rh int) bool {
	return px >= rx && px <= rx+rw && py >= ry && py <= ry+rh
}

func drawButton(screen *ebiten.Image, x, y, w, h int, label string, active, disabled, hover bool) {
	btn := ebiten.NewImage(w, h)
	bg := color.RGBA{20, 20, 20, 200}
	textColor := color.RGBA{240, 240, 240, 255}
	if disabled {
		bg = color.RGBA{60, 60, 60, 160}
		textColor = color.RGBA{160, 160, 160, 200}
	} else {
		if active {
			bg = color.RGBA{60, 120, 60, 220}
		}
		if hover {
			if active {
				bg = color.RGBA{100, 190, 100, 240}
			} else {
				bg = color.RGBA{90, 90, 90, 230}
			}
		}
	}
	btn.Fill(bg)
	charW := 7
	xText := (w - len(label)*charW) / 2
	yText := (h + 8) / 2
	text.Draw(btn, label, basicfont.Face7x13, xText, yText, textColor)
	op := &ebiten.DrawImageOptions{}
	op.GeoM.Translate(float64(x), float64(y))
	screen.DrawImage(btn, op)
}

// Layout keeps a fixed logical size; window resizes rescale the surface
// without touching camera or body state.
func (g *Game) Layout(_, _ int) (int, int) {
	return screenWidth, screenHeight
}

func main() {
	env := flag.String("env", "solar", "builtin scenario (solar, binary, chaos) or path to a scenario JSON file")
	flag.Parse()

	var sc *simulation.Scenario
	if gen, ok := simulation.Builtins[*env]; ok {
		sc = gen()
	} else if strings.HasSuffix(*env, ".json") {
		var err error
		sc, err = simulation.LoadScenarioFile(*env)
		if err != nil {
			log.Fatalf("loading scenario: %v", err)
		}
	} else {
		log.Fatalf("unknown scenario %q", *env)
	}

	ebiten.SetWindowSize(screenWidth, screenHeight)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	ebiten.SetWindowTitle("Orbital Mind - " + sc.Name)
	if err := ebiten.RunGame(newGame(sc)); err != nil {
		log.Fatal(err)
	}
}
