// Package desktop runs a World in an ebiten window.
package desktop

import (
	"fmt"
	"image/color"
	"io"
	"math"
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/tomz197/spaceshoot/internal/audio"
	"github.com/tomz197/spaceshoot/internal/game"
	"github.com/tomz197/spaceshoot/internal/loop/config"
	"github.com/tomz197/spaceshoot/internal/object"
)

// Window defaults.
const (
	ScreenWidth  = 1024
	ScreenHeight = 768
)

type phase int

const (
	phaseTitle phase = iota
	phasePlaying
	phasePaused
	phaseOver
)

var (
	colorBackground  = color.RGBA{R: 8, G: 8, B: 18, A: 255}
	colorPlayer      = color.RGBA{R: 120, G: 200, B: 255, A: 255}
	colorAim         = color.RGBA{R: 90, G: 140, B: 180, A: 255}
	colorBullet      = color.RGBA{R: 255, G: 230, B: 90, A: 255}
	colorEnemyBullet = color.RGBA{R: 255, G: 90, B: 200, A: 255}
	colorHUDBar      = color.RGBA{R: 40, G: 40, B: 60, A: 255}
)

// Game implements ebiten.Game around one World.
type Game struct {
	world  *game.World
	cam    *Camera
	cues   audio.Cues
	logger *log.Logger
	phase  phase
	best   int
}

// NewGame creates a desktop game. cues and logger may be nil.
func NewGame(world *game.World, cues audio.Cues, logger *log.Logger) *Game {
	if cues == nil {
		cues = audio.Nop{}
	}
	if logger == nil {
		logger = log.New(io.Discard)
	}
	g := &Game{
		world:  world,
		cam:    NewCamera(ScreenWidth, ScreenHeight, config.HalfHeight),
		cues:   cues,
		logger: logger,
	}
	g.syncView()
	return g
}

// Update advances one tick. ebiten calls it at the configured TPS.
func (g *Game) Update() error {
	if ebiten.IsKeyPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}

	switch g.phase {
	case phaseTitle, phaseOver:
		if inpututil.IsKeyJustPressed(ebiten.KeyEnter) || inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			g.start()
		}
	case phasePaused:
		if inpututil.IsKeyJustPressed(ebiten.KeyP) || inpututil.IsKeyJustPressed(ebiten.KeyEscape) {
			g.phase = phasePlaying
		}
	case phasePlaying:
		if inpututil.IsKeyJustPressed(ebiten.KeyP) {
			g.phase = phasePaused
			return nil
		}
		g.tick(g.poll())
	}
	return nil
}

func (g *Game) poll() controls {
	cx, cy := ebiten.CursorPosition()
	return controls{
		left:         ebiten.IsKeyPressed(ebiten.KeyA),
		right:        ebiten.IsKeyPressed(ebiten.KeyD),
		up:           ebiten.IsKeyPressed(ebiten.KeyW),
		down:         ebiten.IsKeyPressed(ebiten.KeyS),
		fire:         ebiten.IsKeyPressed(ebiten.KeySpace) || ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft),
		cursorX:      cx,
		cursorY:      cy,
		cursorInside: cx >= 0 && cy >= 0 && float64(cx) < g.cam.Width && float64(cy) < g.cam.Height,
	}
}

func (g *Game) tick(c controls) {
	p := g.world.Player()
	g.cam.X, g.cam.Y = p.X, p.Y
	g.world.AdvanceOneTick(intentFor(c, g.cam))
	audio.Play(g.cues, g.world.Events())

	if g.world.Over() {
		prog := g.world.Progress()
		g.best = max(g.best, prog.Score)
		g.phase = phaseOver
		g.logger.Info("run over", "score", prog.Score, "level", prog.Level, "seconds", prog.ElapsedSeconds)
	}
}

func (g *Game) start() {
	seed := uint64(time.Now().UnixNano())
	g.world.InitializeRun(seed)
	g.phase = phasePlaying
	g.logger.Info("run started", "seed", seed)
}

func (g *Game) syncView() {
	hw, hh := g.cam.HalfExtents()
	g.world.SetView(game.View{HalfWidth: hw, HalfHeight: hh})
}

// Layout tracks the window size; the visible world height stays fixed.
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if float64(outsideWidth) != g.cam.Width || float64(outsideHeight) != g.cam.Height {
		g.cam.Resize(float64(outsideWidth), float64(outsideHeight), config.HalfHeight)
		g.syncView()
	}
	return outsideWidth, outsideHeight
}

// Draw renders the world and HUD.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(colorBackground)

	if g.phase != phaseTitle {
		p := g.world.Player()
		g.cam.X, g.cam.Y = p.X, p.Y
		g.drawWorld(screen)
		g.drawHUD(screen)
	}

	w, h := int(g.cam.Width), int(g.cam.Height)
	switch g.phase {
	case phaseTitle:
		ebitenutil.DebugPrintAt(screen, "SPACE SHOOT", w/2-33, h/2-40)
		ebitenutil.DebugPrintAt(screen, "WASD move, mouse aim, SPACE/click fire, P pause, Q quit", w/2-165, h/2-10)
		ebitenutil.DebugPrintAt(screen, "Press SPACE to start", w/2-60, h/2+20)
	case phasePaused:
		ebitenutil.DebugPrintAt(screen, "PAUSED - press P to resume", w/2-78, h/2)
	case phaseOver:
		prog := g.world.Progress()
		msg := fmt.Sprintf("GAME OVER  score %d  level %d  best %d", prog.Score, prog.Level, g.best)
		ebitenutil.DebugPrintAt(screen, msg, w/2-len(msg)*3, h/2-10)
		ebitenutil.DebugPrintAt(screen, "Press ENTER to restart", w/2-66, h/2+10)
	}
}

func (g *Game) circle(screen *ebiten.Image, x, y, r float64, clr color.Color) {
	sx, sy := g.cam.WorldToScreen(x, y)
	vector.DrawFilledCircle(screen, float32(sx), float32(sy), float32(max(r*g.cam.Scale, 1)), clr, true)
}

func (g *Game) ring(screen *ebiten.Image, x, y, r, width float64, clr color.Color) {
	sx, sy := g.cam.WorldToScreen(x, y)
	vector.StrokeCircle(screen, float32(sx), float32(sy), float32(r*g.cam.Scale), float32(width), clr, true)
}

func (g *Game) line(screen *ebiten.Image, x1, y1, x2, y2, width float64, clr color.Color) {
	sx1, sy1 := g.cam.WorldToScreen(x1, y1)
	sx2, sy2 := g.cam.WorldToScreen(x2, y2)
	vector.StrokeLine(screen, float32(sx1), float32(sy1), float32(sx2), float32(sy2), float32(width), clr, true)
}

func (g *Game) drawWorld(screen *ebiten.Image) {
	w := g.world
	for _, m := range w.Impacts() {
		a := uint8(255 * math.Max(0, math.Min(1, m.Life)))
		g.ring(screen, m.X, m.Y, m.Radius(), 2, color.RGBA{R: 255, G: 150, B: 40, A: a})
	}
	for i := range w.Enemies() {
		e := &w.Enemies()[i]
		r, gr, b := e.Color.RGBA8()
		clr := color.RGBA{R: r, G: gr, B: b, A: 255}
		g.circle(screen, e.X, e.Y, e.Radius, clr)
		if e.Kind == object.KindSquid {
			g.ring(screen, e.X, e.Y, e.Radius*1.25, 1.5, clr)
		}
	}
	for _, b := range w.EnemyBullets() {
		g.circle(screen, b.X, b.Y, 0.03, colorEnemyBullet)
	}
	for _, b := range w.PlayerBullets() {
		g.line(screen, b.X, b.Y, b.X-b.VX, b.Y-b.VY, 2, colorBullet)
	}

	p := w.Player()
	if !p.Alive() || !object.ShouldRenderBlink(p.Invuln, config.PlayerBlinkFrames) {
		return
	}
	g.line(screen, p.X, p.Y, p.X+p.AimX*config.AimLineLength, p.Y+p.AimY*config.AimLineLength, 2, colorAim)
	flash := 0.0
	for _, f := range p.Flash {
		flash = math.Max(flash, f)
	}
	body := color.RGBA{
		R: uint8(float64(colorPlayer.R) + (255-float64(colorPlayer.R))*flash),
		G: uint8(float64(colorPlayer.G) * (1 - 0.7*flash)),
		B: uint8(float64(colorPlayer.B) * (1 - 0.8*flash)),
		A: 255,
	}
	g.circle(screen, p.X, p.Y, p.Radius, body)
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	prog := g.world.Progress()
	p := g.world.Player()

	hud := fmt.Sprintf("Score %d   Level %d   Next %d/%d   Time %02d:%02d   Swarm %d",
		prog.Score, prog.Level, prog.KillsInLevel, prog.KillsNeeded,
		prog.ElapsedSeconds/60, prog.ElapsedSeconds%60, len(g.world.Enemies()))
	ebitenutil.DebugPrintAt(screen, hud, 8, 6)

	const barW, barH = 200, 10
	x := float32(g.cam.Width) - barW - 12
	vector.DrawFilledRect(screen, x, 8, barW, barH, colorHUDBar, false)
	if p.MaxHP > 0 {
		fill := barW * float32(p.HP) / float32(p.MaxHP)
		vector.DrawFilledRect(screen, x, 8, fill, barH, colorPlayer, false)
	}
}

// Run opens the window and blocks until it closes.
func Run(g *Game, title string) error {
	ebiten.SetWindowSize(ScreenWidth, ScreenHeight)
	ebiten.SetWindowTitle(title)
	ebiten.SetWindowResizable(true)
	ebiten.SetTPS(config.TickRate)
	return ebiten.RunGame(g)
}
