package game

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	floorColor    = color.RGBA{R: 40, G: 40, B: 45, A: 255}
	wallColor     = color.RGBA{R: 60, G: 60, B: 70, A: 255}
	playerColor   = color.RGBA{R: 0, G: 255, B: 100, A: 255}
	bulletColor   = color.RGBA{R: 255, G: 255, B: 0, A: 255}
	deadColor     = color.RGBA{R: 70, G: 70, B: 70, A: 255}
	pathColor     = color.RGBA{R: 80, G: 160, B: 255, A: 160}
	rayColor      = color.RGBA{R: 255, G: 255, B: 0, A: 50}
	coneRayColor  = color.RGBA{R: 255, G: 255, B: 160, A: 36}
)

// stateColors maps awareness to the guard body tint.
var stateColors = map[GuardState]color.RGBA{
	StatePatrol:     {R: 255, G: 50, B: 50, A: 255},
	StateSuspicious: {R: 255, G: 200, B: 0, A: 255},
	StateAlerted:    {R: 255, G: 80, B: 0, A: 255},
	StateSearching:  {R: 255, G: 128, B: 0, A: 255},
}

// Draw renders the whole frame.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(floorColor)
	w := g.world

	for _, o := range w.Obstacles {
		vector.DrawFilledRect(screen,
			float32(o.MinX()), float32(o.MinY()),
			float32(o.W), float32(o.H), wallColor, false)
	}

	for _, gd := range w.Guards {
		g.drawGuard(screen, gd)
	}
	g.drawPlayer(screen)

	for _, b := range w.Bullets {
		vector.DrawFilledCircle(screen, float32(b.X), float32(b.Y), float32(b.Radius), bulletColor, true)
	}

	if g.showRays {
		g.drawRayScan(screen)
	}
	g.drawHUD(screen)
}

// drawGuard renders the vision cone (occluded per-ray), body, heading line,
// awareness fill bar, and optionally the current path.
func (g *Game) drawGuard(screen *ebiten.Image, gd *Guard) {
	if !gd.Alive {
		vector.DrawFilledCircle(screen, float32(gd.X), float32(gd.Y), float32(gd.Radius), deadColor, true)
		return
	}

	// Cone: one occlusion-clipped ray every few degrees.
	half := gd.Vision.FOVDeg / 2
	for a := -half; a <= half; a += 5 {
		angle := gd.Vision.FacingDeg + a
		dist, _ := CastRay(gd.X, gd.Y, angle, gd.Vision.Range, g.world.Obstacles)
		rad := angle * math.Pi / 180
		ex := gd.X + math.Cos(rad)*dist
		ey := gd.Y + math.Sin(rad)*dist
		ebitenutil.DrawLine(screen, gd.X, gd.Y, ex, ey, coneRayColor)
	}

	body := stateColors[gd.Awareness.State]
	vector.DrawFilledCircle(screen, float32(gd.X), float32(gd.Y), float32(gd.Radius), body, true)

	// Heading line.
	rad := gd.Vision.FacingDeg * math.Pi / 180
	hx := gd.X + math.Cos(rad)*gd.Radius*2
	hy := gd.Y + math.Sin(rad)*gd.Radius*2
	ebitenutil.DrawLine(screen, gd.X, gd.Y, hx, hy, color.RGBA{R: 255, G: 255, B: 255, A: 160})

	// Awareness fill bar above the head.
	if fill := gd.Awareness.Fill(); fill > 0 {
		barW := gd.Radius * 2
		y := gd.Y - gd.Radius - 8
		vector.DrawFilledRect(screen, float32(gd.X-barW/2), float32(y), float32(barW), 4,
			color.RGBA{R: 40, G: 40, B: 40, A: 200}, false)
		vector.DrawFilledRect(screen, float32(gd.X-barW/2), float32(y), float32(barW*fill), 4,
			color.RGBA{R: 255, G: uint8(255 * (1 - fill)), B: 0, A: 230}, false)
	}

	if g.showPaths {
		path := gd.Path()
		px, py := gd.X, gd.Y
		for i := gd.PathCursor(); i < len(path); i++ {
			ebitenutil.DrawLine(screen, px, py, path[i][0], path[i][1], pathColor)
			px, py = path[i][0], path[i][1]
		}
	}
}

func (g *Game) drawPlayer(screen *ebiten.Image) {
	p := g.world.Player
	c := playerColor
	if !p.Alive {
		c = deadColor
	}
	vector.DrawFilledCircle(screen, float32(p.X), float32(p.Y), float32(p.Radius), c, true)
}

// drawRayScan renders the player's sensor sweep.
func (g *Game) drawRayScan(screen *ebiten.Image) {
	p := g.world.Player
	dists := RayScan(p.X, p.Y, g.cfg.NumRays, g.cfg.RayMaxDistance, g.world.Obstacles)
	step := 360.0 / float64(len(dists))
	for i, d := range dists {
		rad := float64(i) * step * math.Pi / 180
		ebitenutil.DrawLine(screen, p.X, p.Y,
			p.X+math.Cos(rad)*d, p.Y+math.Sin(rad)*d, rayColor)
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	w := g.world
	alive := 0
	for _, gd := range w.Guards {
		if gd.Alive {
			alive++
		}
	}
	line := fmt.Sprintf("T=%d  guards=%d  alerted=%d  kills=%d  [P]aths [O]rays [C]opy",
		w.Tick, alive, w.AlertedCount(), w.Player.Kills)
	ebitenutil.DebugPrintAt(screen, line, 20, 20)

	if !g.started {
		ebitenutil.DebugPrintAt(screen, "move to start", int(g.cfg.WorldWidth)/2-40, int(g.cfg.WorldHeight)/2)
	}
	if w.Outcome != OutcomeRunning {
		msg := fmt.Sprintf("episode over: %s  [Enter] restart", w.Outcome)
		ebitenutil.DebugPrintAt(screen, msg, int(g.cfg.WorldWidth)/2-80, int(g.cfg.WorldHeight)/2)
	}
}
