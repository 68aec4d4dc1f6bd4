package desktop

import (
	"fmt"
	"image/color"
	"math"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	colorful "github.com/lucasb-eyer/go-colorful"
	"golang.org/x/image/font/basicfont"

	"github.com/tomz197/fireworks/internal/effect"
	"github.com/tomz197/fireworks/internal/field"
	"github.com/tomz197/fireworks/internal/loop/config"
	"github.com/tomz197/fireworks/internal/object"
)

var (
	skyColor  = color.RGBA{R: 6, G: 8, B: 20, A: 255}
	textColor = color.RGBA{R: 230, G: 230, B: 230, A: 255}
	dimColor  = color.RGBA{R: 140, G: 140, B: 150, A: 255}
	gold      = color.RGBA{R: 255, G: 215, B: 0, A: 255}
)

var face = basicfont.Face7x13

// Draw is called by ebiten once per frame.
func (g *Game) Draw(screen *ebiten.Image) {
	screen.Fill(skyColor)
	g.drawField(screen)
	g.drawAwards(screen)

	switch g.state {
	case stateStart:
		drawCentered(screen, "F I R E W O R K S", config.ViewHeight/2-40, gold)
		drawCentered(screen, "Tap rockets of one color, then SPACE or right click to detonate.", config.ViewHeight/2, textColor)
		drawCentered(screen, "Click or press SPACE to start", config.ViewHeight/2+30, dimColor)
	case statePlaying:
		g.drawHUD(screen)
	case statePaused:
		g.drawHUD(screen)
		drawCentered(screen, "PAUSED", config.ViewHeight/2, gold)
		drawCentered(screen, "P or SPACE to resume, R to restart", config.ViewHeight/2+24, dimColor)
	}
}

func (g *Game) drawField(screen *ebiten.Image) {
	for _, e := range g.scene.Explosions {
		x, y := toScreen(e.X, e.Y)
		vector.StrokeCircle(screen, x, y, float32(e.Radius()), 3, withAlpha(e.Color, e.Alpha()), true)
	}

	for _, s := range g.scene.Sparks {
		x, y := toScreen(s.X, s.Y)
		vector.DrawFilledCircle(screen, x, y, 2, withAlpha(s.Color, s.Life()), true)
	}

	for i := range g.scene.Live {
		drawRocket(screen, &g.scene.Live[i])
	}
}

// drawRocket draws a rocket as a short stroke along its heading with a
// bright head. Selected rockets get a blinking ring.
func drawRocket(screen *ebiten.Image, f *object.Firework) {
	h := f.Heading()
	size := config.RocketSize
	hx, hy := toScreen(f.X+math.Cos(h)*size*0.5, f.Y+math.Sin(h)*size*0.5)
	tx, ty := toScreen(f.X-math.Cos(h)*size, f.Y-math.Sin(h)*size)

	c := f.Color.RGB()
	vector.StrokeLine(screen, tx, ty, hx, hy, 4, c, true)
	vector.DrawFilledCircle(screen, hx, hy, 5, f.Display(), true)

	if f.Selected && effect.Blink(f.Elapsed.Seconds(), config.SelectedBlinkFreq) {
		x, y := toScreen(f.X, f.Y)
		vector.StrokeCircle(screen, x, y, float32(size), 2, f.Display(), true)
	}
}

func (g *Game) drawAwards(screen *ebiten.Image) {
	for _, a := range g.scene.Awards {
		x, y := a.Pos()
		sx, sy := toScreen(x, y)
		label := fmt.Sprintf("+%d", a.Points)
		text.Draw(screen, label, face, int(sx)-len(label)*7/2, int(sy), withAlpha(colorful.Color{R: 1, G: 0.84}, a.Life()))
	}
}

func (g *Game) drawHUD(screen *ebiten.Image) {
	text.Draw(screen, fmt.Sprintf("SCORE %d", g.field.Score()), face, 12, 20, textColor)
	text.Draw(screen, fmt.Sprintf("BEST  %d", g.best), face, 12, 36, dimColor)
	if g.lastAward > 0 {
		text.Draw(screen, fmt.Sprintf("LAST  +%d", g.lastAward), face, 12, 52, dimColor)
	}

	if c, ok := g.field.SelectionColor(); ok {
		n := len(g.field.Selected())
		msg := fmt.Sprintf("%d %s selected: worth %d", n, c, field.Score(n))
		text.Draw(screen, msg, face, 12, config.ViewHeight-12, c.RGB())
	}

	next := field.Cadence - g.field.SinceLastLaunch()
	msg := fmt.Sprintf("next launch %.1fs", next.Seconds())
	text.Draw(screen, msg, face, config.ViewWidth-len(msg)*7-12, 20, dimColor)
}

func drawCentered(screen *ebiten.Image, s string, y int, c color.Color) {
	text.Draw(screen, s, face, (config.ViewWidth-len(s)*7)/2, y, c)
}

// withAlpha turns c into a straight-alpha color with opacity a.
func withAlpha(c colorful.Color, a float64) color.Color {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{R: r, G: g, B: b, A: uint8(math.Max(0, math.Min(1, a)) * 255)}
}
