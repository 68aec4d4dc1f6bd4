// Package desktop runs the fireworks field in an ebiten window with mouse
// and touch input.
package desktop

import (
	"time"

	"github.com/charmbracelet/log"
	"github.com/hajimehoshi/ebiten/v2"

	"github.com/tomz197/fireworks/internal/effect"
	"github.com/tomz197/fireworks/internal/field"
	"github.com/tomz197/fireworks/internal/loop/config"
	"github.com/tomz197/fireworks/internal/physics"
)

type gameState int

const (
	stateStart gameState = iota
	statePlaying
	statePaused
)

// Options configures a desktop game.
type Options struct {
	Seed   int64       // 0 seeds from the clock
	Sink   field.Sink  // extra field listener, e.g. sound
	Logger *log.Logger // nil uses the default logger
}

// Game implements ebiten.Game.
type Game struct {
	field  *field.Field
	scene  *effect.Scene
	logger *log.Logger

	state     gameState
	best      int
	lastAward int

	touches []ebiten.TouchID
	pressed []ebiten.TouchID
}

var _ ebiten.Game = (*Game)(nil)

// New creates a game showing the title screen.
func New(opts Options) *Game {
	logger := opts.Logger
	if logger == nil {
		logger = log.Default()
	}

	scene := effect.NewScene(opts.Seed)
	var sink field.Sink = scene
	if opts.Sink != nil {
		sink = field.Multi(scene, opts.Sink)
	}

	return &Game{
		field: field.New(field.Options{
			Rand:   field.NewRand(opts.Seed),
			Sink:   sink,
			Logger: logger,
		}),
		scene:  scene,
		logger: logger,
	}
}

// Update is called by ebiten once per tick.
func (g *Game) Update() error {
	g.step(g.readInput(), time.Second/time.Duration(ebiten.TPS()))
	return nil
}

// Layout keeps the logical screen at the field's visible size.
func (g *Game) Layout(_, _ int) (int, int) {
	return config.ViewWidth, config.ViewHeight
}

// step applies one frame of input and advances the field by dt.
func (g *Game) step(in frameInput, dt time.Duration) {
	if dt > config.MaxFrameDelta {
		dt = config.MaxFrameDelta
	}

	switch g.state {
	case stateStart:
		g.advance(dt)
		if in.Detonate || in.Tapped {
			g.start()
		}

	case statePlaying:
		switch {
		case in.Pause:
			g.state = statePaused
			return
		case in.Restart:
			g.start()
			return
		}
		if in.Clear {
			g.field.ClearSelection()
		}
		for _, p := range in.Points {
			g.field.TrySelect(toField(p))
		}
		if in.Detonate {
			g.detonate()
		}
		g.advance(dt)

	case statePaused:
		switch {
		case in.Pause || in.Detonate:
			g.state = statePlaying
		case in.Restart:
			g.start()
		}
	}
}

func (g *Game) advance(dt time.Duration) {
	g.field.Tick(dt)
	g.scene.Update(dt)
}

func (g *Game) start() {
	g.field.Reset()
	g.scene.Reset()
	g.lastAward = 0
	g.state = statePlaying
	g.logger.Debug("round started")
}

func (g *Game) detonate() {
	delta := g.field.DetonateSelected()
	g.scene.ShowAward(delta)
	if delta == 0 {
		return
	}
	g.lastAward = delta
	if s := g.field.Score(); s > g.best {
		g.best = s
	}
}

// toField maps a screen point (y down) to field coordinates (y up).
func toField(p physics.Point) physics.Point {
	return physics.Point{X: p.X, Y: config.ViewHeight - p.Y}
}

// toScreen maps field coordinates to screen pixels.
func toScreen(x, y float64) (float32, float32) {
	return float32(x), float32(config.ViewHeight - y)
}
