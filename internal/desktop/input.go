package desktop

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/tomz197/fireworks/internal/physics"
)

// frameInput is everything the player did during one tick.
type frameInput struct {
	Points   []physics.Point // held pointers, screen coordinates
	Tapped   bool            // a pointer went down this tick
	Detonate bool
	Pause    bool
	Restart  bool
	Clear    bool
}

// readInput polls ebiten. A held left button or finger selects under it
// every tick, so dragging across rockets gathers them. SPACE, the right
// button or a second finger landing detonates.
func (g *Game) readInput() frameInput {
	var in frameInput

	if ebiten.IsMouseButtonPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		in.Points = append(in.Points, physics.Point{X: float64(x), Y: float64(y)})
	}
	in.Tapped = inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft)

	g.touches = ebiten.AppendTouchIDs(g.touches[:0])
	g.pressed = inpututil.AppendJustPressedTouchIDs(g.pressed[:0])
	if len(g.touches) >= 2 && len(g.pressed) > 0 {
		in.Detonate = true
	} else {
		for _, id := range g.touches {
			x, y := ebiten.TouchPosition(id)
			in.Points = append(in.Points, physics.Point{X: float64(x), Y: float64(y)})
		}
		in.Tapped = in.Tapped || len(g.pressed) > 0
	}

	in.Detonate = in.Detonate ||
		inpututil.IsKeyJustPressed(ebiten.KeySpace) ||
		inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonRight)
	in.Pause = inpututil.IsKeyJustPressed(ebiten.KeyP)
	in.Restart = inpututil.IsKeyJustPressed(ebiten.KeyR)
	in.Clear = inpututil.IsKeyJustPressed(ebiten.KeyEscape)
	return in
}
