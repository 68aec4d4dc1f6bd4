package client

import (
	"math"

	"github.com/tomz197/fireworks/internal/draw"
	"github.com/tomz197/fireworks/internal/effect"
	"github.com/tomz197/fireworks/internal/loop/config"
	"github.com/tomz197/fireworks/internal/object"
)

// toView maps field coordinates (y up) to canvas logical coordinates (y down).
func toView(x, y float64) draw.Point {
	return draw.Point{X: x, Y: config.ViewHeight - y}
}

// drawField paints the effects and rockets onto the canvas.
func (c *Client) drawField() {
	scene := c.scene

	for _, e := range scene.Explosions {
		c.canvas.SetPen(object.Fade(e.Color, 1-e.Alpha()))
		c.canvas.DrawCircle(toView(e.X, e.Y), e.Radius())
	}

	for _, s := range scene.Sparks {
		c.canvas.SetPen(object.Fade(s.Color, 1-s.Life()))
		p := toView(s.X, s.Y)
		c.canvas.SetFloat(p.X, p.Y)
	}

	for i := range scene.Live {
		c.drawRocket(&scene.Live[i])
	}
}

// drawRocket draws a firework as a filled triangle pointing along its path.
// Selected rockets blink between their highlight and their plain color.
func (c *Client) drawRocket(f *object.Firework) {
	col := f.Color.RGB()
	if f.Selected && effect.Blink(f.Elapsed.Seconds(), config.SelectedBlinkFreq) {
		col = f.Display()
	}
	c.canvas.SetPen(col)

	// Canvas y grows downward, so the on-screen angle is mirrored.
	angle := -f.Heading()
	size := config.RocketSize
	center := toView(f.X, f.Y)

	// Triangle vertices relative to center:
	// - Nose (front): in the direction of travel
	// - Wings: ~143° either side of the nose
	tri := c.canvas.BorrowPoints(3)
	tri[0] = draw.Point{X: center.X + math.Cos(angle)*size, Y: center.Y + math.Sin(angle)*size}
	tri[1] = draw.Point{X: center.X + math.Cos(angle+2.5)*size*0.7, Y: center.Y + math.Sin(angle+2.5)*size*0.7}
	tri[2] = draw.Point{X: center.X + math.Cos(angle-2.5)*size*0.7, Y: center.Y + math.Sin(angle-2.5)*size*0.7}

	c.canvas.DrawPolygon(tri, true)
}
