package object

import (
	"fmt"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// Color is the color tag of a firework. Only fireworks of one color can be
// selected at the same time.
type Color int

const (
	Cyan Color = iota
	Green
	Red
)

// ColorCount is the size of the palette a firework color is drawn from.
const ColorCount = 3

var colorNames = [ColorCount]string{"cyan", "green", "red"}

var colorValues = [ColorCount]colorful.Color{
	{R: 0, G: 1, B: 1},
	{R: 0, G: 1, B: 0},
	{R: 1, G: 0, B: 0},
}

// Background is the night sky the renderers clear to.
var Background = colorful.Color{R: 0.02, G: 0.02, B: 0.08}

// highlight is the color a selected rocket fades toward.
var highlight = colorful.Color{R: 1, G: 1, B: 1}

// String returns the lowercase color name.
func (c Color) String() string {
	if c < 0 || int(c) >= ColorCount {
		return fmt.Sprintf("Color(%d)", int(c))
	}
	return colorNames[c]
}

// RGB returns the display color of the tag.
func (c Color) RGB() colorful.Color {
	if c < 0 || int(c) >= ColorCount {
		return highlight
	}
	return colorValues[c]
}

// Display returns the color a renderer should use for a firework: its tag
// color, or a near-white tint of it while selected.
func (f *Firework) Display() colorful.Color {
	if f.Selected {
		return f.Color.RGB().BlendLab(highlight, 0.75).Clamped()
	}
	return f.Color.RGB()
}

// Fade blends c toward the background; t = 0 keeps c, t = 1 is the background.
func Fade(c colorful.Color, t float64) colorful.Color {
	if t <= 0 {
		return c
	}
	if t >= 1 {
		return Background
	}
	return c.BlendRgb(Background, t).Clamped()
}
