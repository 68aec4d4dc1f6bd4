package object

import "github.com/tomz197/fireworks/internal/physics"

// Bounds describes the field geometry in world units. The visible area is
// Width x Height with the origin at the bottom-left; launch edges sit just
// outside it so rockets enter from off-screen.
type Bounds struct {
	Width   float64
	Height  float64
	Left    float64 // x of the left launch edge
	Right   float64 // x of the right launch edge
	Bottom  float64 // y of the bottom launch edge
	CenterX float64
	ExpiryY float64 // fireworks above this height are removed
}

// Field geometry defaults.
const (
	DefaultWidth   = 1024
	DefaultHeight  = 768
	EdgeMargin     = 22
	DefaultExpiryY = 900 // above the visible top
)

// DefaultBounds returns the standard 1024x768 field.
func DefaultBounds() Bounds {
	return Bounds{
		Width:   DefaultWidth,
		Height:  DefaultHeight,
		Left:    -EdgeMargin,
		Right:   DefaultWidth + EdgeMargin,
		Bottom:  -EdgeMargin,
		CenterX: DefaultWidth / 2,
		ExpiryY: DefaultExpiryY,
	}
}

// Min returns the lowest corner a live firework can occupy.
func (b Bounds) Min() physics.Point {
	return physics.Point{X: b.Left, Y: b.Bottom}
}

// Max returns the highest corner a live firework can occupy.
func (b Bounds) Max() physics.Point {
	return physics.Point{X: b.Right, Y: b.ExpiryY}
}
