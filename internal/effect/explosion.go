// Package effect holds the purely visual effects the renderers draw around
// the fireworks field: expanding detonation rings and sparks.
package effect

import (
	"time"

	colorful "github.com/lucasb-eyer/go-colorful"
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Explosion timing and size.
const (
	ExplosionDuration = 900 * time.Millisecond
	ExplosionRadius   = 110.0
)

// Explosion is the expanding ring left where a firework detonated.
type Explosion struct {
	X, Y   float64
	Color  colorful.Color
	radius float64
	alpha  float64
	grow   *gween.Tween
	fade   *gween.Tween
	done   bool
}

// NewExplosion starts an explosion at (x, y).
func NewExplosion(x, y float64, c colorful.Color) *Explosion {
	d := float32(ExplosionDuration.Seconds())
	return &Explosion{
		X:     x,
		Y:     y,
		Color: c,
		alpha: 1,
		grow:  gween.New(0, ExplosionRadius, d, ease.OutCubic),
		fade:  gween.New(1, 0, d, ease.InQuad),
	}
}

// Update advances the explosion. Returns true once it has fully faded.
func (e *Explosion) Update(dt time.Duration) bool {
	if e.done {
		return true
	}
	sec := float32(dt.Seconds())
	r, grown := e.grow.Update(sec)
	a, faded := e.fade.Update(sec)
	e.radius = float64(r)
	e.alpha = float64(a)
	e.done = grown && faded
	return e.done
}

// Radius returns the current ring radius in world units.
func (e *Explosion) Radius() float64 {
	return e.radius
}

// Alpha returns the current opacity in [0, 1].
func (e *Explosion) Alpha() float64 {
	if e.alpha < 0 {
		return 0
	}
	return e.alpha
}

// Done reports whether the explosion has finished.
func (e *Explosion) Done() bool {
	return e.done
}

// UpdateExplosions advances every explosion and drops the finished ones.
func UpdateExplosions(list []*Explosion, dt time.Duration) []*Explosion {
	kept := list[:0]
	for _, e := range list {
		if !e.Update(dt) {
			kept = append(kept, e)
		}
	}
	for i := len(kept); i < len(list); i++ {
		list[i] = nil
	}
	return kept
}
