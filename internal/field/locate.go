package field

import (
	"github.com/tomz197/fireworks/internal/object"
	"github.com/tomz197/fireworks/internal/physics"
)

// DefaultHitRadius is how close a pointer must be to a rocket to grab it.
const DefaultHitRadius = 40.0

// Locator finds the live firework under a point.
type Locator interface {
	Locate(p physics.Point, live []*object.Firework) (object.ID, bool)
}

// RadiusLocator picks the nearest firework within Radius of the point.
// Candidates are narrowed with a spatial grid rebuilt on every lookup.
type RadiusLocator struct {
	Radius float64
	grid   *physics.SpatialGrid
}

// NewRadiusLocator creates a locator for fireworks inside b.
func NewRadiusLocator(b object.Bounds, radius float64) *RadiusLocator {
	if radius <= 0 {
		radius = DefaultHitRadius
	}
	return &RadiusLocator{
		Radius: radius,
		grid:   physics.NewSpatialGrid(b.Min(), b.Max(), radius),
	}
}

// Locate returns the id of the closest hit. Ties go to the newest firework,
// which is drawn on top.
func (l *RadiusLocator) Locate(p physics.Point, live []*object.Firework) (object.ID, bool) {
	l.grid.Clear()
	for i, f := range live {
		l.grid.Insert(f.X, f.Y, i)
	}

	best := -1
	bestDist := 0.0
	l.grid.QueryAround(p.X, p.Y, func(i int) bool {
		f := live[i]
		if !physics.PointInCircle(p.X, p.Y, f.X, f.Y, l.Radius) {
			return false
		}
		d := physics.DistanceSquared(p.X, p.Y, f.X, f.Y)
		if best < 0 || d < bestDist || (d == bestDist && i > best) {
			best, bestDist = i, d
		}
		return false
	})
	if best < 0 {
		return 0, false
	}
	return live[best].ID, true
}
