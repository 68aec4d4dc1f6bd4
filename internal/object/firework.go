// Package object defines the entities of the fireworks field: fireworks,
// their colors, the field geometry and the fixed launch patterns.
package object

import (
	"time"

	"github.com/tomz197/fireworks/internal/physics"
)

// ID identifies one spawned firework. IDs are never reused within a field.
type ID uint64

// Firework is one rocket climbing along its trajectory.
type Firework struct {
	ID         ID
	Trajectory physics.Trajectory
	Color      Color
	Selected   bool
	Elapsed    time.Duration // time since launch
	X, Y       float64       // current position, derived from Trajectory
}

// NewFirework creates a firework at its launch point.
func NewFirework(id ID, launch physics.Point, drift float64, color Color) *Firework {
	return &Firework{
		ID:         id,
		Trajectory: physics.NewTrajectory(launch, drift),
		Color:      color,
		X:          launch.X,
		Y:          launch.Y,
	}
}

// Advance moves the firework dt further along its trajectory.
// Negative durations are ignored.
func (f *Firework) Advance(dt time.Duration) {
	if dt > 0 {
		f.Elapsed += dt
	}
	p := f.Trajectory.PositionAt(f.Elapsed)
	f.X, f.Y = p.X, p.Y
}

// MarkSelected flags the firework as part of the current selection.
func (f *Firework) MarkSelected() {
	f.Selected = true
}

// MarkUnselected clears the selection flag.
func (f *Firework) MarkUnselected() {
	f.Selected = false
}

// IsOffField reports whether the firework has climbed past the expiry line.
func (f *Firework) IsOffField(b Bounds) bool {
	return f.Y > b.ExpiryY
}

// Position returns the current position.
func (f *Firework) Position() physics.Point {
	return physics.Point{X: f.X, Y: f.Y}
}

// Heading returns the direction of travel in radians.
func (f *Firework) Heading() float64 {
	return f.Trajectory.Heading()
}
