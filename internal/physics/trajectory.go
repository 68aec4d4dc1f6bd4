package physics

import (
	"math"
	"time"
)

// Launch path constants. Every firework climbs RiseHeight units along a
// straight line, travelling at Speed units per second along that line.
const (
	RiseHeight = 1000.0
	Speed      = 200.0
)

// Trajectory is the straight path from a launch point to a point RiseHeight
// above it, shifted horizontally by Drift. It is immutable once created.
type Trajectory struct {
	Launch Point
	Drift  float64
}

// NewTrajectory creates a trajectory starting at launch with the given drift.
func NewTrajectory(launch Point, drift float64) Trajectory {
	return Trajectory{Launch: launch, Drift: drift}
}

// PathLength returns the length of the straight launch path.
func (t Trajectory) PathLength() float64 {
	return math.Hypot(t.Drift, RiseHeight)
}

// TimeToRise returns how long the firework takes to cover the whole path.
func (t Trajectory) TimeToRise() time.Duration {
	return time.Duration(t.PathLength() / Speed * float64(time.Second))
}

// Progress returns the fraction of the path covered after elapsed, in [0, 1].
func (t Trajectory) Progress(elapsed time.Duration) float64 {
	if elapsed <= 0 {
		return 0
	}
	p := elapsed.Seconds() * Speed / t.PathLength()
	if p > 1 {
		return 1
	}
	return p
}

// PositionAt returns the position after elapsed time. Y grows monotonically
// until the full rise is reached; X reaches the full drift at the same moment.
func (t Trajectory) PositionAt(elapsed time.Duration) Point {
	p := t.Progress(elapsed)
	return Point{
		X: t.Launch.X + t.Drift*p,
		Y: t.Launch.Y + RiseHeight*p,
	}
}

// Heading returns the direction of travel in radians (0 = +X, pi/2 = +Y).
func (t Trajectory) Heading() float64 {
	return math.Atan2(RiseHeight, t.Drift)
}
