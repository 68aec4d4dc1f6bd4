package object

import (
	"fmt"

	"github.com/tomz197/fireworks/internal/physics"
)

// Pattern identifies one of the fixed launch layouts.
type Pattern int

const (
	PatternVerticalFan Pattern = iota // five rockets straight up
	PatternAngledFan                  // five rockets fanning outward
	PatternLeftSweep                  // five rockets from the left edge to the right
	PatternRightSweep                 // five rockets from the right edge to the left
)

// PatternCount is the number of launch patterns a random launch picks from.
const PatternCount = 4

// BatchSize is the number of fireworks every pattern launches.
const BatchSize = 5

// Launch pattern geometry.
const (
	fanSpacing   = 100.0
	sweepSpacing = 100.0
	sweepDrift   = 1800.0 // enough to cross the whole field
)

// Launch describes one firework to spawn.
type Launch struct {
	Point physics.Point
	Drift float64
}

var patternNames = [PatternCount]string{"vertical-fan", "angled-fan", "left-sweep", "right-sweep"}

// String returns the pattern name.
func (p Pattern) String() string {
	if p < 0 || int(p) >= PatternCount {
		return fmt.Sprintf("Pattern(%d)", int(p))
	}
	return patternNames[p]
}

// fanOffsets is the launch order of the fan patterns, relative to the center,
// in multiples of fanSpacing.
var fanOffsets = [BatchSize]float64{0, -2, -1, 1, 2}

// SpawnBatch returns the launch descriptors of pattern p for the given field.
// Every known pattern yields exactly BatchSize descriptors; unknown patterns
// yield none.
func SpawnBatch(p Pattern, b Bounds) []Launch {
	batch := make([]Launch, 0, BatchSize)

	switch p {
	case PatternVerticalFan:
		for _, off := range fanOffsets {
			batch = append(batch, Launch{
				Point: physics.Point{X: b.CenterX + off*fanSpacing, Y: b.Bottom},
			})
		}
	case PatternAngledFan:
		for _, off := range fanOffsets {
			batch = append(batch, Launch{
				Point: physics.Point{X: b.CenterX + off*fanSpacing, Y: b.Bottom},
				Drift: off * fanSpacing,
			})
		}
	case PatternLeftSweep:
		for i := BatchSize - 1; i >= 0; i-- {
			batch = append(batch, Launch{
				Point: physics.Point{X: b.Left, Y: b.Bottom + float64(i)*sweepSpacing},
				Drift: sweepDrift,
			})
		}
	case PatternRightSweep:
		for i := BatchSize - 1; i >= 0; i-- {
			batch = append(batch, Launch{
				Point: physics.Point{X: b.Right, Y: b.Bottom + float64(i)*sweepSpacing},
				Drift: -sweepDrift,
			})
		}
	}

	return batch
}
