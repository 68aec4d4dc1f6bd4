package object

import (
	"testing"

	"github.com/tomz197/fireworks/internal/physics"
)

func TestSpawnBatchAlwaysFive(t *testing.T) {
	b := DefaultBounds()
	for p := Pattern(0); p < PatternCount; p++ {
		if got := len(SpawnBatch(p, b)); got != BatchSize {
			t.Errorf("%s: got %d descriptors, want %d", p, got, BatchSize)
		}
	}
}

func TestSpawnBatchUnknownPattern(t *testing.T) {
	if got := SpawnBatch(Pattern(9), DefaultBounds()); len(got) != 0 {
		t.Fatalf("unknown pattern yielded %d descriptors", len(got))
	}
}

func TestSpawnBatchLayouts(t *testing.T) {
	b := DefaultBounds()

	tests := []struct {
		pattern Pattern
		want    []Launch
	}{
		{
			pattern: PatternVerticalFan,
			want: []Launch{
				{Point: physics.Point{X: 512, Y: -22}},
				{Point: physics.Point{X: 312, Y: -22}},
				{Point: physics.Point{X: 412, Y: -22}},
				{Point: physics.Point{X: 612, Y: -22}},
				{Point: physics.Point{X: 712, Y: -22}},
			},
		},
		{
			pattern: PatternAngledFan,
			want: []Launch{
				{Point: physics.Point{X: 512, Y: -22}, Drift: 0},
				{Point: physics.Point{X: 312, Y: -22}, Drift: -200},
				{Point: physics.Point{X: 412, Y: -22}, Drift: -100},
				{Point: physics.Point{X: 612, Y: -22}, Drift: 100},
				{Point: physics.Point{X: 712, Y: -22}, Drift: 200},
			},
		},
		{
			pattern: PatternLeftSweep,
			want: []Launch{
				{Point: physics.Point{X: -22, Y: 378}, Drift: 1800},
				{Point: physics.Point{X: -22, Y: 278}, Drift: 1800},
				{Point: physics.Point{X: -22, Y: 178}, Drift: 1800},
				{Point: physics.Point{X: -22, Y: 78}, Drift: 1800},
				{Point: physics.Point{X: -22, Y: -22}, Drift: 1800},
			},
		},
		{
			pattern: PatternRightSweep,
			want: []Launch{
				{Point: physics.Point{X: 1046, Y: 378}, Drift: -1800},
				{Point: physics.Point{X: 1046, Y: 278}, Drift: -1800},
				{Point: physics.Point{X: 1046, Y: 178}, Drift: -1800},
				{Point: physics.Point{X: 1046, Y: 78}, Drift: -1800},
				{Point: physics.Point{X: 1046, Y: -22}, Drift: -1800},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.pattern.String(), func(t *testing.T) {
			got := SpawnBatch(tt.pattern, b)
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("descriptor %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}
