package physics

import (
	"math"
	"testing"
	"time"
)

func approx(a, b float64) bool {
	return math.Abs(a-b) < 1e-6
}

func TestTrajectoryVerticalRise(t *testing.T) {
	tr := NewTrajectory(Point{X: 512, Y: -22}, 0)

	if got, want := tr.TimeToRise(), 5*time.Second; got != want {
		t.Fatalf("TimeToRise() = %v, want %v", got, want)
	}

	p := tr.PositionAt(time.Second)
	if !approx(p.X, 512) || !approx(p.Y, -22+200) {
		t.Fatalf("PositionAt(1s) = %+v, want (512, 178)", p)
	}
}

func TestTrajectoryReachesFullDriftWithFullRise(t *testing.T) {
	tr := NewTrajectory(Point{X: -22, Y: 78}, 1800)

	end := tr.PositionAt(tr.TimeToRise())
	if !approx(end.X, -22+1800) || !approx(end.Y, 78+RiseHeight) {
		t.Fatalf("end position = %+v, want (1778, 1078)", end)
	}

	half := tr.PositionAt(tr.TimeToRise() / 2)
	if !approx(half.X, -22+900) || !approx(half.Y, 78+500) {
		t.Fatalf("half-way position = %+v", half)
	}
}

func TestTrajectoryHoldsAfterRise(t *testing.T) {
	tr := NewTrajectory(Point{X: 100, Y: 0}, -200)
	late := tr.PositionAt(tr.TimeToRise() + 10*time.Second)
	if !approx(late.X, -100) || !approx(late.Y, RiseHeight) {
		t.Fatalf("position after rise = %+v, want (-100, %v)", late, RiseHeight)
	}
}

func TestTrajectoryNegativeElapsedIsLaunchPoint(t *testing.T) {
	tr := NewTrajectory(Point{X: 10, Y: 20}, 100)
	if got := tr.PositionAt(-time.Second); got != tr.Launch {
		t.Fatalf("PositionAt(-1s) = %+v, want launch point", got)
	}
}

func TestTrajectoryMonotonicY(t *testing.T) {
	tr := NewTrajectory(Point{X: 1046, Y: -22}, -1800)
	prev := tr.PositionAt(0).Y
	for ms := 16; ms < 12000; ms += 16 {
		y := tr.PositionAt(time.Duration(ms) * time.Millisecond).Y
		if y < prev {
			t.Fatalf("y decreased at %dms: %f < %f", ms, y, prev)
		}
		prev = y
	}
}

func TestTrajectoryHeading(t *testing.T) {
	if h := NewTrajectory(Point{}, 0).Heading(); !approx(h, math.Pi/2) {
		t.Fatalf("vertical heading = %f, want pi/2", h)
	}
	if h := NewTrajectory(Point{}, 1800).Heading(); h >= math.Pi/2 || h <= 0 {
		t.Fatalf("right sweep heading = %f, want in (0, pi/2)", h)
	}
}
