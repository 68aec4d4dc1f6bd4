package field

import (
	"testing"
	"time"

	"github.com/tomz197/fireworks/internal/object"
	"github.com/tomz197/fireworks/internal/physics"
)

// scriptedRand replays vals in order, wrapping around.
type scriptedRand struct {
	vals []int
	i    int
}

func (s *scriptedRand) Intn(n int) int {
	v := s.vals[s.i%len(s.vals)] % n
	s.i++
	return v
}

func newTestField(rec *Recorder, vals ...int) *Field {
	if len(vals) == 0 {
		vals = []int{0}
	}
	return New(Options{Rand: &scriptedRand{vals: vals}, Sink: rec})
}

func TestScore(t *testing.T) {
	want := []int{0, 200, 500, 1500, 2500, 4000, 4000}
	for n, w := range want {
		if got := Score(n); got != w {
			t.Errorf("Score(%d) = %d, want %d", n, got, w)
		}
	}
	if got := Score(-3); got != 0 {
		t.Errorf("Score(-3) = %d, want 0", got)
	}
	if got := Score(100); got != 4000 {
		t.Errorf("Score(100) = %d, want 4000", got)
	}
}

func TestLaunchColorsAndIDs(t *testing.T) {
	rec := &Recorder{}
	f := newTestField(rec, 0, 1, 2, 0, 1)

	f.Launch(object.PatternVerticalFan)

	live := f.Fireworks()
	if len(live) != 5 {
		t.Fatalf("len = %d, want 5", len(live))
	}
	wantColors := []object.Color{object.Cyan, object.Green, object.Red, object.Cyan, object.Green}
	wantX := []float64{512, 312, 412, 612, 712}
	for i, fw := range live {
		if fw.ID != object.ID(i+1) {
			t.Errorf("fw[%d].ID = %d, want %d", i, fw.ID, i+1)
		}
		if fw.Color != wantColors[i] {
			t.Errorf("fw[%d].Color = %s, want %s", i, fw.Color, wantColors[i])
		}
		if fw.X != wantX[i] || fw.Y != -22 {
			t.Errorf("fw[%d] at (%v,%v), want (%v,-22)", i, fw.X, fw.Y, wantX[i])
		}
	}
	if got := rec.Count(EventLaunched); got != 5 {
		t.Errorf("launched events = %d, want 5", got)
	}
}

func TestLaunchRandomPicksPatternThenColors(t *testing.T) {
	rec := &Recorder{}
	f := newTestField(rec, 3, 2, 2, 2, 2, 2)

	f.LaunchRandom()

	live := f.Fireworks()
	if len(live) != 5 {
		t.Fatalf("len = %d, want 5", len(live))
	}
	for i, fw := range live {
		if fw.X != 1046 {
			t.Errorf("fw[%d].X = %v, want right edge 1046", i, fw.X)
		}
		if fw.Trajectory.Drift != -1800 {
			t.Errorf("fw[%d] drift = %v, want -1800", i, fw.Trajectory.Drift)
		}
		if fw.Color != object.Red {
			t.Errorf("fw[%d].Color = %s, want red", i, fw.Color)
		}
	}
}

func TestTickCadence(t *testing.T) {
	rec := &Recorder{}
	f := newTestField(rec)

	for i := 0; i < 5; i++ {
		f.Tick(time.Second)
	}
	f.Tick(999 * time.Millisecond)
	if f.Len() != 0 {
		t.Fatalf("spawned %d fireworks before cadence", f.Len())
	}

	f.Tick(time.Millisecond)
	if f.Len() != 5 {
		t.Fatalf("len = %d after cadence, want 5", f.Len())
	}
	if f.SinceLastLaunch() != 0 {
		t.Errorf("timer = %v after launch, want 0", f.SinceLastLaunch())
	}
	if rec.Frames != 7 {
		t.Errorf("frames = %d, want 7", rec.Frames)
	}
	if len(rec.LastFrame) != 5 {
		t.Errorf("last frame holds %d fireworks, want 5", len(rec.LastFrame))
	}
}

func TestTickExpiresSilently(t *testing.T) {
	rec := &Recorder{}
	f := newTestField(rec)
	f.Launch(object.PatternVerticalFan)

	f.Tick(4700 * time.Millisecond)

	if f.Len() != 0 {
		t.Fatalf("len = %d, want all expired", f.Len())
	}
	if got := rec.Count(EventExpired); got != 5 {
		t.Errorf("expired events = %d, want 5", got)
	}
	if got := rec.Count(EventExploded); got != 0 {
		t.Errorf("exploded events = %d, want 0", got)
	}
	if f.Score() != 0 {
		t.Errorf("score = %d, want 0", f.Score())
	}
}

func TestTickExpiresBeforeLaunching(t *testing.T) {
	rec := &Recorder{}
	f := newTestField(rec)
	f.Launch(object.PatternVerticalFan)
	f.Select(1)

	// One tick both expires the first batch and fires the launch timer.
	f.Tick(Cadence)

	if got := rec.Count(EventExpired); got != 5 {
		t.Errorf("expired events = %d, want 5", got)
	}
	if got := rec.Count(EventLaunched); got != 10 {
		t.Errorf("launched events = %d, want 10", got)
	}
	live := f.Fireworks()
	if len(live) != 5 {
		t.Fatalf("len = %d, want the 5 new fireworks", len(live))
	}
	for i, fw := range live {
		if fw.ID != object.ID(i+6) {
			t.Errorf("fw[%d].ID = %d, want %d", i, fw.ID, i+6)
		}
		if fw.Y != -22 {
			t.Errorf("fw %d at y=%v, want the launch line -22", fw.ID, fw.Y)
		}
	}
	if got := f.Selected(); len(got) != 0 {
		t.Errorf("selected = %v, want empty after its firework expired", got)
	}
	if len(rec.LastFrame) != 5 {
		t.Errorf("frame holds %d fireworks, want 5", len(rec.LastFrame))
	}
}

func TestTickNeverLeavesFireworksPastExpiry(t *testing.T) {
	f := newTestField(&Recorder{}, 0, 1, 2, 3, 1, 2, 0)
	for i := 0; i < 600; i++ {
		f.Tick(50 * time.Millisecond)
		for _, fw := range f.Fireworks() {
			if fw.Y > f.Bounds().ExpiryY {
				t.Fatalf("tick %d: firework %d at y=%v", i, fw.ID, fw.Y)
			}
		}
	}
}

func TestTickNegativeDelta(t *testing.T) {
	f := newTestField(&Recorder{})
	f.Launch(object.PatternVerticalFan)
	f.Tick(time.Second)
	before := f.Fireworks()

	f.Tick(-time.Second)

	after := f.Fireworks()
	for i := range before {
		if before[i].Y != after[i].Y {
			t.Errorf("fw[%d] moved on negative dt: %v -> %v", i, before[i].Y, after[i].Y)
		}
	}
	if f.SinceLastLaunch() != time.Second {
		t.Errorf("timer = %v, want 1s", f.SinceLastLaunch())
	}
}

func TestExpiredSelectedLeavesSelection(t *testing.T) {
	f := newTestField(&Recorder{}, 0)
	f.Launch(object.PatternVerticalFan)
	f.Select(1)
	f.Select(2)

	f.Tick(4700 * time.Millisecond)

	if got := f.Selected(); len(got) != 0 {
		t.Errorf("selected = %v, want empty", got)
	}
	if _, ok := f.SelectionColor(); ok {
		t.Error("selection color still set after its group expired")
	}
}

func TestSelectDifferentColorRestartsGroup(t *testing.T) {
	f := newTestField(&Recorder{}, 0, 0, 1, 0, 2)
	f.Launch(object.PatternVerticalFan)

	f.Select(1)
	f.Select(2)
	if got := f.Selected(); len(got) != 2 {
		t.Fatalf("selected = %v, want two cyan", got)
	}

	if !f.Select(3) {
		t.Fatal("Select(3) missed a live firework")
	}
	got := f.Selected()
	if len(got) != 1 || got[0] != 3 {
		t.Errorf("selected = %v, want [3]", got)
	}
	if c, ok := f.SelectionColor(); !ok || c != object.Green {
		t.Errorf("selection color = %s,%t, want green", c, ok)
	}
	for _, fw := range f.Fireworks() {
		if fw.Selected != (fw.ID == 3) {
			t.Errorf("fw %d selected = %t", fw.ID, fw.Selected)
		}
	}
}

func TestSelectSameColorAccumulates(t *testing.T) {
	f := newTestField(&Recorder{}, 0, 1, 0, 1, 0)
	f.Launch(object.PatternVerticalFan)

	f.Select(1)
	f.Select(3)
	f.Select(5)

	got := f.Selected()
	if len(got) != 3 || got[0] != 1 || got[1] != 3 || got[2] != 5 {
		t.Errorf("selected = %v, want [1 3 5]", got)
	}
}

func TestSelectUnknownID(t *testing.T) {
	f := newTestField(&Recorder{})
	f.Launch(object.PatternVerticalFan)
	if f.Select(99) {
		t.Error("Select(99) reported a hit")
	}
	if len(f.Selected()) != 0 {
		t.Error("unknown id changed the selection")
	}
}

func TestTrySelectIdempotent(t *testing.T) {
	f := newTestField(&Recorder{})
	f.Launch(object.PatternVerticalFan)
	p := physics.Point{X: 512, Y: -22}

	if !f.TrySelect(p) {
		t.Fatal("first TrySelect missed")
	}
	if !f.TrySelect(p) {
		t.Fatal("second TrySelect missed")
	}
	got := f.Selected()
	if len(got) != 1 || got[0] != 1 {
		t.Errorf("selected = %v, want [1]", got)
	}
}

func TestTrySelectMiss(t *testing.T) {
	f := newTestField(&Recorder{})
	f.Launch(object.PatternVerticalFan)

	if f.TrySelect(physics.Point{X: 560, Y: -22}) {
		t.Error("TrySelect between rockets reported a hit")
	}
	if f.TrySelect(physics.Point{X: 512, Y: 500}) {
		t.Error("TrySelect far above rockets reported a hit")
	}
	if len(f.Selected()) != 0 {
		t.Error("a miss changed the selection")
	}
}

func TestDetonateThree(t *testing.T) {
	rec := &Recorder{}
	f := newTestField(rec, 2)
	f.Launch(object.PatternVerticalFan)
	f.Select(1)
	f.Select(3)
	f.Select(4)

	delta := f.DetonateSelected()

	if delta != 1500 {
		t.Errorf("delta = %d, want 1500", delta)
	}
	if f.Score() != 1500 {
		t.Errorf("score = %d, want 1500", f.Score())
	}
	live := f.Fireworks()
	if len(live) != 2 || live[0].ID != 2 || live[1].ID != 5 {
		t.Errorf("survivors = %+v, want ids 2 and 5", live)
	}
	if got := rec.Count(EventExploded); got != 3 {
		t.Errorf("exploded events = %d, want 3", got)
	}
	if len(f.Selected()) != 0 {
		t.Error("selection not cleared after detonation")
	}
	if _, ok := f.SelectionColor(); ok {
		t.Error("selection color kept after detonation")
	}
}

func TestDetonateNothing(t *testing.T) {
	rec := &Recorder{}
	f := newTestField(rec)
	f.Launch(object.PatternAngledFan)
	before := f.Fireworks()

	if got := f.DetonateSelected(); got != 0 {
		t.Errorf("delta = %d, want 0", got)
	}
	after := f.Fireworks()
	if len(after) != len(before) {
		t.Fatalf("len %d -> %d", len(before), len(after))
	}
	for i := range before {
		if before[i].ID != after[i].ID {
			t.Errorf("fw[%d] id %d -> %d", i, before[i].ID, after[i].ID)
		}
	}
	if rec.Count(EventExploded) != 0 {
		t.Error("exploded events on empty detonation")
	}
}

func TestClearSelection(t *testing.T) {
	f := newTestField(&Recorder{})
	f.Launch(object.PatternVerticalFan)
	f.Select(1)
	f.Select(2)

	f.ClearSelection()

	if len(f.Selected()) != 0 {
		t.Error("selection not cleared")
	}
	for _, fw := range f.Fireworks() {
		if fw.Selected {
			t.Errorf("fw %d still flagged selected", fw.ID)
		}
	}
	if f.DetonateSelected() != 0 {
		t.Error("detonation after clear scored")
	}
}

func TestResetKeepsIDsMonotonic(t *testing.T) {
	f := newTestField(&Recorder{})
	f.Launch(object.PatternVerticalFan)
	f.Select(1)
	f.DetonateSelected()

	f.Reset()
	if f.Len() != 0 || f.Score() != 0 || f.SinceLastLaunch() != 0 {
		t.Fatalf("reset left len=%d score=%d timer=%v", f.Len(), f.Score(), f.SinceLastLaunch())
	}

	f.Launch(object.PatternVerticalFan)
	if got := f.Fireworks()[0].ID; got != 6 {
		t.Errorf("first id after reset = %d, want 6", got)
	}
}

func TestFireworksReturnsCopy(t *testing.T) {
	f := newTestField(&Recorder{})
	f.Launch(object.PatternVerticalFan)

	live := f.Fireworks()
	live[0].Selected = true
	live[0].Y = 5000

	if f.Fireworks()[0].Selected || f.Fireworks()[0].Y == 5000 {
		t.Error("mutating the snapshot changed the field")
	}
}

func TestCheckSelectionPanicsOnMismatch(t *testing.T) {
	f := newTestField(&Recorder{})
	f.Launch(object.PatternVerticalFan)
	f.fireworks[0].Selected = true

	defer func() {
		if recover() == nil {
			t.Error("checkSelection did not panic")
		}
	}()
	f.checkSelection()
}

func TestCheckSelectionPanicsOnStaleID(t *testing.T) {
	f := newTestField(&Recorder{})
	f.Launch(object.PatternVerticalFan)
	f.Select(1)
	f.sel.ids = append(f.sel.ids[:0], 99)

	defer func() {
		if recover() == nil {
			t.Error("checkSelection accepted a group id with no live firework")
		}
	}()
	f.checkSelection()
}

func TestCheckSelectionPanicsOnDuplicateID(t *testing.T) {
	f := newTestField(&Recorder{})
	f.Launch(object.PatternVerticalFan)
	f.Select(1)
	f.Select(2)
	f.sel.ids[1] = 1

	defer func() {
		if recover() == nil {
			t.Error("checkSelection accepted a group listing one firework twice")
		}
	}()
	f.checkSelection()
}

// reentrantSink selects the next live firework from inside Exploded.
type reentrantSink struct {
	NopSink
	f        *Field
	exploded []object.ID
}

func (s *reentrantSink) Exploded(fw object.Firework) {
	s.exploded = append(s.exploded, fw.ID)
	s.f.TrySelect(physics.Point{X: 712, Y: -22})
}

func TestSinkMayReenterOnDetonate(t *testing.T) {
	sink := &reentrantSink{}
	f := New(Options{Rand: &scriptedRand{vals: []int{0}}, Sink: sink})
	sink.f = f
	f.Launch(object.PatternVerticalFan)
	f.Select(1)
	f.Select(2)

	if got := f.DetonateSelected(); got != 500 {
		t.Fatalf("delta = %d, want 500", got)
	}
	if len(sink.exploded) != 2 {
		t.Fatalf("exploded = %v, want two", sink.exploded)
	}
	// The callback's selection survives: the field had already cleared the
	// detonated group when it notified the sink.
	if got := f.Selected(); len(got) != 1 || got[0] != 5 {
		t.Errorf("selected = %v, want [5]", got)
	}
	if f.Len() != 3 || f.Score() != 500 {
		t.Errorf("len %d score %d, want 3 and 500", f.Len(), f.Score())
	}
}

func TestDefaults(t *testing.T) {
	f := New(Options{})
	if f.Bounds() != object.DefaultBounds() {
		t.Errorf("bounds = %+v", f.Bounds())
	}
	f.Tick(Cadence)
	if f.Len() != object.BatchSize {
		t.Errorf("len = %d after one cadence, want %d", f.Len(), object.BatchSize)
	}
}
