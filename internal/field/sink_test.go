package field

import (
	"testing"

	"github.com/tomz197/fireworks/internal/object"
)

func TestMultiFansOut(t *testing.T) {
	a, b := &Recorder{}, &Recorder{}
	s := Multi(a, b, NopSink{})

	fw := *object.NewFirework(7, object.DefaultBounds().Min(), 0, object.Green)
	s.Launched(fw)
	s.Exploded(fw)
	s.Expired(fw)
	s.Frame([]object.Firework{fw})

	for name, r := range map[string]*Recorder{"a": a, "b": b} {
		if len(r.Events) != 3 {
			t.Errorf("%s: events = %d, want 3", name, len(r.Events))
		}
		if r.Frames != 1 || len(r.LastFrame) != 1 || r.LastFrame[0].ID != 7 {
			t.Errorf("%s: frame not recorded: %+v", name, r.LastFrame)
		}
	}
}

func TestRecorderReset(t *testing.T) {
	r := &Recorder{}
	r.Launched(object.Firework{ID: 1})
	r.Frame([]object.Firework{{ID: 1}})
	r.Reset()
	if len(r.Events) != 0 || len(r.LastFrame) != 0 || r.Frames != 0 {
		t.Errorf("recorder not reset: %+v", r)
	}
}

func TestRadiusLocatorPrefersNearest(t *testing.T) {
	b := object.DefaultBounds()
	l := NewRadiusLocator(b, 40)
	live := []*object.Firework{
		object.NewFirework(1, b.Min().Add(100, 100), 0, object.Cyan),
		object.NewFirework(2, b.Min().Add(130, 100), 0, object.Red),
	}

	id, ok := l.Locate(b.Min().Add(125, 100), live)
	if !ok || id != 2 {
		t.Errorf("Locate = %d,%t, want 2", id, ok)
	}
	if _, ok := l.Locate(b.Min().Add(300, 300), live); ok {
		t.Error("Locate hit with nothing nearby")
	}
}

func TestRadiusLocatorEdge(t *testing.T) {
	b := object.DefaultBounds()
	l := NewRadiusLocator(b, 40)
	live := []*object.Firework{object.NewFirework(1, b.Min().Add(200, 200), 0, object.Green)}

	if id, ok := l.Locate(b.Min().Add(224, 232), live); !ok || id != 1 {
		t.Errorf("point exactly on the radius missed: %d,%t", id, ok)
	}
	if _, ok := l.Locate(b.Min().Add(200, 240.5), live); ok {
		t.Error("point just past the radius hit")
	}
}
