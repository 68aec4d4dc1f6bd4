package field

import "github.com/tomz197/fireworks/internal/object"

// Sink receives the field's visual state changes. Renderers implement it;
// every call happens synchronously on the goroutine driving the field.
// Events are delivered once the field is consistent again, so a sink may
// call back into the field.
type Sink interface {
	// Launched is called once for every new firework.
	Launched(f object.Firework)
	// Frame is called at the end of every tick with the live fireworks.
	// The slice is only valid for the duration of the call.
	Frame(live []object.Firework)
	// Exploded is called for every firework removed by detonation.
	Exploded(f object.Firework)
	// Expired is called for every firework that left the field unscored.
	Expired(f object.Firework)
}

// NopSink ignores every event.
type NopSink struct{}

func (NopSink) Launched(object.Firework) {}
func (NopSink) Frame([]object.Firework)  {}
func (NopSink) Exploded(object.Firework) {}
func (NopSink) Expired(object.Firework)  {}

// Multi fans every event out to several sinks, in order.
func Multi(sinks ...Sink) Sink {
	return multiSink(sinks)
}

type multiSink []Sink

func (m multiSink) Launched(f object.Firework) {
	for _, s := range m {
		s.Launched(f)
	}
}

func (m multiSink) Frame(live []object.Firework) {
	for _, s := range m {
		s.Frame(live)
	}
}

func (m multiSink) Exploded(f object.Firework) {
	for _, s := range m {
		s.Exploded(f)
	}
}

func (m multiSink) Expired(f object.Firework) {
	for _, s := range m {
		s.Expired(f)
	}
}

// EventType identifies a recorded sink event.
type EventType int

const (
	EventLaunched EventType = iota
	EventExploded
	EventExpired
)

// Event is one recorded one-shot sink call.
type Event struct {
	Type     EventType
	Firework object.Firework
}

// Recorder is a Sink that keeps every one-shot event and the last frame.
type Recorder struct {
	Events    []Event
	LastFrame []object.Firework
	Frames    int
}

func (r *Recorder) Launched(f object.Firework) {
	r.Events = append(r.Events, Event{Type: EventLaunched, Firework: f})
}

func (r *Recorder) Frame(live []object.Firework) {
	r.LastFrame = append(r.LastFrame[:0], live...)
	r.Frames++
}

func (r *Recorder) Exploded(f object.Firework) {
	r.Events = append(r.Events, Event{Type: EventExploded, Firework: f})
}

func (r *Recorder) Expired(f object.Firework) {
	r.Events = append(r.Events, Event{Type: EventExpired, Firework: f})
}

// Count returns how many events of type t were recorded.
func (r *Recorder) Count(t EventType) int {
	n := 0
	for _, e := range r.Events {
		if e.Type == t {
			n++
		}
	}
	return n
}

// Reset drops everything recorded so far.
func (r *Recorder) Reset() {
	r.Events = r.Events[:0]
	r.LastFrame = r.LastFrame[:0]
	r.Frames = 0
}
