package sound

import (
	"fmt"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/tomz197/fireworks/internal/field"
	"github.com/tomz197/fireworks/internal/object"
)

// Player turns field events into cues. It is a field.Sink: detonations
// collected during one frame play as a single cue sized by the group.
//
// Without a successful Init the Player stays silent.
type Player struct {
	mu       sync.Mutex
	mixer    *beep.Mixer
	play     func(beep.Streamer)
	ready    bool
	exploded int
	launched int
}

var _ field.Sink = (*Player)(nil)

// NewPlayer creates a silent player.
func NewPlayer() *Player {
	p := &Player{mixer: &beep.Mixer{}}
	p.play = p.addToMixer
	return p
}

// Init opens the audio device and starts the mixer.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.ready {
		return nil
	}
	if err := speaker.Init(SampleRate, SampleRate.N(time.Second/10)); err != nil {
		return fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(p.mixer)
	p.ready = true
	return nil
}

// Close stops all cues and releases the device.
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.ready {
		return
	}
	speaker.Clear()
	speaker.Close()
	p.ready = false
}

func (p *Player) addToMixer(s beep.Streamer) {
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Launched counts rockets for the next launch hiss.
func (p *Player) Launched(object.Firework) {
	p.mu.Lock()
	p.launched++
	p.mu.Unlock()
}

// Exploded counts rockets for the next detonation cue.
func (p *Player) Exploded(object.Firework) {
	p.mu.Lock()
	p.exploded++
	p.mu.Unlock()
}

// Expired is silent.
func (p *Player) Expired(object.Firework) {}

// Frame plays the cues collected since the previous frame.
func (p *Player) Frame([]object.Firework) {
	p.mu.Lock()
	exploded, launched := p.exploded, p.launched
	p.exploded, p.launched = 0, 0
	ready := p.ready
	p.mu.Unlock()

	if !ready {
		return
	}
	if launched > 0 {
		p.play(LaunchCue(SampleRate))
	}
	if exploded > 0 {
		p.play(DetonationCue(SampleRate, exploded))
	}
}
