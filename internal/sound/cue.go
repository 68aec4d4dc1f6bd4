// Package sound plays short synthesized cues for launches and detonations.
package sound

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// SampleRate is the rate every cue is generated at.
const SampleRate = beep.SampleRate(44100)

// Cue timing.
const (
	boomBase     = 250 * time.Millisecond
	boomPerShell = 80 * time.Millisecond
	crackLength  = 60 * time.Millisecond
	whooshLength = 140 * time.Millisecond
	maxShells    = 5
)

// DetonationCue is a crack followed by a low boom. Bigger groups boom
// deeper and longer.
func DetonationCue(sr beep.SampleRate, count int) beep.Streamer {
	if count < 1 {
		count = 1
	}
	if count > maxShells {
		count = maxShells
	}

	length := boomBase + time.Duration(count)*boomPerShell
	freq := 180.0 / (1 + 0.15*float64(count-1))

	var boom beep.Streamer
	tone, err := generators.SineTone(sr, freq)
	if err != nil {
		boom = beep.Silence(sr.N(length))
	} else {
		boom = newDecay(beep.Take(sr.N(length), tone), sr.N(length), 4)
	}
	crack := newDecay(beep.Take(sr.N(crackLength), noise()), sr.N(crackLength), 6)

	return volume(beep.Mix(volume(boom, 0.8), volume(crack, 0.5)), 0.3+0.1*float64(count))
}

// LaunchCue is a soft hiss for a new batch of rockets.
func LaunchCue(sr beep.SampleRate) beep.Streamer {
	n := sr.N(whooshLength)
	return volume(newDecay(beep.Take(n, noise()), n, 3), 0.15)
}

// noise is an endless white noise source.
func noise() beep.Streamer {
	return beep.StreamerFunc(func(samples [][2]float64) (n int, ok bool) {
		for i := range samples {
			v := rand.Float64()*2 - 1
			samples[i][0] = v
			samples[i][1] = v
		}
		return len(samples), true
	})
}

// decay fades a stream out exponentially over total samples.
type decay struct {
	streamer beep.Streamer
	position int
	total    int
	rate     float64
}

func newDecay(s beep.Streamer, total int, rate float64) beep.Streamer {
	return &decay{streamer: s, total: total, rate: rate}
}

func (d *decay) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = d.streamer.Stream(samples)
	for i := 0; i < n; i++ {
		t := float64(d.position) / float64(d.total)
		g := math.Exp(-d.rate * t)
		samples[i][0] *= g
		samples[i][1] *= g
		d.position++
	}
	return n, ok
}

func (d *decay) Err() error { return d.streamer.Err() }

// volume scales s linearly; zero or less is silent.
func volume(s beep.Streamer, v float64) beep.Streamer {
	if v <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Volume: 0, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(v), Silent: false}
}
