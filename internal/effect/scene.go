package effect

import (
	"math"
	"math/rand"
	"time"

	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/tomz197/fireworks/internal/field"
	"github.com/tomz197/fireworks/internal/object"
)

// Scene tuning.
const (
	FuseRate      = 24.0 // fuse emissions per second per rocket
	BurstSparks   = 28
	BurstSpeed    = 260.0
	BurstLifetime = 1.1 // seconds
	AwardDuration = 1500 * time.Millisecond
	AwardRise     = 80.0
	rocketTail    = 9.0
)

// Award is a floating "+points" label shown where a group detonated.
type Award struct {
	X, Y   float64
	Points int
	rise   *gween.Tween
	offset float64
	left   time.Duration
}

// Pos returns the label position including its rise.
func (a *Award) Pos() (x, y float64) {
	return a.X, a.Y + a.offset
}

// Life returns the remaining fraction of the label's display time.
func (a *Award) Life() float64 {
	return math.Max(0, a.left.Seconds()/AwardDuration.Seconds())
}

// Scene collects everything a renderer draws besides the rockets
// themselves. It listens to the field as a Sink and is advanced once per
// frame with Update. All coordinates are field coordinates.
type Scene struct {
	Live       []object.Firework
	Explosions []*Explosion
	Sparks     []*Spark
	Awards     []*Award

	rng     *rand.Rand
	fuseAcc float64

	// centroid of the fireworks exploded since the last ShowAward
	sumX, sumY float64
	exploded   int
}

var _ field.Sink = (*Scene)(nil)

// NewScene creates an empty scene. A zero seed uses the current time.
func NewScene(seed int64) *Scene {
	return &Scene{rng: field.NewRand(seed)}
}

// Launched is a no-op; rockets appear with the next Frame.
func (s *Scene) Launched(object.Firework) {}

// Frame stores the live rockets for drawing.
func (s *Scene) Frame(live []object.Firework) {
	s.Live = append(s.Live[:0], live...)
}

// Exploded starts a ring and a spark burst at the firework.
func (s *Scene) Exploded(f object.Firework) {
	c := f.Color.RGB()
	s.Explosions = append(s.Explosions, NewExplosion(f.X, f.Y, c))
	s.Sparks = SpawnBurst(f.X, f.Y, BurstSparks, BurstSpeed, BurstLifetime, c, s.rng, s.Sparks)
	s.sumX += f.X
	s.sumY += f.Y
	s.exploded++
}

// Expired is a no-op: rockets leaving the sky vanish silently.
func (s *Scene) Expired(object.Firework) {}

// ShowAward places a points label over the fireworks exploded since the
// previous call. Zero points or no explosions show nothing.
func (s *Scene) ShowAward(points int) {
	n := s.exploded
	x, y := s.sumX, s.sumY
	s.sumX, s.sumY, s.exploded = 0, 0, 0
	if points <= 0 || n == 0 {
		return
	}
	s.Awards = append(s.Awards, &Award{
		X:      x / float64(n),
		Y:      y / float64(n),
		Points: points,
		rise:   gween.New(0, AwardRise, float32(AwardDuration.Seconds()), ease.OutQuad),
		left:   AwardDuration,
	})
}

// Update advances every effect by dt and emits fuse sparks behind the
// live rockets.
func (s *Scene) Update(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}
	s.Explosions = UpdateExplosions(s.Explosions, dt)
	s.Sparks = UpdateSparks(s.Sparks, dt)

	s.fuseAcc += dt.Seconds() * FuseRate
	for ; s.fuseAcc >= 1; s.fuseAcc-- {
		for i := range s.Live {
			f := &s.Live[i]
			h := f.Heading()
			tx := f.X - math.Cos(h)*rocketTail
			ty := f.Y - math.Sin(h)*rocketTail
			s.Sparks = SpawnFuse(tx, ty, h, f.Color.RGB(), s.rng, s.Sparks)
		}
	}

	kept := s.Awards[:0]
	for _, a := range s.Awards {
		a.left -= dt
		if a.left <= 0 {
			continue
		}
		v, _ := a.rise.Update(float32(dt.Seconds()))
		a.offset = float64(v)
		kept = append(kept, a)
	}
	for i := len(kept); i < len(s.Awards); i++ {
		s.Awards[i] = nil
	}
	s.Awards = kept
}

// Reset drops every effect, e.g. when a new round starts.
func (s *Scene) Reset() {
	for _, sp := range s.Sparks {
		sp.Release()
	}
	s.Live = s.Live[:0]
	s.Explosions = nil
	s.Sparks = nil
	s.Awards = nil
	s.sumX, s.sumY, s.exploded = 0, 0, 0
}

// Blink alternates every half period of frequency Hz.
func Blink(seconds, frequency float64) bool {
	return int(seconds*frequency*2)%2 == 0
}
