package effect

import (
	"math"
	"math/rand"
	"sync"
	"time"

	colorful "github.com/lucasb-eyer/go-colorful"
)

// sparkPool is a sync.Pool for reusing Spark values to reduce allocations.
var sparkPool = sync.Pool{
	New: func() any {
		return &Spark{}
	},
}

// Spark is a short-lived point of light: fuse trails and explosion debris.
type Spark struct {
	X, Y        float64 // Position (world space)
	VX, VY      float64 // Velocity
	Lifetime    float64 // Seconds remaining
	MaxLifetime float64 // Initial lifetime (for fade calculation)
	Drag        float64 // Velocity decay (1.0 = no drag)
	Gravity     float64 // Downward acceleration, units/s²
	Color       colorful.Color
}

// NewSpark creates a single spark from the pool.
func NewSpark(x, y, vx, vy, lifetime float64, c colorful.Color) *Spark {
	s := sparkPool.Get().(*Spark)
	s.X = x
	s.Y = y
	s.VX = vx
	s.VY = vy
	s.Lifetime = lifetime
	s.MaxLifetime = lifetime
	s.Drag = 0.95
	s.Gravity = 0
	s.Color = c
	return s
}

// Release returns the spark to the pool for reuse.
// Should be called when the spark is removed from its owner.
func (s *Spark) Release() {
	sparkPool.Put(s)
}

// Update moves the spark. Returns true once its lifetime is used up.
func (s *Spark) Update(dt time.Duration) bool {
	sec := dt.Seconds()

	s.Lifetime -= sec
	if s.Lifetime <= 0 {
		return true
	}

	// Normalize drag to ~60fps
	dragFactor := math.Pow(s.Drag, sec*60)
	s.VX *= dragFactor
	s.VY *= dragFactor
	s.VY -= s.Gravity * sec

	s.X += s.VX * sec
	s.Y += s.VY * sec
	return false
}

// Life returns the remaining fraction of the spark's lifetime, in [0, 1].
func (s *Spark) Life() float64 {
	if s.MaxLifetime <= 0 {
		return 0
	}
	return math.Max(0, s.Lifetime/s.MaxLifetime)
}

// SpawnFuse creates 1-2 sparks behind a rocket travelling along heading.
func SpawnFuse(x, y, heading float64, c colorful.Color, rng *rand.Rand, out []*Spark) []*Spark {
	count := 1 + rng.Intn(2)
	for i := 0; i < count; i++ {
		// Opposite direction of travel, with spread
		angle := heading + math.Pi + (rng.Float64()-0.5)*0.6
		speed := 60.0 + rng.Float64()*40.0
		lifetime := 0.15 + rng.Float64()*0.2

		s := NewSpark(x, y, math.Cos(angle)*speed, math.Sin(angle)*speed, lifetime, c)
		s.Drag = 0.85
		out = append(out, s)
	}
	return out
}

// SpawnBurst creates sparks in a circular burst pattern, falling slowly.
func SpawnBurst(x, y float64, count int, speed, lifetime float64, c colorful.Color, rng *rand.Rand, out []*Spark) []*Spark {
	for i := 0; i < count; i++ {
		angle := rng.Float64() * 2 * math.Pi
		// Random speed variation (50% to 150%)
		spd := speed * (0.5 + rng.Float64())
		// Random lifetime variation (50% to 100%)
		life := lifetime * (0.5 + rng.Float64()*0.5)

		s := NewSpark(x, y, math.Cos(angle)*spd, math.Sin(angle)*spd, life, c)
		s.Gravity = 60
		out = append(out, s)
	}
	return out
}

// UpdateSparks advances every spark and drops (and releases) the finished ones.
func UpdateSparks(sparks []*Spark, dt time.Duration) []*Spark {
	kept := sparks[:0] // reuse backing array
	for _, s := range sparks {
		if s.Update(dt) {
			s.Release()
			continue
		}
		kept = append(kept, s)
	}
	for i := len(kept); i < len(sparks); i++ {
		sparks[i] = nil
	}
	return kept
}
