// Package field implements the fireworks field: the set of live rockets,
// the color-matched selection, detonation scoring and the launch timer.
//
// A Field is not safe for concurrent use. Shells drive it from a single
// loop goroutine and observe it through a Sink.
package field

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"

	"github.com/tomz197/fireworks/internal/object"
	"github.com/tomz197/fireworks/internal/physics"
)

// Cadence is the time between two automatic launches.
const Cadence = 6 * time.Second

// Options configures a Field. Zero values get defaults.
type Options struct {
	Bounds  object.Bounds
	Rand    Rand
	Sink    Sink
	Locator Locator
	Logger  *log.Logger
}

// selection is the color-matched group the player is building.
type selection struct {
	color  object.Color
	active bool
	ids    []object.ID
}

// Field holds every live firework and the player's score.
type Field struct {
	bounds  object.Bounds
	rng     Rand
	sink    Sink
	locator Locator
	logger  *log.Logger

	fireworks      []*object.Firework
	sel            selection
	score          int
	nextID         object.ID
	sinceLastSpawn time.Duration
}

// New creates an empty field.
func New(opts Options) *Field {
	if opts.Bounds == (object.Bounds{}) {
		opts.Bounds = object.DefaultBounds()
	}
	if opts.Rand == nil {
		opts.Rand = NewRand(0)
	}
	if opts.Sink == nil {
		opts.Sink = NopSink{}
	}
	if opts.Locator == nil {
		opts.Locator = NewRadiusLocator(opts.Bounds, DefaultHitRadius)
	}
	if opts.Logger == nil {
		opts.Logger = log.Default()
	}

	return &Field{
		bounds:    opts.Bounds,
		rng:       opts.Rand,
		sink:      opts.Sink,
		locator:   opts.Locator,
		logger:    opts.Logger,
		fireworks: make([]*object.Firework, 0, 4*object.BatchSize),
		nextID:    1,
	}
}

// Tick advances the field by dt: moves every rocket, drops the ones that
// climbed out unscored, then fires the launch timer. Negative dt counts as 0.
func (f *Field) Tick(dt time.Duration) {
	if dt < 0 {
		dt = 0
	}

	for _, fw := range f.fireworks {
		fw.Advance(dt)
	}

	// Expiry runs before this tick's launches so a new rocket never expires
	// in the tick that created it.
	var expired []object.Firework
	for i := len(f.fireworks) - 1; i >= 0; i-- {
		fw := f.fireworks[i]
		if !fw.IsOffField(f.bounds) {
			continue
		}
		f.remove(i)
		if fw.Selected {
			f.dropSelected(fw.ID)
		}
		expired = append(expired, *fw)
	}
	for _, fw := range expired {
		f.sink.Expired(fw)
	}

	f.sinceLastSpawn += dt
	if f.sinceLastSpawn >= Cadence {
		f.sinceLastSpawn = 0
		f.LaunchRandom()
	}

	f.checkSelection()
	f.sink.Frame(f.snapshot())
}

// Launch appends the five rockets of pattern p, each with a random color.
func (f *Field) Launch(p object.Pattern) {
	batch := object.SpawnBatch(p, f.bounds)
	first := len(f.fireworks)
	for _, l := range batch {
		color := object.Color(f.rng.Intn(object.ColorCount))
		fw := object.NewFirework(f.nextID, l.Point, l.Drift, color)
		f.nextID++
		f.fireworks = append(f.fireworks, fw)
	}
	f.logger.Debug("launched pattern", "pattern", p, "count", len(batch), "live", len(f.fireworks))

	launched := f.snapshotFrom(first)
	for _, fw := range launched {
		f.sink.Launched(fw)
	}
}

// LaunchRandom launches a uniformly chosen pattern.
func (f *Field) LaunchRandom() {
	f.Launch(object.Pattern(f.rng.Intn(object.PatternCount)))
}

// TrySelect selects the firework under p, if any.
func (f *Field) TrySelect(p physics.Point) bool {
	id, ok := f.locator.Locate(p, f.fireworks)
	if !ok {
		return false
	}
	return f.Select(id)
}

// Select adds the firework to the selection. Picking a different color
// than the current group starts a new group.
func (f *Field) Select(id object.ID) bool {
	fw := f.find(id)
	if fw == nil {
		return false
	}

	if !f.sel.active || f.sel.color != fw.Color {
		f.unselectAll()
		f.sel.color = fw.Color
		f.sel.active = true
	}
	if !fw.Selected {
		fw.MarkSelected()
		f.sel.ids = append(f.sel.ids, id)
	}

	f.checkSelection()
	return true
}

// ClearSelection abandons the current group.
func (f *Field) ClearSelection() {
	f.unselectAll()
	f.checkSelection()
}

// DetonateSelected explodes every selected firework and returns the points
// awarded for the group.
func (f *Field) DetonateSelected() int {
	if len(f.sel.ids) == 0 {
		return 0
	}

	exploded := make([]object.Firework, 0, len(f.sel.ids))
	for i := len(f.fireworks) - 1; i >= 0; i-- {
		fw := f.fireworks[i]
		if !fw.Selected {
			continue
		}
		f.remove(i)
		exploded = append(exploded, *fw)
	}

	n := len(exploded)
	delta := Score(n)
	f.score += delta
	f.sel = selection{ids: f.sel.ids[:0]}

	f.logger.Debug("detonated", "count", n, "delta", delta, "score", f.score)
	f.checkSelection()

	for _, fw := range exploded {
		f.sink.Exploded(fw)
	}
	return delta
}

// Reset starts a new round. IDs keep increasing across rounds.
func (f *Field) Reset() {
	f.fireworks = f.fireworks[:0]
	f.sel = selection{}
	f.score = 0
	f.sinceLastSpawn = 0
}

// Fireworks returns a copy of the live fireworks in launch order.
func (f *Field) Fireworks() []object.Firework {
	return f.snapshot()
}

// Selected returns the selected ids in the order they were picked.
func (f *Field) Selected() []object.ID {
	out := make([]object.ID, len(f.sel.ids))
	copy(out, f.sel.ids)
	return out
}

// SelectionColor returns the color of the current group.
func (f *Field) SelectionColor() (object.Color, bool) {
	return f.sel.color, f.sel.active
}

// Score returns the accumulated score.
func (f *Field) Score() int {
	return f.score
}

// Len returns the number of live fireworks.
func (f *Field) Len() int {
	return len(f.fireworks)
}

// Bounds returns the field geometry.
func (f *Field) Bounds() object.Bounds {
	return f.bounds
}

// SinceLastLaunch returns the time accumulated toward the next launch.
func (f *Field) SinceLastLaunch() time.Duration {
	return f.sinceLastSpawn
}

func (f *Field) find(id object.ID) *object.Firework {
	for _, fw := range f.fireworks {
		if fw.ID == id {
			return fw
		}
	}
	return nil
}

// remove deletes index i, keeping launch order.
func (f *Field) remove(i int) {
	copy(f.fireworks[i:], f.fireworks[i+1:])
	f.fireworks[len(f.fireworks)-1] = nil
	f.fireworks = f.fireworks[:len(f.fireworks)-1]
}

func (f *Field) dropSelected(id object.ID) {
	for i, sid := range f.sel.ids {
		if sid == id {
			f.sel.ids = append(f.sel.ids[:i], f.sel.ids[i+1:]...)
			break
		}
	}
	if len(f.sel.ids) == 0 {
		f.sel.active = false
	}
}

func (f *Field) unselectAll() {
	for _, fw := range f.fireworks {
		fw.MarkUnselected()
	}
	f.sel = selection{ids: f.sel.ids[:0]}
}

func (f *Field) snapshot() []object.Firework {
	return f.snapshotFrom(0)
}

func (f *Field) snapshotFrom(start int) []object.Firework {
	out := make([]object.Firework, len(f.fireworks)-start)
	for i, fw := range f.fireworks[start:] {
		out[i] = *fw
	}
	return out
}

// checkSelection panics if the selection no longer matches the live set.
// It runs in one pass over the fireworks plus one over the group.
func (f *Field) checkSelection() {
	var flagged map[object.ID]struct{}
	for _, fw := range f.fireworks {
		if !fw.Selected {
			continue
		}
		if !f.sel.active || fw.Color != f.sel.color {
			panic(fmt.Sprintf("field: firework %d selected with color %s, group is %s (active=%t)",
				fw.ID, fw.Color, f.sel.color, f.sel.active))
		}
		if flagged == nil {
			flagged = make(map[object.ID]struct{}, len(f.sel.ids))
		}
		flagged[fw.ID] = struct{}{}
	}
	if len(flagged) != len(f.sel.ids) {
		panic(fmt.Sprintf("field: %d fireworks flagged selected, group holds %d", len(flagged), len(f.sel.ids)))
	}
	for _, id := range f.sel.ids {
		if _, ok := flagged[id]; !ok {
			panic(fmt.Sprintf("field: selected firework %d is not live or listed twice", id))
		}
		delete(flagged, id)
	}
}
