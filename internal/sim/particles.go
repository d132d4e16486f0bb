package sim

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl32"
)

// KeplerianConstant scales orbital speed: speed = KeplerianConstant / sqrt(radius).
// Tuned for a visually pleasing orbital period, not a physical unit.
const KeplerianConstant = 4.0

// diskHalfThickness is the vertical spread of freshly spawned particles at the
// inner edge; the disk thins toward the outer edge.
const diskHalfThickness = 0.4

// Disk owns the orbital particle field of the accretion disk.
//
// Positions, colors and sizes are kept in flat float32 slices so the particle
// renderable can hand them straight to glBufferSubData. The slices are
// allocated once in NewDisk and never reallocated; Tick mutates them in place
// so buffer bindings held by the renderer stay valid.
type Disk struct {
	InnerRadius float32
	OuterRadius float32

	positions  []float32 // xyz per particle
	velocities []mgl32.Vec3
	colors     []float32 // rgb per particle
	sizes      []float32

	count int
	dirty bool
	rng   *rand.Rand
}

// NewDisk seeds count particles in a randomized annulus between innerRadius
// and outerRadius, orbiting the origin in the XZ plane with Keplerian speeds.
func NewDisk(count int, innerRadius, outerRadius float32, seed int64) *Disk {
	d := &Disk{
		InnerRadius: innerRadius,
		OuterRadius: outerRadius,
		positions:   make([]float32, count*3),
		velocities:  make([]mgl32.Vec3, count),
		colors:      make([]float32, count*3),
		sizes:       make([]float32, count),
		count:       count,
		dirty:       true,
		rng:         rand.New(rand.NewSource(seed)),
	}
	for i := 0; i < count; i++ {
		d.spawn(i)
	}
	return d
}

// Count returns the number of particles; constant for the disk's lifetime.
func (d *Disk) Count() int { return d.count }

// Positions returns the live xyz buffer. The renderer must not retain it
// across a disk rebuild, but within a disk's lifetime the backing array is
// stable.
func (d *Disk) Positions() []float32 { return d.positions }

// Colors returns the live rgb buffer.
func (d *Disk) Colors() []float32 { return d.colors }

// Sizes returns the live point size buffer.
func (d *Disk) Sizes() []float32 { return d.sizes }

// Velocity returns particle i's velocity. Exposed for tests and diagnostics.
func (d *Disk) Velocity(i int) mgl32.Vec3 { return d.velocities[i] }

// ConsumeDirty reports whether particle data changed since the last call and
// resets the flag. The particle renderable calls this once per frame to decide
// whether to re-upload.
func (d *Disk) ConsumeDirty() bool {
	was := d.dirty
	d.dirty = false
	return was
}

// Tick advances every particle by its velocity and respawns any particle whose
// radial distance from the disk center left [InnerRadius, OuterRadius].
func (d *Disk) Tick(dt float32) {
	for i := 0; i < d.count; i++ {
		px := d.positions[i*3] + d.velocities[i].X()*dt
		py := d.positions[i*3+1] + d.velocities[i].Y()*dt
		pz := d.positions[i*3+2] + d.velocities[i].Z()*dt

		r := float32(math.Hypot(float64(px), float64(pz)))
		if r < d.InnerRadius || r > d.OuterRadius {
			d.spawn(i)
			continue
		}
		d.positions[i*3] = px
		d.positions[i*3+1] = py
		d.positions[i*3+2] = pz
	}
	d.dirty = true
}

// spawn (re)initializes particle i in place with a fresh annulus position,
// a tangential Keplerian velocity, and radius-derived color and size.
func (d *Disk) spawn(i int) {
	radius := d.InnerRadius + d.rng.Float32()*(d.OuterRadius-d.InnerRadius)
	angle := d.rng.Float32() * 2 * math.Pi

	// Disk thins toward the outer edge
	t := (radius - d.InnerRadius) / (d.OuterRadius - d.InnerRadius)
	height := (d.rng.Float32()*2 - 1) * diskHalfThickness * (1 - t*0.6)

	sin, cos := math.Sincos(float64(angle))
	d.positions[i*3] = radius * float32(cos)
	d.positions[i*3+1] = height
	d.positions[i*3+2] = radius * float32(sin)

	// Tangential direction in the XZ plane (counter-clockwise seen from +Y)
	speed := KeplerianConstant / float32(math.Sqrt(float64(radius)))
	d.velocities[i] = mgl32.Vec3{-float32(sin) * speed, 0, float32(cos) * speed}

	// Inner edge runs hot (white-yellow), outer edge cools to dim orange-red
	d.colors[i*3] = 1.0 - t*0.25
	d.colors[i*3+1] = 0.85 - t*0.55
	d.colors[i*3+2] = 0.55 - t*0.45

	d.sizes[i] = 1.5 + d.rng.Float32()*2.0
}

// Radius returns particle i's current radial distance from the disk center.
func (d *Disk) Radius(i int) float32 {
	return float32(math.Hypot(float64(d.positions[i*3]), float64(d.positions[i*3+2])))
}
