package sim

import (
	"math"
	"testing"
)

const (
	testInner = float32(6.0)
	testOuter = float32(24.0)
)

func TestNewDiskSeedsWithinBounds(t *testing.T) {
	d := NewDisk(500, testInner, testOuter, 1)
	for i := 0; i < d.Count(); i++ {
		r := d.Radius(i)
		if r < testInner || r > testOuter {
			t.Fatalf("particle %d seeded at radius %.3f outside [%v, %v]", i, r, testInner, testOuter)
		}
	}
}

func TestTickKeepsRadialInvariant(t *testing.T) {
	d := NewDisk(1000, testInner, testOuter, 2)
	for tick := 0; tick < 100; tick++ {
		d.Tick(0.016)
		for i := 0; i < d.Count(); i++ {
			r := d.Radius(i)
			if r < testInner || r > testOuter {
				t.Fatalf("tick %d: particle %d at radius %.3f outside bounds", tick, i, r)
			}
		}
	}
}

func TestKeplerianSpeedLaw(t *testing.T) {
	d := NewDisk(2000, testInner, testOuter, 3)

	check := func(stage string) {
		for i := 0; i < d.Count(); i++ {
			r := d.Radius(i)
			want := KeplerianConstant / float32(math.Sqrt(float64(r)))
			got := d.Velocity(i).Len()
			// Particles drift between respawns, so compare against the speed
			// assigned at their spawn radius: velocity magnitude is constant
			// after spawn while radius changes slightly. Allow the drift.
			if relErr := math.Abs(float64(got-want)) / float64(want); relErr > 0.05 {
				t.Fatalf("%s: particle %d speed %.4f, want ~%.4f at radius %.3f (rel err %.3f)",
					stage, i, got, want, r, relErr)
			}
		}
	}

	check("after seed")
	d.Tick(0.016)
	check("after tick")
}

func TestRespawnAssignsKeplerianSpeed(t *testing.T) {
	d := NewDisk(1, testInner, testOuter, 4)

	// Force the single particle out of bounds and tick: it must respawn with
	// speed exactly k/sqrt(newRadius)
	d.positions[0] = testOuter * 2
	d.positions[2] = 0
	d.Tick(0.016)

	r := d.Radius(0)
	if r < testInner || r > testOuter {
		t.Fatalf("respawned particle at radius %.3f outside bounds", r)
	}
	want := KeplerianConstant / float32(math.Sqrt(float64(r)))
	got := d.Velocity(0).Len()
	if diff := math.Abs(float64(got - want)); diff > 1e-4 {
		t.Fatalf("respawn speed %.6f, want %.6f (radius %.3f)", got, want, r)
	}
}

func TestTickPreservesBufferIdentity(t *testing.T) {
	d := NewDisk(300, testInner, testOuter, 5)
	posPtr := &d.Positions()[0]
	colPtr := &d.Colors()[0]
	sizePtr := &d.Sizes()[0]

	for tick := 0; tick < 50; tick++ {
		d.Tick(0.016)
	}

	if &d.Positions()[0] != posPtr || &d.Colors()[0] != colPtr || &d.Sizes()[0] != sizePtr {
		t.Fatal("particle buffers were reallocated; renderer bindings would go stale")
	}
}

func TestDirtyFlagLifecycle(t *testing.T) {
	d := NewDisk(10, testInner, testOuter, 6)
	if !d.ConsumeDirty() {
		t.Fatal("fresh disk should be dirty for the initial upload")
	}
	if d.ConsumeDirty() {
		t.Fatal("ConsumeDirty must reset the flag")
	}
	d.Tick(0.016)
	if !d.ConsumeDirty() {
		t.Fatal("Tick must mark the buffer dirty")
	}
}

func TestLongRunNoLeaksOrDrops(t *testing.T) {
	// Soak: 5000 particles, 1000 ticks at dt=0.016. Every radius stays in
	// bounds and the count never changes.
	d := NewDisk(5000, testInner, testOuter, 7)
	for tick := 0; tick < 1000; tick++ {
		d.Tick(0.016)
	}
	if d.Count() != 5000 {
		t.Fatalf("particle count changed: %d", d.Count())
	}
	for i := 0; i < d.Count(); i++ {
		r := d.Radius(i)
		if r < testInner || r > testOuter {
			t.Fatalf("particle %d ended at radius %.3f outside bounds", i, r)
		}
	}
}

func TestDeterministicWithSeed(t *testing.T) {
	a := NewDisk(100, testInner, testOuter, 42)
	b := NewDisk(100, testInner, testOuter, 42)
	for tick := 0; tick < 20; tick++ {
		a.Tick(0.016)
		b.Tick(0.016)
	}
	for i := range a.Positions() {
		if a.Positions()[i] != b.Positions()[i] {
			t.Fatalf("same seed diverged at float %d", i)
		}
	}
}

func BenchmarkTick(b *testing.B) {
	d := NewDisk(5000, testInner, testOuter, 8)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		d.Tick(0.016)
	}
}
