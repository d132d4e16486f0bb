package sim

// NominalStep is the fixed simulation step in seconds that animation phases
// assume. Frame dt is clamped to MaxStep so a hitch cannot jump the animation.
const (
	NominalStep = 1.0 / 60.0
	MaxStep     = NominalStep * 4
)

// Clock accumulates simulation time for the time-driven uniforms (glow
// pulsation, disk rotation and turbulence phase, ring opacity oscillation,
// light flicker). It is monotonically increasing and decoupled from the wall
// clock: a stalled frame advances it by at most MaxStep.
type Clock struct {
	elapsed float64
}

// Advance adds dt (seconds) to the simulation clock, clamped to MaxStep,
// and returns the step actually applied.
func (c *Clock) Advance(dt float64) float64 {
	if dt < 0 {
		dt = 0
	}
	if dt > MaxStep {
		dt = MaxStep
	}
	c.elapsed += dt
	return dt
}

// Time returns total simulation seconds since startup.
func (c *Clock) Time() float64 { return c.elapsed }

// TimeF returns the simulation time as float32 for shader uniforms.
func (c *Clock) TimeF() float32 { return float32(c.elapsed) }
