package lens

import (
	"github.com/go-gl/mathgl/mgl32"
)

// Sample is the result of evaluating the deflection function at one screen UV.
// It mirrors the fragment shader exactly so the pass can be verified on the
// CPU without a GL context.
type Sample struct {
	// Inside is true when the UV falls inside the projected event horizon;
	// the pass outputs opaque black there regardless of the background.
	Inside bool

	// UV is the warped sampling coordinate (the shader's finalUV).
	UV mgl32.Vec2

	// Direction is the unit vector from the screen center to the input UV.
	Direction mgl32.Vec2

	// Deflection is the raw deflection magnitude before falloff blending.
	Deflection float32

	// Falloff is 1 at the horizon boundary and 0 beyond the influence radius.
	Falloff float32

	// Brightness is the edge overbrightening factor applied to the sampled color.
	Brightness float32
}

// DeflectUV evaluates the screen-space deflection at uv for the given lens
// parameters and tuning constants.
func DeflectUV(uv mgl32.Vec2, p Params, t Tuning) Sample {
	delta := uv.Sub(p.ScreenCenter)
	dist := delta.Len()

	if dist < p.ScreenRadius {
		return Sample{Inside: true, UV: uv}
	}

	influenceRadius := p.ScreenRadius * t.InfluenceFactor
	falloff := 1 - smoothstep(p.ScreenRadius, influenceRadius, dist)

	// Distance floor just outside the horizon keeps the denominator away
	// from zero.
	safeDist := dist
	if floor := p.ScreenRadius * t.SafeDistFactor; safeDist < floor {
		safeDist = floor
	}
	deflection := p.Strength * p.ScreenRadius * p.ScreenRadius /
		(safeDist*safeDist + p.ScreenRadius*p.ScreenRadius)

	direction := delta.Mul(1 / dist)
	warped := clampUV(uv.Sub(direction.Mul(deflection)), t.UVEpsilon)
	final := mgl32.Vec2{
		mix(uv.X(), warped.X(), falloff),
		mix(uv.Y(), warped.Y(), falloff),
	}

	return Sample{
		UV:         final,
		Direction:  direction,
		Deflection: deflection,
		Falloff:    falloff,
		Brightness: 1 + falloff*t.EdgeBrightness,
	}
}

// AberrationUVs returns the red, green and blue sampling coordinates for the
// chromatic aberration: red and blue are offset along the deflection
// direction, green samples the warped UV directly. All three are clamped to
// the valid texture domain.
func (s Sample) AberrationUVs(t Tuning) (r, g, b mgl32.Vec2) {
	offset := s.Direction.Mul(s.Deflection * t.AberrationScale)
	r = clampUV(s.UV.Add(offset), t.UVEpsilon)
	g = s.UV
	b = clampUV(s.UV.Sub(offset), t.UVEpsilon)
	return r, g, b
}

func clampUV(uv mgl32.Vec2, eps float32) mgl32.Vec2 {
	return mgl32.Vec2{clamp(uv.X(), eps, 1-eps), clamp(uv.Y(), eps, 1-eps)}
}

func clamp(v, lo, hi float32) float32 {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func mix(a, b, t float32) float32 { return a + (b-a)*t }

// smoothstep is the GLSL Hermite interpolation: 0 at edge0, 1 at edge1.
func smoothstep(edge0, edge1, x float32) float32 {
	t := clamp((x-edge0)/(edge1-edge0), 0, 1)
	return t * t * (3 - 2*t)
}

// InfluenceRadius returns the UV distance beyond which the distortion is
// negligible for the given parameters.
func InfluenceRadius(p Params, t Tuning) float32 {
	return p.ScreenRadius * t.InfluenceFactor
}

// MaxDeflection returns the deflection magnitude at the horizon boundary,
// useful for diagnostics.
func MaxDeflection(p Params, t Tuning) float32 {
	safe := p.ScreenRadius * t.SafeDistFactor
	return p.Strength * p.ScreenRadius * p.ScreenRadius /
		(safe*safe + p.ScreenRadius*p.ScreenRadius)
}
