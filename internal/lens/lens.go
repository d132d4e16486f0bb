// Package lens derives the screen-space gravitational lensing parameters from
// the 3D scene and defines the deflection function applied by the distortion
// pass. The deflection is a closed-form, radially symmetric approximation
// tuned to look plausible; it is not a relativistic ray tracer.
package lens

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"
)

// minScreenRadius floors the projected horizon radius so a degenerate or
// off-screen projection never produces division artifacts in the shader.
const minScreenRadius = 0.0005

// Strength distance scaling: strength = base * clamp(refDistance/d, minScale, maxScale).
const (
	refDistance = 30.0
	minScale    = 0.6
	maxScale    = 2.5
)

// Params are the three per-frame values the distortion pass consumes.
// ScreenCenter is in UV space ([0,1]², Y down), ScreenRadius the apparent
// horizon radius in UV units, Strength the distance-scaled deflection.
type Params struct {
	ScreenCenter mgl32.Vec2
	ScreenRadius float32
	Strength     float32
}

// Tuning holds the empirical constants of the deflection function. They are
// visual parameters, not physical ones; the defaults match the shader.
type Tuning struct {
	InfluenceFactor float32 // falloff reaches zero at ScreenRadius * InfluenceFactor
	SafeDistFactor  float32 // distance floor just outside the horizon, as a fraction of ScreenRadius
	AberrationScale float32 // chromatic aberration offset as a fraction of the deflection
	EdgeBrightness  float32 // max overbrightening at the horizon edge
	UVEpsilon       float32 // warped UVs are clamped to [UVEpsilon, 1-UVEpsilon]
}

// DefaultTuning returns the stock deflection constants.
func DefaultTuning() Tuning {
	return Tuning{
		InfluenceFactor: 8.0,
		SafeDistFactor:  0.75,
		AberrationScale: 0.1,
		EdgeBrightness:  0.15,
		UVEpsilon:       0.001,
	}
}

// Estimator projects the event horizon through the current camera to obtain
// Params. It reuses internal scratch state between calls and is therefore not
// safe for concurrent use; the frame driver owns the single instance.
type Estimator struct {
	viewProj mgl32.Mat4
	clip     mgl32.Vec4
}

// NewEstimator returns a lens parameter estimator.
func NewEstimator() *Estimator {
	return &Estimator{}
}

// Estimate recomputes the lens parameters for this frame. center is the event
// horizon's world-space center, radius its world-space radius, camPos the eye
// position. Nothing is cached: both the camera and the horizon may move every
// frame.
func (e *Estimator) Estimate(view, proj mgl32.Mat4, center mgl32.Vec3, radius float32, camPos mgl32.Vec3, base float32) Params {
	e.viewProj = proj.Mul4(view)

	cx, cy := e.projectNDC(center)
	xx, _ := e.projectNDC(center.Add(mgl32.Vec3{radius, 0, 0}))
	_, yy := e.projectNDC(center.Add(mgl32.Vec3{0, radius, 0}))

	// NDC -> UV with Y flip (texture space has Y down)
	screenCenter := mgl32.Vec2{cx*0.5 + 0.5, -cy*0.5 + 0.5}

	// Half the NDC extent is the UV extent; take the larger projected axis
	rx := float32(math.Abs(float64(xx-cx))) * 0.5
	ry := float32(math.Abs(float64(yy-cy))) * 0.5
	screenRadius := rx
	if ry > screenRadius {
		screenRadius = ry
	}
	if screenRadius < minScreenRadius {
		screenRadius = minScreenRadius
	}

	dist := camPos.Sub(center).Len()
	scale := float32(refDistance) / dist
	if scale < minScale {
		scale = minScale
	}
	if scale > maxScale {
		scale = maxScale
	}

	return Params{
		ScreenCenter: screenCenter,
		ScreenRadius: screenRadius,
		Strength:     base * scale,
	}
}

// projectNDC maps a world point through viewProj to normalized device
// coordinates. Points at or behind the eye plane (w ~ 0) collapse to the
// origin; the radius floor downstream absorbs that degeneracy.
func (e *Estimator) projectNDC(p mgl32.Vec3) (float32, float32) {
	e.clip = e.viewProj.Mul4x1(mgl32.Vec4{p.X(), p.Y(), p.Z(), 1})
	w := e.clip.W()
	if w > -1e-6 && w < 1e-6 {
		return 0, 0
	}
	return e.clip.X() / w, e.clip.Y() / w
}
