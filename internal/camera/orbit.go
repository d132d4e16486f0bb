package camera

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"singularity/internal/config"
)

// Orbit bounds. Phi is kept away from the poles to avoid the LookAt up-vector
// degenerating (gimbal flip).
const (
	MinRadius = 5.0
	MaxRadius = 100.0
	MinPhi    = 0.1
	MaxPhi    = math.Pi - 0.1

	dragSensitivity = 0.005
	zoomSensitivity = 1.0
)

// Orbit is a spherical-coordinate orbit camera around a fixed target.
// Theta is the azimuth in the XZ plane, Phi the inclination from +Y.
type Orbit struct {
	Radius float32
	Theta  float32
	Phi    float32
	Target mgl32.Vec3

	autoRotate bool
}

// NewOrbit returns an orbit camera at the default pose looking at target.
func NewOrbit(target mgl32.Vec3) *Orbit {
	o := &Orbit{Target: target}
	o.Reset()
	return o
}

// Reset restores the default pose: configured radius, theta 0, phi π/2
// (equatorial view).
func (o *Orbit) Reset() {
	o.Radius = config.GetDefaultCameraRadius()
	o.Theta = 0
	o.Phi = math.Pi / 2
}

// Drag applies a pointer drag delta in pixels to the orbit angles.
func (o *Orbit) Drag(dx, dy float32) {
	o.Theta -= dx * dragSensitivity
	o.Phi += dy * dragSensitivity
	o.clampPhi()
}

// Zoom applies a wheel delta to the orbit radius.
func (o *Orbit) Zoom(delta float32) {
	o.Radius += delta * zoomSensitivity
	if o.Radius < MinRadius {
		o.Radius = MinRadius
	}
	if o.Radius > MaxRadius {
		o.Radius = MaxRadius
	}
}

// SetAutoRotate enables or disables the slow theta drift.
func (o *Orbit) SetAutoRotate(on bool) { o.autoRotate = on }

// AutoRotate reports whether auto-rotation is active.
func (o *Orbit) AutoRotate() bool { return o.autoRotate }

// ToggleAutoRotate flips auto-rotation and returns the new state.
func (o *Orbit) ToggleAutoRotate() bool {
	o.autoRotate = !o.autoRotate
	return o.autoRotate
}

// Update advances the auto-rotation drift. Pointer drags apply on top of the
// drift independently.
func (o *Orbit) Update(dt float32) {
	if o.autoRotate {
		o.Theta += config.GetAutoRotateRate() * dt
	}
}

// Position converts the spherical pose to a Cartesian eye position around
// Target.
func (o *Orbit) Position() mgl32.Vec3 {
	sinPhi, cosPhi := math.Sincos(float64(o.Phi))
	sinTheta, cosTheta := math.Sincos(float64(o.Theta))
	return mgl32.Vec3{
		o.Target.X() + o.Radius*float32(sinPhi*cosTheta),
		o.Target.Y() + o.Radius*float32(cosPhi),
		o.Target.Z() + o.Radius*float32(sinPhi*sinTheta),
	}
}

// ViewMatrix returns the look-at view matrix for the current pose.
func (o *Orbit) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(o.Position(), o.Target, mgl32.Vec3{0, 1, 0})
}

// Distance returns the eye distance to the target (always Radius, kept as a
// method so callers don't assume the spherical parameterization).
func (o *Orbit) Distance() float32 { return o.Radius }

func (o *Orbit) clampPhi() {
	if o.Phi < MinPhi {
		o.Phi = MinPhi
	}
	if o.Phi > MaxPhi {
		o.Phi = MaxPhi
	}
}
