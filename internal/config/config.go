package config

import "sync"

// Settings holds runtime-adjustable visualization configuration
type Settings struct {
	mu sync.RWMutex

	fpsLimit       int
	particleCount  int
	autoRotateRate float32 // radians per second of theta drift
	cameraRadius   float32 // default orbit distance
	lensStrength   float32 // base deflection strength before distance scaling
}

var globalSettings = &Settings{
	fpsLimit:       120,
	particleCount:  5000,
	autoRotateRate: 0.15,
	cameraRadius:   30.0,
	lensStrength:   0.35,
}

// GetFPSLimit returns the frame rate cap (0 = uncapped)
func GetFPSLimit() int {
	globalSettings.mu.RLock()
	defer globalSettings.mu.RUnlock()
	return globalSettings.fpsLimit
}

// SetFPSLimit sets the frame rate cap
func SetFPSLimit(limit int) {
	globalSettings.mu.Lock()
	defer globalSettings.mu.Unlock()

	if limit < 0 {
		limit = 0
	}
	if limit > 480 {
		limit = 480
	}
	globalSettings.fpsLimit = limit
}

// GetParticleCount returns the accretion disk particle budget
func GetParticleCount() int {
	globalSettings.mu.RLock()
	defer globalSettings.mu.RUnlock()
	return globalSettings.particleCount
}

// SetParticleCount sets the particle budget, clamped to keep buffer uploads sane
func SetParticleCount(count int) {
	globalSettings.mu.Lock()
	defer globalSettings.mu.Unlock()

	if count < 100 {
		count = 100
	}
	if count > 50000 {
		count = 50000
	}
	globalSettings.particleCount = count
}

// GetAutoRotateRate returns the auto-rotation theta drift in radians/second
func GetAutoRotateRate() float32 {
	globalSettings.mu.RLock()
	defer globalSettings.mu.RUnlock()
	return globalSettings.autoRotateRate
}

// SetAutoRotateRate sets the auto-rotation drift rate
func SetAutoRotateRate(rate float32) {
	globalSettings.mu.Lock()
	defer globalSettings.mu.Unlock()

	if rate < 0 {
		rate = 0
	}
	if rate > 2.0 {
		rate = 2.0
	}
	globalSettings.autoRotateRate = rate
}

// GetDefaultCameraRadius returns the orbit distance the camera resets to
func GetDefaultCameraRadius() float32 {
	globalSettings.mu.RLock()
	defer globalSettings.mu.RUnlock()
	return globalSettings.cameraRadius
}

// SetDefaultCameraRadius sets the reset orbit distance, clamped to orbit bounds
func SetDefaultCameraRadius(radius float32) {
	globalSettings.mu.Lock()
	defer globalSettings.mu.Unlock()

	if radius < 5 {
		radius = 5
	}
	if radius > 100 {
		radius = 100
	}
	globalSettings.cameraRadius = radius
}

// GetLensBaseStrength returns the base deflection strength before the
// per-frame inverse-distance scaling
func GetLensBaseStrength() float32 {
	globalSettings.mu.RLock()
	defer globalSettings.mu.RUnlock()
	return globalSettings.lensStrength
}

// SetLensBaseStrength sets the base deflection strength
func SetLensBaseStrength(s float32) {
	globalSettings.mu.Lock()
	defer globalSettings.mu.Unlock()

	if s < 0.01 {
		s = 0.01
	}
	if s > 2.0 {
		s = 2.0
	}
	globalSettings.lensStrength = s
}
