package config

import "testing"

func TestFPSLimitClamp(t *testing.T) {
	defer SetFPSLimit(120)

	SetFPSLimit(-10)
	if got := GetFPSLimit(); got != 0 {
		t.Fatalf("negative limit clamped to %d, want 0", got)
	}
	SetFPSLimit(1000)
	if got := GetFPSLimit(); got != 480 {
		t.Fatalf("huge limit clamped to %d, want 480", got)
	}
	SetFPSLimit(60)
	if got := GetFPSLimit(); got != 60 {
		t.Fatalf("in-range limit changed to %d", got)
	}
}

func TestParticleCountClamp(t *testing.T) {
	defer SetParticleCount(5000)

	SetParticleCount(1)
	if got := GetParticleCount(); got != 100 {
		t.Fatalf("tiny count clamped to %d, want 100", got)
	}
	SetParticleCount(1 << 30)
	if got := GetParticleCount(); got != 50000 {
		t.Fatalf("huge count clamped to %d, want 50000", got)
	}
}

func TestAutoRotateRateClamp(t *testing.T) {
	defer SetAutoRotateRate(0.15)

	SetAutoRotateRate(-1)
	if got := GetAutoRotateRate(); got != 0 {
		t.Fatalf("negative rate clamped to %v, want 0", got)
	}
	SetAutoRotateRate(10)
	if got := GetAutoRotateRate(); got != 2.0 {
		t.Fatalf("huge rate clamped to %v, want 2.0", got)
	}
}

func TestDefaultCameraRadiusClamp(t *testing.T) {
	defer SetDefaultCameraRadius(30)

	SetDefaultCameraRadius(0)
	if got := GetDefaultCameraRadius(); got != 5 {
		t.Fatalf("tiny radius clamped to %v, want 5", got)
	}
	SetDefaultCameraRadius(1e6)
	if got := GetDefaultCameraRadius(); got != 100 {
		t.Fatalf("huge radius clamped to %v, want 100", got)
	}
}

func TestLensBaseStrengthClamp(t *testing.T) {
	defer SetLensBaseStrength(0.35)

	SetLensBaseStrength(0)
	if got := GetLensBaseStrength(); got != 0.01 {
		t.Fatalf("zero strength clamped to %v, want 0.01", got)
	}
	SetLensBaseStrength(50)
	if got := GetLensBaseStrength(); got != 2.0 {
		t.Fatalf("huge strength clamped to %v, want 2.0", got)
	}
}
