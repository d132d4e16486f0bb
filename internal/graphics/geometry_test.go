package graphics

import (
	"math"
	"testing"
)

func TestFullscreenQuadCoversNDC(t *testing.T) {
	if len(FullscreenQuadVertices) != 6*4 {
		t.Fatalf("quad has %d floats, want 24", len(FullscreenQuadVertices))
	}
	corners := map[[2]float32]bool{}
	for i := 0; i < len(FullscreenQuadVertices); i += 4 {
		x, y := FullscreenQuadVertices[i], FullscreenQuadVertices[i+1]
		u, v := FullscreenQuadVertices[i+2], FullscreenQuadVertices[i+3]
		corners[[2]float32{x, y}] = true
		// uv must be the ndc corner remapped to [0,1]
		if u != x*0.5+0.5 || v != y*0.5+0.5 {
			t.Fatalf("vertex %d uv (%v,%v) does not match ndc (%v,%v)", i/4, u, v, x, y)
		}
	}
	for _, c := range [][2]float32{{-1, -1}, {1, -1}, {1, 1}, {-1, 1}} {
		if !corners[c] {
			t.Fatalf("quad missing corner %v", c)
		}
	}
}

func TestSphereVertices(t *testing.T) {
	const radius = 2.5
	stacks, slices := 8, 12
	verts := SphereVertices(radius, stacks, slices)

	wantFloats := stacks * slices * 6 * 6
	if len(verts) != wantFloats {
		t.Fatalf("sphere has %d floats, want %d", len(verts), wantFloats)
	}
	for i := 0; i < len(verts); i += 6 {
		x, y, z := verts[i], verts[i+1], verts[i+2]
		r := math.Sqrt(float64(x*x + y*y + z*z))
		if math.Abs(r-radius) > 1e-4 {
			t.Fatalf("vertex %d at radius %.6f, want %v", i/6, r, radius)
		}
		nx, ny, nz := verts[i+3], verts[i+4], verts[i+5]
		nlen := math.Sqrt(float64(nx*nx + ny*ny + nz*nz))
		if math.Abs(nlen-1) > 1e-4 {
			t.Fatalf("vertex %d normal length %.6f, want 1", i/6, nlen)
		}
		// Outward normal: aligned with the position direction
		if dot := float64(nx*x+ny*y+nz*z) / r; math.Abs(dot-1) > 1e-4 {
			t.Fatalf("vertex %d normal not outward, cos=%v", i/6, dot)
		}
	}
}

func TestRingVertices(t *testing.T) {
	const inner, outer = float32(6), float32(24)
	segments := 32
	verts := RingVertices(inner, outer, segments)

	wantFloats := segments * 6 * 5
	if len(verts) != wantFloats {
		t.Fatalf("ring has %d floats, want %d", len(verts), wantFloats)
	}
	for i := 0; i < len(verts); i += 5 {
		x, y, z := verts[i], verts[i+1], verts[i+2]
		if y != 0 {
			t.Fatalf("vertex %d off the XZ plane: y=%v", i/5, y)
		}
		r := float32(math.Sqrt(float64(x*x + z*z)))
		if r < inner-1e-3 || r > outer+1e-3 {
			t.Fatalf("vertex %d at radius %v outside [%v, %v]", i/5, r, inner, outer)
		}
		u := verts[i+3]
		// u encodes the radial fraction: 0 at the inner edge, 1 at the outer
		wantR := inner + u*(outer-inner)
		if math.Abs(float64(r-wantR)) > 1e-3 {
			t.Fatalf("vertex %d u=%v implies radius %v, got %v", i/5, u, wantR, r)
		}
	}
}

func TestStarfieldVertices(t *testing.T) {
	const minR, maxR = float32(200), float32(400)
	count := 1000
	verts := StarfieldVertices(count, minR, maxR, 7)

	if len(verts) != count*4 {
		t.Fatalf("starfield has %d floats, want %d", len(verts), count*4)
	}
	for i := 0; i < len(verts); i += 4 {
		x, y, z := verts[i], verts[i+1], verts[i+2]
		r := float32(math.Sqrt(float64(x*x + y*y + z*z)))
		if r < minR-1e-2 || r > maxR+1e-2 {
			t.Fatalf("star %d at radius %v outside shell [%v, %v]", i/4, r, minR, maxR)
		}
		if b := verts[i+3]; b < 0.3 || b > 1.0 {
			t.Fatalf("star %d brightness %v outside [0.3, 1.0]", i/4, b)
		}
	}
}

func TestStarfieldDeterministicSeed(t *testing.T) {
	a := StarfieldVertices(100, 200, 400, 7)
	b := StarfieldVertices(100, 200, 400, 7)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("same seed diverged at float %d", i)
		}
	}
}
