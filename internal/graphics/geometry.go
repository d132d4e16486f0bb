package graphics

import (
	"math"
	"math/rand"
)

// Procedural geometry for the scene. All generators return interleaved
// float32 vertex data ready for glBufferData; layouts are documented per
// function.

// FullscreenQuadVertices is the distortion pass quad: pos.xy in NDC, uv.
// Two triangles covering the whole viewport.
var FullscreenQuadVertices = []float32{
	-1, -1, 0, 0,
	1, -1, 1, 0,
	1, 1, 1, 1,
	-1, -1, 0, 0,
	1, 1, 1, 1,
	-1, 1, 0, 1,
}

// SphereVertices generates a UV sphere as triangles with layout
// pos.xyz, normal.xyz (6 floats per vertex).
func SphereVertices(radius float32, stacks, slices int) []float32 {
	// Grid of (stacks+1) x (slices+1) points, two triangles per cell
	point := func(i, j int) (x, y, z float32) {
		phi := math.Pi * float64(i) / float64(stacks)
		theta := 2 * math.Pi * float64(j) / float64(slices)
		sinPhi, cosPhi := math.Sincos(phi)
		sinTheta, cosTheta := math.Sincos(theta)
		return radius * float32(sinPhi*cosTheta),
			radius * float32(cosPhi),
			radius * float32(sinPhi*sinTheta)
	}

	verts := make([]float32, 0, stacks*slices*6*6)
	push := func(x, y, z float32) {
		inv := 1 / radius
		verts = append(verts, x, y, z, x*inv, y*inv, z*inv)
	}
	for i := 0; i < stacks; i++ {
		for j := 0; j < slices; j++ {
			x0, y0, z0 := point(i, j)
			x1, y1, z1 := point(i+1, j)
			x2, y2, z2 := point(i+1, j+1)
			x3, y3, z3 := point(i, j+1)
			push(x0, y0, z0)
			push(x1, y1, z1)
			push(x2, y2, z2)
			push(x0, y0, z0)
			push(x2, y2, z2)
			push(x3, y3, z3)
		}
	}
	return verts
}

// RingVertices generates a flat annulus in the XZ plane as triangles with
// layout pos.xyz, uv (5 floats per vertex: u is the radial fraction 0 at the
// inner edge, v the angular fraction).
func RingVertices(innerRadius, outerRadius float32, segments int) []float32 {
	verts := make([]float32, 0, segments*6*5)
	push := func(r float32, seg int, u float32) {
		theta := 2 * math.Pi * float64(seg) / float64(segments)
		sin, cos := math.Sincos(theta)
		v := float32(seg) / float32(segments)
		verts = append(verts, r*float32(cos), 0, r*float32(sin), u, v)
	}
	for s := 0; s < segments; s++ {
		push(innerRadius, s, 0)
		push(outerRadius, s, 1)
		push(outerRadius, s+1, 1)
		push(innerRadius, s, 0)
		push(outerRadius, s+1, 1)
		push(innerRadius, s+1, 0)
	}
	return verts
}

// StarfieldVertices scatters count points on a spherical shell between minR
// and maxR with layout pos.xyz, brightness (4 floats per vertex).
func StarfieldVertices(count int, minR, maxR float32, seed int64) []float32 {
	rng := rand.New(rand.NewSource(seed))
	verts := make([]float32, 0, count*4)
	for i := 0; i < count; i++ {
		// Uniform direction on the unit sphere
		z := rng.Float64()*2 - 1
		theta := rng.Float64() * 2 * math.Pi
		s := math.Sqrt(1 - z*z)
		r := minR + rng.Float32()*(maxR-minR)
		verts = append(verts,
			r*float32(s*math.Cos(theta)),
			r*float32(z),
			r*float32(s*math.Sin(theta)),
			0.3+rng.Float32()*0.7,
		)
	}
	return verts
}
