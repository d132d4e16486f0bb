package renderer

import (
	"github.com/go-gl/mathgl/mgl32"

	"singularity/internal/graphics"
	"singularity/internal/lens"
)

// Layer tags a renderable for one of the two compositing passes. Background
// objects are captured offscreen and warped by the lens pass; foreground
// objects are drawn undistorted on top.
type Layer int

const (
	LayerBackground Layer = iota
	LayerForeground
)

// RenderContext provides shared per-frame state for all renderables
type RenderContext struct {
	Camera *graphics.Camera
	View   mgl32.Mat4
	Proj   mgl32.Mat4
	CamPos mgl32.Vec3

	// Time is the simulation clock driving pulsation/turbulence uniforms
	Time float32

	Lens lens.Params
}

// Renderable interface defines the lifecycle for renderable features
type Renderable interface {
	Init() error
	Layer() Layer
	Render(ctx RenderContext)
	Dispose()
	SetViewport(width, height int)
}
