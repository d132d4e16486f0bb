package disk

import (
	"math"
	"path/filepath"

	"github.com/go-gl/gl/v4.1-core/gl"

	"singularity/internal/graphics"
	renderer "singularity/internal/graphics/renderer"
	"singularity/internal/profiling"
)

const (
	ShadersDir = "assets/shaders/disk"

	// InnerRadius / OuterRadius bound the shaded disk surface and the
	// particle annulus alike.
	InnerRadius = 6.0
	OuterRadius = 24.0

	segments = 96

	// rotationRate is the angular speed of the disk texture phase, not of
	// any individual particle (those follow the Keplerian law in the sim).
	rotationRate = 0.12
)

var (
	VertShader = filepath.Join(ShadersDir, "disk.vert")
	FragShader = filepath.Join(ShadersDir, "disk.frag")
)

// Disk renders the shaded accretion disk surface: a flat annulus whose
// fragment shader animates rotation, turbulence and brightness flicker from
// the simulation clock.
type Disk struct {
	shader      *graphics.Shader
	vao         uint32
	vbo         uint32
	vertexCount int32
}

// NewDisk creates the accretion disk surface renderable
func NewDisk() *Disk {
	return &Disk{}
}

// Layer places the disk surface in the undistorted foreground composite
func (d *Disk) Layer() renderer.Layer { return renderer.LayerForeground }

// Init compiles the shader and uploads the annulus mesh
func (d *Disk) Init() error {
	var err error
	d.shader, err = graphics.NewShader(VertShader, FragShader)
	if err != nil {
		return err
	}

	verts := graphics.RingVertices(InnerRadius, OuterRadius, segments)
	d.vertexCount = int32(len(verts) / 5)

	gl.GenVertexArrays(1, &d.vao)
	gl.BindVertexArray(d.vao)

	gl.GenBuffers(1, &d.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, d.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 5*4, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, 5*4, 3*4)

	return nil
}

// Render draws the disk surface with both faces visible and additive blending
func (d *Disk) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.renderDisk")()

	// Light intensity flicker: two incommensurate sines so it never loops
	// visibly
	flicker := 0.9 + 0.06*float32(math.Sin(float64(ctx.Time)*7.3)) +
		0.04*float32(math.Sin(float64(ctx.Time)*3.1))

	d.shader.Use()
	d.shader.SetMatrix4("proj", &ctx.Proj[0])
	d.shader.SetMatrix4("view", &ctx.View[0])
	d.shader.SetFloat("time", ctx.Time)
	d.shader.SetFloat("rotationRate", rotationRate)
	d.shader.SetFloat("flicker", flicker)

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE)
	gl.DepthMask(false)
	gl.Disable(gl.CULL_FACE)

	gl.BindVertexArray(d.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, d.vertexCount)

	gl.Enable(gl.CULL_FACE)
	gl.DepthMask(true)
	gl.Disable(gl.BLEND)
}

// Dispose cleans up OpenGL resources
func (d *Disk) Dispose() {
	if d.vao != 0 {
		gl.DeleteVertexArrays(1, &d.vao)
	}
	if d.vbo != 0 {
		gl.DeleteBuffers(1, &d.vbo)
	}
	if d.shader != nil {
		d.shader.Delete()
	}
}

// SetViewport is a no-op; the disk has no resolution-dependent state
func (d *Disk) SetViewport(width, height int) {}
