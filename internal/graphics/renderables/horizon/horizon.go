package horizon

import (
	"math"
	"path/filepath"

	"github.com/go-gl/gl/v4.1-core/gl"

	"singularity/internal/graphics"
	renderer "singularity/internal/graphics/renderer"
	"singularity/internal/profiling"
)

const (
	ShadersDir = "assets/shaders/horizon"

	// Radius is the event horizon's world-space radius; it is also the
	// reference radius the lens estimator projects each frame.
	Radius = 2.5

	// glowScale sizes the additive glow shell relative to the horizon.
	glowScale = 1.18
)

var (
	HorizonVertShader = filepath.Join(ShadersDir, "horizon.vert")
	HorizonFragShader = filepath.Join(ShadersDir, "horizon.frag")
	GlowVertShader    = filepath.Join(ShadersDir, "glow.vert")
	GlowFragShader    = filepath.Join(ShadersDir, "glow.frag")
)

// Horizon renders the event horizon sphere (opaque black) and its pulsating
// additive glow shell.
type Horizon struct {
	horizonShader *graphics.Shader
	glowShader    *graphics.Shader

	vao         uint32
	vbo         uint32
	vertexCount int32
}

// NewHorizon creates the event horizon renderable
func NewHorizon() *Horizon {
	return &Horizon{}
}

// Layer places the horizon in the undistorted foreground composite
func (h *Horizon) Layer() renderer.Layer { return renderer.LayerForeground }

// Init compiles the shaders and uploads the sphere mesh
func (h *Horizon) Init() error {
	var err error
	h.horizonShader, err = graphics.NewShader(HorizonVertShader, HorizonFragShader)
	if err != nil {
		return err
	}
	h.glowShader, err = graphics.NewShader(GlowVertShader, GlowFragShader)
	if err != nil {
		return err
	}

	verts := graphics.SphereVertices(Radius, 32, 48)
	h.vertexCount = int32(len(verts) / 6)

	gl.GenVertexArrays(1, &h.vao)
	gl.BindVertexArray(h.vao)

	gl.GenBuffers(1, &h.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, h.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 6*4, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, 6*4, 3*4)

	return nil
}

// Render draws the black sphere, then the glow shell with additive blending
func (h *Horizon) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.renderHorizon")()

	h.horizonShader.Use()
	h.horizonShader.SetMatrix4("proj", &ctx.Proj[0])
	h.horizonShader.SetMatrix4("view", &ctx.View[0])

	gl.BindVertexArray(h.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, h.vertexCount)

	// Glow shell: scaled-up same mesh, additive, back faces only so the
	// shell reads as a halo instead of a solid ball
	glowPulse := 0.55 + 0.15*float32(math.Sin(float64(ctx.Time)*2.0))

	h.glowShader.Use()
	h.glowShader.SetMatrix4("proj", &ctx.Proj[0])
	h.glowShader.SetMatrix4("view", &ctx.View[0])
	h.glowShader.SetFloat("scale", glowScale)
	h.glowShader.SetFloat("intensity", glowPulse)
	h.glowShader.SetVector3("glowColor", 1.0, 0.55, 0.15)
	h.glowShader.SetVector3("camPos", ctx.CamPos.X(), ctx.CamPos.Y(), ctx.CamPos.Z())

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE)
	gl.DepthMask(false)
	gl.CullFace(gl.FRONT)

	gl.DrawArrays(gl.TRIANGLES, 0, h.vertexCount)

	gl.CullFace(gl.BACK)
	gl.DepthMask(true)
	gl.Disable(gl.BLEND)
}

// Dispose cleans up OpenGL resources
func (h *Horizon) Dispose() {
	if h.vao != 0 {
		gl.DeleteVertexArrays(1, &h.vao)
	}
	if h.vbo != 0 {
		gl.DeleteBuffers(1, &h.vbo)
	}
	if h.horizonShader != nil {
		h.horizonShader.Delete()
	}
	if h.glowShader != nil {
		h.glowShader.Delete()
	}
}

// SetViewport is a no-op; the horizon has no resolution-dependent state
func (h *Horizon) SetViewport(width, height int) {}
