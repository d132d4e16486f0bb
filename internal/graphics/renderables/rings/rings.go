package rings

import (
	"math"
	"path/filepath"

	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"singularity/internal/graphics"
	renderer "singularity/internal/graphics/renderer"
	"singularity/internal/profiling"
)

const ShadersDir = "assets/shaders/rings"

var (
	VertShader = filepath.Join(ShadersDir, "rings.vert")
	FragShader = filepath.Join(ShadersDir, "rings.frag")
)

// ringSpec is one thin tilted ring. Opacity oscillates around base with the
// given phase so the rings don't pulse in lockstep.
type ringSpec struct {
	inner, outer float32
	tiltX, tiltZ float32 // radians
	baseOpacity  float32
	phase        float32
}

var specs = []ringSpec{
	{inner: 3.2, outer: 3.5, tiltX: 0.45, tiltZ: 0.0, baseOpacity: 0.35, phase: 0},
	{inner: 4.1, outer: 4.35, tiltX: -0.3, tiltZ: 0.55, baseOpacity: 0.25, phase: 2.1},
	{inner: 5.0, outer: 5.2, tiltX: 0.8, tiltZ: -0.4, baseOpacity: 0.18, phase: 4.4},
}

// Rings renders the faint tilted distortion rings around the horizon. They
// sit inside the lensed region, so they composite undistorted on top of the
// warped background along with the rest of the near-field scene.
type Rings struct {
	shader      *graphics.Shader
	vaos        []uint32
	vbos        []uint32
	vertexCount []int32
	models      []mgl32.Mat4
}

// NewRings creates the distortion rings renderable
func NewRings() *Rings {
	return &Rings{}
}

// Layer places the rings in the undistorted foreground composite
func (r *Rings) Layer() renderer.Layer { return renderer.LayerForeground }

// Init compiles the shader and uploads one annulus mesh per ring
func (r *Rings) Init() error {
	var err error
	r.shader, err = graphics.NewShader(VertShader, FragShader)
	if err != nil {
		return err
	}

	r.vaos = make([]uint32, len(specs))
	r.vbos = make([]uint32, len(specs))
	r.vertexCount = make([]int32, len(specs))
	r.models = make([]mgl32.Mat4, len(specs))

	for i, spec := range specs {
		verts := graphics.RingVertices(spec.inner, spec.outer, 64)
		r.vertexCount[i] = int32(len(verts) / 5)
		r.models[i] = mgl32.HomogRotate3DX(spec.tiltX).Mul4(mgl32.HomogRotate3DZ(spec.tiltZ))

		gl.GenVertexArrays(1, &r.vaos[i])
		gl.BindVertexArray(r.vaos[i])

		gl.GenBuffers(1, &r.vbos[i])
		gl.BindBuffer(gl.ARRAY_BUFFER, r.vbos[i])
		gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.STATIC_DRAW)

		gl.EnableVertexAttribArray(0)
		gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 5*4, 0)
		gl.EnableVertexAttribArray(1)
		gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, 5*4, 3*4)
	}

	return nil
}

// Render draws each ring with its oscillating opacity
func (r *Rings) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.renderRings")()

	r.shader.Use()
	r.shader.SetMatrix4("proj", &ctx.Proj[0])
	r.shader.SetMatrix4("view", &ctx.View[0])

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE)
	gl.DepthMask(false)
	gl.Disable(gl.CULL_FACE)

	for i, spec := range specs {
		opacity := spec.baseOpacity * (0.75 + 0.25*float32(math.Sin(float64(ctx.Time)*0.8+float64(spec.phase))))
		r.shader.SetMatrix4("model", &r.models[i][0])
		r.shader.SetFloat("opacity", opacity)
		r.shader.SetVector3("ringColor", 0.55, 0.7, 1.0)

		gl.BindVertexArray(r.vaos[i])
		gl.DrawArrays(gl.TRIANGLES, 0, r.vertexCount[i])
	}

	gl.Enable(gl.CULL_FACE)
	gl.DepthMask(true)
	gl.Disable(gl.BLEND)
}

// Dispose cleans up OpenGL resources
func (r *Rings) Dispose() {
	for i := range r.vaos {
		if r.vaos[i] != 0 {
			gl.DeleteVertexArrays(1, &r.vaos[i])
		}
		if r.vbos[i] != 0 {
			gl.DeleteBuffers(1, &r.vbos[i])
		}
	}
	if r.shader != nil {
		r.shader.Delete()
	}
}

// SetViewport is a no-op; the rings have no resolution-dependent state
func (r *Rings) SetViewport(width, height int) {}
