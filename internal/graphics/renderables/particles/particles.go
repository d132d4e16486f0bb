package particles

import (
	"path/filepath"

	"github.com/go-gl/gl/v4.1-core/gl"

	"singularity/internal/graphics"
	renderer "singularity/internal/graphics/renderer"
	"singularity/internal/profiling"
	"singularity/internal/sim"
)

const ShadersDir = "assets/shaders/particles"

var (
	VertShader = filepath.Join(ShadersDir, "particles.vert")
	FragShader = filepath.Join(ShadersDir, "particles.frag")
)

// Particles renders the orbital particle field as additive point sprites.
// The sim owns the particle buffers; this renderable re-uploads them only
// when the sim reports a change, into VBOs allocated once at Init.
type Particles struct {
	field *sim.Disk

	shader  *graphics.Shader
	vao     uint32
	posVBO  uint32
	colVBO  uint32
	sizeVBO uint32
}

// NewParticles creates the particle field renderable over the given sim disk
func NewParticles(field *sim.Disk) *Particles {
	return &Particles{field: field}
}

// Layer places the particles in the undistorted foreground composite
func (p *Particles) Layer() renderer.Layer { return renderer.LayerForeground }

// Init compiles the shader and allocates the dynamic VBOs at full capacity
func (p *Particles) Init() error {
	var err error
	p.shader, err = graphics.NewShader(VertShader, FragShader)
	if err != nil {
		return err
	}

	gl.GenVertexArrays(1, &p.vao)
	gl.BindVertexArray(p.vao)

	gl.GenBuffers(1, &p.posVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, p.posVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(p.field.Positions())*4, gl.Ptr(p.field.Positions()), gl.DYNAMIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 3*4, 0)

	gl.GenBuffers(1, &p.colVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, p.colVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(p.field.Colors())*4, gl.Ptr(p.field.Colors()), gl.DYNAMIC_DRAW)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 3, gl.FLOAT, false, 3*4, 0)

	gl.GenBuffers(1, &p.sizeVBO)
	gl.BindBuffer(gl.ARRAY_BUFFER, p.sizeVBO)
	gl.BufferData(gl.ARRAY_BUFFER, len(p.field.Sizes())*4, gl.Ptr(p.field.Sizes()), gl.DYNAMIC_DRAW)
	gl.EnableVertexAttribArray(2)
	gl.VertexAttribPointerWithOffset(2, 1, gl.FLOAT, false, 1*4, 0)

	gl.Enable(gl.PROGRAM_POINT_SIZE)

	return nil
}

// Render re-uploads changed particle data and draws the point field
func (p *Particles) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.renderParticles")()

	if p.field.ConsumeDirty() {
		// Respawns recolor and resize particles too, so refresh all three
		gl.BindBuffer(gl.ARRAY_BUFFER, p.posVBO)
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(p.field.Positions())*4, gl.Ptr(p.field.Positions()))
		gl.BindBuffer(gl.ARRAY_BUFFER, p.colVBO)
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(p.field.Colors())*4, gl.Ptr(p.field.Colors()))
		gl.BindBuffer(gl.ARRAY_BUFFER, p.sizeVBO)
		gl.BufferSubData(gl.ARRAY_BUFFER, 0, len(p.field.Sizes())*4, gl.Ptr(p.field.Sizes()))
	}

	p.shader.Use()
	p.shader.SetMatrix4("proj", &ctx.Proj[0])
	p.shader.SetMatrix4("view", &ctx.View[0])

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE)
	gl.DepthMask(false)

	gl.BindVertexArray(p.vao)
	gl.DrawArrays(gl.POINTS, 0, int32(p.field.Count()))

	gl.DepthMask(true)
	gl.Disable(gl.BLEND)
}

// Dispose cleans up OpenGL resources
func (p *Particles) Dispose() {
	if p.vao != 0 {
		gl.DeleteVertexArrays(1, &p.vao)
	}
	for _, vbo := range []uint32{p.posVBO, p.colVBO, p.sizeVBO} {
		if vbo != 0 {
			gl.DeleteBuffers(1, &vbo)
		}
	}
	if p.shader != nil {
		p.shader.Delete()
	}
}

// SetViewport is a no-op; point sizes are specified in pixels already
func (p *Particles) SetViewport(width, height int) {}
