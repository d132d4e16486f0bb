package starfield

import (
	"path/filepath"

	"github.com/go-gl/gl/v4.1-core/gl"

	"singularity/internal/graphics"
	renderer "singularity/internal/graphics/renderer"
	"singularity/internal/profiling"
)

const (
	ShadersDir = "assets/shaders/starfield"

	starCount = 3000
	shellMin  = 200.0
	shellMax  = 400.0
)

var (
	VertShader = filepath.Join(ShadersDir, "starfield.vert")
	FragShader = filepath.Join(ShadersDir, "starfield.frag")
)

// Starfield renders the static background star shell. It lives in the
// background layer, so the lens pass is what bends the stars around the
// silhouette.
type Starfield struct {
	shader      *graphics.Shader
	vao         uint32
	vbo         uint32
	vertexCount int32
}

// NewStarfield creates the starfield renderable
func NewStarfield() *Starfield {
	return &Starfield{}
}

// Layer places the stars in the lensed background capture
func (s *Starfield) Layer() renderer.Layer { return renderer.LayerBackground }

// Init compiles the shader and uploads the star shell
func (s *Starfield) Init() error {
	var err error
	s.shader, err = graphics.NewShader(VertShader, FragShader)
	if err != nil {
		return err
	}

	verts := graphics.StarfieldVertices(starCount, shellMin, shellMax, 7)
	s.vertexCount = int32(len(verts) / 4)

	gl.GenVertexArrays(1, &s.vao)
	gl.BindVertexArray(s.vao)

	gl.GenBuffers(1, &s.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, s.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(verts)*4, gl.Ptr(verts), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, 4*4, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 1, gl.FLOAT, false, 4*4, 3*4)

	gl.Enable(gl.PROGRAM_POINT_SIZE)

	return nil
}

// Render draws the star points; the view matrix keeps its translation so
// very distant stars still parallax slightly when zooming
func (s *Starfield) Render(ctx renderer.RenderContext) {
	defer profiling.Track("renderer.renderStarfield")()

	s.shader.Use()
	s.shader.SetMatrix4("proj", &ctx.Proj[0])
	s.shader.SetMatrix4("view", &ctx.View[0])

	gl.BindVertexArray(s.vao)
	gl.DrawArrays(gl.POINTS, 0, s.vertexCount)
}

// Dispose cleans up OpenGL resources
func (s *Starfield) Dispose() {
	if s.vao != 0 {
		gl.DeleteVertexArrays(1, &s.vao)
	}
	if s.vbo != 0 {
		gl.DeleteBuffers(1, &s.vbo)
	}
	if s.shader != nil {
		s.shader.Delete()
	}
}

// SetViewport is a no-op; star sizes are fixed in pixels
func (s *Starfield) SetViewport(width, height int) {}
