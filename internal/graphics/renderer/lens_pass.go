package renderer

import (
	"path/filepath"

	"github.com/go-gl/gl/v4.1-core/gl"

	"singularity/internal/graphics"
	"singularity/internal/lens"
)

const lensShadersDir = "assets/shaders/lens"

var (
	lensVertShader = filepath.Join(lensShadersDir, "lens.vert")
	lensFragShader = filepath.Join(lensShadersDir, "lens.frag")
)

// lensPass owns the fullscreen quad and shader of the distortion pass. The
// fragment stage implements the same deflection function as lens.DeflectUV.
type lensPass struct {
	shader *graphics.Shader
	vao    uint32
	vbo    uint32
	tuning lens.Tuning
}

func newLensPass() (*lensPass, error) {
	shader, err := graphics.NewShader(lensVertShader, lensFragShader)
	if err != nil {
		return nil, err
	}

	p := &lensPass{shader: shader, tuning: lens.DefaultTuning()}

	gl.GenVertexArrays(1, &p.vao)
	gl.BindVertexArray(p.vao)

	gl.GenBuffers(1, &p.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, p.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(graphics.FullscreenQuadVertices)*4,
		gl.Ptr(graphics.FullscreenQuadVertices), gl.STATIC_DRAW)

	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(0, 2, gl.FLOAT, false, 4*4, 0)
	gl.EnableVertexAttribArray(1)
	gl.VertexAttribPointerWithOffset(1, 2, gl.FLOAT, false, 4*4, 2*4)

	return p, nil
}

// draw samples the background capture through the deflection field. Depth
// testing is disabled for the quad; the foreground pass clears depth anyway.
func (p *lensPass) draw(backgroundTex uint32, params lens.Params) {
	gl.Disable(gl.DEPTH_TEST)
	defer gl.Enable(gl.DEPTH_TEST)

	p.shader.Use()
	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, backgroundTex)
	p.shader.SetInt("backgroundTex", 0)

	p.shader.SetVector2("screenCenter", params.ScreenCenter.X(), params.ScreenCenter.Y())
	p.shader.SetFloat("screenRadius", params.ScreenRadius)
	p.shader.SetFloat("lensStrength", params.Strength)

	p.shader.SetFloat("influenceFactor", p.tuning.InfluenceFactor)
	p.shader.SetFloat("safeDistFactor", p.tuning.SafeDistFactor)
	p.shader.SetFloat("aberrationScale", p.tuning.AberrationScale)
	p.shader.SetFloat("edgeBrightness", p.tuning.EdgeBrightness)
	p.shader.SetFloat("uvEpsilon", p.tuning.UVEpsilon)

	gl.BindVertexArray(p.vao)
	gl.DrawArrays(gl.TRIANGLES, 0, 6)
}

func (p *lensPass) dispose() {
	if p.vao != 0 {
		gl.DeleteVertexArrays(1, &p.vao)
	}
	if p.vbo != 0 {
		gl.DeleteBuffers(1, &p.vbo)
	}
	if p.shader != nil {
		p.shader.Delete()
	}
}
