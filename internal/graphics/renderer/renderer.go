package renderer

import (
	"github.com/go-gl/gl/v4.1-core/gl"
	"github.com/go-gl/mathgl/mgl32"

	"singularity/internal/graphics"
	"singularity/internal/lens"
	"singularity/internal/profiling"
)

// Renderer orchestrates the two-pass lensed composite over the renderable
// features:
//
//  1. background capture: background-layer renderables into the offscreen
//     color target
//  2. distortion pass: fullscreen quad warping the capture into the default
//     framebuffer
//  3. foreground composite: depth-only clear, foreground-layer renderables
//     drawn over the warped background
//
// With lensing disabled it falls back to a single pass drawing both layers
// straight to the default framebuffer.
type Renderer struct {
	background []Renderable
	foreground []Renderable

	camera   *graphics.Camera
	target   *graphics.RenderTarget
	lensPass *lensPass

	width  int
	height int
}

// NewRenderer creates the compositor with the given renderables, splitting
// them by layer. The GL context must be current.
func NewRenderer(width, height int, rs ...Renderable) (*Renderer, error) {
	// Configure OpenGL
	gl.Enable(gl.DEPTH_TEST)
	gl.Enable(gl.CULL_FACE)
	gl.CullFace(gl.BACK)
	gl.FrontFace(gl.CCW)

	target, err := graphics.NewRenderTarget(width, height)
	if err != nil {
		return nil, err
	}

	lp, err := newLensPass()
	if err != nil {
		target.Destroy()
		return nil, err
	}

	r := &Renderer{
		camera:   graphics.NewCamera(width, height),
		target:   target,
		lensPass: lp,
		width:    width,
		height:   height,
	}
	for _, renderable := range rs {
		if err := renderable.Init(); err != nil {
			return nil, err
		}
		switch renderable.Layer() {
		case LayerBackground:
			r.background = append(r.background, renderable)
		default:
			r.foreground = append(r.foreground, renderable)
		}
	}
	return r, nil
}

// Render draws one frame. When lensed is true the strict three-pass sequence
// runs; otherwise both layers render directly to the default framebuffer.
func (r *Renderer) Render(view mgl32.Mat4, camPos mgl32.Vec3, simTime float32, params lens.Params, lensed bool) {
	ctx := RenderContext{
		Camera: r.camera,
		View:   view,
		Proj:   r.camera.GetProjectionMatrix(),
		CamPos: camPos,
		Time:   simTime,
		Lens:   params,
	}

	if !lensed {
		r.renderDirect(ctx)
		return
	}

	// Pass 1: capture the background layer offscreen
	func() {
		defer profiling.Track("renderer.backgroundCapture")()
		r.target.Bind()
		gl.ClearColor(0, 0, 0, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT | gl.STENCIL_BUFFER_BIT)
		for _, renderable := range r.background {
			renderable.Render(ctx)
		}
		r.target.Unbind()
	}()

	// Pass 2: warp the capture onto the default framebuffer
	func() {
		defer profiling.Track("renderer.distortionPass")()
		gl.Viewport(0, 0, int32(r.width), int32(r.height))
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
		r.lensPass.draw(r.target.ColorTex, params)
	}()

	// Pass 3: foreground on top; keep the warped color, reset depth only
	func() {
		defer profiling.Track("renderer.foregroundComposite")()
		gl.Clear(gl.DEPTH_BUFFER_BIT)
		for _, renderable := range r.foreground {
			renderable.Render(ctx)
		}
	}()
}

// renderDirect is the non-lensed fallback: one pass, both layers visible.
func (r *Renderer) renderDirect(ctx RenderContext) {
	defer profiling.Track("renderer.renderDirect")()
	gl.Viewport(0, 0, int32(r.width), int32(r.height))
	gl.ClearColor(0, 0, 0, 1)
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
	for _, renderable := range r.background {
		renderable.Render(ctx)
	}
	for _, renderable := range r.foreground {
		renderable.Render(ctx)
	}
}

// UpdateViewport resizes the offscreen target and the projection aspect.
// Must run before the next frame's capture pass.
func (r *Renderer) UpdateViewport(width, height int) error {
	if width <= 0 || height <= 0 {
		return nil
	}
	r.width = width
	r.height = height
	r.camera.SetViewport(width, height)
	for _, renderable := range r.background {
		renderable.SetViewport(width, height)
	}
	for _, renderable := range r.foreground {
		renderable.SetViewport(width, height)
	}
	return r.target.Resize(width, height)
}

// GetCamera returns the projection camera instance
func (r *Renderer) GetCamera() *graphics.Camera {
	return r.camera
}

// Dispose cleans up all renderables in reverse order, then the pass resources
func (r *Renderer) Dispose() {
	for i := len(r.foreground) - 1; i >= 0; i-- {
		r.foreground[i].Dispose()
	}
	for i := len(r.background) - 1; i >= 0; i-- {
		r.background[i].Dispose()
	}
	r.lensPass.dispose()
	r.target.Destroy()
}
