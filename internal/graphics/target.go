package graphics

import (
	"fmt"

	"github.com/go-gl/gl/v4.1-core/gl"
)

// RenderTarget is an offscreen color framebuffer sized to the viewport.
// The background capture pass renders into it and the distortion pass samples
// its color texture. A depth renderbuffer is attached so depth testing works
// during the capture; only the color texture is ever sampled.
type RenderTarget struct {
	FBO      uint32
	ColorTex uint32
	depthRBO uint32

	Width  int32
	Height int32
}

// NewRenderTarget allocates a color texture + depth renderbuffer FBO.
func NewRenderTarget(width, height int) (*RenderTarget, error) {
	t := &RenderTarget{}
	if err := t.allocate(int32(width), int32(height)); err != nil {
		t.Destroy()
		return nil, err
	}
	return t, nil
}

func (t *RenderTarget) allocate(width, height int32) error {
	t.Width = width
	t.Height = height

	gl.GenFramebuffers(1, &t.FBO)
	gl.BindFramebuffer(gl.FRAMEBUFFER, t.FBO)

	gl.GenTextures(1, &t.ColorTex)
	gl.BindTexture(gl.TEXTURE_2D, t.ColorTex)
	gl.TexImage2D(gl.TEXTURE_2D, 0, gl.RGBA8, width, height, 0, gl.RGBA, gl.UNSIGNED_BYTE, nil)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MIN_FILTER, gl.LINEAR)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_MAG_FILTER, gl.LINEAR)
	// Clamp so the warped UVs near the border never wrap to the opposite edge
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_S, gl.CLAMP_TO_EDGE)
	gl.TexParameteri(gl.TEXTURE_2D, gl.TEXTURE_WRAP_T, gl.CLAMP_TO_EDGE)
	gl.FramebufferTexture2D(gl.FRAMEBUFFER, gl.COLOR_ATTACHMENT0, gl.TEXTURE_2D, t.ColorTex, 0)

	gl.GenRenderbuffers(1, &t.depthRBO)
	gl.BindRenderbuffer(gl.RENDERBUFFER, t.depthRBO)
	gl.RenderbufferStorage(gl.RENDERBUFFER, gl.DEPTH24_STENCIL8, width, height)
	gl.FramebufferRenderbuffer(gl.FRAMEBUFFER, gl.DEPTH_STENCIL_ATTACHMENT, gl.RENDERBUFFER, t.depthRBO)

	status := gl.CheckFramebufferStatus(gl.FRAMEBUFFER)
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
	if status != gl.FRAMEBUFFER_COMPLETE {
		return fmt.Errorf("render target incomplete: status 0x%x", status)
	}
	return nil
}

// Bind makes the target the active framebuffer and sets its viewport.
func (t *RenderTarget) Bind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, t.FBO)
	gl.Viewport(0, 0, t.Width, t.Height)
}

// Unbind restores the default framebuffer. The caller is responsible for
// restoring the window viewport.
func (t *RenderTarget) Unbind() {
	gl.BindFramebuffer(gl.FRAMEBUFFER, 0)
}

// Resize recreates the attachments at the new dimensions. Must happen before
// the next capture pass so the distortion pass never samples a stale-sized
// texture.
func (t *RenderTarget) Resize(width, height int) error {
	t.Destroy()
	return t.allocate(int32(width), int32(height))
}

// Destroy releases the GL objects. Safe to call on a zero target.
func (t *RenderTarget) Destroy() {
	if t.ColorTex != 0 {
		gl.DeleteTextures(1, &t.ColorTex)
		t.ColorTex = 0
	}
	if t.depthRBO != 0 {
		gl.DeleteRenderbuffers(1, &t.depthRBO)
		t.depthRBO = 0
	}
	if t.FBO != 0 {
		gl.DeleteFramebuffers(1, &t.FBO)
		t.FBO = 0
	}
}
