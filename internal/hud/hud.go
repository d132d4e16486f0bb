// Package hud draws the on-screen overlay: currently just the FPS counter,
// updated once per wall-clock second by the frame driver.
package hud

import (
	"fmt"

	"github.com/go-gl/mathgl/mgl32"
)

// HUD owns the font renderer and the values it displays.
type HUD struct {
	fontRenderer *FontRenderer

	visible bool
	fps     int
}

// NewHUD builds the font atlas and renderer. The GL context must be current.
func NewHUD(width, height int) (*HUD, error) {
	atlas, err := BuildFontAtlas(22)
	if err != nil {
		return nil, err
	}
	fr, err := NewFontRenderer(atlas, width, height)
	if err != nil {
		return nil, err
	}
	return &HUD{fontRenderer: fr, visible: true}, nil
}

// SetFPS updates the displayed frame rate
func (h *HUD) SetFPS(fps int) { h.fps = fps }

// Toggle flips overlay visibility and returns the new state
func (h *HUD) Toggle() bool {
	h.visible = !h.visible
	return h.visible
}

// SetViewport updates the overlay projection after a resize
func (h *HUD) SetViewport(width, height int) {
	h.fontRenderer.SetViewport(width, height)
}

// Render draws the overlay. Call after the 3D passes so text composites on top.
func (h *HUD) Render() {
	if !h.visible {
		return
	}
	h.fontRenderer.Render(fmt.Sprintf("FPS: %d", h.fps), 12, 26, 1.0, mgl32.Vec3{0.9, 0.9, 0.9})
}

// Dispose releases the GL resources
func (h *HUD) Dispose() {
	h.fontRenderer.Dispose()
}
