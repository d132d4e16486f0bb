package app

import (
	"fmt"
	"log"
	"time"

	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"singularity/internal/camera"
	"singularity/internal/config"
	"singularity/internal/graphics/renderables/disk"
	"singularity/internal/graphics/renderables/horizon"
	"singularity/internal/graphics/renderables/particles"
	"singularity/internal/graphics/renderables/rings"
	"singularity/internal/graphics/renderables/starfield"
	renderer "singularity/internal/graphics/renderer"
	"singularity/internal/hud"
	"singularity/internal/input"
	"singularity/internal/lens"
	"singularity/internal/profiling"
	"singularity/internal/sim"
)

// App is the frame driver: it owns all mutable state (particle buffer, camera
// pose, lens uniforms) and runs the single-threaded simulate → estimate →
// composite sequence every tick. The GLFW callbacks only enqueue events; no
// other writer exists.
type App struct {
	window       *glfw.Window
	inputManager *input.InputManager
	queue        *input.Queue

	field     *sim.Disk
	clock     sim.Clock
	orbit     *camera.Orbit
	estimator *lens.Estimator
	renderer  *renderer.Renderer
	overlay   *hud.HUD

	lensEnabled bool

	fpsLimiter   *FPSLimiter
	lastTime     time.Time
	frames       int
	lastFPSCheck time.Time
}

// NewApp wires the simulation, renderables, compositor and overlay together.
// The GL context must be current on the calling (locked) OS thread.
func NewApp(window *glfw.Window) (*App, error) {
	width, height := window.GetFramebufferSize()

	field := sim.NewDisk(config.GetParticleCount(), disk.InnerRadius, disk.OuterRadius, time.Now().UnixNano())

	r, err := renderer.NewRenderer(width, height,
		starfield.NewStarfield(),
		rings.NewRings(),
		horizon.NewHorizon(),
		disk.NewDisk(),
		particles.NewParticles(field),
	)
	if err != nil {
		return nil, fmt.Errorf("renderer: %w", err)
	}

	overlay, err := hud.NewHUD(width, height)
	if err != nil {
		return nil, fmt.Errorf("hud: %w", err)
	}

	a := &App{
		window:       window,
		inputManager: input.NewInputManager(),
		queue:        input.NewQueue(),
		field:        field,
		orbit:        camera.NewOrbit(mgl32.Vec3{0, 0, 0}),
		estimator:    lens.NewEstimator(),
		renderer:     r,
		overlay:      overlay,
		lensEnabled:  true,
		fpsLimiter:   NewFPSLimiter(),
		lastTime:     time.Now(),
		lastFPSCheck: time.Now(),
	}
	a.installCallbacks()
	return a, nil
}

// Run loops until the window closes
func (a *App) Run() {
	for !a.window.ShouldClose() {
		a.tick()
	}
	a.overlay.Dispose()
	a.renderer.Dispose()
}

func (a *App) tick() {
	profiling.ResetFrame()
	startTick := time.Now()
	now := time.Now()
	dt := now.Sub(a.lastTime).Seconds()
	a.lastTime = now

	glfw.PollEvents()

	// Drain queued pointer/wheel/resize events in arrival order, then apply
	// key toggles. Resizes must land before this frame's capture pass.
	a.drainInput()
	a.applyToggles()

	// Fixed-step simulation time; a hitch advances animation by at most the
	// clamped step
	step := a.clock.Advance(dt)
	func() { defer profiling.Track("sim.Tick")(); a.field.Tick(float32(step)) }()
	a.orbit.Update(float32(step))

	view := a.orbit.ViewMatrix()
	camPos := a.orbit.Position()
	proj := a.renderer.GetCamera().GetProjectionMatrix()
	params := a.estimator.Estimate(view, proj, a.orbit.Target, horizon.Radius, camPos, config.GetLensBaseStrength())

	func() {
		defer profiling.Track("renderer.Render")()
		a.renderer.Render(view, camPos, a.clock.TimeF(), params, a.lensEnabled)
	}()
	a.overlay.Render()

	func() { defer profiling.Track("glfw.SwapBuffers")(); a.window.SwapBuffers() }()

	a.frames++
	if time.Since(a.lastFPSCheck) >= time.Second {
		a.overlay.SetFPS(a.frames)
		fmt.Println("FPS: ", a.frames)
		a.frames = 0
		a.lastFPSCheck = time.Now()
	}

	if d := time.Since(startTick); d > 16*time.Millisecond {
		log.Printf("Slow frame: %v (render passes: %v). Top tasks: %s",
			d, profiling.SumWithPrefix("renderer."), profiling.TopN(5))
	}

	a.inputManager.PostUpdate()
	a.fpsLimiter.Wait()
}

func (a *App) drainInput() {
	dragging := a.inputManager.IsActive(input.ActionOrbitDrag)
	a.queue.Drain(func(ev input.Event) {
		switch ev.Kind {
		case input.EventPointerMove:
			if dragging {
				a.orbit.Drag(float32(ev.X), float32(ev.Y))
			}
		case input.EventWheel:
			a.orbit.Zoom(float32(-ev.Y))
		case input.EventResize:
			w, h := int(ev.X), int(ev.Y)
			if err := a.renderer.UpdateViewport(w, h); err != nil {
				log.Printf("resize render target: %v", err)
			}
			a.overlay.SetViewport(w, h)
		}
	})
}

func (a *App) applyToggles() {
	if a.inputManager.JustPressed(input.ActionQuit) {
		a.window.SetShouldClose(true)
	}
	if a.inputManager.JustPressed(input.ActionResetCamera) {
		a.orbit.Reset()
	}
	if a.inputManager.JustPressed(input.ActionToggleAutoRotate) {
		a.orbit.ToggleAutoRotate()
	}
	if a.inputManager.JustPressed(input.ActionToggleLens) {
		a.lensEnabled = !a.lensEnabled
	}
	if a.inputManager.JustPressed(input.ActionToggleHUD) {
		a.overlay.Toggle()
	}
	if a.inputManager.JustPressed(input.ActionOrbitDrag) {
		// Fresh drag: forget the last pointer sample so the camera doesn't jump
		a.queue.ResetPointer()
	}
}

func (a *App) installCallbacks() {
	a.window.SetCursorPosCallback(func(w *glfw.Window, xpos, ypos float64) {
		a.queue.PushPointer(xpos, ypos)
	})
	a.window.SetScrollCallback(func(w *glfw.Window, xoff, yoff float64) {
		a.queue.PushWheel(yoff)
	})
	a.window.SetMouseButtonCallback(func(w *glfw.Window, button glfw.MouseButton, action glfw.Action, mods glfw.ModifierKey) {
		a.inputManager.HandleMouseButtonEvent(button, action)
	})
	a.window.SetKeyCallback(func(w *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
		a.inputManager.HandleKeyEvent(key, action)
	})
	a.window.SetFramebufferSizeCallback(func(w *glfw.Window, width, height int) {
		a.queue.PushResize(width, height)
	})
}
