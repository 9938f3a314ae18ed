// Package render owns the window, the GPU resources and the main loop of
// the viewer.
package render

import (
	"context"
	"fmt"

	"github.com/go-gl/gl/v4.6-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/leterax/go-walkabout/internal/logging"
	"github.com/leterax/go-walkabout/internal/openglhelper"
	"github.com/leterax/go-walkabout/pkg/camera"
	"github.com/leterax/go-walkabout/pkg/config"
	"github.com/leterax/go-walkabout/pkg/input"
	"github.com/leterax/go-walkabout/pkg/scene"
)

// drawable pairs a scene object with its uploaded mesh
type drawable struct {
	object *scene.Object
	mesh   *openglhelper.Mesh
}

// Renderer handles rendering logic and the main loop
type Renderer struct {
	window  *openglhelper.Window
	camera  *camera.Camera
	tracker *input.Tracker
	updater *camera.FrameUpdater

	scene     *scene.Scene
	shader    *openglhelper.Shader
	drawables []drawable

	isClosed bool
}

// NewRenderer creates the window, uploads the scene and wires input
// callbacks. It must be called from the main OS thread.
func NewRenderer(cfg *config.Config) (*Renderer, error) {
	// Create window
	window, err := openglhelper.NewWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, cfg.Window.VSync)
	if err != nil {
		return nil, fmt.Errorf("failed to create window: %w", err)
	}

	// Create camera and input state
	cam := camera.NewCamera(
		mgl64.Vec3(cfg.Camera.Position),
		cfg.Camera.FOV,
		cfg.Camera.Near,
		cfg.Camera.Far,
	)
	cam.SetViewport(window.Size())
	tracker := input.NewTracker(cfg.Camera.Yaw, cfg.Camera.Pitch, cfg.Controls.LookSensitivity)

	renderer := &Renderer{
		window:  window,
		camera:  cam,
		tracker: tracker,
		scene:   scene.New(cfg.Scene),
	}
	renderer.updater = camera.NewFrameUpdater(cam, tracker, renderer, cfg.Controls.MoveSpeed)

	// Load shader
	shader, err := openglhelper.NewShader(lambertVertexSource, lambertFragmentSource)
	if err != nil {
		window.Close()
		return nil, fmt.Errorf("failed to load shader: %w", err)
	}
	renderer.shader = shader

	// Upload scene geometry
	for i := range renderer.scene.Objects {
		obj := &renderer.scene.Objects[i]
		renderer.drawables = append(renderer.drawables, drawable{
			object: obj,
			mesh:   openglhelper.NewMesh(obj.Geometry.Vertices, obj.Geometry.Indices),
		})
		logging.Logger().Debug("uploaded mesh",
			"object", obj.Name,
			"vertices", obj.Geometry.VertexCount(),
			"indices", len(obj.Geometry.Indices),
		)
	}

	// Callbacks go in last so a failed constructor leaves nothing wired
	renderer.installCallbacks(window.GLFWWindow())

	return renderer, nil
}

// installCallbacks routes window events to the renderer
func (r *Renderer) installCallbacks(w *glfw.Window) {
	w.SetKeyCallback(r.keyCallback)
	w.SetCursorPosCallback(r.cursorPosCallback)
	w.SetMouseButtonCallback(r.mouseButtonCallback)
	w.SetFramebufferSizeCallback(r.framebufferSizeCallback)
	w.SetFocusCallback(r.focusCallback)
}

// Render draws the scene from cam. It is called by the frame updater once
// the camera pose for the frame is final.
func (r *Renderer) Render(cam *camera.Camera) {
	r.window.Clear(r.scene.Background.Vec4(1))

	r.shader.Use()

	// Set up view and projection matrices
	r.shader.SetMat4("view", cam.ViewMatrix())
	r.shader.SetMat4("projection", cam.ProjectionMatrix())

	// Set up lighting parameters
	ambient := r.scene.Ambient
	directional := r.scene.Directional
	r.shader.SetVec3("ambientColor", ambient.Color.Mul(ambient.Intensity))
	r.shader.SetVec3("lightColor", directional.Color.Mul(directional.Intensity))
	r.shader.SetVec3("lightDir", directional.ToLight())

	for _, d := range r.drawables {
		if d.object.Material.DoubleSided {
			gl.Disable(gl.CULL_FACE)
		} else {
			gl.Enable(gl.CULL_FACE)
		}

		r.shader.SetMat4("model", d.object.ModelMatrix())
		r.shader.SetVec3("materialColor", d.object.Material.Color)
		r.shader.SetBool("doubleSided", d.object.Material.DoubleSided)
		d.mesh.Draw()
	}
}

// Run starts the main loop and returns once the window is closed or ctx is
// cancelled. Resources are released before returning.
func (r *Renderer) Run(ctx context.Context) {
	logging.Logger().Info("entering main loop")

	for !r.window.ShouldClose() && ctx.Err() == nil {
		r.updater.Frame()

		// Swap buffers and poll events
		r.window.SwapBuffers()
		r.window.PollEvents()
	}

	logging.Logger().Info("main loop stopped", "frames", r.updater.Frames())

	// Cleanup resources
	r.Cleanup()
}

// Cleanup frees all resources. It is safe to call more than once.
func (r *Renderer) Cleanup() {
	if r.isClosed {
		return
	}
	r.isClosed = true

	for _, d := range r.drawables {
		d.mesh.Delete()
	}
	r.drawables = nil

	if r.shader != nil {
		r.shader.Delete()
	}

	// Close window
	r.window.Close()
}

// Callback functions
func (r *Renderer) keyCallback(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if key == KeyQuit && action == glfw.Press {
		r.window.SetShouldClose(true)
		return
	}

	// Repeats carry no new state
	switch action {
	case glfw.Press:
		r.tracker.KeyDown(translateKey(key))
	case glfw.Release:
		r.tracker.KeyUp(translateKey(key))
	}
}

func (r *Renderer) cursorPosCallback(_ *glfw.Window, xpos, ypos float64) {
	r.tracker.MouseMove(xpos, ypos)
}

func (r *Renderer) mouseButtonCallback(_ *glfw.Window, button glfw.MouseButton, action glfw.Action, _ glfw.ModifierKey) {
	if button != LookButton {
		return
	}

	switch action {
	case glfw.Press:
		r.tracker.DragStart(r.window.CursorPos())
	case glfw.Release:
		r.tracker.DragEnd()
	}
}

func (r *Renderer) framebufferSizeCallback(_ *glfw.Window, width, height int) {
	r.window.OnResize(width, height)
	r.camera.SetViewport(width, height)
	logging.Logger().Debug("framebuffer resized", "width", width, "height", height)
}

// focusCallback drops held keys and drags on focus loss; their release
// events go to whichever window has focus.
func (r *Renderer) focusCallback(_ *glfw.Window, focused bool) {
	if !focused {
		r.tracker.Reset()
	}
}
