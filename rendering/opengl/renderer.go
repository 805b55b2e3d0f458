// Package opengl renders the assembled scene with a GLFW window and an
// OpenGL 4.3 core context: immutable mesh buffers, two shader
// programs (Phong objects, flat lamps), and free-fly camera input.
package opengl

import (
	"fmt"
	"time"

	"github.com/go-gl/gl/v4.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"

	"tablescene/config"
	"tablescene/scene"
)

// orbitVelocity is the main light's angular velocity in radians per
// second.
var orbitVelocity = mgl32.DegToRad(90)

type drawObject struct {
	obj     scene.Object
	buffers meshBuffers
	texture uint32
}

// Renderer owns the window, GL resources, camera, and per-frame loop.
// All methods must be called from the main OS thread.
type Renderer struct {
	window *glfw.Window
	width  int
	height int

	sceneProgram uint32
	lampProgram  uint32

	objects []drawObject
	lights  []scene.Light

	camera       *Camera
	orthographic bool

	firstMouse bool
	lastX      float64
	lastY      float64
}

// New creates the window, GL context, shader programs, and uploads
// every scene object. The caller must have locked the OS thread.
func New(cfg config.Settings, sc *scene.Scene) (*Renderer, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("failed to initialize GLFW: %w", err)
	}

	glfw.WindowHint(glfw.Resizable, glfw.True)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("failed to initialize OpenGL: %w", err)
	}
	fmt.Println("OpenGL version:", gl.GoStr(gl.GetString(gl.VERSION)))

	r := &Renderer{
		window:     window,
		width:      cfg.Window.Width,
		height:     cfg.Window.Height,
		lights:     append([]scene.Light(nil), sc.Lights...),
		camera:     NewCamera(mgl32.Vec3(cfg.Camera.Position), cfg.Camera.Speed, cfg.Camera.Sensitivity),
		firstMouse: true,
	}

	r.sceneProgram, err = newProgram(sceneVertexShader, sceneFragmentShader)
	if err != nil {
		r.Terminate()
		return nil, fmt.Errorf("scene shader: %w", err)
	}
	r.lampProgram, err = newProgram(lampVertexShader, lampFragmentShader)
	if err != nil {
		r.Terminate()
		return nil, fmt.Errorf("lamp shader: %w", err)
	}

	// Textures are deduplicated by path; lamp markers carry none.
	textures := make(map[string]uint32)
	for _, obj := range sc.Objects {
		d := drawObject{obj: obj, buffers: uploadMesh(obj.Mesh)}
		if obj.Texture != "" {
			tex, ok := textures[obj.Texture]
			if !ok {
				tex, err = loadTexture(obj.Texture)
				if err != nil {
					r.Terminate()
					return nil, err
				}
				textures[obj.Texture] = tex
				fmt.Printf("Loaded texture %s\n", obj.Texture)
			}
			d.texture = tex
		}
		r.objects = append(r.objects, d)
	}

	window.SetFramebufferSizeCallback(func(_ *glfw.Window, w, h int) { r.onResize(w, h) })
	window.SetCursorPosCallback(func(_ *glfw.Window, x, y float64) { r.onMouseMove(x, y) })
	window.SetScrollCallback(func(_ *glfw.Window, _, yoff float64) { r.camera.AdjustSpeed(float32(yoff)) })
	window.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		r.onKey(key, action)
	})
	window.SetInputMode(glfw.CursorMode, glfw.CursorDisabled)

	gl.Enable(gl.DEPTH_TEST)
	gl.ClearColor(0, 0, 0, 1)
	return r, nil
}

// Run drives the frame loop until the window closes.
func (r *Renderer) Run() {
	lastFrame := glfw.GetTime()
	frameCount := 0
	lastFPS := time.Now()

	for !r.window.ShouldClose() {
		now := glfw.GetTime()
		dt := float32(now - lastFrame)
		lastFrame = now

		glfw.PollEvents()
		r.processMovement(dt)
		r.orbitLights(dt)

		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)
		r.drawFrame()
		r.window.SwapBuffers()

		frameCount++
		if elapsed := time.Since(lastFPS).Seconds(); elapsed >= 1.0 {
			fmt.Printf("\rFPS: %.1f", float64(frameCount)/elapsed)
			frameCount = 0
			lastFPS = time.Now()
		}
	}
	fmt.Println()
}

func (r *Renderer) projection() mgl32.Mat4 {
	if r.orthographic {
		return mgl32.Ortho(-5, 5, -5, 5, 2, 100)
	}
	aspect := float32(r.width) / float32(r.height)
	return mgl32.Perspective(mgl32.DegToRad(r.camera.Fov), aspect, 0.1, 100)
}

func (r *Renderer) drawFrame() {
	view := r.camera.ViewMatrix()
	proj := r.projection()

	for _, d := range r.objects {
		if d.obj.Lamp() {
			r.drawLamp(d, view, proj)
		} else {
			r.drawObject(d, view, proj)
		}
	}
}

func (r *Renderer) drawObject(d drawObject, view, proj mgl32.Mat4) {
	p := r.sceneProgram
	gl.UseProgram(p)

	model := d.obj.Model
	gl.UniformMatrix4fv(uniform(p, "model"), 1, false, &model[0])
	gl.UniformMatrix4fv(uniform(p, "view"), 1, false, &view[0])
	gl.UniformMatrix4fv(uniform(p, "projection"), 1, false, &proj[0])

	for i, l := range r.lights {
		pos, color := l.Position, l.Color
		gl.Uniform3fv(uniform(p, fmt.Sprintf("lights[%d].position", i)), 1, &pos[0])
		gl.Uniform3fv(uniform(p, fmt.Sprintf("lights[%d].color", i)), 1, &color[0])
		gl.Uniform1f(uniform(p, fmt.Sprintf("lights[%d].intensity", i)), l.Intensity)
	}
	camPos := r.camera.Position
	gl.Uniform3fv(uniform(p, "viewPos"), 1, &camPos[0])

	gl.ActiveTexture(gl.TEXTURE0)
	gl.BindTexture(gl.TEXTURE_2D, d.texture)
	gl.Uniform1i(uniform(p, "baseTexture"), 0)

	d.buffers.draw()
}

func (r *Renderer) drawLamp(d drawObject, view, proj mgl32.Mat4) {
	p := r.lampProgram
	gl.UseProgram(p)

	light := r.lights[d.obj.LightIndex]
	model := mgl32.Translate3D(light.Position.X(), light.Position.Y(), light.Position.Z()).
		Mul4(d.obj.Model)
	gl.UniformMatrix4fv(uniform(p, "model"), 1, false, &model[0])
	gl.UniformMatrix4fv(uniform(p, "view"), 1, false, &view[0])
	gl.UniformMatrix4fv(uniform(p, "projection"), 1, false, &proj[0])

	color := light.Color.Mul(light.Intensity)
	gl.Uniform3fv(uniform(p, "lightColor"), 1, &color[0])

	d.buffers.draw()
}

// orbitLights revolves any orbiting lights around the scene's Y axis.
func (r *Renderer) orbitLights(dt float32) {
	rot := mgl32.HomogRotate3DY(orbitVelocity * dt)
	for i := range r.lights {
		if !r.lights[i].Orbit {
			continue
		}
		p := r.lights[i].Position
		r.lights[i].Position = rot.Mul4x1(p.Vec4(1)).Vec3()
	}
}

// processMovement polls held movement keys every frame.
func (r *Renderer) processMovement(dt float32) {
	keys := []struct {
		key glfw.Key
		dir Direction
	}{
		{glfw.KeyW, Forward},
		{glfw.KeyS, Backward},
		{glfw.KeyA, Left},
		{glfw.KeyD, Right},
		{glfw.KeyQ, Up},
		{glfw.KeyE, Down},
	}
	for _, k := range keys {
		if r.window.GetKey(k.key) == glfw.Press {
			r.camera.Move(k.dir, dt)
		}
	}
}

// onKey handles discrete key presses.
func (r *Renderer) onKey(key glfw.Key, action glfw.Action) {
	if action != glfw.Press {
		return
	}
	switch key {
	case glfw.KeyEscape:
		r.window.SetShouldClose(true)
	case glfw.KeyP:
		r.orthographic = !r.orthographic
		if r.orthographic {
			fmt.Println("Orthographic view")
		} else {
			fmt.Println("Perspective view")
		}
	}
}

func (r *Renderer) onResize(width, height int) {
	if width == 0 || height == 0 {
		return
	}
	r.width, r.height = width, height
	gl.Viewport(0, 0, int32(width), int32(height))
}

func (r *Renderer) onMouseMove(x, y float64) {
	if r.firstMouse {
		r.lastX, r.lastY = x, y
		r.firstMouse = false
		return
	}
	dx := float32(x - r.lastX)
	dy := float32(r.lastY - y) // window Y grows downward
	r.lastX, r.lastY = x, y
	r.camera.Look(dx, dy)
}

// Terminate releases all GL resources and the window.
func (r *Renderer) Terminate() {
	seen := make(map[uint32]bool)
	for _, d := range r.objects {
		d.buffers.destroy()
		if d.texture != 0 && !seen[d.texture] {
			tex := d.texture
			gl.DeleteTextures(1, &tex)
			seen[d.texture] = true
		}
	}
	if r.sceneProgram != 0 {
		gl.DeleteProgram(r.sceneProgram)
	}
	if r.lampProgram != 0 {
		gl.DeleteProgram(r.lampProgram)
	}
	if r.window != nil {
		r.window.Destroy()
	}
	glfw.Terminate()
}
