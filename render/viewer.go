package render

import (
	"log"
	"runtime"
	"time"

	"github.com/go-gl/gl/v4.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/pkg/errors"

	"github.com/tom-delalande/opengl-go/config"
	"github.com/tom-delalande/opengl-go/obj"
)

// Cap for the passive redraw loop when vsync does not throttle us.
const frameTime = time.Second / 60

func init() {
	// glfw event handling must run on the main OS thread
	runtime.LockOSThread()
}

// frameUniforms is the complete uniform set of one frame.
type frameUniforms struct {
	Perspective mgl32.Mat4
	View        mgl32.Mat4
	Model       mgl32.Mat4
	Light       mgl32.Vec3
}

// frameState computes the uniform set for one frame from the viewer
// settings and the framebuffer aspect ratio. The scene is static, so the
// result depends on nothing else.
func frameState(cfg *config.Viewer, camera Camera, aspect float32) frameUniforms {
	model := mgl32.Translate3D(
		cfg.Model.Translate[0], cfg.Model.Translate[1], cfg.Model.Translate[2]).
		Mul4(mgl32.Scale3D(cfg.Model.Scale, cfg.Model.Scale, cfg.Model.Scale))

	return frameUniforms{
		Perspective: mgl32.Perspective(
			mgl32.DegToRad(cfg.Projection.FovDegrees), aspect,
			cfg.Projection.ZNear, cfg.Projection.ZFar),
		View:  camera.GetViewMatrix(),
		Model: model,
		Light: mgl32.Vec3{cfg.Light[0], cfg.Light[1], cfg.Light[2]},
	}
}

// ShowWindow opens a window and redraws the mesh until the window is
// closed. Must be called from the main goroutine.
func ShowWindow(m *obj.Mesh) error {
	cfg := config.GetViewer()

	if err := glfw.Init(); err != nil {
		return errors.Wrap(err, "Failed to initialize glfw")
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.Resizable, glfw.False)
	glfw.WindowHint(glfw.ContextVersionMajor, 4)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	window, err := glfw.CreateWindow(cfg.Window.Width, cfg.Window.Height, cfg.Window.Title, nil, nil)
	if err != nil {
		return errors.Wrap(err, "Failed to create window")
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		return errors.Wrap(err, "Failed to initialize opengl")
	}
	log.Printf("[render] OpenGL version %v", gl.GoStr(gl.GetString(gl.VERSION)))

	tp, err := NewTeapotProgram()
	if err != nil {
		return err
	}
	defer tp.Delete()

	buffers := UploadMesh(tp, m)
	defer buffers.Delete()

	gl.Enable(gl.DEPTH_TEST)
	gl.DepthFunc(gl.LESS)
	gl.DepthMask(true)

	camera := &StaticCamera{
		Position:  mgl32.Vec3{cfg.Camera.Position[0], cfg.Camera.Position[1], cfg.Camera.Position[2]},
		Direction: mgl32.Vec3{cfg.Camera.Direction[0], cfg.Camera.Direction[1], cfg.Camera.Direction[2]},
		Up:        mgl32.Vec3{cfg.Camera.Up[0], cfg.Camera.Up[1], cfg.Camera.Up[2]},
	}

	for !window.ShouldClose() {
		frameStart := time.Now()

		fbWidth, fbHeight := window.GetFramebufferSize()
		gl.Viewport(0, 0, int32(fbWidth), int32(fbHeight))
		gl.ClearColor(cfg.ClearColor[0], cfg.ClearColor[1], cfg.ClearColor[2], 1.0)
		gl.ClearDepth(1.0)
		gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT)

		frame := frameState(&cfg, camera, float32(fbWidth)/float32(fbHeight))

		gl.UseProgram(tp.Id)
		gl.UniformMatrix4fv(tp.UPerspective, 1, false, &frame.Perspective[0])
		gl.UniformMatrix4fv(tp.UView, 1, false, &frame.View[0])
		gl.UniformMatrix4fv(tp.UModel, 1, false, &frame.Model[0])
		gl.Uniform3f(tp.ULight, frame.Light[0], frame.Light[1], frame.Light[2])

		buffers.Draw()

		window.SwapBuffers()
		glfw.PollEvents()

		if left := frameTime - time.Since(frameStart); left > 0 {
			time.Sleep(left)
		}
	}
	return nil
}
