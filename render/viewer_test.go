package render

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/tom-delalande/opengl-go/config"
)

func TestFrameStateModelMatrix(t *testing.T) {
	cfg := config.DefaultViewer()
	camera := &StaticCamera{
		Position:  mgl32.Vec3{2, -1, 1},
		Direction: mgl32.Vec3{-2, 1, 1},
		Up:        mgl32.Vec3{0, 1, 0},
	}

	frame := frameState(&cfg, camera, 4.0/3.0)

	// scale 0.1 then translate +2 on z
	got := frame.Model.Mul4x1(mgl32.Vec4{1, 1, 1, 1})
	want := mgl32.Vec4{0.1, 0.1, 2.1, 1}
	if !got.ApproxEqualThreshold(want, 1e-6) {
		t.Errorf("model*(1,1,1,1)=%v; expected %v", got, want)
	}

	if frame.Light != (mgl32.Vec3{-1, 0.4, 0.9}) {
		t.Errorf("light=%v", frame.Light)
	}
}

func TestStaticCameraViewMatrix(t *testing.T) {
	camera := &StaticCamera{
		Position:  mgl32.Vec3{2, -1, 1},
		Direction: mgl32.Vec3{-2, 1, 1},
		Up:        mgl32.Vec3{0, 1, 0},
	}

	// the camera position maps to the view-space origin
	got := camera.GetViewMatrix().Mul4x1(mgl32.Vec4{2, -1, 1, 1})
	if !got.ApproxEqualThreshold(mgl32.Vec4{0, 0, 0, 1}, 1e-6) {
		t.Errorf("view*eye=%v; expected origin", got)
	}
}

func TestFrameStateIsDeterministic(t *testing.T) {
	cfg := config.DefaultViewer()
	camera := &StaticCamera{Up: mgl32.Vec3{0, 1, 0}, Direction: mgl32.Vec3{0, 0, 1}}

	if frameState(&cfg, camera, 1) != frameState(&cfg, camera, 1) {
		t.Error("identical inputs produced different uniform sets")
	}
}
