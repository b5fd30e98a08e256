package render

import (
	"github.com/go-gl/mathgl/mgl32"
)

type Camera interface {
	GetViewMatrix() mgl32.Mat4
}

// StaticCamera looks along a fixed direction from a fixed position.
type StaticCamera struct {
	Position  mgl32.Vec3
	Direction mgl32.Vec3
	Up        mgl32.Vec3
}

func (c *StaticCamera) GetViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Direction), c.Up)
}
