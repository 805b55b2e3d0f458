package opengl

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Direction is a camera movement request from keyboard input.
type Direction int

const (
	Forward Direction = iota
	Backward
	Left
	Right
	Up
	Down
)

const (
	pitchLimit = 89.0
	minSpeed   = 0.1
	maxSpeed   = 25.0
)

// Camera is a free-flying first-person camera: yaw/pitch orientation
// from mouse movement, translation along its basis vectors from the
// keyboard. Pure math, no GL state.
type Camera struct {
	Position mgl32.Vec3
	Front    mgl32.Vec3
	Right    mgl32.Vec3
	Up       mgl32.Vec3
	WorldUp  mgl32.Vec3

	// Yaw and Pitch are in degrees. Yaw -90 looks down -Z.
	Yaw   float32
	Pitch float32

	Speed       float32 // world units per second
	Sensitivity float32 // degrees per mouse pixel
	Fov         float32 // vertical field of view, degrees
}

// NewCamera returns a camera at pos looking down -Z.
func NewCamera(pos mgl32.Vec3, speed, sensitivity float32) *Camera {
	c := &Camera{
		Position:    pos,
		WorldUp:     mgl32.Vec3{0, 1, 0},
		Yaw:         -90,
		Pitch:       0,
		Speed:       speed,
		Sensitivity: sensitivity,
		Fov:         45,
	}
	c.updateVectors()
	return c
}

// ViewMatrix returns the world-to-camera transform.
func (c *Camera) ViewMatrix() mgl32.Mat4 {
	return mgl32.LookAtV(c.Position, c.Position.Add(c.Front), c.Up)
}

// Move translates the camera along its basis vectors.
func (c *Camera) Move(dir Direction, dt float32) {
	v := c.Speed * dt
	switch dir {
	case Forward:
		c.Position = c.Position.Add(c.Front.Mul(v))
	case Backward:
		c.Position = c.Position.Sub(c.Front.Mul(v))
	case Left:
		c.Position = c.Position.Sub(c.Right.Mul(v))
	case Right:
		c.Position = c.Position.Add(c.Right.Mul(v))
	case Up:
		c.Position = c.Position.Add(c.Up.Mul(v))
	case Down:
		c.Position = c.Position.Sub(c.Up.Mul(v))
	}
}

// Look applies a mouse movement in screen pixels. Pitch is clamped so
// the view cannot flip over the poles.
func (c *Camera) Look(dx, dy float32) {
	c.Yaw += dx * c.Sensitivity
	c.Pitch += dy * c.Sensitivity
	if c.Pitch > pitchLimit {
		c.Pitch = pitchLimit
	}
	if c.Pitch < -pitchLimit {
		c.Pitch = -pitchLimit
	}
	c.updateVectors()
}

// AdjustSpeed scales movement speed from scroll wheel input, clamped
// to a usable range.
func (c *Camera) AdjustSpeed(scroll float32) {
	c.Speed += scroll * 0.25
	if c.Speed < minSpeed {
		c.Speed = minSpeed
	}
	if c.Speed > maxSpeed {
		c.Speed = maxSpeed
	}
}

func (c *Camera) updateVectors() {
	yaw := mgl32.DegToRad(c.Yaw)
	pitch := mgl32.DegToRad(c.Pitch)
	c.Front = mgl32.Vec3{
		math32.Cos(yaw) * math32.Cos(pitch),
		math32.Sin(pitch),
		math32.Sin(yaw) * math32.Cos(pitch),
	}.Normalize()
	c.Right = c.Front.Cross(c.WorldUp).Normalize()
	c.Up = c.Right.Cross(c.Front).Normalize()
}
