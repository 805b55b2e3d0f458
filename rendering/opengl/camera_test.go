package opengl

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
	"github.com/stretchr/testify/assert"
)

func TestCameraDefaultsLookDownNegativeZ(t *testing.T) {
	c := NewCamera(mgl32.Vec3{0, 0, 10}, 2.5, 0.1)
	assert.InDelta(t, 0, c.Front.X(), 1e-5)
	assert.InDelta(t, 0, c.Front.Y(), 1e-5)
	assert.InDelta(t, -1, c.Front.Z(), 1e-5)
	assert.InDelta(t, 1, c.Right.X(), 1e-5)
}

func TestCameraMove(t *testing.T) {
	c := NewCamera(mgl32.Vec3{0, 0, 10}, 2.0, 0.1)
	c.Move(Forward, 0.5)
	assert.InDelta(t, 9, c.Position.Z(), 1e-5, "forward moves down -Z")
	c.Move(Right, 0.5)
	assert.InDelta(t, 1, c.Position.X(), 1e-5)
	c.Move(Up, 1)
	assert.InDelta(t, 2, c.Position.Y(), 1e-5)
	c.Move(Down, 1)
	c.Move(Backward, 0.5)
	c.Move(Left, 0.5)
	assert.InDelta(t, 0, c.Position.X(), 1e-5)
	assert.InDelta(t, 0, c.Position.Y(), 1e-5)
	assert.InDelta(t, 10, c.Position.Z(), 1e-5)
}

func TestCameraPitchClamp(t *testing.T) {
	c := NewCamera(mgl32.Vec3{}, 2.5, 1.0)
	c.Look(0, 500)
	assert.Equal(t, float32(pitchLimit), c.Pitch)
	// Front stays normalized and never quite reaches straight up.
	assert.InDelta(t, 1, c.Front.Len(), 1e-5)
	assert.Less(t, c.Front.Y(), float32(1))
	c.Look(0, -2000)
	assert.Equal(t, float32(-pitchLimit), c.Pitch)
}

func TestCameraYawWrapsView(t *testing.T) {
	c := NewCamera(mgl32.Vec3{}, 2.5, 1.0)
	// Turn 180 degrees: now looking down +Z.
	c.Look(180, 0)
	assert.InDelta(t, 1, c.Front.Z(), 1e-5)
	assert.InDelta(t, 0, c.Front.X(), 1e-4)
}

func TestCameraSpeedClamp(t *testing.T) {
	c := NewCamera(mgl32.Vec3{}, 2.5, 0.1)
	c.AdjustSpeed(-1000)
	assert.Equal(t, float32(minSpeed), c.Speed)
	c.AdjustSpeed(1000)
	assert.Equal(t, float32(maxSpeed), c.Speed)
	c.AdjustSpeed(-4)
	assert.InDelta(t, maxSpeed-1, c.Speed, 1e-5)
}

func TestCameraViewMatrix(t *testing.T) {
	c := NewCamera(mgl32.Vec3{0, 0, 5}, 2.5, 0.1)
	view := c.ViewMatrix()
	want := mgl32.LookAtV(mgl32.Vec3{0, 0, 5}, mgl32.Vec3{0, 0, 4}, mgl32.Vec3{0, 1, 0})
	for i := 0; i < 16; i++ {
		assert.InDelta(t, want[i], view[i], 1e-5, "element %d", i)
	}
}
