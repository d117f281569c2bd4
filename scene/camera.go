package scene

import (
	"github.com/chewxy/math32"

	"github.com/achilleasa/rigel/types"
)

// Camera implements a pinhole projection anchored at the origin and looking
// down the negative Z axis. It converts pixel coordinates into the normalized
// primary ray directions consumed by the tracer.
type Camera struct {
	// Vertical field of view in radians.
	FOV float32

	// Frame dims in pixels.
	FrameW uint32
	FrameH uint32
}

// Create a new pinhole camera for the given field of view and frame dims.
func NewCamera(fov float32, frameW, frameH uint32) *Camera {
	return &Camera{
		FOV:    fov,
		FrameW: frameW,
		FrameH: frameH,
	}
}

// Generate the normalized ray direction through the center of pixel (x, y).
// Pixel (0, 0) maps to the top-left corner of the frame.
func (c *Camera) RayDirection(x, y uint32) types.Vec3 {
	dirX := (float32(x) + 0.5) - float32(c.FrameW)*0.5
	dirY := -(float32(y) + 0.5) + float32(c.FrameH)*0.5
	dirZ := -float32(c.FrameH) / (2.0 * math32.Tan(c.FOV*0.5))
	return types.XYZ(dirX, dirY, dirZ).Normalize()
}

// The ray origin shared by all primary rays.
func (c *Camera) Origin() types.Vec3 {
	return types.Vec3{}
}
