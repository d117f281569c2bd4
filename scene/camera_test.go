package scene

import (
	"testing"

	"github.com/chewxy/math32"

	"github.com/achilleasa/rigel/types"
)

func TestCameraCenterPixelLooksDownNegZ(t *testing.T) {
	c := NewCamera(1.05, 1, 1)

	got := c.RayDirection(0, 0)
	if exp := types.XYZ(0, 0, -1); got[0] != 0 || got[1] != 0 || math32.Abs(got[2]-exp[2]) > 1e-6 {
		t.Fatalf("expected center pixel ray to be %v; got %v", exp, got)
	}
}

func TestCameraRayDirectionsAreNormalized(t *testing.T) {
	c := NewCamera(1.05, 8, 6)

	for y := uint32(0); y < c.FrameH; y++ {
		for x := uint32(0); x < c.FrameW; x++ {
			dir := c.RayDirection(x, y)
			if delta := math32.Abs(dir.Len() - 1.0); delta > 1e-5 {
				t.Fatalf("expected ray direction for pixel (%d, %d) to be normalized; got length %f", x, y, dir.Len())
			}
		}
	}
}

func TestCameraFrameCorners(t *testing.T) {
	c := NewCamera(1.05, 8, 6)

	topLeft := c.RayDirection(0, 0)
	bottomRight := c.RayDirection(7, 5)

	if topLeft[0] >= 0 || topLeft[1] <= 0 {
		t.Fatalf("expected top-left ray to point up and to the left; got %v", topLeft)
	}
	if bottomRight[0] <= 0 || bottomRight[1] >= 0 {
		t.Fatalf("expected bottom-right ray to point down and to the right; got %v", bottomRight)
	}

	// Mirrored pixels produce mirrored directions.
	if topLeft[0] != -bottomRight[0] || topLeft[1] != -bottomRight[1] || topLeft[2] != bottomRight[2] {
		t.Fatalf("expected corner rays to mirror each other; got %v and %v", topLeft, bottomRight)
	}
}
