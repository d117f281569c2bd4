package scene

import "github.com/achilleasa/rigel/types"

// Sphere geometry.
type Sphere struct {
	Center   types.Vec3
	Radius   float32
	Material *Material
}

// Cube geometry. Cubes are axis-aligned and Size specifies their uniform
// edge length.
type Cube struct {
	Center   types.Vec3
	Size     float32
	Material *Material
}

// A white point light of unit intensity.
type Light struct {
	Position types.Vec3
}

// The floor is a finite checkerboard-patterned region of a horizontal plane.
type Floor struct {
	// Plane height (y = Height).
	Height float32

	// The floor spans |x| < HalfWidth and FarZ < z < NearZ.
	HalfWidth float32
	NearZ     float32
	FarZ      float32

	// Checkerboard cell materials. EvenMaterial covers cells with even
	// integer-cell parity, OddMaterial the rest.
	EvenMaterial *Material
	OddMaterial  *Material
}

// Select the checkerboard material covering floor point (x, z). Cell parity
// is keyed off the truncated half-scale cell coordinates.
func (f *Floor) MaterialAt(x, z float32) *Material {
	cell := int(0.5*x+1000) + int(0.5*z)
	if cell&1 == 0 {
		return f.EvenMaterial
	}
	return f.OddMaterial
}
