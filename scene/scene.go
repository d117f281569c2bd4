// Package scene defines the geometry, material and light catalog consumed by
// the tracer. A scene is constructed once and never mutated while a frame is
// being rendered.
package scene

import "github.com/achilleasa/rigel/types"

// Scene groups the geometry and lights for a render. All fields are treated
// as read-only by the tracer so a single instance can be shared by any number
// of concurrent tracers.
type Scene struct {
	Floor   Floor
	Spheres []Sphere
	Cube    Cube
	Lights  []Light
}

// Create the built-in scene: a checkerboard floor, four spheres of varying
// materials, a water cube and three point lights.
func Default() *Scene {
	marble := &Material{
		RefractiveIndex:  1.0,
		Albedo:           types.XYZW(0.8, 0.2, 0.0, 0.0),
		DiffuseColor:     types.XYZ(0.5, 0.5, 0.5),
		SpecularExponent: 30,
	}
	water := &Material{
		RefractiveIndex:  1.3,
		Albedo:           types.XYZW(0.1, 0.4, 0.7, 0.5),
		DiffuseColor:     types.XYZ(0.2, 0.5, 0.8),
		SpecularExponent: 100,
	}
	shinyRed := &Material{
		RefractiveIndex:  1.0,
		Albedo:           types.XYZW(1.2, 0.3, 0.0, 0.1),
		DiffuseColor:     types.XYZ(0.7, 0.1, 0.1),
		SpecularExponent: 200,
	}
	bronze := &Material{
		RefractiveIndex:  1.0,
		Albedo:           types.XYZW(0.4, 0.3, 0.2, 0.1),
		DiffuseColor:     types.XYZ(0.8, 0.7, 0.5),
		SpecularExponent: 500,
	}

	return &Scene{
		Floor: Floor{
			Height:       -3,
			HalfWidth:    12,
			NearZ:        -12,
			FarZ:         -28,
			EvenMaterial: &Material{RefractiveIndex: 1.0, Albedo: types.XYZW(2, 0, 0, 0), DiffuseColor: types.XYZ(0.4, 0.4, 0.4)},
			OddMaterial:  &Material{RefractiveIndex: 1.0, Albedo: types.XYZW(2, 0, 0, 0), DiffuseColor: types.XYZ(0.4, 0.3, 0.2)},
		},
		Spheres: []Sphere{
			{Center: types.XYZ(-2, 1, -15), Radius: 1.5, Material: marble},
			{Center: types.XYZ(0, 4, -12), Radius: 2.0, Material: water},
			{Center: types.XYZ(2, 0, -18), Radius: 2.5, Material: shinyRed},
			{Center: types.XYZ(5, 3, -20), Radius: 3.5, Material: bronze},
		},
		Cube: Cube{Center: types.XYZ(0, -1, -10), Size: 2.0, Material: water},
		Lights: []Light{
			{Position: types.XYZ(-15, 10, 25)},
			{Position: types.XYZ(20, 30, -30)},
			{Position: types.XYZ(10, 10, 15)},
		},
	}
}
