package scene

import "github.com/achilleasa/rigel/types"

// Material describes how a surface responds to incoming light. The four
// albedo components weight the diffuse, specular, reflected and refracted
// color contributions. The weights form an ad-hoc blend and are not required
// to sum to one.
//
// Materials are immutable; surfaces share them by reference.
type Material struct {
	// Index of refraction for dielectric surfaces. A value of 1 bends no
	// light.
	RefractiveIndex float32

	// Blend weights for the diffuse, specular, reflected and refracted
	// terms, in that order.
	Albedo types.Vec4

	// Base color for the diffuse term.
	DiffuseColor types.Vec3

	// Exponent for the Phong specular term. Larger values produce sharper
	// highlights.
	SpecularExponent float32
}
