// Package tracer implements the ray tracing core: ray-primitive intersection
// routines, the nearest-hit scene query and a depth-bounded recursive Whitted
// tracer, together with the block scheduling machinery that distributes frame
// rows across a pool of tracers.
package tracer

import (
	"github.com/chewxy/math32"

	"github.com/achilleasa/rigel/scene"
	"github.com/achilleasa/rigel/types"
)

// Primary and secondary rays recurse at most this deep. Rays cast at a depth
// beyond the cap resolve to the background color.
const maxDepth = 4

// Background is the color returned for rays that leave the scene.
var Background = types.XYZ(0.2, 0.7, 0.8)

var white = types.XYZ(1, 1, 1)

// The nearest surface found by a scene query. Fields are only meaningful for
// queries that report a hit.
type hitRecord struct {
	point    types.Vec3
	normal   types.Vec3
	material *scene.Material
}

// Whitted casts rays into a fixed scene and recursively composes diffuse,
// specular, reflected and refracted light into a single color per ray. It
// keeps no mutable state, so one instance can serve any number of goroutines.
type Whitted struct {
	scene *scene.Scene
}

// Create a new Whitted tracer for the given scene.
func NewWhitted(sc *scene.Scene) *Whitted {
	return &Whitted{scene: sc}
}

// Find the globally nearest surface intersected by the ray. The same query
// serves both camera rays and shadow probes.
func (w *Whitted) intersect(orig, dir types.Vec3) (hitRecord, bool) {
	var rec hitRecord
	nearest := nearestSeed

	if d, ok := intersectFloor(orig, dir, &w.scene.Floor); ok && d < nearest {
		nearest = d
		rec.point = orig.Add(dir.Mul(d))
		rec.normal = types.XYZ(0, 1, 0)
		rec.material = w.scene.Floor.MaterialAt(rec.point[0], rec.point[2])
	}

	for i := range w.scene.Spheres {
		s := &w.scene.Spheres[i]
		d, ok := intersectSphere(orig, dir, s)
		if !ok || d >= nearest {
			continue
		}
		nearest = d
		rec.point = orig.Add(dir.Mul(d))
		rec.normal = rec.point.Sub(s.Center).Normalize()
		rec.material = s.Material
	}

	if d, n, ok := intersectCube(orig, dir, &w.scene.Cube); ok && d < nearest {
		nearest = d
		rec.point = orig.Add(dir.Mul(d))
		rec.normal = n
		rec.material = w.scene.Cube.Material
	}

	return rec, nearest < maxTraceDist
}

// CastRay evaluates the color arriving at the ray origin along dir. Primary
// rays start at depth 0; every reflection or refraction bounce increments the
// depth until the recursion cap is reached.
func (w *Whitted) CastRay(orig, dir types.Vec3, depth int) types.Vec3 {
	rec, ok := w.intersect(orig, dir)
	if depth > maxDepth || !ok {
		return Background
	}

	reflectDir := reflect(dir, rec.normal).Normalize()
	refractDir := refract(dir, rec.normal, rec.material.RefractiveIndex, 1.0).Normalize()
	reflectColor := w.CastRay(rec.point, reflectDir, depth+1)
	refractColor := w.CastRay(rec.point, refractDir, depth+1)

	var diffuse, specular float32
	for _, light := range w.scene.Lights {
		lightDir := light.Position.Sub(rec.point).Normalize()
		if w.occluded(rec.point, lightDir, light.Position) {
			continue
		}
		diffuse += math32.Max(0, lightDir.Dot(rec.normal))
		specular += math32.Pow(math32.Max(0, reflect(lightDir.Neg(), rec.normal).Neg().Dot(dir)), rec.material.SpecularExponent)
	}

	m := rec.material
	return m.DiffuseColor.Mul(diffuse * m.Albedo[0]).
		Add(white.Mul(specular * m.Albedo[1])).
		Add(reflectColor.Mul(m.Albedo[2])).
		Add(refractColor.Mul(m.Albedo[3]))
}

// Check whether anything blocks the path from a surface point to a light.
// Occluders behind the light do not cast a shadow on the point.
func (w *Whitted) occluded(point, lightDir, lightPos types.Vec3) bool {
	rec, ok := w.intersect(point, lightDir)
	return ok && rec.point.Sub(point).Len() < lightPos.Sub(point).Len()
}

// Mirror a direction around a surface normal.
func reflect(i, n types.Vec3) types.Vec3 {
	return i.Sub(n.Mul(2 * i.Dot(n)))
}

// Bend a direction through a material boundary using Snell's law. A ray that
// exits rather than enters the material is handled by one recursion with the
// normal flipped and the indices swapped. Total internal reflection yields
// the sentinel direction (1, 0, 0) rather than a physical direction.
func refract(i, n types.Vec3, etaT, etaI float32) types.Vec3 {
	cosI := -math32.Max(-1, math32.Min(1, i.Dot(n)))
	if cosI < 0 {
		return refract(i, n.Neg(), etaI, etaT)
	}

	eta := etaI / etaT
	k := 1 - eta*eta*(1-cosI*cosI)
	if k < 0 {
		return types.XYZ(1, 0, 0)
	}
	return i.Mul(eta).Add(n.Mul(eta*cosI - math32.Sqrt(k)))
}
