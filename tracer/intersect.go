package tracer

import (
	"github.com/chewxy/math32"

	"github.com/achilleasa/rigel/scene"
	"github.com/achilleasa/rigel/types"
)

const (
	// Minimum parametric distance for a valid hit. Rejects immediate
	// re-intersections with the surface a ray originates from.
	hitEpsilon float32 = 1e-3

	// Candidate distances are seeded with this value before any surface is
	// tested.
	nearestSeed float32 = 1e10

	// A candidate further away than this is treated as a miss.
	maxTraceDist float32 = 1000
)

// Intersect a ray with the finite floor region. Returns the parametric
// distance to the hit. Rays nearly parallel to the floor plane are rejected
// before the division can blow up.
func intersectFloor(orig, dir types.Vec3, f *scene.Floor) (float32, bool) {
	if math32.Abs(dir[1]) <= hitEpsilon {
		return 0, false
	}

	d := (f.Height - orig[1]) / dir[1]
	if d <= hitEpsilon {
		return 0, false
	}

	p := orig.Add(dir.Mul(d))
	if math32.Abs(p[0]) < f.HalfWidth && p[2] < f.NearZ && p[2] > f.FarZ {
		return d, true
	}
	return 0, false
}

// Intersect a ray with a sphere using the geometric quadratic solution.
// Returns the nearest root exceeding the epsilon bias, falling back to the
// far root when the ray origin sits inside or on the sphere.
func intersectSphere(orig, dir types.Vec3, s *scene.Sphere) (float32, bool) {
	l := s.Center.Sub(orig)
	tca := l.Dot(dir)
	d2 := l.Dot(l) - tca*tca
	r2 := s.Radius * s.Radius
	if d2 > r2 {
		return 0, false
	}

	thc := math32.Sqrt(r2 - d2)
	if t := tca - thc; t > hitEpsilon {
		return t, true
	}
	if t := tca + thc; t > hitEpsilon {
		return t, true
	}
	return 0, false
}

// Intersect a ray with an axis-aligned cube using the slab method. The axis
// whose entry plane produced the final tmin is tracked during the interval
// intersection and determines the surface normal; the normal always opposes
// the ray direction along that axis.
func intersectCube(orig, dir types.Vec3, c *scene.Cube) (float32, types.Vec3, bool) {
	half := c.Size * 0.5
	tmin := math32.Inf(-1)
	tmax := math32.Inf(1)
	axis := -1

	for a := 0; a < 3; a++ {
		lo := c.Center[a] - half
		hi := c.Center[a] + half

		if dir[a] == 0 {
			// Ray parallel to this slab pair: it either misses outright
			// or the axis imposes no constraint on the interval.
			if orig[a] < lo || orig[a] > hi {
				return 0, types.Vec3{}, false
			}
			continue
		}

		t0 := (lo - orig[a]) / dir[a]
		t1 := (hi - orig[a]) / dir[a]
		if t0 > t1 {
			t0, t1 = t1, t0
		}
		if t0 > tmin {
			tmin = t0
			axis = a
		}
		if t1 < tmax {
			tmax = t1
		}
		if tmin > tmax {
			return 0, types.Vec3{}, false
		}
	}

	// A non-positive tmin means the entry point is behind the ray origin.
	if axis < 0 || tmin <= hitEpsilon {
		return 0, types.Vec3{}, false
	}

	var n types.Vec3
	if dir[axis] > 0 {
		n[axis] = -1
	} else {
		n[axis] = 1
	}
	return tmin, n, true
}
