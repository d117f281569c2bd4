package tracer

import (
	"testing"

	"github.com/chewxy/math32"

	"github.com/achilleasa/rigel/scene"
	"github.com/achilleasa/rigel/types"
)

func TestIntersectSphere(t *testing.T) {
	type spec struct {
		descr   string
		orig    types.Vec3
		dir     types.Vec3
		expHit  bool
		expDist float32
	}
	sph := &scene.Sphere{Center: types.XYZ(0, 0, -10), Radius: 2}

	specs := []spec{
		// A ray aimed at the center hits at distance to center minus radius.
		{"head-on", types.XYZ(0, 0, 0), types.XYZ(0, 0, -1), true, 8},
		// A tangent ray grazes the boundary exactly once.
		{"tangent", types.XYZ(-10, 2, -10), types.XYZ(1, 0, 0), true, 10},
		// Perpendicular distance beyond the radius misses.
		{"miss", types.XYZ(-10, 2.5, -10), types.XYZ(1, 0, 0), false, 0},
		// A sphere entirely behind the origin misses.
		{"behind", types.XYZ(0, 0, 0), types.XYZ(0, 0, 1), false, 0},
		// From inside the sphere the far root is used.
		{"inside", types.XYZ(0, 0, -10), types.XYZ(0, 0, -1), true, 2},
	}

	for index, s := range specs {
		d, ok := intersectSphere(s.orig, s.dir, sph)
		if ok != s.expHit {
			t.Fatalf("[spec %d] %s: expected hit to be %t; got %t", index, s.descr, s.expHit, ok)
		}
		if ok && math32.Abs(d-s.expDist) > 1e-3 {
			t.Fatalf("[spec %d] %s: expected hit distance %f; got %f", index, s.descr, s.expDist, d)
		}
	}
}

func TestIntersectFloor(t *testing.T) {
	type spec struct {
		descr   string
		orig    types.Vec3
		dir     types.Vec3
		expHit  bool
		expDist float32
	}
	f := &scene.Default().Floor

	down := types.XYZ(0, -1, 0)
	specs := []spec{
		{"inside bounds", types.XYZ(0, 0, -20), down, true, 3},
		{"nearly parallel ray", types.XYZ(0, 0, -20), types.XYZ(1, 0.0005, 0).Normalize(), false, 0},
		{"beyond far bound", types.XYZ(0, 0, -30), down, false, 0},
		{"before near bound", types.XYZ(0, 0, -11), down, false, 0},
		{"outside width bound", types.XYZ(13, 0, -20), down, false, 0},
		{"plane behind origin", types.XYZ(0, -4, -20), down, false, 0},
	}

	for index, s := range specs {
		d, ok := intersectFloor(s.orig, s.dir, f)
		if ok != s.expHit {
			t.Fatalf("[spec %d] %s: expected hit to be %t; got %t", index, s.descr, s.expHit, ok)
		}
		if ok && math32.Abs(d-s.expDist) > 1e-3 {
			t.Fatalf("[spec %d] %s: expected hit distance %f; got %f", index, s.descr, s.expDist, d)
		}
	}
}

func TestIntersectCube(t *testing.T) {
	type spec struct {
		descr     string
		orig      types.Vec3
		dir       types.Vec3
		expHit    bool
		expDist   float32
		expNormal types.Vec3
	}
	c := &scene.Cube{Center: types.XYZ(0, -1, -10), Size: 2}

	specs := []spec{
		{"front face", types.XYZ(0, -1, 0), types.XYZ(0, 0, -1), true, 9, types.XYZ(0, 0, 1)},
		{"left face", types.XYZ(-5, -1, -10), types.XYZ(1, 0, 0), true, 4, types.XYZ(-1, 0, 0)},
		{"right face", types.XYZ(5, -1, -10), types.XYZ(-1, 0, 0), true, 4, types.XYZ(1, 0, 0)},
		{"top face", types.XYZ(0, 5, -10), types.XYZ(0, -1, 0), true, 5, types.XYZ(0, 1, 0)},
		{"behind ray", types.XYZ(0, -1, -20), types.XYZ(0, 0, -1), false, 0, types.Vec3{}},
		{"off to the side", types.XYZ(5, -1, 0), types.XYZ(0, 0, -1), false, 0, types.Vec3{}},
	}

	for index, s := range specs {
		d, n, ok := intersectCube(s.orig, s.dir, c)
		if ok != s.expHit {
			t.Fatalf("[spec %d] %s: expected hit to be %t; got %t", index, s.descr, s.expHit, ok)
		}
		if !ok {
			continue
		}
		if math32.Abs(d-s.expDist) > 1e-3 {
			t.Fatalf("[spec %d] %s: expected hit distance %f; got %f", index, s.descr, s.expDist, d)
		}
		if n != s.expNormal {
			t.Fatalf("[spec %d] %s: expected normal %v; got %v", index, s.descr, s.expNormal, n)
		}
	}
}

func TestIntersectCubeAxisAlignedRays(t *testing.T) {
	c := &scene.Cube{Center: types.XYZ(0, -1, -10), Size: 2}

	// A ray with a zero direction component must not produce NaN distances
	// or normals: parallel to a slab and outside it means a clean miss.
	if _, _, ok := intersectCube(types.XYZ(-5, 5, -10), types.XYZ(1, 0, 0), c); ok {
		t.Fatal("expected a ray parallel to and outside the y slab to miss")
	}

	// Parallel to two slabs but inside both still hits the third.
	d, n, ok := intersectCube(types.XYZ(0, -1, 0), types.XYZ(0, 0, -1), c)
	if !ok {
		t.Fatal("expected an axis-aligned ray through the cube center to hit")
	}
	if math32.IsNaN(d) || math32.IsNaN(n[0]) || math32.IsNaN(n[1]) || math32.IsNaN(n[2]) {
		t.Fatalf("expected finite distance and normal; got %f / %v", d, n)
	}
}
