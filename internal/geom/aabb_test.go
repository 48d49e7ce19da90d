package geom

import (
	"math"
	"testing"
)

func TestIntersectsTouchingFacesDoNotOverlap(t *testing.T) {
	a := AABB{Min: Vec3{}, Max: Vec3{X: 2, Y: 2, Z: 2}}
	b := AABB{Min: Vec3{X: 2}, Max: Vec3{X: 4, Y: 2, Z: 2}}
	if a.Intersects(b) {
		t.Fatalf("face-touching boxes must not intersect")
	}

	c := AABB{Min: Vec3{X: 1.9}, Max: Vec3{X: 4, Y: 2, Z: 2}}
	if !a.Intersects(c) {
		t.Fatalf("overlapping boxes must intersect")
	}
}

func TestShrinkCollapsesPastCenter(t *testing.T) {
	a := AABB{Min: Vec3{}, Max: Vec3{X: 1, Y: 1, Z: 10}}
	s := a.Shrink(2)
	if s.Min.X != s.Max.X || s.Min.Y != s.Max.Y {
		t.Fatalf("over-shrunk axes should collapse to the midpoint, got %+v", s)
	}
	if s.Max.Z-s.Min.Z != 6 {
		t.Fatalf("z axis should shrink normally, got %+v", s)
	}
	b := AABB{Min: Vec3{}, Max: Vec3{X: 1, Y: 1, Z: 1}}
	if b.Shrink(2).Intersects(b) {
		t.Fatalf("collapsed box must not intersect anything")
	}
}

func TestTransformYawQuarterTurn(t *testing.T) {
	// Box extending +X from the origin; a quarter turn lays it along +Y.
	b := AABB{Min: Vec3{X: 0, Y: -1, Z: 0}, Max: Vec3{X: 4, Y: 1, Z: 2}}
	out := b.TransformYaw(Vec3{X: 10}, math.Pi/2)

	approx := func(got, want float64) {
		t.Helper()
		if math.Abs(got-want) > 1e-9 {
			t.Fatalf("got %v, want %v", got, want)
		}
	}
	approx(out.Min.X, 9)
	approx(out.Max.X, 11)
	approx(out.Min.Y, 0)
	approx(out.Max.Y, 4)
	approx(out.Min.Z, 0)
	approx(out.Max.Z, 2)
}

func TestYawAlignmentRoundTrip(t *testing.T) {
	dir := Vec3{X: 1}
	yaw := Yaw(Vec3{X: -1, Y: 0})
	rotated := RotateYaw(dir, yaw)
	if Dot(rotated, Vec3{X: -1}) < 0.999 {
		t.Fatalf("rotating +X by Yaw(-X) should face -X, got %+v", rotated)
	}
}

func TestSnapYawCardinal(t *testing.T) {
	if got := SnapYawCardinal(math.Pi/2 + 0.2); math.Abs(got-math.Pi/2) > 1e-9 {
		t.Fatalf("got %v", got)
	}
	if got := SnapYawCardinal(-0.3); got != 0 {
		t.Fatalf("got %v", got)
	}
}

func TestIsVertical(t *testing.T) {
	if !IsVertical(Vec3{Z: 1}) || !IsVertical(Vec3{Z: -1}) {
		t.Fatalf("unit Z directions are vertical")
	}
	if IsVertical(Vec3{X: 1}) {
		t.Fatalf("horizontal direction reported vertical")
	}
}
