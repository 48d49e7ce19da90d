package geom

// AABB is an axis-aligned bounding box, Min and Max inclusive corners.
type AABB struct {
	Min Vec3 `json:"min"`
	Max Vec3 `json:"max"`
}

// Box returns the AABB centered at c with half-extents h on each axis.
func Box(c Vec3, h float64) AABB {
	e := Vec3{X: h, Y: h, Z: h}
	return AABB{Min: c.Sub(e), Max: c.Add(e)}
}

// Translate returns the box shifted by d.
func (b AABB) Translate(d Vec3) AABB {
	return AABB{Min: b.Min.Add(d), Max: b.Max.Add(d)}
}

// Union returns the smallest box containing both b and o.
func (b AABB) Union(o AABB) AABB {
	return AABB{
		Min: Vec3{X: min(b.Min.X, o.Min.X), Y: min(b.Min.Y, o.Min.Y), Z: min(b.Min.Z, o.Min.Z)},
		Max: Vec3{X: max(b.Max.X, o.Max.X), Y: max(b.Max.Y, o.Max.Y), Z: max(b.Max.Z, o.Max.Z)},
	}
}

// Shrink contracts the box by margin on every face. A box contracted past
// its own center becomes empty rather than inverted.
func (b AABB) Shrink(margin float64) AABB {
	out := AABB{
		Min: Vec3{X: b.Min.X + margin, Y: b.Min.Y + margin, Z: b.Min.Z + margin},
		Max: Vec3{X: b.Max.X - margin, Y: b.Max.Y - margin, Z: b.Max.Z - margin},
	}
	if out.Min.X > out.Max.X {
		mid := (b.Min.X + b.Max.X) / 2
		out.Min.X, out.Max.X = mid, mid
	}
	if out.Min.Y > out.Max.Y {
		mid := (b.Min.Y + b.Max.Y) / 2
		out.Min.Y, out.Max.Y = mid, mid
	}
	if out.Min.Z > out.Max.Z {
		mid := (b.Min.Z + b.Max.Z) / 2
		out.Min.Z, out.Max.Z = mid, mid
	}
	return out
}

// Intersects reports whether the interiors of b and o overlap. Boxes that
// merely touch on a face do not intersect.
func (b AABB) Intersects(o AABB) bool {
	return b.Min.X < o.Max.X && o.Min.X < b.Max.X &&
		b.Min.Y < o.Max.Y && o.Min.Y < b.Max.Y &&
		b.Min.Z < o.Max.Z && o.Min.Z < b.Max.Z
}

// Center returns the midpoint of the box.
func (b AABB) Center() Vec3 {
	return b.Min.Add(b.Max).Scale(0.5)
}

// TransformYaw rotates the box about the local origin by yaw, translates
// it to pos, and returns the axis-aligned bounds of the result. Rotation
// is about Z, so only the four XY corners matter.
func (b AABB) TransformYaw(pos Vec3, yaw float64) AABB {
	corners := [4]Vec3{
		{X: b.Min.X, Y: b.Min.Y},
		{X: b.Min.X, Y: b.Max.Y},
		{X: b.Max.X, Y: b.Min.Y},
		{X: b.Max.X, Y: b.Max.Y},
	}
	first := RotateYaw(corners[0], yaw)
	out := AABB{
		Min: Vec3{X: first.X, Y: first.Y, Z: b.Min.Z},
		Max: Vec3{X: first.X, Y: first.Y, Z: b.Max.Z},
	}
	for _, c := range corners[1:] {
		r := RotateYaw(c, yaw)
		out.Min.X = min(out.Min.X, r.X)
		out.Min.Y = min(out.Min.Y, r.Y)
		out.Max.X = max(out.Max.X, r.X)
		out.Max.Y = max(out.Max.Y, r.Y)
	}
	return out.Translate(pos)
}
